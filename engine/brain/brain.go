package brain

import (
	"github.com/Coreven01/euchre/engine"
)

// playRule is one named heuristic in a branch cascade. Rules are evaluated
// in priority order; the first one that yields a card wins.
type playRule struct {
	name  string
	apply func(*PlayContext) (engine.Card, bool)
}

func runCascade(rules []playRule, ctx *PlayContext) (engine.Card, string, bool) {
	for _, r := range rules {
		if c, ok := r.apply(ctx); ok {
			return c, r.name, true
		}
	}
	return engine.EmptyCard, "", false
}

// randomizeChance returns the probability that the AI abandons the
// heuristic cascade for a weighted-random pick, modeling imperfect play.
// Lower difficulty means a higher chance. Seats partnered with seat 1
// randomize at half rate so the human's partner is not the weak link.
func randomizeChance(d engine.Difficulty, team int) float64 {
	var p float64
	switch d {
	case engine.DifficultyLow:
		p = 0.5
	case engine.DifficultyMedium:
		p = 0.25
	default:
		p = 0.05
	}
	if team == engine.TeamOf(1) {
		p /= 2
	}
	return p
}

// mustFollow reports whether the legal set is restricted to the suit led.
func (ctx *PlayContext) mustFollow() bool {
	if ctx.Lead.IsEmpty() {
		return false
	}
	led := ctx.Lead.EffectiveSuit(ctx.Trump)
	for _, c := range ctx.Trick.Legal {
		if c.EffectiveSuit(ctx.Trump) != led {
			return false
		}
	}
	return true
}

// partnerLedOffsuitAce reports whether the acting seat's partner led an
// off-suit ace to the current trick.
func (ctx *PlayContext) partnerLedOffsuitAce() bool {
	return !ctx.Lead.IsEmpty() &&
		ctx.Lead == ctx.Team.PartnerCard &&
		ctx.Lead.Rank == engine.Ace &&
		!ctx.Lead.IsTrump(ctx.Trump)
}

// SelectCard chooses the card a non-human seat plays, returning the card
// and the name of the rule that selected it (for the event log).
//
// Order of consideration: a forced single legal card is played outright;
// a difficulty-driven randomization may replace the heuristic pick; then
// dispatch in fixed precedence: leading, following suit, partner's
// off-suit ace lead, own team is maker, defending. Every branch terminates
// in a fallback, so failing to resolve a card is a programming error.
func SelectCard(g *engine.GameState, seat int) (engine.Card, string, error) {
	ctx, err := ComputeContext(g, seat)
	if err != nil {
		return engine.EmptyCard, "", err
	}
	legal := ctx.Trick.Legal
	if len(legal) == 0 {
		return engine.EmptyCard, "", engine.ErrNoPlayableCard
	}
	if len(legal) == 1 {
		return legal[0], "forced", nil
	}

	rng := g.Rand()
	if rng.Float64() < randomizeChance(g.Rules.Difficulty, engine.TeamOf(seat)) {
		// Weighted sub-rules: favor best-available, then worst-available,
		// then a uniform pick.
		switch rng.IntN(6) {
		case 0, 1, 2:
			return bestOf(legal, ctx.Trump), "randomized best", nil
		case 3, 4:
			return worstOf(legal, ctx.Trump), "randomized worst", nil
		default:
			return legal[rng.IntN(len(legal))], "randomized any", nil
		}
	}

	var rules []playRule
	switch {
	case ctx.Team.IsLeading:
		rules = leadRules
	case ctx.mustFollow():
		rules = followRules
	case ctx.partnerLedOffsuitAce():
		rules = partnerAceRules
	case ctx.Team.IsMaker || ctx.Team.PartnerIsMaker:
		rules = makerRules
	default:
		rules = defendRules
	}

	card, name, ok := runCascade(rules, ctx)
	if !ok {
		return engine.EmptyCard, "", engine.ErrNoPlayableCard
	}
	return card, name, nil
}
