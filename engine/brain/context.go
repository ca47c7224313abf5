// Package brain implements card-play and bidding decisions for non-human
// players. Decisions are computed in two steps: ComputeContext takes a
// pure snapshot of everything the heuristics need (team, trump, trick,
// and off-suit analysis), then SelectCard walks an ordered cascade of
// named rules over that snapshot. Rules never select outside the legal
// set computed by the engine.
package brain

import (
	"github.com/Coreven01/euchre/engine"
)

// TeamInfo captures the acting seat's relationship to the maker and to
// the current trick.
type TeamInfo struct {
	IsMaker         bool
	PartnerIsMaker  bool
	IsLeading       bool // no card played to the trick yet
	IsLastToAct     bool
	PartnerYetToAct bool
	PartnerSitsOut  bool
	PartnerCard     engine.Card // card partner played this trick, EmptyCard if none
	PartnerWinning  bool        // partner's card currently takes the trick
}

// TrumpInfo summarizes the trump held and seen from the acting seat.
type TrumpInfo struct {
	Count     int
	HasRight  bool
	HasLeft   bool
	RightSeen bool // right bower already played this hand (by anyone)
	LeftSeen  bool
	Best      engine.Card // strongest trump held, EmptyCard if none
	Worst     engine.Card
}

// TrickInfo splits the legal set into cards that would currently take the
// trick and cards that would not, and tracks trick history for the hand.
type TrickInfo struct {
	Legal        []engine.Card
	Winning      []engine.Card
	Losing       []engine.Card
	BestWinning  engine.Card
	WorstWinning engine.Card
	BestLosing   engine.Card
	WorstLosing  engine.Card
	WonByTeam    int           // tricks already won by the acting seat's team
	WonByOpps    int           // tricks already won by the opposing team
	SuitsLed     []engine.Suit // effective suits led so far this hand
	LeadWinner   int           // seat currently taking the trick, 0 when leading
}

// OffsuitInfo summarizes non-trump holdings.
type OffsuitInfo struct {
	AceCount      int
	UnledAceCount int
	Best          engine.Card // strongest off-suit card held
	Worst         engine.Card
	BestUnled     engine.Card // strongest off-suit card of a suit not yet led
}

// PlayContext is the full decision snapshot for one seat at one moment of
// play. It is computed fresh for every decision and never mutated.
type PlayContext struct {
	Seat    int
	Trump   engine.Suit
	Lead    engine.Card // card led to the current trick, EmptyCard when leading
	Team    TeamInfo
	Trumps  TrumpInfo
	Trick   TrickInfo
	Offsuit OffsuitInfo
}

// strength orders cards for best/worst selection: right bower above left
// bower above remaining trump, then off-suit by plain rank.
func strength(c engine.Card, trump engine.Suit) int {
	switch {
	case c.IsRightBower(trump):
		return 200
	case c.IsLeftBower(trump):
		return 199
	case c.Suit == trump:
		return 100 + int(c.Rank)
	default:
		return int(c.Rank)
	}
}

func bestOf(cards []engine.Card, trump engine.Suit) engine.Card {
	best := engine.EmptyCard
	for _, c := range cards {
		if best.IsEmpty() || strength(c, trump) > strength(best, trump) {
			best = c
		}
	}
	return best
}

func worstOf(cards []engine.Card, trump engine.Suit) engine.Card {
	worst := engine.EmptyCard
	for _, c := range cards {
		if worst.IsEmpty() || strength(c, trump) < strength(worst, trump) {
			worst = c
		}
	}
	return worst
}

func containsSuit(suits []engine.Suit, s engine.Suit) bool {
	for _, v := range suits {
		if v == s {
			return true
		}
	}
	return false
}

// ComputeContext builds the decision snapshot for the seat about to play.
func ComputeContext(g *engine.GameState, seat int) (*PlayContext, error) {
	if g.Phase != engine.PhasePlay || g.Hand == nil {
		return nil, engine.ErrWrongPhase
	}
	h := g.Hand
	if h.Trump == engine.NoSuit {
		return nil, engine.ErrNoTrump
	}
	trick := h.CurrentTrick()
	if trick == nil {
		return nil, engine.ErrWrongPhase
	}

	ctx := &PlayContext{Seat: seat, Trump: h.Trump}
	lead, hasLead := trick.LeadCard()
	if hasLead {
		ctx.Lead = lead
	} else {
		ctx.Lead = engine.EmptyCard
	}

	ctx.computeTeam(g, trick, hasLead)
	ctx.computeTrumps(g, seat)
	ctx.computeTrick(g, trick, hasLead, lead)
	ctx.computeOffsuit(g, seat)
	return ctx, nil
}

func (ctx *PlayContext) computeTeam(g *engine.GameState, trick *engine.Trick, hasLead bool) {
	h := g.Hand
	partner := engine.PartnerOf(ctx.Seat)
	ctx.Team.IsMaker = h.Maker == ctx.Seat
	ctx.Team.PartnerIsMaker = h.Maker == partner
	ctx.Team.IsLeading = !hasLead
	ctx.Team.IsLastToAct = len(trick.Plays) == g.ActiveSeats()-1
	ctx.Team.PartnerSitsOut = g.PlayerAt(partner).SittingOut

	ctx.Team.PartnerCard = engine.EmptyCard
	if c, ok := trick.CardOf(partner); ok {
		ctx.Team.PartnerCard = c
	}
	ctx.Team.PartnerYetToAct = !ctx.Team.PartnerSitsOut && ctx.Team.PartnerCard.IsEmpty()

	if hasLead {
		if winner, err := engine.ResolveTrickWinner(trick, h.Trump); err == nil {
			ctx.Team.PartnerWinning = winner == partner
		}
	}
}

func (ctx *PlayContext) computeTrumps(g *engine.GameState, seat int) {
	trump := ctx.Trump
	var held []engine.Card
	for _, c := range g.PlayerAt(seat).Hand {
		if c.IsTrump(trump) {
			held = append(held, c)
			if c.IsRightBower(trump) {
				ctx.Trumps.HasRight = true
			}
			if c.IsLeftBower(trump) {
				ctx.Trumps.HasLeft = true
			}
		}
	}
	ctx.Trumps.Count = len(held)
	ctx.Trumps.Best = bestOf(held, trump)
	ctx.Trumps.Worst = worstOf(held, trump)

	for i := range g.Hand.Tricks {
		for _, p := range g.Hand.Tricks[i].Plays {
			if p.Card.IsRightBower(trump) {
				ctx.Trumps.RightSeen = true
			}
			if p.Card.IsLeftBower(trump) {
				ctx.Trumps.LeftSeen = true
			}
		}
	}
}

func (ctx *PlayContext) computeTrick(g *engine.GameState, trick *engine.Trick, hasLead bool, lead engine.Card) {
	h := g.Hand
	trump := ctx.Trump
	team := engine.TeamOf(ctx.Seat)
	ctx.Trick.WonByTeam = h.TricksWon(team)
	ctx.Trick.WonByOpps = h.TricksWon(3 - team)

	for i := range h.Tricks {
		if c, ok := h.Tricks[i].LeadCard(); ok {
			led := c.EffectiveSuit(trump)
			if !containsSuit(ctx.Trick.SuitsLed, led) {
				ctx.Trick.SuitsLed = append(ctx.Trick.SuitsLed, led)
			}
		}
	}

	ctx.Trick.Legal = g.LegalPlays(ctx.Seat)

	var bestPlayed engine.Card
	if hasLead {
		if winner, err := engine.ResolveTrickWinner(trick, trump); err == nil {
			ctx.Trick.LeadWinner = winner
			bestPlayed, _ = trick.CardOf(winner)
		}
	}

	for _, c := range ctx.Trick.Legal {
		wins := true
		if hasLead {
			wins = c.Beats(bestPlayed, trump, lead.EffectiveSuit(trump))
		}
		if wins {
			ctx.Trick.Winning = append(ctx.Trick.Winning, c)
		} else {
			ctx.Trick.Losing = append(ctx.Trick.Losing, c)
		}
	}
	ctx.Trick.BestWinning = bestOf(ctx.Trick.Winning, trump)
	ctx.Trick.WorstWinning = worstOf(ctx.Trick.Winning, trump)
	ctx.Trick.BestLosing = bestOf(ctx.Trick.Losing, trump)
	ctx.Trick.WorstLosing = worstOf(ctx.Trick.Losing, trump)
}

func (ctx *PlayContext) computeOffsuit(g *engine.GameState, seat int) {
	trump := ctx.Trump
	var off []engine.Card
	for _, c := range g.PlayerAt(seat).Hand {
		if c.IsTrump(trump) {
			continue
		}
		off = append(off, c)
		if c.Rank == engine.Ace {
			ctx.Offsuit.AceCount++
			if !containsSuit(ctx.Trick.SuitsLed, c.Suit) {
				ctx.Offsuit.UnledAceCount++
			}
		}
	}
	ctx.Offsuit.Best = bestOf(off, trump)
	ctx.Offsuit.Worst = worstOf(off, trump)

	var unled []engine.Card
	for _, c := range off {
		if !containsSuit(ctx.Trick.SuitsLed, c.Suit) {
			unled = append(unled, c)
		}
	}
	ctx.Offsuit.BestUnled = bestOf(unled, trump)
}

// legalOnly filters a candidate down to the legal set; rules use it so a
// cascade can never escape the legality gate.
func (ctx *PlayContext) legalOnly(c engine.Card) (engine.Card, bool) {
	if c.IsEmpty() {
		return engine.EmptyCard, false
	}
	for _, l := range ctx.Trick.Legal {
		if l == c {
			return c, true
		}
	}
	return engine.EmptyCard, false
}
