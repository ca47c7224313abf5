package brain

import "github.com/Coreven01/euchre/engine"

// followRules decide what to play when the legal set is restricted to the
// suit led.
var followRules = []playRule{
	{
		// Last to act with the trick already won by partner: slough the
		// weakest card instead of overtaking.
		name: "stay under winning partner",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if ctx.Team.PartnerWinning && ctx.Team.IsLastToAct {
				return ctx.legalOnly(ctx.Trick.WorstLosing)
			}
			return engine.EmptyCard, false
		},
	},
	{
		// Last to act and able to win: take the trick as cheaply as
		// possible.
		name: "win cheaply in last seat",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if ctx.Team.IsLastToAct {
				return ctx.legalOnly(ctx.Trick.WorstWinning)
			}
			return engine.EmptyCard, false
		},
	},
	{
		// Earlier seats beat the current winner with the best follower so
		// later opponents must pay a bower to take it back.
		name: "win with best follower",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if !ctx.Team.PartnerWinning {
				return ctx.legalOnly(ctx.Trick.BestWinning)
			}
			return engine.EmptyCard, false
		},
	},
	{
		name: "follow with weakest",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			return ctx.legalOnly(ctx.Trick.WorstLosing)
		},
	},
	{
		name: "follow with worst legal",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			return ctx.legalOnly(worstOf(ctx.Trick.Legal, ctx.Trump))
		},
	},
}

// partnerAceRules decide what to play when partner led an off-suit ace and
// the acting seat cannot follow suit.
var partnerAceRules = []playRule{
	{
		// An opponent already trumped partner's ace; overtrump if it can
		// be done cheaply.
		name: "overtrump on partner's ace",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if !ctx.Team.PartnerWinning && len(ctx.Trick.Winning) > 0 {
				return ctx.legalOnly(ctx.Trick.WorstWinning)
			}
			return engine.EmptyCard, false
		},
	},
	{
		// Partner's ace is holding the trick: throw off the weakest
		// off-suit card and keep trump home.
		name: "throw off under partner's ace",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			return ctx.legalOnly(ctx.Offsuit.Worst)
		},
	},
	{
		name: "discard worst legal",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			return ctx.legalOnly(worstOf(ctx.Trick.Legal, ctx.Trump))
		},
	},
}
