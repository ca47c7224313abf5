package brain

import "github.com/Coreven01/euchre/engine"

// makerRules decide what to play, off-lead and off-suit, when the acting
// seat's team named trump.
var makerRules = []playRule{
	{
		name: "let winning partner keep the trick",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if ctx.Team.PartnerWinning {
				return ctx.legalOnly(ctx.Trick.WorstLosing)
			}
			return engine.EmptyCard, false
		},
	},
	{
		// The opponents hold the trick; trump in with the cheapest card
		// that takes it.
		name: "trump in cheaply",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			return ctx.legalOnly(ctx.Trick.WorstWinning)
		},
	},
	{
		// Nothing wins; keep the trump suit intact and shed the weakest
		// off-suit card.
		name: "shed weakest offsuit",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			return ctx.legalOnly(ctx.Offsuit.Worst)
		},
	},
	{
		name: "shed worst legal",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			return ctx.legalOnly(worstOf(ctx.Trick.Legal, ctx.Trump))
		},
	},
}

// defendRules decide what to play, off-lead and off-suit, against the
// maker's team.
var defendRules = []playRule{
	{
		name: "let winning partner keep the trick",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if ctx.Team.PartnerWinning {
				return ctx.legalOnly(ctx.Trick.WorstLosing)
			}
			return engine.EmptyCard, false
		},
	},
	{
		// A euchre needs three tricks; trump in cheaply while the hand is
		// still winnable.
		name: "trump the makers cheaply",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if ctx.Trick.WonByTeam+len(ctx.Trick.Legal) >= 3 {
				return ctx.legalOnly(ctx.Trick.WorstWinning)
			}
			return engine.EmptyCard, false
		},
	},
	{
		// When partner is yet to act behind us, don't spend trump on
		// speculation; discard low.
		name: "discard low with partner behind",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if ctx.Team.PartnerYetToAct {
				return ctx.legalOnly(ctx.Offsuit.Worst)
			}
			return engine.EmptyCard, false
		},
	},
	{
		name: "take the trick if possible",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			return ctx.legalOnly(ctx.Trick.WorstWinning)
		},
	},
	{
		name: "discard weakest offsuit",
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
