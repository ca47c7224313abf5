package brain

import "github.com/Coreven01/euchre/engine"

// leadRules decide what to lead when first to play a trick.
var leadRules = []playRule{
	{
		// A maker holding the right bower and trump length leads it to
		// pull the opponents' trump immediately.
		name: "lead right bower to draw trump",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if !(ctx.Team.IsMaker || ctx.Team.PartnerIsMaker) {
				return engine.EmptyCard, false
			}
			if ctx.Trumps.HasRight && ctx.Trumps.Count >= 3 {
				return ctx.legalOnly(ctx.Trumps.Best)
			}
			return engine.EmptyCard, false
		},
	},
	{
		// Holding both bowers is an unbeatable one-two; lead the left to
		// keep the right as a certain later winner.
		name: "lead left bower with both bowers",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if ctx.Trumps.HasRight && ctx.Trumps.HasLeft {
				for _, c := range ctx.Trick.Legal {
					if c.IsLeftBower(ctx.Trump) {
						return c, true
					}
				}
			}
			return engine.EmptyCard, false
		},
	},
	{
		// A maker short on trump with no tricks banked cashes a fresh
		// off-suit winner before the opponents can trump in.
		name: "lead best unled offsuit when maker is light",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if ctx.Team.IsMaker && ctx.Trumps.Count < 3 && ctx.Trick.WonByTeam == 0 {
				return ctx.legalOnly(ctx.Offsuit.BestUnled)
			}
			return engine.EmptyCard, false
		},
	},
	{
		name: "lead an unled offsuit ace",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if ctx.Offsuit.UnledAceCount == 0 {
				return engine.EmptyCard, false
			}
			for _, c := range ctx.Trick.Legal {
				if c.Rank == engine.Ace && !c.IsTrump(ctx.Trump) &&
					!containsSuit(ctx.Trick.SuitsLed, c.Suit) {
					return c, true
				}
			}
			return engine.EmptyCard, false
		},
	},
	{
		// Defender with the lone right bower left in play takes a sure
		// trick with it rather than hoping it cashes later.
		name: "lead right bower when left already seen",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			if ctx.Trumps.HasRight && ctx.Trumps.LeftSeen {
				return ctx.legalOnly(ctx.Trumps.Best)
			}
			return engine.EmptyCard, false
		},
	},
	{
		name: "lead best offsuit",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			return ctx.legalOnly(ctx.Offsuit.Best)
		},
	},
	{
		name: "lead best legal",
		apply: func(ctx *PlayContext) (engine.Card, bool) {
			return ctx.legalOnly(bestOf(ctx.Trick.Legal, ctx.Trump))
		},
	},
}
