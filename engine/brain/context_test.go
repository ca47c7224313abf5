package brain

import (
	"errors"
	"testing"

	"github.com/Coreven01/euchre/engine"
)

// playState builds a mid-play game with one open trick: the given seat is
// to act holding hand, the trick already contains plays.
func playState(trump engine.Suit, maker, seat int, hand []engine.Card, plays []engine.PlayedCard) *engine.GameState {
	g := engine.NewGame(1, engine.DefaultGameRules())
	g.Dealer = 1
	g.Phase = engine.PhasePlay
	g.Current = seat
	g.Hand = &engine.Hand{
		Dealer: 1,
		Trump:  trump,
		Maker:  maker,
		Tricks: []engine.Trick{{Plays: plays}},
	}
	g.PlayerAt(seat).Hand = hand
	return g
}

func TestComputeContextLeading(t *testing.T) {
	g := playState(engine.Spades, 1, 1, []engine.Card{
		{Suit: engine.Spades, Rank: engine.Jack},
		{Suit: engine.Clubs, Rank: engine.Jack},
		{Suit: engine.Spades, Rank: engine.Ace},
		{Suit: engine.Hearts, Rank: engine.Ace},
		{Suit: engine.Diamonds, Rank: engine.Nine},
	}, nil)

	ctx, err := ComputeContext(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !ctx.Team.IsMaker || !ctx.Team.IsLeading {
		t.Fatalf("team = %+v, want leading maker", ctx.Team)
	}
	tr := ctx.Trumps
	if tr.Count != 3 || !tr.HasRight || !tr.HasLeft {
		t.Fatalf("trumps = %+v, want three including both bowers", tr)
	}
	if tr.Best != (engine.Card{Suit: engine.Spades, Rank: engine.Jack}) {
		t.Fatalf("best trump = %v, want right bower", tr.Best)
	}
	if tr.Worst != (engine.Card{Suit: engine.Spades, Rank: engine.Ace}) {
		t.Fatalf("worst trump = %v, want A♠", tr.Worst)
	}
	off := ctx.Offsuit
	if off.AceCount != 1 || off.UnledAceCount != 1 {
		t.Fatalf("offsuit aces = %+v, want one unled ace", off)
	}
	if off.Best != (engine.Card{Suit: engine.Hearts, Rank: engine.Ace}) || off.Worst != (engine.Card{Suit: engine.Diamonds, Rank: engine.Nine}) {
		t.Fatalf("offsuit best/worst = %v/%v", off.Best, off.Worst)
	}
	if len(ctx.Trick.Legal) != engine.HandSize {
		t.Fatalf("legal = %v, want full hand when leading", ctx.Trick.Legal)
	}
}

func TestComputeContextFollowing(t *testing.T) {
	g := playState(engine.Spades, 2, 3, []engine.Card{
		{Suit: engine.Hearts, Rank: engine.Ace},
		{Suit: engine.Hearts, Rank: engine.Ten},
		{Suit: engine.Spades, Rank: engine.Nine},
		{Suit: engine.Diamonds, Rank: engine.Ten},
		{Suit: engine.Clubs, Rank: engine.Queen},
	}, []engine.PlayedCard{
		{Player: 1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Nine}},
		{Player: 2, Card: engine.Card{Suit: engine.Hearts, Rank: engine.King}},
	})

	ctx, err := ComputeContext(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Team.IsLeading || ctx.Team.IsLastToAct {
		t.Fatalf("team = %+v, want mid-trick seat", ctx.Team)
	}
	if ctx.Team.PartnerCard != (engine.Card{Suit: engine.Hearts, Rank: engine.Nine}) {
		t.Fatalf("partner card = %v, want seat 1's lead", ctx.Team.PartnerCard)
	}
	if ctx.Team.PartnerWinning {
		t.Fatal("partner's nine is not winning over the king")
	}
	if ctx.Trick.LeadWinner != 2 {
		t.Fatalf("lead winner = %d, want 2", ctx.Trick.LeadWinner)
	}
	if len(ctx.Trick.Legal) != 2 {
		t.Fatalf("legal = %v, want the two hearts", ctx.Trick.Legal)
	}
	if len(ctx.Trick.Winning) != 1 || ctx.Trick.Winning[0] != (engine.Card{Suit: engine.Hearts, Rank: engine.Ace}) {
		t.Fatalf("winning = %v, want only A♥", ctx.Trick.Winning)
	}
	if len(ctx.Trick.Losing) != 1 || ctx.Trick.Losing[0] != (engine.Card{Suit: engine.Hearts, Rank: engine.Ten}) {
		t.Fatalf("losing = %v, want only 10♥", ctx.Trick.Losing)
	}
}

func TestComputeContextTracksSeenBowers(t *testing.T) {
	g := playState(engine.Hearts, 1, 1, []engine.Card{
		{Suit: engine.Hearts, Rank: engine.Jack},
		{Suit: engine.Clubs, Rank: engine.Ten},
	}, nil)
	// A finished first trick in which the left bower fell.
	g.Hand.Tricks = append([]engine.Trick{{
		Plays: []engine.PlayedCard{
			{Player: 2, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.Jack}},
			{Player: 3, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Nine}},
			{Player: 4, Card: engine.Card{Suit: engine.Clubs, Rank: engine.Nine}},
			{Player: 1, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.Ten}},
		},
		Winner: 2,
	}}, g.Hand.Tricks...)

	ctx, err := ComputeContext(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !ctx.Trumps.LeftSeen || ctx.Trumps.RightSeen {
		t.Fatalf("seen = %+v, want only the left bower seen", ctx.Trumps)
	}
	if ctx.Trick.WonByOpps != 1 || ctx.Trick.WonByTeam != 0 {
		t.Fatalf("trick tally = %+v, want one for the opponents", ctx.Trick)
	}
	if !containsSuit(ctx.Trick.SuitsLed, engine.Hearts) {
		t.Fatalf("suits led = %v, want the left bower recorded as hearts", ctx.Trick.SuitsLed)
	}
}

func TestComputeContextWrongPhase(t *testing.T) {
	g := engine.NewGame(1, engine.DefaultGameRules())
	if _, err := ComputeContext(g, 1); !errors.Is(err, engine.ErrWrongPhase) {
		t.Fatalf("err = %v, want ErrWrongPhase", err)
	}
}
