package brain

import (
	"testing"

	"github.com/Coreven01/euchre/engine"
)

// bidState builds a round-one bidding position with a J♠ flip and dealer 1.
func bidState(seat int, hand []engine.Card) *engine.GameState {
	rules := engine.DefaultGameRules() // high difficulty, no threshold jitter
	g := engine.NewGame(1, rules)
	g.Dealer = 1
	g.Hand = &engine.Hand{Dealer: 1, Flip: engine.Card{Suit: engine.Spades, Rank: engine.Jack}, Trump: engine.NoSuit}
	g.Phase = engine.PhaseBidRound1
	g.Current = seat
	g.PlayerAt(seat).Hand = hand
	return g
}

func TestHandScore(t *testing.T) {
	hand := []engine.Card{
		{Suit: engine.Spades, Rank: engine.Jack},  // right bower 30
		{Suit: engine.Clubs, Rank: engine.Jack},   // left bower 27
		{Suit: engine.Spades, Rank: engine.Ace},   // trump ace 19
		{Suit: engine.Hearts, Rank: engine.Ace},   // off ace 10
		{Suit: engine.Diamonds, Rank: engine.Ten}, // 0
	}
	if got := HandScore(hand, engine.Spades); got != 86 {
		t.Fatalf("HandScore = %d, want 86", got)
	}
	// Same cards valued under hearts: J♠ 0, J♣ 0, A♠ 10, A♥ 19, 10♦ 0.
	if got := HandScore(hand, engine.Hearts); got != 29 {
		t.Fatalf("HandScore under hearts = %d, want 29", got)
	}
}

func TestSuggestBidRoundOne(t *testing.T) {
	tests := []struct {
		name  string
		seat  int
		hand  []engine.Card
		pass  bool
		alone bool
	}{
		{
			name: "strong hand orders up",
			seat: 2,
			hand: []engine.Card{
				{Suit: engine.Clubs, Rank: engine.Jack}, {Suit: engine.Spades, Rank: engine.Ace},
				{Suit: engine.Spades, Rank: engine.King}, {Suit: engine.Hearts, Rank: engine.Ace},
				{Suit: engine.Diamonds, Rank: engine.Nine},
			},
		},
		{
			name: "junk passes",
			seat: 2,
			hand: []engine.Card{
				{Suit: engine.Hearts, Rank: engine.Nine}, {Suit: engine.Diamonds, Rank: engine.Ten},
				{Suit: engine.Clubs, Rank: engine.Queen}, {Suit: engine.Clubs, Rank: engine.Ten},
				{Suit: engine.Diamonds, Rank: engine.Nine},
			},
			pass: true,
		},
		{
			name: "dealer counts the pickup and goes alone",
			seat: 1,
			hand: []engine.Card{
				{Suit: engine.Clubs, Rank: engine.Jack}, {Suit: engine.Spades, Rank: engine.Ace},
				{Suit: engine.Spades, Rank: engine.King}, {Suit: engine.Hearts, Rank: engine.Ace},
				{Suit: engine.Diamonds, Rank: engine.Ace},
			},
			alone: true,
		},
		{
			name: "opponent of the dealer discounts the flip",
			seat: 4,
			hand: []engine.Card{
				{Suit: engine.Spades, Rank: engine.Ace}, {Suit: engine.Spades, Rank: engine.King},
				{Suit: engine.Spades, Rank: engine.Queen}, {Suit: engine.Hearts, Rank: engine.King},
				{Suit: engine.Diamonds, Rank: engine.Nine},
			},
			pass: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := bidState(tc.seat, tc.hand)
			bid, err := SuggestBid(g, tc.seat)
			if err != nil {
				t.Fatal(err)
			}
			if bid.Pass != tc.pass {
				t.Fatalf("bid = %+v, want pass=%v", bid, tc.pass)
			}
			if !tc.pass {
				if bid.Suit != engine.Spades {
					t.Fatalf("round one order names %v, want the flip suit", bid.Suit)
				}
				if bid.Alone != tc.alone {
					t.Fatalf("bid = %+v, want alone=%v", bid, tc.alone)
				}
			}
		})
	}
}

func TestSuggestBidRoundTwo(t *testing.T) {
	t.Run("names the strongest other suit", func(t *testing.T) {
		g := bidState(2, []engine.Card{
			{Suit: engine.Hearts, Rank: engine.Jack}, {Suit: engine.Diamonds, Rank: engine.Jack},
			{Suit: engine.Hearts, Rank: engine.Ace}, {Suit: engine.Hearts, Rank: engine.King},
			{Suit: engine.Clubs, Rank: engine.Nine},
		})
		g.Phase = engine.PhaseBidRound2
		bid, err := SuggestBid(g, 2)
		if err != nil {
			t.Fatal(err)
		}
		if bid.Pass || bid.Suit != engine.Hearts {
			t.Fatalf("bid = %+v, want hearts named", bid)
		}
		if !bid.Alone {
			t.Fatalf("bid = %+v, want a loner on both bowers and length", bid)
		}
	})

	t.Run("weak hand passes", func(t *testing.T) {
		g := bidState(2, []engine.Card{
			{Suit: engine.Hearts, Rank: engine.Nine}, {Suit: engine.Diamonds, Rank: engine.Ten},
			{Suit: engine.Clubs, Rank: engine.Queen}, {Suit: engine.Clubs, Rank: engine.Ten},
			{Suit: engine.Diamonds, Rank: engine.Nine},
		})
		g.Phase = engine.PhaseBidRound2
		bid, err := SuggestBid(g, 2)
		if err != nil {
			t.Fatal(err)
		}
		if !bid.Pass {
			t.Fatalf("bid = %+v, want pass", bid)
		}
	})

	t.Run("stuck dealer always names a suit", func(t *testing.T) {
		g := bidState(1, []engine.Card{
			{Suit: engine.Hearts, Rank: engine.Nine}, {Suit: engine.Diamonds, Rank: engine.Ten},
			{Suit: engine.Clubs, Rank: engine.Queen}, {Suit: engine.Clubs, Rank: engine.Ten},
			{Suit: engine.Diamonds, Rank: engine.Nine},
		})
		g.Phase = engine.PhaseBidRound2
		bid, err := SuggestBid(g, 1)
		if err != nil {
			t.Fatal(err)
		}
		if bid.Pass {
			t.Fatal("stuck dealer must not pass")
		}
		if bid.Suit == engine.Spades || bid.Suit == engine.NoSuit {
			t.Fatalf("stuck dealer named %v", bid.Suit)
		}
	})
}

func TestSuggestBidWrongPhase(t *testing.T) {
	g := engine.NewGame(1, engine.DefaultGameRules())
	if _, err := SuggestBid(g, 1); err == nil {
		t.Fatal("want error outside bidding")
	}
}

func TestSuggestDiscard(t *testing.T) {
	hand := []engine.Card{
		{Suit: engine.Hearts, Rank: engine.Ace},
		{Suit: engine.Spades, Rank: engine.Nine},
		{Suit: engine.Diamonds, Rank: engine.King},
		{Suit: engine.Clubs, Rank: engine.Ten},
		{Suit: engine.Hearts, Rank: engine.Jack},
	}
	// Under hearts trump the 9♠ and 10♣ are both worthless; the lower
	// rank goes.
	if got := SuggestDiscard(hand, engine.Hearts); got != (engine.Card{Suit: engine.Spades, Rank: engine.Nine}) {
		t.Fatalf("discard = %v, want 9♠", got)
	}
	// Under spades the 9♠ becomes trump and the 10♣ is the junk card.
	if got := SuggestDiscard(hand, engine.Spades); got != (engine.Card{Suit: engine.Clubs, Rank: engine.Ten}) {
		t.Fatalf("discard = %v, want 10♣", got)
	}
}
