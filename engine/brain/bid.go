package brain

import "github.com/Coreven01/euchre/engine"

// bidValue scores one card's contribution to a hand under a candidate
// trump suit.
func bidValue(c engine.Card, trump engine.Suit) int {
	switch {
	case c.IsRightBower(trump):
		return 30
	case c.IsLeftBower(trump):
		return 27
	case c.Suit == trump:
		return 5 + int(c.Rank) // A 19 down to 9 14
	case c.Rank == engine.Ace:
		return 10
	case c.Rank == engine.King:
		return 4
	default:
		return 0
	}
}

// HandScore rates a hand's strength under a candidate trump suit. Roughly:
// three trump including a bower plus an off-suit ace clears the order-up
// threshold.
func HandScore(hand []engine.Card, trump engine.Suit) int {
	score := 0
	for _, c := range hand {
		score += bidValue(c, trump)
	}
	return score
}

// Bid thresholds against HandScore.
const (
	orderThreshold = 50
	lonerThreshold = 90
)

// bidJitter is the threshold noise applied below high difficulty, so weak
// AI bids erratically.
func bidJitter(d engine.Difficulty) int {
	switch d {
	case engine.DifficultyLow:
		return 12
	case engine.DifficultyMedium:
		return 6
	default:
		return 0
	}
}

// SuggestBid chooses a bid for a non-human seat in the current round.
// Round one weighs the flip card by who would pick it up; round two picks
// the strongest other suit. A dealer stuck by the stick-the-dealer rule
// always names their best suit.
func SuggestBid(g *engine.GameState, seat int) (engine.Bid, error) {
	round := g.BidRound()
	if round == 0 {
		return engine.Bid{}, engine.ErrWrongPhase
	}
	hand := g.PlayerAt(seat).Hand
	flip := g.Hand.Flip

	threshold := orderThreshold
	if j := bidJitter(g.Rules.Difficulty); j > 0 {
		threshold += g.Rand().IntN(2*j+1) - j
	}

	if round == 1 {
		trump := flip.Suit
		score := HandScore(hand, trump)
		// Ordering up hands the flip card to the dealer's side.
		switch {
		case seat == g.Dealer:
			score += bidValue(flip, trump) - 5 // picked up, minus the discard
		case engine.PartnerOf(seat) == g.Dealer:
			score += bidValue(flip, trump) / 2
		default:
			score -= bidValue(flip, trump) / 2
		}
		if score < threshold {
			return engine.Bid{Pass: true}, nil
		}
		return engine.Bid{
			Suit:  trump,
			Alone: g.Rules.AllowLoner && score >= lonerThreshold,
		}, nil
	}

	bestSuit, bestScore := engine.NoSuit, -1
	for _, s := range engine.AllSuits() {
		if s == flip.Suit {
			continue
		}
		if score := HandScore(hand, s); score > bestScore {
			bestSuit, bestScore = s, score
		}
	}

	stuck := seat == g.Dealer && g.Rules.StickTheDealer
	if bestScore < threshold && !stuck {
		return engine.Bid{Pass: true}, nil
	}
	return engine.Bid{
		Suit:  bestSuit,
		Alone: g.Rules.AllowLoner && bestScore >= lonerThreshold,
	}, nil
}

// SuggestDiscard picks the card an AI dealer gives up after ordering up:
// the card worth least under the named trump, lowest rank on ties.
func SuggestDiscard(hand []engine.Card, trump engine.Suit) engine.Card {
	worst := engine.EmptyCard
	for _, c := range hand {
		if worst.IsEmpty() {
			worst = c
			continue
		}
		cv, wv := bidValue(c, trump), bidValue(worst, trump)
		if cv < wv || (cv == wv && c.Rank < worst.Rank) {
			worst = c
		}
	}
	return worst
}
