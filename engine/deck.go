package engine

import (
	"github.com/google/uuid"
)

// DeckSize is the number of cards in a Euchre deck (9 through Ace, four suits).
const DeckSize = 24

// NewDeck returns the 24-card deck in canonical index order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range AllSuits() {
		for _, r := range AllRanks() {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// validateDeck checks the construction invariant: exactly 24 unique cards.
func validateDeck(deck []Card) error {
	if len(deck) != DeckSize {
		return ErrBadDeck
	}
	var seen [DeckSize]bool
	for _, c := range deck {
		if c.IsEmpty() {
			return ErrBadDeck
		}
		idx := c.Index()
		if idx < 0 || idx >= DeckSize || seen[idx] {
			return ErrBadDeck
		}
		seen[idx] = true
	}
	return nil
}

// ShuffledDeck builds and uniformly shuffles a fresh deck.
func (g *GameState) ShuffledDeck() ([]Card, error) {
	deck := NewDeck()
	// Fisher-Yates.
	for i := len(deck) - 1; i > 0; i-- {
		j := int(g.rng.Uint64N(uint64(i + 1)))
		deck[i], deck[j] = deck[j], deck[i]
	}
	if err := validateDeck(deck); err != nil {
		return nil, err
	}
	return deck, nil
}

// DetermineInitialDealer deals cards face up one at a time in seating order
// starting from startSeat until a Jack appears; the recipient of that Jack
// becomes the first dealer. Deterministic given the deck order. The deck
// must be a fresh shuffle each call.
//
// Returns the dealer seat and the deck index at which the Jack was found,
// so the caller can pace the face-up reveal.
func DetermineInitialDealer(deck []Card, startSeat int) (dealer, cardIndex int, err error) {
	if err := validateDeck(deck); err != nil {
		return 0, 0, err
	}
	seat := startSeat
	for i, c := range deck {
		if c.Rank == Jack {
			return seat, i, nil
		}
		seat = NextSeat(seat)
	}
	// Unreachable with a valid deck: every deck holds four Jacks.
	return 0, 0, ErrDealerNotFound
}

// DealtCard records one card handed to a seat, in deal order, so the
// presentation layer can pace the deal animation itself.
type DealtCard struct {
	Seat int
	Card Card
}

// DealResult describes a completed deal: the per-seat hands, the exact
// order cards were handed out, the exposed flip card, and the remaining
// face-down kitty cards.
type DealResult struct {
	Order []DealtCard
	Flip  Card
	Kitty []Card
}

// ShuffleAndDeal starts a new hand: shuffles a fresh deck, deals five
// cards to each seat in order starting left of the dealer, exposes the
// flip card, and opens bidding round one.
//
// Duplicate cards across hands and kitty are impossible by construction;
// the shuffled deck is validated before dealing.
func (g *GameState) ShuffleAndDeal() (*DealResult, error) {
	deck, err := g.ShuffledDeck()
	if err != nil {
		return nil, err
	}

	for _, p := range g.Players {
		p.Hand = nil
		p.Played = nil
		p.SittingOut = false
	}

	res := &DealResult{Order: make([]DealtCard, 0, NumSeats*HandSize)}
	next := 0
	for round := 0; round < HandSize; round++ {
		seat := NextSeat(g.Dealer)
		for i := 0; i < NumSeats; i++ {
			c := deck[next]
			next++
			g.PlayerAt(seat).Hand = append(g.PlayerAt(seat).Hand, c)
			res.Order = append(res.Order, DealtCard{Seat: seat, Card: c})
			seat = NextSeat(seat)
		}
	}

	res.Flip = deck[next]
	res.Kitty = deck[next+1:]
	g.Deck = deck[next:]

	g.Round++
	g.Hand = &Hand{
		ID:     uuid.New(),
		Dealer: g.Dealer,
		Flip:   res.Flip,
		Trump:  NoSuit,
	}
	g.Phase = PhaseBidRound1
	g.Current = NextSeat(g.Dealer)
	return res, nil
}
