package engine

import "fmt"

// Suit represents a card suit.
type Suit int

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
	// NoSuit is the placeholder for "no trump named yet" and for
	// non-playing placeholder cards.
	NoSuit
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	default:
		return "-"
	}
}

// Name returns the long suit name ("Spades").
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	default:
		return "None"
	}
}

// IsRed reports whether the suit is a red suit.
func (s Suit) IsRed() bool { return s == Diamonds || s == Hearts }

// Opposite returns the other suit of the same color.
// The Jack of Opposite(trump) is the left bower.
func (s Suit) Opposite() Suit {
	switch s {
	case Spades:
		return Clubs
	case Clubs:
		return Spades
	case Diamonds:
		return Hearts
	case Hearts:
		return Diamonds
	default:
		return NoSuit
	}
}

// AllSuits returns the four playing suits in deck order.
func AllSuits() []Suit { return []Suit{Spades, Clubs, Diamonds, Hearts} }

// Rank represents a card rank. Euchre uses the 24-card deck, Nine through Ace.
// Numeric values are chosen so that off-suit comparison is plain ordering.
type Rank int

const (
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// AllRanks returns the six ranks in deck order, low to high.
func AllRanks() []Rank { return []Rank{Nine, Ten, Jack, Queen, King, Ace} }

// Card is an immutable suit/rank pair. Cards are compared by value, so the
// same (suit, rank) always refers to the same deck card.
type Card struct {
	Suit Suit
	Rank Rank
}

// EmptyCard is the non-playing placeholder card.
var EmptyCard = Card{Suit: NoSuit}

// IsEmpty reports whether the card is the placeholder.
func (c Card) IsEmpty() bool { return c.Suit == NoSuit }

// Index returns the card's stable deck index in [0, 23].
func (c Card) Index() int {
	return int(c.Suit)*6 + int(c.Rank-Nine)
}

func (c Card) String() string {
	if c.IsEmpty() {
		return "--"
	}
	return c.Rank.String() + c.Suit.String()
}

// Name returns the long display name ("Jack of Spades").
func (c Card) Name() string {
	if c.IsEmpty() {
		return "placeholder"
	}
	long := map[Rank]string{Nine: "Nine", Ten: "Ten", Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace"}
	return long[c.Rank] + " of " + c.Suit.Name()
}

// IsRightBower reports whether the card is the Jack of trump.
func (c Card) IsRightBower(trump Suit) bool {
	return trump != NoSuit && c.Rank == Jack && c.Suit == trump
}

// IsLeftBower reports whether the card is the Jack of the same color as trump.
func (c Card) IsLeftBower(trump Suit) bool {
	return trump != NoSuit && c.Rank == Jack && c.Suit == trump.Opposite()
}

// EffectiveSuit returns the suit the card plays as under the given trump.
// The left bower counts as trump for follow-suit purposes; every other card
// plays as its printed suit.
func (c Card) EffectiveSuit(trump Suit) Suit {
	if c.IsLeftBower(trump) {
		return trump
	}
	return c.Suit
}

// IsTrump reports whether the card plays as trump (bowers included).
func (c Card) IsTrump(trump Suit) bool {
	return trump != NoSuit && c.EffectiveSuit(trump) == trump
}

// trickPower assigns a comparable strength to a played card given the trump
// suit and the effective suit led. Cards that can never win the trick
// (off-suit, non-trump) get -1. Within trump: right bower > left bower >
// A > K > Q > 10 > 9. Within the led suit: plain rank order.
func (c Card) trickPower(trump, led Suit) int {
	switch {
	case c.IsRightBower(trump):
		return 200
	case c.IsLeftBower(trump):
		return 199
	case c.Suit == trump:
		return 100 + int(c.Rank)
	case c.Suit == led:
		return int(c.Rank)
	default:
		return -1
	}
}

// Beats reports whether c wins over other given trump and the suit led.
// No two deck cards share (suit, rank), so ties cannot occur between
// distinct cards of the same effective suit.
func (c Card) Beats(other Card, trump, led Suit) bool {
	return c.trickPower(trump, led) > other.trickPower(trump, led)
}
