// Package engine implements the rules of 4-player partnership Euchre.
//
// The package is a pure rules engine: it owns the card/player/trick/hand
// data model, dealing, the two-round bidding protocol, legal-move
// computation, trick resolution, and hand/game scoring. It performs no
// logging and no I/O; orchestration, pacing, and presentation live with
// the caller (see internal/game).
package engine

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// NumSeats is the number of seats at the table. Partnership Euchre is
// always four-handed; a loner hand simply sits one seat out.
const NumSeats = 4

// HandSize is the number of cards dealt to each player.
const HandSize = 5

// TableLocation is a player's seat position as seen by the presentation
// layer. Seat numbers map to locations in play order.
type TableLocation int

const (
	LocBottom TableLocation = iota
	LocLeft
	LocTop
	LocRight
)

func (l TableLocation) String() string {
	return [...]string{"bottom", "left", "top", "right"}[l]
}

// Player is one of the four seats. Players persist across hands; Hand and
// Played are cleared and repopulated each deal.
type Player struct {
	Number     int // stable seat number, 1-4
	Name       string
	Human      bool
	Hand       []Card
	Played     []Card
	SittingOut bool // true for the maker's partner during a loner hand
}

// Team returns the player's team (1 or 2). Partners sit opposite:
// seats 1 and 3 are team 1, seats 2 and 4 are team 2.
func (p *Player) Team() int { return TeamOf(p.Number) }

// Location returns the player's table location.
func (p *Player) Location() TableLocation { return TableLocation(p.Number - 1) }

// HasCard reports whether the card is currently in the player's hand.
func (p *Player) HasCard(c Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// removeCard takes the card out of the player's hand. Returns false when
// the card is not held.
func (p *Player) removeCard(c Card) bool {
	for i, h := range p.Hand {
		if h == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// TeamOf returns the team (1 or 2) for a seat number.
func TeamOf(seat int) int {
	if seat%2 == 1 {
		return 1
	}
	return 2
}

// PartnerOf returns the seat number of a seat's partner.
func PartnerOf(seat int) int { return (seat+1)%NumSeats + 1 }

// NextSeat returns the seat to the left (next in play order).
func NextSeat(seat int) int { return seat%NumSeats + 1 }

// PlayedCard is one (player, card) entry in a trick, in play order.
type PlayedCard struct {
	Player int
	Card   Card
}

// Trick accumulates one round of plays. Lifecycle: create, accumulate
// plays, resolve winner, archive into the hand's trick history.
type Trick struct {
	Plays  []PlayedCard
	Winner int // seat number once resolved, 0 before
	Renege int // seat marked as having illegally failed to follow suit, 0 if none
}

// LeadCard returns the first card played to the trick.
func (t *Trick) LeadCard() (Card, bool) {
	if len(t.Plays) == 0 {
		return EmptyCard, false
	}
	return t.Plays[0].Card, true
}

// CardOf returns the card the given seat played to this trick.
func (t *Trick) CardOf(seat int) (Card, bool) {
	for _, p := range t.Plays {
		if p.Player == seat {
			return p.Card, true
		}
	}
	return EmptyCard, false
}

// MarkRenege flags the given seat's play as illegal. The play stays in the
// trick record but is excluded from winning consideration. Normal play
// cannot reach this state, since PlayCard enforces legality; this exists
// only for externally injected moves (replay and debug tooling).
func (t *Trick) MarkRenege(seat int) {
	t.Renege = seat
}

// HandResult is the point outcome of one completed hand.
type HandResult struct {
	Team      int  // team awarded the points
	Points    int  // 1, 2, or 4
	Euchred   bool // maker's team failed to take three tricks
	Loner     bool // maker played alone
	TricksWon [2]int
}

// Hand is the state of one deal: the flip card, the named trump and maker,
// and the resolved tricks. Exactly one maker exists per played hand; an
// all-passed hand is abandoned and redealt by the next dealer.
type Hand struct {
	ID     uuid.UUID
	Dealer int
	Flip   Card // kitty/trump-flip card exposed after the deal
	Trump  Suit // NoSuit until named
	Maker  int  // seat that named trump, 0 until named
	Alone  bool
	Tricks []Trick
	Result *HandResult
}

// CurrentTrick returns the trick currently accumulating plays, or nil when
// none is open.
func (h *Hand) CurrentTrick() *Trick {
	if len(h.Tricks) == 0 {
		return nil
	}
	t := &h.Tricks[len(h.Tricks)-1]
	if t.Winner != 0 {
		return nil
	}
	return t
}

// TricksWon returns the number of resolved tricks taken by the team.
func (h *Hand) TricksWon(team int) int {
	n := 0
	for i := range h.Tricks {
		if h.Tricks[i].Winner != 0 && TeamOf(h.Tricks[i].Winner) == team {
			n++
		}
	}
	return n
}

// HandPhase is the engine-level phase of the current hand. The
// orchestration layer's flow state machine sequences on top of this.
type HandPhase int

const (
	PhaseSetup HandPhase = iota // before cards are dealt
	PhaseBidRound1
	PhaseDealerDiscard // dealer holds six cards after picking up the flip
	PhaseBidRound2
	PhaseRedeal // all passed; hand is dead, next seat deals
	PhasePlay
	PhaseHandDone
)

func (p HandPhase) String() string {
	return [...]string{"setup", "bid round 1", "dealer discard", "bid round 2", "redeal", "play", "hand done"}[p]
}

// GameState is the complete game instance: players, deck, the current hand
// and trick, and cumulative team scores. It is owned by the orchestration
// layer; engine operations mutate it one phase at a time.
type GameState struct {
	ID      uuid.UUID
	Players [NumSeats]*Player
	Dealer  int // seat of the current hand's dealer
	Current int // seat whose turn it is (bid, discard, or play)
	Deck    []Card
	Hand    *Hand
	Scores  [2]int // cumulative team scores, index team-1
	Round   int    // hands dealt so far
	Phase   HandPhase
	Rules   GameRules

	rng *rand.Rand
}

// NewGame creates a game with four seated players and the given rules.
// The deck is not yet shuffled or dealt. The seed fully determines every
// shuffle and AI randomization of the game.
func NewGame(seed uint64, rules GameRules) *GameState {
	g := &GameState{
		ID:    uuid.New(),
		Rules: rules,
		Phase: PhaseSetup,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	names := [NumSeats]string{"You", "West", "North", "East"}
	for i := 0; i < NumSeats; i++ {
		g.Players[i] = &Player{Number: i + 1, Name: names[i]}
	}
	return g
}

// PlayerAt returns the player in the given seat (1-4).
func (g *GameState) PlayerAt(seat int) *Player { return g.Players[seat-1] }

// Rand exposes the game's seeded RNG. Shuffles and AI randomization draw
// from the same stream so a seed reproduces a full game.
func (g *GameState) Rand() *rand.Rand { return g.rng }

// ActiveSeats returns the number of seats playing the current hand (3
// during a loner, otherwise 4).
func (g *GameState) ActiveSeats() int { return g.activeSeatCount() }

// Score returns the cumulative score for a team.
func (g *GameState) Score(team int) int { return g.Scores[team-1] }

// nextActiveSeat returns the next seat in play order that is not sitting
// out this hand.
func (g *GameState) nextActiveSeat(seat int) int {
	s := NextSeat(seat)
	for g.PlayerAt(s).SittingOut {
		s = NextSeat(s)
	}
	return s
}

// activeSeatCount returns the number of seats playing this hand (3 during
// a loner, otherwise 4).
func (g *GameState) activeSeatCount() int {
	n := 0
	for _, p := range g.Players {
		if !p.SittingOut {
			n++
		}
	}
	return n
}
