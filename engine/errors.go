package engine

import "errors"

// Programming-error conditions. Reaching one of these means the engine was
// driven into a state that should be unreachable; the orchestration layer
// treats them as fatal and freezes the game until an explicit reset.
var (
	// ErrBadDeck indicates a deck that is not exactly the 24 unique
	// Euchre cards.
	ErrBadDeck = errors.New("engine: deck is not 24 unique cards")

	// ErrDealerNotFound indicates no Jack was found while dealing for the
	// initial dealer. Impossible with a correctly built deck.
	ErrDealerNotFound = errors.New("engine: no jack found while dealing for dealer")

	// ErrNoTrump indicates an operation that requires a named trump suit
	// ran before bidding completed.
	ErrNoTrump = errors.New("engine: trump suit not named")

	// ErrNoPlayableCard indicates the AI rule cascade failed to resolve
	// any legal card. Every cascade must terminate in a fallback rule.
	ErrNoPlayableCard = errors.New("engine: no playable card resolved")

	// ErrTrickIncomplete indicates winner resolution ran on a trick that
	// is still accumulating plays.
	ErrTrickIncomplete = errors.New("engine: trick is not complete")
)

// Rule violations. These come from invalid caller input (wrong turn, wrong
// phase, illegal card) and are rejected without mutating state.
var (
	ErrNotYourTurn    = errors.New("engine: not this player's turn")
	ErrWrongPhase     = errors.New("engine: operation not valid in current phase")
	ErrCardNotInHand  = errors.New("engine: card not in player's hand")
	ErrMustFollowSuit = errors.New("engine: must follow suit")
	ErrInvalidBid     = errors.New("engine: invalid bid")
	ErrDealerMustBid  = errors.New("engine: dealer may not pass in round two")
)
