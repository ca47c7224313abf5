package engine

// Difficulty controls how often the AI deliberately plays a suboptimal
// card. Lower difficulty means more randomized play.
type Difficulty int

const (
	DifficultyLow Difficulty = iota
	DifficultyMedium
	DifficultyHigh
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyLow:
		return "low"
	case DifficultyMedium:
		return "medium"
	default:
		return "high"
	}
}

// GameRules holds the configurable game rule settings. The engine consumes
// them; ownership (env, UI settings) lives with the caller.
type GameRules struct {
	PointsToWin    int        // cumulative team score needed to win, commonly 10
	Difficulty     Difficulty // AI randomization level
	AllowLoner     bool       // whether a maker may declare alone
	AutoFollowSuit bool       // auto-play when exactly one card is legal
	StickTheDealer bool       // dealer may not pass in bid round two
	NumPlayers     int        // fixed at 4 for partnership Euchre
}

// DefaultGameRules returns the standard 4-player partnership rule set.
func DefaultGameRules() GameRules {
	return GameRules{
		PointsToWin:    10,
		Difficulty:     DifficultyHigh,
		AllowLoner:     true,
		AutoFollowSuit: false,
		StickTheDealer: true,
		NumPlayers:     4,
	}
}
