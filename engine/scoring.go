package engine

// ScoreHand computes the point result of a completed hand. Standard
// scoring: the maker's team taking all five tricks scores 2 (4 alone),
// taking three or four scores 1; failing to take three is a euchre and
// gives the defending team 2.
func ScoreHand(h *Hand) (HandResult, error) {
	if h.Maker == 0 || h.Trump == NoSuit {
		return HandResult{}, ErrNoTrump
	}
	var res HandResult
	res.Loner = h.Alone
	for i := range h.Tricks {
		w := h.Tricks[i].Winner
		if w == 0 {
			return HandResult{}, ErrTrickIncomplete
		}
		res.TricksWon[TeamOf(w)-1]++
	}

	makerTeam := TeamOf(h.Maker)
	makerTricks := res.TricksWon[makerTeam-1]
	switch {
	case makerTricks == HandSize:
		res.Team = makerTeam
		if h.Alone {
			res.Points = 4
		} else {
			res.Points = 2
		}
	case makerTricks >= 3:
		res.Team = makerTeam
		res.Points = 1
	default:
		res.Team = 3 - makerTeam
		res.Points = 2
		res.Euchred = true
	}
	return res, nil
}

// completeHand scores the finished hand and applies the result to the
// running game score.
func (g *GameState) completeHand() error {
	res, err := ScoreHand(g.Hand)
	if err != nil {
		return err
	}
	g.Hand.Result = &res
	g.Scores[res.Team-1] += res.Points
	g.Phase = PhaseHandDone
	return nil
}

// IsGameOver reports whether either team has reached the configured
// winning score.
func (g *GameState) IsGameOver() bool {
	return g.Scores[0] >= g.Rules.PointsToWin || g.Scores[1] >= g.Rules.PointsToWin
}

// WinningTeam returns the team that has won the game, or 0 while the game
// is still in progress.
func (g *GameState) WinningTeam() int {
	for team := 1; team <= 2; team++ {
		if g.Scores[team-1] >= g.Rules.PointsToWin {
			return team
		}
	}
	return 0
}

// NextHand advances the deal one seat left after a completed hand. The
// finished hand's state is discarded; history beyond the current hand is
// the caller's concern.
func (g *GameState) NextHand() error {
	if g.Phase != PhaseHandDone {
		return ErrWrongPhase
	}
	g.Dealer = NextSeat(g.Dealer)
	g.Hand = nil
	g.Phase = PhaseSetup
	return nil
}
