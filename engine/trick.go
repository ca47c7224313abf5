package engine

// LegalCards computes the subset of hand that may legally be played given
// the trump suit and the card led. With no lead every card is legal.
// Otherwise the suit to follow is the led card's effective suit (the left
// bower counts as trump, not its printed suit) and a player holding that
// suit may only play it. A player with no card of the suit to follow may
// play anything, so a renege is impossible by construction when this
// function gates play.
func LegalCards(hand []Card, trump Suit, lead Card) []Card {
	if lead.IsEmpty() {
		return append([]Card(nil), hand...)
	}
	follow := lead.EffectiveSuit(trump)
	var matching []Card
	for _, c := range hand {
		if c.EffectiveSuit(trump) == follow {
			matching = append(matching, c)
		}
	}
	if len(matching) > 0 {
		return matching
	}
	return append([]Card(nil), hand...)
}

// LegalPlays returns the cards the seat may play to the current trick, or
// nil outside the play phase.
func (g *GameState) LegalPlays(seat int) []Card {
	if g.Phase != PhasePlay {
		return nil
	}
	t := g.Hand.CurrentTrick()
	if t == nil {
		return nil
	}
	lead, _ := t.LeadCard()
	return LegalCards(g.PlayerAt(seat).Hand, g.Hand.Trump, lead)
}

// ResolveTrickWinner returns the seat that won the trick under trump-aware
// rank order: right bower, left bower, remaining trump descending, then
// the suit actually led descending. Off-suit non-trump cards never win.
// A seat marked as reneging is excluded from winning consideration, though
// its card stays in the trick record.
func ResolveTrickWinner(t *Trick, trump Suit) (int, error) {
	if trump == NoSuit {
		return 0, ErrNoTrump
	}
	lead, ok := t.LeadCard()
	if !ok {
		return 0, ErrTrickIncomplete
	}
	led := lead.EffectiveSuit(trump)

	winner := 0
	var best Card
	for _, p := range t.Plays {
		if p.Player == t.Renege {
			continue
		}
		if winner == 0 || p.Card.Beats(best, trump, led) {
			winner = p.Player
			best = p.Card
		}
	}
	if winner == 0 {
		// Every play was marked as a renege.
		return 0, ErrTrickIncomplete
	}
	return winner, nil
}

// PlayOutcome reports what a single card play completed, for event
// dispatch by the caller.
type PlayOutcome struct {
	TrickComplete bool
	TrickWinner   int
	HandComplete  bool
}

// PlayCard plays a card from the seat's hand to the current trick. The
// card must be in the seat's legal set. Completing the trick resolves its
// winner and opens the next trick led by that winner; completing the fifth
// trick scores the hand.
func (g *GameState) PlayCard(seat int, card Card) (PlayOutcome, error) {
	var out PlayOutcome
	if g.Phase != PhasePlay {
		return out, ErrWrongPhase
	}
	if seat != g.Current {
		return out, ErrNotYourTurn
	}
	player := g.PlayerAt(seat)
	if !player.HasCard(card) {
		return out, ErrCardNotInHand
	}

	t := g.Hand.CurrentTrick()
	lead, _ := t.LeadCard()
	legal := false
	for _, c := range LegalCards(player.Hand, g.Hand.Trump, lead) {
		if c == card {
			legal = true
			break
		}
	}
	if !legal {
		return out, ErrMustFollowSuit
	}

	player.removeCard(card)
	player.Played = append(player.Played, card)
	t.Plays = append(t.Plays, PlayedCard{Player: seat, Card: card})

	if len(t.Plays) < g.activeSeatCount() {
		g.Current = g.nextActiveSeat(seat)
		return out, nil
	}

	winner, err := ResolveTrickWinner(t, g.Hand.Trump)
	if err != nil {
		return out, err
	}
	t.Winner = winner
	out.TrickComplete = true
	out.TrickWinner = winner

	if len(g.Hand.Tricks) == HandSize {
		if err := g.completeHand(); err != nil {
			return out, err
		}
		out.HandComplete = true
		return out, nil
	}

	g.Hand.Tricks = append(g.Hand.Tricks, Trick{})
	g.Current = winner
	return out, nil
}
