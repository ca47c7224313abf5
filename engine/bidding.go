package engine

// Bid is one player's bidding action. In round one a non-pass bid orders
// the flip card's suit up; Suit is ignored (it may name the flip suit
// explicitly). In round two a non-pass bid names any suit other than the
// flip suit.
type Bid struct {
	Pass  bool
	Suit  Suit
	Alone bool
}

// BidRound returns the current bidding round (1 or 2), or 0 when the hand
// is not in a bidding phase.
func (g *GameState) BidRound() int {
	switch g.Phase {
	case PhaseBidRound1:
		return 1
	case PhaseBidRound2:
		return 2
	default:
		return 0
	}
}

// SubmitBid applies one player's bid. Bids proceed in seating order
// starting left of the dealer; the first accepted bid names trump and ends
// bidding. If round two reaches the dealer with all others passed, the
// dealer is not permitted to pass ("stick the dealer"); SubmitBid rejects
// the pass with ErrDealerMustBid.
func (g *GameState) SubmitBid(seat int, bid Bid) error {
	round := g.BidRound()
	if round == 0 {
		return ErrWrongPhase
	}
	if seat != g.Current {
		return ErrNotYourTurn
	}
	if bid.Alone && !g.Rules.AllowLoner {
		return ErrInvalidBid
	}

	if bid.Pass {
		return g.applyPass(seat, round)
	}

	switch round {
	case 1:
		if bid.Suit != NoSuit && bid.Suit != g.Hand.Flip.Suit {
			return ErrInvalidBid
		}
		return g.orderUp(seat, bid.Alone)
	default:
		if bid.Suit == NoSuit || bid.Suit == g.Hand.Flip.Suit {
			return ErrInvalidBid
		}
		return g.nameTrump(seat, bid.Suit, bid.Alone)
	}
}

// applyPass advances the bid turn, rolling into round two after the dealer
// passes in round one, and into the redeal phase if round two is fully
// passed (only reachable with stick-the-dealer disabled).
func (g *GameState) applyPass(seat, round int) error {
	dealerPassing := seat == g.Dealer
	if dealerPassing && round == 2 {
		if g.Rules.StickTheDealer {
			return ErrDealerMustBid
		}
		g.Phase = PhaseRedeal
		return nil
	}
	if dealerPassing {
		g.Phase = PhaseBidRound2
	}
	g.Current = NextSeat(seat)
	return nil
}

// orderUp accepts the flip card's suit as trump. The dealer picks the flip
// card into hand and must discard back down to five before play begins,
// except when the dealer sits out for the maker's loner.
func (g *GameState) orderUp(seat int, alone bool) error {
	h := g.Hand
	h.Trump = h.Flip.Suit
	h.Maker = seat
	h.Alone = alone
	if alone {
		g.PlayerAt(PartnerOf(seat)).SittingOut = true
	}

	dealer := g.PlayerAt(g.Dealer)
	if dealer.SittingOut {
		// The maker's partner was the dealer; the flip card stays down.
		g.beginPlay()
		return nil
	}
	dealer.Hand = append(dealer.Hand, h.Flip)
	g.Phase = PhaseDealerDiscard
	g.Current = g.Dealer
	return nil
}

// nameTrump accepts a round-two suit declaration and starts play.
func (g *GameState) nameTrump(seat int, suit Suit, alone bool) error {
	h := g.Hand
	h.Trump = suit
	h.Maker = seat
	h.Alone = alone
	if alone {
		g.PlayerAt(PartnerOf(seat)).SittingOut = true
	}
	g.beginPlay()
	return nil
}

// DealerDiscard resolves the dealer's six-card hand back to five after an
// order-up, then starts play. This is its own sub-phase so human dealers
// can be prompted while AI dealers auto-discard.
func (g *GameState) DealerDiscard(card Card) error {
	if g.Phase != PhaseDealerDiscard {
		return ErrWrongPhase
	}
	dealer := g.PlayerAt(g.Dealer)
	if !dealer.removeCard(card) {
		return ErrCardNotInHand
	}
	g.beginPlay()
	return nil
}

// PassDeal abandons an all-passed hand: the deal moves one seat left and
// the hand must be redealt via ShuffleAndDeal.
func (g *GameState) PassDeal() error {
	if g.Phase != PhaseRedeal {
		return ErrWrongPhase
	}
	g.Dealer = NextSeat(g.Dealer)
	g.Hand = nil
	g.Phase = PhaseSetup
	return nil
}

// beginPlay opens the first trick. The first active seat left of the
// dealer leads.
func (g *GameState) beginPlay() {
	g.Phase = PhasePlay
	g.Hand.Tricks = append(g.Hand.Tricks, Trick{})
	g.Current = g.nextActiveSeat(g.Dealer)
}
