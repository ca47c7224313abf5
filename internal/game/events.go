package game

import (
	"github.com/google/uuid"

	"github.com/Coreven01/euchre/engine"
)

// Events holds the notification callbacks the controller fires as the game
// progresses. All callbacks are optional and consumed for display only;
// the controller never depends on their behavior. Callbacks run on the
// controller's goroutine with its lock held, so they must not call back
// into the controller.
type Events struct {
	DealerChosen func(gameID uuid.UUID, dealer int, revealed []engine.Card)
	HandDealt    func(handID uuid.UUID, dealer int, deal *engine.DealResult)
	TrumpNamed   func(handID uuid.UUID, maker int, trump engine.Suit, alone bool)
	CardPlayed   func(handID uuid.UUID, seat int, card engine.Card, rule string)
	TrickWon     func(handID uuid.UUID, winner int, trick engine.Trick)
	Reneged      func(handID uuid.UUID, seat int)
	HandFinished func(handID uuid.UUID, result engine.HandResult)
	GameOver     func(gameID uuid.UUID, winningTeam int, scores [2]int)
}

func (c *Controller) fireDealerChosen(dealer int, revealed []engine.Card) {
	if c.events.DealerChosen != nil {
		c.events.DealerChosen(c.game.ID, dealer, revealed)
	}
}

func (c *Controller) fireHandDealt(deal *engine.DealResult) {
	if c.events.HandDealt != nil {
		c.events.HandDealt(c.game.Hand.ID, c.game.Dealer, deal)
	}
}

func (c *Controller) fireTrumpNamed() {
	if c.events.TrumpNamed != nil {
		h := c.game.Hand
		c.events.TrumpNamed(h.ID, h.Maker, h.Trump, h.Alone)
	}
}

func (c *Controller) fireCardPlayed(seat int, card engine.Card, rule string) {
	if c.events.CardPlayed != nil {
		c.events.CardPlayed(c.game.Hand.ID, seat, card, rule)
	}
}

func (c *Controller) fireTrickWon(t engine.Trick) {
	if c.events.TrickWon != nil {
		c.events.TrickWon(c.game.Hand.ID, t.Winner, t)
	}
	if t.Renege != 0 && c.events.Reneged != nil {
		c.events.Reneged(c.game.Hand.ID, t.Renege)
	}
}

func (c *Controller) fireHandFinished() {
	if c.events.HandFinished != nil && c.game.Hand.Result != nil {
		c.events.HandFinished(c.game.Hand.ID, *c.game.Hand.Result)
	}
}

func (c *Controller) fireGameOver() {
	if c.events.GameOver != nil {
		c.events.GameOver(c.game.ID, c.game.WinningTeam(), c.game.Scores)
	}
}
