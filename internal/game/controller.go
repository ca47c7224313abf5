// Package game orchestrates the Euchre engine through the phase/animation/
// pause flow state machine. The controller owns the game instance; the
// presentation layer observes it and requests advancement, but never
// mutates it directly.
package game

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Coreven01/euchre/engine"
	"github.com/Coreven01/euchre/engine/brain"
)

// Controller drives one game of Euchre. All entry points are serialized
// through a single mutex, so phase logic never runs concurrently; callers
// on other goroutines (UI timers, input handlers) are the single-writer
// queue's clients.
//
// Every entry point is gated on the exact (phase, sub-step, block reason)
// it expects and silently no-ops otherwise, so re-invocation under stale
// state is harmless.
type Controller struct {
	mu     sync.Mutex
	log    *logrus.Entry
	game   *engine.GameState
	events Events

	flow        FlowState
	pendingNext FlowPhase // phase entered when the animation step confirms
	lastPlay    engine.PlayOutcome
	cancelled   bool
	err         error

	// SkipAnimation collapses every animate sub-step so the machine moves
	// compute-to-compute. Logical phase order is preserved.
	SkipAnimation bool
}

// New creates a controller for a fresh game. A nil logger falls back to
// the logrus standard logger.
func New(seed uint64, rules engine.GameRules, events Events, logger *logrus.Logger) *Controller {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	g := engine.NewGame(seed, rules)
	return &Controller{
		log:    logger.WithField("game_id", g.ID),
		game:   g,
		events: events,
		flow:   compute(PhaseIntro),
	}
}

// Game returns the game instance for observation. Callers must treat it
// as read-only.
func (c *Controller) Game() *engine.GameState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game
}

// Flow returns the current flow state.
func (c *Controller) Flow() FlowState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flow
}

// Err returns the fatal error that froze the machine, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Cancel stops all phase advancement until Reset. Partially applied
// mutations are not rolled back; the in-progress game instance is to be
// discarded by the caller.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelled {
		return
	}
	c.cancelled = true
	c.flow.Block = BlockCancelled
	c.log.Info("game cancelled")
}

// Reset abandons the current game entirely and starts a fresh one from the
// given seed. This is the only way out of the Error and Cancelled states.
func (c *Controller) Reset(seed uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rules := c.game.Rules
	c.game = engine.NewGame(seed, rules)
	c.log = c.log.Logger.WithField("game_id", c.game.ID)
	c.flow = compute(PhaseIntro)
	c.pendingNext = PhaseIntro
	c.cancelled = false
	c.err = nil
	c.log.Info("game reset")
}

// Advance executes at most one phase compute step and returns the new flow
// state. Calls made while the machine is animating, waiting on input,
// cancelled, or in error return immediately with the state unchanged.
func (c *Controller) Advance() FlowState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelled || c.flow.Phase == PhaseError {
		return c.flow
	}
	switch c.flow.Phase {
	case PhaseIntro:
		c.runIntro()
	case PhaseDealForDealer:
		c.runDealForDealer()
	case PhaseShuffle:
		c.runShuffle()
	case PhaseDeal:
		c.runDeal()
	case PhaseBidRoundOne, PhaseBidRoundTwo:
		c.runBidRound()
	case PhaseOrderTrump:
		c.runOrderTrump()
	case PhaseDealerDiscard:
		c.runDealerDiscard()
	case PhasePassDeal:
		c.runPassDeal()
	case PhasePlayCard:
		c.runPlayCard()
	case PhaseTrickFinished:
		c.runTrickFinished()
	case PhaseHandFinished:
		c.runHandFinished()
	case PhaseGameOver:
		c.runGameOver()
	}
	return c.flow
}

// ConfirmAnimation is called by the presentation layer when its animation
// for the current phase completes; the machine moves to the next phase's
// compute step. A no-op unless the machine is actually animating.
func (c *Controller) ConfirmAnimation() FlowState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelled || c.flow.Step != StepAnimate || c.flow.Block != BlockAnimating {
		return c.flow
	}
	c.flow = compute(c.pendingNext)
	return c.flow
}

// goTo finishes the current phase's compute step. Phases with presentation
// work enter their animate sub-step first; the rest move straight to the
// next phase's compute gate.
func (c *Controller) goTo(next FlowPhase) {
	if animates(c.flow.Phase) && !c.SkipAnimation {
		c.pendingNext = next
		c.flow = animating(c.flow.Phase)
		return
	}
	c.flow = compute(next)
}

// fail records a fatal error and freezes the machine until Reset.
func (c *Controller) fail(err error) {
	c.err = err
	c.flow = FlowState{Phase: PhaseError, Step: StepCompute, Block: BlockError}
	c.log.WithError(err).Error("game flow frozen")
}

func (c *Controller) runIntro() {
	if !c.flow.Matches(PhaseIntro, StepCompute, BlockNone) {
		return
	}
	c.log.WithField("rules", c.game.Rules).Info("game starting")
	c.goTo(PhaseDealForDealer)
}

func (c *Controller) runDealForDealer() {
	if !c.flow.Matches(PhaseDealForDealer, StepCompute, BlockNone) {
		return
	}
	deck, err := c.game.ShuffledDeck()
	if err != nil {
		c.fail(err)
		return
	}
	dealer, idx, err := engine.DetermineInitialDealer(deck, 1)
	if err != nil {
		c.fail(err)
		return
	}
	c.game.Dealer = dealer
	c.log.WithFields(logrus.Fields{"dealer": dealer, "cards_shown": idx + 1}).Info("initial dealer determined")
	c.fireDealerChosen(dealer, deck[:idx+1])
	c.goTo(PhaseShuffle)
}

// runShuffle is presentational; the authoritative shuffle happens inside
// ShuffleAndDeal so every deal consumes a fresh one.
func (c *Controller) runShuffle() {
	if !c.flow.Matches(PhaseShuffle, StepCompute, BlockNone) {
		return
	}
	c.goTo(PhaseDeal)
}

func (c *Controller) runDeal() {
	if !c.flow.Matches(PhaseDeal, StepCompute, BlockNone) {
		return
	}
	deal, err := c.game.ShuffleAndDeal()
	if err != nil {
		c.fail(err)
		return
	}
	c.log.WithFields(logrus.Fields{
		"hand_id": c.game.Hand.ID,
		"dealer":  c.game.Dealer,
		"flip":    deal.Flip.String(),
	}).Info("hand dealt")
	c.fireHandDealt(deal)
	c.goTo(PhaseBidRoundOne)
}

// runBidRound handles one bid action per entry. A human turn blocks on the
// bid prompt; an AI turn first blocks as a pacing point, then bids on the
// following advance.
func (c *Controller) runBidRound() {
	phase := c.flow.Phase
	seat := c.game.Current
	switch {
	case c.flow.Matches(phase, StepCompute, BlockNone):
		if c.game.PlayerAt(seat).Human {
			c.flow.Block = BlockAwaitPromptResponse
			return
		}
		c.flow.Block = BlockAwaitAIInput
	case c.flow.Matches(phase, StepCompute, BlockAwaitAIInput):
		bid, err := brain.SuggestBid(c.game, seat)
		if err != nil {
			c.fail(err)
			return
		}
		// An AI bid the engine rejects is a programming error.
		if err := c.applyBid(seat, bid); err != nil {
			c.fail(err)
		}
	}
}

// applyBid submits a bid to the engine and routes the flow by the engine
// phase that results. Assumes lock is held by caller.
func (c *Controller) applyBid(seat int, bid engine.Bid) error {
	if err := c.game.SubmitBid(seat, bid); err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{
		"seat": seat, "pass": bid.Pass, "suit": bid.Suit.Name(), "alone": bid.Alone,
	}).Debug("bid applied")

	switch c.game.Phase {
	case engine.PhaseBidRound1:
		c.flow = compute(PhaseBidRoundOne)
	case engine.PhaseBidRound2:
		c.flow = compute(PhaseBidRoundTwo)
	case engine.PhaseRedeal:
		c.flow = compute(PhasePassDeal)
	case engine.PhaseDealerDiscard, engine.PhasePlay:
		c.fireTrumpNamed()
		if c.game.Phase == engine.PhaseDealerDiscard {
			c.flow = compute(PhaseOrderTrump)
		} else {
			c.flow = compute(PhasePlayCard)
		}
	}
	return nil
}

// runOrderTrump covers the dealer picking up the flip card; the pickup
// itself already happened inside the engine when the bid was accepted.
func (c *Controller) runOrderTrump() {
	if !c.flow.Matches(PhaseOrderTrump, StepCompute, BlockNone) {
		return
	}
	c.log.WithFields(logrus.Fields{
		"maker": c.game.Hand.Maker, "trump": c.game.Hand.Trump.Name(),
	}).Info("trump ordered up")
	c.goTo(PhaseDealerDiscard)
}

func (c *Controller) runDealerDiscard() {
	dealer := c.game.Dealer
	switch {
	case c.flow.Matches(PhaseDealerDiscard, StepCompute, BlockNone):
		if c.game.PlayerAt(dealer).Human {
			c.flow.Block = BlockAwaitPromptResponse
			return
		}
		c.flow.Block = BlockAwaitAIInput
	case c.flow.Matches(PhaseDealerDiscard, StepCompute, BlockAwaitAIInput):
		card := brain.SuggestDiscard(c.game.PlayerAt(dealer).Hand, c.game.Hand.Trump)
		if err := c.game.DealerDiscard(card); err != nil {
			c.fail(err)
			return
		}
		c.log.WithField("card", card.String()).Debug("dealer discarded")
		c.flow = compute(PhasePlayCard)
	}
}

func (c *Controller) runPassDeal() {
	if !c.flow.Matches(PhasePassDeal, StepCompute, BlockNone) {
		return
	}
	if err := c.game.PassDeal(); err != nil {
		c.fail(err)
		return
	}
	c.log.WithField("dealer", c.game.Dealer).Info("all passed; deal moves left")
	c.flow = compute(PhaseDeal)
}

// runPlayCard handles one card play per entry, mirroring runBidRound's
// human/AI split. With AutoFollowSuit enabled a human's forced card is
// played without prompting.
func (c *Controller) runPlayCard() {
	seat := c.game.Current
	switch {
	case c.flow.Matches(PhasePlayCard, StepCompute, BlockNone):
		if c.game.PlayerAt(seat).Human {
			legal := c.game.LegalPlays(seat)
			if c.game.Rules.AutoFollowSuit && len(legal) == 1 {
				if err := c.applyPlay(seat, legal[0], "forced"); err != nil {
					c.fail(err)
				}
				return
			}
			c.flow.Block = BlockAwaitUserInput
			return
		}
		c.flow.Block = BlockAwaitAIInput
	case c.flow.Matches(PhasePlayCard, StepCompute, BlockAwaitAIInput):
		card, rule, err := brain.SelectCard(c.game, seat)
		if err != nil {
			c.fail(err)
			return
		}
		if err := c.applyPlay(seat, card, rule); err != nil {
			c.fail(err)
		}
	}
}

// applyPlay submits a card to the engine and routes the flow. Assumes lock
// is held by caller.
func (c *Controller) applyPlay(seat int, card engine.Card, rule string) error {
	out, err := c.game.PlayCard(seat, card)
	if err != nil {
		return err
	}
	c.lastPlay = out
	c.log.WithFields(logrus.Fields{
		"seat": seat, "card": card.String(), "rule": rule,
	}).Debug("card played")
	c.fireCardPlayed(seat, card, rule)
	if out.TrickComplete {
		c.goTo(PhaseTrickFinished)
	} else {
		c.goTo(PhasePlayCard)
	}
	return nil
}

func (c *Controller) runTrickFinished() {
	if !c.flow.Matches(PhaseTrickFinished, StepCompute, BlockNone) {
		return
	}
	tricks := c.game.Hand.Tricks
	resolved := tricks[len(tricks)-1]
	if !c.lastPlay.HandComplete {
		// PlayCard already opened the next (empty) trick.
		resolved = tricks[len(tricks)-2]
	}
	c.log.WithFields(logrus.Fields{"winner": resolved.Winner}).Info("trick finished")
	c.fireTrickWon(resolved)
	if c.lastPlay.HandComplete {
		c.goTo(PhaseHandFinished)
	} else {
		c.goTo(PhasePlayCard)
	}
}

func (c *Controller) runHandFinished() {
	if !c.flow.Matches(PhaseHandFinished, StepCompute, BlockNone) {
		return
	}
	res := c.game.Hand.Result
	if res == nil {
		c.fail(engine.ErrTrickIncomplete)
		return
	}
	c.log.WithFields(logrus.Fields{
		"team": res.Team, "points": res.Points, "euchred": res.Euchred,
	}).Info("hand finished")
	c.fireHandFinished()

	if c.game.IsGameOver() {
		c.goTo(PhaseGameOver)
		return
	}
	if err := c.game.NextHand(); err != nil {
		c.fail(err)
		return
	}
	c.goTo(PhaseDeal)
}

func (c *Controller) runGameOver() {
	if !c.flow.Matches(PhaseGameOver, StepCompute, BlockNone) {
		return
	}
	c.log.WithFields(logrus.Fields{
		"winning_team": c.game.WinningTeam(),
		"scores":       c.game.Scores,
	}).Info("game over")
	c.fireGameOver()
	// Stay in GameOver; block further entries until Reset.
	c.flow.Block = BlockGeneral
}

// SubmitBid applies a human player's bid. Valid only while the machine is
// blocked on the bid prompt for that seat; engine rejections (wrong suit,
// dealer pass under stick-the-dealer) are returned for the prompt to
// re-present and leave all state unchanged.
func (c *Controller) SubmitBid(seat int, bid engine.Bid) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelled {
		return engine.ErrWrongPhase
	}
	if c.flow.Block != BlockAwaitPromptResponse ||
		(c.flow.Phase != PhaseBidRoundOne && c.flow.Phase != PhaseBidRoundTwo) {
		return engine.ErrWrongPhase
	}
	if seat != c.game.Current {
		return engine.ErrNotYourTurn
	}
	return c.applyBid(seat, bid)
}

// SubmitDiscard applies the human dealer's discard choice.
func (c *Controller) SubmitDiscard(card engine.Card) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelled || !c.flow.Matches(PhaseDealerDiscard, StepCompute, BlockAwaitPromptResponse) {
		return engine.ErrWrongPhase
	}
	if err := c.game.DealerDiscard(card); err != nil {
		return err
	}
	c.flow = compute(PhasePlayCard)
	return nil
}

// SubmitPlay applies a human player's card selection.
func (c *Controller) SubmitPlay(seat int, card engine.Card) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelled || !c.flow.Matches(PhasePlayCard, StepCompute, BlockAwaitUserInput) {
		return engine.ErrWrongPhase
	}
	if seat != c.game.Current {
		return engine.ErrNotYourTurn
	}
	return c.applyPlay(seat, card, "human")
}
