// Command euchre plays a game of Euchre in the terminal: one human seat
// (configurable, or none to spectate) against AI opponents.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/Coreven01/euchre/engine"
	"github.com/Coreven01/euchre/internal/config"
	"github.com/Coreven01/euchre/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetLevel(cfg.LogLevel)
	logger.SetOutput(os.Stderr)

	ctrl := game.New(cfg.Seed, cfg.Rules, tableEvents(), logger)
	ctrl.SkipAnimation = true

	g := ctrl.Game()
	if cfg.HumanSeat > 0 {
		g.PlayerAt(cfg.HumanSeat).Human = true
	}

	pterm.DefaultHeader.Println("Euchre")
	pterm.Info.Printfln("First to %d points. Difficulty: %s.", cfg.Rules.PointsToWin, cfg.Rules.Difficulty)

	for {
		st := ctrl.Advance()
		switch {
		case st.Phase == game.PhaseError:
			pterm.Error.Printfln("Game stopped: %v", ctrl.Err())
			os.Exit(1)
		case st.Phase == game.PhaseGameOver && st.Block == game.BlockGeneral:
			return
		case st.Block == game.BlockAwaitAIInput:
			// Brief pacing so AI turns are followable.
			time.Sleep(150 * time.Millisecond)
		case st.Block == game.BlockAwaitPromptResponse:
			if err := handlePrompt(ctrl, st); err != nil {
				pterm.Error.Println(err)
			}
		case st.Block == game.BlockAwaitUserInput:
			if err := handleCardSelect(ctrl); err != nil {
				pterm.Error.Println(err)
			}
		}
	}
}

// tableEvents renders game notifications to the terminal.
func tableEvents() game.Events {
	return game.Events{
		DealerChosen: func(_ uuid.UUID, dealer int, revealed []engine.Card) {
			pterm.Info.Printfln("Dealing for first dealer: %s. Seat %d deals.", cardList(revealed), dealer)
		},
		HandDealt: func(_ uuid.UUID, dealer int, deal *engine.DealResult) {
			pterm.Println()
			pterm.Info.Printfln("Seat %d deals. Flip card: %s", dealer, deal.Flip)
		},
		TrumpNamed: func(_ uuid.UUID, maker int, trump engine.Suit, alone bool) {
			suffix := ""
			if alone {
				suffix = ", going alone"
			}
			pterm.Success.Printfln("Seat %d makes %s trump%s.", maker, trump.Name(), suffix)
		},
		CardPlayed: func(_ uuid.UUID, seat int, card engine.Card, _ string) {
			pterm.Printfln("  seat %d plays %s", seat, card)
		},
		TrickWon: func(_ uuid.UUID, winner int, _ engine.Trick) {
			pterm.Info.Printfln("Seat %d takes the trick.", winner)
		},
		Reneged: func(_ uuid.UUID, seat int) {
			pterm.Warning.Printfln("Seat %d reneged!", seat)
		},
		HandFinished: func(_ uuid.UUID, res engine.HandResult) {
			if res.Euchred {
				pterm.Success.Printfln("Euchred! Team %d scores %d.", res.Team, res.Points)
			} else {
				pterm.Success.Printfln("Team %d scores %d.", res.Team, res.Points)
			}
		},
		GameOver: func(_ uuid.UUID, team int, scores [2]int) {
			pterm.Println()
			pterm.Success.Printfln("Team %d wins, %d to %d.", team, scores[team-1], scores[2-team])
		},
	}
}

// handlePrompt resolves a bid or discard prompt for the human seat.
func handlePrompt(ctrl *game.Controller, st game.FlowState) error {
	if st.Phase == game.PhaseDealerDiscard {
		return promptDiscard(ctrl)
	}
	return promptBid(ctrl, st)
}

func promptBid(ctrl *game.Controller, st game.FlowState) error {
	g := ctrl.Game()
	seat := g.Current
	hand := g.PlayerAt(seat).Hand
	flip := g.Hand.Flip

	pterm.Info.Printfln("Your hand: %s", cardList(hand))

	type choice struct {
		label string
		bid   engine.Bid
	}
	var choices []choice
	if st.Phase == game.PhaseBidRoundOne {
		choices = append(choices,
			choice{"Pass", engine.Bid{Pass: true}},
			choice{fmt.Sprintf("Order up %s", flip.Suit.Name()), engine.Bid{Suit: flip.Suit}},
		)
		if g.Rules.AllowLoner {
			choices = append(choices, choice{fmt.Sprintf("Order up %s alone", flip.Suit.Name()), engine.Bid{Suit: flip.Suit, Alone: true}})
		}
	} else {
		stuck := seat == g.Dealer && g.Rules.StickTheDealer
		if !stuck {
			choices = append(choices, choice{"Pass", engine.Bid{Pass: true}})
		}
		for _, s := range engine.AllSuits() {
			if s == flip.Suit {
				continue
			}
			choices = append(choices, choice{fmt.Sprintf("Name %s", s.Name()), engine.Bid{Suit: s}})
			if g.Rules.AllowLoner {
				choices = append(choices, choice{fmt.Sprintf("Name %s alone", s.Name()), engine.Bid{Suit: s, Alone: true}})
			}
		}
	}

	labels := make([]string, len(choices))
	for i, ch := range choices {
		labels[i] = ch.label
	}
	selected, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Your bid").
		WithOptions(labels).
		Show()
	if err != nil {
		return err
	}
	for _, ch := range choices {
		if ch.label == selected {
			return ctrl.SubmitBid(seat, ch.bid)
		}
	}
	return nil
}

func promptDiscard(ctrl *game.Controller) error {
	g := ctrl.Game()
	hand := g.PlayerAt(g.Dealer).Hand
	selected, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Pick a card to discard").
		WithOptions(cardLabels(hand)).
		Show()
	if err != nil {
		return err
	}
	return ctrl.SubmitDiscard(cardByLabel(hand, selected))
}

func handleCardSelect(ctrl *game.Controller) error {
	g := ctrl.Game()
	seat := g.Current
	legal := g.LegalPlays(seat)

	if t := g.Hand.CurrentTrick(); t != nil && len(t.Plays) > 0 {
		var played []string
		for _, p := range t.Plays {
			played = append(played, fmt.Sprintf("seat %d: %s", p.Player, p.Card))
		}
		pterm.Info.Printfln("On the table: %s", strings.Join(played, ", "))
	}
	pterm.Info.Printfln("Your hand: %s (trump %s)", cardList(g.PlayerAt(seat).Hand), g.Hand.Trump.Name())

	selected, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Play a card").
		WithOptions(cardLabels(legal)).
		Show()
	if err != nil {
		return err
	}
	return ctrl.SubmitPlay(seat, cardByLabel(legal, selected))
}

func cardList(cards []engine.Card) string {
	return strings.Join(cardLabels(cards), " ")
}

func cardLabels(cards []engine.Card) []string {
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = c.String()
	}
	return labels
}

func cardByLabel(cards []engine.Card, label string) engine.Card {
	for _, c := range cards {
		if c.String() == label {
			return c
		}
	}
	return engine.EmptyCard
}
