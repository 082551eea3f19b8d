package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"holdem-table/pkg/deck"
	"holdem-table/pkg/holdem"
)

// terminalProvider prompts the player on the clock for a decision.
// The raw input is validated here; the engine re-validates regardless.
type terminalProvider struct{}

func (terminalProvider) RequestAction(player *holdem.Player, legal []holdem.ActionType, ctx holdem.TurnContext) holdem.Action {
	pterm.Println()
	pterm.Info.Printfln("%s is up (stack %d, pot %d)", player.Name, ctx.Stack, ctx.Pot)
	pterm.Info.Printfln("Your cards: %s", renderCards(player.HoleCards()))

	if len(ctx.Community) > 0 {
		pterm.Info.Printfln("Board: %s", renderCards(ctx.Community))
	}

	if ctx.ToCall > 0 {
		pterm.Info.Printfln("%d to call", ctx.ToCall)
	}

	options := make([]string, len(legal))
	for i, actionType := range legal {
		options[i] = actionType.String()
	}

	selected, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Select your next action").
		WithOptions(options).
		Show()

	switch selected {
	case holdem.ActionCheck.String():
		return holdem.Action{Type: holdem.ActionCheck}
	case holdem.ActionCall.String():
		return holdem.Action{Type: holdem.ActionCall}
	case holdem.ActionRaise.String():
		return holdem.Action{Type: holdem.ActionRaise, Amount: promptRaise(ctx)}
	default:
		return holdem.Action{Type: holdem.ActionFold}
	}
}

func promptRaise(ctx holdem.TurnContext) int {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Raise to (%d-%d)", ctx.MinRaise, ctx.MaxRaise)).
			Show()

		amount, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || amount < ctx.MinRaise || amount > ctx.MaxRaise {
			pterm.Error.Println("Invalid raise amount")
			continue
		}

		return amount
	}
}

func renderCards(cards deck.Hand) string {
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = card.String()
	}

	return strings.Join(rendered, " ")
}
