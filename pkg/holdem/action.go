package holdem

import (
	"fmt"

	"holdem-table/pkg/deck"
)

// ActionType identifies a betting decision
type ActionType string

// action constants
const (
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
)

func (a ActionType) String() string {
	switch a {
	case ActionFold:
		return "Fold"
	case ActionCheck:
		return "Check"
	case ActionCall:
		return "Call"
	case ActionRaise:
		return "Raise"
	}

	panic(fmt.Sprintf("unknown action: %s", string(a)))
}

// Action is a decision returned by an ActionProvider.
// Amount is the raise-to total for a raise and ignored otherwise.
type Action struct {
	Type   ActionType `json:"type"`
	Amount int        `json:"amount"`
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage() string {
	switch a.Type {
	case ActionFold:
		return "folded"
	case ActionCheck:
		return "checked"
	case ActionCall:
		return "called"
	case ActionRaise:
		return fmt.Sprintf("raised to %d", a.Amount)
	}

	return ""
}

// TurnContext describes the decision facing the player on the clock
type TurnContext struct {
	Pot        int
	CurrentBet int
	ToCall     int
	MinRaise   int // minimum raise-to total
	MaxRaise   int // raise-to total that puts the entire stack in play
	Stack      int
	Community  deck.Hand
}

// ActionProvider supplies a decision for the player on the clock. The
// collaborator validates raw input; the engine re-validates whatever comes
// back and degrades anything invalid to a fold.
type ActionProvider interface {
	RequestAction(player *Player, legal []ActionType, ctx TurnContext) Action
}
