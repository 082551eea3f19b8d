package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionType_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("Fold", ActionFold.String())
	a.Equal("Check", ActionCheck.String())
	a.Equal("Call", ActionCall.String())
	a.Equal("Raise", ActionRaise.String())

	a.Panics(func() {
		_ = ActionType("bet").String()
	})
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)

	a.Equal("folded", Action{Type: ActionFold}.LogMessage())
	a.Equal("checked", Action{Type: ActionCheck}.LogMessage())
	a.Equal("called", Action{Type: ActionCall}.LogMessage())
	a.Equal("raised to 400", Action{Type: ActionRaise, Amount: 400}.LogMessage())
	a.Equal("", Action{Type: ActionType("bet")}.LogMessage())
}
