package holdem

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"holdem-table/internal/rng"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

// scriptedProvider replays a fixed list of actions and records the turn order
type scriptedProvider struct {
	t       *testing.T
	actions []Action
	index   int
	turns   []string
}

func (s *scriptedProvider) RequestAction(player *Player, legal []ActionType, ctx TurnContext) Action {
	require.Less(s.t, s.index, len(s.actions), "unexpected action request for %s", player.Name)

	action := s.actions[s.index]
	s.index++
	s.turns = append(s.turns, player.Name)

	return action
}

func (s *scriptedProvider) exhausted() bool {
	return s.index == len(s.actions)
}

func fold() Action  { return Action{Type: ActionFold} }
func check() Action { return Action{Type: ActionCheck} }
func call() Action  { return Action{Type: ActionCall} }

func raiseTo(amount int) Action {
	return Action{Type: ActionRaise, Amount: amount}
}

func testTable(t *testing.T, provider ActionProvider, names ...string) *Table {
	t.Helper()

	table, err := New(testLogger(), names, DefaultOptions(), provider, rng.NewSeeded(1))
	require.NoError(t, err)

	return table
}
