package holdem

import (
	"errors"

	"github.com/sirupsen/logrus"

	"holdem-table/internal/rng"
)

// Options configures the table
type Options struct {
	StartingChips int
	SmallBlind    int
	BigBlind      int
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		StartingChips: 20000,
		SmallBlind:    100,
		BigBlind:      200,
	}
}

func validateOptions(opts Options) error {
	if opts.StartingChips <= 0 {
		return errors.New("starting chips must be > 0")
	}

	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind <= opts.SmallBlind {
		return errors.New("big blind must be greater than the small blind")
	}

	return nil
}

// Table seats the players and runs rounds. Player identity and chip stacks
// persist across rounds; the dealer button advances one seat per round.
type Table struct {
	logger   logrus.FieldLogger
	options  Options
	players  []*Player
	dealer   int
	provider ActionProvider
	rng      rng.Generator
}

// New returns a table with the named players seated in order
func New(logger logrus.FieldLogger, names []string, opts Options, provider ActionProvider, generator rng.Generator) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(names) < 2 {
		return nil, errors.New("there must be at least two players")
	}

	if provider == nil {
		return nil, errors.New("an action provider is required")
	}

	if generator == nil {
		generator = rng.Crypto{}
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name, opts.StartingChips)
	}

	return &Table{
		logger:   logger,
		options:  opts,
		players:  players,
		provider: provider,
		rng:      generator,
	}, nil
}

// Players returns the players in seat order
func (t *Table) Players() []*Player {
	players := make([]*Player, len(t.players))
	copy(players, t.players)

	return players
}

// Dealer returns the seat index of the dealer button
func (t *Table) Dealer() int {
	return t.dealer
}

// PlayRound runs a single round. The dealer button advances one seat when
// the round ends, regardless of the outcome.
func (t *Table) PlayRound() (*RoundResult, error) {
	result, err := newRound(t).play()

	t.dealer = (t.dealer + 1) % len(t.players)

	return result, err
}
