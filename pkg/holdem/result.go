package holdem

import (
	"github.com/google/uuid"

	"holdem-table/pkg/deck"
	"holdem-table/pkg/poker"
)

// RoundResult summarizes a completed round for display
type RoundResult struct {
	ID        uuid.UUID      `json:"id"`
	Pot       int            `json:"pot"`
	Community deck.Hand      `json:"community"`
	Winners   []string       `json:"winners"`
	Payouts   map[string]int `json:"payouts"`

	// ShowdownHands holds each showdown contestant's evaluation; it is
	// empty when the pot was won uncontested
	ShowdownHands map[string]*poker.Evaluation `json:"-"`
}
