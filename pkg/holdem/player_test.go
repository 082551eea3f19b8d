package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-table/pkg/deck"
)

func TestPlayer_placeBet(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("alice", 1000)
	p.placeBet(300)
	a.Equal(700, p.Chips())
	a.Equal(300, p.CurrentBet())

	// a bet beyond the stack is not collected
	p.placeBet(800)
	a.Equal(700, p.Chips())
	a.Equal(300, p.CurrentBet())

	p.placeBet(700)
	a.Equal(0, p.Chips())
	a.Equal(1000, p.CurrentBet())
}

func TestPlayer_win(t *testing.T) {
	p := NewPlayer("alice", 1000)
	p.win(500)
	assert.Equal(t, 1500, p.Chips())
}

func TestPlayer_newRound(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("alice", 1000)
	p.newRound()
	p.cards.AddCard(deck.CardFromString("14s"))
	p.placeBet(200)
	p.folded = true
	p.smallBlind = true

	p.newRound()
	a.True(p.InRound())
	a.False(p.Folded())
	a.False(p.IsSmallBlind())
	a.Empty(p.HoleCards())
	a.Equal(0, p.CurrentBet())
	a.Equal(800, p.Chips())

	// players without chips sit the round out
	p.chips = 0
	p.newRound()
	a.False(p.InRound())
	a.False(p.contesting())
}

func TestPlayer_newStreet(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("alice", 1000)
	p.newRound()
	p.placeBet(200)

	p.newStreet()
	a.Equal(0, p.CurrentBet())
	a.Equal(800, p.Chips())
}

func TestPlayer_HoleCards(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("alice", 1000)
	p.newRound()
	p.cards.AddCard(deck.CardFromString("14s"))

	// the returned hand is a copy
	cards := p.HoleCards()
	cards.AddCard(deck.CardFromString("2c"))
	a.Equal(1, len(p.HoleCards()))
}
