package holdem

import (
	"holdem-table/pkg/deck"
)

// Player is a seat at the table. The name and chip stack persist across
// rounds; cards, bet, and fold state are reset every round.
type Player struct {
	Name string

	chips      int
	cards      deck.Hand
	bet        int
	inRound    bool
	folded     bool
	smallBlind bool
	bigBlind   bool
}

// NewPlayer returns a player with a starting chip stack
func NewPlayer(name string, chips int) *Player {
	return &Player{
		Name:  name,
		chips: chips,
	}
}

// Chips returns the player's chip stack
func (p *Player) Chips() int {
	return p.chips
}

// CurrentBet returns the player's bet on the current street
func (p *Player) CurrentBet() int {
	return p.bet
}

// HoleCards returns the player's private cards
func (p *Player) HoleCards() deck.Hand {
	return p.cards.Clone()
}

// Folded returns true if the player folded this round
func (p *Player) Folded() bool {
	return p.folded
}

// InRound returns true if the player was dealt into the current round
func (p *Player) InRound() bool {
	return p.inRound
}

// IsSmallBlind returns true if the player posted the small blind this round
func (p *Player) IsSmallBlind() bool {
	return p.smallBlind
}

// IsBigBlind returns true if the player posted the big blind this round
func (p *Player) IsBigBlind() bool {
	return p.bigBlind
}

// contesting players are in the round and have not folded
func (p *Player) contesting() bool {
	return p.inRound && !p.folded
}

// placeBet debits the stack and credits the street bet.
// A bet exceeding the stack is silently not collected; forced blinds rely
// on this so an under-funded blind never faults the round.
func (p *Player) placeBet(amount int) {
	if amount > p.chips {
		return
	}

	p.chips -= amount
	p.bet += amount
}

// win credits winnings to the chip stack
func (p *Player) win(amount int) {
	p.chips += amount
}

// newStreet clears the per-street bet
func (p *Player) newStreet() {
	p.bet = 0
}

// newRound resets all per-round state. Players without chips sit the round
// out; their seat is kept.
func (p *Player) newRound() {
	p.cards = make(deck.Hand, 0, 2)
	p.bet = 0
	p.folded = false
	p.smallBlind = false
	p.bigBlind = false
	p.inRound = p.chips > 0
}
