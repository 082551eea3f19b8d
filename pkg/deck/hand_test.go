package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)

	hand := make(Hand, 0)
	hand.AddCard(CardFromString("14s"))
	hand.AddCard(CardFromString("2c"))

	a.Equal(2, len(hand))
	a.Equal("14s,2c", hand.String())
}

func TestHand_HasCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("14s,2c,9d"))
	a.True(hand.HasCard(CardFromString("2c")))
	a.False(hand.HasCard(CardFromString("2d")))
}

func TestHand_FirstCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("14s,2c"))
	a.Equal(Card{Rank: 14, Suit: Spades}, *hand.FirstCard())

	empty := make(Hand, 0)
	a.Nil(empty.FirstCard())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("14s,2c"))
	clone := hand.Clone()
	a.Equal(hand.String(), clone.String())

	clone.AddCard(CardFromString("9d"))
	a.Equal(2, len(hand))
	a.Equal(3, len(clone))
}
