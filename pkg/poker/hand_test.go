package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("High card", HighCard.String())
	a.Equal("Pair", OnePair.String())
	a.Equal("Two pair", TwoPair.String())
	a.Equal("Three of a kind", ThreeOfAKind.String())
	a.Equal("Straight", Straight.String())
	a.Equal("Flush", Flush.String())
	a.Equal("Full house", FullHouse.String())
	a.Equal("Four of a kind", FourOfAKind.String())
	a.Equal("Straight flush", StraightFlush.String())

	a.PanicsWithValue("unknown hand: 9", func() {
		_ = Hand(9).String()
	})
}
