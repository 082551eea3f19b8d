package poker

import (
	"testing"

	ref "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"holdem-table/internal/rng"
	"holdem-table/pkg/deck"
)

// refCard converts a deck.Card to the reference library's representation.
// Our ranks run 2..14 with Ace=14; the library uses Ace=1.
func refCard(t *testing.T, c *deck.Card) ref.Card {
	t.Helper()

	var s ref.Suit
	switch c.Suit {
	case deck.Clubs:
		s = ref.Club
	case deck.Diamonds:
		s = ref.Diamond
	case deck.Hearts:
		s = ref.Heart
	case deck.Spades:
		s = ref.Spade
	}

	rank := c.Rank
	if rank == deck.Ace {
		rank = 1
	}

	card, err := ref.MakeCard(s, ref.Rank(rank))
	require.NoError(t, err)

	return card
}

func refScore(t *testing.T, cards []*deck.Card) int16 {
	t.Helper()

	var seven [7]ref.Card
	require.Len(t, cards, 7)
	for i, c := range cards {
		seven[i] = refCard(t, c)
	}

	return ref.Eval7(&seven)
}

// Cross-check the comparator against an independent seven-card evaluator
// over a few thousand randomly dealt pairs of hands.
func TestEvaluation_Compare_matchesReference(t *testing.T) {
	g := rng.NewSeeded(1)

	for i := 0; i < 2500; i++ {
		d := deck.New(g)
		d.Shuffle()

		draw := func(n int) []*deck.Card {
			cards := make([]*deck.Card, n)
			for j := 0; j < n; j++ {
				card, err := d.Draw()
				require.NoError(t, err)
				cards[j] = card
			}
			return cards
		}

		// two hole cards each over a shared five-card board
		board := draw(5)
		h1 := append(draw(2), board...)
		h2 := append(draw(2), board...)

		want := 0
		if s1, s2 := refScore(t, h1), refScore(t, h2); s1 > s2 {
			want = 1
		} else if s1 < s2 {
			want = -1
		}

		got := Evaluate(h1).Compare(Evaluate(h2))
		require.Equalf(t, want, got, "hands %s vs %s", deck.CardsToString(h1), deck.CardsToString(h2))
	}
}
