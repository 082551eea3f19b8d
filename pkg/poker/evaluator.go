package poker

import (
	"fmt"
	"math"
	"sort"

	"holdem-table/pkg/deck"
)

// handSize is the number of cards in a made poker hand
const handSize = 5

// Evaluation classifies the best five-card hand found in a set of cards.
// It carries the hand category and the tie-break key used to order two
// evaluations of the same category.
type Evaluation struct {
	hand     Hand
	tieBreak []int
}

// Evaluate returns the best five-card classification for the cards.
// The cards are treated as a multiset; no duplicate validation is performed.
// Fewer than five cards degrades to a high-card evaluation with an empty
// tie-break key. Evaluating zero cards is a caller bug and panics.
func Evaluate(cards []*deck.Card) *Evaluation {
	if len(cards) == 0 {
		panic("cannot evaluate an empty set of cards")
	}

	newCards := make([]*deck.Card, len(cards))
	copy(newCards, cards)

	sort.Sort(sort.Reverse(sortByRank(newCards)))

	if len(newCards) < handSize {
		return &Evaluation{hand: HighCard, tieBreak: []int{}}
	}

	a := &analysis{cards: newCards}
	a.analyze()

	return a.evaluation()
}

// GetHand returns the hand category
func (e *Evaluation) GetHand() Hand {
	return e.hand
}

// GetTieBreak returns the ordered rank values used to break same-category ties
func (e *Evaluation) GetTieBreak() []int {
	tb := make([]int, len(e.tieBreak))
	copy(tb, e.tieBreak)

	return tb
}

func (e *Evaluation) String() string {
	return fmt.Sprintf("%s %v", e.hand, e.tieBreak)
}

// Compare orders two evaluations.
// Returns 1 if e beats other, -1 if other beats e, and 0 on an exact tie.
// The category dominates; within the same category the tie-break keys are
// walked position by position and the first difference decides.
func (e *Evaluation) Compare(other *Evaluation) int {
	if e.hand != other.hand {
		if e.hand > other.hand {
			return 1
		}

		return -1
	}

	n := len(e.tieBreak)
	if len(other.tieBreak) < n {
		n = len(other.tieBreak)
	}

	for i := 0; i < n; i++ {
		if e.tieBreak[i] != other.tieBreak[i] {
			if e.tieBreak[i] > other.tieBreak[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

// analysis holds the combinations found in a single pass over the cards
type analysis struct {
	cards         []*deck.Card
	flush         []int
	quads         []int
	trips         []int
	pairs         []int
	straightFlush int
	straight      int
}

// analyze will loop through the cards and calculate the various combinations.
// This must be called before evaluation(), and only once.
func (a *analysis) analyze() {
	// keeps track of flushes
	suitCounts := make(map[deck.Suit][]int)

	// straight-flush trackers
	sfTracker := map[deck.Suit]*straightTracker{
		deck.Clubs:    {},
		deck.Diamonds: {},
		deck.Hearts:   {},
		deck.Spades:   {},
	}

	// straight tracker
	sTracker := straightTracker{}

	// keeps track of pairs, trips, and quads
	prevRank := math.MaxInt8
	numOfRank := 0

	nCards := len(a.cards)
	for i, card := range a.cards {
		if a.straightFlush == 0 {
			a.checkStraight(card, sfTracker[card.Suit], deck.HighAce, &a.straightFlush)
		}

		if a.straight == 0 {
			a.checkStraight(card, &sTracker, deck.HighAce, &a.straight)
		}

		if a.flush == nil {
			a.checkFlush(card, suitCounts)
		}

		isLastCard := i+1 == nCards
		a.checkPairs(card, &prevRank, &numOfRank, isLastCard)
	}

	// check for straights and straight flushes with a low-ace (the wheel)
	for _, card := range a.cards {
		if card.Rank != deck.Ace {
			break
		}

		if a.straightFlush == 0 {
			a.checkStraight(card, sfTracker[card.Suit], deck.LowAce, &a.straightFlush)
		}

		if a.straight == 0 {
			a.checkStraight(card, &sTracker, deck.LowAce, &a.straight)
		}
	}
}

// evaluation classifies the analyzed cards in strict descending strength
// order; the first match wins
func (a *analysis) evaluation() *Evaluation {
	if high, ok := a.getStraightFlush(); ok {
		return &Evaluation{hand: StraightFlush, tieBreak: []int{high}}
	}

	if quad, ok := a.getFourOfAKind(); ok {
		return &Evaluation{hand: FourOfAKind, tieBreak: append([]int{quad}, a.kickers(1, quad)...)}
	}

	if fullHouse, ok := a.getFullHouse(); ok {
		return &Evaluation{hand: FullHouse, tieBreak: fullHouse}
	}

	if flush, ok := a.getFlush(); ok {
		return &Evaluation{hand: Flush, tieBreak: flush}
	}

	if high, ok := a.getStraight(); ok {
		return &Evaluation{hand: Straight, tieBreak: []int{high}}
	}

	if trips, ok := a.getThreeOfAKind(); ok {
		return &Evaluation{hand: ThreeOfAKind, tieBreak: append([]int{trips}, a.kickers(2, trips)...)}
	}

	if pairs, ok := a.getTwoPair(); ok {
		return &Evaluation{hand: TwoPair, tieBreak: append(pairs, a.kickers(1, pairs...)...)}
	}

	if pair, ok := a.getPair(); ok {
		return &Evaluation{hand: OnePair, tieBreak: append([]int{pair}, a.kickers(3, pair)...)}
	}

	return &Evaluation{hand: HighCard, tieBreak: a.kickers(handSize)}
}

// getStraightFlush will return the high card of the best straight flush, if possible
func (a *analysis) getStraightFlush() (int, bool) {
	if a.straightFlush > 0 {
		return a.straightFlush, true
	}

	return 0, false
}

// getFourOfAKind will return the best four of a kind, if possible
func (a *analysis) getFourOfAKind() (int, bool) {
	if len(a.quads) > 0 {
		return a.quads[0], true
	}

	return 0, false
}

// getFullHouse will return the best full house, if possible.
// The triple and the pair must occupy genuinely distinct rank groups; a
// second triple may be carved down to serve as the pair.
func (a *analysis) getFullHouse() ([]int, bool) {
	if len(a.trips) == 0 {
		return nil, false
	}

	trips := a.trips[0]

	pair, ok := a.getPair()
	if !ok {
		if len(a.trips) == 1 {
			// could not find a pair from a second set of trips
			return nil, false
		}

		pair = a.trips[1]
	} else if len(a.trips) >= 2 && a.trips[1] > pair {
		// with seven cards we may have two sets of trips and a separate pair;
		// make sure we grab the better pair from the second trips
		pair = a.trips[1]
	}

	return []int{trips, pair}, true
}

// getFlush will return the best possible flush, if possible
func (a *analysis) getFlush() ([]int, bool) {
	if a.flush != nil {
		return a.flush, true
	}

	return nil, false
}

// getStraight will return the high card of the best straight, if possible
func (a *analysis) getStraight() (int, bool) {
	if a.straight > 0 {
		return a.straight, true
	}

	return 0, false
}

// getThreeOfAKind will return the best three of a kind, if possible
func (a *analysis) getThreeOfAKind() (int, bool) {
	if len(a.trips) > 0 {
		return a.trips[0], true
	}

	return 0, false
}

// getTwoPair will return the best two pairs, if possible
func (a *analysis) getTwoPair() ([]int, bool) {
	if len(a.pairs) >= 2 {
		pairs := make([]int, 2)
		copy(pairs, a.pairs)

		return pairs, true
	}

	return nil, false
}

// getPair will return the best pair, if possible
func (a *analysis) getPair() (int, bool) {
	if len(a.pairs) > 0 {
		return a.pairs[0], true
	}

	return 0, false
}

// kickers returns up to count ranks, highest first, excluding the ranks
// already spent on the combination
func (a *analysis) kickers(count int, exclude ...int) []int {
	excluded := make(map[int]bool, len(exclude))
	for _, rank := range exclude {
		excluded[rank] = true
	}

	kickers := make([]int, 0, count)
	for _, card := range a.cards {
		if excluded[card.Rank] {
			continue
		}

		kickers = append(kickers, card.Rank)
		if len(kickers) == count {
			break
		}
	}

	return kickers
}

func (a *analysis) checkFlush(card *deck.Card, suitCounts map[deck.Suit][]int) {
	ranks, ok := suitCounts[card.Suit]
	if !ok {
		ranks = make([]int, 0, 1)
	}
	ranks = append(ranks, card.Rank)
	suitCounts[card.Suit] = ranks

	if len(ranks) >= handSize {
		a.flush = ranks
	}
}

func (a *analysis) checkPairs(card *deck.Card, prevRank, numOfRank *int, isLastCard bool) {
	if card.Rank == *prevRank {
		*numOfRank++
	}

	// if the card is no longer the same rank, or we're at the end,
	// check the longest group of cards we can form
	if card.Rank != *prevRank || isLastCard {
		switch {
		case *numOfRank >= 4:
			a.quads = append(a.quads, *prevRank)
		case *numOfRank == 3:
			a.trips = append(a.trips, *prevRank)
		case *numOfRank == 2:
			a.pairs = append(a.pairs, *prevRank)
		}

		*numOfRank = 1
	}

	*prevRank = card.Rank
}
