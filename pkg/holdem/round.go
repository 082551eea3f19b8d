package holdem

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-table/pkg/deck"
	"holdem-table/pkg/poker"
)

// Round runs a single hand from blinds to settlement. All per-round state
// (deck, community cards, pot, player bets and folds) lives here and is
// discarded when the round completes.
type Round struct {
	logger    logrus.FieldLogger
	options   Options
	provider  ActionProvider
	players   []*Player
	dealer    int
	deck      *deck.Deck
	community deck.Hand
	pot       int
}

func newRound(t *Table) *Round {
	d := deck.New(t.rng)
	d.Shuffle()

	for _, p := range t.players {
		p.newRound()
	}

	return &Round{
		logger:    t.logger,
		options:   t.options,
		provider:  t.provider,
		players:   t.players,
		dealer:    t.dealer,
		deck:      d,
		community: make(deck.Hand, 0, 5),
	}
}

// play sequences one round: blinds, hole cards, the four streets, and the
// showdown. Dealing from an empty deck aborts the round with an error; it
// signals a dealing-logic bug, not a recoverable condition.
func (r *Round) play() (*RoundResult, error) {
	if r.contestingCount() < 2 {
		return nil, errors.New("at least two players must have chips")
	}

	r.logger.WithFields(logrus.Fields{
		"dealer": r.players[r.dealer].Name,
		"deck":   r.deck.HashCode(),
	}).Debug("starting round")

	n := len(r.players)
	smallBlindSeat := (r.dealer + 1) % n
	bigBlindSeat := (r.dealer + 2) % n
	r.postBlinds(smallBlindSeat, bigBlindSeat)

	if err := r.dealHoleCards(); err != nil {
		return nil, err
	}

	// pre-flop action starts after the big blind, with the big blind to match
	r.runStreet((bigBlindSeat+1)%n, r.options.BigBlind)

	streets := []struct {
		name  string
		cards int
	}{
		{"flop", 3},
		{"turn", 1},
		{"river", 1},
	}

	for _, street := range streets {
		if r.contestingCount() < 2 {
			break
		}

		if err := r.dealCommunity(street.cards); err != nil {
			return nil, err
		}

		r.logger.WithFields(logrus.Fields{
			"street":    street.name,
			"community": r.community.String(),
		}).Debug("dealt community cards")

		r.runStreet(bigBlindSeat, 0)
	}

	return r.settle(), nil
}

// postBlinds force-posts the blinds. A blind is a call-equivalent bet; if the
// player cannot cover it, the blind is simply not collected.
func (r *Round) postBlinds(smallBlindSeat, bigBlindSeat int) {
	smallBlind := r.players[smallBlindSeat]
	bigBlind := r.players[bigBlindSeat]

	smallBlind.smallBlind = true
	bigBlind.bigBlind = true

	r.collectBlind(smallBlind, r.options.SmallBlind)
	r.collectBlind(bigBlind, r.options.BigBlind)
}

func (r *Round) collectBlind(player *Player, amount int) {
	before := player.chips
	player.placeBet(amount)

	collected := before - player.chips
	r.pot += collected

	if collected < amount {
		r.logger.WithField("player", player.Name).Debug("blind not collected")
	}
}

// dealHoleCards deals two cards to each in-round player, one at a time,
// starting left of the dealer
func (r *Round) dealHoleCards() error {
	n := len(r.players)
	for i := 0; i < 2; i++ {
		for j := 1; j <= n; j++ {
			player := r.players[(r.dealer+j)%n]
			if !player.inRound {
				continue
			}

			card, err := r.deck.Draw()
			if err != nil {
				return err
			}

			player.cards.AddCard(card)
		}
	}

	return nil
}

// dealCommunity burns one card, then reveals count community cards
func (r *Round) dealCommunity(count int) error {
	if _, err := r.deck.Draw(); err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		card, err := r.deck.Draw()
		if err != nil {
			return err
		}

		r.community.AddCard(card)
	}

	return nil
}

// runStreet runs one betting round and then clears the per-street bets
func (r *Round) runStreet(startSeat, openingBet int) {
	newBettingRound(r, startSeat, openingBet).run()

	for _, p := range r.players {
		p.newStreet()
	}
}

func (r *Round) contestingCount() int {
	count := 0
	for _, p := range r.players {
		if p.contesting() {
			count++
		}
	}

	return count
}

// nextContestingSeat returns the first contesting seat at or after the given
// seat, wrapping around the table
func (r *Round) nextContestingSeat(seat int) int {
	n := len(r.players)
	for i := 0; i < n; i++ {
		index := (seat + i) % n
		if r.players[index].contesting() {
			return index
		}
	}

	panic("no contesting players")
}

// settle determines the winners and distributes the pot. A single remaining
// contestant takes the pot without an evaluation; otherwise every
// contestant's seven cards are evaluated and all players tied for the best
// evaluation split the pot, any remainder going to the first winner in seat
// order left of the dealer.
func (r *Round) settle() *RoundResult {
	result := &RoundResult{
		ID:            uuid.New(),
		Pot:           r.pot,
		Community:     r.community.Clone(),
		Payouts:       make(map[string]int),
		ShowdownHands: make(map[string]*poker.Evaluation),
	}

	n := len(r.players)
	contestants := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		player := r.players[(r.dealer+i)%n]
		if player.contesting() {
			contestants = append(contestants, player)
		}
	}

	var winners []*Player
	if len(contestants) == 1 {
		winners = contestants
	} else {
		var best *poker.Evaluation
		for _, player := range contestants {
			ev := poker.Evaluate(append(player.cards.Clone(), r.community...))
			result.ShowdownHands[player.Name] = ev

			if best == nil || ev.Compare(best) > 0 {
				best = ev
				winners = append(winners[:0], player)
			} else if ev.Compare(best) == 0 {
				winners = append(winners, player)
			}
		}
	}

	share := r.pot / len(winners)
	remainder := r.pot % len(winners)

	for i, player := range winners {
		payout := share
		if i == 0 {
			payout += remainder
		}

		player.win(payout)
		result.Winners = append(result.Winners, player.Name)
		result.Payouts[player.Name] = payout

		r.logger.WithFields(logrus.Fields{
			"player": player.Name,
			"payout": payout,
		}).Debug("pot awarded")
	}

	r.pot = 0
	return result
}
