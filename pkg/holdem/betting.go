package holdem

// bettingRound drives one street of betting to completion. A fresh value is
// created per street and discarded afterwards, so mutable access to the pot
// and the players' bet and fold state is time-boxed to a single street.
type bettingRound struct {
	round      *Round
	startSeat  int
	currentBet int
}

func newBettingRound(round *Round, startSeat, currentBet int) *bettingRound {
	return &bettingRound{
		round:      round,
		startSeat:  startSeat,
		currentBet: currentBet,
	}
}

// run offers each contesting player an action in seat order until either
// every contesting player has acted and matched the current bet, or only one
// contesting player remains. A raise requires every other contesting player
// to act again, restarting the scan from the seat after the raiser.
func (b *bettingRound) run() {
	r := b.round

	// each contesting player is owed at least one action offer
	toAct := r.contestingCount()

	seat := b.startSeat
	for toAct > 0 && r.contestingCount() > 1 {
		seat = r.nextContestingSeat(seat)
		player := r.players[seat]

		action := b.requestAction(player)
		if b.apply(player, action) {
			// everyone but the raiser must act again
			toAct = r.contestingCount() - 1
		} else {
			toAct--
		}

		seat = (seat + 1) % len(r.players)
	}
}

// legalActions returns the choices available to the player. Calling is only
// offered when something is owed; checking only when nothing is.
func (b *bettingRound) legalActions(player *Player) []ActionType {
	actions := make([]ActionType, 0, 3)

	if b.currentBet == player.bet {
		actions = append(actions, ActionCheck)
	} else {
		actions = append(actions, ActionCall)
	}

	if player.bet+player.chips >= b.minRaise() {
		actions = append(actions, ActionRaise)
	}

	return append(actions, ActionFold)
}

// minRaise is the lowest permitted raise-to total: the amount owed to call
// plus one big-blind increment
func (b *bettingRound) minRaise() int {
	return b.currentBet + b.round.options.BigBlind
}

func (b *bettingRound) requestAction(player *Player) Action {
	ctx := TurnContext{
		Pot:        b.round.pot,
		CurrentBet: b.currentBet,
		ToCall:     b.currentBet - player.bet,
		MinRaise:   b.minRaise(),
		MaxRaise:   player.bet + player.chips,
		Stack:      player.chips,
		Community:  b.round.community.Clone(),
	}

	return b.round.provider.RequestAction(player, b.legalActions(player), ctx)
}

// apply validates and executes the action, degrading anything invalid to a
// fold. Returns true if the action was a raise.
func (b *bettingRound) apply(player *Player, action Action) bool {
	logger := b.round.logger.WithField("player", player.Name)

	switch action.Type {
	case ActionCheck:
		if b.currentBet != player.bet {
			break
		}

		logger.Debug("checked")
		return false
	case ActionCall:
		owed := b.currentBet - player.bet
		if owed <= 0 || owed > player.chips {
			// insufficient stack is not a fatal error; it degrades to a fold
			break
		}

		player.placeBet(owed)
		b.round.pot += owed

		logger.WithField("amount", owed).Debug("called")
		return false
	case ActionRaise:
		cost := action.Amount - player.bet
		if action.Amount < b.minRaise() || cost > player.chips {
			break
		}

		player.placeBet(cost)
		b.round.pot += cost
		b.currentBet = action.Amount

		logger.WithField("amount", action.Amount).Debug("raised")
		return true
	case ActionFold:
	default:
		logger.WithField("action", string(action.Type)).Warn("invalid action, folding")
	}

	player.folded = true
	logger.Debug("folded")
	return false
}
