package game

import "fmt"

// IsRoundOver reports whether every card of the round has been played.
func (gs *GameState) IsRoundOver() bool {
	return gs.Phase == RoundScoring || gs.Phase == GameEnd
}

// IsGameOver reports whether the game has reached its terminal phase.
func (gs *GameState) IsGameOver() bool {
	return gs.Phase == GameEnd
}

// ApplyRoundScore converts the round's trick counts into game score, one
// point per trick taken, and returns a new state: either the next round,
// dealt and ready for trick play with the deal passed on, or the terminal
// state when the score target or round cap is reached. Fails with
// ErrIllegalPhase outside RoundScoring.
func (gs *GameState) ApplyRoundScore() (*GameState, error) {
	if gs.Phase != RoundScoring {
		return nil, fmt.Errorf("%w: cannot score a round during %s", ErrIllegalPhase, gs.Phase)
	}

	next := gs.Copy()
	for player, tricks := range next.TrickCounts {
		next.Scores[player] += tricks
	}
	next.Rounds++

	if next.gameDecided() {
		next.Phase = GameEnd
		return next, nil
	}

	// Next round: new seed, deal passes to the left.
	next.seed++
	next.Dealer = next.nextSeat(next.Dealer)
	if err := next.deal(); err != nil {
		// The config already dealt at least one full round.
		panic(fmt.Sprintf("game: re-deal failed: %v", err))
	}
	next.fixTrump()
	return next, nil
}

// gameDecided reports whether another round is warranted.
func (gs *GameState) gameDecided() bool {
	if gs.Config.MaxRounds > 0 && gs.Rounds >= gs.Config.MaxRounds {
		return true
	}
	for _, score := range gs.Scores {
		if score >= gs.Config.ScoreTarget {
			return true
		}
	}
	return false
}

// Winner returns the player with the highest score and true once the game is
// over. Earlier seats win ties.
func (gs *GameState) Winner() (int, bool) {
	if gs.Phase != GameEnd {
		return 0, false
	}
	best := 0
	for player, score := range gs.Scores {
		if score > gs.Scores[best] {
			best = player
		}
	}
	return best, true
}
