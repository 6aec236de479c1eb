package game

import "fmt"

// LegalMoves returns the cards player may put down in the current trick.
// Leading a trick, any held card is legal. Following, the player must follow
// the leading suit when able; when unable, the whole hand (trump included)
// is legal. The set is empty only for a player holding no cards.
func (gs *GameState) LegalMoves(player int) []Card {
	hand := gs.Hands[player]

	if gs.Current.Size() == 0 {
		return hand.Copy()
	}

	lead := gs.Current.LeadSuit()
	if hand.CanFollow(lead) {
		return hand.OfSuit(lead)
	}
	return hand.Copy()
}

// ApplyMove validates the proposed move and returns a new state with card
// moved from the player's hand onto the trick and the turn advanced. The
// receiver is never modified; on failure it returns nil with
// ErrIllegalPhase, ErrOutOfTurn or ErrIllegalMove.
//
// This is the single path by which a state changes during TrickPlay. A
// completed trick resolves immediately: the winner leads the next trick and
// takes a trick point, and once all hands are empty the state moves to
// RoundScoring.
func (gs *GameState) ApplyMove(player int, card Card) (*GameState, error) {
	if gs.Phase != TrickPlay {
		return nil, fmt.Errorf("%w: no moves accepted during %s", ErrIllegalPhase, gs.Phase)
	}
	if player != gs.Turn {
		return nil, fmt.Errorf("%w: player %d moved on player %d's turn", ErrOutOfTurn, player, gs.Turn)
	}
	if !containsCard(gs.LegalMoves(player), card) {
		return nil, fmt.Errorf("%w: player %d may not play %s", ErrIllegalMove, player, card)
	}

	next := gs.Copy()
	if !next.Hands[player].Remove(card) {
		panic("game: legal move not present in hand")
	}
	next.Current.Plays = append(next.Current.Plays, Play{Player: player, Card: card})
	next.Turn = next.nextSeat(player)

	if next.Current.Complete(next.Config.NumPlayers) {
		next.closeTrick()
	}
	return next, nil
}

// closeTrick resolves the completed trick: credits the winner, records the
// seen cards and failures to follow for card counting, and either opens the
// next trick or ends the round.
func (gs *GameState) closeTrick() {
	winner := gs.Current.Winner(gs.Trump)
	gs.TrickCounts[winner]++

	lead := gs.Current.LeadSuit()
	gs.CantFollow[lead] = 0
	for _, play := range gs.Current.Plays {
		gs.Gone[play.Card.Suit][play.Card.Rank-Two] = true
		if play.Card.Suit != lead {
			gs.CantFollow[lead]++
		}
	}

	gs.Played = append(gs.Played, gs.Current)
	gs.Current = Trick{}
	gs.Leader = winner
	gs.Turn = winner

	if len(gs.Hands[winner]) == 0 {
		gs.Phase = RoundScoring
	}
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
