// Package agent selects moves for the players of a whist game. The AI
// provider scores each legal card with a trained linear value function; the
// rule-based, random and scripted providers cover opponents and tests.
package agent

import "github.com/mielpeeters/whister/game"

// FeatureDim is the length of the candidate-move feature vector. A loaded
// model must carry exactly this many weights; a mismatch signals version
// skew between the artifact and this build.
const FeatureDim = 9

// Features summarizes playing card from the given state into a fixed-length
// vector: what the card is worth relative to the trick on the table and to
// the cards not yet seen. Extraction is read-only; the state is never
// touched.
//
// Layout:
//
//	0  bias, always 1
//	1  card is trump
//	2  card rank, normalized to [0,1]
//	3  card would currently win the trick
//	4  player can follow the leading suit
//	5  no unseen higher card of the same suit remains
//	6  fraction of the hand sharing the card's suit
//	7  fraction of the trick already on the table
//	8  fraction of opponents known unable to follow the card's suit
func Features(gs *game.GameState, player int, card game.Card) []float64 {
	features := make([]float64, FeatureDim)
	hand := gs.Hands[player]

	features[0] = 1

	if card.Suit == gs.Trump {
		features[1] = 1
	}

	features[2] = float64(card.Rank-game.Two) / float64(game.NumRanks-1)

	if gs.Current.Size() == 0 || wouldWin(gs, card) {
		features[3] = 1
	}

	if gs.Current.Size() == 0 || hand.CanFollow(gs.Current.LeadSuit()) {
		features[4] = 1
	}

	if highestUnseen(gs, hand, card) {
		features[5] = 1
	}

	features[6] = float64(len(hand.OfSuit(card.Suit))) / float64(len(hand))

	features[7] = float64(gs.Current.Size()) / float64(gs.Config.NumPlayers)

	features[8] = float64(gs.CantFollow[card.Suit]) / float64(gs.Config.NumPlayers-1)

	return features
}

// wouldWin reports whether card beats everything on the (non-empty) table.
func wouldWin(gs *game.GameState, card game.Card) bool {
	best := gs.Current.Plays[0].Card
	for _, play := range gs.Current.Plays[1:] {
		if play.Card.Beats(best, gs.Trump) {
			best = play.Card
		}
	}
	return card.Beats(best, gs.Trump)
}

// highestUnseen reports whether every higher card of card's suit is already
// accounted for: gone in a completed trick, on the table, or in the player's
// own hand.
func highestUnseen(gs *game.GameState, hand game.Hand, card game.Card) bool {
	for rank := card.Rank + 1; rank <= game.Ace; rank++ {
		higher := game.Card{Suit: card.Suit, Rank: rank}
		if gs.Gone[card.Suit][rank-game.Two] {
			continue
		}
		if hand.Contains(higher) {
			continue
		}
		if onTable(gs, higher) {
			continue
		}
		return false
	}
	return true
}

func onTable(gs *game.GameState, card game.Card) bool {
	for _, play := range gs.Current.Plays {
		if play.Card == card {
			return true
		}
	}
	return false
}
