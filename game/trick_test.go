package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func trickOf(cards ...Card) Trick {
	trick := Trick{}
	for player, card := range cards {
		trick.Plays = append(trick.Plays, Play{Player: player, Card: card})
	}
	return trick
}

func TestTrickWinner(t *testing.T) {
	t.Run("highest of the leading suit wins without trump", func(t *testing.T) {
		trick := trickOf(
			Card{Suit: Clubs, Rank: Five},
			Card{Suit: Spades, Rank: Three},
			Card{Suit: Diamonds, Rank: Four},
			Card{Suit: Clubs, Rank: Two},
		)

		require.Equal(t, 0, trick.Winner(Hearts),
			"Off-suit cards should not count, 5♣ wins")
	})

	t.Run("single trump beats all non-trump", func(t *testing.T) {
		// 4-player scenario: A leads 7♣, B plays Q♣, C plays 3♥, D plays K♣
		trick := trickOf(
			Card{Suit: Clubs, Rank: Seven},
			Card{Suit: Clubs, Rank: Queen},
			Card{Suit: Hearts, Rank: Three},
			Card{Suit: Clubs, Rank: King},
		)

		require.Equal(t, 2, trick.Winner(Hearts), "The trump play should win the trick")
	})

	t.Run("highest trump wins when trumped twice", func(t *testing.T) {
		trick := trickOf(
			Card{Suit: Clubs, Rank: Five},
			Card{Suit: Spades, Rank: Three},
			Card{Suit: Hearts, Rank: Two},
			Card{Suit: Hearts, Rank: Four},
		)

		require.Equal(t, 3, trick.Winner(Hearts))
	})

	t.Run("same suit throughout compares by rank", func(t *testing.T) {
		trick := trickOf(
			Card{Suit: Clubs, Rank: Two},
			Card{Suit: Clubs, Rank: Three},
			Card{Suit: Clubs, Rank: Four},
			Card{Suit: Clubs, Rank: Ace},
		)

		require.Equal(t, 3, trick.Winner(Hearts))
	})

	t.Run("panics on an empty trick", func(t *testing.T) {
		require.Panics(t, func() {
			Trick{}.Winner(Hearts)
		}, "Resolving an empty trick is an internal defect")
	})
}

// TestTrickWinnerAgreesWithPlainRule re-evaluates the resolver against the
// plain statement of the rule (highest trump, else highest of leading suit)
// for every permutation of four fixed plays across two suits.
func TestTrickWinnerAgreesWithPlainRule(t *testing.T) {
	trump := Hearts
	cards := []Card{
		{Suit: Clubs, Rank: Ten},
		{Suit: Clubs, Rank: Jack},
		{Suit: Hearts, Rank: Two},
		{Suit: Hearts, Rank: Nine},
	}

	var permute func(current []Card, remaining []Card)
	permute = func(current []Card, remaining []Card) {
		if len(remaining) == 0 {
			trick := trickOf(current...)
			winner := trick.Winner(trump)
			expected := plainRuleWinner(trick, trump)
			require.Equal(t, expected, winner,
				"Resolver should agree with the plain rule for order %v", current)
			return
		}
		for i, card := range remaining {
			rest := make([]Card, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			permute(append(current, card), rest)
		}
	}
	permute(nil, cards)
}

func plainRuleWinner(trick Trick, trump Suit) int {
	bestPlayer := -1
	var bestRank Rank

	// Highest trump play wins.
	for _, play := range trick.Plays {
		if play.Card.Suit == trump && (bestPlayer == -1 || play.Card.Rank > bestRank) {
			bestPlayer = play.Player
			bestRank = play.Card.Rank
		}
	}
	if bestPlayer >= 0 {
		return bestPlayer
	}

	// Otherwise highest of the leading suit.
	lead := trick.LeadSuit()
	for _, play := range trick.Plays {
		if play.Card.Suit == lead && (bestPlayer == -1 || play.Card.Rank > bestRank) {
			bestPlayer = play.Player
			bestRank = play.Card.Rank
		}
	}
	return bestPlayer
}
