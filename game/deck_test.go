package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Run("holds all 52 unique cards", func(t *testing.T) {
		deck := NewDeck()

		require.Len(t, deck, DeckSize)
		seen := map[Card]bool{}
		for _, card := range deck {
			require.False(t, seen[card], "Deck should not contain %s twice", card)
			seen[card] = true
		}
	})

	t.Run("canonical order is suit-major, ranks ascending", func(t *testing.T) {
		deck := NewDeck()

		require.Equal(t, Card{Suit: Spades, Rank: Two}, deck[0])
		require.Equal(t, Card{Suit: Spades, Rank: Ace}, deck[12])
		require.Equal(t, Card{Suit: Clubs, Rank: Two}, deck[13])
		require.Equal(t, Card{Suit: Hearts, Rank: Ace}, deck[51])
	})
}

func TestShuffle(t *testing.T) {
	t.Run("same seed yields same order", func(t *testing.T) {
		deck1 := NewDeck()
		deck2 := NewDeck()

		deck1.Shuffle(42)
		deck2.Shuffle(42)

		require.Equal(t, deck1, deck2, "Identical seeds should produce identical permutations")
	})

	t.Run("different seeds yield different orders", func(t *testing.T) {
		deck1 := NewDeck()
		deck2 := NewDeck()

		deck1.Shuffle(1)
		deck2.Shuffle(2)

		require.NotEqual(t, deck1, deck2, "Different seeds should permute differently")
	})
}

func TestDeal(t *testing.T) {
	t.Run("deals equal hands in deck order", func(t *testing.T) {
		deck := NewDeck()

		hands, err := deck.Deal(4, 13)

		require.NoError(t, err)
		require.Len(t, hands, 4)
		for _, hand := range hands {
			require.Len(t, hand, 13)
		}
		require.Equal(t, deck[0], hands[0][0], "Hands should come from the deck in order")
		require.Equal(t, deck[13], hands[1][0])
	})

	t.Run("sets remainder aside", func(t *testing.T) {
		deck := NewDeck()

		hands, err := deck.Deal(3, 16)

		require.NoError(t, err)
		total := 0
		for _, hand := range hands {
			total += len(hand)
		}
		require.Equal(t, 48, total, "4 cards should be set aside")
	})

	t.Run("rejects too few players", func(t *testing.T) {
		_, err := NewDeck().Deal(1, 13)

		require.ErrorIs(t, err, ErrInvalidPlayerCount)
	})

	t.Run("rejects hands exceeding the deck", func(t *testing.T) {
		_, err := NewDeck().Deal(5, 13)

		require.ErrorIs(t, err, ErrInvalidPlayerCount,
			"5 players with 13-card hands should not partition 52 cards")
	})
}

func TestHand(t *testing.T) {
	t.Run("sorts suit-major then rank", func(t *testing.T) {
		hand := Hand{
			{Suit: Hearts, Rank: Two},
			{Suit: Spades, Rank: Ace},
			{Suit: Spades, Rank: Three},
		}

		hand.Sort()

		require.Equal(t, Hand{
			{Suit: Spades, Rank: Three},
			{Suit: Spades, Rank: Ace},
			{Suit: Hearts, Rank: Two},
		}, hand)
	})

	t.Run("can follow only held suits", func(t *testing.T) {
		hand := Hand{{Suit: Clubs, Rank: Nine}, {Suit: Hearts, Rank: Two}}

		require.True(t, hand.CanFollow(Clubs))
		require.False(t, hand.CanFollow(Diamonds))
	})

	t.Run("remove deletes exactly the card", func(t *testing.T) {
		hand := Hand{{Suit: Clubs, Rank: Nine}, {Suit: Hearts, Rank: Two}}

		require.True(t, hand.Remove(Card{Suit: Clubs, Rank: Nine}))
		require.False(t, hand.Contains(Card{Suit: Clubs, Rank: Nine}))
		require.Len(t, hand, 1)

		require.False(t, hand.Remove(Card{Suit: Clubs, Rank: Nine}),
			"Removing an absent card should report false")
	})
}
