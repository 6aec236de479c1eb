package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("deals and fixes trump before trick play", func(t *testing.T) {
		gs := newTestGame(t, 1)

		require.Equal(t, TrickPlay, gs.Phase, "A new game should be ready for its first trick")
		require.Len(t, gs.Hands, 4)
		for _, hand := range gs.Hands {
			require.Len(t, hand, 13)
		}
		require.Equal(t, (gs.Dealer+1)%4, gs.CurrentPlayer(),
			"The player left of the dealer leads")
	})

	t.Run("rejects configs that cannot partition the deck", func(t *testing.T) {
		_, err := NewGame(Config{NumPlayers: 5, HandSize: 13, ScoreTarget: 13})

		require.ErrorIs(t, err, ErrInvalidPlayerCount)
	})

	t.Run("same seed deals the same game", func(t *testing.T) {
		gs1 := newTestGame(t, 11)
		gs2 := newTestGame(t, 11)

		require.Equal(t, gs1.Hands, gs2.Hands)
		require.Equal(t, gs1.Hash(), gs2.Hash())
	})
}

func TestTrumpSelection(t *testing.T) {
	t.Run("default rule takes the dealer's last dealt card", func(t *testing.T) {
		deck := NewDeck()
		deck.Shuffle(21)
		hands, err := deck.Deal(4, 13)
		require.NoError(t, err)
		expected := hands[0][12].Suit

		gs := newTestGame(t, 21)

		require.Equal(t, expected, gs.Trump)
	})

	t.Run("fixed trump rule always picks its suit", func(t *testing.T) {
		gs, err := NewGame(Config{
			NumPlayers:  4,
			HandSize:    13,
			ScoreTarget: 13,
			ShuffleSeed: 22,
			Trump:       FixedTrump(Hearts),
		})

		require.NoError(t, err)
		require.Equal(t, Hearts, gs.Trump)
	})
}

func TestCopy(t *testing.T) {
	t.Run("copies are independent", func(t *testing.T) {
		gs := newTestGame(t, 31)
		dup := gs.Copy()
		was := gs.Hands[0][0]

		dup.Hands[0][0] = Card{}
		dup.Scores[1] = 99
		dup.Current.Plays = append(dup.Current.Plays, Play{})

		require.Equal(t, was, gs.Hands[0][0], "Hands should not be shared")
		require.Zero(t, gs.Scores[1], "Scores should not be shared")
		require.Zero(t, gs.Current.Size(), "The current trick should not be shared")
	})
}

func TestHash(t *testing.T) {
	t.Run("differs after a move", func(t *testing.T) {
		gs := newTestGame(t, 41)
		next := step(t, gs)

		require.NotEqual(t, gs.Hash(), next.Hash())
	})

	t.Run("equal for a deep copy", func(t *testing.T) {
		gs := newTestGame(t, 42)

		require.Equal(t, gs.Hash(), gs.Copy().Hash())
	})

	t.Run("covers the card-counting history", func(t *testing.T) {
		gs := newTestGame(t, 43)

		gone := gs.Copy()
		gone.Gone[Clubs][Ace-Two] = true
		require.NotEqual(t, gs.Hash(), gone.Hash(),
			"States differing only in seen cards should hash apart")

		cantFollow := gs.Copy()
		cantFollow.CantFollow[Spades] = 2
		require.NotEqual(t, gs.Hash(), cantFollow.Hash(),
			"States differing only in cant-follow counts should hash apart")

		played := gs.Copy()
		played.Played = append(played.Played, Trick{})
		require.NotEqual(t, gs.Hash(), played.Hash(),
			"States differing only in completed tricks should hash apart")
	})
}

func TestPlayerScores(t *testing.T) {
	gs := newTestGame(t, 51)

	scores := gs.PlayerScores()
	scores[0] = 7

	require.Zero(t, gs.Scores[0], "PlayerScores should return a copy")
}
