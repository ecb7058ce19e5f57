package game_test

import (
	"testing"

	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/uno/card"
	"github.com/feel-easy/uno-arena/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.Card(5))
	pile.Add(card.Card(24))
	pile.Add(card.Card(45))
	require.Equal(t, []card.Card{5, 24, 45}, pile.Cards())
	require.Equal(t, 3, pile.Size())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	_, ok := pile.Top()
	require.False(t, ok)
	pile.Add(card.Card(5))
	pile.Add(card.Card(24))
	top, ok := pile.Top()
	require.True(t, ok)
	require.Equal(t, card.Card(24), top)
}

func TestTakeBelowTop(t *testing.T) {
	t.Run("retains_the_top_card_and_returns_the_history", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.Card(5))
		pile.Add(card.Card(24))
		pile.Add(card.Card(45))

		below, err := pile.TakeBelowTop()
		require.NoError(t, err)
		require.ElementsMatch(t, []card.Card{5, 24}, below)
		require.Equal(t, []card.Card{45}, pile.Cards())
		top, ok := pile.Top()
		require.True(t, ok)
		require.Equal(t, card.Card(45), top)
	})

	t.Run("fails_with_fewer_than_two_cards", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.Card(5))
		_, err := pile.TakeBelowTop()
		require.Equal(t, consts.ErrorsNothingToReshuffle, err)
		require.Equal(t, 1, pile.Size())
	})
}
