package game_test

import (
	"testing"

	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/uno/card"
	"github.com/feel-easy/uno-arena/uno/game"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	t.Run("returns_all_108_standard_uno_cards", func(t *testing.T) {
		deck := game.NewDeck()
		cards, err := deck.Draw(card.DeckSize)
		require.NoError(t, err)
		require.ElementsMatch(t, card.All(), cards)
	})

	t.Run("returns_no_cards_when_amount_is_zero", func(t *testing.T) {
		deck := game.NewDeck()
		cards, err := deck.Draw(0)
		require.NoError(t, err)
		require.Empty(t, cards)
	})

	t.Run("fails_instead_of_refilling_itself", func(t *testing.T) {
		deck := game.NewDeck()
		_, err := deck.Draw(100)
		require.NoError(t, err)
		_, err = deck.Draw(9)
		require.Equal(t, consts.ErrorsInsufficientCards, err)
		require.Equal(t, 8, deck.Remaining())
	})
}

func TestDrawOne(t *testing.T) {
	deck := game.NewDeckFromCards(card.All())
	drawn, err := deck.DrawOne()
	require.NoError(t, err)
	require.Equal(t, card.Card(0), drawn)
	require.Equal(t, card.DeckSize-1, deck.Remaining())
}

func TestDrawOrderIsDeterministicFromCards(t *testing.T) {
	order := []card.Card{5, 3, 99, 100}
	deck := game.NewDeckFromCards(order)
	cards, err := deck.Draw(4)
	require.NoError(t, err)
	require.Equal(t, order, cards)
}

func TestTake(t *testing.T) {
	t.Run("removes_the_card_and_preserves_draw_order", func(t *testing.T) {
		deck := game.NewDeckFromCards([]card.Card{5, 3, 99, 100})
		require.NoError(t, deck.Take(99))
		cards, err := deck.Draw(3)
		require.NoError(t, err)
		require.Equal(t, []card.Card{5, 3, 100}, cards)
	})

	t.Run("fails_for_a_card_already_drawn", func(t *testing.T) {
		deck := game.NewDeckFromCards([]card.Card{5, 3, 99, 100})
		_, err := deck.Draw(2)
		require.NoError(t, err)
		require.Equal(t, consts.ErrorsInvalidCard, deck.Take(5))
	})
}

func TestRefill(t *testing.T) {
	deck := game.NewDeckFromCards([]card.Card{5, 3})
	_, err := deck.Draw(2)
	require.NoError(t, err)
	require.Equal(t, 0, deck.Remaining())

	deck.Refill([]card.Card{7, 8, 9})
	require.Equal(t, 3, deck.Remaining())
	cards, err := deck.Draw(3)
	require.NoError(t, err)
	require.ElementsMatch(t, []card.Card{7, 8, 9}, cards)
}
