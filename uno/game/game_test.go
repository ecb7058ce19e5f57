package game_test

import (
	"testing"

	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/uno/card"
	"github.com/feel-easy/uno-arena/uno/card/color"
	"github.com/feel-easy/uno-arena/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDeck lays out a deck that deals the given hands in order, with
// the first card and all leftovers at the back. The creator receives
// hands[0], the first joiner hands[1], and so on.
func buildDeck(firstCard card.Card, hands ...[]card.Card) *game.Deck {
	used := map[card.Card]bool{firstCard: true}
	order := make([]card.Card, 0, card.DeckSize)
	for _, hand := range hands {
		for _, c := range hand {
			used[c] = true
			order = append(order, c)
		}
	}
	for _, c := range card.All() {
		if !used[c] {
			order = append(order, c)
		}
	}
	order = append(order, firstCard)
	return game.NewDeckFromCards(order)
}

func redRun(from, to int) []card.Card {
	cards := make([]card.Card, 0, to-from+1)
	for rank := from; rank <= to; rank++ {
		cards = append(cards, number(color.Red, rank))
	}
	return cards
}

func yellowRun(from, to int) []card.Card {
	cards := make([]card.Card, 0, to-from+1)
	for rank := from; rank <= to; rank++ {
		cards = append(cards, number(color.Yellow, rank))
	}
	return cards
}

func assertPartition(t *testing.T, g *game.Game) {
	t.Helper()
	all := g.Deck().Undrawn()
	all = append(all, g.Pile().Cards()...)
	for _, name := range g.Players().Names() {
		cards, err := g.GetPlayerCards(name)
		require.NoError(t, err)
		all = append(all, cards...)
	}
	require.ElementsMatch(t, card.All(), all)
}

func newTwoPlayerGame(t *testing.T, firstCard card.Card, handA, handB []card.Card) *game.Game {
	t.Helper()
	deck := buildDeck(firstCard, handA, handB)
	g, err := game.NewWithDeck("g-test", "A", deck, firstCard)
	require.NoError(t, err)
	require.NoError(t, g.Join("B"))
	require.NoError(t, g.Start())
	return g
}

func newThreePlayerGame(t *testing.T, firstCard card.Card, handA, handB, handC []card.Card) *game.Game {
	t.Helper()
	deck := buildDeck(firstCard, handA, handB, handC)
	g, err := game.NewWithDeck("g-test", "A", deck, firstCard)
	require.NoError(t, err)
	require.NoError(t, g.Join("B"))
	require.NoError(t, g.Join("C"))
	require.NoError(t, g.Start())
	return g
}

func TestNewGame(t *testing.T) {
	t.Run("deals_the_creator_and_seeds_the_pile", func(t *testing.T) {
		deck := buildDeck(number(color.Red, 0), redRun(1, 7))
		g, err := game.NewWithDeck("g-test", "A", deck, number(color.Red, 0))
		require.NoError(t, err)

		require.Equal(t, consts.GameStateWaiting, g.Status())
		cards, err := g.GetPlayerCards("A")
		require.NoError(t, err)
		require.Equal(t, redRun(1, 7), cards)

		state := g.ExtractState()
		assert.Equal(t, number(color.Red, 0), state.TopCard)
		assert.Equal(t, color.Red, state.ActiveColor)
		assert.Equal(t, "A", state.CurrentPlayer)
		assertPartition(t, g)
	})

	t.Run("wild_first_card_defaults_active_color_to_red", func(t *testing.T) {
		deck := buildDeck(wild(), redRun(1, 7))
		g, err := game.NewWithDeck("g-test", "A", deck, wild())
		require.NoError(t, err)
		assert.Equal(t, color.Red, g.ActiveColor())
	})

	t.Run("rejects_an_invalid_first_card", func(t *testing.T) {
		_, err := game.New("g-test", "A", card.Card(108))
		require.Equal(t, consts.ErrorsInvalidCard, err)
	})
}

func TestJoin(t *testing.T) {
	t.Run("deals_the_joiner_a_starting_hand", func(t *testing.T) {
		deck := buildDeck(number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))
		g, err := game.NewWithDeck("g-test", "A", deck, number(color.Red, 0))
		require.NoError(t, err)
		require.NoError(t, g.Join("B"))

		cards, err := g.GetPlayerCards("B")
		require.NoError(t, err)
		require.Equal(t, yellowRun(1, 7), cards)
		require.Equal(t, []string{"A", "B"}, g.Players().Names())
		assertPartition(t, g)
	})

	t.Run("rejects_a_duplicate_participant", func(t *testing.T) {
		g, err := game.New("g-test", "A", number(color.Red, 0))
		require.NoError(t, err)
		require.Equal(t, consts.ErrorsAlreadyInGame, g.Join("A"))
	})

	t.Run("rejects_joins_after_start", func(t *testing.T) {
		g, err := game.New("g-test", "A", number(color.Red, 0))
		require.NoError(t, err)
		require.NoError(t, g.Join("B"))
		require.NoError(t, g.Start())
		require.Equal(t, consts.ErrorsGameNotWaiting, g.Join("C"))
	})

	t.Run("rejects_more_than_the_player_limit", func(t *testing.T) {
		g, err := game.New("g-test", "p0", number(color.Red, 0))
		require.NoError(t, err)
		for i := 1; i < consts.MaxPlayers; i++ {
			require.NoError(t, g.Join(string(rune('a'+i))))
		}
		require.Equal(t, consts.ErrorsGamePlayersIsFull, g.Join("straggler"))
	})
}

func TestStart(t *testing.T) {
	t.Run("requires_two_participants", func(t *testing.T) {
		g, err := game.New("g-test", "A", number(color.Red, 0))
		require.NoError(t, err)
		require.Equal(t, consts.ErrorsGamePlayersFew, g.Start())
	})

	t.Run("cannot_start_twice", func(t *testing.T) {
		g, err := game.New("g-test", "A", number(color.Red, 0))
		require.NoError(t, err)
		require.NoError(t, g.Join("B"))
		require.NoError(t, g.Start())
		require.Equal(t, consts.ErrorsGameNotWaiting, g.Start())
	})

	t.Run("no_actions_before_start", func(t *testing.T) {
		g, err := game.New("g-test", "A", number(color.Red, 0))
		require.NoError(t, err)
		require.Equal(t, consts.ErrorsGameNotRunning, g.Play("A", 0, number(color.Red, 1), nil))
		require.Equal(t, consts.ErrorsGameNotRunning, g.Draw("A", true))
	})
}

func TestPlay(t *testing.T) {
	t.Run("discards_updates_color_and_passes_the_turn", func(t *testing.T) {
		g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))

		require.NoError(t, g.Play("A", 0, number(color.Red, 1), nil))

		state := g.ExtractState()
		assert.Equal(t, number(color.Red, 1), state.TopCard)
		assert.Equal(t, color.Red, state.ActiveColor)
		assert.Equal(t, "B", state.CurrentPlayer)
		assert.Equal(t, 6, state.HandCounts["A"])
		assertPartition(t, g)
	})

	t.Run("rank_match_changes_the_active_color", func(t *testing.T) {
		g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))
		require.NoError(t, g.Play("A", 0, number(color.Red, 1), nil))
		// Yellow 1 on red 1 matches by rank and turns the color yellow.
		require.NoError(t, g.Play("B", 0, number(color.Yellow, 1), nil))

		state := g.ExtractState()
		assert.Equal(t, number(color.Yellow, 1), state.TopCard)
		assert.Equal(t, color.Yellow, state.ActiveColor)
	})

	t.Run("wild_play_applies_the_chosen_color", func(t *testing.T) {
		handA := append(redRun(1, 6), wild())
		g := newTwoPlayerGame(t, number(color.Red, 0), handA, yellowRun(1, 7))

		require.NoError(t, g.Play("A", 6, wild(), color.Green))

		state := g.ExtractState()
		assert.Equal(t, wild(), state.TopCard)
		assert.Equal(t, color.Green, state.ActiveColor)
		assert.Equal(t, "B", state.CurrentPlayer)
	})
}

func TestPlayValidation(t *testing.T) {
	firstCard := number(color.Red, 0)
	handA := append(redRun(1, 5), number(color.Yellow, 8), wild())
	handB := yellowRun(1, 7)

	t.Run("not_your_turn", func(t *testing.T) {
		g := newTwoPlayerGame(t, firstCard, handA, handB)
		require.Equal(t, consts.ErrorsNotYourTurn, g.Play("B", 0, number(color.Yellow, 1), nil))
	})

	t.Run("unknown_participant", func(t *testing.T) {
		g := newTwoPlayerGame(t, firstCard, handA, handB)
		require.Equal(t, consts.ErrorsNotInGame, g.Play("Z", 0, number(color.Red, 1), nil))
	})

	t.Run("hand_index_out_of_range", func(t *testing.T) {
		g := newTwoPlayerGame(t, firstCard, handA, handB)
		require.Equal(t, consts.ErrorsInvalidHandIndex, g.Play("A", 7, number(color.Red, 1), nil))
	})

	t.Run("declared_card_must_match_the_hand", func(t *testing.T) {
		g := newTwoPlayerGame(t, firstCard, handA, handB)
		require.Equal(t, consts.ErrorsCardMismatch, g.Play("A", 0, number(color.Red, 2), nil))
	})

	t.Run("wild_requires_a_color_choice", func(t *testing.T) {
		g := newTwoPlayerGame(t, firstCard, handA, handB)
		require.Equal(t, consts.ErrorsInvalidColorChoice, g.Play("A", 6, wild(), nil))
	})

	t.Run("non_wild_forbids_a_color_choice", func(t *testing.T) {
		g := newTwoPlayerGame(t, firstCard, handA, handB)
		require.Equal(t, consts.ErrorsInvalidColorChoice, g.Play("A", 0, number(color.Red, 1), color.Green))
	})

	t.Run("card_must_be_playable", func(t *testing.T) {
		g := newTwoPlayerGame(t, firstCard, handA, handB)
		require.Equal(t, consts.ErrorsCardNotPlayable, g.Play("A", 5, number(color.Yellow, 8), nil))
	})

	t.Run("rejections_do_not_mutate", func(t *testing.T) {
		g := newTwoPlayerGame(t, firstCard, handA, handB)
		require.Error(t, g.Play("A", 5, number(color.Yellow, 8), nil))

		state := g.ExtractState()
		assert.Equal(t, firstCard, state.TopCard)
		assert.Equal(t, "A", state.CurrentPlayer)
		assert.Equal(t, 7, state.HandCounts["A"])
		assertPartition(t, g)
	})
}

func TestSkipCard(t *testing.T) {
	handA := append(redRun(1, 6), skip(color.Red))
	g := newThreePlayerGame(t, number(color.Red, 0), handA, yellowRun(1, 7), yellowRun(8, 9))

	require.NoError(t, g.Play("A", 6, skip(color.Red), nil))

	state := g.ExtractState()
	assert.Equal(t, "C", state.CurrentPlayer)
	assert.Equal(t, 7, state.HandCounts["B"])
}

func TestDrawTwoCard(t *testing.T) {
	handA := append(redRun(1, 6), drawTwo(color.Red))
	g := newThreePlayerGame(t, number(color.Red, 0), handA, yellowRun(1, 7), yellowRun(8, 9))

	require.NoError(t, g.Play("A", 6, drawTwo(color.Red), nil))

	state := g.ExtractState()
	assert.Equal(t, "C", state.CurrentPlayer)
	assert.Equal(t, 9, state.HandCounts["B"])
	assert.Equal(t, 0, state.PendingDraws)
	assertPartition(t, g)
}

func TestReverseCard(t *testing.T) {
	t.Run("flips_direction_with_three_players", func(t *testing.T) {
		handA := append(redRun(1, 6), reverse(color.Red))
		g := newThreePlayerGame(t, number(color.Red, 0), handA, yellowRun(1, 7), yellowRun(8, 9))

		require.NoError(t, g.Play("A", 6, reverse(color.Red), nil))

		state := g.ExtractState()
		assert.Equal(t, -1, state.Direction)
		assert.Equal(t, "C", state.CurrentPlayer)
	})

	t.Run("acts_as_a_skip_with_two_players", func(t *testing.T) {
		handA := append(redRun(1, 6), reverse(color.Red))
		g := newTwoPlayerGame(t, number(color.Red, 0), handA, yellowRun(1, 7))

		require.NoError(t, g.Play("A", 6, reverse(color.Red), nil))

		state := g.ExtractState()
		assert.Equal(t, "A", state.CurrentPlayer)
		assert.Equal(t, 7, state.HandCounts["B"])
	})
}

func TestWildDrawFourCard(t *testing.T) {
	handA := append(redRun(1, 6), wildDrawFour())
	g := newThreePlayerGame(t, number(color.Red, 0), handA, yellowRun(1, 7), yellowRun(8, 9))

	require.NoError(t, g.Play("A", 6, wildDrawFour(), color.Blue))

	state := g.ExtractState()
	assert.Equal(t, "C", state.CurrentPlayer)
	assert.Equal(t, 11, state.HandCounts["B"])
	assert.Equal(t, color.Blue, state.ActiveColor)
	assertPartition(t, g)
}

func TestVoluntaryDraw(t *testing.T) {
	t.Run("keeps_the_turn_when_not_ending_it", func(t *testing.T) {
		g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))

		require.NoError(t, g.Draw("A", false))

		state := g.ExtractState()
		assert.Equal(t, "A", state.CurrentPlayer)
		assert.Equal(t, 8, state.HandCounts["A"])
		assertPartition(t, g)
	})

	t.Run("one_voluntary_draw_per_turn", func(t *testing.T) {
		g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))

		require.NoError(t, g.Draw("A", false))
		require.Equal(t, consts.ErrorsAlreadyDrew, g.Draw("A", false))

		// A second call with endTurn passes without drawing again.
		require.NoError(t, g.Draw("A", true))
		state := g.ExtractState()
		assert.Equal(t, "B", state.CurrentPlayer)
		assert.Equal(t, 8, state.HandCounts["A"])
	})

	t.Run("ends_the_turn_when_asked", func(t *testing.T) {
		g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))

		require.NoError(t, g.Draw("A", true))
		state := g.ExtractState()
		assert.Equal(t, "B", state.CurrentPlayer)
		assert.Equal(t, 8, state.HandCounts["A"])
	})

	t.Run("playing_after_a_kept_turn_draw_is_allowed", func(t *testing.T) {
		g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))

		require.NoError(t, g.Draw("A", false))
		require.NoError(t, g.Play("A", 0, number(color.Red, 1), nil))
		assert.Equal(t, "B", g.ExtractState().CurrentPlayer)
	})

	t.Run("only_the_current_player_draws", func(t *testing.T) {
		g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))
		require.Equal(t, consts.ErrorsNotYourTurn, g.Draw("B", true))
	})
}

func TestWinDetection(t *testing.T) {
	g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Play("A", 0, redRun(1, 7)[i], nil))
		require.NoError(t, g.Draw("B", true))
	}
	require.Equal(t, 2, g.ExtractState().HandCounts["A"])

	require.NoError(t, g.Declare("A"))
	require.NoError(t, g.Play("A", 0, number(color.Red, 6), nil))
	require.False(t, g.ExtractState().UnoWindowOpen)
	require.NoError(t, g.Draw("B", true))

	// The last card ends the game at once, with no turn advance.
	require.NoError(t, g.Play("A", 0, number(color.Red, 7), nil))
	state := g.ExtractState()
	assert.Equal(t, consts.GameStateEnded, state.Status)
	assert.Equal(t, "A", state.Winner)
	assert.Equal(t, "A", state.CurrentPlayer)
	assert.Equal(t, 0, state.HandCounts["A"])

	require.Equal(t, consts.ErrorsGameNotRunning, g.Draw("B", true))
	assertPartition(t, g)
}

func TestUnoChallengeLifecycle(t *testing.T) {
	g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Play("A", 0, redRun(1, 7)[i], nil))
		require.NoError(t, g.Draw("B", true))
	}

	// A drops to one card without declaring: the window opens.
	require.NoError(t, g.Play("A", 0, number(color.Red, 6), nil))
	state := g.ExtractState()
	require.True(t, state.UnoWindowOpen)
	require.Equal(t, "A", state.UnoWindowSubject)

	require.NoError(t, g.ChallengeUno("B", "A"))
	state = g.ExtractState()
	assert.Equal(t, 3, state.HandCounts["A"])
	assert.False(t, state.UnoWindowOpen)
	assertPartition(t, g)

	// The window is gone; a second challenge has nothing to hit.
	require.Equal(t, consts.ErrorsWindowNotOpen, g.ChallengeUno("B", "A"))
}

func TestUnoChallengeValidation(t *testing.T) {
	openWindow := func(t *testing.T) *game.Game {
		g := newThreePlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7), yellowRun(8, 9))
		for i := 0; i < 5; i++ {
			require.NoError(t, g.Play("A", 0, redRun(1, 7)[i], nil))
			require.NoError(t, g.Draw("B", true))
			require.NoError(t, g.Draw("C", true))
		}
		require.NoError(t, g.Play("A", 0, number(color.Red, 6), nil))
		require.True(t, g.ExtractState().UnoWindowOpen)
		return g
	}

	t.Run("challenging_the_wrong_subject", func(t *testing.T) {
		g := openWindow(t)
		require.Equal(t, consts.ErrorsWrongSubject, g.ChallengeUno("C", "B"))
	})

	t.Run("challenging_yourself", func(t *testing.T) {
		g := openWindow(t)
		require.Equal(t, consts.ErrorsChallengeSelf, g.ChallengeUno("A", "A"))
	})

	t.Run("unknown_challenger", func(t *testing.T) {
		g := openWindow(t)
		require.Equal(t, consts.ErrorsNotInGame, g.ChallengeUno("Z", "A"))
	})

	t.Run("without_an_open_window", func(t *testing.T) {
		g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))
		require.Equal(t, consts.ErrorsWindowNotOpen, g.ChallengeUno("B", "A"))
	})
}

func TestWindowClosesOnAnotherPlayersMove(t *testing.T) {
	handB := append(yellowRun(1, 6), number(color.Red, 8))
	g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), handB)

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Play("A", 0, redRun(1, 7)[i], nil))
		require.NoError(t, g.Draw("B", true))
	}
	require.NoError(t, g.Play("A", 0, number(color.Red, 6), nil))
	require.True(t, g.ExtractState().UnoWindowOpen)

	// B completes a legal play; A can no longer be challenged.
	require.NoError(t, g.Play("B", 6, number(color.Red, 8), nil))
	require.False(t, g.ExtractState().UnoWindowOpen)
	require.Equal(t, consts.ErrorsWindowNotOpen, g.ChallengeUno("B", "A"))
}

func TestDeclare(t *testing.T) {
	t.Run("requires_exactly_two_cards", func(t *testing.T) {
		g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))
		require.Equal(t, consts.ErrorsUnoNotDeclarable, g.Declare("A"))
	})

	t.Run("requires_membership", func(t *testing.T) {
		g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))
		require.Equal(t, consts.ErrorsNotInGame, g.Declare("Z"))
	})
}

func TestDrawReshufflesDiscardHistory(t *testing.T) {
	// The second red 2 copy, so it cannot collide with A's run.
	redTwo := number(color.Red, 2) + 9
	handB := append(yellowRun(1, 6), redTwo)
	g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), handB)

	require.NoError(t, g.Play("A", 0, number(color.Red, 1), nil))
	require.NoError(t, g.Play("B", 6, redTwo, nil))
	require.Equal(t, 3, g.Pile().Size())

	// Drain the deck with voluntary draws.
	for g.Deck().Remaining() > 0 {
		actor := g.Players().Current().Name()
		require.NoError(t, g.Draw(actor, true))
	}
	topBefore, ok := g.Pile().Top()
	require.True(t, ok)
	require.Equal(t, redTwo, topBefore)

	// The next draw recycles the two discarded cards beneath the top.
	actor := g.Players().Current().Name()
	require.NoError(t, g.Draw(actor, true))
	topAfter, ok := g.Pile().Top()
	require.True(t, ok)
	assert.Equal(t, topBefore, topAfter)
	assert.Equal(t, 1, g.Pile().Size())
	assert.Equal(t, 1, g.Deck().Remaining())
	assertPartition(t, g)

	// One more draw takes the last recycled card; after that there is
	// nothing left to reshuffle and the failure is reported.
	actor = g.Players().Current().Name()
	require.NoError(t, g.Draw(actor, true))
	actor = g.Players().Current().Name()
	require.Equal(t, consts.ErrorsNothingToReshuffle, g.Draw(actor, true))
	assertPartition(t, g)
}

func TestEnd(t *testing.T) {
	g := newTwoPlayerGame(t, number(color.Red, 0), redRun(1, 7), yellowRun(1, 7))

	require.NoError(t, g.End("abandoned"))
	state := g.ExtractState()
	assert.Equal(t, consts.GameStateEnded, state.Status)
	assert.Equal(t, "", state.Winner)

	require.Equal(t, consts.ErrorsGameNotRunning, g.Play("A", 0, number(color.Red, 1), nil))
	require.Equal(t, consts.ErrorsGameNotRunning, g.End("again"))
}
