package game

import (
	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/uno/card"
	"github.com/feel-easy/uno-arena/uno/card/color"
)

// Hand is an ordered sequence of cards owned by one player. Removal is
// by index and preserves the relative order of the rest, so indices the
// player sees stay meaningful between actions.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.StartingHandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) CardAt(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return 0, consts.ErrorsInvalidHandIndex
	}
	return h.cards[index], nil
}

func (h *Hand) RemoveAt(index int) (card.Card, error) {
	removed, err := h.CardAt(index)
	if err != nil {
		return 0, err
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) PlayableCards(top card.Card, active color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, top, active) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}
