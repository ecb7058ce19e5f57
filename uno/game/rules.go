package game

import (
	"github.com/feel-easy/uno-arena/uno/card"
	"github.com/feel-easy/uno-arena/uno/card/color"
)

// Playable reports whether a candidate card may be played on the top
// card given the active color. The checks run in a fixed order: wilds
// always match, then the active color, then a shared non-number kind
// (skip on skip, reverse on reverse, draw-two on draw-two), then equal
// number ranks.
func Playable(candidateCard card.Card, topCard card.Card, activeColor color.Color) bool {
	if candidateCard.Wild() {
		return true
	}
	if candidateCard.Color() == activeColor {
		return true
	}
	if kind := candidateCard.Kind(); kind != card.KindNumber && kind == topCard.Kind() {
		return true
	}
	if candidateCard.Kind() == card.KindNumber && topCard.Kind() == card.KindNumber {
		return candidateCard.Rank() == topCard.Rank()
	}
	return false
}
