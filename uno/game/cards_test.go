package game_test

import (
	"github.com/feel-easy/uno-arena/uno/card"
	"github.com/feel-easy/uno-arena/uno/card/color"
)

// Identifier helpers for readable test cards. Each returns the first
// copy of the requested card.
func number(clr color.Color, rank int) card.Card {
	return card.Card(clr.ID()*19 + rank)
}

func skip(clr color.Color) card.Card {
	return card.Card(76 + 2*clr.ID())
}

func reverse(clr color.Color) card.Card {
	return card.Card(84 + 2*clr.ID())
}

func drawTwo(clr color.Color) card.Card {
	return card.Card(92 + 2*clr.ID())
}

func wild() card.Card {
	return card.Card(100)
}

func wildDrawFour() card.Card {
	return card.Card(104)
}
