package card

import (
	"fmt"

	"github.com/feel-easy/uno-arena/uno/card/action"
	"github.com/feel-easy/uno-arena/uno/card/color"
)

// Card is one of the 108 canonical identifiers of a standard UNO deck.
// The identifier space is partitioned into contiguous bands:
//
//	[0,76)    number cards, 19 per color (one 0, two of each 1-9)
//	[76,84)   skip, 2 per color
//	[84,92)   reverse, 2 per color
//	[92,100)  draw two, 2 per color
//	[100,104) wild
//	[104,108) wild draw four
//
// The identifier is the card; kind, color and rank are always derived.
type Card int

const DeckSize = 108

type Kind int

const (
	KindNumber Kind = iota
	KindSkip
	KindReverse
	KindDrawTwo
	KindWild
	KindWildDrawFour
)

const (
	numberBandEnd  = 76
	skipBandEnd    = 84
	reverseBandEnd = 92
	drawTwoBandEnd = 100
	wildBandEnd    = 104

	numbersPerColor = 19
)

var kindNames = map[Kind]string{
	KindNumber:       "number",
	KindSkip:         "skip",
	KindReverse:      "reverse",
	KindDrawTwo:      "draw-two",
	KindWild:         "wild",
	KindWildDrawFour: "wild-draw-four",
}

func (k Kind) String() string {
	return kindNames[k]
}

func (c Card) Valid() bool {
	return c >= 0 && c < DeckSize
}

func (c Card) Kind() Kind {
	switch {
	case c < numberBandEnd:
		return KindNumber
	case c < skipBandEnd:
		return KindSkip
	case c < reverseBandEnd:
		return KindReverse
	case c < drawTwoBandEnd:
		return KindDrawTwo
	case c < wildBandEnd:
		return KindWild
	default:
		return KindWildDrawFour
	}
}

func (c Card) Color() color.Color {
	switch c.Kind() {
	case KindNumber:
		clr, _ := color.ByID(int(c) / numbersPerColor)
		return clr
	case KindSkip:
		clr, _ := color.ByID(int(c-numberBandEnd) / 2)
		return clr
	case KindReverse:
		clr, _ := color.ByID(int(c-skipBandEnd) / 2)
		return clr
	case KindDrawTwo:
		clr, _ := color.ByID(int(c-reverseBandEnd) / 2)
		return clr
	default:
		return color.None
	}
}

// Rank returns the face value of a number card, -1 for any other kind.
// Each color band holds one 0 followed by two copies of each 1-9.
func (c Card) Rank() int {
	if c.Kind() != KindNumber {
		return -1
	}
	r := int(c) % numbersPerColor
	if r <= 9 {
		return r
	}
	return r - 9
}

// Actions returns the turn effects the card carries when played.
func (c Card) Actions() []action.Action {
	switch c.Kind() {
	case KindSkip:
		return []action.Action{action.NewSkipTurnAction()}
	case KindReverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case KindDrawTwo:
		return []action.Action{action.NewDrawCardsAction(2), action.NewSkipTurnAction()}
	case KindWild:
		return []action.Action{action.NewPickColorAction()}
	case KindWildDrawFour:
		return []action.Action{action.NewDrawCardsAction(4), action.NewSkipTurnAction(), action.NewPickColorAction()}
	default:
		return []action.Action{}
	}
}

func (c Card) Wild() bool {
	kind := c.Kind()
	return kind == KindWild || kind == KindWildDrawFour
}

func (c Card) String() string {
	switch kind := c.Kind(); kind {
	case KindNumber:
		return c.Color().Paintf("[%d]", c.Rank())
	case KindWild, KindWildDrawFour:
		return fmt.Sprintf("[%s]", kind)
	default:
		return c.Color().Paintf("[%s]", kind)
	}
}

// All returns the 108 canonical cards in identifier order.
func All() []Card {
	cards := make([]Card, 0, DeckSize)
	for id := 0; id < DeckSize; id++ {
		cards = append(cards, Card(id))
	}
	return cards
}
