package game

import (
	"github.com/feel-easy/uno-arena/uno/card"
)

// playerController pairs a participant with their hand and UNO
// declaration flag. The declared flag protects exactly one drop to a
// single card and is consumed by the player's next play or draw.
type playerController struct {
	name        string
	hand        *Hand
	declaredUno bool
}

func newPlayerController(name string) *playerController {
	return &playerController{
		name: name,
		hand: NewHand(),
	}
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand.AddCards(cards)
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) HandSize() int {
	return c.hand.Size()
}

func (c *playerController) Name() string {
	return c.name
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}
