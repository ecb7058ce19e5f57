package game

import (
	"sync"

	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/uno/card"
)

// Pile is the discard pile, oldest card first. The last element is the
// top card in play.
type Pile struct {
	sync.Mutex
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(c card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, c)
}

func (p *Pile) Cards() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return len(p.cards)
}

func (p *Pile) Top() (card.Card, bool) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) == 0 {
		return 0, false
	}
	return p.cards[len(p.cards)-1], true
}

// TakeBelowTop removes and returns every card beneath the top one,
// leaving the card in play as the pile's sole element. This mirrors the
// physical reshuffle: only the history under the top card is recycled.
func (p *Pile) TakeBelowTop() ([]card.Card, error) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) < 2 {
		return nil, consts.ErrorsNothingToReshuffle
	}
	below := make([]card.Card, len(p.cards)-1)
	copy(below, p.cards[:len(p.cards)-1])
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return below, nil
}
