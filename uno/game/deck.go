package game

import (
	"math/rand"
	"sync"

	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/uno/card"
)

// Deck is the draw pile: a permutation of card identifiers with a cursor
// separating drawn from undrawn cards. It never refills itself; when it
// runs dry the game recycles the discard pile into it, so the 108-card
// partition across deck, pile and hands stays intact.
type Deck struct {
	sync.Mutex
	cards  []card.Card
	cursor int
}

func NewDeck() *Deck {
	cards := card.All()
	shuffleCards(cards)
	return &Deck{cards: cards}
}

// NewDeckFromCards builds a deck drawing in exactly the given order.
// Used by tests and replays.
func NewDeckFromCards(cards []card.Card) *Deck {
	owned := make([]card.Card, len(cards))
	copy(owned, cards)
	return &Deck{cards: owned}
}

func (d *Deck) Remaining() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards) - d.cursor
}

// Undrawn returns the cards still in the draw pile, in draw order.
func (d *Deck) Undrawn() []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	cards := make([]card.Card, len(d.cards)-d.cursor)
	copy(cards, d.cards[d.cursor:])
	return cards
}

func (d *Deck) Draw(amount int) ([]card.Card, error) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if len(d.cards)-d.cursor < amount {
		return nil, consts.ErrorsInsufficientCards
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[d.cursor:d.cursor+amount])
	d.cursor += amount
	return cards, nil
}

func (d *Deck) DrawOne() (card.Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return 0, err
	}
	return cards[0], nil
}

// Take removes a specific undrawn card from the deck, preserving the
// draw order of the rest. Used to seed the discard pile with the
// creator's first card.
func (d *Deck) Take(c card.Card) error {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	for i := d.cursor; i < len(d.cards); i++ {
		if d.cards[i] == c {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return nil
		}
	}
	return consts.ErrorsInvalidCard
}

// Refill replaces the undrawn cards with a fresh shuffle of the given
// ones. The caller drains the deck before refilling.
func (d *Deck) Refill(cards []card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	owned := make([]card.Card, len(cards))
	copy(owned, cards)
	shuffleCards(owned)
	d.cards = owned
	d.cursor = 0
}

func shuffleCards(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
