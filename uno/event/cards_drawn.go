package event

var CardsDrawn = &cardsDrawnEmitter{}

// CardsDrawnPayload carries the amount only; drawn card values stay
// private to the drawing player.
type CardsDrawnPayload struct {
	GameID     string
	PlayerName string
	Amount     int
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
