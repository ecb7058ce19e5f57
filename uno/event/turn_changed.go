package event

var TurnChanged = &turnChangedEmitter{}

type TurnChangedPayload struct {
	GameID       string
	PlayerName   string
	PendingDraws int
}

type TurnChangedListener interface {
	OnTurnChanged(TurnChangedPayload)
}

type turnChangedEmitter struct {
	listeners []TurnChangedListener
}

func (e *turnChangedEmitter) AddListener(listener TurnChangedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnChangedEmitter) Emit(payload TurnChangedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnChanged(payload)
	}
}
