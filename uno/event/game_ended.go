package event

var GameEnded = &gameEndedEmitter{}

// GameEndedPayload has an empty WinnerName when the game was ended by
// abandonment rather than by a win.
type GameEndedPayload struct {
	GameID     string
	WinnerName string
	Reason     string
}

type GameEndedListener interface {
	OnGameEnded(GameEndedPayload)
}

type gameEndedEmitter struct {
	listeners []GameEndedListener
}

func (e *gameEndedEmitter) AddListener(listener GameEndedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameEndedEmitter) Emit(payload GameEndedPayload) {
	for _, listener := range e.listeners {
		listener.OnGameEnded(payload)
	}
}
