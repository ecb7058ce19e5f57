package event

var PlayerJoined = &playerJoinedEmitter{}

type PlayerJoinedPayload struct {
	GameID     string
	PlayerName string
}

type PlayerJoinedListener interface {
	OnPlayerJoined(PlayerJoinedPayload)
}

type playerJoinedEmitter struct {
	listeners []PlayerJoinedListener
}

func (e *playerJoinedEmitter) AddListener(listener PlayerJoinedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerJoinedEmitter) Emit(payload PlayerJoinedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerJoined(payload)
	}
}
