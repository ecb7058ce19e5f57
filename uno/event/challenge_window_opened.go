package event

var ChallengeWindowOpened = &challengeWindowOpenedEmitter{}

// ChallengeWindowOpenedPayload announces that PlayerName reached one
// card without declaring UNO and can now be challenged.
type ChallengeWindowOpenedPayload struct {
	GameID     string
	PlayerName string
}

type ChallengeWindowOpenedListener interface {
	OnChallengeWindowOpened(ChallengeWindowOpenedPayload)
}

type challengeWindowOpenedEmitter struct {
	listeners []ChallengeWindowOpenedListener
}

func (e *challengeWindowOpenedEmitter) AddListener(listener ChallengeWindowOpenedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *challengeWindowOpenedEmitter) Emit(payload ChallengeWindowOpenedPayload) {
	for _, listener := range e.listeners {
		listener.OnChallengeWindowOpened(payload)
	}
}
