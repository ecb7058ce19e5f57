package event

var ChallengeResolved = &challengeResolvedEmitter{}

type ChallengeResolvedPayload struct {
	GameID         string
	ChallengerName string
	SubjectName    string
}

type ChallengeResolvedListener interface {
	OnChallengeResolved(ChallengeResolvedPayload)
}

type challengeResolvedEmitter struct {
	listeners []ChallengeResolvedListener
}

func (e *challengeResolvedEmitter) AddListener(listener ChallengeResolvedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *challengeResolvedEmitter) Emit(payload ChallengeResolvedPayload) {
	for _, listener := range e.listeners {
		listener.OnChallengeResolved(payload)
	}
}
