package network

import (
	"github.com/feel-easy/uno-arena/uno/event"
	"github.com/nats-io/nats.go"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
)

// NatsPublisher mirrors engine events onto NATS subjects so external
// observers can follow games without a websocket to this process. Each
// game publishes on uno.games.<id>.
type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(url string) (*NatsPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &NatsPublisher{conn: conn}, nil
}

// Register attaches the publisher to every engine event emitter.
func (p *NatsPublisher) Register() {
	event.FirstCardPlayed.AddListener(p)
	event.PlayerJoined.AddListener(p)
	event.GameStarted.AddListener(p)
	event.CardPlayed.AddListener(p)
	event.ColorPicked.AddListener(p)
	event.CardsDrawn.AddListener(p)
	event.TurnChanged.AddListener(p)
	event.UnoDeclared.AddListener(p)
	event.ChallengeWindowOpened.AddListener(p)
	event.ChallengeResolved.AddListener(p)
	event.GameEnded.AddListener(p)
}

func (p *NatsPublisher) publish(f frame) {
	if err := p.conn.Publish("uno.games."+f.GameID, json.Marshal(f)); err != nil {
		log.Error(err)
	}
}

func (p *NatsPublisher) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	p.publish(frame{Type: "first_card_played", GameID: payload.GameID, Payload: map[string]interface{}{
		"card": int(payload.Card),
	}})
}

func (p *NatsPublisher) OnPlayerJoined(payload event.PlayerJoinedPayload) {
	p.publish(frame{Type: "player_joined", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
	}})
}

func (p *NatsPublisher) OnGameStarted(payload event.GameStartedPayload) {
	p.publish(frame{Type: "game_started", GameID: payload.GameID, Payload: map[string]interface{}{
		"players":   payload.PlayerNames,
		"firstTurn": payload.FirstTurn,
	}})
}

func (p *NatsPublisher) OnCardPlayed(payload event.CardPlayedPayload) {
	p.publish(frame{Type: "card_played", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
		"card":   int(payload.Card),
	}})
}

func (p *NatsPublisher) OnColorPicked(payload event.ColorPickedPayload) {
	p.publish(frame{Type: "color_picked", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
		"color":  payload.Color.Name(),
	}})
}

func (p *NatsPublisher) OnCardsDrawn(payload event.CardsDrawnPayload) {
	p.publish(frame{Type: "cards_drawn", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
		"amount": payload.Amount,
	}})
}

func (p *NatsPublisher) OnTurnChanged(payload event.TurnChangedPayload) {
	p.publish(frame{Type: "turn_changed", GameID: payload.GameID, Payload: map[string]interface{}{
		"player":       payload.PlayerName,
		"pendingDraws": payload.PendingDraws,
	}})
}

func (p *NatsPublisher) OnUnoDeclared(payload event.UnoDeclaredPayload) {
	p.publish(frame{Type: "uno_declared", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
	}})
}

func (p *NatsPublisher) OnChallengeWindowOpened(payload event.ChallengeWindowOpenedPayload) {
	p.publish(frame{Type: "challenge_window_opened", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
	}})
}

func (p *NatsPublisher) OnChallengeResolved(payload event.ChallengeResolvedPayload) {
	p.publish(frame{Type: "challenge_resolved", GameID: payload.GameID, Payload: map[string]interface{}{
		"challenger": payload.ChallengerName,
		"subject":    payload.SubjectName,
	}})
}

func (p *NatsPublisher) OnGameEnded(payload event.GameEndedPayload) {
	p.publish(frame{Type: "game_ended", GameID: payload.GameID, Payload: map[string]interface{}{
		"winner": payload.WinnerName,
		"reason": payload.Reason,
	}})
}
