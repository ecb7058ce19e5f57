package network

import (
	"net/http"
	"sync"

	"github.com/feel-easy/uno-arena/uno/event"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// frame is one event pushed to websocket subscribers of a game.
type frame struct {
	Type    string                 `json:"type"`
	GameID  string                 `json:"gameId"`
	Payload map[string]interface{} `json:"payload"`
}

// Hub fans engine events out to websocket subscribers per game id. It
// listens on every emitter once Register is called.
type Hub struct {
	sync.Mutex
	subscribers map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{subscribers: map[string]map[*websocket.Conn]bool{}}
}

// Register attaches the hub to every engine event emitter.
func (h *Hub) Register() {
	event.FirstCardPlayed.AddListener(h)
	event.PlayerJoined.AddListener(h)
	event.GameStarted.AddListener(h)
	event.CardPlayed.AddListener(h)
	event.ColorPicked.AddListener(h)
	event.CardsDrawn.AddListener(h)
	event.TurnChanged.AddListener(h)
	event.UnoDeclared.AddListener(h)
	event.ChallengeWindowOpened.AddListener(h)
	event.ChallengeResolved.AddListener(h)
	event.GameEnded.AddListener(h)
}

// ServeWs upgrades a subscriber connection for /ws?game=<id>.
func (h *Hub) ServeWs(c *gin.Context) {
	gameID := c.Query("game")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": "missing game query parameter"})
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error(err)
		return
	}
	h.subscribe(gameID, conn)
	// Reads are discarded; the loop exists to notice the peer leaving.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unsubscribe(gameID, conn)
	_ = conn.Close()
}

func (h *Hub) subscribe(gameID string, conn *websocket.Conn) {
	h.Lock()
	defer h.Unlock()
	if h.subscribers[gameID] == nil {
		h.subscribers[gameID] = map[*websocket.Conn]bool{}
	}
	h.subscribers[gameID][conn] = true
}

func (h *Hub) unsubscribe(gameID string, conn *websocket.Conn) {
	h.Lock()
	defer h.Unlock()
	delete(h.subscribers[gameID], conn)
	if len(h.subscribers[gameID]) == 0 {
		delete(h.subscribers, gameID)
	}
}

func (h *Hub) broadcast(f frame) {
	h.Lock()
	defer h.Unlock()
	for conn := range h.subscribers[f.GameID] {
		if err := conn.WriteJSON(f); err != nil {
			log.Error(err)
		}
	}
}

func (h *Hub) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	h.broadcast(frame{Type: "first_card_played", GameID: payload.GameID, Payload: map[string]interface{}{
		"card": int(payload.Card),
	}})
}

func (h *Hub) OnPlayerJoined(payload event.PlayerJoinedPayload) {
	h.broadcast(frame{Type: "player_joined", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
	}})
}

func (h *Hub) OnGameStarted(payload event.GameStartedPayload) {
	h.broadcast(frame{Type: "game_started", GameID: payload.GameID, Payload: map[string]interface{}{
		"players":   payload.PlayerNames,
		"firstTurn": payload.FirstTurn,
	}})
}

func (h *Hub) OnCardPlayed(payload event.CardPlayedPayload) {
	h.broadcast(frame{Type: "card_played", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
		"card":   int(payload.Card),
	}})
}

func (h *Hub) OnColorPicked(payload event.ColorPickedPayload) {
	h.broadcast(frame{Type: "color_picked", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
		"color":  payload.Color.Name(),
	}})
}

func (h *Hub) OnCardsDrawn(payload event.CardsDrawnPayload) {
	h.broadcast(frame{Type: "cards_drawn", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
		"amount": payload.Amount,
	}})
}

func (h *Hub) OnTurnChanged(payload event.TurnChangedPayload) {
	h.broadcast(frame{Type: "turn_changed", GameID: payload.GameID, Payload: map[string]interface{}{
		"player":       payload.PlayerName,
		"pendingDraws": payload.PendingDraws,
	}})
}

func (h *Hub) OnUnoDeclared(payload event.UnoDeclaredPayload) {
	h.broadcast(frame{Type: "uno_declared", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
	}})
}

func (h *Hub) OnChallengeWindowOpened(payload event.ChallengeWindowOpenedPayload) {
	h.broadcast(frame{Type: "challenge_window_opened", GameID: payload.GameID, Payload: map[string]interface{}{
		"player": payload.PlayerName,
	}})
}

func (h *Hub) OnChallengeResolved(payload event.ChallengeResolvedPayload) {
	h.broadcast(frame{Type: "challenge_resolved", GameID: payload.GameID, Payload: map[string]interface{}{
		"challenger": payload.ChallengerName,
		"subject":    payload.SubjectName,
	}})
}

func (h *Hub) OnGameEnded(payload event.GameEndedPayload) {
	h.broadcast(frame{Type: "game_ended", GameID: payload.GameID, Payload: map[string]interface{}{
		"winner": payload.WinnerName,
		"reason": payload.Reason,
	}})
}
