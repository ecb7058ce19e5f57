package network

import (
	"net/http"

	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/service"
	"github.com/gin-gonic/gin"
	"github.com/ratel-online/core/log"
)

// HttpServer exposes the action and discovery surfaces. Callers arrive
// pre-authenticated; the stable participant identity is read from the
// X-Player-Name header and only membership is checked downstream.
type HttpServer struct {
	addr    string
	service *service.Service
	hub     *Hub
}

func NewHttpServer(addr string, service *service.Service, hub *Hub) HttpServer {
	return HttpServer{addr: addr, service: service, hub: hub}
}

func (h HttpServer) Serve() error {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	v1 := engine.Group("/v1")
	v1.POST("/games", h.createGame)
	v1.GET("/games", h.listGames)
	v1.GET("/games/:id", h.gameState)
	v1.GET("/games/:id/hand", h.playerHand)
	v1.POST("/games/:id/join", h.joinGame)
	v1.POST("/games/:id/start", h.startGame)
	v1.POST("/games/:id/play", h.play)
	v1.POST("/games/:id/draw", h.draw)
	v1.POST("/games/:id/declare", h.declareUno)
	v1.POST("/games/:id/challenge", h.challengeUno)
	v1.POST("/games/:id/end", h.endGame)
	engine.GET("/ws", h.hub.ServeWs)

	log.Infof("Http server listening on %s\n", h.addr)
	return engine.Run(h.addr)
}

func playerName(c *gin.Context) (string, bool) {
	name := c.GetHeader("X-Player-Name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": "missing X-Player-Name header"})
		return "", false
	}
	return name, true
}

func fail(c *gin.Context, err error) {
	if e, ok := err.(consts.Error); ok {
		status := http.StatusBadRequest
		if e == consts.ErrorsGameNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"code": e.Code, "msg": e.Msg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"code": 1, "msg": err.Error()})
}

type createGameRequest struct {
	FirstCard int `json:"firstCard"`
}

func (h HttpServer) createGame(c *gin.Context) {
	name, ok := playerName(c)
	if !ok {
		return
	}
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, consts.ErrorsInputInvalid)
		return
	}
	state, err := h.service.CreateGame(name, req.FirstCard)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

func (h HttpServer) listGames(c *gin.Context) {
	switch c.DefaultQuery("state", "waiting") {
	case "active":
		c.JSON(http.StatusOK, h.service.ActiveGames())
	default:
		c.JSON(http.StatusOK, h.service.WaitingGames())
	}
}

func (h HttpServer) gameState(c *gin.Context) {
	state, err := h.service.GameState(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h HttpServer) playerHand(c *gin.Context) {
	name, ok := playerName(c)
	if !ok {
		return
	}
	hand, err := h.service.PlayerHand(c.Param("id"), name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hand)
}

func (h HttpServer) joinGame(c *gin.Context) {
	name, ok := playerName(c)
	if !ok {
		return
	}
	state, err := h.service.JoinGame(c.Param("id"), name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h HttpServer) startGame(c *gin.Context) {
	name, ok := playerName(c)
	if !ok {
		return
	}
	state, err := h.service.StartGame(c.Param("id"), name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type playRequest struct {
	HandIndex int    `json:"handIndex"`
	Card      int    `json:"card"`
	Color     string `json:"color"`
}

func (h HttpServer) play(c *gin.Context) {
	name, ok := playerName(c)
	if !ok {
		return
	}
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, consts.ErrorsInputInvalid)
		return
	}
	state, err := h.service.Play(c.Param("id"), name, req.HandIndex, req.Card, req.Color)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type drawRequest struct {
	EndTurn bool `json:"endTurn"`
}

func (h HttpServer) draw(c *gin.Context) {
	name, ok := playerName(c)
	if !ok {
		return
	}
	var req drawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, consts.ErrorsInputInvalid)
		return
	}
	state, err := h.service.Draw(c.Param("id"), name, req.EndTurn)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h HttpServer) declareUno(c *gin.Context) {
	name, ok := playerName(c)
	if !ok {
		return
	}
	state, err := h.service.DeclareUno(c.Param("id"), name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type challengeRequest struct {
	Subject string `json:"subject"`
}

func (h HttpServer) challengeUno(c *gin.Context) {
	name, ok := playerName(c)
	if !ok {
		return
	}
	var req challengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, consts.ErrorsInputInvalid)
		return
	}
	state, err := h.service.ChallengeUno(c.Param("id"), name, req.Subject)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type endRequest struct {
	Reason string `json:"reason"`
}

func (h HttpServer) endGame(c *gin.Context) {
	name, ok := playerName(c)
	if !ok {
		return
	}
	var req endRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, consts.ErrorsInputInvalid)
		return
	}
	state, err := h.service.EndGame(c.Param("id"), name, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
