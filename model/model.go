package model

import (
	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/uno/card"
	"github.com/feel-easy/uno-arena/uno/game"
)

// GameState is the wire form of a game's public snapshot.
type GameState struct {
	ID               string         `json:"id"`
	Status           int            `json:"status"`
	StatusDesc       string         `json:"statusDesc"`
	Players          []string       `json:"players"`
	HandCounts       map[string]int `json:"handCounts"`
	TopCard          int            `json:"topCard"`
	TopCardKind      string         `json:"topCardKind"`
	ActiveColor      string         `json:"activeColor"`
	CurrentPlayer    string         `json:"currentPlayer"`
	Direction        int            `json:"direction"`
	PendingDraws     int            `json:"pendingDraws"`
	Winner           string         `json:"winner,omitempty"`
	UnoWindowOpen    bool           `json:"unoWindowOpen"`
	UnoWindowSubject string         `json:"unoWindowSubject,omitempty"`
}

func NewGameState(state game.State) GameState {
	return GameState{
		ID:               state.ID,
		Status:           state.Status,
		StatusDesc:       consts.GameStates[state.Status],
		Players:          state.Players,
		HandCounts:       state.HandCounts,
		TopCard:          int(state.TopCard),
		TopCardKind:      state.TopCard.Kind().String(),
		ActiveColor:      state.ActiveColor.Name(),
		CurrentPlayer:    state.CurrentPlayer,
		Direction:        state.Direction,
		PendingDraws:     state.PendingDraws,
		Winner:           state.Winner,
		UnoWindowOpen:    state.UnoWindowOpen,
		UnoWindowSubject: state.UnoWindowSubject,
	}
}

// Hand is a participant's own view of their cards.
type Hand struct {
	GameID string `json:"gameId"`
	Player string `json:"player"`
	Cards  []int  `json:"cards"`
}

func NewHand(gameID string, player string, cards []card.Card) Hand {
	ids := make([]int, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, int(c))
	}
	return Hand{
		GameID: gameID,
		Player: player,
		Cards:  ids,
	}
}
