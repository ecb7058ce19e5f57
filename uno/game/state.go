package game

import (
	"fmt"
	"strings"

	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/uno/card"
	"github.com/feel-easy/uno-arena/uno/card/color"
)

// State is the public snapshot of a game: everything any participant or
// spectator may see. Hand contents never appear here, only counts.
type State struct {
	ID               string
	Status           int
	Players          []string
	HandCounts       map[string]int
	TopCard          card.Card
	ActiveColor      color.Color
	CurrentPlayer    string
	Direction        int
	PendingDraws     int
	Winner           string
	UnoWindowOpen    bool
	UnoWindowSubject string
}

func (g *Game) ExtractState() State {
	handCounts := make(map[string]int)
	g.players.ForEach(func(player *playerController) {
		handCounts[player.Name()] = player.HandSize()
	})
	topCard, _ := g.pile.Top()
	return State{
		ID:               g.id,
		Status:           g.status,
		Players:          g.players.Names(),
		HandCounts:       handCounts,
		TopCard:          topCard,
		ActiveColor:      g.activeColor,
		CurrentPlayer:    g.players.Current().Name(),
		Direction:        g.players.Direction(),
		PendingDraws:     g.pendingDraws,
		Winner:           g.winner,
		UnoWindowOpen:    g.window.open,
		UnoWindowSubject: g.window.subject,
	}
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Game %s (%s)", s.ID, consts.GameStates[s.Status]))
	lines = append(lines, fmt.Sprintf("Top card: %s, active color: %s", s.TopCard, s.ActiveColor))

	var playerStatuses []string
	for _, playerName := range s.Players {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.HandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Current player: %s", s.CurrentPlayer))
	if s.UnoWindowOpen {
		lines = append(lines, fmt.Sprintf("%s can be challenged!", s.UnoWindowSubject))
	}
	if s.Winner != "" {
		lines = append(lines, fmt.Sprintf("%s wins!", s.Winner))
	}
	return strings.Join(lines, "\n")
}
