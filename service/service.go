package service

import (
	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/model"
	"github.com/feel-easy/uno-arena/uno/card"
	"github.com/feel-easy/uno-arena/uno/card/color"
	"github.com/feel-easy/uno-arena/uno/game"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
)

// Service is the action and discovery surface over the registry. Every
// mutating call resolves the game, takes its lock, delegates to the
// session and reclassifies the id when the status moved.
type Service struct {
	registry *Registry
}

func New(registry *Registry) *Service {
	return &Service{registry: registry}
}

func (s *Service) CreateGame(creator string, firstCardID int) (model.GameState, error) {
	firstCard := card.Card(firstCardID)
	if !firstCard.Valid() {
		return model.GameState{}, consts.ErrorsInvalidCard
	}
	g, err := game.New(uuid.NewString(), creator, firstCard)
	if err != nil {
		return model.GameState{}, err
	}
	s.registry.put(g)
	log.Infof("game %s created by %s\n", g.ID(), creator)
	return model.NewGameState(g.ExtractState()), nil
}

func (s *Service) JoinGame(id string, name string) (model.GameState, error) {
	return s.withGame(id, func(g *game.Game) error {
		return g.Join(name)
	})
}

func (s *Service) StartGame(id string, actor string) (model.GameState, error) {
	return s.withGame(id, func(g *game.Game) error {
		if !g.Players().Contains(actor) {
			return consts.ErrorsNotInGame
		}
		return g.Start()
	})
}

func (s *Service) Play(id string, actor string, handIndex int, cardID int, colorName string) (model.GameState, error) {
	played := card.Card(cardID)
	if !played.Valid() {
		return model.GameState{}, consts.ErrorsInvalidCard
	}
	var chosen color.Color
	if colorName != "" {
		picked, err := color.ByName(colorName)
		if err != nil {
			return model.GameState{}, consts.ErrorsInvalidColorChoice
		}
		chosen = picked
	}
	return s.withGame(id, func(g *game.Game) error {
		return g.Play(actor, handIndex, played, chosen)
	})
}

func (s *Service) Draw(id string, actor string, endTurn bool) (model.GameState, error) {
	return s.withGame(id, func(g *game.Game) error {
		return g.Draw(actor, endTurn)
	})
}

func (s *Service) DeclareUno(id string, actor string) (model.GameState, error) {
	return s.withGame(id, func(g *game.Game) error {
		return g.Declare(actor)
	})
}

func (s *Service) ChallengeUno(id string, challenger string, subject string) (model.GameState, error) {
	return s.withGame(id, func(g *game.Game) error {
		return g.ChallengeUno(challenger, subject)
	})
}

func (s *Service) EndGame(id string, actor string, reason string) (model.GameState, error) {
	return s.withGame(id, func(g *game.Game) error {
		if !g.Players().Contains(actor) {
			return consts.ErrorsNotInGame
		}
		return g.End(reason)
	})
}

func (s *Service) GameState(id string) (model.GameState, error) {
	e, ok := s.registry.get(id)
	if !ok {
		return model.GameState{}, consts.ErrorsGameNotFound
	}
	e.Lock()
	defer e.Unlock()
	return model.NewGameState(e.game.ExtractState()), nil
}

func (s *Service) PlayerHand(id string, name string) (model.Hand, error) {
	e, ok := s.registry.get(id)
	if !ok {
		return model.Hand{}, consts.ErrorsGameNotFound
	}
	e.Lock()
	defer e.Unlock()
	cards, err := e.game.GetPlayerCards(name)
	if err != nil {
		return model.Hand{}, err
	}
	return model.NewHand(id, name, cards), nil
}

func (s *Service) WaitingGames() []model.GameState {
	return s.states(s.registry.Waiting())
}

func (s *Service) ActiveGames() []model.GameState {
	return s.states(s.registry.Active())
}

func (s *Service) states(ids []string) []model.GameState {
	states := make([]model.GameState, 0, len(ids))
	for _, id := range ids {
		if state, err := s.GameState(id); err == nil {
			states = append(states, state)
		}
	}
	return states
}

func (s *Service) withGame(id string, action func(g *game.Game) error) (model.GameState, error) {
	e, ok := s.registry.get(id)
	if !ok {
		return model.GameState{}, consts.ErrorsGameNotFound
	}
	e.Lock()
	defer e.Unlock()
	if err := action(e.game); err != nil {
		return model.GameState{}, err
	}
	s.registry.reclassify(id, e.game.Status())
	return model.NewGameState(e.game.ExtractState()), nil
}
