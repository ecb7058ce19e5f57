package service

import (
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/uno/game"
)

// entry pairs a game with its action lock. Actions on one game id are
// strictly serialized through the lock; actions on different ids run
// independently.
type entry struct {
	sync.Mutex
	game *game.Game
}

// Registry maps game ids to sessions and classifies them for discovery
// into waiting (open lobbies) and active lists. Classification moves
// with the status transitions; reads copy the lists, so a just-finished
// game may briefly still be listed.
type Registry struct {
	games *hashmap.HashMap

	mu      sync.Mutex
	waiting []string
	active  []string
}

func NewRegistry() *Registry {
	return &Registry{games: hashmap.New()}
}

func (r *Registry) put(g *game.Game) {
	r.games.Set(g.ID(), &entry{game: g})
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waiting = append(r.waiting, g.ID())
}

func (r *Registry) get(id string) (*entry, bool) {
	if v, ok := r.games.Get(id); ok {
		return v.(*entry), true
	}
	return nil, false
}

// reclassify realigns the discovery lists with the game's status. It is
// idempotent so the service can call it after every action.
func (r *Registry) reclassify(id string, status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch status {
	case consts.GameStateRunning:
		r.waiting = remove(r.waiting, id)
		if !contains(r.active, id) {
			r.active = append(r.active, id)
		}
	case consts.GameStateEnded:
		r.waiting = remove(r.waiting, id)
		r.active = remove(r.active, id)
	}
}

func (r *Registry) Waiting() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.waiting))
	copy(ids, r.waiting)
	return ids
}

func (r *Registry) Active() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.active))
	copy(ids, r.active)
	return ids
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
