package game

// PlayerIterator owns the player controllers and the turn cycler,
// keeping the join order as the turn order.
type PlayerIterator struct {
	players map[string]*playerController
	cycler  *Cycler
}

func newPlayerIterator(names []string) *PlayerIterator {
	playerMap := make(map[string]*playerController, len(names))
	for _, name := range names {
		playerMap[name] = newPlayerController(name)
	}
	return &PlayerIterator{
		players: playerMap,
		cycler:  NewCycler(names),
	}
}

func (i *PlayerIterator) Add(name string) *playerController {
	controller := newPlayerController(name)
	i.players[name] = controller
	i.cycler.Append(name)
	return controller
}

func (i *PlayerIterator) Contains(name string) bool {
	_, ok := i.players[name]
	return ok
}

func (i *PlayerIterator) Count() int {
	return i.cycler.Count()
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	i.cycler.ForEach(func(name string) {
		function(i.players[name])
	})
}

func (i *PlayerIterator) GetPlayerController(name string) *playerController {
	return i.players[name]
}

func (i *PlayerIterator) Names() []string {
	return i.cycler.Elements()
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}
