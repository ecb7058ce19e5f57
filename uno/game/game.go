package game

import (
	"time"

	"github.com/feel-easy/uno-arena/consts"
	"github.com/feel-easy/uno-arena/uno/card"
	"github.com/feel-easy/uno-arena/uno/card/action"
	"github.com/feel-easy/uno-arena/uno/card/color"
	"github.com/feel-easy/uno-arena/uno/event"
)

// Game is one UNO session: the deck, the discard pile, every hand, the
// turn state and the UNO challenge window. Every action validates all
// of its preconditions before touching any state, so a rejected call
// never mutates. Callers serialize actions per game; the service layer
// holds one lock per game id.
type Game struct {
	id           string
	players      *PlayerIterator
	deck         *Deck
	pile         *Pile
	status       int
	activeColor  color.Color
	pendingDraws int
	skipNext     bool
	drewThisTurn bool
	window       challengeWindow
	winner       string
	createdAt    time.Time
	startedAt    time.Time
	endedAt      time.Time
}

// New creates a session in the waiting state. The creator supplies the
// first card of the discard pile; it is extracted from the shuffled
// deck so the 108-card partition holds from the start. A wild first
// card defaults the active color to red, since nobody has picked yet.
func New(id string, creator string, firstCard card.Card) (*Game, error) {
	return NewWithDeck(id, creator, NewDeck(), firstCard)
}

// NewWithDeck is New with a caller-supplied deck order, for tests and
// replays.
func NewWithDeck(id string, creator string, deck *Deck, firstCard card.Card) (*Game, error) {
	if !firstCard.Valid() {
		return nil, consts.ErrorsInvalidCard
	}
	if err := deck.Take(firstCard); err != nil {
		return nil, err
	}
	activeColor := firstCard.Color()
	if firstCard.Wild() {
		activeColor = color.Red
	}
	g := &Game{
		id:          id,
		players:     newPlayerIterator([]string{creator}),
		deck:        deck,
		pile:        NewPile(),
		status:      consts.GameStateWaiting,
		activeColor: activeColor,
		createdAt:   time.Now(),
	}
	g.pile.Add(firstCard)
	cards, err := g.deck.Draw(consts.StartingHandSize)
	if err != nil {
		return nil, err
	}
	g.players.GetPlayerController(creator).AddCards(cards)
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		GameID: id,
		Card:   firstCard,
	})
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Status() int {
	return g.status
}

func (g *Game) Winner() string {
	return g.winner
}

func (g *Game) Players() *PlayerIterator {
	return g.players
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) ActiveColor() color.Color {
	return g.activeColor
}

func (g *Game) GetPlayerCards(name string) ([]card.Card, error) {
	if !g.players.Contains(name) {
		return nil, consts.ErrorsNotInGame
	}
	return g.players.GetPlayerController(name).Hand(), nil
}

// Join adds a participant to a waiting game and deals their starting
// hand.
func (g *Game) Join(name string) error {
	if g.status != consts.GameStateWaiting {
		return consts.ErrorsGameNotWaiting
	}
	if g.players.Contains(name) {
		return consts.ErrorsAlreadyInGame
	}
	if g.players.Count() >= consts.MaxPlayers {
		return consts.ErrorsGamePlayersIsFull
	}
	if g.deck.Remaining() < consts.StartingHandSize {
		return consts.ErrorsInsufficientCards
	}
	cards, err := g.deck.Draw(consts.StartingHandSize)
	if err != nil {
		return err
	}
	g.players.Add(name).AddCards(cards)
	event.PlayerJoined.Emit(event.PlayerJoinedPayload{
		GameID:     g.id,
		PlayerName: name,
	})
	return nil
}

// Start moves a waiting game with at least two participants into the
// running state. The creator plays first.
func (g *Game) Start() error {
	if g.status != consts.GameStateWaiting {
		return consts.ErrorsGameNotWaiting
	}
	if g.players.Count() < consts.MinPlayers {
		return consts.ErrorsGamePlayersFew
	}
	g.status = consts.GameStateRunning
	g.startedAt = time.Now()
	event.GameStarted.Emit(event.GameStartedPayload{
		GameID:      g.id,
		PlayerNames: g.players.Names(),
		FirstTurn:   g.players.Current().Name(),
	})
	return nil
}

// Play discards the card at handIndex. The actor states which card they
// intend to play; a mismatch with the hand is rejected before anything
// changes. chosen is mandatory for wild cards and forbidden otherwise.
func (g *Game) Play(actor string, handIndex int, played card.Card, chosen color.Color) error {
	if g.status != consts.GameStateRunning {
		return consts.ErrorsGameNotRunning
	}
	if !g.players.Contains(actor) {
		return consts.ErrorsNotInGame
	}
	if g.players.Current().Name() != actor {
		return consts.ErrorsNotYourTurn
	}
	controller := g.players.GetPlayerController(actor)
	inHand, err := controller.hand.CardAt(handIndex)
	if err != nil {
		return err
	}
	if inHand != played {
		return consts.ErrorsCardMismatch
	}
	if played.Wild() {
		if chosen == nil || chosen == color.None {
			return consts.ErrorsInvalidColorChoice
		}
	} else if chosen != nil {
		return consts.ErrorsInvalidColorChoice
	}
	topCard, _ := g.pile.Top()
	if !Playable(played, topCard, g.activeColor) {
		return consts.ErrorsCardNotPlayable
	}

	sizeBefore := controller.HandSize()
	if _, err := controller.hand.RemoveAt(handIndex); err != nil {
		return err
	}
	g.pile.Add(played)
	if played.Wild() {
		g.activeColor = chosen
		event.ColorPicked.Emit(event.ColorPickedPayload{
			GameID:     g.id,
			PlayerName: actor,
			Color:      chosen,
		})
	} else {
		g.activeColor = played.Color()
	}
	event.CardPlayed.Emit(event.CardPlayedPayload{
		GameID:     g.id,
		PlayerName: actor,
		Card:       played,
	})

	if sizeBefore == 2 && !controller.declaredUno {
		g.window.openFor(actor)
		event.ChallengeWindowOpened.Emit(event.ChallengeWindowOpenedPayload{
			GameID:     g.id,
			PlayerName: actor,
		})
	} else if g.window.open {
		g.window.close()
	}
	controller.declaredUno = false

	if controller.NoCards() {
		g.finish(actor, "won")
		return nil
	}
	g.applyCardActions(played)
	g.advanceTurn()
	return nil
}

// Draw takes one card from the deck, recycling the discard history
// first when the deck is dry. A player may draw voluntarily once per
// turn; with endTurn false the turn stays theirs so they can try to
// play the drawn card, and a second call with endTurn true passes.
func (g *Game) Draw(actor string, endTurn bool) error {
	if g.status != consts.GameStateRunning {
		return consts.ErrorsGameNotRunning
	}
	if !g.players.Contains(actor) {
		return consts.ErrorsNotInGame
	}
	if g.players.Current().Name() != actor {
		return consts.ErrorsNotYourTurn
	}
	if g.drewThisTurn {
		if !endTurn {
			return consts.ErrorsAlreadyDrew
		}
		if g.window.open {
			g.window.close()
		}
		g.advanceTurn()
		return nil
	}
	drawn, err := g.drawOneWithReshuffle()
	if err != nil {
		return err
	}
	controller := g.players.GetPlayerController(actor)
	controller.AddCards([]card.Card{drawn})
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		GameID:     g.id,
		PlayerName: actor,
		Amount:     1,
	})
	if g.window.open {
		g.window.close()
	}
	controller.declaredUno = false
	g.drewThisTurn = true
	if endTurn {
		g.advanceTurn()
	}
	return nil
}

// Declare marks the actor as having called UNO. Only meaningful while
// holding exactly two cards, right before playing the second-to-last.
func (g *Game) Declare(actor string) error {
	if g.status != consts.GameStateRunning {
		return consts.ErrorsGameNotRunning
	}
	if !g.players.Contains(actor) {
		return consts.ErrorsNotInGame
	}
	controller := g.players.GetPlayerController(actor)
	if controller.HandSize() != 2 {
		return consts.ErrorsUnoNotDeclarable
	}
	controller.declaredUno = true
	event.UnoDeclared.Emit(event.UnoDeclaredPayload{
		GameID:     g.id,
		PlayerName: actor,
	})
	return nil
}

// ChallengeUno penalizes the subject of an open challenge window with
// two forced draws. The window fully resets afterwards so a later drop
// to one card can open a new one.
func (g *Game) ChallengeUno(challenger string, subject string) error {
	if g.status != consts.GameStateRunning {
		return consts.ErrorsGameNotRunning
	}
	if !g.players.Contains(challenger) || !g.players.Contains(subject) {
		return consts.ErrorsNotInGame
	}
	if challenger == subject {
		return consts.ErrorsChallengeSelf
	}
	if !g.window.open {
		return consts.ErrorsWindowNotOpen
	}
	if g.window.subject != subject {
		return consts.ErrorsWrongSubject
	}
	if g.window.penaltyApplied {
		return consts.ErrorsAlreadyPenalized
	}
	g.window.penaltyApplied = true
	controller := g.players.GetPlayerController(subject)
	penalty := g.drawUpTo(consts.ChallengePenaltyCards)
	controller.AddCards(penalty)
	if len(penalty) > 0 {
		event.CardsDrawn.Emit(event.CardsDrawnPayload{
			GameID:     g.id,
			PlayerName: subject,
			Amount:     len(penalty),
		})
	}
	controller.declaredUno = false
	g.window.close()
	event.ChallengeResolved.Emit(event.ChallengeResolvedPayload{
		GameID:         g.id,
		ChallengerName: challenger,
		SubjectName:    subject,
	})
	return nil
}

// End force-finishes a live game with no winner, for abandonment and
// timeout paths outside normal win detection.
func (g *Game) End(reason string) error {
	if g.status == consts.GameStateEnded {
		return consts.ErrorsGameNotRunning
	}
	g.finish("", reason)
	return nil
}

func (g *Game) finish(winner string, reason string) {
	g.status = consts.GameStateEnded
	g.winner = winner
	g.endedAt = time.Now()
	g.window.close()
	event.GameEnded.Emit(event.GameEndedPayload{
		GameID:     g.id,
		WinnerName: winner,
		Reason:     reason,
	})
}

func (g *Game) applyCardActions(playedCard card.Card) {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			g.pendingDraws = cardAction.Amount()
		case action.SkipTurnAction:
			g.skipNext = true
		case action.ReverseTurnsAction:
			g.players.Reverse()
			// With two players a reversal hands the turn straight
			// back, which is the same as a skip.
			if g.players.Count() == 2 {
				g.skipNext = true
			}
		case action.PickColorAction:
			// The color was already applied when the card was played.
		}
	}
}

// advanceTurn resolves the skip flag and any pending forced draws
// against the skipped player, then lands on the next one to act.
func (g *Game) advanceTurn() {
	next := g.players.Next()
	if g.skipNext {
		g.skipNext = false
		if g.pendingDraws > 0 {
			forced := g.drawUpTo(g.pendingDraws)
			next.AddCards(forced)
			if len(forced) > 0 {
				event.CardsDrawn.Emit(event.CardsDrawnPayload{
					GameID:     g.id,
					PlayerName: next.Name(),
					Amount:     len(forced),
				})
			}
			g.pendingDraws = 0
		}
		next = g.players.Next()
	}
	g.drewThisTurn = false
	event.TurnChanged.Emit(event.TurnChangedPayload{
		GameID:       g.id,
		PlayerName:   next.Name(),
		PendingDraws: g.pendingDraws,
	})
}

func (g *Game) drawOneWithReshuffle() (card.Card, error) {
	if g.deck.Remaining() == 0 {
		below, err := g.pile.TakeBelowTop()
		if err != nil {
			return 0, err
		}
		g.deck.Refill(below)
	}
	return g.deck.DrawOne()
}

// drawUpTo draws n cards, stopping early if both the deck and the
// discard history are exhausted. That can only happen when nearly every
// card is already held in hands.
func (g *Game) drawUpTo(n int) []card.Card {
	cards := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		drawn, err := g.drawOneWithReshuffle()
		if err != nil {
			break
		}
		cards = append(cards, drawn)
	}
	return cards
}
