package consts

// Game lifecycle statuses. A game is created waiting, becomes running on
// start, and ends either by a win or by an explicit end call.
const (
	GameStateWaiting = 1
	GameStateRunning = 2
	GameStateEnded   = 3
)

var GameStates = map[int]string{
	GameStateWaiting: "Waiting",
	GameStateRunning: "Running",
	GameStateEnded:   "Ended",
}

const (
	MinPlayers       = 2
	MaxPlayers       = 10
	StartingHandSize = 7

	// ChallengePenaltyCards is drawn by a player caught with one card
	// and no UNO declaration.
	ChallengePenaltyCards = 2
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist        = NewErr(1, true, "Exist. ")
	ErrorsInputInvalid = NewErr(1, false, "Input invalid. ")

	ErrorsGameNotFound      = NewErr(1, false, "Game not found. ")
	ErrorsNotInGame         = NewErr(1, false, "Not a participant of this game. ")
	ErrorsAlreadyInGame     = NewErr(1, false, "Already joined this game. ")
	ErrorsGameNotWaiting    = NewErr(1, false, "Game already started. ")
	ErrorsGameNotRunning    = NewErr(1, false, "Game is not running. ")
	ErrorsGamePlayersIsFull = NewErr(1, false, "Game players is full. ")
	ErrorsGamePlayersFew    = NewErr(1, false, "Not enough players to start. ")

	ErrorsNotYourTurn        = NewErr(1, false, "Not your turn. ")
	ErrorsInvalidHandIndex   = NewErr(1, false, "Hand index out of range. ")
	ErrorsCardMismatch       = NewErr(1, false, "Card does not match the hand index. ")
	ErrorsCardNotPlayable    = NewErr(1, false, "Card is not playable on the top card. ")
	ErrorsInvalidColorChoice = NewErr(1, false, "Color choice invalid for this card. ")
	ErrorsInvalidCard        = NewErr(1, false, "Card id invalid. ")
	ErrorsAlreadyDrew        = NewErr(1, false, "Already drew a card this turn. ")

	ErrorsInsufficientCards  = NewErr(1, false, "Insufficient cards in the deck. ")
	ErrorsNothingToReshuffle = NewErr(1, false, "Discard pile too small to reshuffle. ")

	ErrorsUnoNotDeclarable = NewErr(1, false, "UNO can only be declared with exactly two cards. ")
	ErrorsWindowNotOpen    = NewErr(1, false, "No challenge window is open. ")
	ErrorsWrongSubject     = NewErr(1, false, "Challenge subject mismatch. ")
	ErrorsAlreadyPenalized = NewErr(1, false, "Penalty already applied this window. ")
	ErrorsChallengeSelf    = NewErr(1, false, "Cannot challenge yourself. ")
)
