package game

// challengeWindow tracks the interval during which a player who reached
// one card without declaring UNO can be penalized. It opens only on the
// exact drop from two cards to one and closes on the subject's own next
// turn-start action, on any other player completing a move, or on a
// penalty being applied.
type challengeWindow struct {
	open           bool
	subject        string
	penaltyApplied bool
}

func (w *challengeWindow) openFor(subject string) {
	w.open = true
	w.subject = subject
	w.penaltyApplied = false
}

func (w *challengeWindow) close() {
	w.open = false
	w.subject = ""
	w.penaltyApplied = false
}
