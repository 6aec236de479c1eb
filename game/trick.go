package game

// Play is one card put down by one player within a trick.
type Play struct {
	Player int
	Card   Card
}

// Trick is the ordered sequence of plays for one round of the table. It is
// complete once every active player has contributed exactly one card.
type Trick struct {
	Plays []Play
}

// Size returns the number of cards on the table.
func (t Trick) Size() int {
	return len(t.Plays)
}

// LeadSuit returns the suit of the first card played. Only valid on a
// non-empty trick.
func (t Trick) LeadSuit() Suit {
	return t.Plays[0].Card.Suit
}

// Complete reports whether all numPlayers have played.
func (t Trick) Complete(numPlayers int) bool {
	return len(t.Plays) == numPlayers
}

// Winner returns the player whose play wins the trick: the highest trump if
// any trump was played, otherwise the highest card of the leading suit.
// Ranks are unique within a suit, so there is always exactly one winner.
//
// Calling Winner on an empty trick is an internal invariant violation and
// panics; the rules engine only resolves complete tricks.
func (t Trick) Winner(trump Suit) int {
	if len(t.Plays) == 0 {
		panic("game: cannot resolve an empty trick")
	}

	best := t.Plays[0]
	for _, play := range t.Plays[1:] {
		if play.Card.Beats(best.Card, trump) {
			best = play
		}
	}
	return best.Player
}

// Copy returns an independent copy of the trick.
func (t Trick) Copy() Trick {
	plays := make([]Play, len(t.Plays))
	copy(plays, t.Plays)
	return Trick{Plays: plays}
}
