package game

import "fmt"

// Suit of a playing card. The numeric order only matters as a stable
// identifier (deck order, tie-breaks); no suit outranks another except
// relative to the round's trump.
type Suit int

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

// Suits lists the four suits in identifier order.
var Suits = [4]Suit{Spades, Clubs, Diamonds, Hearts}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Rank of a playing card, Two low through Ace high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	NumRanks = 13
	DeckSize = 52
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case Ten:
		return "T"
	}
	return fmt.Sprintf("%d", int(r))
}

// Card is an immutable playing card value. Two cards are equal iff both
// suit and rank match; a deck holds no duplicates.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Beats reports whether c wins over other given the trump suit, with other
// being the card currently winning the trick. Same suit compares by rank;
// across suits only trump wins.
func (c Card) Beats(other Card, trump Suit) bool {
	if c.Suit == other.Suit {
		return c.Rank > other.Rank
	}
	return c.Suit == trump
}
