package game

import (
	"fmt"

	"github.com/mielpeeters/whister/utils"
	"golang.org/x/exp/rand"
)

// Deck is an ordered pile of cards. A fresh deck holds all 52 unique cards;
// hands and tricks are smaller decks pulled from it.
type Deck []Card

// NewDeck returns the full 52-card deck in its canonical order: suit-major
// (Spades, Clubs, Diamonds, Hearts), ranks ascending within each suit.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// Shuffle permutes the deck in place using a source seeded with seed, so the
// same seed always yields the same order.
func (d Deck) Shuffle(seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal splits off numPlayers hands of handSize cards each, in deck order.
// Cards beyond numPlayers*handSize are set aside. Returns
// ErrInvalidPlayerCount when the deck cannot be partitioned that way.
func (d Deck) Deal(numPlayers, handSize int) ([]Hand, error) {
	if numPlayers < 2 {
		return nil, fmt.Errorf("%w: need at least 2 players, got %d", ErrInvalidPlayerCount, numPlayers)
	}
	if handSize < 1 || numPlayers*handSize > len(d) {
		return nil, fmt.Errorf("%w: %d players with hand size %d does not partition a %d-card deck",
			ErrInvalidPlayerCount, numPlayers, handSize, len(d))
	}

	hands := make([]Hand, numPlayers)
	for p := 0; p < numPlayers; p++ {
		hand := make(Hand, handSize)
		copy(hand, d[p*handSize:(p+1)*handSize])
		hands[p] = hand
	}
	return hands, nil
}

// Hand is the set of cards one player currently holds, kept sorted by suit
// then rank for stable indexing.
type Hand []Card

// Sort orders the hand suit-major, ranks ascending.
func (h Hand) Sort() {
	for i := 1; i < len(h); i++ {
		for j := i; j > 0 && less(h[j], h[j-1]); j-- {
			h[j], h[j-1] = h[j-1], h[j]
		}
	}
}

func less(a, b Card) bool {
	if a.Suit != b.Suit {
		return a.Suit < b.Suit
	}
	return a.Rank < b.Rank
}

// IndexOf returns the position of card in the hand, or -1.
func (h Hand) IndexOf(card Card) int {
	return utils.FindIndex(h, card)
}

// Contains reports whether the hand holds card.
func (h Hand) Contains(card Card) bool {
	return h.IndexOf(card) >= 0
}

// CanFollow reports whether the hand holds any card of suit.
func (h Hand) CanFollow(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// OfSuit returns the hand's cards of the given suit, in hand order.
func (h Hand) OfSuit(suit Suit) []Card {
	var cards []Card
	for _, c := range h {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}
	return cards
}

// Remove deletes card from the hand and reports whether it was present.
func (h *Hand) Remove(card Card) bool {
	i := h.IndexOf(card)
	if i < 0 {
		return false
	}
	*h = append((*h)[:i], (*h)[i+1:]...)
	return true
}

// Copy returns an independent copy of the hand.
func (h Hand) Copy() Hand {
	dup := make(Hand, len(h))
	copy(dup, h)
	return dup
}
