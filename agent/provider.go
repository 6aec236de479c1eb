package agent

import (
	"errors"
	"fmt"

	"github.com/mielpeeters/whister/game"
	"golang.org/x/exp/rand"
)

// ErrScriptExhausted is returned once a scripted provider runs out of moves.
var ErrScriptExhausted = errors.New("scripted moves exhausted")

// RuleBased is a deterministic heuristic opponent: lead your highest card,
// beat the table with the cheapest card that wins if you can, otherwise dump
// your lowest legal card.
type RuleBased struct{}

func (RuleBased) ChooseMove(gs *game.GameState, player int) (game.Card, error) {
	legal := gs.LegalMoves(player)
	if len(legal) == 0 {
		panic("agent: no legal moves for player to act")
	}

	if gs.Current.Size() == 0 {
		return highest(legal), nil
	}

	var better []game.Card
	for _, card := range legal {
		if wouldWin(gs, card) {
			better = append(better, card)
		}
	}
	if len(better) > 0 {
		return lowest(better), nil
	}
	return lowest(legal), nil
}

// Random plays a uniformly random legal card from a seeded source, the
// baseline opponent in benchmarks.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(gs *game.GameState, player int) (game.Card, error) {
	legal := gs.LegalMoves(player)
	if len(legal) == 0 {
		panic("agent: no legal moves for player to act")
	}
	return legal[r.rng.Intn(len(legal))], nil
}

// Scripted replays a fixed sequence of cards, for tests and replays.
type Scripted struct {
	moves []game.Card
	next  int
}

func NewScripted(moves ...game.Card) *Scripted {
	return &Scripted{moves: moves}
}

func (s *Scripted) ChooseMove(gs *game.GameState, player int) (game.Card, error) {
	if s.next >= len(s.moves) {
		return game.Card{}, fmt.Errorf("%w: %d moves played", ErrScriptExhausted, s.next)
	}
	card := s.moves[s.next]
	s.next++
	return card, nil
}

// highest returns the highest card by rank, lower suit identifier winning
// rank ties.
func highest(cards []game.Card) game.Card {
	best := cards[0]
	for _, card := range cards[1:] {
		if card.Rank > best.Rank || (card.Rank == best.Rank && card.Suit < best.Suit) {
			best = card
		}
	}
	return best
}

// lowest mirrors highest.
func lowest(cards []game.Card) game.Card {
	best := cards[0]
	for _, card := range cards[1:] {
		if card.Rank < best.Rank || (card.Rank == best.Rank && card.Suit < best.Suit) {
			best = card
		}
	}
	return best
}
