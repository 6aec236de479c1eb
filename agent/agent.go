package agent

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mielpeeters/whister/game"
	"github.com/mielpeeters/whister/model"
)

var (
	ErrModelNotLoaded           = errors.New("model not loaded")
	ErrFeatureDimensionMismatch = errors.New("feature dimension mismatch")
)

// MoveProvider produces one legal card for the player to act. The turn loop
// invokes providers uniformly whether they are an AI, a script, or (in the
// UI layer) a human.
type MoveProvider interface {
	ChooseMove(gs *game.GameState, player int) (game.Card, error)
}

// AI scores every legal candidate with the loaded value function and plays
// the best one. Evaluation is read-only and side-effect-free, and the choice
// is deterministic for identical state and model.
type AI struct {
	weights    *model.Weights
	goroutines int
}

type Option func(*AI)

// WithGoroutines fans candidate evaluation out over the given number of
// goroutines. Purely a speed knob: the chosen card does not depend on it.
func WithGoroutines(goroutines int) Option {
	return func(a *AI) {
		if goroutines > 0 {
			a.goroutines = goroutines
		}
	}
}

// NewAI returns an AI playing with the given weights.
func NewAI(weights *model.Weights, options ...Option) *AI {
	a := &AI{
		weights:    weights,
		goroutines: 1,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// ChooseMove picks the legal card with the maximal model score. Ties break
// deterministically: trump cards first, then higher rank, then lower suit
// identifier. Fails with ErrModelNotLoaded when no weights were supplied and
// ErrFeatureDimensionMismatch when the artifact disagrees with this build's
// feature extractor.
func (a *AI) ChooseMove(gs *game.GameState, player int) (game.Card, error) {
	if a.weights == nil {
		return game.Card{}, fmt.Errorf("%w: AI invoked without weights", ErrModelNotLoaded)
	}
	if a.weights.FeatureDim != FeatureDim || a.weights.Len() != FeatureDim {
		return game.Card{}, fmt.Errorf("%w: model has dim %d with %d weights, engine extracts %d features",
			ErrFeatureDimensionMismatch, a.weights.FeatureDim, a.weights.Len(), FeatureDim)
	}

	legal := gs.LegalMoves(player)
	if len(legal) == 0 {
		panic("agent: no legal moves for player to act")
	}

	scores := a.scoreCandidates(gs, player, legal)

	best := 0
	for i := 1; i < len(legal); i++ {
		if scores[i] > scores[best] ||
			(scores[i] == scores[best] && preferred(legal[i], legal[best], gs.Trump)) {
			best = i
		}
	}
	return legal[best], nil
}

// scoreCandidates evaluates every candidate, optionally in parallel. Scores
// land in a slice indexed by candidate, so the sequential argmax above sees
// the same ordering regardless of goroutine count.
func (a *AI) scoreCandidates(gs *game.GameState, player int, legal []game.Card) []float64 {
	scores := make([]float64, len(legal))

	workers := a.goroutines
	if workers > len(legal) {
		workers = len(legal)
	}
	if workers <= 1 {
		for i, card := range legal {
			scores[i] = a.weights.Dot(Features(gs, player, card))
		}
		return scores
	}

	task := make(chan int, len(legal))
	for i := range legal {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range task {
				scores[i] = a.weights.Dot(Features(gs, player, legal[i]))
			}
		}()
	}
	wg.Wait()

	return scores
}

// preferred orders cards for tie-breaking: trump membership descending, rank
// descending, suit identifier ascending.
func preferred(a, b game.Card, trump game.Suit) bool {
	aTrump := a.Suit == trump
	bTrump := b.Suit == trump
	if aTrump != bTrump {
		return aTrump
	}
	if a.Rank != b.Rank {
		return a.Rank > b.Rank
	}
	return a.Suit < b.Suit
}
