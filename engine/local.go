// Package engine runs local whist games: a single sequential turn loop that
// owns the game state and drives one move provider per seat.
package engine

import (
	"fmt"
	"time"

	"github.com/mielpeeters/whister/agent"
	"github.com/mielpeeters/whister/experiments/metrics"
	"github.com/mielpeeters/whister/game"
	"github.com/rs/zerolog/log"
)

// Engine owns one game from deal to game end. Providers never retain the
// state they are handed; every change goes through the rules engine.
type Engine struct {
	State     *game.GameState
	Providers []agent.MoveProvider
}

// Local sets up a game for the given config with one provider per seat.
func Local(config game.Config, providers []agent.MoveProvider) (*Engine, error) {
	if len(providers) != config.NumPlayers {
		return nil, fmt.Errorf("%w: %d providers for %d players", game.ErrInvalidPlayerCount,
			len(providers), config.NumPlayers)
	}

	state, err := game.NewGame(config)
	if err != nil {
		return nil, err
	}
	return &Engine{State: state, Providers: providers}, nil
}

// Run plays the game to its terminal phase and returns the final scores plus
// per-game metrics. A provider returning an error or an illegal card aborts
// the game; rule violations are the provider's bug, not the loop's.
func (e *Engine) Run() ([]int, metrics.GameMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.CurrentPlayer(),
		StartTime:      time.Now(),
	}

	log.Info().Msgf("player %d leads the first trick, trump is %s", e.State.CurrentPlayer(), e.State.Trump)

	step := 0
	for !e.State.IsGameOver() {
		if e.State.IsRoundOver() {
			next, err := e.State.ApplyRoundScore()
			if err != nil {
				return nil, gameMetric, err
			}
			e.State = next
			log.Info().Msgf("round %d scored: %v", e.State.Rounds, e.State.PlayerScores())
			continue
		}

		player := e.State.CurrentPlayer()
		start := time.Now()
		card, err := e.Providers[player].ChooseMove(e.State, player)
		if err != nil {
			return nil, gameMetric, fmt.Errorf("provider for player %d: %w", player, err)
		}

		next, err := e.State.ApplyMove(player, card)
		if err != nil {
			return nil, gameMetric, fmt.Errorf("provider for player %d proposed %s: %w", player, card, err)
		}
		e.State = next

		step++
		gameMetric.Moves = append(gameMetric.Moves, metrics.MoveMetric{
			Step:     step,
			Player:   player,
			Duration: time.Since(start),
		})
		log.Debug().Msgf("step %d: player %d played %s", step, player, card)
	}

	winner, _ := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step

	log.Info().Msgf("game over after %d rounds, player %d wins: %v",
		e.State.Rounds, winner, e.State.PlayerScores())

	return e.State.PlayerScores(), gameMetric, nil
}
