// Package experiments benchmarks move providers against each other over
// seeded games and stores the results as CSV records.
package experiments

import (
	"fmt"

	"github.com/mielpeeters/whister/agent"
	"github.com/mielpeeters/whister/engine"
	"github.com/mielpeeters/whister/experiments/metrics"
	"github.com/mielpeeters/whister/game"
	"github.com/mielpeeters/whister/model"
	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per matchup

// RunStrengthExperiment pits the model-driven AI against the rule-based and
// random baselines. Seat 0 plays agent1's config, the three other seats play
// agent2's; seeds run 1..NumGames so every matchup sees the same deals.
func RunStrengthExperiment(weights *model.Weights) error {
	ai := metrics.AgentConfig{ID: 1, Kind: "ai", Goroutines: 4}
	ruleBased := metrics.AgentConfig{ID: 2, Kind: "rulebased"}
	random := metrics.AgentConfig{ID: 3, Kind: "random"}

	matchUps := [][2]metrics.AgentConfig{
		{ai, ruleBased},
		{ai, random},
		{ruleBased, random},
	}

	return runExperiment("strength", weights,
		[]metrics.AgentConfig{ai, ruleBased, random}, matchUps)
}

func runExperiment(name string, weights *model.Weights, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < NumGames; i++ {
			seed := uint64(i + 1)
			scores, gameMetric, err := runGame(seed, weights, matchup)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     matchup[0].ID,
				Agent2:     matchup[1].ID,
				Seed:       seed,
				GameMetric: gameMetric,
			})
			for _, mm := range gameMetric.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d game %d of %d, scores: %v",
				mi+1, i+1, NumGames, scores)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored experiment records")

	return nil
}

// runGame plays one seeded 4-player game: seat 0 uses the first config, the
// remaining seats the second.
func runGame(seed uint64, weights *model.Weights, matchup [2]metrics.AgentConfig) ([]int, metrics.GameMetric, error) {
	config := game.Config{
		NumPlayers:  4,
		HandSize:    13,
		ScoreTarget: 26,
		ShuffleSeed: seed,
	}

	providers := make([]agent.MoveProvider, config.NumPlayers)
	providers[0] = newProvider(matchup[0], weights, seed)
	for seat := 1; seat < config.NumPlayers; seat++ {
		providers[seat] = newProvider(matchup[1], weights, seed+uint64(seat))
	}

	eng, err := engine.Local(config, providers)
	if err != nil {
		return nil, metrics.GameMetric{}, err
	}
	return eng.Run()
}

func newProvider(config metrics.AgentConfig, weights *model.Weights, seed uint64) agent.MoveProvider {
	switch config.Kind {
	case "ai":
		return agent.NewAI(weights, agent.WithGoroutines(config.Goroutines))
	case "random":
		return agent.NewRandom(seed)
	default:
		return agent.RuleBased{}
	}
}
