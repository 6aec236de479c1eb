package metrics

import "time"

// MoveMetric records one provider decision.
type MoveMetric struct {
	Step     int
	Player   int
	Duration time.Duration
}

// GameMetric records one completed game.
type GameMetric struct {
	StartingPlayer int
	Winner         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Moves          []MoveMetric
}

// AgentConfig identifies an agent setup under benchmark.
type AgentConfig struct {
	ID         int
	Kind       string // "ai", "rulebased" or "random"
	Goroutines int
}

// GameRecord is one CSV row of game results.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	Seed   uint64
	GameMetric
}

// MoveRecord is one CSV row of move timings.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
