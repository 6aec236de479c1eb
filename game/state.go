package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Phase tags where the game is in its life cycle. Moves are only accepted
// during TrickPlay; Dealing and TrumpSelection pass by while a round is set
// up, RoundScoring sits between rounds, GameEnd is terminal.
type Phase int

const (
	Dealing Phase = iota
	TrumpSelection
	TrickPlay
	RoundScoring
	GameEnd
)

func (p Phase) String() string {
	switch p {
	case Dealing:
		return "Dealing"
	case TrumpSelection:
		return "TrumpSelection"
	case TrickPlay:
		return "TrickPlay"
	case RoundScoring:
		return "RoundScoring"
	case GameEnd:
		return "GameEnd"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// TrumpSelector fixes the round's trump suit from the dealt hands and the
// dealer seat. Selection must be deterministic for a given deal.
type TrumpSelector func(hands []Hand, dealer int) Suit

// TrumpFromDealtCard designates the last card dealt to the dealer: its suit
// becomes trump. This is the default rule.
func TrumpFromDealtCard(hands []Hand, dealer int) Suit {
	hand := hands[dealer]
	return hand[len(hand)-1].Suit
}

// FixedTrump always selects the given suit, the classic hearts-are-trump
// table rule.
func FixedTrump(suit Suit) TrumpSelector {
	return func([]Hand, int) Suit {
		return suit
	}
}

// Config sets up a new game.
type Config struct {
	NumPlayers  int
	HandSize    int
	ScoreTarget int           // game ends once a player reaches this score
	MaxRounds   int           // optional round-count cap, 0 means no cap
	ShuffleSeed uint64        // seed for the round's shuffle
	Trump       TrumpSelector // nil defaults to TrumpFromDealtCard
}

// StateHash identifies a game state for cheap equality checks.
type StateHash uint64

// GameState holds the full state of one game: hands, trump, the current
// trick, turn order, scores and the phase tag. It is owned by the turn loop
// and only ever changes through ApplyMove and ApplyRoundScore, both of which
// return a new state and leave the receiver untouched.
type GameState struct {
	Config Config
	Phase  Phase

	Hands  []Hand
	Trump  Suit
	Dealer int

	Turn    int // player to act, index into the fixed seat rotation
	Leader  int // player who led the current trick
	Current Trick
	Played  []Trick

	TrickCounts []int // tricks won per player this round
	Scores      []int // cumulative game scores
	Rounds      int   // completed rounds

	// Card-counting state, maintained on trick close and consumed by AI
	// feature extraction: which cards have been seen in completed tricks,
	// and per suit how many players failed to follow when it was led.
	Gone       [4][NumRanks]bool
	CantFollow [4]int

	seed uint64 // shuffle seed of the current round
}

// NewGame deals a fresh game per config and runs it through trump selection,
// leaving it in TrickPlay with the player left of the dealer to act.
// Fails with ErrInvalidPlayerCount when the config cannot partition a deck.
func NewGame(config Config) (*GameState, error) {
	if config.Trump == nil {
		config.Trump = TrumpFromDealtCard
	}

	gs := &GameState{
		Config:      config,
		Phase:       Dealing,
		TrickCounts: make([]int, config.NumPlayers),
		Scores:      make([]int, config.NumPlayers),
		seed:        config.ShuffleSeed,
	}
	if err := gs.deal(); err != nil {
		return nil, err
	}
	gs.fixTrump()
	return gs, nil
}

// deal shuffles a full deck with the current round seed and hands out the
// cards, entering TrumpSelection.
func (gs *GameState) deal() error {
	deck := NewDeck()
	deck.Shuffle(gs.seed)

	hands, err := deck.Deal(gs.Config.NumPlayers, gs.Config.HandSize)
	if err != nil {
		return err
	}
	gs.Hands = hands

	gs.Gone = [4][NumRanks]bool{}
	gs.CantFollow = [4]int{}
	gs.Played = nil
	gs.Current = Trick{}
	for i := range gs.TrickCounts {
		gs.TrickCounts[i] = 0
	}

	gs.Phase = TrumpSelection
	return nil
}

// fixTrump applies the configured trump rule and opens trick play. The
// player left of the dealer leads the first trick. Hands are sorted only
// after trump selection so dealt-card rules see the deal order.
func (gs *GameState) fixTrump() {
	gs.Trump = gs.Config.Trump(gs.Hands, gs.Dealer)
	for _, hand := range gs.Hands {
		hand.Sort()
	}
	gs.Leader = gs.nextSeat(gs.Dealer)
	gs.Turn = gs.Leader
	gs.Phase = TrickPlay
}

// nextSeat advances one position in the fixed seat rotation.
func (gs *GameState) nextSeat(player int) int {
	return (player + 1) % gs.Config.NumPlayers
}

// CurrentPlayer returns the player designated to act.
func (gs *GameState) CurrentPlayer() int {
	return gs.Turn
}

// PlayerScores returns a copy of the cumulative scores, indexed by player.
func (gs *GameState) PlayerScores() []int {
	scores := make([]int, len(gs.Scores))
	copy(scores, gs.Scores)
	return scores
}

// Copy returns a deep copy of the state.
func (gs *GameState) Copy() *GameState {
	dup := *gs

	dup.Hands = make([]Hand, len(gs.Hands))
	for i, hand := range gs.Hands {
		dup.Hands[i] = hand.Copy()
	}

	dup.Current = gs.Current.Copy()
	dup.Played = make([]Trick, len(gs.Played))
	for i, trick := range gs.Played {
		dup.Played[i] = trick.Copy()
	}

	dup.TrickCounts = make([]int, len(gs.TrickCounts))
	copy(dup.TrickCounts, gs.TrickCounts)
	dup.Scores = make([]int, len(gs.Scores))
	copy(dup.Scores, gs.Scores)

	return &dup
}

// Hash digests the gameplay-relevant state, for equality checks in tests and
// engine updates.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Phase))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Leader))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Trump))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Rounds))

	for _, hand := range gs.Hands {
		binary.Write(hasher, binary.LittleEndian, int64(len(hand)))
		for _, c := range hand {
			binary.Write(hasher, binary.LittleEndian, int64(c.Suit)<<8|int64(c.Rank))
		}
	}
	for _, play := range gs.Current.Plays {
		binary.Write(hasher, binary.LittleEndian, int64(play.Player))
		binary.Write(hasher, binary.LittleEndian, int64(play.Card.Suit)<<8|int64(play.Card.Rank))
	}
	for _, trick := range gs.Played {
		binary.Write(hasher, binary.LittleEndian, int64(len(trick.Plays)))
		for _, play := range trick.Plays {
			binary.Write(hasher, binary.LittleEndian, int64(play.Player))
			binary.Write(hasher, binary.LittleEndian, int64(play.Card.Suit)<<8|int64(play.Card.Rank))
		}
	}
	for suit, ranks := range gs.Gone {
		var mask int64
		for i, gone := range ranks {
			if gone {
				mask |= 1 << i
			}
		}
		binary.Write(hasher, binary.LittleEndian, int64(suit)<<16|mask)
	}
	for _, count := range gs.CantFollow {
		binary.Write(hasher, binary.LittleEndian, int64(count))
	}
	for _, count := range gs.TrickCounts {
		binary.Write(hasher, binary.LittleEndian, int64(count))
	}
	for _, score := range gs.Scores {
		binary.Write(hasher, binary.LittleEndian, int64(score))
	}

	return StateHash(hasher.Sum64())
}
