package game

import "errors"

// Rule violations are returned to whichever caller proposed the move; the
// state is left untouched. Configuration errors surface at game creation.
var (
	ErrIllegalMove        = errors.New("illegal move")
	ErrOutOfTurn          = errors.New("out of turn")
	ErrIllegalPhase       = errors.New("illegal phase")
	ErrInvalidPlayerCount = errors.New("invalid player count")
)
