package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned for any move the rules do not allow.
	ErrInvalidMove = errors.New("invalid move")
	// ErrPreconditionViolation is returned when a move is requested from a full board.
	ErrPreconditionViolation = errors.New("precondition violation")

	ErrOutOfRange   = fmt.Errorf("%w: coordinates out of range", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrGameOver     = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
)
