// Package random implements the computer opponent: it picks any empty cell.
package random

import (
	"fmt"
	"math/rand"
	"time"

	"tictactoe-local/game"
	"tictactoe-local/types"
)

// Agent chooses uniformly among the empty cells of a board.
type Agent struct {
	rng *rand.Rand
}

// New creates an agent drawing from rng. A nil rng is seeded from the clock.
func New(rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // not security sensitive
	}
	return &Agent{rng: rng}
}

// NewSeeded creates an agent with a deterministic sequence of choices.
func NewSeeded(seed int64) *Agent {
	return New(rand.New(rand.NewSource(seed))) //nolint:gosec // not security sensitive
}

// ChooseMove returns one of the board's empty cells.
func (a *Agent) ChooseMove(b game.Board) (types.Pos, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return types.Pos{}, fmt.Errorf("%w: no empty cell to choose from", game.ErrPreconditionViolation)
	}
	return empty[a.rng.Intn(len(empty))], nil
}
