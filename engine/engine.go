// Package engine defines the interface between the UI and whatever drives a match.
package engine

import (
	"errors"
	"time"

	"tictactoe-local/game"
	"tictactoe-local/types"
)

var (
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrNotConnected = errors.New("engine is not connected")
)

// GameEngine defines the interface for playing a match.
type GameEngine interface {
	// Connect starts a fresh match.
	Connect() error

	// State returns a snapshot of the current match.
	State() game.State

	// PlayMove plays a move for the human whose turn it is.
	// Returns an error if the move is illegal.
	PlayMove(row, col int) error

	// IsMyTurn returns true if a human may move now.
	IsMyTurn() bool

	// Restart throws the current match away and starts a new one with the same mode.
	Restart()

	// OnMove registers a callback for when a move is played (by either player).
	// state is a snapshot taken right after the move.
	OnMove(func(pos types.Pos, player types.Player, state game.State))

	// OnGameEnd registers a callback for when the match is won or drawn.
	OnGameEnd(func(state game.State))

	// Close shuts down the engine and drops any pending computer move.
	Close()
}

// GameConfig holds configuration for starting a new match.
type GameConfig struct {
	Mode          types.Mode
	ComputerDelay time.Duration // Pause before the computer replies
	Seed          int64         // Computer randomness; 0 seeds from the clock
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Mode:          types.PlayerVsComputer,
		ComputerDelay: 300 * time.Millisecond,
	}
}
