// Package local implements engine.GameEngine in process: two humans sharing the
// keyboard and mouse, or one human against the random computer player.
package local

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"tictactoe-local/engine"
	"tictactoe-local/engine/random"
	"tictactoe-local/game"
	"tictactoe-local/types"
)

// computerPlayer is the side the computer plays in PlayerVsComputer mode.
const computerPlayer = types.Two

// Engine drives one match at a time.
type Engine struct {
	config engine.GameConfig
	logger *log.Logger
	clock  quartz.Clock
	agent  *random.Agent

	state     *game.State
	connected bool
	thinking  bool
	pending   *quartz.Timer
	matchID   int // bumped on every new match so stale computer replies are dropped

	moveCallback func(pos types.Pos, player types.Player, state game.State)
	endCallback  func(state game.State)

	mu sync.Mutex
}

// New creates a local engine. clock schedules the computer's reply; pass
// quartz.NewReal() outside tests.
func New(cfg engine.GameConfig, logger *log.Logger, clock quartz.Clock) *Engine {
	agent := random.New(nil)
	if cfg.Seed != 0 {
		agent = random.NewSeeded(cfg.Seed)
	}
	return &Engine{
		config: cfg,
		logger: logger.WithPrefix("engine").With("mode", cfg.Mode.String()),
		clock:  clock,
		agent:  agent,
		state:  game.NewState(cfg.Mode),
	}
}

// Connect starts a fresh match.
func (e *Engine) Connect() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.connected = true
	e.newMatchLocked()
	e.logger.Info("Match started")
	return nil
}

func (e *Engine) State() game.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Snapshot()
}

func (e *Engine) IsMyTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isHumanTurnLocked()
}

func (e *Engine) isHumanTurnLocked() bool {
	if !e.connected || e.thinking || e.state.IsTerminal() {
		return false
	}
	return e.config.Mode == types.PlayerVsPlayer || e.state.Current() != computerPlayer
}

// PlayMove plays the move for the human to move and, against the computer,
// schedules the reply.
func (e *Engine) PlayMove(row, col int) error {
	e.mu.Lock()

	if !e.connected {
		e.mu.Unlock()
		return engine.ErrNotConnected
	}
	if !e.state.IsTerminal() && !e.isHumanTurnLocked() {
		e.mu.Unlock()
		return engine.ErrNotYourTurn
	}

	player := e.state.Current()
	if err := e.state.ApplyMove(row, col); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("illegal move: %w", err)
	}
	e.logger.Debug("Move played", "player", player, "row", row, "col", col)

	snapshot := e.state.Snapshot()
	reply := e.config.Mode == types.PlayerVsComputer && !snapshot.IsTerminal()
	if reply {
		e.thinking = true
	}
	matchID := e.matchID
	e.mu.Unlock()

	e.notify(types.Pos{Row: row, Col: col}, player, snapshot)

	if reply {
		e.scheduleComputerMove(matchID)
	}
	return nil
}

// scheduleComputerMove runs the computer's reply after the configured delay.
func (e *Engine) scheduleComputerMove(matchID int) {
	if e.config.ComputerDelay <= 0 {
		e.computerMove(matchID)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if matchID != e.matchID {
		return
	}
	e.pending = e.clock.AfterFunc(e.config.ComputerDelay, func() {
		e.computerMove(matchID)
	}, "engine", "computer-move")
}

func (e *Engine) computerMove(matchID int) {
	e.mu.Lock()

	if !e.connected || matchID != e.matchID || e.state.IsTerminal() {
		e.mu.Unlock()
		return
	}
	e.pending = nil
	e.thinking = false

	pos, err := e.agent.ChooseMove(e.state.Board())
	if err != nil {
		e.mu.Unlock()
		e.logger.Error("Computer could not choose a move", "error", err)
		return
	}
	if err := e.state.ApplyMove(pos.Row, pos.Col); err != nil {
		e.mu.Unlock()
		e.logger.Error("Computer move rejected", "pos", pos, "error", err)
		return
	}
	e.logger.Debug("Computer played", "row", pos.Row, "col", pos.Col)

	snapshot := e.state.Snapshot()
	e.mu.Unlock()

	e.notify(pos, computerPlayer, snapshot)
}

// notify runs the callbacks outside the lock so they may call back into the engine.
func (e *Engine) notify(pos types.Pos, player types.Player, snapshot game.State) {
	e.mu.Lock()
	moveCallback, endCallback := e.moveCallback, e.endCallback
	e.mu.Unlock()

	if moveCallback != nil {
		moveCallback(pos, player, snapshot)
	}
	if !snapshot.IsTerminal() {
		return
	}

	if winner, ok := snapshot.Winner(); ok {
		line, _ := snapshot.WinningLine()
		e.logger.Info("Match won", "winner", winner, "line", line.String(), "moves", len(snapshot.Moves()))
	} else {
		e.logger.Info("Match drawn", "moves", len(snapshot.Moves()))
	}
	if endCallback != nil {
		endCallback(snapshot)
	}
}

// Restart starts a new match with the same mode.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.newMatchLocked()
	e.logger.Info("Match restarted")
}

func (e *Engine) newMatchLocked() {
	e.stopPendingLocked()
	e.matchID++
	e.state = game.NewState(e.config.Mode)
}

func (e *Engine) stopPendingLocked() {
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
	e.thinking = false
}

func (e *Engine) OnMove(f func(pos types.Pos, player types.Player, state game.State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveCallback = f
}

func (e *Engine) OnGameEnd(f func(state game.State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.endCallback = f
}

// Close drops any pending computer move. The engine can be reconnected.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopPendingLocked()
	e.matchID++
	e.connected = false
	e.logger.Debug("Engine closed")
}

var _ engine.GameEngine = (*Engine)(nil)
