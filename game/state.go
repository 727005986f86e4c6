package game

import (
	"fmt"

	"tictactoe-local/types"
)

// Status is the phase of a match.
type Status int

const (
	InProgress Status = iota
	Won
	Drawn
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// Move is one mark placed during a match.
type Move struct {
	Player types.Player
	Pos    types.Pos
}

// State is one match: the board, whose turn it is and the result once decided.
// Copying a State yields an independent snapshot.
type State struct {
	board   Board
	mode    types.Mode
	current types.Player
	status  Status
	winner  types.Player
	line    types.Line
	moves   []Move
}

// NewState creates a fresh match. Player one moves first.
func NewState(mode types.Mode) *State {
	return &State{
		mode:    mode,
		current: types.One,
		status:  InProgress,
	}
}

// ApplyMove places the current player's mark and advances the match.
// On error the state is left unchanged.
func (s *State) ApplyMove(row, col int) error {
	if s.status != InProgress {
		return fmt.Errorf("%w: status %s", ErrGameOver, s.status)
	}
	if err := s.board.Mark(row, col, s.current); err != nil {
		return err
	}
	s.moves = append(s.moves, Move{Player: s.current, Pos: types.Pos{Row: row, Col: col}})

	if line, ok := WinningLine(s.board, s.current); ok {
		s.status = Won
		s.winner = s.current
		s.line = line
		return nil
	}
	if s.board.IsFull() {
		s.status = Drawn
		return nil
	}
	s.current = s.current.Other()
	return nil
}

// Reset starts a new match with the same mode.
func (s *State) Reset() {
	*s = *NewState(s.mode)
}

// Snapshot returns a copy that shares nothing with s.
func (s *State) Snapshot() State {
	snap := *s
	snap.moves = append([]Move(nil), s.moves...)
	return snap
}

func (s *State) Board() Board {
	return s.board
}

func (s *State) Mode() types.Mode {
	return s.mode
}

// Current returns the player to move. Once the match is over it stays on the last mover.
func (s *State) Current() types.Player {
	return s.current
}

func (s *State) Status() Status {
	return s.status
}

func (s *State) IsTerminal() bool {
	return s.status != InProgress
}

// Winner returns the recorded winner, if any.
func (s *State) Winner() (types.Player, bool) {
	if s.status != Won {
		return 0, false
	}
	return s.winner, true
}

// WinningLine returns the line that decided the match, if any.
func (s *State) WinningLine() (types.Line, bool) {
	if s.status != Won {
		return types.Line{}, false
	}
	return s.line, true
}

// Moves returns the moves of the match in the order they were played.
func (s *State) Moves() []Move {
	return append([]Move(nil), s.moves...)
}
