// Package game implements the tic-tac-toe rules: the board, win detection and the
// per-match state machine.
package game

import (
	"fmt"

	"tictactoe-local/types"
)

// Board is the 3x3 grid. The zero value is an empty board.
// Board is a value type; copying it copies the grid.
type Board struct {
	cells [types.Size][types.Size]types.Cell
}

// Mark puts the player's mark on an empty cell.
func (b *Board) Mark(row, col int, player types.Player) error {
	pos := types.Pos{Row: row, Col: col}
	if !pos.Valid() {
		return fmt.Errorf("%w: %s", ErrOutOfRange, pos)
	}
	if b.cells[row][col] != types.Empty {
		return fmt.Errorf("%w: %s", ErrCellOccupied, pos)
	}
	b.cells[row][col] = player.Cell()
	return nil
}

// IsEmpty reports whether the cell holds no mark. Positions off the board are never empty.
func (b *Board) IsEmpty(row, col int) bool {
	if !(types.Pos{Row: row, Col: col}).Valid() {
		return false
	}
	return b.cells[row][col] == types.Empty
}

// CellAt returns the content of a cell, Empty for positions off the board.
func (b *Board) CellAt(row, col int) types.Cell {
	if !(types.Pos{Row: row, Col: col}).Valid() {
		return types.Empty
	}
	return b.cells[row][col]
}

// EmptyCells lists the empty positions in row-major order.
func (b *Board) EmptyCells() []types.Pos {
	empty := make([]types.Pos, 0, types.Size*types.Size)
	for row := 0; row < types.Size; row++ {
		for col := 0; col < types.Size; col++ {
			if b.cells[row][col] == types.Empty {
				empty = append(empty, types.Pos{Row: row, Col: col})
			}
		}
	}
	return empty
}

// IsFull reports whether no empty cell is left.
func (b *Board) IsFull() bool {
	return len(b.EmptyCells()) == 0
}

// Reset clears every cell.
func (b *Board) Reset() {
	b.cells = [types.Size][types.Size]types.Cell{}
}

func (b Board) String() string {
	var s string
	for row := 0; row < types.Size; row++ {
		for col := 0; col < types.Size; col++ {
			cell := b.cells[row][col]
			if cell == types.Empty {
				s += "."
			} else {
				s += cell.String()
			}
		}
		if row < types.Size-1 {
			s += "/"
		}
	}
	return s
}
