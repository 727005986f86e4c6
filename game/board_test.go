package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-local/types"
)

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Fresh board lists every cell in row-major order", func(t *testing.T) {
		// Given: a board that was played on and then reset
		var b Board
		require.NoError(t, b.Mark(1, 1, types.One))
		b.Reset()

		// When: listing the empty cells
		cells := b.EmptyCells()

		// Then: all nine coordinates come back row by row
		expected := []types.Pos{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
			{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
			{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		}
		assert.Equal(t, expected, cells)
		assert.False(t, b.IsFull())
	})

	t.Run("Marked cells are left out", func(t *testing.T) {
		// Given: a board with two marks
		var b Board
		require.NoError(t, b.Mark(0, 1, types.One))
		require.NoError(t, b.Mark(2, 2, types.Two))

		// When: listing the empty cells
		cells := b.EmptyCells()

		// Then: the marked cells are missing
		assert.Len(t, cells, 7)
		assert.NotContains(t, cells, types.Pos{Row: 0, Col: 1})
		assert.NotContains(t, cells, types.Pos{Row: 2, Col: 2})
	})
}

func TestBoard_Mark(t *testing.T) {
	t.Run("Marks an empty cell", func(t *testing.T) {
		var b Board

		err := b.Mark(2, 0, types.Two)

		require.NoError(t, err)
		assert.Equal(t, types.PlayerTwo, b.CellAt(2, 0))
		assert.False(t, b.IsEmpty(2, 0))
	})

	t.Run("Occupied cell is rejected", func(t *testing.T) {
		// Given: a cell already marked by player one
		var b Board
		require.NoError(t, b.Mark(1, 1, types.One))

		// When: player two tries the same cell
		err := b.Mark(1, 1, types.Two)

		// Then: the move is invalid and the mark is unchanged
		require.ErrorIs(t, err, ErrCellOccupied)
		require.ErrorIs(t, err, ErrInvalidMove)
		assert.Equal(t, types.PlayerOne, b.CellAt(1, 1))
	})

	tests := []struct {
		name     string
		row, col int
	}{
		{"Negative row", -1, 0},
		{"Negative column", 0, -1},
		{"Row past the edge", 3, 0},
		{"Column past the edge", 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board

			err := b.Mark(tt.row, tt.col, types.One)

			require.ErrorIs(t, err, ErrOutOfRange)
			require.ErrorIs(t, err, ErrInvalidMove)
			assert.Len(t, b.EmptyCells(), 9)
			assert.False(t, b.IsEmpty(tt.row, tt.col))
			assert.Equal(t, types.Empty, b.CellAt(tt.row, tt.col))
		})
	}
}

func TestBoard_IsFull(t *testing.T) {
	var b Board
	player := types.One
	for _, pos := range b.EmptyCells() {
		require.False(t, b.IsFull())
		require.NoError(t, b.Mark(pos.Row, pos.Col, player))
		player = player.Other()
	}

	assert.True(t, b.IsFull())
	assert.Empty(t, b.EmptyCells())

	b.Reset()
	assert.False(t, b.IsFull())
}

func TestBoard_String(t *testing.T) {
	var b Board
	require.NoError(t, b.Mark(0, 0, types.One))
	require.NoError(t, b.Mark(1, 1, types.Two))

	assert.Equal(t, "O../.X./...", b.String())
}
