package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-local/types"
)

// boardOf builds a board from three row strings using O, X and '.'.
func boardOf(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, types.Size)

	var b Board
	for row, line := range rows {
		require.Len(t, line, types.Size)
		for col, ch := range line {
			switch ch {
			case 'O':
				require.NoError(t, b.Mark(row, col, types.One))
			case 'X':
				require.NoError(t, b.Mark(row, col, types.Two))
			}
		}
	}
	return b
}

func TestWinningLine(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		winner types.Player
		line   types.Line
	}{
		{"Row 0", []string{"OOO", "XX.", "..."}, types.One, types.Line{Kind: types.Row, Index: 0}},
		{"Row 1", []string{"O.O", "XXX", "O.."}, types.Two, types.Line{Kind: types.Row, Index: 1}},
		{"Row 2", []string{"X.X", ".X.", "OOO"}, types.One, types.Line{Kind: types.Row, Index: 2}},
		{"Column 0", []string{"XO.", "XO.", "X.."}, types.Two, types.Line{Kind: types.Col, Index: 0}},
		{"Column 1", []string{"XO.", ".O.", "XO."}, types.One, types.Line{Kind: types.Col, Index: 1}},
		{"Column 2", []string{"O.X", "O.X", "..X"}, types.Two, types.Line{Kind: types.Col, Index: 2}},
		{"Main diagonal", []string{"OX.", "XO.", "..O"}, types.One, types.Line{Kind: types.Diag, Index: 0}},
		{"Anti-diagonal", []string{"O.X", "OX.", "X.."}, types.Two, types.Line{Kind: types.Diag, Index: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board where one player covers a full line
			b := boardOf(t, tt.rows...)

			// When: asking both players
			line, ok := WinningLine(b, tt.winner)

			// Then: only the owner of the line has won
			require.True(t, ok)
			assert.Equal(t, tt.line, line)
			assert.True(t, HasWon(b, tt.winner))
			assert.False(t, HasWon(b, tt.winner.Other()))
		})
	}
}

func TestWinningLine_ColumnsBeforeRows(t *testing.T) {
	// Given: player one covers both row 0 and column 0
	b := boardOf(t, "OOO", "OXX", "OX.")

	// When: asking for the winning line
	line, ok := WinningLine(b, types.One)

	// Then: the column is reported since columns are checked first
	require.True(t, ok)
	assert.Equal(t, types.Line{Kind: types.Col, Index: 0}, line)
}

func TestWinningLine_NoWinner(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"Empty board", []string{"...", "...", "..."}},
		{"Mixed row", []string{"OOX", "...", "..."}},
		{"Full board without a line", []string{"OXO", "OXX", "XOO"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.rows...)

			_, okOne := WinningLine(b, types.One)
			_, okTwo := WinningLine(b, types.Two)

			assert.False(t, okOne)
			assert.False(t, okTwo)
		})
	}
}

func TestLine_Cells(t *testing.T) {
	anti := types.Line{Kind: types.Diag, Index: 1}
	assert.Equal(t, [types.Size]types.Pos{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}, anti.Cells())

	col := types.Line{Kind: types.Col, Index: 1}
	assert.Equal(t, [types.Size]types.Pos{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}, col.Cells())
}
