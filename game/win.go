package game

import "tictactoe-local/types"

// lines holds the eight winning triples in detection order:
// columns, rows, main diagonal, anti-diagonal.
var lines = []types.Line{
	{Kind: types.Col, Index: 0},
	{Kind: types.Col, Index: 1},
	{Kind: types.Col, Index: 2},
	{Kind: types.Row, Index: 0},
	{Kind: types.Row, Index: 1},
	{Kind: types.Row, Index: 2},
	{Kind: types.Diag, Index: 0},
	{Kind: types.Diag, Index: 1},
}

// WinningLine returns the first line fully covered by the player's mark.
func WinningLine(b Board, player types.Player) (types.Line, bool) {
	mark := player.Cell()
	for _, line := range lines {
		complete := true
		for _, pos := range line.Cells() {
			if b.cells[pos.Row][pos.Col] != mark {
				complete = false
				break
			}
		}
		if complete {
			return line, true
		}
	}
	return types.Line{}, false
}

// HasWon reports whether the player covers any line.
func HasWon(b Board, player types.Player) bool {
	_, ok := WinningLine(b, player)
	return ok
}
