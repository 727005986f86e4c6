package ui

import (
	"fmt"

	"tictactoe-local/types"
)

// Display coordinate system:
// - Columns: A-C (left to right)
// - Rows: 1-3 (top to bottom)
// - Example: A1 is the top-left cell, B2 the centre

// PosToDisplay converts a board position to its display name, e.g. (2, 0) -> A3.
func PosToDisplay(pos types.Pos) string {
	if !pos.Valid() {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'A'+rune(pos.Col), pos.Row+1)
}
