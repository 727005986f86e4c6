package ui

import "github.com/gdamore/tcell/v2"

// cardStyle is a style on the card background.
func cardStyle(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(MenuColors.CardBG)
}

// drawText writes s from (x, y), stopping before limit (limit <= 0 means no limit).
// Returns the column after the last rune written.
func drawText(screen tcell.Screen, x, y, limit int, s string, style tcell.Style) int {
	for _, ch := range s {
		if limit > 0 && x >= limit {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
