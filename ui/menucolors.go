package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette of the mode selection screen and the in-game buttons,
// blue-gray panels as in the desktop version of the game.
var MenuColors = struct {
	Border      tcell.Color
	BorderFocus tcell.Color
	CardBG      tcell.Color
	Title       tcell.Color
	TitleAccent tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color
	Unselected  tcell.Color
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(66),  // panel border gray
	BorderFocus: tcell.PaletteColor(74),  // light blue
	CardBG:      tcell.PaletteColor(237), // dark gray-blue panel
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(32),  // player one blue
	Label:       tcell.PaletteColor(253),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(74),
	Unselected:  tcell.PaletteColor(245),
	ButtonBG:    tcell.PaletteColor(59),  // button default
	ButtonFocus: tcell.PaletteColor(24),  // button hover
	ButtonText:  tcell.PaletteColor(255),
}
