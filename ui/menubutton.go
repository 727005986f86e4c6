package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a styled button that reacts to Enter and to mouse clicks.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()

	// Where the button was last drawn, for mouse hit tests.
	x, y, width int
	drawn       bool
}

// NewMenuButton creates a new menu button.
func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// Activate runs the button's action.
func (b *MenuButton) Activate() {
	if b.onSelect != nil {
		b.onSelect()
	}
}

// HandleKey processes keyboard input. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyEnter {
		b.Activate()
		return true
	}
	return false
}

// Contains reports whether a screen point lies on the button as last drawn.
func (b *MenuButton) Contains(x, y int) bool {
	return b.drawn && y == b.y && x >= b.x && x < b.x+b.width
}

func (b *MenuButton) text() string {
	if b.primary {
		return "▶ " + b.label
	}
	return b.label
}

// Draw renders the button at the given position and returns the width used.
// A focused button is a solid bar, otherwise the label sits in brackets.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	width := b.Width()
	b.x, b.y, b.width, b.drawn = x, y, width, true

	text := tcell.StyleDefault.Foreground(MenuColors.ButtonText).Background(MenuColors.ButtonBG)
	left, right := '[', ']'
	edge := tcell.StyleDefault.Foreground(MenuColors.Border).Background(MenuColors.ButtonBG)
	if b.focused {
		text = text.Background(MenuColors.ButtonFocus)
		left, right, edge = ' ', ' ', text
	}

	screen.SetContent(x, y, left, nil, edge)
	col := drawText(screen, x+1, y, 0, b.text(), text)
	screen.SetContent(col, y, right, nil, edge)
	return width
}

// Width returns the button width: the label plus one cell of padding or bracket per side.
func (b *MenuButton) Width() int {
	return len([]rune(b.text())) + 2
}
