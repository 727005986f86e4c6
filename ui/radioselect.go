package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption represents a single radio button option.
type RadioOption struct {
	Label       string
	Description string
}

// RadioSelect is a radio button group component.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	onChange func(int)

	// Where the options were last drawn, for mouse hit tests.
	x, y, width int
}

// NewRadioSelect creates a new radio select component.
func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	return &RadioSelect{
		label:    label,
		options:  options,
		selected: initial,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyUp:
		r.SetSelected(r.selected - 1)
		return true
	case tcell.KeyDown:
		r.SetSelected(r.selected + 1)
		return true
	}
	return false
}

// HandleClick selects the option under a screen point. Returns true if one was hit.
func (r *RadioSelect) HandleClick(x, y int) bool {
	i := y - r.y - 1
	if x < r.x || x >= r.x+r.width || i < 0 || i >= len(r.options) {
		return false
	}
	r.SetSelected(i)
	return true
}

// Draw renders the label and one row per option. Returns the number of rows used.
func (r *RadioSelect) Draw(screen tcell.Screen, x, y, width int) int {
	r.x, r.y, r.width = x, y, width
	limit := x + width

	// ◈ Mode
	screen.SetContent(x, y, '◈', nil, cardStyle(MenuColors.TitleAccent))
	drawText(screen, x+2, y, limit, r.label, cardStyle(MenuColors.Label))

	for i, opt := range r.options {
		row := y + 1 + i
		fg, bullet := MenuColors.Unselected, '○'
		if i == r.selected {
			fg, bullet = MenuColors.Selected, '●'
		}

		cursor := ' '
		if r.focused && i == r.selected {
			cursor = '▸'
		}
		screen.SetContent(x+2, row, cursor, nil, cardStyle(MenuColors.Selected))
		screen.SetContent(x+4, row, bullet, nil, cardStyle(fg))
		col := drawText(screen, x+6, row, limit, opt.Label, cardStyle(fg))
		if opt.Description != "" {
			drawText(screen, col+1, row, limit, opt.Description, cardStyle(MenuColors.Hint))
		}
	}
	return 1 + len(r.options)
}

// Selected returns the currently selected index.
func (r *RadioSelect) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RadioSelect) SetSelected(index int) {
	if index >= 0 && index < len(r.options) {
		r.selected = index
		if r.onChange != nil {
			r.onChange(r.selected)
		}
	}
}
