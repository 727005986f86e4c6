package ui

import (
	"github.com/gdamore/tcell/v2"
)

// LevelSlider is a horizontal slider for a small integer setting, such as the
// computer's thinking delay in tenths of a second.
type LevelSlider struct {
	label    string
	min      int
	max      int
	value    int
	focused  bool
	format   func(int) string
	onChange func(int)

	// Screen columns of the arrows as last drawn, for mouse hit tests.
	y, leftArrow, rightArrow int
}

// NewLevelSlider creates a new level slider. format renders the value next to the bar.
func NewLevelSlider(label string, min, max, initial int, format func(int) string, onChange func(int)) *LevelSlider {
	return &LevelSlider{
		label:    label,
		min:      min,
		max:      max,
		value:    clamp(initial, min, max),
		format:   format,
		onChange: onChange,
		y:        -1,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// SetFocused sets the focus state.
func (s *LevelSlider) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (s *LevelSlider) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		s.SetValue(s.value - 1)
		return true
	case tcell.KeyRight:
		s.SetValue(s.value + 1)
		return true
	}
	return false
}

// HandleClick steps the value when an arrow is clicked.
func (s *LevelSlider) HandleClick(x, y int) bool {
	if y != s.y {
		return false
	}
	switch x {
	case s.leftArrow:
		s.SetValue(s.value - 1)
		return true
	case s.rightArrow:
		s.SetValue(s.value + 1)
		return true
	}
	return false
}

// Draw renders the slider on one row:  ▸ ◈ label   ◀ ███░░░ ▶ value
// Returns the number of rows used.
func (s *LevelSlider) Draw(screen tcell.Screen, x, y, width int) int {
	limit := x + width
	active := cardStyle(MenuColors.Unselected)
	if s.focused {
		active = cardStyle(MenuColors.Selected)
		screen.SetContent(x, y, '▸', nil, active)
	}
	screen.SetContent(x+2, y, '◈', nil, cardStyle(MenuColors.TitleAccent))
	col := drawText(screen, x+4, y, limit, s.label, cardStyle(MenuColors.Label)) + 3

	s.y = y
	s.leftArrow = col
	screen.SetContent(col, y, '◀', nil, active)
	col += 2
	for i := s.min; i <= s.max; i++ {
		if i <= s.value {
			screen.SetContent(col, y, '█', nil, cardStyle(MenuColors.Selected))
		} else {
			screen.SetContent(col, y, '░', nil, cardStyle(MenuColors.Unselected))
		}
		col++
	}
	s.rightArrow = col + 1
	screen.SetContent(s.rightArrow, y, '▶', nil, active)

	drawText(screen, s.rightArrow+2, y, limit, s.format(s.value), cardStyle(MenuColors.Label))
	return 1
}

// Value returns the current slider value.
func (s *LevelSlider) Value() int {
	return s.value
}

// SetValue sets the slider value, ignoring values out of range.
func (s *LevelSlider) SetValue(v int) {
	if v < s.min || v > s.max || v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}
