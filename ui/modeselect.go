package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/engine"
	"tictactoe-local/types"
)

// delayStep is one notch of the computer delay slider.
const delayStep = 100 * time.Millisecond

// Focus order on the mode selection card.
const (
	focusMode = iota
	focusDelay
	focusStart
	focusQuit
	focusCount
)

// ModeSelect is the start screen: Player vs Player or Player vs Computer, plus the
// computer's thinking delay.
type ModeSelect struct {
	*MenuCard
	mode    *RadioSelect
	delay   *LevelSlider
	start   *MenuButton
	quit    *MenuButton
	focus   int
	onStart func(engine.GameConfig)

	// configured is the delay from the config file, kept until the slider moves.
	configured time.Duration
	touched    bool
}

// NewModeSelect creates the mode selection screen with the given defaults.
func NewModeSelect(initial engine.GameConfig, onStart func(engine.GameConfig), onQuit func()) *ModeSelect {
	m := &ModeSelect{
		MenuCard:   NewMenuCard("T I C  T A C  T O E"),
		onStart:    onStart,
		configured: initial.ComputerDelay,
	}
	m.mode = NewRadioSelect("Mode", []RadioOption{
		{Label: types.PlayerVsPlayer.String(), Description: "two players, one screen"},
		{Label: types.PlayerVsComputer.String(), Description: "you play O"},
	}, int(initial.Mode), nil)
	m.delay = NewLevelSlider("Computer delay", 0, 10, int(initial.ComputerDelay/delayStep), func(int) string {
		return fmt.Sprintf("%d ms", m.computerDelay().Milliseconds())
	}, func(int) {
		m.touched = true
	})
	m.start = NewMenuButton("Start Game", true, func() {
		if m.onStart != nil {
			m.onStart(m.Config())
		}
	})
	m.quit = NewMenuButton("Quit", false, onQuit)
	m.setFocus(focusMode)
	return m
}

// Config returns the match configuration currently selected.
func (m *ModeSelect) Config() engine.GameConfig {
	return engine.GameConfig{
		Mode:          types.Mode(m.mode.Selected()),
		ComputerDelay: m.computerDelay(),
	}
}

func (m *ModeSelect) computerDelay() time.Duration {
	if !m.touched {
		return m.configured
	}
	return time.Duration(m.delay.Value()) * delayStep
}

func (m *ModeSelect) setFocus(i int) {
	m.focus = (i + focusCount) % focusCount
	m.mode.SetFocused(m.focus == focusMode)
	m.delay.SetFocused(m.focus == focusDelay)
	m.start.SetFocused(m.focus == focusStart)
	m.quit.SetFocused(m.focus == focusQuit)
}

// Draw renders the card and its controls.
func (m *ModeSelect) Draw(screen tcell.Screen) {
	m.Box.DrawForSubclass(screen, m)
	m.MenuCard.SetFocused(m.HasFocus())
	if !m.DrawCard(screen) {
		return
	}

	x, y, width, _ := m.GetInnerRect()
	left, inner := x+3, width-6
	row := y + ContentTop
	row += m.mode.Draw(screen, left, row, inner) + 1
	row += m.delay.Draw(screen, left, row, inner) + 1

	col := left + 2
	col += m.start.Draw(screen, col, row) + 2
	m.quit.Draw(screen, col, row)

	drawText(screen, left, row+2, left+inner, "Tab next · ↑↓ mode · ←→ delay · ⏎ start", cardStyle(MenuColors.Hint))
}

// InputHandler handles keyboard navigation on the card.
func (m *ModeSelect) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return m.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		m.handleKey(event)
	})
}

func (m *ModeSelect) handleKey(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyTab:
		m.setFocus(m.focus + 1)
		return
	case tcell.KeyBacktab:
		m.setFocus(m.focus - 1)
		return
	}

	switch m.focus {
	case focusMode:
		if event.Key() == tcell.KeyEnter {
			m.start.Activate()
			return
		}
		m.mode.HandleKey(event)
	case focusDelay:
		if event.Key() == tcell.KeyEnter {
			m.start.Activate()
			return
		}
		m.delay.HandleKey(event)
	case focusStart:
		m.start.HandleKey(event)
	case focusQuit:
		m.quit.HandleKey(event)
	}
}

// MouseHandler lets every control be clicked.
func (m *ModeSelect) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return m.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !m.InRect(x, y) || action != tview.MouseLeftClick {
			return false, nil
		}
		setFocus(m)
		m.handleClick(x, y)
		return true, nil
	})
}

func (m *ModeSelect) handleClick(x, y int) {
	switch {
	case m.mode.HandleClick(x, y):
		m.setFocus(focusMode)
	case m.delay.HandleClick(x, y):
		m.setFocus(focusDelay)
	case m.start.Contains(x, y):
		m.setFocus(focusStart)
		m.start.Activate()
	case m.quit.Contains(x, y):
		m.setFocus(focusQuit)
		m.quit.Activate()
	}
}
