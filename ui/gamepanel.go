package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/config"
	"tictactoe-local/game"
	"tictactoe-local/types"
)

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box   *tview.TextView
	cfg   *config.Config
	state *game.State
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel(c *config.Config) *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
		cfg: c,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetState updates the panel with a snapshot of the match.
func (p *GameInfoPanel) SetState(state game.State) {
	p.state = &state
	p.box.SetText(p.text())
}

// Text returns the panel contents as last rendered, without colour tags.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(true)
}

func colorTag(c tcell.Color) string {
	return fmt.Sprintf("[#%06x]", c.Hex())
}

func (p *GameInfoPanel) mark(player types.Player) string {
	symbol, color := p.cfg.Theme.Symbols.PlayerOne, p.cfg.Theme.Colors.PlayerOneColor
	if player == types.Two {
		symbol, color = p.cfg.Theme.Symbols.PlayerTwo, p.cfg.Theme.Colors.PlayerTwoColor
	}
	return fmt.Sprintf("%s%c[-]", colorTag(tcell.PaletteColor(color)), symbol)
}

func (p *GameInfoPanel) text() string {
	if p.state == nil {
		return ""
	}
	s := p.state
	var b strings.Builder

	b.WriteString("[white::b]Game Info[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	fmt.Fprintf(&b, "[white]Mode:[-:-:-] %s\n", s.Mode())
	fmt.Fprintf(&b, "%s %s", p.mark(types.One), types.One)
	if s.Mode() == types.PlayerVsComputer {
		b.WriteString(" (you)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s", p.mark(types.Two), types.Two)
	if s.Mode() == types.PlayerVsComputer {
		b.WriteString(" (computer)")
	}
	b.WriteString("\n")

	switch s.Status() {
	case game.InProgress:
		fmt.Fprintf(&b, "[white]Turn:[-:-:-] %s\n", s.Current())
	case game.Won:
		winner, _ := s.Winner()
		line, _ := s.WinningLine()
		fmt.Fprintf(&b, "[yellow::b]%s Wins![-:-:-]\n", winner)
		fmt.Fprintf(&b, "[dimgray]  on the %s[-]\n", line)
	case game.Drawn:
		b.WriteString("[yellow::b]Draw![-:-:-]\n")
	}

	moves := s.Moves()
	if len(moves) == 0 {
		return b.String()
	}

	b.WriteString("\n[white::b]Moves[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	for i, m := range moves {
		marker := " "
		if i == len(moves)-1 {
			marker = "[white]>[-]"
		}
		fmt.Fprintf(&b, "%s[dimgray]%2d.[-] %s %s\n", marker, i+1, p.mark(m.Player), PosToDisplay(m.Pos))
	}
	return b.String()
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel(board.cfg)
	board.infoPanel = infoPanel
	infoPanel.SetState(board.state)

	// board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false)

	return mainFlex
}

// CreateCenteredForm centres a primitive horizontally and vertically.
func CreateCenteredForm(form tview.Primitive, width, height int) *tview.Flex {
	row := tview.NewFlex().SetDirection(tview.FlexColumn)
	row.AddItem(nil, 0, 1, false)
	row.AddItem(form, width, 0, true)
	row.AddItem(nil, 0, 1, false)

	centered := tview.NewFlex().SetDirection(tview.FlexRow)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(row, height, 0, true)
	centered.AddItem(nil, 0, 1, false)
	return centered
}
