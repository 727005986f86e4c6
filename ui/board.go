// Package ui specifies custom controls for tview to play tic-tac-toe in the terminal.
package ui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/config"
	"tictactoe-local/engine"
	"tictactoe-local/game"
	"tictactoe-local/types"
)

// Style slots.
const (
	styleBoard = iota
	stylePlayerOne
	stylePlayerTwo
	styleGrid
	styleCursor
	styleBanner
)

type BoardUI struct {
	Box       *tview.Box
	state     game.State
	hint      *tview.TextView
	cfg       *config.Config
	logger    *log.Logger
	router    Router
	selRow    int
	selCol    int
	originX   int
	originY   int
	app       *tview.Application
	eng       engine.GameEngine
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	buttons   []*MenuButton

	// queue runs f on the UI goroutine.
	queue func(f func())
}

func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView, logger *log.Logger) *BoardUI {
	board := &BoardUI{
		Box:    tview.NewBox(),
		state:  *game.NewState(types.PlayerVsPlayer),
		hint:   hint,
		app:    app,
		logger: logger.WithPrefix("ui"),
		router: DefaultRouter,
		selRow: -1,
		selCol: -1,
	}
	board.queue = func(f func()) {
		// Spawn goroutine to avoid deadlock when called from the UI goroutine
		go app.QueueUpdateDraw(f)
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		x, y := event.Position()
		if !board.Box.InRect(x, y) {
			return action, event
		}
		if board.handleClick(x, y) {
			return action, nil
		}
		return action, event
	})
	return board
}

// SetActions wires the Restart and Mode Select buttons drawn under the board.
func (g *BoardUI) SetActions(onRestart, onChangeMode func()) {
	g.buttons = []*MenuButton{
		NewMenuButton("Restart", true, onRestart),
		NewMenuButton("Mode Select", false, onChangeMode),
	}
}

// handleClick routes a click in screen coordinates. Returns true if it hit a cell or button.
func (g *BoardUI) handleClick(x, y int) bool {
	for _, b := range g.buttons {
		if b.Contains(x, y) {
			b.Activate()
			return true
		}
	}
	pos, ok := g.router.CellAt(x-g.originX, y-g.originY)
	if !ok {
		return false
	}
	g.selRow, g.selCol = pos.Row, pos.Col
	g.PlayMove(pos.Row, pos.Col)
	return true
}

func (g *BoardUI) SelectedTile() *types.Pos {
	if g.selRow == -1 && g.selCol == -1 {
		return nil
	}
	return &types.Pos{Row: g.selRow, Col: g.selCol}
}

func (g *BoardUI) MoveSelection(dRow, dCol int) {
	if g.state.IsTerminal() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		// Start from the centre
		g.selRow, g.selCol = types.Size/2, types.Size/2
		return
	}
	next := types.Pos{Row: g.selRow + dRow, Col: g.selCol + dCol}
	if !next.Valid() {
		return
	}
	g.selRow, g.selCol = next.Row, next.Col
}

func (g *BoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

// HandleCommand applies the board-local commands. Returns false for commands the
// caller has to handle (change mode, quit).
func (g *BoardUI) HandleCommand(cmd Command) bool {
	switch cmd {
	case CommandMoveUp:
		g.MoveSelection(-1, 0)
	case CommandMoveDown:
		g.MoveSelection(1, 0)
	case CommandMoveLeft:
		g.MoveSelection(0, -1)
	case CommandMoveRight:
		g.MoveSelection(0, 1)
	case CommandPlay:
		if sel := g.SelectedTile(); sel != nil {
			g.PlayMove(sel.Row, sel.Col)
		}
	case CommandRestart:
		g.Restart()
	default:
		return false
	}
	return true
}

// ConnectEngine connects the board to a game engine.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) error {
	g.eng = e

	e.OnMove(func(types.Pos, types.Player, game.State) {
		g.queue(g.syncState)
	})
	e.OnGameEnd(func(game.State) {
		g.queue(g.syncState)
	})

	if err := e.Connect(); err != nil {
		return err
	}
	g.setState(e.State())
	return nil
}

// syncState reads the engine's current state. Queued updates may run in any order,
// so none of them carries a snapshot of its own.
func (g *BoardUI) syncState() {
	if g.eng != nil {
		g.setState(g.eng.State())
	}
}

func (g *BoardUI) setState(state game.State) {
	g.state = state
	if g.state.IsTerminal() {
		g.ResetSelection()
	}
	g.refreshHint()
}

// PlayMove plays a move at the given cell. Clicks the rules would reject are ignored here
// and never reach the engine.
func (g *BoardUI) PlayMove(row, col int) {
	if g.eng == nil || g.state.IsTerminal() {
		return
	}
	board := g.state.Board()
	if !board.IsEmpty(row, col) {
		return
	}
	if !g.eng.IsMyTurn() {
		return
	}
	if err := g.eng.PlayMove(row, col); err != nil {
		g.logger.Warn("Move rejected", "row", row, "col", col, "error", err)
	}
}

// Restart starts a new match in the same mode.
func (g *BoardUI) Restart() {
	if g.eng == nil {
		return
	}
	g.eng.Restart()
	g.ResetSelection()
	g.setState(g.eng.State())
}

// Close disconnects the engine.
func (g *BoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),     // styleBoard
		tcell.PaletteColor(c.Theme.Colors.PlayerOneColor), // stylePlayerOne
		tcell.PaletteColor(c.Theme.Colors.PlayerTwoColor), // stylePlayerTwo
		tcell.PaletteColor(c.Theme.Colors.GridColor),      // styleGrid
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),  // styleCursor
		tcell.PaletteColor(c.Theme.Colors.BannerColor),    // styleBanner
	}
	g.cfg = c
}

// playerColor is the colour of a player's marks.
func (g *BoardUI) playerColor(p types.Player) tcell.Color {
	if p == types.Two {
		return g.styles[stylePlayerTwo]
	}
	return g.styles[stylePlayerOne]
}

func (g *BoardUI) symbol(c types.Cell) rune {
	switch c {
	case types.PlayerOne:
		return g.cfg.Theme.Symbols.PlayerOne
	case types.PlayerTwo:
		return g.cfg.Theme.Symbols.PlayerTwo
	default:
		return ' '
	}
}

// isHumanTurn reports whether the player to move is a human in the current mode.
func (g *BoardUI) isHumanTurn() bool {
	return g.state.Mode() == types.PlayerVsPlayer || g.state.Current() == types.One
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetState(g.state)
	}
	if g.hint == nil {
		return
	}

	var turnLine, controlsLine string
	if g.state.IsTerminal() {
		g.hint.SetTextColor(g.styles[styleBanner])
		turnLine = fmt.Sprintf("  %s", resultText(g.state))
		controlsLine = "\n  r restart · m mode select · q quit"
	} else {
		g.hint.SetTextColor(tview.Styles.PrimaryTextColor)
		if g.isHumanTurn() {
			p := g.state.Current()
			turnLine = fmt.Sprintf("  %c %s to move", g.symbol(p.Cell()), p)
		} else {
			turnLine = "  ◌ Thinking..."
		}
		controlsLine = "\n  click/hjkl/↑↓←→ select  ⏎ play  r restart  m mode  q quit"
	}
	g.hint.SetText(turnLine + controlsLine)
}

// resultText is the banner shown once a match is over.
func resultText(state game.State) string {
	if winner, ok := state.Winner(); ok {
		return fmt.Sprintf("%s Wins!", winner)
	}
	return "Draw!"
}

func (g *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	boardW, boardH := g.router.Width(), g.router.Height()
	g.originX = x + max(0, (width-boardW)/2)
	g.originY = y + 1

	board := g.state.Board()
	winLine, won := g.state.WinningLine()
	var onLine map[types.Pos]bool
	if won {
		onLine = make(map[types.Pos]bool, types.Size)
		for _, pos := range winLine.Cells() {
			onLine[pos] = true
		}
	}

	for row := 0; row < types.Size; row++ {
		for col := 0; col < types.Size; col++ {
			pos := types.Pos{Row: row, Col: col}
			bg := g.styles[styleBoard]
			if row == g.selRow && col == g.selCol && g.cfg.Theme.DrawCursorBackground {
				bg = g.styles[styleCursor]
			}
			cell := board.CellAt(row, col)
			style := tcell.StyleDefault.Background(bg)
			switch cell {
			case types.PlayerOne:
				style = style.Foreground(g.styles[stylePlayerOne]).Bold(true)
			case types.PlayerTwo:
				style = style.Foreground(g.styles[stylePlayerTwo]).Bold(true)
			}
			ox, oy := g.router.Origin(pos)
			g.drawCell(screen, style, g.symbol(cell), g.originX+ox, g.originY+oy)
			if onLine[pos] {
				// Strike in the winner's colour.
				winner, _ := g.state.Winner()
				g.drawStrike(screen, winLine.Kind, g.playerColor(winner), g.originX+ox, g.originY+oy)
			}
		}
	}
	drawGrid(screen, tcell.StyleDefault.Foreground(g.styles[styleGrid]), g.router, g.originX, g.originY)

	// Buttons under the board
	bx := g.originX
	for _, b := range g.buttons {
		bx += b.Draw(screen, bx, g.originY+boardH+1) + 2
	}
	return x, y, boardW, boardH + 2
}

// drawCell fills one cell and puts the mark in its centre.
func (g *BoardUI) drawCell(s tcell.Screen, style tcell.Style, mark rune, left, top int) {
	for dy := 0; dy < g.router.CellHeight; dy++ {
		for dx := 0; dx < g.router.CellWidth; dx++ {
			s.SetContent(left+dx, top+dy, ' ', nil, style)
		}
	}
	s.SetContent(left+g.router.CellWidth/2, top+g.router.CellHeight/2, mark, nil, style)
}

// drawStrike marks a winning cell: a line through rows and columns, a tinted
// background for diagonals.
func (g *BoardUI) drawStrike(s tcell.Screen, kind types.LineKind, color tcell.Color, left, top int) {
	cx, cy := left+g.router.CellWidth/2, top+g.router.CellHeight/2
	strike := tcell.StyleDefault.Background(g.styles[styleBoard]).Foreground(color)
	switch kind {
	case types.Row:
		for dx := 0; dx < g.router.CellWidth; dx++ {
			if left+dx != cx {
				s.SetContent(left+dx, cy, '━', nil, strike)
			}
		}
	case types.Col:
		for dy := 0; dy < g.router.CellHeight; dy++ {
			if top+dy != cy {
				s.SetContent(cx, top+dy, '┃', nil, strike)
			}
		}
	default:
		mainc, _, style, _ := s.GetContent(cx, cy)
		s.SetContent(cx, cy, mainc, nil, style.Background(color))
	}
}

// drawGrid draws the separators between cells.
func drawGrid(s tcell.Screen, style tcell.Style, r Router, left, top int) {
	for i := 1; i < types.Size; i++ {
		gx := left + i*(r.CellWidth+1) - 1
		gy := top + i*(r.CellHeight+1) - 1
		for y := top; y < top+r.Height(); y++ {
			s.SetContent(gx, y, '│', nil, style)
		}
		for x := left; x < left+r.Width(); x++ {
			s.SetContent(x, gy, '─', nil, style)
		}
	}
	for i := 1; i < types.Size; i++ {
		for j := 1; j < types.Size; j++ {
			s.SetContent(left+i*(r.CellWidth+1)-1, top+j*(r.CellHeight+1)-1, '┼', nil, style)
		}
	}
}
