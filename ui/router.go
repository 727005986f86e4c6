package ui

import (
	"github.com/gdamore/tcell/v2"

	"tictactoe-local/types"
)

// Command is a user intent decoded from a key press.
type Command int

const (
	CommandNone Command = iota
	CommandPlay
	CommandRestart
	CommandChangeMode
	CommandQuit
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
)

// KeyCommand maps a key press on the game screen to a command.
func KeyCommand(event *tcell.EventKey) Command {
	switch event.Key() {
	case tcell.KeyUp:
		return CommandMoveUp
	case tcell.KeyDown:
		return CommandMoveDown
	case tcell.KeyLeft:
		return CommandMoveLeft
	case tcell.KeyRight:
		return CommandMoveRight
	case tcell.KeyEnter:
		return CommandPlay
	case tcell.KeyEsc:
		return CommandQuit
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			return CommandMoveUp
		case 'j':
			return CommandMoveDown
		case 'h':
			return CommandMoveLeft
		case 'l':
			return CommandMoveRight
		case ' ':
			return CommandPlay
		case 'r':
			return CommandRestart
		case 'm':
			return CommandChangeMode
		case 'q':
			return CommandQuit
		}
	}
	return CommandNone
}

// Router maps screen points on the board to cells. Each cell is CellWidth x
// CellHeight characters, separated by one-character grid lines.
type Router struct {
	CellWidth  int
	CellHeight int
}

// DefaultRouter matches the board drawn by BoardUI.
var DefaultRouter = Router{CellWidth: 7, CellHeight: 3}

// Width returns the board width in characters, grid lines included.
func (r Router) Width() int {
	return types.Size*r.CellWidth + types.Size - 1
}

// Height returns the board height in characters, grid lines included.
func (r Router) Height() int {
	return types.Size*r.CellHeight + types.Size - 1
}

// CellAt maps a point relative to the board's top-left corner to a cell.
// Points on grid lines or outside the board report false.
func (r Router) CellAt(x, y int) (types.Pos, bool) {
	if x < 0 || y < 0 {
		return types.Pos{}, false
	}
	strideX, strideY := r.CellWidth+1, r.CellHeight+1
	col, row := x/strideX, y/strideY
	if x%strideX == r.CellWidth || y%strideY == r.CellHeight {
		return types.Pos{}, false
	}
	pos := types.Pos{Row: row, Col: col}
	if !pos.Valid() {
		return types.Pos{}, false
	}
	return pos, true
}

// Origin returns the top-left screen offset of a cell relative to the board.
func (r Router) Origin(pos types.Pos) (x, y int) {
	return pos.Col * (r.CellWidth + 1), pos.Row * (r.CellHeight + 1)
}
