// Package types contains shared data structures for tictactoe-local.
package types

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 3

// Cell is the content of one board position.
type Cell int

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return " "
	case PlayerOne:
		return "O"
	case PlayerTwo:
		return "X"
	default:
		return "?"
	}
}

// Player identifies one of the two sides.
type Player int

const (
	One Player = iota + 1
	Two
)

// Cell returns the mark the player puts on the board.
func (p Player) Cell() Cell {
	if p == Two {
		return PlayerTwo
	}
	return PlayerOne
}

// Other returns the opponent.
func (p Player) Other() Player {
	if p == One {
		return Two
	}
	return One
}

func (p Player) String() string {
	return fmt.Sprintf("Player %d", int(p))
}

// Pos represents a position on the board.
type Pos struct {
	Row int
	Col int
}

// Valid reports whether the position lies on the board.
func (p Pos) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Mode selects whether the second player is a human or the computer.
type Mode int

const (
	PlayerVsPlayer Mode = iota
	PlayerVsComputer
)

func (m Mode) String() string {
	switch m {
	case PlayerVsPlayer:
		return "Player vs Player"
	case PlayerVsComputer:
		return "Player vs Computer"
	default:
		return "Unknown"
	}
}

// Short returns the name ParseMode accepts.
func (m Mode) Short() string {
	if m == PlayerVsComputer {
		return "pvc"
	}
	return "pvp"
}

// ParseMode parses the short mode names used in config files and flags.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "pvp":
		return PlayerVsPlayer, nil
	case "pvc":
		return PlayerVsComputer, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// LineKind is the orientation of a winning line.
type LineKind int

const (
	Row LineKind = iota
	Col
	Diag
)

// Line describes one of the eight winning triples.
// For Diag, index 0 is the main diagonal and index 1 the anti-diagonal.
type Line struct {
	Kind  LineKind
	Index int
}

// Cells returns the three positions covered by the line.
func (l Line) Cells() [Size]Pos {
	var cells [Size]Pos
	for i := 0; i < Size; i++ {
		switch l.Kind {
		case Row:
			cells[i] = Pos{Row: l.Index, Col: i}
		case Col:
			cells[i] = Pos{Row: i, Col: l.Index}
		case Diag:
			if l.Index == 0 {
				cells[i] = Pos{Row: i, Col: i}
			} else {
				cells[i] = Pos{Row: i, Col: Size - 1 - i}
			}
		}
	}
	return cells
}

func (l Line) String() string {
	switch l.Kind {
	case Row:
		return fmt.Sprintf("row %d", l.Index)
	case Col:
		return fmt.Sprintf("column %d", l.Index)
	default:
		if l.Index == 0 {
			return "main diagonal"
		}
		return "anti-diagonal"
	}
}
