package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuCard is a card container with rounded borders and a title row.
type MenuCard struct {
	*tview.Box
	title   string
	focused bool
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{
		Box:   tview.NewBox(),
		title: title,
	}
}

// ContentTop is the first row below the title divider, relative to the inner rect.
const ContentTop = 6

// DrawCard renders the card frame and title. Returns false if the card is too small
// to hold anything.
func (c *MenuCard) DrawCard(screen tcell.Screen) bool {
	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < ContentTop+2 {
		return false
	}

	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	borderStyle := tcell.StyleDefault.Foreground(borderColor).Background(MenuColors.CardBG)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// ╭───╮ / │ │ / ╰───╯
	c.hline(screen, borderStyle, y, '╭', '─', '╮')
	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}
	c.hline(screen, borderStyle, y+height-1, '╰', '─', '╯')

	if c.title != "" {
		// # T I C  T A C  T O E #
		accent := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
		banner := len([]rune(c.title)) + 4
		col := x + (width-banner)/2
		screen.SetContent(col, y+2, '#', nil, accent)
		col = drawText(screen, col+2, y+2, 0, c.title, accent.Foreground(MenuColors.Title).Bold(true))
		screen.SetContent(col+1, y+2, '#', nil, accent)

		c.DrawDivider(screen, y+4)
	}
	return true
}

// DrawDivider draws a horizontal divider at the given y position.
func (c *MenuCard) DrawDivider(screen tcell.Screen, divY int) {
	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	c.hline(screen, tcell.StyleDefault.Foreground(borderColor).Background(MenuColors.CardBG), divY, '├', '─', '┤')
}

func (c *MenuCard) hline(screen tcell.Screen, style tcell.Style, y int, left, fill, right rune) {
	x, _, width, _ := c.GetInnerRect()
	screen.SetContent(x, y, left, nil, style)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, fill, nil, style)
	}
	screen.SetContent(x+width-1, y, right, nil, style)
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}
