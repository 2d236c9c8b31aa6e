// Package viewer renders a grid snapshot in a tcell screen and waits
// for a quit key. It is a static inspector, not a live terminal: the
// grid is fed beforehand and the viewer only draws the result.
package viewer

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/raphamorim/rio-sub001/internal/grid"
)

var statusStyle = tcell.StyleDefault.Reverse(true)

// Viewer displays one grid until the user presses q, Escape or Ctrl-C.
type Viewer struct {
	screen tcell.Screen
	grid   *grid.Grid
	owned  bool
}

// New returns a viewer that creates its own screen when shown.
func New(g *grid.Grid) *Viewer {
	return &Viewer{grid: g}
}

// NewWithScreen returns a viewer drawing to the given screen. The
// caller keeps ownership; the screen is not finalized on exit.
func NewWithScreen(g *grid.Grid, screen tcell.Screen) *Viewer {
	return &Viewer{grid: g, screen: screen}
}

// Show draws the grid and blocks until a quit key arrives.
func (v *Viewer) Show() error {
	if v.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			slog.Error("Failed to create tcell screen", "error", err)
			return err
		}
		if err := screen.Init(); err != nil {
			slog.Error("Failed to initialize tcell screen", "error", err)
			return err
		}
		v.screen = screen
		v.owned = true
		defer screen.Fini()
	}

	v.screen.SetStyle(tcell.StyleDefault)
	v.render()
	v.listen()
	return nil
}

func (v *Viewer) render() {
	v.screen.Clear()

	width, height := v.screen.Size()
	cols, rows := v.grid.Size()

	// Grid content, clipped to the screen with the last row reserved
	// for the status line.
	for y := 0; y < rows && y < height-1; y++ {
		for x := 0; x < cols && x < width; x++ {
			cell := v.grid.CellAt(x, y)
			if cell.Rune == 0 {
				continue
			}
			v.screen.SetContent(x, y, cell.Rune, nil, cell.Style)
			if runewidth.RuneWidth(cell.Rune) == 2 {
				x++
			}
		}
	}

	curX, curY := v.grid.Cursor()
	if curY < height-1 && curX < width {
		v.screen.ShowCursor(curX, curY)
	} else {
		v.screen.HideCursor()
	}

	v.drawStatus(width, height)
	v.screen.Show()
}

func (v *Viewer) drawStatus(width, height int) {
	if height < 1 {
		return
	}
	y := height - 1
	status := v.statusText()

	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, statusStyle)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

func (v *Viewer) statusText() string {
	cols, rows := v.grid.Size()
	curX, curY := v.grid.Cursor()
	status := fmt.Sprintf(" %dx%d  cursor %d,%d  %d ops", cols, rows, curX+1, curY+1, v.grid.Ops())
	if title := v.grid.Title(); title != "" {
		status += "  " + title
	}
	return status + "  (q to quit)"
}

func (v *Viewer) listen() {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return
				}
			}
		case *tcell.EventResize:
			v.screen.Sync()
			v.render()
		case *tcell.EventError:
			return
		}
	}
}
