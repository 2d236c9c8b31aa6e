// Package grid is a small in-memory screen model driven by parser
// callbacks. It covers the sequences everyday tool output uses:
// cursor movement, erase and scroll operations, SGR styling, window
// titles, and OSC 52 clipboard writes. Everything else is accepted
// and dropped.
package grid

import (
	"encoding/base64"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/raphamorim/rio-sub001/pkg/vt"
)

// Cell is one screen position. A zero Rune means the cell is empty.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// ClipboardWriter receives OSC 52 clipboard payloads. Satisfied by
// pkg/clipboard's Clipboard.
type ClipboardWriter interface {
	Copy(text string) error
}

// Grid implements vt.Performer over a fixed-size cell matrix.
type Grid struct {
	cells [][]Cell
	cols  int
	rows  int

	curX int
	curY int
	pen  tcell.Style

	title string
	clip  ClipboardWriter
	ops   int
}

// New returns an empty grid of the given dimensions.
func New(cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Grid{cells: cells, cols: cols, rows: rows}
}

// SetClipboard routes OSC 52 payloads to w. Without one they are dropped.
func (g *Grid) SetClipboard(w ClipboardWriter) {
	g.clip = w
}

// Size returns the grid dimensions in columns and rows.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Cursor returns the cursor position, zero-based.
func (g *Grid) Cursor() (x, y int) {
	return g.curX, g.curY
}

// Title returns the last title set through OSC 0 or 2.
func (g *Grid) Title() string {
	return g.title
}

// CellAt returns the cell at (x, y); out-of-range reads are empty.
func (g *Grid) CellAt(x, y int) Cell {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return Cell{}
	}
	return g.cells[y][x]
}

// Ops returns how many parser callbacks the grid has seen.
func (g *Grid) Ops() int {
	return g.ops
}

// String renders the grid as text, one row per line, for tests and
// debugging. Empty cells come out as spaces, continuation cells after
// a wide rune are skipped, and trailing blanks are trimmed per line.
func (g *Grid) String() string {
	lines := make([]string, g.rows)
	for y, row := range g.cells {
		var sb strings.Builder
		for x := 0; x < g.cols; x++ {
			cell := row[x]
			if cell.Rune == 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(cell.Rune)
			if runewidth.RuneWidth(cell.Rune) == 2 {
				x++
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Print implements vt.Performer.
func (g *Grid) Print(r rune) {
	g.ops++
	w := runewidth.RuneWidth(r)
	if w == 0 || w > g.cols {
		return
	}
	if g.curX+w > g.cols {
		g.curX = 0
		g.lineFeed()
	}
	g.cells[g.curY][g.curX] = Cell{Rune: r, Style: g.pen}
	if w == 2 && g.curX+1 < g.cols {
		g.cells[g.curY][g.curX+1] = Cell{}
	}
	g.curX += w
}

// Execute implements vt.Performer.
func (g *Grid) Execute(b byte) {
	g.ops++
	switch b {
	case 0x08: // BS
		if g.curX > 0 {
			g.curX--
		}
	case 0x09: // HT
		g.curX = min((g.curX/8+1)*8, g.cols-1)
	case 0x0a: // LF
		g.lineFeed()
	case 0x0d: // CR
		g.curX = 0
	}
}

// CsiDispatch implements vt.Performer.
func (g *Grid) CsiDispatch(params *vt.Params, intermediates []byte, ignore bool, final byte) {
	g.ops++
	if ignore || len(intermediates) != 0 {
		return
	}
	switch final {
	case 'A': // CUU
		g.moveTo(g.curX, g.curY-count(params, 0))
	case 'B': // CUD
		g.moveTo(g.curX, g.curY+count(params, 0))
	case 'C': // CUF
		g.moveTo(g.curX+count(params, 0), g.curY)
	case 'D': // CUB
		g.moveTo(g.curX-count(params, 0), g.curY)
	case 'H', 'f': // CUP, HVP
		g.moveTo(count(params, 1)-1, count(params, 0)-1)
	case 'J': // ED
		g.eraseDisplay(int(params.Get(0)))
	case 'K': // EL
		g.eraseLine(int(params.Get(0)))
	case '@': // ICH
		g.insertChars(count(params, 0))
	case 'P': // DCH
		g.deleteChars(count(params, 0))
	case 'S': // SU
		g.scrollUp(count(params, 0))
	case 'T': // SD
		g.scrollDown(count(params, 0))
	case 'm': // SGR
		g.pen = applySGR(g.pen, params)
	}
}

// EscDispatch implements vt.Performer.
func (g *Grid) EscDispatch([]byte, bool, byte) { g.ops++ }

// Hook implements vt.Performer.
func (g *Grid) Hook(*vt.Params, []byte, bool, byte) { g.ops++ }

// Put implements vt.Performer.
func (g *Grid) Put(byte) { g.ops++ }

// Unhook implements vt.Performer.
func (g *Grid) Unhook() { g.ops++ }

// OscDispatch implements vt.Performer.
func (g *Grid) OscDispatch(params [][]byte, bellTerminated bool) {
	g.ops++
	if len(params) == 0 {
		return
	}
	switch string(params[0]) {
	case "0", "2":
		if len(params) < 2 {
			return
		}
		parts := make([]string, len(params)-1)
		for i, p := range params[1:] {
			parts[i] = string(p)
		}
		g.title = strings.Join(parts, ";")
	case "52":
		// 52;<targets>;<base64 text>. Queries ("?") and bad payloads
		// are dropped.
		if g.clip == nil || len(params) < 3 {
			return
		}
		data, err := base64.StdEncoding.DecodeString(string(params[2]))
		if err != nil {
			return
		}
		g.clip.Copy(string(data)) // nolint: errcheck
	}
}

// count reads a movement parameter: missing or zero means one.
func count(params *vt.Params, i int) int {
	if v := int(params.Get(i)); v > 0 {
		return v
	}
	return 1
}

func (g *Grid) moveTo(x, y int) {
	g.curX = clamp(x, 0, g.cols-1)
	g.curY = clamp(y, 0, g.rows-1)
}

func (g *Grid) lineFeed() {
	if g.curY == g.rows-1 {
		g.scrollUp(1)
		return
	}
	g.curY++
}

func (g *Grid) scrollUp(n int) {
	n = min(n, g.rows)
	copy(g.cells, g.cells[n:])
	for i := g.rows - n; i < g.rows; i++ {
		g.cells[i] = make([]Cell, g.cols)
	}
}

func (g *Grid) scrollDown(n int) {
	n = min(n, g.rows)
	copy(g.cells[n:], g.cells[:g.rows-n])
	for i := 0; i < n; i++ {
		g.cells[i] = make([]Cell, g.cols)
	}
}

func (g *Grid) eraseDisplay(mode int) {
	switch mode {
	case 0:
		g.clearRange(g.curY, g.curX, g.cols)
		for y := g.curY + 1; y < g.rows; y++ {
			g.clearRange(y, 0, g.cols)
		}
	case 1:
		for y := 0; y < g.curY; y++ {
			g.clearRange(y, 0, g.cols)
		}
		g.clearRange(g.curY, 0, g.curX+1)
	case 2:
		for y := 0; y < g.rows; y++ {
			g.clearRange(y, 0, g.cols)
		}
	}
}

func (g *Grid) eraseLine(mode int) {
	switch mode {
	case 0:
		g.clearRange(g.curY, g.curX, g.cols)
	case 1:
		g.clearRange(g.curY, 0, g.curX+1)
	case 2:
		g.clearRange(g.curY, 0, g.cols)
	}
}

func (g *Grid) clearRange(y, from, to int) {
	row := g.cells[y]
	for x := from; x < to && x < g.cols; x++ {
		row[x] = Cell{}
	}
}

func (g *Grid) insertChars(n int) {
	row := g.cells[g.curY]
	n = min(n, g.cols-g.curX)
	copy(row[g.curX+n:], row[g.curX:])
	for x := g.curX; x < g.curX+n; x++ {
		row[x] = Cell{}
	}
}

func (g *Grid) deleteChars(n int) {
	row := g.cells[g.curY]
	n = min(n, g.cols-g.curX)
	copy(row[g.curX:], row[g.curX+n:])
	for x := g.cols - n; x < g.cols; x++ {
		row[x] = Cell{}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
