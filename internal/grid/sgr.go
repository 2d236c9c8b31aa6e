package grid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/raphamorim/rio-sub001/pkg/vt"
)

// extendedColor decodes the tail of a 38/48 extended color form: 5;n
// for the 256-color palette, 2;r;g;b for truecolor. Returns the color
// and how many values were consumed, ColorDefault and zero for
// malformed input.
func extendedColor(vals []uint16) (tcell.Color, int) {
	if len(vals) == 0 {
		return tcell.ColorDefault, 0
	}
	switch vals[0] {
	case 5:
		if len(vals) < 2 || vals[1] > 255 {
			return tcell.ColorDefault, 0
		}
		return tcell.PaletteColor(int(vals[1])), 2
	case 2:
		rgb := vals[1:]
		if len(rgb) < 3 || rgb[0] > 255 || rgb[1] > 255 || rgb[2] > 255 {
			return tcell.ColorDefault, 0
		}
		return tcell.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2])), 4
	}
	return tcell.ColorDefault, 0
}

// colonColor decodes a colon-joined extended color group. Unlike the
// semicolon form it may carry a color-space identifier between the 2
// and the channels (38:2::r:g:b); a group longer than 2:r:g:b is read
// with that identifier dropped.
func colonColor(vals []uint16) tcell.Color {
	if len(vals) > 4 && vals[0] == 2 {
		var buf [4]uint16
		buf[0] = vals[0]
		copy(buf[1:], vals[2:5])
		color, _ := extendedColor(buf[:])
		return color
	}
	color, _ := extendedColor(vals)
	return color
}

// applySGR folds one SGR parameter list into the pen style. Parameters
// chained with ':' arrive as one group; the 38;5;n and 38;2;r;g;b
// semicolon forms consume the groups that follow them.
func applySGR(pen tcell.Style, params *vt.Params) tcell.Style {
	values := params.All()
	i := 0
	for i < len(values) {
		end := i + 1
		for end < len(values) && params.Subparam(end) {
			end++
		}
		group := values[i:end]
		i = end

		switch n := group[0]; {
		case n == 0:
			pen = tcell.StyleDefault
		case n == 1:
			pen = pen.Bold(true)
		case n == 22:
			pen = pen.Bold(false)
		case n == 3:
			pen = pen.Italic(true)
		case n == 23:
			pen = pen.Italic(false)
		case n == 4:
			pen = pen.Underline(true)
		case n == 24:
			pen = pen.Underline(false)
		case n == 7:
			pen = pen.Reverse(true)
		case n == 27:
			pen = pen.Reverse(false)
		case n >= 30 && n <= 37:
			pen = pen.Foreground(tcell.PaletteColor(int(n - 30)))
		case n >= 90 && n <= 97:
			pen = pen.Foreground(tcell.PaletteColor(int(n - 90 + 8)))
		case n == 39:
			pen = pen.Foreground(tcell.ColorDefault)
		case n >= 40 && n <= 47:
			pen = pen.Background(tcell.PaletteColor(int(n - 40)))
		case n >= 100 && n <= 107:
			pen = pen.Background(tcell.PaletteColor(int(n - 100 + 8)))
		case n == 49:
			pen = pen.Background(tcell.ColorDefault)
		case n == 38 || n == 48:
			var color tcell.Color
			if len(group) > 1 {
				color = colonColor(group[1:])
			} else {
				var consumed int
				color, consumed = extendedColor(values[i:])
				i += consumed
			}
			if color == tcell.ColorDefault {
				continue
			}
			if n == 38 {
				pen = pen.Foreground(color)
			} else {
				pen = pen.Background(color)
			}
		}
	}
	return pen
}
