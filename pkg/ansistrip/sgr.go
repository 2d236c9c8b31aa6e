package ansistrip

import "github.com/raphamorim/rio-sub001/pkg/vt"

// namedColors holds the xterm defaults for the sixteen named colors:
// SGR 30-37 map to the first eight, 90-97 to the bright second eight.
var namedColors = [16]Color{
	{0, 0, 0},       // black
	{205, 0, 0},     // red
	{0, 205, 0},     // green
	{205, 205, 0},   // yellow
	{0, 0, 238},     // blue
	{205, 0, 205},   // magenta
	{0, 205, 205},   // cyan
	{229, 229, 229}, // white
	{127, 127, 127}, // bright black
	{255, 0, 0},     // bright red
	{0, 255, 0},     // bright green
	{255, 255, 0},   // bright yellow
	{92, 92, 255},   // bright blue
	{255, 0, 255},   // bright magenta
	{0, 255, 255},   // bright cyan
	{255, 255, 255}, // bright white
}

// cubeLevels are the six channel intensities of the xterm 256-color cube.
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// paletteColor resolves an xterm 256-palette index to RGB.
func paletteColor(n uint16) *Color {
	switch {
	case n < 16:
		c := namedColors[n]
		return &c
	case n < 232:
		n -= 16
		c := Color{
			R: cubeLevels[n/36],
			G: cubeLevels[n/6%6],
			B: cubeLevels[n%6],
		}
		return &c
	case n < 256:
		v := 8 + 10*int(n-232)
		return &Color{R: v, G: v, B: v}
	}
	return nil
}

// extendedColor decodes the tail of a 38/48 extended color form: 5;n
// for the 256-color palette, 2;r;g;b for truecolor. Returns the color
// and how many values were consumed, nil and zero for malformed input.
func extendedColor(vals []uint16) (*Color, int) {
	if len(vals) == 0 {
		return nil, 0
	}
	switch vals[0] {
	case 5:
		if len(vals) < 2 || vals[1] > 255 {
			return nil, 0
		}
		return paletteColor(vals[1]), 2
	case 2:
		rgb := vals[1:]
		if len(rgb) < 3 || rgb[0] > 255 || rgb[1] > 255 || rgb[2] > 255 {
			return nil, 0
		}
		return &Color{R: int(rgb[0]), G: int(rgb[1]), B: int(rgb[2])}, 4
	}
	return nil, 0
}

// colonColor decodes a colon-joined extended color group. Unlike the
// semicolon form it may carry a color-space identifier between the 2
// and the channels (38:2::r:g:b); a group longer than 2:r:g:b is read
// with that identifier dropped.
func colonColor(vals []uint16) *Color {
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

// applySGR folds one SGR parameter list into the pen. Parameters
// chained with ':' arrive as one group; the 38;5;n and 38;2;r;g;b
// semicolon forms consume the groups that follow them.
func applySGR(pen *Style, params *vt.Params) {
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
			*pen = Style{}
		case n == 1:
			pen.Bold = true
		case n == 22:
			pen.Bold = false
		case n == 3:
			pen.Italic = true
		case n == 23:
			pen.Italic = false
		case n == 4:
			pen.Underline = true
		case n == 24:
			pen.Underline = false
		case n >= 30 && n <= 37:
			c := namedColors[n-30]
			pen.ForegroundColor = &c
		case n >= 90 && n <= 97:
			c := namedColors[n-90+8]
			pen.ForegroundColor = &c
		case n == 39:
			pen.ForegroundColor = nil
		case n >= 40 && n <= 47:
			c := namedColors[n-40]
			pen.BackgroundColor = &c
		case n >= 100 && n <= 107:
			c := namedColors[n-100+8]
			pen.BackgroundColor = &c
		case n == 49:
			pen.BackgroundColor = nil
		case n == 38 || n == 48:
			var color *Color
			if len(group) > 1 {
				color = colonColor(group[1:])
			} else {
				var consumed int
				color, consumed = extendedColor(values[i:])
				i += consumed
			}
			if color == nil {
				continue
			}
			if n == 38 {
				pen.ForegroundColor = color
			} else {
				pen.BackgroundColor = color
			}
		}
	}
}
