// Package ansistrip separates ANSI-styled terminal output into plain
// text and positioned style spans. It understands the SGR sequences
// that color real tool output (named colors, the 256-color palette,
// truecolor, bold, italic, underline) and drops everything else.
package ansistrip

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/raphamorim/rio-sub001/pkg/vt"
)

const tabWidth = 8

// Parse analyzes text and extracts styled spans along with the plain text.
func Parse(text string) (*ParseResult, error) {
	s := &stripper{}
	vt.NewParser().Advance(s, []byte(text))
	s.closeSpan()
	s.lines = append(s.lines, s.line.String())

	spans := s.spans
	if spans == nil {
		spans = []StyleSpan{}
	}
	return &ParseResult{
		PlainText:  strings.Join(s.lines, "\n"),
		StyleSpans: spans,
	}, nil
}

// Strip returns just the plain text with all control sequences removed.
func Strip(text string) string {
	result, err := Parse(text)
	if err != nil {
		return text
	}
	return result.PlainText
}

// stripper walks the event stream and keeps two products in step: the
// plain text being rebuilt line by line, and the span currently open
// under the active pen. Spans never cross lines.
type stripper struct {
	vt.NopPerformer

	pen   Style
	lines []string
	line  strings.Builder

	lineNum int
	col     int

	spans     []StyleSpan
	spanOpen  bool
	spanStart int
	spanStyle Style
	spanText  strings.Builder
}

func (s *stripper) Print(r rune) {
	if s.pen.hasAttributes() {
		if s.spanOpen && !styleEqual(s.spanStyle, s.pen) {
			s.closeSpan()
		}
		if !s.spanOpen {
			s.spanOpen = true
			s.spanStart = s.col
			s.spanStyle = s.pen
		}
		s.spanText.WriteRune(r)
	} else if s.spanOpen {
		s.closeSpan()
	}

	s.line.WriteRune(r)
	s.col += runewidth.RuneWidth(r)
}

func (s *stripper) Execute(b byte) {
	switch b {
	case '\n':
		s.closeSpan()
		s.lines = append(s.lines, s.line.String())
		s.line.Reset()
		s.lineNum++
		s.col = 0
	case '\t':
		// Expanded to spaces so span columns keep matching the plain
		// text. A styled run never includes the tab itself.
		s.closeSpan()
		stop := (s.col/tabWidth + 1) * tabWidth
		s.line.WriteString(strings.Repeat(" ", stop-s.col))
		s.col = stop
	}
}

func (s *stripper) CsiDispatch(params *vt.Params, intermediates []byte, ignore bool, final byte) {
	if ignore || final != 'm' || len(intermediates) != 0 {
		return
	}
	applySGR(&s.pen, params)
}

func (s *stripper) closeSpan() {
	if !s.spanOpen {
		return
	}
	s.spans = append(s.spans, StyleSpan{
		Text:      s.spanText.String(),
		StartLine: s.lineNum,
		StartCol:  s.spanStart,
		EndLine:   s.lineNum,
		EndCol:    s.col,
		Style:     s.spanStyle,
	})
	s.spanText.Reset()
	s.spanOpen = false
}

func (st Style) hasAttributes() bool {
	return st.ForegroundColor != nil || st.BackgroundColor != nil ||
		st.Bold || st.Underline || st.Italic
}

func styleEqual(a, b Style) bool {
	return a.Bold == b.Bold && a.Underline == b.Underline && a.Italic == b.Italic &&
		colorEqual(a.ForegroundColor, b.ForegroundColor) &&
		colorEqual(a.BackgroundColor, b.BackgroundColor)
}

func colorEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
