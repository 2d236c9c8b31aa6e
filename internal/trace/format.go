package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/raphamorim/rio-sub001/pkg/seqinfo"
)

// TextFormatter renders events one line at a time for humans.
type TextFormatter struct {
	w io.Writer

	kindStyle map[Kind]*color.Color
	nameStyle *color.Color
	flagStyle *color.Color
}

// NewTextFormatter writes colorized lines to w. With colorize false the
// same lines come out plain, regardless of global color settings.
func NewTextFormatter(w io.Writer, colorize bool) *TextFormatter {
	f := &TextFormatter{
		w: w,
		kindStyle: map[Kind]*color.Color{
			KindPrint:   color.New(color.FgHiWhite),
			KindExecute: color.New(color.FgYellow),
			KindCsi:     color.New(color.FgHiCyan),
			KindEsc:     color.New(color.FgHiGreen),
			KindHook:    color.New(color.FgHiBlue),
			KindPut:     color.New(color.FgBlue),
			KindUnhook:  color.New(color.FgHiBlue),
			KindOsc:     color.New(color.FgHiMagenta),
		},
		nameStyle: color.New(color.Faint),
		flagStyle: color.New(color.FgHiRed),
	}
	if !colorize {
		for _, style := range f.kindStyle {
			style.DisableColor()
		}
		f.nameStyle.DisableColor()
		f.flagStyle.DisableColor()
	}
	return f
}

// Write renders one event as one line.
func (f *TextFormatter) Write(ev Event) error {
	detail := eventDetail(ev)

	var sb strings.Builder
	if detail == "" && ev.Name == "" && !ev.Ignore {
		f.kindStyle[ev.Kind].Fprint(&sb, string(ev.Kind)) // nolint: errcheck
	} else {
		f.kindStyle[ev.Kind].Fprintf(&sb, "%-7s", string(ev.Kind)) // nolint: errcheck
		sb.WriteByte(' ')
		sb.WriteString(detail)
	}
	if ev.Name != "" {
		f.nameStyle.Fprintf(&sb, "  %s", ev.Name) // nolint: errcheck
	}
	if ev.Ignore {
		f.flagStyle.Fprint(&sb, "  (ignored)") // nolint: errcheck
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(f.w, sb.String())
	return err
}

func eventDetail(ev Event) string {
	switch ev.Kind {
	case KindPrint:
		if ev.Width != 1 {
			return fmt.Sprintf("%q width=%d", ev.Char, ev.Width)
		}
		return fmt.Sprintf("%q", ev.Char)
	case KindExecute, KindPut:
		return executeText(ev.Byte)
	case KindCsi, KindHook:
		return sequenceText(ev)
	case KindEsc:
		return ev.Intermediates + ev.Final
	case KindOsc:
		term := "ST"
		if ev.BellTerminated {
			term = "BEL"
		}
		return strings.TrimSpace(strings.Join(ev.Payload, ";") + " " + term)
	}
	return ""
}

// sequenceText reconstructs the wire shape of a CSI or DCS header.
// Private markers were collected as intermediates but appeared before
// the parameters, so they move back in front.
func sequenceText(ev Event) string {
	inter := ev.Intermediates
	var marker string
	if inter != "" && inter[0] >= 0x3c && inter[0] <= 0x3f {
		marker, inter = inter[:1], inter[1:]
	}
	return marker + ev.Params + inter + ev.Final
}

// executeText shows a control byte with its caret form: "0x1b ^[".
// C1 bytes have no caret form and stay hex only.
func executeText(hexByte string) string {
	v, err := strconv.ParseUint(strings.TrimPrefix(hexByte, "0x"), 16, 8)
	if err != nil {
		return hexByte
	}
	caret := seqinfo.Caret(byte(v))
	if strings.HasPrefix(caret, "0x") {
		return hexByte
	}
	return hexByte + " " + caret
}

// JSONFormatter renders events as one JSON object per line.
type JSONFormatter struct {
	enc *json.Encoder
}

// NewJSONFormatter writes JSON lines to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{enc: json.NewEncoder(w)}
}

// Write renders one event as one JSON line.
func (f *JSONFormatter) Write(ev Event) error {
	return f.enc.Encode(ev)
}
