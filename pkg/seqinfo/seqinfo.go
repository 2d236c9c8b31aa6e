// Package seqinfo names terminal control functions: C0/C1 control
// bytes, escape and CSI sequences keyed by their intermediates and
// final byte, and well-known OSC command numbers.
//
// The tables cover the sequences a terminal debugger meets in
// practice, not the whole of ECMA-48. Every lookup returns the empty
// string for inputs it does not know; callers decide how to render
// the unknown.
package seqinfo

import "fmt"

// ControlName returns the mnemonic for a C0 or C1 control byte, DEL
// included, and "" for printable or non-control input.
func ControlName(b byte) string {
	switch {
	case b < 0x20:
		return c0Names[b]
	case b == 0x7f:
		return "DEL"
	case b >= 0x80 && b <= 0x9f:
		return c1Names[b-0x80]
	}
	return ""
}

// EscName returns the mnemonic for an escape sequence.
func EscName(intermediates []byte, final byte) string {
	return escNames[string(intermediates)+string(final)]
}

// CsiName returns the mnemonic for a control sequence. Private
// markers count as intermediates, so "?h" resolves to DECSET while a
// plain "h" resolves to SM.
func CsiName(intermediates []byte, final byte) string {
	return csiNames[string(intermediates)+string(final)]
}

// OscName returns a description for an operating system command,
// keyed by its raw first field ("52" for clipboard access and so on).
func OscName(code []byte) string {
	return oscNames[string(code)]
}

// Caret renders a control byte in caret notation: "^[" for ESC, "^?"
// for DEL. C1 bytes and printable input render as hex since caret
// notation has no form for them.
func Caret(b byte) string {
	switch {
	case b < 0x20:
		return "^" + string(rune('@'+b))
	case b == 0x7f:
		return "^?"
	}
	return fmt.Sprintf("0x%02X", b)
}
