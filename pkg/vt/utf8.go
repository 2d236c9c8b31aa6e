package vt

// Incremental UTF-8 reassembly. The transition table routes lead bytes
// here; each continuation byte is checked against an acceptance window
// so overlong encodings, surrogate halves, and values above U+10FFFF
// are rejected on the first byte that proves the sequence ill-formed.

type utf8Status uint8

const (
	utf8More   utf8Status = iota // valid so far, sequence incomplete
	utf8Done                     // code point complete
	utf8Reject                   // byte does not continue the sequence
)

// utf8Decoder reassembles one multi-byte code point at a time. A
// sequence may arrive split across Advance calls; at most three
// continuation bytes are ever pending.
type utf8Decoder struct {
	partial rune // bits assembled so far
	need    int  // continuation bytes still expected
	lo, hi  byte // acceptance window for the next byte
}

// begin starts a new sequence from its lead byte. Only bytes in
// 0xC2..0xF4 reach here; everything else never leaves Ground.
func (d *utf8Decoder) begin(lead byte) {
	switch {
	case lead < 0xe0:
		d.partial = rune(lead & 0x1f)
		d.need = 1
		d.lo, d.hi = 0x80, 0xbf
	case lead < 0xf0:
		d.partial = rune(lead & 0x0f)
		d.need = 2
		switch lead {
		case 0xe0:
			d.lo, d.hi = 0xa0, 0xbf // excludes overlong three-byte forms
		case 0xed:
			d.lo, d.hi = 0x80, 0x9f // excludes surrogate halves
		default:
			d.lo, d.hi = 0x80, 0xbf
		}
	default:
		d.partial = rune(lead & 0x07)
		d.need = 3
		switch lead {
		case 0xf0:
			d.lo, d.hi = 0x90, 0xbf // excludes overlong four-byte forms
		case 0xf4:
			d.lo, d.hi = 0x80, 0x8f // excludes values above U+10FFFF
		default:
			d.lo, d.hi = 0x80, 0xbf
		}
	}
}

// next feeds one byte into the pending sequence.
func (d *utf8Decoder) next(b byte) (rune, utf8Status) {
	if b < d.lo || b > d.hi {
		return 0, utf8Reject
	}
	d.partial = d.partial<<6 | rune(b&0x3f)
	d.need--
	if d.need == 0 {
		return d.partial, utf8Done
	}
	d.lo, d.hi = 0x80, 0xbf
	return 0, utf8More
}

func (d *utf8Decoder) reset() {
	d.partial = 0
	d.need = 0
	d.lo, d.hi = 0, 0
}
