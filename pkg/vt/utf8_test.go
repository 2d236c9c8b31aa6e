package vt

import (
	"testing"
	"unicode/utf8"
)

// TestDecoderAcceptsEveryScalarValue feeds the encoding of every
// Unicode scalar value through the decoder and expects it back intact.
func TestDecoderAcceptsEveryScalarValue(t *testing.T) {
	var buf [4]byte
	var d utf8Decoder

	for r := rune(0x80); r <= 0x10ffff; r++ {
		if r >= 0xd800 && r <= 0xdfff {
			continue
		}
		n := utf8.EncodeRune(buf[:], r)

		d.begin(buf[0])
		var got rune
		status := utf8More
		for i := 1; i < n; i++ {
			got, status = d.next(buf[i])
			if status == utf8Reject {
				t.Fatalf("Rejected byte %d of %U", i, r)
			}
		}
		if status != utf8Done {
			t.Fatalf("Expected %U to complete after %d bytes", r, n)
		}
		if got != r {
			t.Fatalf("Expected %U, got %U", r, got)
		}
	}
}

func TestDecoderRejectsIllFormed(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		rejectAt int // index into bytes of the byte that must be refused
	}{
		{"ascii continuation", []byte{0xc3, 0x41}, 1},
		{"overlong three byte", []byte{0xe0, 0x80}, 1},
		{"surrogate low bound", []byte{0xed, 0xa0}, 1},
		{"above max code point", []byte{0xf4, 0x90}, 1},
		{"overlong four byte", []byte{0xf0, 0x80}, 1},
		{"window resets after first byte", []byte{0xe0, 0xa0, 0xc0}, 2},
		{"second continuation not ascii", []byte{0xf0, 0x9f, 0x20}, 2},
		{"third continuation checked", []byte{0xf0, 0x9f, 0x92, 0x07}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d utf8Decoder
			d.begin(tt.bytes[0])
			for i := 1; i < len(tt.bytes); i++ {
				_, status := d.next(tt.bytes[i])
				if i == tt.rejectAt {
					if status != utf8Reject {
						t.Fatalf("Expected reject at byte %d, got status %d", i, status)
					}
					return
				}
				if status != utf8More {
					t.Fatalf("Expected more at byte %d, got status %d", i, status)
				}
			}
			t.Fatalf("Never reached the rejecting byte")
		})
	}
}

func TestDecoderBoundaryCodePoints(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  rune
	}{
		{"first two byte", []byte{0xc2, 0x80}, 0x80},
		{"last two byte", []byte{0xdf, 0xbf}, 0x7ff},
		{"first three byte", []byte{0xe0, 0xa0, 0x80}, 0x800},
		{"below surrogates", []byte{0xed, 0x9f, 0xbf}, 0xd7ff},
		{"above surrogates", []byte{0xee, 0x80, 0x80}, 0xe000},
		{"last three byte", []byte{0xef, 0xbf, 0xbf}, 0xffff},
		{"first four byte", []byte{0xf0, 0x90, 0x80, 0x80}, 0x10000},
		{"last four byte", []byte{0xf4, 0x8f, 0xbf, 0xbf}, 0x10ffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d utf8Decoder
			d.begin(tt.bytes[0])
			var got rune
			status := utf8More
			for i := 1; i < len(tt.bytes); i++ {
				got, status = d.next(tt.bytes[i])
			}
			if status != utf8Done {
				t.Fatalf("Expected completion, got status %d", status)
			}
			if got != tt.want {
				t.Errorf("Expected %U, got %U", tt.want, got)
			}
		})
	}
}

func TestDecoderReset(t *testing.T) {
	var d utf8Decoder
	d.begin(0xe2)
	if _, status := d.next(0x82); status != utf8More {
		t.Fatalf("Expected more, got %d", status)
	}

	d.reset()
	d.begin(0xc3)
	got, status := d.next(0xa9)
	if status != utf8Done || got != 'é' {
		t.Errorf("Expected 'é' after reset, got %U status %d", got, status)
	}
}
