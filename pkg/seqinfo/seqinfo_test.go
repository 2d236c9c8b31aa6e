package seqinfo

import "testing"

func TestControlName(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want string
	}{
		{"bell", 0x07, "BEL"},
		{"escape", 0x1b, "ESC"},
		{"line feed", 0x0a, "LF"},
		{"delete", 0x7f, "DEL"},
		{"next line", 0x85, "NEL"},
		{"string terminator", 0x9c, "ST"},
		{"csi introducer", 0x9b, "CSI"},
		{"printable", 'A', ""},
		{"high byte", 0xe0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ControlName(tt.b); got != tt.want {
				t.Errorf("Expected %q for 0x%02x, got %q", tt.want, tt.b, got)
			}
		})
	}
}

func TestEscName(t *testing.T) {
	tests := []struct {
		name          string
		intermediates string
		final         byte
		want          string
	}{
		{"reset", "", 'c', "RIS"},
		{"reverse index", "", 'M', "RI"},
		{"save cursor", "", '7', "DECSC"},
		{"alignment pattern", "#", '8', "DECALN"},
		{"ascii charset", "(", 'B', "SCS G0 ASCII"},
		{"unknown", "", 'y', ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscName([]byte(tt.intermediates), tt.final); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCsiName(t *testing.T) {
	tests := []struct {
		name          string
		intermediates string
		final         byte
		want          string
	}{
		{"cursor up", "", 'A', "CUU"},
		{"select graphic rendition", "", 'm', "SGR"},
		{"set mode", "", 'h', "SM"},
		{"dec private set", "?", 'h', "DECSET"},
		{"dec private reset", "?", 'l', "DECRST"},
		{"cursor style", " ", 'q', "DECSCUSR"},
		{"unknown intermediate", "&", 'm', ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CsiName([]byte(tt.intermediates), tt.final); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestOscName(t *testing.T) {
	if got := OscName([]byte("52")); got != "clipboard" {
		t.Errorf("Expected clipboard, got %q", got)
	}
	if got := OscName([]byte("9999")); got != "" {
		t.Errorf("Expected empty name for unknown code, got %q", got)
	}
}

func TestCaret(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{0x1b, "^["},
		{0x0a, "^J"},
		{0x00, "^@"},
		{0x7f, "^?"},
		{0x9c, "0x9C"},
	}

	for _, tt := range tests {
		if got := Caret(tt.b); got != tt.want {
			t.Errorf("Expected %q for 0x%02x, got %q", tt.want, tt.b, got)
		}
	}
}
