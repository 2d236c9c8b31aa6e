package ansistrip

import (
	"reflect"
	"testing"
)

func TestParse_EmptyInput(t *testing.T) {
	result, err := Parse("")
	if err != nil {
		t.Errorf("Expected no error for empty input, got %v", err)
	}
	if result.PlainText != "" {
		t.Errorf("Expected empty plain text, got '%s'", result.PlainText)
	}
	if len(result.StyleSpans) != 0 {
		t.Errorf("Expected 0 style spans for empty input, got %d", len(result.StyleSpans))
	}
}

func TestParse_PlainTextOnly(t *testing.T) {
	input := "This is plain text\nAnother plain line\nNo styling here"
	result, err := Parse(input)
	if err != nil {
		t.Errorf("Expected no error for plain text, got %v", err)
	}
	if result.PlainText != input {
		t.Errorf("Expected plain text '%s', got '%s'", input, result.PlainText)
	}
	if len(result.StyleSpans) != 0 {
		t.Errorf("Expected 0 style spans for plain text, got %d", len(result.StyleSpans))
	}
}

func TestParse_BoldText(t *testing.T) {
	result, err := Parse("\x1b[1mbold text\x1b[0m")
	if err != nil {
		t.Errorf("Expected no error for bold text, got %v", err)
	}
	if result.PlainText != "bold text" {
		t.Errorf("Expected plain text 'bold text', got '%s'", result.PlainText)
	}
	if len(result.StyleSpans) != 1 {
		t.Fatalf("Expected 1 style span for bold text, got %d", len(result.StyleSpans))
	}
	if !result.StyleSpans[0].Style.Bold {
		t.Error("Expected first span to be bold")
	}
}

func TestParse_NamedColor(t *testing.T) {
	result, err := Parse("\x1b[31mred\x1b[39m")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.StyleSpans) != 1 {
		t.Fatalf("Expected 1 style span, got %d", len(result.StyleSpans))
	}
	color := result.StyleSpans[0].Style.ForegroundColor
	if color == nil {
		t.Fatal("Expected foreground color to be set")
	}
	if color.R != 205 || color.G != 0 || color.B != 0 {
		t.Errorf("Expected xterm red (205,0,0), got (%d,%d,%d)", color.R, color.G, color.B)
	}
}

func TestParse_TrueColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"semicolon form", "\x1b[38;2;255;100;0mtext\x1b[0m"},
		{"semicolon form with trailing attribute", "\x1b[38;2;255;100;0;4mtext\x1b[0m"},
		{"colon form", "\x1b[38:2:255:100:0mtext\x1b[0m"},
		{"colon form with colorspace", "\x1b[38:2:0:255:100:0mtext\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(result.StyleSpans) != 1 {
				t.Fatalf("Expected 1 style span, got %d", len(result.StyleSpans))
			}
			color := result.StyleSpans[0].Style.ForegroundColor
			if color == nil {
				t.Fatal("Expected foreground color to be set")
			}
			if color.R != 255 || color.G != 100 || color.B != 0 {
				t.Errorf("Expected (255,100,0), got (%d,%d,%d)", color.R, color.G, color.B)
			}
		})
	}
}

func TestParse_Palette256(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"cube red", "\x1b[38;5;196mx\x1b[0m", Color{255, 0, 0}},
		{"grayscale", "\x1b[38;5;244mx\x1b[0m", Color{128, 128, 128}},
		{"named low", "\x1b[38;5;2mx\x1b[0m", Color{0, 205, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(result.StyleSpans) != 1 {
				t.Fatalf("Expected 1 style span, got %d", len(result.StyleSpans))
			}
			color := result.StyleSpans[0].Style.ForegroundColor
			if color == nil {
				t.Fatal("Expected foreground color to be set")
			}
			if *color != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, *color)
			}
		})
	}
}

func TestParse_BackgroundColor(t *testing.T) {
	result, err := Parse("\x1b[48;2;255;0;0mred background\x1b[49m")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.StyleSpans) != 1 {
		t.Fatalf("Expected 1 style span, got %d", len(result.StyleSpans))
	}
	color := result.StyleSpans[0].Style.BackgroundColor
	if color == nil {
		t.Fatal("Expected background color to be set")
	}
	if color.R != 255 || color.G != 0 || color.B != 0 {
		t.Errorf("Expected red background (255,0,0), got (%d,%d,%d)", color.R, color.G, color.B)
	}
}

func TestParse_SpanPositions(t *testing.T) {
	result, err := Parse("ab\x1b[1mcd\x1b[0mef")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.PlainText != "abcdef" {
		t.Errorf("Expected plain text 'abcdef', got '%s'", result.PlainText)
	}
	if len(result.StyleSpans) != 1 {
		t.Fatalf("Expected 1 style span, got %d", len(result.StyleSpans))
	}
	span := result.StyleSpans[0]
	if span.Text != "cd" || span.StartCol != 2 || span.EndCol != 4 || span.StartLine != 0 {
		t.Errorf("Expected span 'cd' at cols 2-4, got '%s' at %d-%d", span.Text, span.StartCol, span.EndCol)
	}
}

func TestParse_WideRuneColumns(t *testing.T) {
	// CJK characters occupy two display columns each.
	result, err := Parse("日\x1b[31m本\x1b[0m")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.StyleSpans) != 1 {
		t.Fatalf("Expected 1 style span, got %d", len(result.StyleSpans))
	}
	span := result.StyleSpans[0]
	if span.StartCol != 2 || span.EndCol != 4 {
		t.Errorf("Expected span at cols 2-4, got %d-%d", span.StartCol, span.EndCol)
	}
	if span.Width() != 2 {
		t.Errorf("Expected span width 2, got %d", span.Width())
	}
}

func TestParse_TabExpansion(t *testing.T) {
	result, err := Parse("a\tb")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.PlainText != "a       b" {
		t.Errorf("Expected tab expanded to column 8, got '%s'", result.PlainText)
	}
}

func TestParse_TabClosesSpan(t *testing.T) {
	result, err := Parse("\x1b[1ma\tb\x1b[0m")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.StyleSpans) != 2 {
		t.Fatalf("Expected 2 style spans around the tab, got %d", len(result.StyleSpans))
	}
	if result.StyleSpans[0].Text != "a" || result.StyleSpans[0].StartCol != 0 {
		t.Errorf("Expected first span 'a' at col 0, got '%s' at %d",
			result.StyleSpans[0].Text, result.StyleSpans[0].StartCol)
	}
	if result.StyleSpans[1].Text != "b" || result.StyleSpans[1].StartCol != 8 {
		t.Errorf("Expected second span 'b' at col 8, got '%s' at %d",
			result.StyleSpans[1].Text, result.StyleSpans[1].StartCol)
	}
}

func TestParse_SpanSplitsAtNewline(t *testing.T) {
	result, err := Parse("\x1b[31mab\ncd\x1b[0m")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.PlainText != "ab\ncd" {
		t.Errorf("Expected plain text 'ab\\ncd', got '%s'", result.PlainText)
	}
	if len(result.StyleSpans) != 2 {
		t.Fatalf("Expected 2 style spans across lines, got %d", len(result.StyleSpans))
	}
	if result.StyleSpans[0].StartLine != 0 || result.StyleSpans[1].StartLine != 1 {
		t.Errorf("Expected spans on lines 0 and 1, got %d and %d",
			result.StyleSpans[0].StartLine, result.StyleSpans[1].StartLine)
	}
	if result.StyleSpans[1].StartCol != 0 {
		t.Errorf("Expected second span to restart at col 0, got %d", result.StyleSpans[1].StartCol)
	}
}

func TestParse_StyleChangeSplitsSpan(t *testing.T) {
	result, err := Parse("\x1b[31ma\x1b[32mb\x1b[0m")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.StyleSpans) != 2 {
		t.Fatalf("Expected 2 style spans, got %d", len(result.StyleSpans))
	}
	first := result.StyleSpans[0].Style.ForegroundColor
	second := result.StyleSpans[1].Style.ForegroundColor
	if first == nil || second == nil || *first == *second {
		t.Errorf("Expected two differently colored spans, got %+v and %+v", first, second)
	}
}

func TestParse_RedundantSGRKeepsSpanOpen(t *testing.T) {
	result, err := Parse("\x1b[1ma\x1b[1mb\x1b[0m")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.StyleSpans) != 1 {
		t.Fatalf("Expected 1 style span, got %d", len(result.StyleSpans))
	}
	if result.StyleSpans[0].Text != "ab" {
		t.Errorf("Expected span text 'ab', got '%s'", result.StyleSpans[0].Text)
	}
}

func TestStyleSpan_StylePredicates(t *testing.T) {
	result, err := Parse("\x1b[31mfg\x1b[0m\x1b[41mbg\x1b[0m\x1b[1mbold\x1b[0m")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.StyleSpans) != 3 {
		t.Fatalf("Expected 3 style spans, got %d", len(result.StyleSpans))
	}

	fg, bg, bold := result.StyleSpans[0], result.StyleSpans[1], result.StyleSpans[2]

	if !fg.HasForegroundColor() || fg.HasBackgroundColor() {
		t.Error("Expected first span to carry only a foreground color")
	}
	if !bg.HasBackgroundColor() || bg.HasForegroundColor() {
		t.Error("Expected second span to carry only a background color")
	}
	if bold.HasForegroundColor() || bold.HasBackgroundColor() {
		t.Error("Expected third span to carry no colors")
	}

	// Unstyled runs never open spans, so every parsed span reports
	// styling.
	for i, span := range result.StyleSpans {
		if !span.HasStyling() {
			t.Errorf("Expected span %d to report styling", i)
		}
	}

	var plain StyleSpan
	if plain.HasStyling() {
		t.Error("Expected zero span to report no styling")
	}
}

func TestParseResult_UtilityMethods(t *testing.T) {
	result, err := Parse("\x1b[1mone\x1b[0m\n\x1b[4mtwo\x1b[0m three")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.HasStyledContent() {
		t.Error("Expected styled content to be reported")
	}
	if got := result.GetLineCount(); got != 2 {
		t.Errorf("Expected 2 lines, got %d", got)
	}

	byLine := result.GetStyledSpansByLine()
	if len(byLine) != 2 {
		t.Fatalf("Expected spans on 2 lines, got %d", len(byLine))
	}
	if len(byLine[0]) != 1 || byLine[0][0].Text != "one" {
		t.Errorf("Expected line 0 span 'one', got %+v", byLine[0])
	}

	if spans := result.GetSpansForLine(1); len(spans) != 1 || spans[0].Text != "two" {
		t.Errorf("Expected line 1 span 'two', got %+v", spans)
	}
	if spans := result.GetSpansForLine(5); len(spans) != 0 {
		t.Errorf("Expected no spans for line 5, got %d", len(spans))
	}

	if got, want := result.GetStyledText(), []string{"one", "two"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Expected styled texts %v, got %v", want, got)
	}
}

func TestParseResult_UtilityMethodsOnEmptyInput(t *testing.T) {
	result, err := Parse("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.HasStyledContent() {
		t.Error("Expected no styled content for empty input")
	}
	if got := result.GetLineCount(); got != 0 {
		t.Errorf("Expected 0 lines for empty input, got %d", got)
	}
	if texts := result.GetStyledText(); len(texts) != 0 {
		t.Errorf("Expected no styled texts, got %v", texts)
	}
}

func TestStrip_RemovesAllSequences(t *testing.T) {
	input := "\x1b]0;title\x07\x1b[31mhi\x1b[0m\x1bP1|x\x1b\\ there\x1b[?25l"
	if got := Strip(input); got != "hi there" {
		t.Errorf("Expected 'hi there', got '%s'", got)
	}
}

func TestStrip_DropsCarriageReturn(t *testing.T) {
	if got := Strip("progress\r100%"); got != "progress100%" {
		t.Errorf("Expected carriage return dropped, got '%s'", got)
	}
}

func TestParse_NonSGRSequencesIgnored(t *testing.T) {
	result, err := Parse("\x1b[2J\x1b[Hplain")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.PlainText != "plain" {
		t.Errorf("Expected plain text 'plain', got '%s'", result.PlainText)
	}
	if len(result.StyleSpans) != 0 {
		t.Errorf("Expected 0 style spans, got %d", len(result.StyleSpans))
	}
}
