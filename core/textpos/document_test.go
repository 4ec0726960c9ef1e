package textpos

import (
	"strings"
	"testing"
)

func TestCoordinateString(t *testing.T) {
	tests := []struct {
		coord Coordinate
		want  string
	}{
		{Coordinate{Line: 1, Word: 0}, "1:0"},
		{Coordinate{Line: 2, Word: 1}, "2:1"},
		{Coordinate{Line: 14, Word: 12}, "14:12"},
	}

	for _, tt := range tests {
		if got := tt.coord.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLineOf(t *testing.T) {
	doc := NewDocument("hello world\nfoo bar baz\n")

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},  // 'h'
		{6, 0},  // 'w' in world
		{11, 0}, // newline ending line 1
		{12, 1}, // 'f' in foo
		{22, 1}, // 'z' in baz
		{23, 1}, // trailing newline
	}

	for _, tt := range tests {
		if got := doc.LineOf(tt.offset); got != tt.want {
			t.Errorf("LineOf(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestLineStart(t *testing.T) {
	doc := NewDocument("hello world\nfoo bar baz\n")

	if got := doc.LineStart(0); got != 0 {
		t.Errorf("LineStart(0) = %d, want 0", got)
	}
	if got := doc.LineStart(1); got != 12 {
		t.Errorf("LineStart(1) = %d, want 12", got)
	}
}

// Duplicate lines must resolve against their own start offsets, not the
// first occurrence of equal text.
func TestLineStartDuplicateLines(t *testing.T) {
	doc := NewDocument("same line\nsame line\n")

	if got := doc.LineStart(1); got != 10 {
		t.Errorf("LineStart(1) = %d, want 10", got)
	}

	// "line" on the second occurrence: offset 15.
	coord, err := doc.Resolve(15)
	if err != nil {
		t.Fatalf("Resolve(15) failed: %v", err)
	}
	if coord.Line != 2 || coord.Word != 1 {
		t.Errorf("Resolve(15) = %v, want {Line: 2, Word: 1}", coord)
	}
}

func TestResolve(t *testing.T) {
	doc := NewDocument("hello world\nfoo bar baz\n")

	tests := []struct {
		name   string
		offset int
		want   Coordinate
	}{
		{"start of world", 6, Coordinate{Line: 1, Word: 1}},
		{"end of world (exclusive)", 11, Coordinate{Line: 1, Word: 1}},
		{"start of foo", 12, Coordinate{Line: 2, Word: 0}},
		{"start of bar", 16, Coordinate{Line: 2, Word: 1}},
		{"start of baz", 20, Coordinate{Line: 2, Word: 2}},
		{"start of document", 0, Coordinate{Line: 1, Word: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doc.Resolve(tt.offset)
			if err != nil {
				t.Fatalf("Resolve(%d) failed: %v", tt.offset, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%d) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestResolveOutOfBounds(t *testing.T) {
	doc := NewDocument("short\n")

	for _, offset := range []int{-1, 6, 100} {
		if _, err := doc.Resolve(offset); err == nil {
			t.Errorf("Resolve(%d) should fail for out-of-bounds offset", offset)
		}
	}
}

func TestWordNumberHorizontalWhitespaceOnly(t *testing.T) {
	// Words are delimited by maximal runs of spaces and tabs.
	doc := NewDocument("a  b\tc\n")

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0}, // a
		{3, 1}, // b, after a double space
		{5, 2}, // c, after a tab
	}

	for _, tt := range tests {
		if got := doc.WordNumber(0, tt.offset); got != tt.want {
			t.Errorf("WordNumber(0, %d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestWordNumberMixedRun(t *testing.T) {
	// A mixed space-and-tab run counts as a single boundary.
	doc := NewDocument("a \t b\n")

	if got := doc.WordNumber(0, 4); got != 1 {
		t.Errorf("WordNumber(0, 4) = %d, want 1", got)
	}
}

func TestAccessors(t *testing.T) {
	text := "one\ntwo\nthree"
	doc := NewDocument(text)

	if got := doc.Text(); got != text {
		t.Errorf("Text() = %q, want %q", got, text)
	}
	if got := doc.NumLines(); got != 3 {
		t.Errorf("NumLines() = %d, want 3", got)
	}
	if got := doc.Line(1); got != "two" {
		t.Errorf("Line(1) = %q, want %q", got, "two")
	}
}

func TestFingerprint(t *testing.T) {
	a := NewDocument("hello world\n")
	b := NewDocument("hello world\n")
	c := NewDocument("hello earth\n")

	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("equal texts should share a fingerprint")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Errorf("different texts should not share a fingerprint")
	}
	if len(a.Fingerprint()) != 64 {
		t.Errorf("Fingerprint() length = %d, want 64 hex chars", len(a.Fingerprint()))
	}
}

func TestLineOfLargeDocument(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString("line with several words here\n")
	}
	doc := NewDocument(sb.String())

	const lineLen = len("line with several words here") + 1
	for _, line := range []int{0, 1, 499, 999} {
		offset := line * lineLen
		if got := doc.LineOf(offset); got != line {
			t.Errorf("LineOf(%d) = %d, want %d", offset, got, line)
		}
	}
}
