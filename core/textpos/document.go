// Package textpos resolves absolute character offsets in a document to
// (line, word) coordinates.
//
// Lines are the newline-split segments of the document text. Words are
// whatever sits between maximal runs of horizontal whitespace (space or
// tab, never newline), so "a  b\tc" holds words a(0), b(1), c(2).
package textpos

import (
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/corpustools/conform/core/errors"
)

// Coordinate is a resolved position within a document. Line is 1-based
// and Word is 0-based; the asymmetry follows the con format convention.
type Coordinate struct {
	Line int
	Word int
}

// String renders the coordinate in the con format's "line:word" style.
func (c Coordinate) String() string {
	return strconv.Itoa(c.Line) + ":" + strconv.Itoa(c.Word)
}

// Document is a read-only view of a source text with a precomputed
// line-start table. Offset lookups binary-search the table: O(log n)
// per offset after one O(n) pass at construction. Line starts are
// indexed by line number, so byte-identical lines resolve to their own
// positions.
type Document struct {
	text   string
	lines  []string
	starts []int // starts[i] is the offset of the first byte of line i
}

// NewDocument builds a Document from raw text.
func NewDocument(text string) *Document {
	lines := strings.Split(text, "\n")
	starts := make([]int, len(lines))
	pos := 0
	for i, line := range lines {
		starts[i] = pos
		pos += len(line) + 1 // +1 for the newline consumed by Split
	}
	return &Document{text: text, lines: lines, starts: starts}
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.text
}

// NumLines returns the number of newline-split lines.
func (d *Document) NumLines() int {
	return len(d.lines)
}

// Line returns the text of the 0-based line i without its trailing newline.
func (d *Document) Line(i int) string {
	return d.lines[i]
}

// LineOf returns the 0-based index of the line containing offset.
// Equivalent to counting newlines in text[:offset].
func (d *Document) LineOf(offset int) int {
	// sort.Search finds the first line starting after offset; the
	// containing line is the one before it.
	n := sort.Search(len(d.starts), func(i int) bool {
		return d.starts[i] > offset
	})
	return n - 1
}

// LineStart returns the character offset of the first byte of the
// 0-based line.
func (d *Document) LineStart(line int) int {
	return d.starts[line]
}

// WordNumber returns the 0-based word index of the token containing
// offset, given the start offset of its line. The word index is the
// count of maximal horizontal-whitespace runs in text[lineStart:offset].
func (d *Document) WordNumber(lineStart, offset int) int {
	words := 0
	inRun := false
	for i := lineStart; i < offset; i++ {
		switch d.text[i] {
		case ' ', '\t':
			if !inRun {
				words++
				inRun = true
			}
		default:
			inRun = false
		}
	}
	return words
}

// Resolve maps a document-absolute character offset to its coordinate.
// Offsets outside [0, len(text)) violate the caller contract and yield a
// ValidationError.
func (d *Document) Resolve(offset int) (Coordinate, error) {
	if offset < 0 || offset >= len(d.text) {
		return Coordinate{}, &errors.ValidationError{
			Field:   "offset",
			Value:   strconv.Itoa(offset),
			Message: "outside document bounds",
		}
	}
	line := d.LineOf(offset)
	word := d.WordNumber(d.starts[line], offset)
	return Coordinate{Line: line + 1, Word: word}, nil
}

// Fingerprint returns the BLAKE3 hash of the document text as a hex
// string. Batch reports use it to identify the exact text a conversion
// was resolved against.
func (d *Document) Fingerprint() string {
	sum := blake3.Sum256([]byte(d.text))
	return hex.EncodeToString(sum[:])
}
