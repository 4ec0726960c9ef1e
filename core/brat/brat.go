// Package brat parses the brat standoff annotation format.
//
// Each annotation line carries a single-letter kind tag, a numeric id, a
// label, a pair of document-absolute character offsets, and the covered
// text. Fields are separated by a tab, with a tolerance for runs of 3-6
// spaces left behind by tab-to-space conversions.
package brat

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/corpustools/conform/core/errors"
)

// Kind is the single-letter classifier prefixing an annotation id.
type Kind byte

// The fixed kind alphabet.
const (
	Entity        Kind = 'T'
	Relation      Kind = 'R'
	Event         Kind = 'E'
	Attribute     Kind = 'A'
	Modification  Kind = 'M'
	Normalization Kind = 'N'
)

// String returns the kind tag as a one-letter string.
func (k Kind) String() string {
	return string(byte(k))
}

// Record is one parsed annotation line.
type Record struct {
	Kind    Kind
	ID      int
	Label   string
	Start   int
	End     int
	Content string
}

// lineExpr is the full line grammar. The (?s) flag lets content span
// embedded newlines when callers hand Parse a multi-line string.
var lineExpr = regexp.MustCompile(`(?s)^([TREAMN])(\d+)(?:\t| {3,6})(\S+) (\d+) (\d+)(?:\t| {3,6})(.+)$`)

// Valid reports whether line matches the annotation grammar in full.
// Blank lines and comments are not grammar candidates; filter them with
// IsSkippable before calling Valid.
func Valid(line string) bool {
	return lineExpr.MatchString(line)
}

// IsSkippable reports whether line is blank or a '#' comment. Such lines
// are silently dropped by callers rather than reported as malformed.
func IsSkippable(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// Parse decomposes a line into a Record. The line must satisfy Valid;
// lines that do not match the grammar, and grammar matches whose numeric
// tokens overflow integer parsing, return a ParseError.
func Parse(line string) (*Record, error) {
	m := lineExpr.FindStringSubmatch(line)
	if m == nil {
		return nil, errors.NewParse("brat", line, "line does not match annotation grammar")
	}

	id, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, &errors.ParseError{Format: "brat", Line: line, Message: "annotation id: " + err.Error(), Err: err}
	}
	start, err := strconv.Atoi(m[4])
	if err != nil {
		return nil, &errors.ParseError{Format: "brat", Line: line, Message: "start offset: " + err.Error(), Err: err}
	}
	end, err := strconv.Atoi(m[5])
	if err != nil {
		return nil, &errors.ParseError{Format: "brat", Line: line, Message: "end offset: " + err.Error(), Err: err}
	}

	return &Record{
		Kind:    Kind(m[1][0]),
		ID:      id,
		Label:   strings.TrimSpace(m[3]),
		Start:   start,
		End:     end,
		Content: strings.TrimSpace(m[6]),
	}, nil
}

// Line renders the record as a canonical tab-separated brat line, the
// synthetic inverse of Parse.
func (r *Record) Line() string {
	var sb strings.Builder
	sb.WriteString(r.Kind.String())
	sb.WriteString(strconv.Itoa(r.ID))
	sb.WriteByte('\t')
	sb.WriteString(r.Label)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(r.Start))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(r.End))
	sb.WriteByte('\t')
	sb.WriteString(r.Content)
	return sb.String()
}
