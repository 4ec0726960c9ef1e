// Package convert re-anchors brat standoff annotations to con line:word
// coordinates.
package convert

import (
	"fmt"
	"strings"

	"github.com/corpustools/conform/core/brat"
	"github.com/corpustools/conform/core/confmt"
	"github.com/corpustools/conform/core/errors"
	"github.com/corpustools/conform/core/textpos"
)

// Reporter receives warnings about annotation lines skipped during a
// conversion. Conversions hold no global state, so documents may be
// converted in parallel with one Reporter each.
type Reporter interface {
	Warning(msg string)
}

// NopReporter discards all warnings.
type NopReporter struct{}

// Warning implements Reporter.
func (NopReporter) Warning(string) {}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(msg string)

// Warning implements Reporter.
func (f ReporterFunc) Warning(msg string) { f(msg) }

// Result summarizes one document conversion.
type Result struct {
	// Output is the rendered con text, one line per annotation in
	// input order. Empty when no annotation line was valid.
	Output string

	// Annotations is the number of converted annotations.
	Annotations int

	// Warnings is the number of malformed lines skipped.
	Warnings int
}

// Brat converts brat annotation text against doc and returns the con
// rendering. Blank lines and '#' comments are skipped silently.
// Malformed lines are reported to r and excluded from the output; they
// never fail the conversion. Numeric tokens that defeat integer parsing
// after a grammar match, and offsets outside the document, are caller
// contract violations and fail the whole document.
func Brat(doc *textpos.Document, annText string, r Reporter) (*Result, error) {
	if r == nil {
		r = NopReporter{}
	}

	var anns []*con.Annotation
	warnings := 0

	for _, line := range strings.Split(annText, "\n") {
		if brat.IsSkippable(line) {
			continue
		}
		if !brat.Valid(line) {
			r.Warning(fmt.Sprintf("incorrectly formatted line was skipped: %q", line))
			warnings++
			continue
		}

		rec, err := brat.Parse(line)
		if err != nil {
			return nil, err
		}

		start, err := doc.Resolve(rec.Start)
		if err != nil {
			return nil, errors.Wrapf(err, "annotation %s%d start offset %d", rec.Kind, rec.ID, rec.Start)
		}
		end, err := doc.Resolve(rec.End)
		if err != nil {
			return nil, errors.Wrapf(err, "annotation %s%d end offset %d", rec.Kind, rec.ID, rec.End)
		}

		anns = append(anns, &con.Annotation{
			Content: rec.Content,
			Label:   rec.Label,
			Start:   start,
			End:     end,
		})
	}

	return &Result{
		Output:      con.Render(anns),
		Annotations: len(anns),
		Warnings:    warnings,
	}, nil
}
