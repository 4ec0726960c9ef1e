// Package con renders annotations in the con format, one line per
// annotation:
//
//	c="<content>" <line>:<word> <line>:<word>||t="<label>"
package con

import (
	"fmt"
	"strings"

	"github.com/corpustools/conform/core/textpos"
)

// Extension is the file extension of con annotation files.
const Extension = ".con"

// Annotation is one re-anchored annotation ready for rendering.
type Annotation struct {
	Content string
	Label   string
	Start   textpos.Coordinate
	End     textpos.Coordinate
}

// String renders the annotation as a single con line without a trailing
// newline. Content and label are interpolated verbatim; the format has
// no escaping convention.
func (a *Annotation) String() string {
	return fmt.Sprintf(`c="%s" %s %s||t="%s"`, a.Content, a.Start, a.End, a.Label)
}

// Render renders annotations as newline-terminated con lines, preserving
// input order.
func Render(anns []*Annotation) string {
	var sb strings.Builder
	for _, a := range anns {
		sb.WriteString(a.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
