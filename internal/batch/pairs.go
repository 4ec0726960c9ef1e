// Package batch discovers annotation/text file pairs and converts them
// in bulk.
package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/corpustools/conform/core/convert"
	"github.com/corpustools/conform/core/errors"
	"github.com/corpustools/conform/core/textpos"
	"github.com/corpustools/conform/internal/fileutil"
)

const (
	// AnnExtension is the brat standoff annotation file extension.
	AnnExtension = ".ann"
	// TextExtension is the source text file extension.
	TextExtension = ".txt"
)

// Pair is one annotation file and its source text file, matched by base
// name. Either path may carry an additional .xz extension.
type Pair struct {
	Base     string // shared base name, e.g. "record-17"
	AnnPath  string
	TextPath string
}

// SwitchExtension replaces the extension of name with ext, looking
// through a trailing .xz.
func SwitchExtension(name, ext string) string {
	name = fileutil.TrimCompression(name)
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

// FindTextFor locates the source text file matching annPath: the same
// path with the extension switched to .txt, or its .xz form. Returns a
// NotFoundError when neither exists.
func FindTextFor(annPath string) (string, error) {
	plain := SwitchExtension(annPath, TextExtension)
	for _, candidate := range []string{plain, plain + fileutil.XZExtension} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.NewNotFound("text file", plain)
}

// DiscoverPairs scans inputDir (non-recursively) for annotation files
// with a matching text file. Annotation files without a text partner are
// ignored, mirroring how the batch only operates on complete pairs.
// Pairs come back sorted by base name.
func DiscoverPairs(inputDir string) ([]Pair, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, errors.NewIO("read directory", inputDir, err)
	}

	var pairs []Pair
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		stripped := fileutil.TrimCompression(name)
		if filepath.Ext(stripped) != AnnExtension {
			continue
		}

		annPath := filepath.Join(inputDir, name)
		textPath, err := FindTextFor(annPath)
		if err != nil {
			continue
		}
		pairs = append(pairs, Pair{
			Base:     strings.TrimSuffix(stripped, AnnExtension),
			AnnPath:  annPath,
			TextPath: textPath,
		})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Base < pairs[j].Base })
	return pairs, nil
}

// Convert reads the pair's files and converts the annotations, reporting
// malformed lines to r.
func (p Pair) Convert(r convert.Reporter) (*convert.Result, *textpos.Document, error) {
	text, err := fileutil.ReadFileAuto(p.TextPath)
	if err != nil {
		return nil, nil, err
	}
	ann, err := fileutil.ReadFileAuto(p.AnnPath)
	if err != nil {
		return nil, nil, err
	}

	doc := textpos.NewDocument(string(text))
	res, err := convert.Brat(doc, string(ann), r)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "converting %s", p.AnnPath)
	}
	return res, doc, nil
}
