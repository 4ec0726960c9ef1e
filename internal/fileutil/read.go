package fileutil

import (
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/corpustools/conform/core/errors"
)

// XZExtension marks xz-compressed corpus files.
const XZExtension = ".xz"

// IsCompressed reports whether path names an xz-compressed file.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, XZExtension)
}

// TrimCompression strips a trailing .xz extension, if present.
func TrimCompression(path string) string {
	return strings.TrimSuffix(path, XZExtension)
}

// ReadFileAuto reads a file, transparently decompressing it when the
// path carries an .xz extension.
func ReadFileAuto(path string) ([]byte, error) {
	if !IsCompressed(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewIO("read", path, err)
		}
		return data, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		return nil, errors.NewIO("decompress", path, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("decompress", path, err)
	}
	return data, nil
}
