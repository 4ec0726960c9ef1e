// Package validation provides input validation for user-supplied paths
// to prevent path traversal and resource exhaustion.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Limits on user-supplied names and paths.
const (
	// MaxFilenameLength is the maximum allowed filename length.
	MaxFilenameLength = 255
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrPathTraversal    = errors.New("path traversal detected")
	ErrInvalidFilename  = errors.New("invalid filename")
	ErrPathTooLong      = errors.New("path too long")
	ErrFilenameTooLong  = errors.New("filename too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
)

// ValidatePath performs path validation without requiring a base
// directory. It checks for length limits and control characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character", ErrInvalidCharacter)
		}
	}
	return nil
}

// ValidateFilename checks that a bare filename is safe: no path
// separators, no control characters, no relative-path components.
func ValidateFilename(filename string) error {
	if filename == "" {
		return ErrInvalidFilename
	}
	if len(filename) > MaxFilenameLength {
		return ErrFilenameTooLong
	}
	if strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("%w: path separator in filename", ErrInvalidFilename)
	}
	if filename == "." || filename == ".." {
		return fmt.Errorf("%w: relative path component", ErrPathTraversal)
	}
	for _, r := range filename {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character", ErrInvalidFilename)
		}
	}
	return nil
}
