// Package fileutil provides small filesystem helpers shared by the CLI
// and the batch driver.
package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/corpustools/conform/core/errors"
)

// CopyFile copies src to dst, creating dst's parent directory when
// needed. The destination is truncated if it already exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.NewIO("open", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.NewIO("create directory for", dst, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return errors.NewIO("create", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.NewIO("write", dst, err)
	}
	if err := out.Close(); err != nil {
		return errors.NewIO("close", dst, err)
	}

	info, err := os.Stat(src)
	if err == nil {
		// Preserve the source mode; failure here is not fatal.
		_ = os.Chmod(dst, info.Mode())
	}
	return nil
}

// CopyDir recursively copies the directory tree rooted at src into dst.
func CopyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return os.MkdirAll(target, info.Mode())
		}
		return CopyFile(path, target)
	})
}
