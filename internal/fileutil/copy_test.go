package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	tempDir := t.TempDir()

	// Create source file
	srcContent := "hello world\nfoo bar baz\n"
	srcPath := filepath.Join(tempDir, "src.txt")
	if err := os.WriteFile(srcPath, []byte(srcContent), 0644); err != nil {
		t.Fatalf("failed to create source file: %v", err)
	}

	// Copy file
	dstPath := filepath.Join(tempDir, "dst.txt")
	if err := CopyFile(srcPath, dstPath); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	// Verify content
	dstContent, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatalf("failed to read destination file: %v", err)
	}
	if string(dstContent) != srcContent {
		t.Errorf("content mismatch: got %q, want %q", dstContent, srcContent)
	}
}

func TestCopyFile_CreateDir(t *testing.T) {
	tempDir := t.TempDir()

	srcPath := filepath.Join(tempDir, "src.txt")
	if err := os.WriteFile(srcPath, []byte("test"), 0644); err != nil {
		t.Fatalf("failed to create source file: %v", err)
	}

	// Destination in a directory that does not exist yet
	dstPath := filepath.Join(tempDir, "nested", "deeper", "dst.txt")
	if err := CopyFile(srcPath, dstPath); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	if _, err := os.Stat(dstPath); err != nil {
		t.Errorf("destination file missing: %v", err)
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	tempDir := t.TempDir()

	err := CopyFile(filepath.Join(tempDir, "absent.txt"), filepath.Join(tempDir, "dst.txt"))
	if err == nil {
		t.Fatal("CopyFile should fail for a missing source")
	}
}

func TestCopyDir(t *testing.T) {
	tempDir := t.TempDir()

	srcDir := filepath.Join(tempDir, "src")
	if err := os.MkdirAll(filepath.Join(srcDir, "sub"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]string{
		"a.txt":     "document a",
		"a.ann":     "T1\tDrug 0 8\tdocument",
		"sub/b.txt": "document b",
	}
	for rel, content := range files {
		if err := os.WriteFile(filepath.Join(srcDir, rel), []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}

	dstDir := filepath.Join(tempDir, "dst")
	if err := CopyDir(srcDir, dstDir); err != nil {
		t.Fatalf("CopyDir failed: %v", err)
	}

	for rel, content := range files {
		got, err := os.ReadFile(filepath.Join(dstDir, rel))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		if string(got) != content {
			t.Errorf("%s content = %q, want %q", rel, got, content)
		}
	}
}
