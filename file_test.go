package uniquelines_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	uniquelines "github.com/CHUKEPC/unique-lines"
)

func TestProcessFileBasic(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "input.txt")
	outPath := filepath.Join(dir, "output.txt")

	if err := os.WriteFile(inPath, []byte("a\nb\na\nc\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := uniquelines.ProcessFile(inPath, outPath, nil)
	if err != nil {
		t.Fatalf("ProcessFile returned error: %v", err)
	}
	if res.Unique != 3 {
		t.Errorf("Unique returned %d, expected %d", res.Unique, 3)
	}
	if res.Duplicates != 1 {
		t.Errorf("Duplicates returned %d, expected %d", res.Duplicates, 1)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a\nb\nc\n" {
		t.Errorf("output file %q, expected %q", got, "a\nb\nc\n")
	}
}

func TestProcessFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "does-not-exist.txt")
	outPath := filepath.Join(dir, "output.txt")

	_, err := uniquelines.ProcessFile(inPath, outPath, nil)
	if err == nil {
		t.Fatal("expected error for missing input, got nil")
	}
	var nfErr *uniquelines.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
	if nfErr.Path != inPath {
		t.Errorf("Path returned %q, expected %q", nfErr.Path, inPath)
	}

	// The failure happened before the output was created.
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Errorf("output file exists after failed open, stat returned %v", statErr)
	}
}

func TestProcessFileBadOutputDir(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(inPath, []byte("a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "missing-subdir", "output.txt")

	res, err := uniquelines.ProcessFile(inPath, outPath, nil)
	if err == nil {
		t.Fatal("expected error for unwritable output path, got nil")
	}
	var ioErr *uniquelines.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %T: %v", err, err)
	}
	if res.Unique != 0 || res.Duplicates != 0 {
		t.Errorf("counts %d/%d after failure, expected 0/0", res.Unique, res.Duplicates)
	}
}

func TestProcessFileTruncatesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "input.txt")
	outPath := filepath.Join(dir, "output.txt")

	if err := os.WriteFile(inPath, []byte("new\n"), 0644); err != nil {
		t.Fatal(err)
	}
	stale := bytes.Repeat([]byte("stale data that must vanish\n"), 10)
	if err := os.WriteFile(outPath, stale, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := uniquelines.ProcessFile(inPath, outPath, nil); err != nil {
		t.Fatalf("ProcessFile returned error: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new\n" {
		t.Errorf("output file %q, expected stale contents replaced with %q", got, "new\n")
	}
}

func TestProcessFileProgress(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "input.txt")
	outPath := filepath.Join(dir, "output.txt")

	data := []byte("a\nb\na\n")
	if err := os.WriteFile(inPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	var progress bytes.Buffer
	cfg := &uniquelines.Config{Progress: &progress}
	if _, err := uniquelines.ProcessFile(inPath, outPath, cfg); err != nil {
		t.Fatalf("ProcessFile returned error: %v", err)
	}

	if progress.Len() != len(data) {
		t.Errorf("progress observed %d bytes, expected %d", progress.Len(), len(data))
	}
}

func TestProcessFileEmptyInput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "empty.txt")
	outPath := filepath.Join(dir, "output.txt")

	if err := os.WriteFile(inPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	res, err := uniquelines.ProcessFile(inPath, outPath, nil)
	if err != nil {
		t.Fatalf("ProcessFile returned error: %v", err)
	}
	if res.Total() != 0 {
		t.Errorf("Total returned %d, expected 0", res.Total())
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("output file has %d bytes, expected empty", len(got))
	}
}
