package app

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile %s: %v", path, err)
	}
	return path
}

func drainObjectFiles(t *testing.T, dir string) ([]ObjectFile, error) {
	t.Helper()

	out, errs := StreamObjectFiles(dir)

	var got []ObjectFile
	for f := range out {
		got = append(got, f)
	}
	if err, ok := <-errs; ok && err != nil {
		return got, err
	}
	return got, nil
}

func TestStreamObjectFilesSkipsNonObjectFiles(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "1.txt", "id=1\nfirst")
	writeTempFile(t, dir, "2.txt", "id=2\nsecond")
	writeTempFile(t, dir, "nextObjectNumber.txt", "14903")
	writeTempFile(t, dir, "groundHeat_5.txt", "0.0")
	writeTempFile(t, dir, "notes.md", "not game data")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	got, err := drainObjectFiles(t, dir)
	if err != nil {
		t.Fatalf("StreamObjectFiles error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d files, want 2: %#v", len(got), got)
	}
	if got[0].Name != "1.txt" || got[0].Raw != "id=1\nfirst" {
		t.Fatalf("first file = %#v", got[0])
	}
	if got[1].Name != "2.txt" {
		t.Fatalf("second file = %#v", got[1])
	}
}

func TestStreamObjectFilesReturnsErrorWhenDirMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	got, err := drainObjectFiles(t, dir)
	if err == nil {
		t.Fatalf("expected error for missing directory, got %d files", len(got))
	}
}

func TestStreamObjectFilesReturnsErrorWhenPathIsAFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "1.txt", "id=1\nfirst")

	got, err := drainObjectFiles(t, path)
	if err == nil {
		t.Fatalf("expected error for non-directory path, got %d files", len(got))
	}
}

func TestCountObjectFiles(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "1.txt", "id=1\nfirst")
	writeTempFile(t, dir, "2.txt", "id=2\nsecond")
	writeTempFile(t, dir, "groundHeat_6.txt", "0.0")
	writeTempFile(t, dir, "readme", "nope")

	count, err := CountObjectFiles(dir)
	if err != nil {
		t.Fatalf("CountObjectFiles: %v", err)
	}
	if count != 2 {
		t.Fatalf("CountObjectFiles = %d, want 2", count)
	}
}

func TestIsObjectFile(t *testing.T) {
	if !isObjectFile("14903.txt") {
		t.Fatalf("14903.txt should be an object file")
	}
	if isObjectFile("nextObjectNumber.txt") {
		t.Fatalf("nextObjectNumber.txt is bookkeeping, not an object file")
	}
	if isObjectFile("groundHeat_4.txt") {
		t.Fatalf("groundHeat_4.txt is bookkeeping, not an object file")
	}
	if isObjectFile("14903.json") {
		t.Fatalf("only .txt files are object files")
	}
}
