package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func objectSource(id int, name string, spriteID int) string {
	return fmt.Sprintf(`id=%d
%s
person=0
male=0
clothing=n
clothingOffset=0.000000,0.000000
numSprites=1
spriteID=%d
pos=1.000000,-2.000000
rot=0.000000
hFlip=0
color=1.000000,1.000000,1.000000
ageRange=-1.000000,-1.000000
parent=-1
invisHolding=0,invisWorn=0,behindSlots=0
invisCont=0
headIndex=-1
bodyIndex=-1
backFootIndex=-1
frontFootIndex=-1`, id, name, spriteID)
}

func writeObjectFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile %s: %v", name, err)
	}
}

func captureCommandOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	exportCmd.SetOut(buf)
	statsCmd.SetOut(buf)
	t.Cleanup(func() {
		exportCmd.SetOut(nil)
		statsCmd.SetOut(nil)
	})
	return buf
}

func TestExportCommandWritesJSONArrayForFixtureDirectory(t *testing.T) {
	preserveGlobals(t)
	resetViper(t)
	logs := captureLogs(t)
	out := captureCommandOutput(t)

	dir := t.TempDir()
	writeObjectFile(t, dir, "100.txt", objectSource(100, "basket", 42))
	writeObjectFile(t, dir, "200.txt", "not an object definition")
	writeObjectFile(t, dir, "300.txt", objectSource(300, "stone", 7))
	writeObjectFile(t, dir, "nextObjectNumber.txt", "301")

	if err := exportCmd.RunE(exportCmd, []string{dir}); err != nil {
		t.Fatalf("export: %v", err)
	}

	if ObjectsPath != filepath.Clean(dir) {
		t.Fatalf("ObjectsPath = %q, want %q", ObjectsPath, filepath.Clean(dir))
	}

	var objects []struct {
		ID      uint64 `json:"id"`
		Name    string `json:"name"`
		Sprites []struct {
			ID uint64 `json:"id"`
		} `json:"sprites"`
	}
	if err := json.Unmarshal(out.Bytes(), &objects); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, out.String())
	}

	if len(objects) != 2 {
		t.Fatalf("got %d objects, want 2", len(objects))
	}
	if objects[0].ID != 100 || objects[0].Name != "basket" {
		t.Fatalf("first object = %+v, want id=100 name=basket", objects[0])
	}
	if len(objects[0].Sprites) != 1 || objects[0].Sprites[0].ID != 42 {
		t.Fatalf("first object sprites = %+v, want [42]", objects[0].Sprites)
	}
	if objects[1].ID != 300 {
		t.Fatalf("second object id = %d, want 300", objects[1].ID)
	}

	logStr := logs.String()
	if !strings.Contains(logStr, "THOL objects export running") {
		t.Fatalf("expected start log, got %q", logStr)
	}
	if !strings.Contains(logStr, "THOL objects export finished") {
		t.Fatalf("expected finish log, got %q", logStr)
	}
	if !strings.Contains(logStr, "200.txt") {
		t.Fatalf("expected skipped file in diagnostics, got %q", logStr)
	}
}

func TestExportCommandEmptyDirectoryEmitsEmptyArray(t *testing.T) {
	preserveGlobals(t)
	resetViper(t)
	captureLogs(t)
	out := captureCommandOutput(t)

	if err := exportCmd.RunE(exportCmd, []string{t.TempDir()}); err != nil {
		t.Fatalf("export: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "[]" {
		t.Fatalf("output = %q, want []", got)
	}
}

func TestExportCommandMissingDirectoryFails(t *testing.T) {
	preserveGlobals(t)
	resetViper(t)
	captureLogs(t)
	out := captureCommandOutput(t)

	dir := filepath.Join(t.TempDir(), "missing")

	if err := exportCmd.RunE(exportCmd, []string{dir}); err == nil {
		t.Fatalf("expected error for missing directory")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no JSON output, got %q", out.String())
	}
}
