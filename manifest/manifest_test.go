package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "intcode.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[program]
path = "diagnostics.ic"

[run]
inputs = [1, -2, 3]
trace = true
dump-range = "0:16"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Program.Path != "diagnostics.ic" {
		t.Errorf("Program.Path = %q", m.Program.Path)
	}
	if len(m.Run.Inputs) != 3 || m.Run.Inputs[1] != -2 {
		t.Errorf("Run.Inputs = %v", m.Run.Inputs)
	}
	if !m.Run.Trace {
		t.Error("Run.Trace = false, want true")
	}
	if m.Run.DumpRange != "0:16" {
		t.Errorf("Run.DumpRange = %q", m.Run.DumpRange)
	}
	if want := filepath.Join(dir, "diagnostics.ic"); m.ProgramPath() != want {
		t.Errorf("ProgramPath() = %q, want %q", m.ProgramPath(), want)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load on empty dir succeeded, want error")
	}
}

func TestLoadInvalidToml(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[run\ninputs = nope")
	if _, err := Load(dir); err == nil {
		t.Error("Load of invalid toml succeeded, want error")
	}
}

func TestFindAndLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `[run]`+"\n"+`trace = false`)

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	m, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil, want manifest from ancestor dir")
	}
}

func TestFindAndLoadNotFound(t *testing.T) {
	m, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m != nil {
		t.Errorf("FindAndLoad = %+v, want nil", m)
	}
}
