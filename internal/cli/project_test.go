package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/photopack/internal/project"
)

func TestProjectInitWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new-project.json")

	root := newRootCmd()
	root.SetArgs([]string{"project", "init", "my batch", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("project init returned error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("project file was not created: %v", err)
	}

	p, err := project.Load(path)
	if err != nil {
		t.Fatalf("project.Load returned error: %v", err)
	}
	if p.Name != "my batch" {
		t.Errorf("Name = %q, want %q", p.Name, "my batch")
	}
}

func TestProjectShowOnMissingFileIsAnError(t *testing.T) {
	dir := t.TempDir()

	root := newRootCmd()
	root.SetArgs([]string{"project", "show", filepath.Join(dir, "missing.json")})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for missing project file, got nil")
	}
}
