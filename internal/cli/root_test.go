package cli

import "testing"

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2026-01-01" {
		t.Errorf("date = %q, want %q", date, "2026-01-01")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"pack", "presets", "project", "import", "completion"} {
		if !names[want] {
			t.Errorf("root command missing subcommand %q", want)
		}
	}
}
