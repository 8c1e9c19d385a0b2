package cli

import "testing"

func TestPresetsDescribeUnknownPresetIsAnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	root.SetArgs([]string{"presets", "describe", "not-a-real-preset"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unknown preset, got nil")
	}
}

func TestPresetsListSucceeds(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	root.SetArgs([]string{"presets", "list"})
	if err := root.Execute(); err != nil {
		t.Fatalf("presets list returned error: %v", err)
	}
}
