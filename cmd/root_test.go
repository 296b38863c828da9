package cmd

import (
	"testing"
)

func TestRootCommand_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"format", "string"},
		{"connect-timeout", "duration"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestRootCommand_RegisteredCommands(t *testing.T) {
	want := []string{"status", "gaze", "profile", "calibrate", "capture", "watch", "mcp"}
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered on root", name)
		}
	}
}

func TestRootCommand_FormatValidation(t *testing.T) {
	if err := rootCmd.PersistentFlags().Set("format", "yaml"); err != nil {
		t.Fatal(err)
	}
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Errorf("yaml format rejected: %v", err)
	}

	if err := rootCmd.PersistentFlags().Set("format", "xml"); err != nil {
		t.Fatal(err)
	}
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err == nil {
		t.Error("unsupported format accepted")
	}
	rootCmd.PersistentFlags().Set("format", "yaml")
}
