package cmd

import (
	"testing"
)

func TestGazeCommand_Flags(t *testing.T) {
	flags := gazeCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"follow", "bool"},
		{"interval", "duration"},
		{"pretty", "bool"},
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
