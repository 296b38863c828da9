package cmd

import (
	"testing"
)

func TestProfileCommand_Subcommands(t *testing.T) {
	want := []string{"list", "create", "rename", "delete", "use", "current", "path"}
	registered := map[string]bool{}
	for _, c := range profileCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("subcommand %q not registered on profile", name)
		}
	}
}

func TestProfileCommand_ArgValidation(t *testing.T) {
	tests := []struct {
		cmdName string
		args    []string
		wantErr bool
	}{
		{"create", []string{}, true},
		{"create", []string{"alice"}, false},
		{"rename", []string{"alice"}, true},
		{"rename", []string{"alice", "bob"}, false},
		{"use", []string{"alice", "bob"}, true},
	}
	byName := map[string]interface{ ValidateArgs([]string) error }{}
	for _, c := range profileCmd.Commands() {
		byName[c.Name()] = c
	}
	for _, tt := range tests {
		c, ok := byName[tt.cmdName]
		if !ok {
			t.Fatalf("subcommand %q missing", tt.cmdName)
		}
		err := c.ValidateArgs(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s %v: err = %v, wantErr %v", tt.cmdName, tt.args, err, tt.wantErr)
		}
	}
}
