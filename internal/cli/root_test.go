package cli

import "testing"

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "rawlines [flags] [file...]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	// Check flags exist
	flags := []string{"count", "library", "out", "format", "config"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewRootCommand_HasVersionSubcommand(t *testing.T) {
	cmd := NewRootCommand()

	for _, sub := range cmd.Commands() {
		if sub.Name() == "version" {
			return
		}
	}
	t.Error("Missing version subcommand")
}
