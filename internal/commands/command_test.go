package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestCommand_Validate(t *testing.T) {
	tests := map[string]struct {
		cmd    Command
		expErr string
	}{
		"empty handler": {
			cmd:    Command{},
			expErr: "command handler not set",
		},
		"valid command with no config": {
			cmd: Command{Handler: "quit"},
		},
		"empty config key": {
			cmd: Command{
				Handler: "move",
				Config:  map[string]string{"": "north"},
			},
			expErr: "config key cannot be empty",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestDefaultCommands(t *testing.T) {
	cmds := DefaultCommands()

	for _, name := range []string{"north", "south", "east", "west", "heat", "cool", "look", "help", "quit"} {
		if _, ok := cmds[name]; !ok {
			t.Errorf("missing command %q", name)
		}
	}
	testutil.AssertEqual(t, "command count", len(cmds), 9)
	testutil.AssertEqual(t, "north direction", cmds["north"].Config["direction"], "north")
	testutil.AssertEqual(t, "heat change", cmds["heat"].Config["change"], "heat")
}
