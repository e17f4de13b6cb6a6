package commands

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Command binds a player-typed word to a handler and its config.
type Command struct {
	Handler     string            `json:"handler"`
	Config      map[string]string `json:"config,omitempty"`
	Category    string            `json:"category,omitempty"`
	Description string            `json:"description,omitempty"`
}

func (c *Command) Validate() error {
	el := errors.NewErrorList()

	if c.Handler == "" {
		el.Add(fmt.Errorf("command handler not set"))
	}
	for k := range c.Config {
		if k == "" {
			el.Add(fmt.Errorf("config key cannot be empty"))
		}
	}

	return el.Err()
}

// DefaultCommands is the command set of the game, keyed by the word typed.
func DefaultCommands() map[string]*Command {
	cmds := map[string]*Command{
		"heat": {
			Handler:     "temperature",
			Config:      map[string]string{"change": "heat"},
			Category:    "actions",
			Description: "Warm the room you are in. Enemies flee the heat.",
		},
		"cool": {
			Handler:     "temperature",
			Config:      map[string]string{"change": "cool"},
			Category:    "actions",
			Description: "Chill the room you are in.",
		},
		"look": {
			Handler:     "look",
			Category:    "information",
			Description: "Describe the room, its exits and who is here.",
		},
		"help": {
			Handler:     "help",
			Category:    "information",
			Description: "List the commands you can use.",
		},
		"quit": {
			Handler:     "quit",
			Category:    "system",
			Description: "Leave the game.",
		},
	}

	for _, dir := range []string{"north", "south", "east", "west"} {
		cmds[dir] = &Command{
			Handler:     "move",
			Config:      map[string]string{"direction": dir},
			Category:    "movement",
			Description: fmt.Sprintf("Walk %s into the neighboring room.", dir),
		}
	}

	return cmds
}
