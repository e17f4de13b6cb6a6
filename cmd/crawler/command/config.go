package command

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

const DefaultScenePath = "game.xml"

type Config struct {
	ScenePath string `json:"scene_path"`
	Seed      uint64 `json:"seed"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.ScenePath != "" && strings.TrimSpace(c.ScenePath) == "" {
		el.Add(fmt.Errorf("scene_path cannot be blank"))
	}

	return el.Err()
}

// Scene returns the configured scene path or the default.
func (c *Config) Scene() string {
	if c.ScenePath == "" {
		return DefaultScenePath
	}
	return c.ScenePath
}
