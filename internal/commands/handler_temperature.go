package commands

import (
	"context"
	"fmt"
)

// TemperatureHandlerFactory creates handlers that heat or cool the player's room.
// Config:
//   - change (required): "heat" or "cool"
//
// Changing the temperature past hot or cold does nothing and says nothing.
type TemperatureHandlerFactory struct {
	pub Publisher
}

func NewTemperatureHandlerFactory(pub Publisher) *TemperatureHandlerFactory {
	return &TemperatureHandlerFactory{pub: pub}
}

func (f *TemperatureHandlerFactory) ValidateConfig(config map[string]string) error {
	switch config["change"] {
	case "heat", "cool":
		return nil
	default:
		return fmt.Errorf("change must be heat or cool")
	}
}

func (f *TemperatureHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		room := cmdCtx.Room()
		if room == nil {
			return errNoWorld
		}

		var changed bool
		if cmdCtx.Config["change"] == "heat" {
			changed = cmdCtx.World.Heat(cmdCtx.Player, cmdCtx.Player)
		} else {
			changed = cmdCtx.World.Cool(cmdCtx.Player, cmdCtx.Player)
		}

		if !changed || f.pub == nil {
			return nil
		}
		return f.pub.Publish([]byte(fmt.Sprintf("The room is now %s.", room.Temperature)))
	}, nil
}
