package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-crawler/internal/game"
)

// MoveHandlerFactory creates handlers that walk the player into a neighboring room.
// Config:
//   - direction (required): north, south, east or west
type MoveHandlerFactory struct {
	pub Publisher
}

// NewMoveHandlerFactory creates a new MoveHandlerFactory.
func NewMoveHandlerFactory(pub Publisher) *MoveHandlerFactory {
	return &MoveHandlerFactory{pub: pub}
}

func (f *MoveHandlerFactory) ValidateConfig(config map[string]string) error {
	direction := config["direction"]
	if direction == "" {
		return fmt.Errorf("direction is required")
	}
	if _, ok := game.ParseDirection(direction); !ok {
		return fmt.Errorf("unknown direction %q", direction)
	}
	return nil
}

func (f *MoveHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		dir, ok := game.ParseDirection(cmdCtx.Config["direction"])
		if !ok {
			return fmt.Errorf("direction not set in config")
		}

		from := cmdCtx.Room()
		if from == nil {
			return errNoWorld
		}

		to, ok := from.Neighbor(dir)
		if !ok {
			return NewUserError("Room doesn't exist")
		}

		err := cmdCtx.World.Move(cmdCtx.Player, to)
		if errors.Is(err, game.ErrRoomFull) {
			return NewUserError("That room is full")
		}
		if err != nil {
			return fmt.Errorf("moving player %s: %w", dir, err)
		}

		if f.pub != nil {
			return f.pub.Publish([]byte(fmt.Sprintf("You walk %s to %s.", dir, cmdCtx.World.Room(to).Name)))
		}
		return nil
	}, nil
}
