package commands

import (
	"context"

	"github.com/pixil98/go-crawler/internal/display"
	"github.com/pixil98/go-crawler/internal/game"
)

var lookTemplate = mustParse("look", `Current Room: {{ .Name }}
Description: {{ .Description }}
State: {{ .State }} ({{ .Temperature }})
Current Respect: {{ .Respect }}
{{ range .Exits }}
{{ .Direction }}: {{ .Room }}
{{- end }}

Creatures: {{ .Creatures | join ", " | default "none" }}`)

type lookExit struct {
	Direction string
	Room      string
}

type lookData struct {
	Name        string
	Description string
	State       string
	Temperature int
	Respect     int
	Exits       []lookExit
	Creatures   []string
}

// LookHandlerFactory creates handlers that describe the player's room.
type LookHandlerFactory struct {
	pub Publisher
}

// NewLookHandlerFactory creates a new LookHandlerFactory.
func NewLookHandlerFactory(pub Publisher) *LookHandlerFactory {
	return &LookHandlerFactory{pub: pub}
}

func (f *LookHandlerFactory) ValidateConfig(config map[string]string) error {
	return nil
}

func (f *LookHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		room := cmdCtx.Room()
		if room == nil {
			return errNoWorld
		}

		out, err := executeTemplate(lookTemplate, describeRoom(cmdCtx.World, room, cmdCtx.Actor()))
		if err != nil {
			return err
		}

		if f.pub != nil {
			return f.pub.Publish([]byte(out))
		}
		return nil
	}, nil
}

// describeRoom only reads from the world.
func describeRoom(w *game.World, room *game.Room, viewer *game.Entity) lookData {
	data := lookData{
		Name:        room.Name,
		Description: display.Wrap(room.Description),
		State:       room.Temperature.String(),
		Temperature: int(room.Temperature),
		Respect:     viewer.Respect,
	}

	for _, d := range game.Directions {
		if id, ok := room.Neighbor(d); ok {
			data.Exits = append(data.Exits, lookExit{
				Direction: display.Title(d.String()),
				Room:      w.Room(id).Name,
			})
		}
	}

	for _, id := range room.Occupants() {
		e := w.Entity(id)
		if e.IsPlayer() {
			continue
		}
		data.Creatures = append(data.Creatures, e.String())
	}

	return data
}
