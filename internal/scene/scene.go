package scene

import (
	"context"
	"log/slog"

	"github.com/pixil98/go-crawler/internal/game"
)

// Scene is the result of loading a scene file: the world and the player
// that commands drive.
type Scene struct {
	World  *game.World
	Player game.EntityId
}

// HasPlayer reports whether a player was placed.
func (s *Scene) HasPlayer() bool {
	return s.Player != game.NoEntity && s.World.Entity(s.Player) != nil
}

// Builder applies records to a world in the order they arrive.
type Builder struct {
	ctx   context.Context
	scene *Scene

	current game.RoomId
}

// NewBuilder creates a builder over a fresh world.
func NewBuilder(ctx context.Context, opts ...game.WorldOpt) *Builder {
	return &Builder{
		ctx: ctx,
		scene: &Scene{
			World:  game.NewWorld(opts...),
			Player: game.NoEntity,
		},
		current: game.NoRoom,
	}
}

// Scene returns what has been built so far.
func (b *Builder) Scene() *Scene {
	return b.scene
}

// Room creates the room and makes it the target for following entities.
func (b *Builder) Room(rec RoomRecord) {
	if err := rec.Validate(); err != nil {
		slog.WarnContext(b.ctx, "scene room", "name", rec.Name, "error", err)
	}

	b.current = b.scene.World.CreateRoom(rec.Name, rec.Description, game.ParseTemperature(rec.State), rec.Neighbors())
	slog.DebugContext(b.ctx, "room created", "name", rec.Name, "state", rec.State)
}

// Entity places the entity in the most recent room. A player record
// replaces any player seen before it.
func (b *Builder) Entity(rec EntityRecord) {
	if err := rec.Validate(); err != nil {
		slog.WarnContext(b.ctx, "scene entity", "name", rec.Name, "error", err)
	}

	kind, ok := game.ParseEntityKind(rec.Kind)
	if !ok {
		return
	}
	if b.current == game.NoRoom {
		slog.WarnContext(b.ctx, "entity declared outside a room, skipping", "kind", rec.Kind, "name", rec.Name)
		return
	}

	id, err := b.scene.World.SpawnEntity(kind, rec.Name, rec.Description, b.current)
	if err != nil {
		slog.WarnContext(b.ctx, "placing entity, skipping", "kind", rec.Kind, "name", rec.Name, "error", err)
		return
	}

	if kind == game.KindPlayer {
		if b.scene.Player != game.NoEntity {
			slog.WarnContext(b.ctx, "more than one player declared, using the last", "name", rec.Name)
		}
		b.scene.Player = id
	}
}
