package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
)

// World is the single owner of every room and entity. Rooms and entities
// reference each other by id only.
type World struct {
	rooms    []*Room   // creation order, indexed by RoomId
	registry []*Room   // sorted by name
	entities []*Entity // indexed by EntityId

	rng *rand.Rand
}

// NewWorld creates an empty world.
func NewWorld(opts ...WorldOpt) *World {
	w := &World{}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		seed := uint64(time.Now().UnixNano())
		w.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return w
}

// CreateRoom adds a room and links it to any already existing neighbors
// named in neighbors, which is indexed by Direction. Names that do not
// resolve yet are ignored.
func (w *World) CreateRoom(name, description string, temp Temperature, neighbors [len(Directions)]string) RoomId {
	id := RoomId(len(w.rooms))
	r := newRoom(id, name, description, temp)
	w.rooms = append(w.rooms, r)

	for _, d := range Directions {
		if neighbors[d] == "" {
			continue
		}
		nid, ok := w.FindRoom(neighbors[d])
		if !ok {
			slog.Debug("neighbor not declared yet", "room", name, "direction", d, "neighbor", neighbors[d])
			continue
		}
		w.link(id, d, nid)
	}

	w.registry = append(w.registry, r)
	slices.SortStableFunc(w.registry, func(a, b *Room) int {
		return strings.Compare(a.Name, b.Name)
	})

	return id
}

// link connects a to b going d, and b to a going the opposite way.
func (w *World) link(a RoomId, d Direction, b RoomId) {
	w.rooms[a].neighbors[d] = b
	w.rooms[b].neighbors[d.Opposite()] = a
}

// FindRoom returns the first room in name order called name. Duplicate
// names are allowed; later rooms with the same name are shadowed.
func (w *World) FindRoom(name string) (RoomId, bool) {
	for _, r := range w.registry {
		if r.Name == name {
			return r.Id, true
		}
	}
	return NoRoom, false
}

// Room returns the room with the given id, or nil.
func (w *World) Room(id RoomId) *Room {
	if id < 0 || int(id) >= len(w.rooms) {
		return nil
	}
	return w.rooms[id]
}

// Rooms returns every room ordered by name.
func (w *World) Rooms() []*Room {
	return slices.Clone(w.registry)
}

// RoomCount returns the number of rooms.
func (w *World) RoomCount() int {
	return len(w.rooms)
}

// Entity returns the entity with the given id, or nil.
func (w *World) Entity(id EntityId) *Entity {
	if id < 0 || int(id) >= len(w.entities) {
		return nil
	}
	return w.entities[id]
}

// Entities returns every entity in creation order.
func (w *World) Entities() []*Entity {
	return slices.Clone(w.entities)
}

// SpawnEntity creates an entity inside room. Nothing is created when the
// room cannot take it.
func (w *World) SpawnEntity(kind EntityKind, name, description string, room RoomId) (EntityId, error) {
	r := w.Room(room)
	if r == nil {
		return NoEntity, fmt.Errorf("spawning %q: %w", name, ErrUnknownRoom)
	}
	if !r.canAdmit() {
		return NoEntity, fmt.Errorf("spawning %q in %q: %w", name, r.Name, ErrRoomFull)
	}

	e := &Entity{
		Id:          EntityId(len(w.entities)),
		Kind:        kind,
		Name:        name,
		Description: description,
		Room:        NoRoom,
	}
	if kind == KindPlayer {
		e.Respect = InitialRespect
	}
	w.entities = append(w.entities, e)

	if err := w.AddEntity(room, e.Id); err != nil {
		w.entities = w.entities[:len(w.entities)-1]
		return NoEntity, err
	}
	e.Room = room

	return e.Id, nil
}

// AddEntity inserts the entity into the room's occupant list and keeps the
// list ordered by name. It does not touch the entity's own room reference;
// use Move to relocate an entity.
func (w *World) AddEntity(room RoomId, id EntityId) error {
	r := w.Room(room)
	if r == nil {
		return ErrUnknownRoom
	}
	if w.Entity(id) == nil {
		return ErrUnknownEntity
	}
	if r.HasOccupant(id) {
		return ErrAlreadyPresent
	}
	if !r.canAdmit() {
		return ErrRoomFull
	}

	r.occupants = append(r.occupants, id)
	slices.SortStableFunc(r.occupants, func(a, b EntityId) int {
		return strings.Compare(w.entities[a].Name, w.entities[b].Name)
	})
	return nil
}

// RemoveEntity takes the entity out of the room's occupant list by identity.
func (w *World) RemoveEntity(room RoomId, id EntityId) bool {
	r := w.Room(room)
	if r == nil {
		return false
	}
	return r.removeOccupant(id)
}

// Move relocates the entity to the destination room. Either the entity ends
// up only in to, or nothing changes.
func (w *World) Move(id EntityId, to RoomId) error {
	e := w.Entity(id)
	if e == nil {
		return ErrUnknownEntity
	}
	if w.Room(to) == nil {
		return ErrUnknownRoom
	}
	if e.Room == to {
		return nil
	}

	if err := w.AddEntity(to, id); err != nil {
		return fmt.Errorf("moving %q: %w", e.Name, err)
	}
	w.RemoveEntity(e.Room, id)
	e.Room = to

	return nil
}
