package game

import "fmt"

// EntityKind tags the variant of an entity.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindAlly
	KindEnemy
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindAlly:
		return "Ally"
	case KindEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// ParseEntityKind maps a scene element tag to an EntityKind.
func ParseEntityKind(tag string) (EntityKind, bool) {
	switch tag {
	case "player":
		return KindPlayer, true
	case "ally":
		return KindAlly, true
	case "enemy":
		return KindEnemy, true
	default:
		return KindEnemy, false
	}
}

// EntityId indexes an entity in its world.
type EntityId int

// NoEntity is the zero value for a missing entity reference.
const NoEntity EntityId = -1

// InitialRespect is the respect a player starts with.
const InitialRespect = 5

// Entity is an actor placed in exactly one room. Names need not be unique.
type Entity struct {
	Id          EntityId
	Kind        EntityKind
	Name        string
	Description string

	// Room is where the entity currently stands. The room's occupant list
	// is the authority on membership; the two are only changed together.
	Room RoomId

	// Respect is only tracked for players.
	Respect int
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Kind)
}

// IsPlayer reports whether the entity is the player variant.
func (e *Entity) IsPlayer() bool {
	return e.Kind == KindPlayer
}
