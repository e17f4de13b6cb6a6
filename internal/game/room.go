package game

import (
	"slices"
)

// Temperature is the heat level of a room, from TempCold to TempHot.
type Temperature int

const (
	TempCold Temperature = iota + 1
	TempCool
	TempWarm
	TempHot
)

const (
	MinTemperature = TempCold
	MaxTemperature = TempHot
)

// ParseTemperature maps a scene state label to a Temperature.
// Unknown and empty labels are cold.
func ParseTemperature(label string) Temperature {
	switch label {
	case "hot":
		return TempHot
	case "warm":
		return TempWarm
	case "cool":
		return TempCool
	default:
		return TempCold
	}
}

func (t Temperature) String() string {
	switch t {
	case TempHot:
		return "hot"
	case TempWarm:
		return "warm"
	case TempCool:
		return "cool"
	default:
		return "cold"
	}
}

// RoomId indexes a room in its world. Ids are stable for the life of the world.
type RoomId int

// NoRoom marks an empty neighbor slot or an unplaced entity.
const NoRoom RoomId = -1

// MaxOccupants is the occupancy guard checked before each insert. The check
// is inclusive, so a room can end up holding MaxOccupants+1 entities.
const MaxOccupants = 10

// Room is a node of the world graph.
type Room struct {
	Id          RoomId
	Name        string
	Description string
	Temperature Temperature

	neighbors [len(Directions)]RoomId
	occupants []EntityId // sorted by entity name
}

func newRoom(id RoomId, name, description string, temp Temperature) *Room {
	r := &Room{
		Id:          id,
		Name:        name,
		Description: description,
		Temperature: temp,
	}
	for i := range r.neighbors {
		r.neighbors[i] = NoRoom
	}
	return r
}

// Neighbor returns the room reached by going d, if there is one.
func (r *Room) Neighbor(d Direction) (RoomId, bool) {
	if d < North || d > West {
		return NoRoom, false
	}
	id := r.neighbors[d]
	return id, id != NoRoom
}

// Occupants returns the entities in the room, ordered by name.
func (r *Room) Occupants() []EntityId {
	return slices.Clone(r.occupants)
}

// OccupantCount returns the number of entities in the room.
func (r *Room) OccupantCount() int {
	return len(r.occupants)
}

// HasOccupant reports whether the entity is in the room.
func (r *Room) HasOccupant(id EntityId) bool {
	return slices.Contains(r.occupants, id)
}

func (r *Room) String() string {
	return r.Name
}

func (r *Room) canAdmit() bool {
	return len(r.occupants) <= MaxOccupants
}

func (r *Room) removeOccupant(id EntityId) bool {
	i := slices.Index(r.occupants, id)
	if i < 0 {
		return false
	}
	r.occupants = slices.Delete(r.occupants, i, i+1)
	return true
}
