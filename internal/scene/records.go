package scene

import (
	"fmt"

	"github.com/pixil98/go-crawler/internal/game"
	"github.com/pixil98/go-errors"
)

// RoomRecord declares a room. Neighbor fields name rooms declared earlier.
type RoomRecord struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	State       string `yaml:"state" json:"state"`
	North       string `yaml:"north,omitempty" json:"north,omitempty"`
	South       string `yaml:"south,omitempty" json:"south,omitempty"`
	East        string `yaml:"east,omitempty" json:"east,omitempty"`
	West        string `yaml:"west,omitempty" json:"west,omitempty"`
}

// Neighbors returns the neighbor names indexed by game.Direction.
func (r *RoomRecord) Neighbors() [len(game.Directions)]string {
	return [len(game.Directions)]string{r.North, r.South, r.East, r.West}
}

// Validate reports authoring problems. They are logged, never fatal.
func (r *RoomRecord) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	switch r.State {
	case "hot", "warm", "cool", "cold":
	case "":
		el.Add(fmt.Errorf("room %q: state is missing, defaulting to cold", r.Name))
	default:
		el.Add(fmt.Errorf("room %q: unknown state %q, defaulting to cold", r.Name, r.State))
	}
	for _, d := range game.Directions {
		if r.Neighbors()[d] == r.Name && r.Name != "" {
			el.Add(fmt.Errorf("room %q: %s exit points at itself", r.Name, d))
		}
	}

	return el.Err()
}

// EntityRecord declares an entity inside the most recently declared room.
type EntityRecord struct {
	Kind        string `yaml:"kind" json:"kind"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Validate reports authoring problems. They are logged, never fatal.
func (e *EntityRecord) Validate() error {
	el := errors.NewErrorList()

	if _, ok := game.ParseEntityKind(e.Kind); !ok {
		el.Add(fmt.Errorf("unknown entity kind %q", e.Kind))
	}
	if e.Name == "" {
		el.Add(fmt.Errorf("%s name is required", e.Kind))
	}

	return el.Err()
}

// RecordHandler receives records in document order.
type RecordHandler interface {
	Room(RoomRecord)
	Entity(EntityRecord)
}
