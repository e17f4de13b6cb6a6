package game

// Direction is one of the four cardinal exits of a room.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in neighbor-table order.
var Directions = [...]Direction{North, South, East, West}

var directionNames = [...]string{"north", "south", "east", "west"}

// opposites pairs north with south and east with west.
var opposites = [...]Direction{South, North, West, East}

// Opposite returns the direction that leads back. Unknown directions
// are returned unchanged.
func (d Direction) Opposite() Direction {
	if d < North || d > West {
		return d
	}
	return opposites[d]
}

func (d Direction) String() string {
	if d < North || d > West {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection maps a lowercase direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return North, false
}
