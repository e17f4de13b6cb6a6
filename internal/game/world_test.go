package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func newTestWorld() *World {
	return NewWorld(WithRand(rand.New(rand.NewPCG(1, 2))))
}

func neighbors(n, s, e, w string) [4]string {
	return [4]string{n, s, e, w}
}

func occupantNames(w *World, r *Room) []string {
	var names []string
	for _, id := range r.Occupants() {
		names = append(names, w.Entity(id).Name)
	}
	return names
}

func TestDirection_Opposite(t *testing.T) {
	tests := map[string]struct {
		dir Direction
		exp Direction
	}{
		"north":   {dir: North, exp: South},
		"south":   {dir: South, exp: North},
		"east":    {dir: East, exp: West},
		"west":    {dir: West, exp: East},
		"unknown": {dir: Direction(7), exp: Direction(7)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "opposite", tt.dir.Opposite(), tt.exp)
			testutil.AssertEqual(t, "round trip", tt.dir.Opposite().Opposite(), tt.dir)
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   Direction
		expOk bool
	}{
		"north":      {input: "north", exp: North, expOk: true},
		"west":       {input: "west", exp: West, expOk: true},
		"uppercase":  {input: "North", expOk: false},
		"not a word": {input: "up", expOk: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, ok := ParseDirection(tt.input)
			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			if tt.expOk {
				testutil.AssertEqual(t, "direction", d, tt.exp)
				testutil.AssertEqual(t, "string", d.String(), tt.input)
			}
		})
	}
}

func TestParseTemperature(t *testing.T) {
	tests := map[string]struct {
		label string
		exp   Temperature
	}{
		"hot":     {label: "hot", exp: 4},
		"warm":    {label: "warm", exp: 3},
		"cool":    {label: "cool", exp: 2},
		"cold":    {label: "cold", exp: 1},
		"empty":   {label: "", exp: 1},
		"unknown": {label: "lukewarm", exp: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "temperature", ParseTemperature(tt.label), tt.exp)
		})
	}
}

func TestWorld_CreateRoom_LinksBothWays(t *testing.T) {
	w := newTestWorld()
	hall := w.CreateRoom("Hall", "A long hall.", TempCold, neighbors("", "", "", ""))
	den := w.CreateRoom("Den", "A hot den.", TempHot, neighbors("Hall", "", "", ""))

	got, ok := w.Room(hall).Neighbor(South)
	testutil.AssertEqual(t, "hall has south", ok, true)
	testutil.AssertEqual(t, "hall south", got, den)

	got, ok = w.Room(den).Neighbor(North)
	testutil.AssertEqual(t, "den has north", ok, true)
	testutil.AssertEqual(t, "den north", got, hall)

	for _, d := range []Direction{East, West} {
		_, ok := w.Room(hall).Neighbor(d)
		testutil.AssertEqual(t, "hall "+d.String(), ok, false)
	}
}

func TestWorld_CreateRoom_ForwardReferenceIgnored(t *testing.T) {
	w := newTestWorld()
	a := w.CreateRoom("A", "", TempCold, neighbors("B", "", "", ""))
	b := w.CreateRoom("B", "", TempCold, neighbors("", "", "", ""))

	_, ok := w.Room(a).Neighbor(North)
	testutil.AssertEqual(t, "a north", ok, false)
	_, ok = w.Room(b).Neighbor(South)
	testutil.AssertEqual(t, "b south", ok, false)
}

func TestWorld_CreateRoom_GridIsSymmetric(t *testing.T) {
	const size = 5
	w := newTestWorld()
	name := func(x, y int) string { return fmt.Sprintf("r%d-%d", x, y) }

	// Row by row, each room names the already declared rooms to its north and west.
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var n [4]string
			if y > 0 {
				n[North] = name(x, y-1)
			}
			if x > 0 {
				n[West] = name(x-1, y)
			}
			w.CreateRoom(name(x, y), "", TempCold, n)
		}
	}

	testutil.AssertEqual(t, "room count", w.RoomCount(), size*size)

	for _, a := range w.Rooms() {
		for _, d := range Directions {
			bId, ok := a.Neighbor(d)
			if !ok {
				continue
			}
			back, ok := w.Room(bId).Neighbor(d.Opposite())
			if !ok || back != a.Id {
				t.Errorf("%s %s -> %s has no way back", a.Name, d, w.Room(bId).Name)
			}
		}
	}

	corner := w.Room(mustFind(t, w, name(2, 2)))
	for _, d := range Directions {
		_, ok := corner.Neighbor(d)
		testutil.AssertEqual(t, "interior "+d.String(), ok, true)
	}
}

func mustFind(t *testing.T, w *World, name string) RoomId {
	t.Helper()
	id, ok := w.FindRoom(name)
	if !ok {
		t.Fatalf("room %q not found", name)
	}
	return id
}

func TestWorld_Rooms_SortedByName(t *testing.T) {
	w := newTestWorld()
	for _, n := range []string{"cellar", "Attic", "bath", "Zoo", "attic"} {
		w.CreateRoom(n, "", TempCold, neighbors("", "", "", ""))
	}

	var got []string
	for _, r := range w.Rooms() {
		got = append(got, r.Name)
	}
	testutil.AssertEqual(t, "order", strings.Join(got, ","), "Attic,Zoo,attic,bath,cellar")
}

func TestWorld_FindRoom_FirstMatchWins(t *testing.T) {
	w := newTestWorld()
	first := w.CreateRoom("Twin", "first", TempCold, neighbors("", "", "", ""))
	w.CreateRoom("Twin", "second", TempHot, neighbors("", "", "", ""))

	id, ok := w.FindRoom("Twin")
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "id", id, first)

	_, ok = w.FindRoom("Nowhere")
	testutil.AssertEqual(t, "missing", ok, false)
}

func TestWorld_AddEntity_KeepsOccupantsSorted(t *testing.T) {
	w := newTestWorld()
	room := w.CreateRoom("Hall", "", TempCold, neighbors("", "", "", ""))

	ids := map[string]EntityId{}
	for _, n := range []string{"rat", "Bat", "ogre", "bat", "imp"} {
		id, err := w.SpawnEntity(KindEnemy, n, "", room)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids[n] = id
	}

	testutil.AssertEqual(t, "after spawn", strings.Join(occupantNames(w, w.Room(room)), ","), "Bat,bat,imp,ogre,rat")

	w.RemoveEntity(room, ids["imp"])
	w.RemoveEntity(room, ids["Bat"])
	testutil.AssertEqual(t, "after remove", strings.Join(occupantNames(w, w.Room(room)), ","), "bat,ogre,rat")

	names := occupantNames(w, w.Room(room))
	testutil.AssertEqual(t, "sorted", slices.IsSorted(names), true)
}

func TestWorld_RemoveEntity_ByIdentity(t *testing.T) {
	w := newTestWorld()
	room := w.CreateRoom("Hall", "", TempCold, neighbors("", "", "", ""))
	a, _ := w.SpawnEntity(KindEnemy, "goblin", "first", room)
	b, _ := w.SpawnEntity(KindEnemy, "goblin", "second", room)

	testutil.AssertEqual(t, "removed", w.RemoveEntity(room, b), true)
	testutil.AssertEqual(t, "a present", w.Room(room).HasOccupant(a), true)
	testutil.AssertEqual(t, "b present", w.Room(room).HasOccupant(b), false)
	testutil.AssertEqual(t, "second remove", w.RemoveEntity(room, b), false)
}

func TestWorld_AddEntity_Capacity(t *testing.T) {
	w := newTestWorld()
	room := w.CreateRoom("Closet", "", TempCold, neighbors("", "", "", ""))

	for i := 0; i <= MaxOccupants; i++ {
		_, err := w.SpawnEntity(KindAlly, fmt.Sprintf("ally-%02d", i), "", room)
		if err != nil {
			t.Fatalf("spawn %d: unexpected error: %v", i, err)
		}
	}
	testutil.AssertEqual(t, "occupants", w.Room(room).OccupantCount(), MaxOccupants+1)

	_, err := w.SpawnEntity(KindAlly, "one-too-many", "", room)
	if !errors.Is(err, ErrRoomFull) {
		t.Errorf("expected ErrRoomFull, got %v", err)
	}
	testutil.AssertEqual(t, "entities", len(w.Entities()), MaxOccupants+1)
}

func TestWorld_AddEntity_NoDuplicates(t *testing.T) {
	w := newTestWorld()
	room := w.CreateRoom("Hall", "", TempCold, neighbors("", "", "", ""))
	id, _ := w.SpawnEntity(KindAlly, "friend", "", room)

	err := w.AddEntity(room, id)
	if !errors.Is(err, ErrAlreadyPresent) {
		t.Errorf("expected ErrAlreadyPresent, got %v", err)
	}
	testutil.AssertEqual(t, "occupants", w.Room(room).OccupantCount(), 1)
}

func TestWorld_Move(t *testing.T) {
	tests := map[string]struct {
		fillDest int
		expErr   error
		expIn    string
	}{
		"moves to empty room": {
			expIn: "Y",
		},
		"destination full": {
			fillDest: MaxOccupants + 1,
			expErr:   ErrRoomFull,
			expIn:    "X",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()
			x := w.CreateRoom("X", "", TempCold, neighbors("", "", "", ""))
			y := w.CreateRoom("Y", "", TempCold, neighbors("", "", "", ""))
			for i := 0; i < tt.fillDest; i++ {
				if _, err := w.SpawnEntity(KindAlly, fmt.Sprintf("f%d", i), "", y); err != nil {
					t.Fatalf("filling: %v", err)
				}
			}
			id, _ := w.SpawnEntity(KindEnemy, "wanderer", "", x)

			err := w.Move(id, y)
			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Errorf("expected %v, got %v", tt.expErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			in := mustFind(t, w, tt.expIn)
			other := x
			if in == x {
				other = y
			}

			testutil.AssertEqual(t, "room ref", w.Entity(id).Room, in)
			testutil.AssertEqual(t, "in destination", w.Room(in).HasOccupant(id), true)
			testutil.AssertEqual(t, "in other", w.Room(other).HasOccupant(id), false)

			count := 0
			for _, o := range w.Room(in).Occupants() {
				if o == id {
					count++
				}
			}
			testutil.AssertEqual(t, "times present", count, 1)
		})
	}
}

func TestWorld_Move_SameRoom(t *testing.T) {
	w := newTestWorld()
	x := w.CreateRoom("X", "", TempCold, neighbors("", "", "", ""))
	id, _ := w.SpawnEntity(KindPlayer, "hero", "", x)

	if err := w.Move(id, x); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "occupants", w.Room(x).OccupantCount(), 1)
}

func TestWorld_SpawnEntity_PlayerRespect(t *testing.T) {
	w := newTestWorld()
	x := w.CreateRoom("X", "", TempCold, neighbors("", "", "", ""))
	p, _ := w.SpawnEntity(KindPlayer, "hero", "", x)
	e, _ := w.SpawnEntity(KindEnemy, "orc", "", x)

	testutil.AssertEqual(t, "player respect", w.Entity(p).Respect, InitialRespect)
	testutil.AssertEqual(t, "enemy respect", w.Entity(e).Respect, 0)
	testutil.AssertEqual(t, "string", w.Entity(e).String(), "orc (Enemy)")
}

func TestWorld_SpawnEntity_UnknownRoom(t *testing.T) {
	w := newTestWorld()
	_, err := w.SpawnEntity(KindAlly, "ghost", "", RoomId(3))
	if !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("expected ErrUnknownRoom, got %v", err)
	}
}
