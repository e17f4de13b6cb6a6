package game

import (
	"log/slog"
)

// Heat raises the temperature of the actor's room by one and lets every
// occupant react on behalf of player. It returns false, without any
// reactions, when the room is already hot.
func (w *World) Heat(actor, player EntityId) bool {
	return w.changeTemperature(actor, player, true)
}

// Cool lowers the temperature of the actor's room by one and lets every
// occupant react. It returns false when the room is already cold.
func (w *World) Cool(actor, player EntityId) bool {
	return w.changeTemperature(actor, player, false)
}

func (w *World) changeTemperature(actor, player EntityId, heated bool) bool {
	e := w.Entity(actor)
	if e == nil {
		return false
	}
	r := w.Room(e.Room)
	if r == nil {
		return false
	}

	if heated {
		if r.Temperature >= MaxTemperature {
			return false
		}
		r.Temperature++
	} else {
		if r.Temperature <= MinTemperature {
			return false
		}
		r.Temperature--
	}

	slog.Debug("room temperature changed", "room", r.Name, "temperature", r.Temperature, "actor", e.Name)

	// Reactions can move occupants out, so walk the list as it was when
	// the temperature changed.
	for _, id := range r.Occupants() {
		w.React(id, heated, player)
	}

	return true
}

// React applies the entity's response to its room being heated or cooled.
func (w *World) React(id EntityId, heated bool, player EntityId) {
	e := w.Entity(id)
	if e == nil {
		return
	}

	switch e.Kind {
	case KindEnemy:
		if heated {
			w.adjustRespect(player, -1)
			w.AttemptMove(id)
		} else {
			w.adjustRespect(player, 1)
		}
	case KindAlly:
		if heated {
			w.adjustRespect(player, -1)
		} else {
			w.adjustRespect(player, 1)
		}
	case KindPlayer:
	}
}

func (w *World) adjustRespect(player EntityId, delta int) {
	p := w.Entity(player)
	if p == nil {
		return
	}
	p.Respect += delta
}

// AttemptMove sends the entity toward one of the four directions chosen
// uniformly at random. It returns the chosen direction and whether the
// entity actually moved; a missing neighbor or a full room is not an error.
func (w *World) AttemptMove(id EntityId) (Direction, bool) {
	d := Directions[w.rng.IntN(len(Directions))]

	e := w.Entity(id)
	if e == nil {
		return d, false
	}
	r := w.Room(e.Room)
	if r == nil {
		return d, false
	}

	to, ok := r.Neighbor(d)
	if !ok {
		return d, false
	}
	if err := w.Move(id, to); err != nil {
		slog.Debug("wander blocked", "entity", e.Name, "direction", d, "error", err)
		return d, false
	}

	slog.Debug("entity wandered", "entity", e.Name, "from", r.Name, "direction", d)
	return d, true
}
