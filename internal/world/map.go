// internal/world/map.go
//
// Static world graph for the adventure game.
// Responsibilities:
//   - Index rooms by coordinate (bijective; duplicate coordinates are rejected).
//   - Store directed connections between rooms.
//   - Reject connections to rooms outside the map or to rooms that are not
//     exactly one grid step away.
//
// Notes:
//   - A Map is built once at startup and only read afterwards.
//   - Connections are directional in storage. Callers register both directions,
//     either explicitly or through ConnectBoth; Validate checks the result.

package world

import (
	"fmt"
	"sort"
)

// Map is a fixed set of rooms plus their connection relation.
type Map struct {
	grid  map[Coord]Room
	names map[string]Coord
	links map[Coord]map[Coord]struct{}
}

// NewMap indexes rooms by coordinate.
// Fails with ErrDuplicateCoordinate if two rooms share coordinates and with
// ErrDuplicateRoom if two rooms share a name.
func NewMap(rooms ...Room) (*Map, error) {
	m := &Map{
		grid:  make(map[Coord]Room, len(rooms)),
		names: make(map[string]Coord, len(rooms)),
		links: make(map[Coord]map[Coord]struct{}, len(rooms)),
	}
	for _, r := range rooms {
		if prev, ok := m.grid[r.at]; ok {
			return nil, fmt.Errorf("%q and %q at %s: %w", prev.name, r.name, r.at, ErrDuplicateCoordinate)
		}
		if _, ok := m.names[r.name]; ok {
			return nil, fmt.Errorf("%q: %w", r.name, ErrDuplicateRoom)
		}
		m.grid[r.at] = r
		m.names[r.name] = r.at
	}
	return m, nil
}

// Connect registers a directed connection from origin to each target.
// Every endpoint is validated before anything is stored, so a failed call
// leaves the map unchanged.
func (m *Map) Connect(origin Room, targets ...Room) error {
	if !m.Has(origin) {
		return fmt.Errorf("%q: %w", origin.name, ErrUnknownRoom)
	}
	for _, t := range targets {
		if !m.Has(t) {
			return fmt.Errorf("%q: %w", t.name, ErrUnknownRoom)
		}
		if !Adjacent(origin.at, t.at) {
			return fmt.Errorf("%q %s -> %q %s: %w", origin.name, origin.at, t.name, t.at, ErrNotAdjacent)
		}
	}

	set, ok := m.links[origin.at]
	if !ok {
		set = make(map[Coord]struct{}, len(targets))
		m.links[origin.at] = set
	}
	for _, t := range targets {
		set[t.at] = struct{}{}
	}
	return nil
}

// ConnectBoth registers a <-> b.
func (m *Map) ConnectBoth(a, b Room) error {
	if err := m.Connect(a, b); err != nil {
		return err
	}
	return m.Connect(b, a)
}

// Validate checks the invariants of the connection relation: every edge joins
// adjacent rooms and has a matching reverse edge.
func (m *Map) Validate() error {
	for from, set := range m.links {
		for to := range set {
			a, b := m.grid[from], m.grid[to]
			if !Adjacent(from, to) {
				return fmt.Errorf("%q -> %q: %w", a.name, b.name, ErrNotAdjacent)
			}
			if _, ok := m.links[to][from]; !ok {
				return fmt.Errorf("%q -> %q: %w", a.name, b.name, ErrAsymmetric)
			}
		}
	}
	return nil
}

// Has reports whether r is one of the map's rooms.
func (m *Map) Has(r Room) bool {
	got, ok := m.grid[r.at]
	return ok && got == r
}

// RoomAt returns the room at c, if any.
func (m *Map) RoomAt(c Coord) (Room, bool) {
	r, ok := m.grid[c]
	return r, ok
}

// Room looks a room up by name.
func (m *Map) Room(name string) (Room, bool) {
	c, ok := m.names[name]
	if !ok {
		return Room{}, false
	}
	return m.grid[c], true
}

// Connected reports whether a move from -> to is registered.
func (m *Map) Connected(from, to Room) bool {
	if !m.Has(from) || !m.Has(to) {
		return false
	}
	_, ok := m.links[from.at][to.at]
	return ok
}

// Neighbours returns the rooms reachable from r in one move, sorted by coordinate.
func (m *Map) Neighbours(r Room) []Room {
	if !m.Has(r) {
		return nil
	}
	out := make([]Room, 0, len(m.links[r.at]))
	for c := range m.links[r.at] {
		out = append(out, m.grid[c])
	}
	sortRooms(out)
	return out
}

// Rooms returns every room, sorted by coordinate (Y, then X).
func (m *Map) Rooms() []Room {
	out := make([]Room, 0, len(m.grid))
	for _, r := range m.grid {
		out = append(out, r)
	}
	sortRooms(out)
	return out
}

// Len is the number of rooms.
func (m *Map) Len() int { return len(m.grid) }

func sortRooms(rs []Room) {
	sort.Slice(rs, func(i, j int) bool {
		a, b := rs[i].at, rs[j].at
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}
