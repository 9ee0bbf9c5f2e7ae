// internal/adventure/player.go
//
// Player position tracking for the adventure.
// A Player always stands in one of its map's rooms. Its position changes only
// through Move, and only when the target room exists and is connected to the
// current one.

package adventure

import (
	"fmt"

	"github.com/robalobadob/text-games/apps/go-cli/internal/world"
)

// Player is the single explorer of a Map.
type Player struct {
	at      world.Coord
	m       *world.Map
	visited map[world.Coord]struct{}
}

// NewPlayer places a player in start, which must belong to m.
func NewPlayer(m *world.Map, start world.Room) (*Player, error) {
	if !m.Has(start) {
		return nil, fmt.Errorf("start %q: %w", start.Name(), world.ErrUnknownRoom)
	}
	return &Player{
		at:      start.Coord(),
		m:       m,
		visited: map[world.Coord]struct{}{start.Coord(): {}},
	}, nil
}

// Room returns the room the player is in.
func (p *Player) Room() world.Room {
	r, _ := p.m.RoomAt(p.at)
	return r
}

// Coord returns the player's position.
func (p *Player) Coord() world.Coord { return p.at }

// Move tries to step one unit in d. It succeeds only if a room exists at the
// target coordinate and the current room connects to it. On success it
// returns the new room and true; otherwise the position is unchanged and it
// returns the current room and false.
func (p *Player) Move(d Direction) (world.Room, bool) {
	cur := p.Room()
	next, ok := p.m.RoomAt(p.at.Add(d.Offset()))
	if !ok || !p.m.Connected(cur, next) {
		return cur, false
	}
	p.at = next.Coord()
	p.visited[p.at] = struct{}{}
	return next, true
}

// Visited is the number of distinct rooms the player has stood in.
func (p *Player) Visited() int { return len(p.visited) }
