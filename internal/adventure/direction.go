package adventure

import "github.com/robalobadob/text-games/apps/go-cli/internal/world"

// Direction is one of the four moves a player can make.
type Direction int

const (
	Forward Direction = iota
	Back
	Left
	Right
)

var directionNames = [...]string{
	Forward: "forward",
	Back:    "back",
	Left:    "left",
	Right:   "right",
}

func (d Direction) String() string {
	if d < Forward || d > Right {
		return "unknown"
	}
	return directionNames[d]
}

// Offset is the unit step for d: forward is y+1, back y-1, left x-1, right x+1.
func (d Direction) Offset() world.Coord {
	switch d {
	case Forward:
		return world.At(0, 1)
	case Back:
		return world.At(0, -1)
	case Left:
		return world.At(-1, 0)
	case Right:
		return world.At(1, 0)
	}
	return world.Coord{}
}
