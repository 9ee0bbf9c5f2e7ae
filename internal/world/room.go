package world

// Room is a named, described location at a fixed coordinate.
// Rooms are values; two Rooms are the same room only if every field matches.
type Room struct {
	name        string
	at          Coord
	description string
}

// NewRoom constructs a Room.
func NewRoom(name string, at Coord, description string) Room {
	return Room{name: name, at: at, description: description}
}

func (r Room) Name() string        { return r.name }
func (r Room) Coord() Coord        { return r.at }
func (r Room) Description() string { return r.description }
