package world

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is the serialised form of a map: its rooms, their exits and
// where the player starts.
type Definition struct {
	Start string     `yaml:"start"`
	Rooms []RoomSpec `yaml:"rooms"`
}

// RoomSpec describes one room and the names of the rooms it leads to.
type RoomSpec struct {
	Name        string   `yaml:"name"`
	X           int      `yaml:"x"`
	Y           int      `yaml:"y"`
	Description string   `yaml:"description"`
	Exits       []string `yaml:"exits"`
}

// ParseDefinition decodes a YAML map definition.
func ParseDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("parse map definition: %w", err)
	}
	return def, nil
}

// Build constructs and validates the Map and returns it with the start room.
// Exits are registered exactly as listed, so a definition must list both
// directions of every passage.
func (d Definition) Build() (*Map, Room, error) {
	rooms := make([]Room, 0, len(d.Rooms))
	for _, rs := range d.Rooms {
		rooms = append(rooms, NewRoom(rs.Name, At(rs.X, rs.Y), rs.Description))
	}
	m, err := NewMap(rooms...)
	if err != nil {
		return nil, Room{}, err
	}

	for _, rs := range d.Rooms {
		origin, _ := m.Room(rs.Name)
		targets := make([]Room, 0, len(rs.Exits))
		for _, name := range rs.Exits {
			t, ok := m.Room(name)
			if !ok {
				return nil, Room{}, fmt.Errorf("exit %q of %q: %w", name, rs.Name, ErrUnknownRoom)
			}
			targets = append(targets, t)
		}
		if err := m.Connect(origin, targets...); err != nil {
			return nil, Room{}, err
		}
	}
	if err := m.Validate(); err != nil {
		return nil, Room{}, err
	}

	start, ok := m.Room(d.Start)
	if !ok {
		return nil, Room{}, fmt.Errorf("start room %q: %w", d.Start, ErrUnknownRoom)
	}
	return m, start, nil
}
