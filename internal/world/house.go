package world

import "github.com/robalobadob/text-games/apps/go-cli/assets"

// House builds the embedded eight-room house map and returns it with the
// entrance (the front garden).
func House() (*Map, Room, error) {
	data, err := assets.HouseMap()
	if err != nil {
		return nil, Room{}, err
	}
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, Room{}, err
	}
	return def.Build()
}
