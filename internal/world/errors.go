package world

import "errors"

// Construction errors. They are returned wrapped with the offending room
// names, so match them with errors.Is.
var (
	ErrDuplicateCoordinate = errors.New("rooms share coordinates")
	ErrDuplicateRoom       = errors.New("room name used twice")
	ErrUnknownRoom         = errors.New("room not present in map")
	ErrNotAdjacent         = errors.New("rooms not adjacent")
	ErrAsymmetric          = errors.New("connection only registered one way")
)
