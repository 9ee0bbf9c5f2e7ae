package world

import "fmt"

// Coord is an integer grid position. X grows to the right, Y grows forward.
type Coord struct{ X, Y int }

// At is a convenience constructor for Coord.
func At(x, y int) Coord { return Coord{X: x, Y: y} }

// Add returns c shifted by offset.
func (c Coord) Add(offset Coord) Coord {
	c.X += offset.X
	c.Y += offset.Y
	return c
}

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Adjacent reports whether a and b are exactly one grid step apart.
func Adjacent(a, b Coord) bool { return Manhattan(a, b) == 1 }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
