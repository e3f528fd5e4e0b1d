package core

import "fmt"

// ParseDirection maps a path-expression letter to its Direction.
// Returns ErrUnknownDirection for anything but N, S, E, W.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case rune(North), rune(South), rune(East), rune(West):
		return Direction(r), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, r)
}

// Delta returns the unit step vector of d. An invalid Direction yields (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}

	return 0, 0
}

// Opposite returns the direction that walks back through the same door.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}

	return d
}

// Valid reports whether d is one of the four door directions.
func (d Direction) Valid() bool {
	dx, dy := d.Delta()

	return dx != 0 || dy != 0
}

// String returns the single-letter form ("N", "S", "E", "W").
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", byte(d))
	}

	return string(rune(d))
}

// Between returns the direction leading from a to b when the rooms share a
// door wall. ok is false for any other pair, including a == b.
func Between(a, b Coord) (d Direction, ok bool) {
	for _, d = range Directions {
		if a.Step(d) == b {
			return d, true
		}
	}

	return 0, false
}
