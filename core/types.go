// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Coord, Direction, Graph declarations, sentinel errors, constructor.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core operations.
var (
	// ErrUnknownDirection indicates a rune that is not one of N, S, E, W.
	ErrUnknownDirection = errors.New("core: unknown direction")

	// ErrNotAdjacent indicates a door between rooms that are not one step apart.
	ErrNotAdjacent = errors.New("core: rooms are not adjacent")

	// ErrNilGraph indicates a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Coord identifies a room on the unbounded grid.
// Equality and hashing are by value, so Coord is safe to use as a map key.
type Coord struct {
	X, Y int
}

// Origin is the room every walk starts from.
var Origin = Coord{}

// Step returns the room one door away from c in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()

	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String renders the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// less orders rooms row by row (Y first, then X).
func (c Coord) less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}

	return c.X < o.X
}

// Direction is a door direction. Its underlying value is the letter used in
// path expressions, so Direction('N') == North.
type Direction byte

const (
	// North moves one room up: (0, -1).
	North Direction = 'N'
	// South moves one room down: (0, +1).
	South Direction = 'S'
	// East moves one room right: (+1, 0).
	East Direction = 'E'
	// West moves one room left: (-1, 0).
	West Direction = 'W'
)

// Directions lists the four directions in N, E, S, W order
// (the same clockwise order gridgraph used for Conn4 offsets).
var Directions = [4]Direction{North, East, South, West}

// Graph is the sparse room multigraph produced by compiling a path expression.
//
// adjacency[from] holds the rooms reachable through one door from "from", in
// the order the doors were recorded. incoming[to] is the reverse index used by
// undirected traversals over a graph that only recorded forward doors.
// lo and hi track the bounding box of every room referenced so far.
type Graph struct {
	mu sync.RWMutex // guards everything below

	origin    Coord
	adjacency map[Coord][]Coord
	incoming  map[Coord][]Coord
	doors     int
	lo, hi    Coord
}

// NewGraph creates a Graph holding one room, origin, with no doors.
// The origin always has an entry, even if no door ever leaves it.
// Complexity: O(1).
func NewGraph(origin Coord) *Graph {
	return &Graph{
		origin:    origin,
		adjacency: map[Coord][]Coord{origin: {}},
		incoming:  make(map[Coord][]Coord),
		lo:        origin,
		hi:        origin,
	}
}
