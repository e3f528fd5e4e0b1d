// Package core: Graph method implementations
//
// Mutation (AddDoor) takes the write lock; every query takes the read lock
// and returns copies, so callers never alias the graph's internal slices.

package core

import (
	"fmt"
	"sort"
)

// AddDoor records one door traversal from -> to: "to" is appended to the
// forward sequence of "from" (creating the entry if absent) and "from" is
// appended to the reverse index of "to". Parallel doors are kept.
//
// Returns ErrNilGraph on a nil receiver and ErrNotAdjacent if the rooms are
// not exactly one step apart.
// Complexity: O(1) amortized.
func (g *Graph) AddDoor(from, to Coord) error {
	if g == nil {
		return ErrNilGraph
	}
	if _, ok := Between(from, to); !ok {
		return fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, from, to)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[from] = append(g.adjacency[from], to)
	g.incoming[to] = append(g.incoming[to], from)
	g.doors++
	g.grow(from)
	g.grow(to)

	return nil
}

// grow widens the bounding box to include c. Caller holds the write lock.
func (g *Graph) grow(c Coord) {
	g.lo.X = min(g.lo.X, c.X)
	g.lo.Y = min(g.lo.Y, c.Y)
	g.hi.X = max(g.hi.X, c.X)
	g.hi.Y = max(g.hi.Y, c.Y)
}

// Neighbors returns a copy of the forward sequence recorded for c, in the
// order the doors were added. ok is false when c has no entry, which happens
// for rooms only ever reached as a destination of a directed door.
// Complexity: O(deg(c)).
func (g *Graph) Neighbors(c Coord) (nbrs []Coord, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seq, ok := g.adjacency[c]
	if !ok {
		return nil, false
	}
	nbrs = make([]Coord, len(seq))
	copy(nbrs, seq)

	return nbrs, true
}

// Incoming returns a copy of the rooms that recorded a door into c.
// Complexity: O(indeg(c)).
func (g *Graph) Incoming(c Coord) []Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seq := g.incoming[c]
	out := make([]Coord, len(seq))
	copy(out, seq)

	return out
}

// HasRoom reports whether c has an entry in the graph.
// Complexity: O(1).
func (g *Graph) HasRoom(c Coord) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[c]

	return ok
}

// Origin returns the room the graph was created with.
func (g *Graph) Origin() Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.origin
}

// Rooms returns every room that has an entry, sorted row by row.
// Complexity: O(R log R).
func (g *Graph) Rooms() []Coord {
	g.mu.RLock()
	rooms := make([]Coord, 0, len(g.adjacency))
	for c := range g.adjacency {
		rooms = append(rooms, c)
	}
	g.mu.RUnlock()

	SortCoords(rooms)

	return rooms
}

// RoomCount returns the number of rooms that have an entry.
func (g *Graph) RoomCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// DoorCount returns the number of recorded door traversals, i.e. the sum of
// all forward sequence lengths (parallel doors counted individually).
func (g *Graph) DoorCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.doors
}

// Bounds returns the corners of the smallest box holding every room the graph
// has referenced, either as an entry or as a neighbor.
func (g *Graph) Bounds() (lo, hi Coord) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.lo, g.hi
}

// SortCoords sorts cs in place row by row (Y first, then X).
func SortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].less(cs[j]) })
}
