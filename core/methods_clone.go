// File: methods_clone.go
// Role: Deep copies and structural comparison of room graphs.
// Concurrency:
//   - Read locks only; the source graph is never mutated.

package core

// Clone returns a deep copy of g: origin, forward sequences (order kept),
// reverse index, door count and bounds.
// Complexity: O(R + D).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		origin:    g.origin,
		adjacency: make(map[Coord][]Coord, len(g.adjacency)),
		incoming:  make(map[Coord][]Coord, len(g.incoming)),
		doors:     g.doors,
		lo:        g.lo,
		hi:        g.hi,
	}
	for c, seq := range g.adjacency {
		clone.adjacency[c] = append(make([]Coord, 0, len(seq)), seq...)
	}
	for c, seq := range g.incoming {
		clone.incoming[c] = append(make([]Coord, 0, len(seq)), seq...)
	}

	return clone
}

// Equal reports whether g and other have identical entry sets and, for each
// entry, identical neighbor multisets. Neighbor order is ignored; multiplicity
// is not. A nil graph only equals another nil graph.
// Complexity: O(R + D).
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}
	// never hold both locks: a.Equal(b) and b.Equal(a) may run together
	origin, adjacency := other.snapshot()

	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.origin != origin || len(g.adjacency) != len(adjacency) {
		return false
	}
	for c, seq := range g.adjacency {
		oseq, ok := adjacency[c]
		if !ok || !sameMultiset(seq, oseq) {
			return false
		}
	}

	return true
}

// snapshot copies the origin and forward sequences under the read lock.
func (g *Graph) snapshot() (Coord, map[Coord][]Coord) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adjacency := make(map[Coord][]Coord, len(g.adjacency))
	for c, seq := range g.adjacency {
		adjacency[c] = append(make([]Coord, 0, len(seq)), seq...)
	}

	return g.origin, adjacency
}

// sameMultiset compares two coordinate slices ignoring order.
func sameMultiset(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[Coord]int, len(a))
	for _, c := range a {
		counts[c]++
	}
	for _, c := range b {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}

	return true
}
