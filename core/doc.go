// Package core defines the room coordinates, door directions, and the sparse
// room graph shared by the compiler (pathexpr) and the explorer (bfs).
//
// What
//
//   - Coord is a value-typed (X, Y) pair on an unbounded grid; it is used
//     directly as a map key. The origin room is Coord{0, 0}.
//   - Direction is one of the four door directions N, S, E, W, each carrying a
//     unit step vector (north is -Y, south is +Y).
//   - Graph maps every room that was ever the source of a door traversal to the
//     ordered sequence of rooms reachable through one door. Duplicate entries
//     are kept (the graph is a multigraph); they never change distances.
//
// Why
//
//	The path expression bounds the number of rooms but not the shape of the
//	map, so the graph is a growable map keyed by Coord rather than a fixed
//	array. Keeping the forward sequences in insertion order makes every
//	traversal over the graph reproducible.
//
// Concurrency
//
//	Graph guards its maps with a single sync.RWMutex. Building is done by one
//	writer (the compiler); once built, any number of explorers may read it.
//
// Errors
//
//   - ErrUnknownDirection  a rune outside {N, S, E, W} was parsed as a direction.
//   - ErrNotAdjacent       a door was requested between rooms that do not touch.
//   - ErrNilGraph          AddDoor was called on a nil *Graph.
//
// Complexity
//
//   - AddDoor, Neighbors, HasRoom: O(1) amortized (Neighbors copies the slice).
//   - Rooms: O(R log R) for the sorted snapshot.
//   - Equal: O(R + D) with R rooms and D recorded doors.
package core
