// Package bfs is the shortest-path explorer of doormap: a breadth-first
// search over a core.Graph of rooms that returns door-count distances,
// parent links, visit order, and the largest distance reached.
//
// What
//
//   - Explore rooms in non-decreasing distance (doors walked) from a start room.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from room → distance from start
//   - Parent: map from room → its predecessor in the BFS tree
//   - Max: the largest Depth value, i.e. the furthest room's distance
//   - Convenience queries on the result: PathTo, Route (direction letters),
//     Farthest, CountAtLeast, Histogram.
//   - MaxDoors(g) runs the search from g.Origin() and returns Max directly.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a room is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual doors via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Directed and undirected doors
//
//	By default only the forward sequences recorded in the graph are followed.
//	A room that never was the source of a door has no entry; it is still
//	visited and counted, it just has nothing to expand. WithUndirected also
//	follows every door backwards through Graph.Incoming, which turns a graph
//	compiled with pathexpr.EdgesDirected into the symmetric one.
//
// Determinism
//
//	core.Graph keeps neighbors in insertion order and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (R = rooms, D = recorded doors)
//
//   - Time:   O(R + D)
//   - Memory: O(R)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, core.Origin)
//	if err != nil {
//	    // ErrGraphNil, ErrStartRoomNotFound, ErrOptionViolation,
//	    // context errors, or a wrapped OnVisit error
//	}
//	fmt.Println(res.Max, res.CountAtLeast(1000))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartRoomNotFound    if the start room does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo/Route for unreached rooms.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
