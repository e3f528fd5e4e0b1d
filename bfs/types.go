// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph of rooms.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/doormap/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartRoomNotFound is returned when the start room is absent.
	ErrStartRoomNotFound = errors.New("bfs: start room not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo and Route for rooms the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a room is enqueued, before visiting.
	// Receives the room and its depth (doors) from the start.
	OnEnqueue func(room core.Coord, depth int)

	// OnDequeue is called immediately before visiting a room.
	OnDequeue func(room core.Coord, depth int)

	// OnVisit is called when visiting a room. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(room core.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip doors by returning false.
	// Called for each door curr→neighbor.
	FilterNeighbor func(curr, neighbor core.Coord) bool

	// Undirected also follows recorded doors backwards (Graph.Incoming),
	// so a graph built with directed doors is walked as the rooms really are.
	Undirected bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - doors followed only in their recorded direction.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.Coord, int) {},
		OnDequeue:      func(core.Coord, int) {},
		OnVisit:        func(core.Coord, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.Coord) bool { return true },
		Undirected:     false,
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(room core.Coord, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(room core.Coord, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(room core.Coord, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.Coord) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithUndirected makes the search walk every recorded door in both directions.
func WithUndirected() Option {
	return func(o *BFSOptions) { o.Undirected = true }
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: rooms visited, in visit sequence.
//   - Depth: map from room to its distance (in doors) from the start.
//   - Parent: map from room to its predecessor in the BFS tree.
//   - Max: the largest value in Depth (0 when only the start was reached).
type BFSResult struct {
	Start  core.Coord
	Order  []core.Coord
	Depth  map[core.Coord]int
	Parent map[core.Coord]core.Coord
	Max    int
}

// PathTo reconstructs the rooms from the start room to dest, both included.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest core.Coord) ([]core.Coord, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []core.Coord{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Route returns the shortest walk to dest as direction letters, e.g. "ENWW".
// The route to the start room itself is "".
func (r *BFSResult) Route(dest core.Coord) (string, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i := 1; i < len(path); i++ {
		d, ok := core.Between(path[i-1], path[i])
		if !ok {
			return "", fmt.Errorf("%w: %v -> %v", core.ErrNotAdjacent, path[i-1], path[i])
		}
		sb.WriteByte(byte(d))
	}

	return sb.String(), nil
}

// Farthest returns every room at distance Max, sorted row by row.
func (r *BFSResult) Farthest() []core.Coord {
	var far []core.Coord
	for room, d := range r.Depth {
		if d == r.Max {
			far = append(far, room)
		}
	}
	core.SortCoords(far)

	return far
}

// CountAtLeast returns how many reached rooms need at least n doors.
func (r *BFSResult) CountAtLeast(n int) int {
	count := 0
	for _, d := range r.Depth {
		if d >= n {
			count++
		}
	}

	return count
}

// Histogram returns the number of reached rooms per distance, indexed by
// distance (len == Max+1).
func (r *BFSResult) Histogram() []int {
	hist := make([]int, r.Max+1)
	for _, d := range r.Depth {
		hist[d]++
	}

	return hist
}

// Rooms returns every reached room, sorted row by row.
func (r *BFSResult) Rooms() []core.Coord {
	rooms := make([]core.Coord, 0, len(r.Depth))
	for room := range r.Depth {
		rooms = append(rooms, room)
	}
	core.SortCoords(rooms)

	return rooms
}
