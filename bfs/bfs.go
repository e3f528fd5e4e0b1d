// Package bfs provides breadth-first search over a core.Graph of rooms,
// returning door-count distances, parent links, and visit order.
//
// BFS explores rooms in increasing distance from a start room,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/doormap/core"
)

// queueItem pairs a room with its BFS depth and its parent room.
type queueItem struct {
	room      core.Coord
	depth     int
	parent    core.Coord
	hasParent bool // false for the start room
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.Coord]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartRoomNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start core.Coord, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start room: it needs an entry, or an incoming door when
	// doors are walked both ways.
	if !g.HasRoom(start) && !(o.Undirected && len(g.Incoming(start)) > 0) {
		return nil, fmt.Errorf("%w: %v", ErrStartRoomNotFound, start)
	}

	// Prepare walker
	n := g.RoomCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.Coord]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.Coord, 0, n),
			Depth:  make(map[core.Coord]int, n),
			Parent: make(map[core.Coord]core.Coord, n),
		},
	}

	// Seed queue with start room (no parent)
	w.enqueue(queueItem{room: start, depth: 0})
	// Main loop
	return w.res, w.loop()
}

// MaxDoors runs BFS from g's origin and returns the largest shortest-path
// distance, in doors, to any reachable room. A graph without doors yields 0.
func MaxDoors(g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	res, err := BFS(g, g.Origin(), opts...)
	if err != nil {
		return 0, err
	}

	return res.Max, nil
}

// enqueue marks the room visited at its depth, calls OnEnqueue, records its
// parent, raises the running maximum, and adds it to the queue.
func (w *walker) enqueue(item queueItem) {
	w.visited[item.room] = true
	w.res.Depth[item.room] = item.depth
	if item.hasParent {
		w.res.Parent[item.room] = item.parent
	}
	w.res.Max = max(w.res.Max, item.depth)
	w.opts.OnEnqueue(item.room, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.room, item.depth)
	return item
}

// visit records the room in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.room)
	if err := w.opts.OnVisit(item.room, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.room, err)
	}
	return nil
}

// neighbors lists the rooms one door away from room. A room with no entry has
// no outgoing doors; under Undirected, doors recorded into room count too.
func (w *walker) neighbors(room core.Coord) []core.Coord {
	out, _ := w.graph.Neighbors(room)
	if w.opts.Undirected {
		out = append(out, w.graph.Incoming(room)...)
	}
	return out
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem) error {
	for _, nbr := range w.neighbors(item.room) {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.room, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(queueItem{room: nbr, depth: nextDepth, parent: item.room, hasParent: true})
		}
	}
	return nil
}
