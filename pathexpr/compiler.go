package pathexpr

import (
	"fmt"

	"github.com/katalvlaran/doormap/core"
)

// compiler encapsulates mutable scan state: the current room, the graph being
// built and the branch stack. One compiler serves exactly one Compile call.
type compiler struct {
	opts  Options
	graph *core.Graph
	pos   core.Coord
	stack []core.Coord
	steps int
}

// Compile scans expr once and returns the room graph it describes.
//
// The first unrecognized rune aborts the scan with ErrUnrecognizedSymbol and a
// nil result. Anchors are optional unless WithStrict is given. An empty
// expression yields a graph holding only the origin.
func Compile(expr string, opts ...Option) (*Compiled, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Strict {
		if err := Validate(expr); err != nil {
			return nil, err
		}
	}

	c := &compiler{
		opts:  o,
		graph: core.NewGraph(o.Origin),
		pos:   o.Origin,
	}
	for off, r := range expr {
		if err := c.step(off, r); err != nil {
			return nil, err
		}
	}

	return c.result(), nil
}

// MustCompile is like Compile but panics on error. It is meant for
// expressions embedded in the program as constants.
func MustCompile(expr string, opts ...Option) *Compiled {
	res, err := Compile(expr, opts...)
	if err != nil {
		panic(fmt.Sprintf("pathexpr: Compile(%q): %v", expr, err))
	}

	return res
}

// step applies one rune at byte offset off to the scan state.
func (c *compiler) step(off int, r rune) error {
	switch r {
	case '^', '$':
		// anchors carry no movement
	case '(':
		c.stack = append(c.stack, c.pos)
	case '|':
		if n := len(c.stack); n > 0 {
			c.pos = c.stack[n-1]
		}
	case ')':
		// the walk continues from wherever the last alternative ended
		if n := len(c.stack); c.opts.Mode == ModeScoped && n > 0 {
			c.stack = c.stack[:n-1]
		}
	default:
		d, err := core.ParseDirection(r)
		if err != nil {
			return fmt.Errorf("%w %q at offset %d: %w", ErrUnrecognizedSymbol, r, off, err)
		}
		return c.walk(d)
	}

	return nil
}

// walk moves through the door in direction d, recording it per the edge policy.
func (c *compiler) walk(d core.Direction) error {
	next := c.pos.Step(d)
	if err := c.graph.AddDoor(c.pos, next); err != nil {
		return err
	}
	if c.opts.Edges == EdgesSymmetric {
		if err := c.graph.AddDoor(next, c.pos); err != nil {
			return err
		}
	}
	c.opts.OnDoor(c.pos, next)
	c.pos = next
	c.steps++

	return nil
}

// result snapshots the scan state once the whole expression was consumed.
func (c *compiler) result() *Compiled {
	stack := make([]core.Coord, len(c.stack))
	copy(stack, c.stack)

	return &Compiled{
		Graph: c.graph,
		Stack: stack,
		End:   c.pos,
		Steps: c.steps,
		Mode:  c.opts.Mode,
		Edges: c.opts.Edges,
	}
}
