package pathexpr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/doormap/core"
)

// Sentinel errors for compilation and validation.
var (
	// ErrUnrecognizedSymbol is returned for a rune outside ^ $ ( | ) N S E W.
	ErrUnrecognizedSymbol = errors.New("pathexpr: unrecognized symbol")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathexpr: invalid option supplied")

	// ErrMissingStartAnchor is returned by Validate when the expression does not begin with '^'.
	ErrMissingStartAnchor = errors.New("pathexpr: expression must start with '^'")

	// ErrMissingEndAnchor is returned by Validate when the expression does not end with '$'.
	ErrMissingEndAnchor = errors.New("pathexpr: expression must end with '$'")

	// ErrMisplacedAnchor is returned by Validate for '^' or '$' away from the ends.
	ErrMisplacedAnchor = errors.New("pathexpr: anchor inside expression")

	// ErrUnbalancedGroup is returned by Validate for a ')' without '(' or an unclosed '('.
	ErrUnbalancedGroup = errors.New("pathexpr: unbalanced group")
)

// Mode selects what a group-close ')' does.
type Mode int

const (
	// ModeScoped pops the group's branch point on ')' and keeps walking from
	// the room the last alternative reached.
	ModeScoped Mode = iota
	// ModeReference leaves both position and stack untouched on ')'.
	ModeReference
)

// String returns "scoped" or "reference".
func (m Mode) String() string {
	switch m {
	case ModeScoped:
		return "scoped"
	case ModeReference:
		return "reference"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "scoped":
		return ModeScoped, nil
	case "reference":
		return ModeReference, nil
	}

	return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
}

// EdgePolicy selects which doors a single step records.
type EdgePolicy int

const (
	// EdgesSymmetric records A->B and B->A for every step from A to B.
	EdgesSymmetric EdgePolicy = iota
	// EdgesDirected records only A->B.
	EdgesDirected
)

// String returns "symmetric" or "directed".
func (p EdgePolicy) String() string {
	switch p {
	case EdgesSymmetric:
		return "symmetric"
	case EdgesDirected:
		return "directed"
	}

	return fmt.Sprintf("EdgePolicy(%d)", int(p))
}

// ParseEdgePolicy is the inverse of EdgePolicy.String.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "symmetric":
		return EdgesSymmetric, nil
	case "directed":
		return EdgesDirected, nil
	}

	return 0, fmt.Errorf("%w: unknown edge policy %q", ErrOptionViolation, s)
}

// Option configures Compile via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Compile.
type Option func(*Options)

// Options holds the knobs and hooks of one compilation.
type Options struct {
	// Mode selects group-close behavior.
	Mode Mode

	// Edges selects whether reverse doors are recorded.
	Edges EdgePolicy

	// Strict runs Validate before scanning.
	Strict bool

	// Origin is the room the walk starts from.
	Origin core.Coord

	// OnDoor is called once per direction letter with the rooms it connects,
	// after the door has been recorded.
	OnDoor func(from, to core.Coord)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with ModeScoped, EdgesSymmetric, no strict
// validation, origin (0,0) and a no-op OnDoor hook.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeScoped,
		Edges:  EdgesSymmetric,
		Strict: false,
		Origin: core.Origin,
		OnDoor: func(core.Coord, core.Coord) {},
	}
}

// WithMode selects the group-close behavior.
func WithMode(m Mode) Option {
	return func(o *Options) {
		switch m {
		case ModeScoped, ModeReference:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: mode %v", ErrOptionViolation, m)
		}
	}
}

// WithEdgePolicy selects whether each step records the reverse door too.
func WithEdgePolicy(p EdgePolicy) Option {
	return func(o *Options) {
		switch p {
		case EdgesSymmetric, EdgesDirected:
			o.Edges = p
		default:
			o.err = fmt.Errorf("%w: edge policy %v", ErrOptionViolation, p)
		}
	}
}

// WithStrict makes Compile reject anything Validate rejects.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithOrigin starts the walk from a room other than (0,0).
func WithOrigin(c core.Coord) Option {
	return func(o *Options) { o.Origin = c }
}

// WithOnDoor registers a hook called for every recorded step.
func WithOnDoor(fn func(from, to core.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDoor = fn
		}
	}
}

// Compiled is the outcome of one compilation.
type Compiled struct {
	// Graph holds every door the expression walks through.
	Graph *core.Graph

	// Stack is the branch stack left at the end of the scan, bottom first.
	Stack []core.Coord

	// End is the position after the last rune.
	End core.Coord

	// Steps counts the direction letters consumed.
	Steps int

	// Mode and Edges echo the options the graph was built with.
	Mode  Mode
	Edges EdgePolicy
}
