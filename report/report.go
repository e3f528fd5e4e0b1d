// Package report summarizes one compile-and-explore run and renders it
// either as the two-line text diagnostic (branch stack, then the maximum
// distance) or as a YAML document with every figure of the run.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/doormap/bfs"
	"github.com/katalvlaran/doormap/core"
	"github.com/katalvlaran/doormap/pathexpr"
	"gopkg.in/yaml.v3"
)

// ErrIncomplete is returned by New when the compile or search result is missing.
var ErrIncomplete = errors.New("report: compile and search results are required")

// Report is the serializable summary of a run.
type Report struct {
	Expression string   `yaml:"expression"`
	Mode       string   `yaml:"mode"`
	Edges      string   `yaml:"edges"`
	Steps      int      `yaml:"steps"`
	Rooms      int      `yaml:"rooms"`
	Doors      int      `yaml:"doors"`
	Stack      []string `yaml:"stack"`
	MaxDoors   int      `yaml:"max_doors"`
	Farthest   []string `yaml:"farthest"`
	Route      string   `yaml:"route,omitempty"`
	Threshold  int      `yaml:"threshold"`
	AtLeast    int      `yaml:"rooms_at_least_threshold"`
}

// New builds a Report from a compile result and a search over its graph.
// Rooms counts rooms the search reached; Route is the walk to the first
// furthest room.
func New(expr string, comp *pathexpr.Compiled, res *bfs.BFSResult, threshold int) (*Report, error) {
	if comp == nil || comp.Graph == nil || res == nil {
		return nil, ErrIncomplete
	}

	far := res.Farthest()
	r := &Report{
		Expression: expr,
		Mode:       comp.Mode.String(),
		Edges:      comp.Edges.String(),
		Steps:      comp.Steps,
		Rooms:      len(res.Depth),
		Doors:      comp.Graph.DoorCount(),
		Stack:      coordStrings(comp.Stack),
		MaxDoors:   res.Max,
		Farthest:   coordStrings(far),
		Threshold:  threshold,
		AtLeast:    res.CountAtLeast(threshold),
	}
	if len(far) > 0 {
		route, err := res.Route(far[0])
		if err != nil {
			return nil, fmt.Errorf("report: route to %v: %w", far[0], err)
		}
		r.Route = route
	}

	return r, nil
}

// WriteText writes the branch stack on one line and the maximum distance on
// the next, e.g. "[]\n10\n".
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "[%s]\n", strings.Join(r.Stack, " ")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, r.MaxDoors)

	return err
}

// WriteYAML writes the whole report as one YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

func coordStrings(cs []core.Coord) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}

	return out
}
