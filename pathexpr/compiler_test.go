package pathexpr_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/doormap/bfs"
	"github.com/katalvlaran/doormap/core"
	"github.com/katalvlaran/doormap/pathexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(x, y int) core.Coord { return core.Coord{X: x, Y: y} }

// TestCompile_Errors covers unrecognized symbols and option violations.
func TestCompile_Errors(t *testing.T) {
	for _, expr := range []string{"^NX$", "^n$", "^N E$", "^N(E|W)?$"} {
		res, err := pathexpr.Compile(expr)
		assert.ErrorIs(t, err, pathexpr.ErrUnrecognizedSymbol, "expr %q", expr)
		assert.ErrorIs(t, err, core.ErrUnknownDirection, "expr %q", expr)
		assert.Nil(t, res, "no partial graph for %q", expr)
	}

	_, err := pathexpr.Compile("^N$", pathexpr.WithMode(pathexpr.Mode(9)))
	assert.ErrorIs(t, err, pathexpr.ErrOptionViolation)
	_, err = pathexpr.Compile("^N$", pathexpr.WithEdgePolicy(pathexpr.EdgePolicy(-1)))
	assert.ErrorIs(t, err, pathexpr.ErrOptionViolation)
}

// TestCompile_ErrorOffset checks the reported byte offset of the bad rune.
func TestCompile_ErrorOffset(t *testing.T) {
	_, err := pathexpr.Compile("^NE(S|x)$")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 6")
	assert.Contains(t, err.Error(), `'x'`)
}

// TestCompile_Empty verifies empty and anchor-only expressions.
func TestCompile_Empty(t *testing.T) {
	for _, expr := range []string{"", "^$", "^", "$"} {
		res, err := pathexpr.Compile(expr)
		require.NoError(t, err, "expr %q", expr)
		assert.Equal(t, 1, res.Graph.RoomCount())
		assert.Equal(t, 0, res.Graph.DoorCount())
		assert.Equal(t, core.Origin, res.End)
		assert.Empty(t, res.Stack)

		maxDoors, err := bfs.MaxDoors(res.Graph)
		require.NoError(t, err)
		assert.Equal(t, 0, maxDoors)
	}
}

// TestCompile_LiteralPathIsSimple walks random branch-free N/E expressions:
// they never revisit a room, so the graph is a simple path of n+1 rooms.
func TestCompile_LiteralPathIsSimple(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for n := 0; n <= 40; n += 5 {
		var sb strings.Builder
		sb.WriteByte('^')
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 0 {
				sb.WriteByte('N')
			} else {
				sb.WriteByte('E')
			}
		}
		sb.WriteByte('$')
		expr := sb.String()

		directed, err := pathexpr.Compile(expr, pathexpr.WithEdgePolicy(pathexpr.EdgesDirected))
		require.NoError(t, err)
		g := directed.Graph
		assert.Equal(t, n, g.DoorCount(), "expr %q", expr)
		assert.Equal(t, n, directed.Steps)
		// every room but the last one leads to exactly one next room
		cur := core.Origin
		for i := 0; i < n; i++ {
			nbrs, ok := g.Neighbors(cur)
			require.True(t, ok)
			require.Len(t, nbrs, 1)
			cur = nbrs[0]
		}
		assert.Equal(t, directed.End, cur)

		sym, err := pathexpr.Compile(expr)
		require.NoError(t, err)
		assert.Equal(t, n+1, sym.Graph.RoomCount(), "expr %q", expr)

		maxDoors, err := bfs.MaxDoors(sym.Graph)
		require.NoError(t, err)
		assert.Equal(t, n, maxDoors, "expr %q", expr)
	}
}

// TestCompile_TwoAlternatives checks that both alternatives leave the same room.
func TestCompile_TwoAlternatives(t *testing.T) {
	cases := []struct {
		expr   string
		branch core.Coord
		want   int
	}{
		{"^N(EE|W)$", c(0, -1), 3},
		{"^N(E|WWW)$", c(0, -1), 4},
		{"^S(EEEE|WW)$", c(0, 1), 5},
	}
	for _, tc := range cases {
		res, err := pathexpr.Compile(tc.expr)
		require.NoError(t, err)
		nbrs, ok := res.Graph.Neighbors(tc.branch)
		require.True(t, ok)
		assert.Len(t, nbrs, 3, "back door plus one door per alternative")

		maxDoors, err := bfs.MaxDoors(res.Graph)
		require.NoError(t, err)
		assert.Equal(t, tc.want, maxDoors, "expr %q", tc.expr)
	}
}

// TestCompile_Idempotent compiles the same expression twice.
func TestCompile_Idempotent(t *testing.T) {
	const expr = "^ENNWSWW(NEWS|)SSSEEN(WNSE|)EE(SWEN|)NNN$"
	for _, mode := range []pathexpr.Mode{pathexpr.ModeScoped, pathexpr.ModeReference} {
		for _, edges := range []pathexpr.EdgePolicy{pathexpr.EdgesSymmetric, pathexpr.EdgesDirected} {
			a := pathexpr.MustCompile(expr, pathexpr.WithMode(mode), pathexpr.WithEdgePolicy(edges))
			b := pathexpr.MustCompile(expr, pathexpr.WithMode(mode), pathexpr.WithEdgePolicy(edges))
			assert.True(t, a.Graph.Equal(b.Graph), "%v/%v", mode, edges)
			assert.Equal(t, a.Graph.Rooms(), b.Graph.Rooms())
			assert.Equal(t, a.Stack, b.Stack)
		}
	}
}

// TestCompile_BalancedScopedStackEmpty is the branch-stack sanity check.
func TestCompile_BalancedScopedStackEmpty(t *testing.T) {
	for _, expr := range []string{
		"^(N)$",
		"^N(E|W)S$",
		"^((N|S)|(E|W))$",
		"^ENWWW(NEEE|SSE(EE|N))$",
		"^WSSEESWWWNW(S|NENNEEEENN(ESSSSW(NWSW|SSEN)|WSWWN(E|WWS(E|SS))))$",
	} {
		require.NoError(t, pathexpr.Validate(expr), "fixture %q must be balanced", expr)
		res, err := pathexpr.Compile(expr)
		require.NoError(t, err)
		assert.Empty(t, res.Stack, "expr %q", expr)
	}
}

// TestCompile_AlternationPeeksStack verifies '|' resets without popping.
func TestCompile_AlternationPeeksStack(t *testing.T) {
	res, err := pathexpr.Compile("^(N|S|E$", pathexpr.WithEdgePolicy(pathexpr.EdgesDirected))
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{core.Origin}, res.Stack)

	nbrs, ok := res.Graph.Neighbors(core.Origin)
	require.True(t, ok)
	assert.Equal(t, []core.Coord{c(0, -1), c(0, 1), c(1, 0)}, nbrs)
}

// TestCompile_MalformedGroups covers stray separators and closers.
func TestCompile_MalformedGroups(t *testing.T) {
	plain := pathexpr.MustCompile("^NE$")

	for _, expr := range []string{"^N|E$", "^N)E$", "^)N)E)$"} {
		res, err := pathexpr.Compile(expr)
		require.NoError(t, err)
		assert.True(t, plain.Graph.Equal(res.Graph), "expr %q behaves like ^NE$", expr)
		assert.Empty(t, res.Stack)
	}

	res, err := pathexpr.Compile("^N(E(S$")
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{c(0, -1), c(1, -1)}, res.Stack, "unclosed groups stay on the stack")
	assert.Equal(t, c(1, 0), res.End)
}

// TestCompile_ModeReferenceCloseIsNoop shows the historical ')' behavior.
func TestCompile_ModeReferenceCloseIsNoop(t *testing.T) {
	res, err := pathexpr.Compile("^N(E|W)S$", pathexpr.WithMode(pathexpr.ModeReference))
	require.NoError(t, err)
	assert.Equal(t, pathexpr.ModeReference, res.Mode)
	// after "W" the walk continues south from (-1,-1), not from the branch point
	assert.Equal(t, c(-1, 0), res.End)
	assert.Equal(t, []core.Coord{c(0, -1)}, res.Stack)

	scoped, err := pathexpr.Compile("^N(E|W)S$")
	require.NoError(t, err)
	assert.Equal(t, pathexpr.ModeScoped, scoped.Mode)
	assert.Equal(t, c(-1, 0), scoped.End)
	assert.Empty(t, scoped.Stack)
}

// TestCompile_StepsAfterGroup continues from the room the last alternative reached.
func TestCompile_StepsAfterGroup(t *testing.T) {
	cases := []struct {
		expr string
		end  core.Coord
		want int
	}{
		{"^N(E|W)NN$", c(-1, -3), 4},
		{"^N(EEE|W)NNNN$", c(-1, -5), 6},
		{"^(N|S)(E|W)$", c(-1, 1), 2},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			for _, mode := range []pathexpr.Mode{pathexpr.ModeScoped, pathexpr.ModeReference} {
				res, err := pathexpr.Compile(tc.expr, pathexpr.WithMode(mode))
				require.NoError(t, err)
				assert.Equal(t, tc.end, res.End, "mode %v", mode)

				maxDoors, err := bfs.MaxDoors(res.Graph)
				require.NoError(t, err)
				assert.Equal(t, tc.want, maxDoors, "mode %v", mode)
			}
		})
	}
}

// TestCompile_OptionsHooks covers WithOnDoor, WithOrigin and WithStrict.
func TestCompile_OptionsHooks(t *testing.T) {
	var walked []core.Coord
	res, err := pathexpr.Compile("^EN$",
		pathexpr.WithOrigin(c(10, 10)),
		pathexpr.WithOnDoor(func(from, to core.Coord) {
			walked = append(walked, from, to)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{c(10, 10), c(11, 10), c(11, 10), c(11, 9)}, walked)
	assert.Equal(t, c(10, 10), res.Graph.Origin())
	assert.Equal(t, c(11, 9), res.End)
	assert.Equal(t, 2, res.Steps)

	_, err = pathexpr.Compile("NE", pathexpr.WithStrict())
	assert.ErrorIs(t, err, pathexpr.ErrMissingStartAnchor)
	_, err = pathexpr.Compile("^N(E$", pathexpr.WithStrict())
	assert.ErrorIs(t, err, pathexpr.ErrUnbalancedGroup)
	_, err = pathexpr.Compile("^N(E)$", pathexpr.WithStrict())
	assert.NoError(t, err)
}

// TestMustCompile_Panics ensures bad constants fail loudly.
func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { pathexpr.MustCompile("^NQ$") })
	assert.NotPanics(t, func() { pathexpr.MustCompile("^NS$") })
}

// TestParseModeAndEdgePolicy round-trips the textual forms used by config.
func TestParseModeAndEdgePolicy(t *testing.T) {
	for _, m := range []pathexpr.Mode{pathexpr.ModeScoped, pathexpr.ModeReference} {
		got, err := pathexpr.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, p := range []pathexpr.EdgePolicy{pathexpr.EdgesSymmetric, pathexpr.EdgesDirected} {
		got, err := pathexpr.ParseEdgePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := pathexpr.ParseMode("greedy")
	assert.ErrorIs(t, err, pathexpr.ErrOptionViolation)
	_, err = pathexpr.ParseEdgePolicy("both")
	assert.ErrorIs(t, err, pathexpr.ErrOptionViolation)
	assert.Equal(t, "Mode(7)", pathexpr.Mode(7).String())
}
