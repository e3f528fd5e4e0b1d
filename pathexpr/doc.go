// Package pathexpr compiles a room path expression into a core.Graph.
//
// What
//
//	A path expression describes every walk through a grid of rooms:
//
//	    ^ENWWW(NEEE|SSE(EE|N))$
//
//	  - ^ and $       anchors; they do nothing
//	  - N S E W       walk through one door and record it
//	  - (             remember the current room as a branch point
//	  - |             go back to the innermost branch point
//	  - )             close the group (see Mode)
//
//	Compile scans the expression once, left to right, and returns the room
//	graph plus the branch stack left over at the end of the scan (a
//	diagnostic: it is empty for balanced input in ModeScoped).
//
// Modes
//
//   - ModeScoped (default): ")" pops the frame pushed by its "(", so every
//     group owns exactly one stack frame. The position stays where the last
//     alternative ended and later steps continue from there.
//   - ModeReference: ")" does nothing and frames are never popped. The room
//     graph matches the historical single-stack scanner, including its
//     mis-nested backtracking for groups that follow other groups.
//
// Edge policies
//
//   - EdgesSymmetric (default): each step records the door both ways.
//   - EdgesDirected: only the door in the walking direction is recorded;
//     pair it with bfs.WithUndirected to still walk doors both ways.
//
// Errors
//
//   - ErrUnrecognizedSymbol   any rune outside ^ $ ( | ) N S E W. The scan
//     stops at the first one and no graph is returned.
//   - ErrOptionViolation      an Option carried an unknown Mode or EdgePolicy.
//   - ErrMissingStartAnchor, ErrMissingEndAnchor, ErrMisplacedAnchor,
//     ErrUnbalancedGroup      reported by Validate (and by Compile when
//     WithStrict is set).
//
// Complexity
//
//	Time O(n) and memory O(n) for an expression of n runes: every direction
//	letter adds at most one room and one or two doors.
package pathexpr
