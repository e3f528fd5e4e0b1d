// Package doormap turns a room path expression into a map of rooms and doors
// and answers how far away the most distant room is.
//
// What is a path expression?
//
//	A string such as ^ENWWW(NEEE|SSE(EE|N))$ listing the doors a walker passes
//	through. N, S, E and W each open one door and step into the adjacent room.
//	Parentheses open a branch point, | starts another alternative from that
//	point, and ^ / $ anchor the whole expression.
//
// Packages:
//
//	core/        Coord, Direction and the thread-safe room Graph
//	pathexpr/    single-pass compiler from expression to Graph (+ Validate)
//	bfs/         breadth-first door distances, routes and threshold counts
//	report/      text and YAML rendering of one run
//	config/      .env / environment settings for cmd/doormap
//	cmd/doormap  the command that wires everything together
//
// Quick example:
//
//	comp, _ := pathexpr.Compile("^ENWWW(NEEE|SSE(EE|N))$")
//	n, _ := bfs.MaxDoors(comp.Graph)
//	fmt.Println(n) // 10
//
//	go run github.com/katalvlaran/doormap/cmd/doormap
package doormap
