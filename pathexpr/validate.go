package pathexpr

import (
	"fmt"
	"strings"
)

// Validate checks that expr has the canonical puzzle shape: '^' first, '$'
// last, no anchors in between, only direction letters and ( | ) inside, and
// properly nested groups. Compile does not call it unless WithStrict is set.
func Validate(expr string) error {
	if !strings.HasPrefix(expr, "^") {
		return ErrMissingStartAnchor
	}
	if len(expr) < 2 || !strings.HasSuffix(expr, "$") {
		return ErrMissingEndAnchor
	}

	depth := 0
	body := expr[1 : len(expr)-1]
	for i, r := range body {
		off := i + 1 // offset within expr
		switch r {
		case 'N', 'S', 'E', 'W', '|':
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: ')' without '(' at offset %d", ErrUnbalancedGroup, off)
			}
		case '^', '$':
			return fmt.Errorf("%w: %q at offset %d", ErrMisplacedAnchor, r, off)
		default:
			return fmt.Errorf("%w %q at offset %d", ErrUnrecognizedSymbol, r, off)
		}
	}
	if depth > 0 {
		return fmt.Errorf("%w: %d unclosed '('", ErrUnbalancedGroup, depth)
	}

	return nil
}
