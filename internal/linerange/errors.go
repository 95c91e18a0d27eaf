package linerange

import "fmt"

// SyntaxError reports a malformed range expression.
type SyntaxError struct {
	Expr   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid range `%s`: %s", e.Expr, e.Reason)
}

// BoundsError reports a resolved bound outside the output's line count.
type BoundsError struct {
	Expr  string
	Bound string // "start" or "end"
	Index int
	Max   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("invalid %s index %d in range `%s`, maximum index possible: %d",
		e.Bound, e.Index, e.Expr, e.Max)
}
