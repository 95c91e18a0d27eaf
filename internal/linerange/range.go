// Package linerange parses range expressions of the form "start..end" and
// applies them to captured output lines. Either bound may be omitted, and the
// end bound may be marked end-relative, counting back from the last line.
package linerange

import (
	"strconv"
	"strings"
)

// Separator splits the start and end bounds of a range expression.
const Separator = ".."

// EndMarker flags the end bound as counted back from the end of the output.
const EndMarker = 'e'

// Spec is a parsed range expression. A nil *Spec selects the full output.
type Spec struct {
	expr        string
	start       int
	end         int
	hasEnd      bool
	endRelative bool
}

// Parse validates the syntax of a range expression and returns its Spec.
// Bounds are resolved later, against a concrete output, by Apply.
func Parse(expr string) (*Spec, error) {
	if !strings.Contains(expr, Separator) {
		return nil, &SyntaxError{Expr: expr, Reason: "must be in start..end format"}
	}

	s := &Spec{expr: expr}

	if !strings.HasPrefix(expr, Separator) {
		head := expr[:strings.IndexByte(expr, '.')]
		start, err := strconv.Atoi(head)
		if err != nil {
			return nil, &SyntaxError{Expr: expr, Reason: "start bound is not a number"}
		}
		s.start = start
	}

	if !strings.HasSuffix(expr, Separator) {
		tail := trailingDigits(expr)
		if tail == "" {
			return nil, &SyntaxError{Expr: expr, Reason: "end bound is not a number"}
		}
		end, err := strconv.Atoi(tail)
		if err != nil {
			return nil, &SyntaxError{Expr: expr, Reason: "end bound is not a number"}
		}
		s.end = end
		s.hasEnd = true
		s.endRelative = strings.ContainsRune(expr, EndMarker)
	}

	return s, nil
}

// Apply resolves the spec against lines and returns the selected half-open
// slice. A nil spec returns lines unchanged. Resolved bounds outside
// [0, len(lines)] are a BoundsError, never clamped. start >= end yields an
// empty result, not an error.
func (s *Spec) Apply(lines []string) ([]string, error) {
	if s == nil {
		return lines, nil
	}

	n := len(lines)

	start := s.start
	if start < 0 || start >= n {
		return nil, &BoundsError{Expr: s.expr, Bound: "start", Index: start, Max: n}
	}

	end := n
	if s.hasEnd {
		end = s.end
		if s.endRelative {
			end = n - end - 1
		}
	}
	if end < 0 || end > n {
		return nil, &BoundsError{Expr: s.expr, Bound: "end", Index: end, Max: n}
	}

	if start >= end {
		return []string{}, nil
	}
	return lines[start:end], nil
}

// String returns the original expression.
func (s *Spec) String() string {
	if s == nil {
		return ""
	}
	return s.expr
}

// trailingDigits returns the maximal run of decimal digits at the end of expr.
func trailingDigits(expr string) string {
	i := len(expr)
	for i > 0 && expr[i-1] >= '0' && expr[i-1] <= '9' {
		i--
	}
	return expr[i:]
}
