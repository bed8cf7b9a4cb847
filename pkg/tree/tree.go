// Package tree provides passive queries over a declared suite hierarchy:
// traversal, result flattening, and lookup by full name. It never executes
// hooks; driving execution is the engine's job.
package tree

import (
	"errors"

	"github.com/dcsaszar/jasmine/pkg/suite"
)

// ErrStop halts a walk early without reporting failure.
var ErrStop = errors.New("tree: stop walk")

// Walk visits root and every descendant suite depth-first in declaration
// order. Returning ErrStop from fn ends the walk cleanly; any other error
// aborts the walk and is returned.
func Walk(root *suite.Suite, fn func(*suite.Suite) error) error {
	err := walk(root, fn)
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

func walk(s *suite.Suite, fn func(*suite.Suite) error) error {
	if err := fn(s); err != nil {
		return err
	}
	for _, c := range s.Children() {
		child, ok := c.(*suite.Suite)
		if !ok {
			continue
		}
		if err := walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Results flattens the result of every node, suites and leaf children
// alike, in declaration order starting at root.
func Results(root *suite.Suite) []*suite.Result {
	var out []*suite.Result
	collect(root, &out)
	return out
}

func collect(s *suite.Suite, out *[]*suite.Result) {
	*out = append(*out, s.GetResult())
	for _, c := range s.Children() {
		if child, ok := c.(*suite.Suite); ok {
			collect(child, out)
		} else {
			*out = append(*out, c.GetResult())
		}
	}
}

// Find returns the first suite whose computed full name equals fullName, or
// nil when no node matches. The root matches the empty string.
func Find(root *suite.Suite, fullName string) *suite.Suite {
	var found *suite.Suite
	_ = Walk(root, func(s *suite.Suite) error {
		if s.GetFullName() == fullName {
			found = s
			return ErrStop
		}
		return nil
	})
	return found
}

// CountChildren returns the number of nodes below root, suites and leaves
// alike, excluding root itself.
func CountChildren(root *suite.Suite) int {
	count := 0
	for _, c := range root.Children() {
		count++
		if child, ok := c.(*suite.Suite); ok {
			count += CountChildren(child)
		}
	}
	return count
}
