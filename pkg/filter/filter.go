// Package filter selects suites and specs by full name for focused runs.
package filter

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter matches full names against glob patterns and plain substrings.
// A pattern containing glob metacharacters uses doublestar semantics;
// anything else matches as a case-sensitive substring.
type Filter struct {
	globs      []string
	substrings []string
}

// New builds a filter from the given patterns. Malformed glob patterns are
// rejected eagerly so a bad pattern fails the run up front instead of
// silently matching nothing.
func New(patterns ...string) (*Filter, error) {
	f := &Filter{}
	for _, p := range patterns {
		if isGlob(p) {
			if !doublestar.ValidatePattern(p) {
				return nil, fmt.Errorf("filter: invalid pattern %q", p)
			}
			f.globs = append(f.globs, p)
		} else {
			f.substrings = append(f.substrings, p)
		}
	}
	return f, nil
}

// Empty reports whether the filter has no patterns. An empty filter matches
// every name.
func (f *Filter) Empty() bool {
	return len(f.globs) == 0 && len(f.substrings) == 0
}

// Matches reports whether fullName is selected by any pattern.
func (f *Filter) Matches(fullName string) bool {
	if f.Empty() {
		return true
	}

	for _, s := range f.substrings {
		if strings.Contains(fullName, s) {
			return true
		}
	}

	for _, g := range f.globs {
		matched, err := doublestar.Match(g, fullName)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}

	return false
}

func isGlob(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
