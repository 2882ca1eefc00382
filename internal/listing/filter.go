package listing

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NameFilter defines the interface for filtering entries by name during collection
type NameFilter interface {
	// ShouldInclude returns true if the entry with the given name should appear in the listing
	ShouldInclude(name string) bool
}

// GlobFilter implements NameFilter using glob patterns
type GlobFilter struct {
	normalizedPattern string
	isEmpty           bool
}

// NewGlobFilter creates a new GlobFilter with the given pattern
// Empty pattern matches all entries
func NewGlobFilter(pattern string) *GlobFilter {
	return &GlobFilter{
		normalizedPattern: strings.ToLower(pattern),
		isEmpty:           pattern == "",
	}
}

// ShouldInclude returns true if the entry name matches the glob pattern
// Case-insensitive matching
func (f *GlobFilter) ShouldInclude(name string) bool {
	if f.isEmpty {
		return true
	}

	matched, err := doublestar.Match(f.normalizedPattern, strings.ToLower(name))
	if err != nil {
		// If pattern is invalid, don't match
		return false
	}

	return matched
}
