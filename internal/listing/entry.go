// Package listing implements the directory listing core: collecting entries
// through a filesystem abstraction, ordering them, and rendering them in
// compact multi-column or long one-per-line format.
package listing

import "time"

// Entry is one filesystem item in a listing. A listing's entries are fully
// materialized before any formatting happens; column math and ordering need
// the whole set up front.
type Entry struct {
	// Name is the entry's base name, no path separators
	Name string

	// IsDir indicates if this is a directory
	IsDir bool

	// IsExecutable is meaningful only for non-directories; derived from the
	// permission bits, so always false on platforms without an execute bit
	IsExecutable bool

	// SizeBytes is populated only for non-directories when metadata was requested
	SizeBytes int64

	// ModifiedAt is populated only when metadata was requested
	ModifiedAt time.Time

	// FullPath is the entry resolved against the listing root, used only to
	// re-query metadata
	FullPath string
}

// EntryClass is the display classification of an entry. It affects styling
// only, never ordering or content.
type EntryClass int

// Entry display classes.
const (
	ClassRegular EntryClass = iota
	ClassDirectory
	ClassExecutable
)

// Class returns the display classification for the entry.
func (e Entry) Class() EntryClass {
	switch {
	case e.IsDir:
		return ClassDirectory
	case e.IsExecutable:
		return ClassExecutable
	default:
		return ClassRegular
	}
}

// DisplayName returns the name as shown in listings: directories carry a
// trailing slash, files do not.
func (e Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + "/"
	}

	return e.Name
}
