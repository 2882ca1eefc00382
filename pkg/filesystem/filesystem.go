// Package filesystem provides an abstraction layer for directory listing
// operations so callers can work against local disks, SFTP servers, and
// in-memory mocks through one interface.
package filesystem

import (
	"fmt"
	"io"
	"os"
	"time"
)

// File is an interface that abstracts read access to a single file.
// This allows us to work with both real files and mock files.
type File interface {
	io.Reader
	io.Closer
	Stat() (os.FileInfo, error)
}

// EntryInfo contains metadata about one directory entry.
// This is our own type (not os.FileInfo) to make it easier to work with.
type EntryInfo struct {
	// Name is the entry's base name, no path separators
	Name string

	// Size is the file size in bytes (zero for directories)
	Size int64

	// ModTime is the modification time
	ModTime time.Time

	// IsDir indicates if this is a directory
	IsDir bool

	// Mode holds the permission bits, used for executable detection
	Mode os.FileMode
}

// FileSystem is an interface that abstracts the filesystem operations a
// directory lister needs. All operations are read-only.
type FileSystem interface {
	// List enumerates the immediate children of path, non-recursively.
	// Metadata on each entry is best-effort: an entry whose details could
	// not be read is still returned with its name and zeroed metadata.
	List(path string) ([]EntryInfo, error)

	// Stat returns metadata for a single path.
	Stat(path string) (EntryInfo, error)

	// Open opens a file for reading.
	Open(path string) (File, error)
}

// RealFileSystem implements FileSystem using actual os functions.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// List enumerates the immediate children of a local directory.
func (fs *RealFileSystem) List(path string) ([]EntryInfo, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}

	entries := make([]EntryInfo, 0, len(dirEntries))

	for _, dirEntry := range dirEntries {
		entry := EntryInfo{
			Name:  dirEntry.Name(),
			IsDir: dirEntry.IsDir(),
		}

		// Metadata is best-effort: a vanished or unreadable entry keeps
		// its name and zeroed details rather than failing the listing.
		if info, infoErr := dirEntry.Info(); infoErr == nil {
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
			entry.Mode = info.Mode()
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// Open opens a local file for reading.
func (fs *RealFileSystem) Open(path string) (File, error) {
	file, err := os.Open(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, nil
}

// Stat returns metadata for a single local path.
func (fs *RealFileSystem) Stat(path string) (EntryInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return EntryInfo{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return EntryInfo{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
		Mode:    info.Mode(),
	}, nil
}
