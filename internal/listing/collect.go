package listing

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joe/list-files/pkg/filesystem"
)

// Options controls what Collect includes and how much metadata it fetches.
type Options struct {
	// IncludeHidden keeps entries whose name starts with a dot
	IncludeHidden bool

	// NeedMetadata fetches per-entry size and modification time, as long
	// format needs them
	NeedMetadata bool

	// Pattern is an optional case-insensitive glob applied to entry names
	Pattern string
}

// Collect enumerates the immediate children of path and returns them ordered
// for display: directories first, then case-insensitive by name. The returned
// slice is fully materialized; nothing is streamed.
//
// A failure to open or enumerate path fails the whole call; check the result
// with IsNotFound and IsPermissionDenied. A failure to stat one entry's
// metadata only degrades that entry to zeroed metadata.
func Collect(fsys filesystem.FileSystem, path string, opts Options) ([]Entry, error) {
	raw, err := fsys.List(path)
	if err != nil {
		return nil, err
	}

	filter := NewGlobFilter(opts.Pattern)

	entries := make([]Entry, 0, len(raw))

	for _, info := range raw {
		if !opts.IncludeHidden && strings.HasPrefix(info.Name, ".") {
			continue
		}
		if !filter.ShouldInclude(info.Name) {
			continue
		}

		entry := Entry{
			Name:         info.Name,
			IsDir:        info.IsDir,
			IsExecutable: !info.IsDir && info.Mode.Perm()&0o111 != 0,
			FullPath:     filepath.Join(path, info.Name),
		}

		if opts.NeedMetadata {
			// Re-stat rather than trusting the enumeration snapshot; an
			// entry that vanished in between keeps zeroed metadata.
			if meta, statErr := fsys.Stat(entry.FullPath); statErr == nil {
				if !entry.IsDir {
					entry.SizeBytes = meta.Size
				}
				entry.ModifiedAt = meta.ModTime
			}
		}

		entries = append(entries, entry)
	}

	sortEntries(entries)

	return entries, nil
}

// IsNotFound reports whether err means the listed path does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsPermissionDenied reports whether err means the listed path exists but
// cannot be opened.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// sortEntries orders directories strictly before files, then case-insensitive
// by name within each group. Deterministic, so listings are reproducible.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}

		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
