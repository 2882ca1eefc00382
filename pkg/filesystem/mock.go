package filesystem

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MockFileSystem is an in-memory filesystem implementation for testing.
type MockFileSystem struct {
	mu        sync.RWMutex
	files     map[string]*mockEntry
	failStats map[string]bool
	listErr   map[string]error
}

// mockEntry represents one file or directory in the mock filesystem.
type mockEntry struct {
	data    []byte
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

// NewMockFileSystem creates an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:     make(map[string]*mockEntry),
		failStats: make(map[string]bool),
		listErr:   make(map[string]error),
	}
}

// AddDir adds a directory to the mock filesystem.
func (fs *MockFileSystem) AddDir(path string, modTime time.Time) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.files[filepath.Clean(path)] = &mockEntry{
		modTime: modTime,
		isDir:   true,
		perm:    0o755 | os.ModeDir,
	}
}

// AddFile adds a regular file with the given content and permissions.
func (fs *MockFileSystem) AddFile(path string, content []byte, modTime time.Time, perm os.FileMode) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.files[filepath.Clean(path)] = &mockEntry{
		data:    content,
		modTime: modTime,
		perm:    perm,
	}
}

// FailStat makes Stat return an error for the given path, to exercise
// per-entry metadata degradation.
func (fs *MockFileSystem) FailStat(path string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.failStats[filepath.Clean(path)] = true
}

// FailList makes List return the given error for a path.
func (fs *MockFileSystem) FailList(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.listErr[filepath.Clean(path)] = err
}

// List enumerates the immediate children of a mock directory.
func (fs *MockFileSystem) List(path string) ([]EntryInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	path = filepath.Clean(path)

	if err, ok := fs.listErr[path]; ok {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}

	dir, exists := fs.files[path]
	if !exists {
		return nil, fmt.Errorf("failed to list %s: %w", path, os.ErrNotExist)
	}
	if !dir.isDir {
		return nil, fmt.Errorf("failed to list %s: not a directory", path) //nolint:err113 // mock-only error
	}

	var entries []EntryInfo
	for entryPath, entry := range fs.files {
		if filepath.Dir(entryPath) != path || entryPath == path {
			continue
		}

		info := EntryInfo{
			Name:  filepath.Base(entryPath),
			IsDir: entry.isDir,
		}
		// Mirror the real filesystem: per-entry metadata is best-effort.
		if !fs.failStats[entryPath] {
			info.Size = int64(len(entry.data))
			info.ModTime = entry.modTime
			info.Mode = entry.perm
		}

		entries = append(entries, info)
	}

	return entries, nil
}

// Open opens a mock file for reading.
func (fs *MockFileSystem) Open(path string) (File, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	path = filepath.Clean(path)

	entry, exists := fs.files[path]
	if !exists {
		return nil, fmt.Errorf("failed to open %s: %w", path, os.ErrNotExist)
	}
	if entry.isDir {
		return nil, fmt.Errorf("failed to open %s: is a directory", path) //nolint:err113 // mock-only error
	}

	return &mockFileHandle{
		path:   path,
		reader: bytes.NewReader(entry.data),
		entry:  entry,
	}, nil
}

// Stat returns metadata for a single mock path.
func (fs *MockFileSystem) Stat(path string) (EntryInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	path = filepath.Clean(path)

	if fs.failStats[path] {
		return EntryInfo{}, fmt.Errorf("failed to stat %s: %w", path, os.ErrPermission)
	}

	entry, exists := fs.files[path]
	if !exists {
		return EntryInfo{}, fmt.Errorf("failed to stat %s: %w", path, os.ErrNotExist)
	}

	return EntryInfo{
		Name:    filepath.Base(path),
		Size:    int64(len(entry.data)),
		ModTime: entry.modTime,
		IsDir:   entry.isDir,
		Mode:    entry.perm,
	}, nil
}

// mockFileHandle implements the File interface for reading.
type mockFileHandle struct {
	path   string
	reader *bytes.Reader
	entry  *mockEntry
	closed bool
}

func (f *mockFileHandle) Read(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}

	return f.reader.Read(p)
}

func (f *mockFileHandle) Close() error {
	if f.closed {
		return os.ErrClosed
	}
	f.closed = true

	return nil
}

func (f *mockFileHandle) Stat() (os.FileInfo, error) {
	return &mockFileInfo{
		name:    filepath.Base(f.path),
		size:    int64(len(f.entry.data)),
		modTime: f.entry.modTime,
		isDir:   f.entry.isDir,
		perm:    f.entry.perm,
	}, nil
}

// mockFileInfo implements os.FileInfo for mock files.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.perm }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }
