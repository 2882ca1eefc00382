package filesystem

import (
	"fmt"
	"os"

	"github.com/pkg/sftp"
)

// SFTPFileSystem implements FileSystem for SFTP connections. Listing is
// read-only and short-lived, so a single session is enough; no pooling.
type SFTPFileSystem struct {
	client *sftp.Client
}

// NewSFTPFileSystem creates a new SFTP filesystem using an established connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{
		client: conn.Client(),
	}
}

// List enumerates the immediate children of a remote directory.
func (fs *SFTPFileSystem) List(path string) ([]EntryInfo, error) {
	infos, err := fs.client.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list remote directory %s: %w", path, err)
	}

	entries := make([]EntryInfo, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, EntryInfo{
			Name:    info.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			IsDir:   info.IsDir(),
			Mode:    info.Mode(),
		})
	}

	return entries, nil
}

// Open opens a remote file for reading.
func (fs *SFTPFileSystem) Open(path string) (File, error) {
	file, err := fs.client.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote file %s: %w", path, err)
	}

	return newSFTPFile(file, path), nil
}

// Stat returns metadata for a single remote path.
func (fs *SFTPFileSystem) Stat(path string) (EntryInfo, error) {
	info, err := fs.client.Stat(path)
	if err != nil {
		return EntryInfo{}, fmt.Errorf("failed to stat remote path %s: %w", path, err)
	}

	return EntryInfo{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
		Mode:    info.Mode(),
	}, nil
}

// SFTPFile wraps sftp.File to implement the filesystem.File interface.
type SFTPFile struct {
	file *sftp.File
	path string
}

// newSFTPFile creates a new SFTPFile wrapper.
func newSFTPFile(file *sftp.File, path string) *SFTPFile {
	return &SFTPFile{
		file: file,
		path: path,
	}
}

// Read reads from the SFTP file.
func (f *SFTPFile) Read(p []byte) (n int, err error) {
	return f.file.Read(p)
}

// Close closes the SFTP file.
func (f *SFTPFile) Close() error {
	return f.file.Close()
}

// Stat returns file information for the SFTP file.
func (f *SFTPFile) Stat() (os.FileInfo, error) {
	return f.file.Stat()
}
