//nolint:varnamelen // Test files use idiomatic short variable names (g, etc.)
package filesystem_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-files/pkg/filesystem"
)

func TestParsePathLocal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{"absolute path", "/home/joe/data"},
		{"relative path", "./data"},
		{"bare name", "data"},
		{"current directory", "."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			parsed, err := filesystem.ParsePath(tt.path)

			g.Expect(err).ShouldNot(HaveOccurred())
			g.Expect(parsed.IsRemote).Should(BeFalse())
			g.Expect(parsed.LocalPath).Should(Equal(tt.path))
		})
	}
}

func TestParsePathSFTP(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	parsed, err := filesystem.ParsePath("sftp://joe@myserver.com/home/joe/logs")

	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(parsed.IsRemote).Should(BeTrue())
	g.Expect(parsed.User).Should(Equal("joe"))
	g.Expect(parsed.Host).Should(Equal("myserver.com"))
	g.Expect(parsed.Port).Should(Equal(filesystem.DefaultSFTPPort))
	g.Expect(parsed.Path).Should(Equal("/home/joe/logs"))
}

func TestParsePathSFTPWithPort(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	parsed, err := filesystem.ParsePath("sftp://joe@myserver.com:2222/backups")

	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(parsed.Port).Should(Equal(2222))
}

func TestParsePathSFTPDefaultsToRoot(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	parsed, err := filesystem.ParsePath("sftp://joe@myserver.com")

	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(parsed.Path).Should(Equal("/"))
}

func TestParsePathSFTPInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{"missing user", "sftp://myserver.com/data"},
		{"missing host", "sftp://joe@/data"},
		{"bad port", "sftp://joe@myserver.com:notaport/data"},
		{"port out of range", "sftp://joe@myserver.com:99999/data"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			_, err := filesystem.ParsePath(tt.url)

			g.Expect(err).Should(HaveOccurred())
		})
	}
}
