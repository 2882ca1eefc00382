//nolint:varnamelen // Test files use idiomatic short variable names (g, etc.)
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-files/internal/config"
)

func TestPostProcessConfig(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	tests := []struct {
		name     string
		cfg      config.Config
		wantPath string
		wantErr  bool
	}{
		{
			name:     "empty path defaults to current directory",
			cfg:      config.Config{InteractiveMode: true},
			wantPath: ".",
			wantErr:  false,
		},
		{
			name:     "existing local directory passes validation",
			cfg:      config.Config{Path: tempDir},
			wantPath: tempDir,
			wantErr:  false,
		},
		{
			name:    "missing local path fails validation",
			cfg:     config.Config{Path: filepath.Join(tempDir, "nope")},
			wantErr: true,
		},
		{
			name:     "interactive mode skips validation",
			cfg:      config.Config{InteractiveMode: true, Path: filepath.Join(tempDir, "nope")},
			wantPath: filepath.Join(tempDir, "nope"),
			wantErr:  false,
		},
		{
			name:     "remote path is validated on connect, not here",
			cfg:      config.Config{Path: "sftp://joe@example.com/logs"},
			wantPath: "sftp://joe@example.com/logs",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			got, err := config.PostProcessConfig(&tt.cfg)

			if tt.wantErr {
				g.Expect(err).Should(HaveOccurred())
				g.Expect(got).Should(BeNil())

				return
			}

			g.Expect(err).ShouldNot(HaveOccurred())
			g.Expect(got.Path).Should(Equal(tt.wantPath))
		})
	}
}

func TestValidatePathAcceptsPlainFiles(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "notes.txt")
	g.Expect(writeTestFile(filePath)).Should(Succeed())

	cfg := config.Config{Path: filePath}

	g.Expect(cfg.ValidatePath()).Should(Succeed(), "listing a plain file is allowed")
}

func TestValidatePathRejectsMalformedRemoteURL(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := config.Config{Path: "sftp://example.com/no-user"}

	g.Expect(cfg.ValidatePath()).ShouldNot(Succeed())
}

func writeTestFile(path string) error {
	return os.WriteFile(path, []byte("hello"), 0o600)
}

func TestConfigDescriptionAndVersion(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var cfg config.Config

	g.Expect(cfg.Description()).ShouldNot(BeEmpty())
	g.Expect(cfg.Version()).Should(ContainSubstring("list-files"))
}
