// Package config handles application configuration and command-line argument parsing.
package config

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/joe/list-files/pkg/filesystem"
)

// Config holds the application configuration
type Config struct {
	Path            string `arg:"positional" default:"." help:"Directory to list (local path or sftp://user@host/path)"`
	ShowHidden      bool   `arg:"-a,--all" help:"Show hidden entries (names starting with a dot)"`
	LongFormat      bool   `arg:"-l,--long" help:"Long listing format with size and modification time"`
	Pattern         string `arg:"-p,--pattern" help:"Only list entries whose name matches this glob (case-insensitive)"`
	InteractiveMode bool   `arg:"-i,--interactive" help:"Browse the directory interactively"`
	NoColor         bool   `arg:"--no-color" help:"Disable color output"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "A small directory listing tool with an interactive file browser"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "list-files 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		Path: ".",
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Path == "" {
		cfg.Path = "."
	}

	// Remote paths are validated when the connection is made; only local
	// paths can be checked up front.
	if !cfg.InteractiveMode {
		if err := cfg.ValidatePath(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// ValidatePath validates that a local listing path exists. Listing a plain
// file is allowed (it renders as a single-entry listing), so only existence
// is checked here.
func (cfg *Config) ValidatePath() error {
	parsed, err := filesystem.ParsePath(cfg.Path)
	if err != nil {
		return err
	}
	if parsed.IsRemote {
		return nil
	}

	_, err = os.Stat(parsed.LocalPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("cannot access '%s': %w", cfg.Path, os.ErrNotExist)
	}
	if err != nil {
		return fmt.Errorf("cannot access '%s': %w", cfg.Path, err)
	}

	return nil
}
