// Package main is the entry point for the list-files application.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/list-files/internal/config"
	"github.com/joe/list-files/internal/listing"
	"github.com/joe/list-files/internal/tui"
	"github.com/joe/list-files/internal/tui/shared"
	apperrors "github.com/joe/list-files/pkg/errors"
	"github.com/joe/list-files/pkg/filesystem"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fail(err, "")
	}

	fsys, basePath, closer, err := filesystem.CreateFileSystem(cfg.Path)
	if err != nil {
		fail(err, cfg.Path)
	}
	if closer != nil {
		defer closer()
	}

	if cfg.InteractiveMode {
		runBrowser(fsys, basePath, cfg)

		return
	}

	list(fsys, basePath, cfg)
}

// list renders a single non-interactive listing to stdout.
func list(fsys filesystem.FileSystem, basePath string, cfg *config.Config) {
	terminal := shared.StyledTerminal{NoColor: cfg.NoColor}
	renderOpts := listing.RenderOptions{Path: cfg.Path, LongFormat: cfg.LongFormat}

	info, err := fsys.Stat(basePath)
	if err != nil {
		fail(err, cfg.Path)
	}

	// A plain file renders as a single-entry listing.
	if !info.IsDir {
		entry := listing.Entry{
			Name:         info.Name,
			IsExecutable: info.Mode.Perm()&0o111 != 0,
			SizeBytes:    info.Size,
			ModifiedAt:   info.ModTime,
			FullPath:     basePath,
		}
		fmt.Print(listing.Render([]listing.Entry{entry}, renderOpts, terminal))

		return
	}

	entries, err := listing.Collect(fsys, basePath, listing.Options{
		IncludeHidden: cfg.ShowHidden,
		NeedMetadata:  cfg.LongFormat,
		Pattern:       cfg.Pattern,
	})
	if err != nil {
		fail(err, cfg.Path)
	}

	fmt.Print(listing.Render(entries, renderOpts, terminal))
}

// runBrowser starts the interactive browser.
func runBrowser(fsys filesystem.FileSystem, basePath string, cfg *config.Config) {
	model := tui.NewModel(fsys, basePath, cfg)

	// Only use alt screen if stdout is a TTY
	var opts []tea.ProgramOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil {
		fail(err, cfg.Path)
	}
}

// fail reports an enriched error with suggestions and exits. Nothing is ever
// swallowed silently; every failure produces at least this one signal.
func fail(err error, affectedPath string) {
	enriched := apperrors.NewEnricher().Enrich(err, affectedPath)

	fmt.Fprintf(os.Stderr, "Error: %v\n", enriched)

	if suggestions := apperrors.FormatSuggestions(enriched); suggestions != "" {
		fmt.Fprintln(os.Stderr, "Try these solutions:")
		fmt.Fprintln(os.Stderr, suggestions)
	}

	os.Exit(1)
}
