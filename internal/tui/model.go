// Package tui implements the interactive file browser: directory navigation,
// hidden/long toggles, and a numbered-line file view.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/list-files/internal/config"
	"github.com/joe/list-files/internal/listing"
	"github.com/joe/list-files/pkg/filesystem"
)

// viewMode selects what the browser is currently showing.
type viewMode int

const (
	modeBrowse viewMode = iota
	modeFile
)

// Model represents the browser state. The current directory is an explicit
// value threaded through messages; the process working directory is never
// changed.
type Model struct {
	fsys filesystem.FileSystem

	// Browse state
	path       string
	entries    []listing.Entry
	cursor     int
	showHidden bool
	longFormat bool
	err        error

	// File view state
	mode     viewMode
	fileName string
	viewport viewport.Model

	width    int
	height   int
	quitting bool
}

// EntriesLoadedMsg is sent when a directory listing finished loading.
type EntriesLoadedMsg struct {
	Path    string
	Entries []listing.Entry
}

// ListErrorMsg is sent when a directory could not be listed. The previous
// listing stays on screen.
type ListErrorMsg struct {
	Err error
}

// FileLoadedMsg is sent when a file's numbered contents finished loading.
type FileLoadedMsg struct {
	Name    string
	Content string
}

// NewModel creates a browser model rooted at the configured path.
func NewModel(fsys filesystem.FileSystem, startPath string, cfg *config.Config) Model {
	vp := viewport.New(defaultWidth, defaultHeight)

	return Model{
		fsys:       fsys,
		path:       startPath,
		showHidden: cfg.ShowHidden,
		longFormat: cfg.LongFormat,
		viewport:   vp,
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return loadDir(m.fsys, m.path, m.showHidden, m.longFormat)
}

// Path returns the directory currently shown (for testing)
func (m Model) Path() string {
	return m.path
}

// Entries returns the entries currently shown (for testing)
func (m Model) Entries() []listing.Entry {
	return m.entries
}

// unexported constants.
const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 4 // title + blank + help lines around the viewport
)
