package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/list-files/internal/listing"
	"github.com/joe/list-files/internal/tui/shared"
	"github.com/joe/list-files/pkg/fileops"
	"github.com/joe/list-files/pkg/filesystem"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeHeight)

		return m, nil

	case EntriesLoadedMsg:
		m.path = msg.Path
		m.entries = msg.Entries
		m.cursor = 0
		m.err = nil

		return m, nil

	case ListErrorMsg:
		m.err = msg.Err

		return m, nil

	case FileLoadedMsg:
		m.mode = modeFile
		m.fileName = msg.Name
		m.viewport.SetContent(msg.Content)
		m.viewport.GotoTop()

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses by view mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == shared.KeyCtrlC {
		m.quitting = true

		return m, tea.Quit
	}

	if m.mode == modeFile {
		return m.handleFileKey(msg)
	}

	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true

		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case "enter":
		return m.openSelected()

	case "backspace", "left", "h":
		return m.ascend()

	case "a":
		m.showHidden = !m.showHidden

		return m, loadDir(m.fsys, m.path, m.showHidden, m.longFormat)

	case "l":
		m.longFormat = !m.longFormat

		return m, loadDir(m.fsys, m.path, m.showHidden, m.longFormat)
	}

	return m, nil
}

func (m Model) handleFileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "q", "left", "h":
		m.mode = modeBrowse
		m.fileName = ""

		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// openSelected descends into the selected directory or opens the selected
// file in the numbered view.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.entries) {
		return m, nil
	}

	entry := m.entries[m.cursor]
	if entry.IsDir {
		return m, loadDir(m.fsys, entry.FullPath, m.showHidden, m.longFormat)
	}

	return m, loadFile(m.fsys, entry.FullPath)
}

// ascend moves to the parent directory, staying put at the filesystem root.
func (m Model) ascend() (tea.Model, tea.Cmd) {
	parent := filepath.Dir(m.path)
	if parent == m.path {
		return m, nil
	}

	return m, loadDir(m.fsys, parent, m.showHidden, m.longFormat)
}

// loadDir collects a directory listing off the update loop.
func loadDir(fsys filesystem.FileSystem, path string, showHidden, needMetadata bool) tea.Cmd {
	return func() tea.Msg {
		entries, err := listing.Collect(fsys, path, listing.Options{
			IncludeHidden: showHidden,
			NeedMetadata:  needMetadata,
		})
		if err != nil {
			return ListErrorMsg{Err: err}
		}

		return EntriesLoadedMsg{Path: path, Entries: entries}
	}
}

// loadFile reads a file's numbered contents off the update loop.
func loadFile(fsys filesystem.FileSystem, path string) tea.Cmd {
	return func() tea.Msg {
		content, err := fileops.ReadNumbered(fsys, path)
		if err != nil {
			return ListErrorMsg{Err: err}
		}

		return FileLoadedMsg{Name: filepath.Base(path), Content: content}
	}
}
