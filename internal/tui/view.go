package tui

import (
	"fmt"
	"strings"

	"github.com/joe/list-files/internal/listing"
	"github.com/joe/list-files/internal/tui/shared"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == modeFile {
		return m.fileView()
	}

	return m.browseView()
}

func (m Model) browseView() string {
	var b strings.Builder

	b.WriteString(shared.RenderTitle(m.path))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(shared.RenderError(m.err.Error()))
		b.WriteString("\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(shared.RenderDim("(empty directory)"))
		b.WriteString("\n")
	}

	for i, entry := range m.entries {
		b.WriteString(m.entryLine(i, entry))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(shared.RenderDim(
		"enter: open  backspace: up  a: hidden  l: details  q: quit"))

	return b.String()
}

func (m Model) entryLine(index int, entry listing.Entry) string {
	prefix := "  "
	if index == m.cursor {
		prefix = shared.CursorArrow
	}

	name := entry.DisplayName()

	var line string
	if m.longFormat {
		size := ""
		if !entry.IsDir {
			size = listing.HumanizeSize(entry.SizeBytes)
		}
		line = fmt.Sprintf("%-*s %*s %s",
			listing.LongNameWidth, name,
			listing.LongSizeWidth, size,
			entry.ModifiedAt.Format(listing.ModTimeLayout))
	} else {
		line = name
	}

	if index == m.cursor {
		return prefix + shared.SelectedStyle().Render(line)
	}

	styled := shared.StyledTerminal{}.Colorize(line, entry.Class())

	return prefix + styled
}

func (m Model) fileView() string {
	var b strings.Builder

	b.WriteString(shared.RenderTitle(m.fileName))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(shared.RenderDim("esc: back  ↑/↓: scroll  ctrl+c: quit"))

	return b.String()
}
