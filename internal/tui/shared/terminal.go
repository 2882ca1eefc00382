package shared

import (
	"os"

	"golang.org/x/term"

	"github.com/joe/list-files/internal/listing"
)

// StyledTerminal implements listing.Terminal against the real host terminal:
// width comes from the stdout TTY, styling from the shared lipgloss catalog.
type StyledTerminal struct {
	// NoColor suppresses styling while keeping the width signal
	NoColor bool
}

// Width probes the stdout terminal size. A non-TTY stdout (pipe, file)
// reports no width, which degrades compact rendering to one column.
func (t StyledTerminal) Width() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}

	return width, true
}

// Colorize styles text according to its entry class.
func (t StyledTerminal) Colorize(text string, class listing.EntryClass) string {
	if t.NoColor {
		return text
	}

	switch class {
	case listing.ClassDirectory:
		return DirectoryStyle().Render(text)
	case listing.ClassExecutable:
		return ExecutableStyle().Render(text)
	case listing.ClassRegular:
		return FileItemStyle().Render(text)
	default:
		return text
	}
}
