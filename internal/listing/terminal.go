package listing

// Terminal is the capability surface the renderer needs from its host
// environment. Keeping it behind an interface keeps Render a pure function:
// tests inject fixed widths and plain text, the CLI injects the real
// terminal probe and lipgloss styling.
type Terminal interface {
	// Width returns the terminal width in cells, and false when no usable
	// width signal is available.
	Width() (int, bool)

	// Colorize applies display styling for the given entry class. It must
	// not change the visible length decisions already made by the caller.
	Colorize(text string, class EntryClass) string
}

// PlainTerminal is a Terminal with a fixed width and no styling.
type PlainTerminal struct {
	// Columns is the reported width; zero or negative means unavailable
	Columns int
}

// Width returns the configured width, or unavailable when it is not positive.
func (t PlainTerminal) Width() (int, bool) {
	if t.Columns > 0 {
		return t.Columns, true
	}

	return 0, false
}

// Colorize returns the text unchanged.
func (t PlainTerminal) Colorize(text string, _ EntryClass) string {
	return text
}
