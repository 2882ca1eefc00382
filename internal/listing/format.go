package listing

import (
	"fmt"
	"math"
	"strings"
)

// Exported constants.
const (
	// ColumnGap is the padding added after the longest display name when
	// computing compact-mode column width
	ColumnGap = 2
	// ModTimeLayout is the fixed, locale-stable modification time format
	ModTimeLayout = "Jan 02 15:04"
	// LongNameWidth is the name column width in long format
	LongNameWidth = 30
	// LongSizeWidth is the right-justified size column width in long format
	LongSizeWidth = 8
)

// RenderOptions controls how a collected listing is rendered.
type RenderOptions struct {
	// Path is the listed directory, used only for the empty-directory message
	Path string

	// LongFormat selects one-entry-per-line output with metadata
	LongFormat bool
}

// sizeUnits is the binary unit ladder; anything past P collapses to Y.
var sizeUnits = []string{"", "K", "M", "G", "T", "P"} //nolint:gochecknoglobals // fixed unit table

// HumanizeSize renders a byte count with a binary (1024-based) unit scale and
// exactly one fractional digit: 1536 -> "1.5KB", 0 -> "0.0B".
func HumanizeSize(bytes int64) string {
	num := float64(bytes)

	for _, unit := range sizeUnits {
		if math.Abs(num) < 1024.0 {
			return fmt.Sprintf("%.1f%sB", num, unit)
		}
		num /= 1024.0
	}

	return fmt.Sprintf("%.1fYB", num)
}

// Render formats a collected listing as text. It is a pure function of its
// inputs; the Terminal capability supplies the width signal and styling.
// An empty listing renders as exactly one line and never fails.
func Render(entries []Entry, opts RenderOptions, term Terminal) string {
	if len(entries) == 0 {
		return fmt.Sprintf("Directory '%s' is empty.\n", opts.Path)
	}

	if opts.LongFormat {
		return renderLong(entries, term)
	}

	return renderCompact(entries, term)
}

// renderCompact lays entries out row-major in as many columns as fit the
// terminal, one column when no width signal exists. Every row ends with a
// newline, including a partial final row.
func renderCompact(entries []Entry, term Terminal) string {
	columnWidth := 0
	for _, entry := range entries {
		if l := len(entry.DisplayName()); l > columnWidth {
			columnWidth = l
		}
	}
	columnWidth += ColumnGap

	columns := 1
	if width, ok := term.Width(); ok {
		if c := width / columnWidth; c > 1 {
			columns = c
		}
	}

	var b strings.Builder

	for i, entry := range entries {
		cell := fmt.Sprintf("%-*s", columnWidth, entry.DisplayName())
		b.WriteString(term.Colorize(cell, entry.Class()))

		if (i+1)%columns == 0 || i == len(entries)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderLong emits one styled line per entry: name, right-justified humanized
// size (blank for directories), modification time. The leading "total" line
// approximates block usage and is cosmetic.
func renderLong(entries []Entry, term Terminal) string {
	var b strings.Builder

	var blocks int64
	for _, entry := range entries {
		blocks += (entry.SizeBytes + 511) / 512
	}
	fmt.Fprintf(&b, "total %d\n", blocks/2)

	for _, entry := range entries {
		size := ""
		if !entry.IsDir {
			size = HumanizeSize(entry.SizeBytes)
		}

		line := fmt.Sprintf("%-*s %*s %s",
			LongNameWidth, entry.DisplayName(),
			LongSizeWidth, size,
			entry.ModifiedAt.Format(ModTimeLayout),
		)

		b.WriteString(term.Colorize(line, entry.Class()))
		b.WriteString("\n")
	}

	return b.String()
}
