//nolint:varnamelen // Test files use idiomatic short variable names (g, etc.)
package listing_test

import (
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-files/internal/listing"
)

func TestHumanizeSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.0B"},
		{1, "1.0B"},
		{512, "512.0B"},
		{1023, "1023.0B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1024 * 1024, "1.0MB"},
		{5 * 1024 * 1024, "5.0MB"},
		{1024 * 1024 * 1024, "1.0GB"},
		{1024 * 1024 * 1024 * 1024, "1.0TB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1.0PB"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(listing.HumanizeSize(tt.bytes)).Should(Equal(tt.want))
		})
	}
}

func TestHumanizeSizeAlwaysOneFractionalDigit(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, bytes := range []int64{0, 7, 999, 1024, 4096, 123456789, 1 << 50} {
		humanized := listing.HumanizeSize(bytes)

		g.Expect(humanized).Should(HaveSuffix("B"))
		g.Expect(humanized).Should(MatchRegexp(`^\d+\.\d[KMGTPY]?B$`))
	}
}

func TestRenderEmptyDirectory(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	out := listing.Render(nil,
		listing.RenderOptions{Path: "/tmp/void"},
		listing.PlainTerminal{Columns: 80},
	)

	g.Expect(out).Should(Equal("Directory '/tmp/void' is empty.\n"))
	g.Expect(strings.Count(out, "\n")).Should(Equal(1))
}

func TestRenderCompactSingleRow(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	entries := []listing.Entry{
		{Name: "A", IsDir: true},
		{Name: "b.txt"},
	}

	// Display names are "A/" and "b.txt"; column width is 5+2=7, so a
	// 20-cell terminal fits 2 columns and both entries share one row.
	out := listing.Render(entries,
		listing.RenderOptions{Path: "."},
		listing.PlainTerminal{Columns: 20},
	)

	g.Expect(out).Should(Equal("A/     b.txt  \n"))
}

func TestRenderCompactRowMajorWrap(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	entries := []listing.Entry{
		{Name: "aa"},
		{Name: "bb"},
		{Name: "cc"},
	}

	// Column width 2+2=4, terminal 8 -> 2 columns, so the third entry
	// lands alone on a partial final row that still ends with a newline.
	out := listing.Render(entries,
		listing.RenderOptions{Path: "."},
		listing.PlainTerminal{Columns: 8},
	)

	g.Expect(out).Should(HaveSuffix("\n"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	g.Expect(lines).Should(HaveLen(2))
	g.Expect(lines[0]).Should(Equal("aa  bb  "))
	g.Expect(lines[1]).Should(Equal("cc  "))
}

func TestRenderCompactNoRowExceedsColumnCount(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	entries := make([]listing.Entry, 7)
	for i := range entries {
		entries[i] = listing.Entry{Name: strings.Repeat("x", 3)}
	}

	// Width 17, column width 5 -> 3 columns.
	out := listing.Render(entries,
		listing.RenderOptions{Path: "."},
		listing.PlainTerminal{Columns: 17},
	)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		g.Expect(len(line) / 5).Should(BeNumerically("<=", 3))
	}
}

func TestRenderCompactNoWidthSignalFallsBackToOneColumn(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	entries := []listing.Entry{
		{Name: "one"},
		{Name: "two"},
	}

	out := listing.Render(entries,
		listing.RenderOptions{Path: "."},
		listing.PlainTerminal{},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	g.Expect(lines).Should(HaveLen(2))
}

func TestRenderLongFormat(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	modTime := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	entries := []listing.Entry{
		{Name: "docs", IsDir: true, ModifiedAt: modTime},
		{Name: "notes.txt", SizeBytes: 1536, ModifiedAt: modTime},
	}

	out := listing.Render(entries,
		listing.RenderOptions{Path: ".", LongFormat: true},
		listing.PlainTerminal{Columns: 80},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	g.Expect(lines).Should(HaveLen(3))

	g.Expect(lines[0]).Should(HavePrefix("total "))
	g.Expect(lines[1]).Should(ContainSubstring("docs/"))
	g.Expect(lines[1]).ShouldNot(ContainSubstring("0.0B"), "directories show no size")
	g.Expect(lines[2]).Should(ContainSubstring("notes.txt"))
	g.Expect(lines[2]).Should(ContainSubstring("1.5KB"))
	g.Expect(lines[2]).Should(ContainSubstring("Mar 05 14:30"))
}

func TestRenderColorizesByClass(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	entries := []listing.Entry{
		{Name: "bin", IsDir: true},
		{Name: "run.sh", IsExecutable: true},
		{Name: "plain.txt"},
	}

	term := classRecordingTerminal{classes: map[string]listing.EntryClass{}}
	_ = listing.Render(entries, listing.RenderOptions{Path: "."}, term)

	g.Expect(term.classes).Should(HaveKeyWithValue("bin/", listing.ClassDirectory))
	g.Expect(term.classes).Should(HaveKeyWithValue("run.sh", listing.ClassExecutable))
	g.Expect(term.classes).Should(HaveKeyWithValue("plain.txt", listing.ClassRegular))
}

// classRecordingTerminal records which class each rendered cell was given.
type classRecordingTerminal struct {
	classes map[string]listing.EntryClass
}

func (t classRecordingTerminal) Width() (int, bool) { return 0, false }

func (t classRecordingTerminal) Colorize(text string, class listing.EntryClass) string {
	t.classes[strings.TrimRight(text, " ")] = class

	return text
}
