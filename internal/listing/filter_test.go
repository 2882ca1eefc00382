//nolint:varnamelen // Test files use idiomatic short variable names (g, etc.)
package listing_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-files/internal/listing"
)

func TestGlobFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		entry   string
		want    bool
	}{
		{"empty pattern matches everything", "", "anything.txt", true},
		{"empty pattern matches hidden", "", ".bashrc", true},
		{"extension match", "*.go", "main.go", true},
		{"extension mismatch", "*.go", "main.rs", false},
		{"case-insensitive pattern", "*.GO", "main.go", true},
		{"case-insensitive name", "*.go", "MAIN.GO", true},
		{"question mark wildcard", "file?.txt", "file1.txt", true},
		{"question mark needs a character", "file?.txt", "file.txt", false},
		{"character class", "report-[0-9]*", "report-2024.csv", true},
		{"invalid pattern matches nothing", "[", "anything", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			filter := listing.NewGlobFilter(tt.pattern)

			g.Expect(filter.ShouldInclude(tt.entry)).Should(Equal(tt.want))
		})
	}
}
