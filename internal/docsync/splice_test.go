package docsync

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpliceLibrary(t *testing.T) {
	got, err := SpliceLibrary("fn main() {}\n", "old header\n// lib\nfn keep() {}\n")
	require.NoError(t, err)
	assert.Equal(t, "//!fn main() {}\n//!\n\n// lib\nfn keep() {}\n", got)
}

func TestSpliceLibraryKeepsTail(t *testing.T) {
	tails := []string{
		"",
		"fn keep() {}\n",
		"no newline at end",
		"mod a;\n// lib\nmod b;\n",
	}
	for _, tail := range tails {
		got, err := SpliceLibrary("x", "header\n// lib\n"+tail)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got, "\n// lib\n"+tail), "tail %q lost in %q", tail, got)
		assert.Equal(t, "//!x\n\n// lib\n"+tail, got)
	}
}

func TestSpliceLibraryAnchorAtStart(t *testing.T) {
	got, err := SpliceLibrary("e", "// lib\nrest\n")
	require.NoError(t, err)
	assert.Equal(t, "//!e\n\n// lib\nrest\n", got)
}

func TestSpliceLibraryMissingAnchor(t *testing.T) {
	libraries := map[string]string{
		"absent":            "fn keep() {}\n",
		"empty":             "",
		"no newline":        "header\n// lib",
		"indented":          "  // lib\nfn keep() {}\n",
		"inside doc line":   "//!// lib\nfn keep() {}\n",
		"trailing text":     "// library\n",
		"different comment": "/* lib */\n",
	}
	for name, library := range libraries {
		t.Run(name, func(t *testing.T) {
			_, err := SpliceLibrary("fn main() {}\n", library)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingAnchor)

			var anchorErr *AnchorError
			require.True(t, errors.As(err, &anchorErr))
			assert.Equal(t, LibraryAnchor, anchorErr.Anchor)
			assert.Equal(t, "library", anchorErr.Document)
			assert.Zero(t, anchorErr.Count)
		})
	}
}

func TestSpliceReadme(t *testing.T) {
	got, err := SpliceReadme("E", "A\n# Usage\nB\n# Logging\nC")
	require.NoError(t, err)
	assert.Equal(t, "A\n# Usage\n\n```rust\nE```\n\n# Logging\nC", got)
}

func TestSpliceReadmeScenario(t *testing.T) {
	got, err := SpliceReadme("fn main() {}\n", "Intro\n# Usage\nold usage\n# Logging\nLog info")
	require.NoError(t, err)
	assert.Equal(t, "Intro\n# Usage\n\n```rust\nfn main() {}\n```\n\n# Logging\nLog info", got)
}

func TestSpliceReadmeEmptyRegions(t *testing.T) {
	got, err := SpliceReadme("", "# Usage\n# Logging\n")
	require.NoError(t, err)
	assert.Equal(t, "# Usage\n\n```rust\n```\n\n# Logging\n", got)
}

func TestSpliceReadmeAnchorErrors(t *testing.T) {
	tests := []struct {
		name   string
		readme string
		anchor string
		count  int
	}{
		{name: "no anchors", readme: "Intro\n", anchor: UsageAnchor},
		{name: "no usage", readme: "A\n# Logging\nC", anchor: UsageAnchor},
		{name: "no logging", readme: "A\n# Usage\nB\n", anchor: LoggingAnchor},
		{name: "reversed", readme: "A\n# Logging\nB\n# Usage\nC", anchor: LoggingAnchor, count: 1},
		{name: "duplicate usage", readme: "# Usage\n# Usage\n# Logging\n", anchor: UsageAnchor, count: 2},
		{name: "duplicate logging", readme: "# Usage\n# Logging\nx\n# Logging\n", anchor: LoggingAnchor, count: 2},
		{name: "subheading only", readme: "## Usage\nB\n# Logging\n", anchor: UsageAnchor},
		{name: "logging without newline", readme: "# Usage\nB\n# Logging", anchor: LoggingAnchor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SpliceReadme("E", tt.readme)
			require.ErrorIs(t, err, ErrMissingAnchor)

			var anchorErr *AnchorError
			require.ErrorAs(t, err, &anchorErr)
			assert.Equal(t, "readme", anchorErr.Document)
			assert.Equal(t, tt.anchor, anchorErr.Anchor)
			assert.Equal(t, tt.count, anchorErr.Count)
			assert.Contains(t, err.Error(), tt.anchor)
		})
	}
}

func TestSpliceReadmeIsIdempotent(t *testing.T) {
	example := "fn main() {\n    println!(\"hi\");\n}\n"
	first, err := SpliceReadme(example, "Intro\n# Usage\nold\n# Logging\ntail\n")
	require.NoError(t, err)
	second, err := SpliceReadme(example, first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSpliceLibraryIsIdempotent(t *testing.T) {
	example := "// lib\nfn main() {}\n"
	first, err := SpliceLibrary(example, "header\n// lib\nmod keep;\n")
	require.NoError(t, err)
	second, err := SpliceLibrary(example, first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "//!// lib\n"))
}

func TestSpliceReadmeExampleWithAnchorLine(t *testing.T) {
	// An example containing a bare heading line that matches an anchor is
	// copied verbatim, so the next splice sees that anchor twice.
	example := "fn main() {}\n# Logging\n"
	first, err := SpliceReadme(example, "Intro\n# Usage\nold\n# Logging\ntail\n")
	require.NoError(t, err)
	assert.Equal(t, "Intro\n# Usage\n\n```rust\nfn main() {}\n# Logging\n```\n\n# Logging\ntail\n", first)

	_, err = SpliceReadme(example, first)
	require.ErrorIs(t, err, ErrMissingAnchor)

	var anchorErr *AnchorError
	require.ErrorAs(t, err, &anchorErr)
	assert.Equal(t, LoggingAnchor, anchorErr.Anchor)
	assert.Equal(t, 2, anchorErr.Count)
}
