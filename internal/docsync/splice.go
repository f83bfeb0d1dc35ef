package docsync

import "strings"

const (
	// LibraryAnchor marks where the generated doc block ends in the library.
	LibraryAnchor = "// lib"
	// UsageAnchor opens the README region that receives the example.
	UsageAnchor = "# Usage"
	// LoggingAnchor closes the README region.
	LoggingAnchor = "# Logging"
	// DocPrefix turns example lines into inner doc comments.
	DocPrefix = "//!"
	// FenceLanguage tags the README code block.
	FenceLanguage = "rust"
)

const (
	libraryDocument = "library"
	readmeDocument  = "readme"
)

// SpliceLibrary replaces everything up to and including the first
// LibraryAnchor line with the decorated example, a blank line and a fresh
// anchor. The text after that first anchor is kept byte for byte, even if it
// contains further anchor lines.
func SpliceLibrary(example, library string) (string, error) {
	offsets := findLines(library, LibraryAnchor)
	if len(offsets) == 0 {
		return "", &AnchorError{
			Document: libraryDocument,
			Anchor:   LibraryAnchor,
			Reason:   "not found",
		}
	}
	tail := library[offsets[0]+len(LibraryAnchor)+1:]

	var b strings.Builder
	b.Grow(len(example)*2 + len(tail) + 16)
	b.WriteString(Decorate(example, DocPrefix))
	b.WriteString("\n\n")
	b.WriteString(LibraryAnchor)
	b.WriteString("\n")
	b.WriteString(tail)
	return b.String(), nil
}

// SpliceReadme replaces the body between the UsageAnchor and LoggingAnchor
// headings with a fenced copy of example. Both headings must appear exactly
// once, Usage first.
func SpliceReadme(example, readme string) (string, error) {
	usage := findLines(readme, UsageAnchor)
	if err := expectOnce(usage, UsageAnchor); err != nil {
		return "", err
	}
	logging := findLines(readme, LoggingAnchor)
	if err := expectOnce(logging, LoggingAnchor); err != nil {
		return "", err
	}
	if logging[0] < usage[0] {
		return "", &AnchorError{
			Document: readmeDocument,
			Anchor:   LoggingAnchor,
			Count:    1,
			Reason:   "appears before " + UsageAnchor,
		}
	}
	preamble := readme[:usage[0]]
	tail := readme[logging[0]+len(LoggingAnchor)+1:]

	var b strings.Builder
	b.Grow(len(preamble) + len(example) + len(tail) + 48)
	b.WriteString(preamble)
	b.WriteString(UsageAnchor + "\n\n```" + FenceLanguage + "\n")
	b.WriteString(example)
	b.WriteString("```\n\n" + LoggingAnchor + "\n")
	b.WriteString(tail)
	return b.String(), nil
}

func expectOnce(offsets []int, anchor string) error {
	switch len(offsets) {
	case 1:
		return nil
	case 0:
		return &AnchorError{Document: readmeDocument, Anchor: anchor, Reason: "not found"}
	default:
		return &AnchorError{Document: readmeDocument, Anchor: anchor, Count: len(offsets), Reason: "occurs more than once"}
	}
}
