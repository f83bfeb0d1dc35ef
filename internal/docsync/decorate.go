package docsync

import "strings"

// Decorate prefixes every line of text with prefix. Lines are split on '\n'
// only, so a trailing newline yields a final line holding just the prefix.
func Decorate(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
