package docsync

import "strings"

// findLines returns the byte offsets of every line in text that is exactly
// anchor followed by a newline.
func findLines(text, anchor string) []int {
	needle := anchor + "\n"
	var offsets []int
	for start := 0; start <= len(text)-len(needle); {
		idx := strings.Index(text[start:], needle)
		if idx < 0 {
			break
		}
		pos := start + idx
		if pos == 0 || text[pos-1] == '\n' {
			offsets = append(offsets, pos)
		}
		start = pos + 1
	}
	return offsets
}
