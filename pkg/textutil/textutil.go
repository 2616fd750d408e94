// Package textutil formats text for terminal output.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines of at most width runes, breaking between words. Runs of whitespace
// collapse to a single space, but explicit newlines are kept as line breaks. A word longer than
// width gets a line of its own. Wrap returns nil for blank text.
func Wrap(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(strings.Fields(paragraph), width)...)
	}
	return lines
}

func wrapParagraph(words []string, width int) []string {
	var (
		lines []string
		line  strings.Builder
		n     int
	)
	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if n > 0 && n+1+wordLen > width {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wordLen
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
