package gen

import "strings"

// Continuation-line geometry for long declarations and calls: tokens are
// filled to 70 columns behind an eight-space indent, and a token is never
// split across lines.
const (
	fillWidth  = 70
	fillIndent = "        "
)

// fill greedily wraps the whitespace-separated tokens of s. A token longer
// than the fill width still gets a line of its own rather than being broken.
func fill(s string) string {
	var b strings.Builder

	line := fillIndent
	empty := true

	for _, word := range strings.Fields(s) {
		if empty {
			line += word
			empty = false

			continue
		}

		if len(line)+1+len(word) <= fillWidth {
			line += " " + word

			continue
		}

		b.WriteString(line)
		b.WriteByte('\n')
		line = fillIndent + word
	}

	if !empty {
		b.WriteString(line)
	}

	return b.String()
}
