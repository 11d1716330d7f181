package display

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// visibleWidth returns the number of terminal cells the string occupies,
// not counting ANSI escape sequences. Wide runes (CJK, emoji) count per
// their display width.
func visibleWidth(s string) int {
	return runewidth.StringWidth(stripEscapes(s))
}

// stripEscapes removes CSI escape sequences ("\x1b[...m" and friends).
func stripEscapes(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			// CSI sequences end on a byte in the 0x40-0x7e range.
			if r >= 0x40 && r <= 0x7e && r != '[' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pad right-pads the string with spaces to the given visible width.
func pad(s string, width int) string {
	gap := width - visibleWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// padLeft left-pads the string with spaces to the given visible width.
func padLeft(s string, width int) string {
	gap := width - visibleWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
