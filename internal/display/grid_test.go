package display

import (
	"strings"
	"testing"

	"github.com/meain/lsd/internal/meta"
)

// renderGridNames lays out plain file entries named names at the given
// terminal width and returns the non-empty output lines.
func renderGridNames(names []string, width int) []string {
	r := plainRenderer(width)
	root := dir("top")
	for _, name := range names {
		root.Content = append(root.Content, file(name, 1))
	}

	out := r.Render(r.Build([]*meta.Meta{root}), ModeGrid)
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestGridNeverExceedsTerminalWidth(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		width int
	}{
		{"uniform", []string{"aaa", "bbb", "ccc", "ddd", "eee", "fff"}, 20},
		{"mixed lengths", []string{"a", "longer-name", "mid", "x", "yy", "zzz"}, 24},
		{"narrow", []string{"one", "two", "three"}, 8},
		{"many", []string{"f01", "f02", "f03", "f04", "f05", "f06", "f07", "f08", "f09", "f10"}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, line := range renderGridNames(tt.names, tt.width) {
				if w := visibleWidth(line); w > tt.width {
					t.Errorf("line %q has width %d, exceeds %d", line, w, tt.width)
				}
			}
		})
	}
}

func TestGridUsesMultipleColumns(t *testing.T) {
	lines := renderGridNames([]string{"aa", "bb", "cc", "dd"}, 40)
	if len(lines) != 1 {
		t.Errorf("four short names in a wide terminal should fit one row, got %d lines: %v", len(lines), lines)
	}
}

func TestGridUnknownWidthFallsBackToSingleColumn(t *testing.T) {
	names := []string{"alpha", "beta", "gamma"}
	lines := renderGridNames(names, 0)

	if len(lines) != len(names) {
		t.Fatalf("unknown width must yield one entry per line, got %v", lines)
	}
	for i, line := range lines {
		if line != names[i] {
			t.Errorf("line %d = %q, want %q", i, line, names[i])
		}
	}
}

func TestGridColumnMajorOrder(t *testing.T) {
	// Five entries over two columns flow top to bottom first: the first
	// column holds a,b,c and the second d,e.
	lines := renderGridNames([]string{"a", "b", "c", "d", "e"}, 4)
	want := []string{"a  d", "b  e", "c"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestGridNoTrailingSpaces(t *testing.T) {
	for _, line := range renderGridNames([]string{"short", "longer-one", "x"}, 30) {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line %q has trailing padding", line)
		}
	}
}
