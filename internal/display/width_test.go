package display

import "testing"

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain ascii", "hello", 5},
		{"empty", "", 0},
		{"color escape", "\x1b[38;5;26mdocs\x1b[0m", 4},
		{"stacked escapes", "\x1b[38;5;8m\x1b[48;5;124msuid\x1b[0m", 4},
		{"wide runes", "日本語", 6},
		{"colored wide runes", "\x1b[38;5;26m日本\x1b[0m", 4},
		{"arrow", "a ⇒ b", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visibleWidth(tt.in); got != tt.want {
				t.Errorf("visibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("abcdef", 3); got != "abcdef" {
		t.Errorf("pad must never truncate, got %q", got)
	}
	if got := padLeft("42", 5); got != "   42" {
		t.Errorf("padLeft = %q", got)
	}
}

func TestPadCountsVisibleWidth(t *testing.T) {
	colored := "\x1b[38;5;26mab\x1b[0m"
	got := pad(colored, 4)
	if visibleWidth(got) != 4 {
		t.Errorf("padding must ignore escape bytes, visible width = %d", visibleWidth(got))
	}
}
