package display

import "strings"

// gridGap is the number of spaces between grid columns.
const gridGap = 2

// renderGrid flows the name cells into as many columns as the terminal
// width allows, column-major. With an unknown width it degrades to one
// cell per line, and a cell wider than the terminal still gets its own
// line rather than being truncated.
func (r *Renderer) renderGrid(b *strings.Builder, nodes []*Node) {
	cells := make([]string, len(nodes))
	widths := make([]int, len(nodes))
	for i, n := range nodes {
		cells[i] = r.nameCell(n, false)
		widths[i] = visibleWidth(cells[i])
	}

	cols := fitColumns(widths, r.Width)
	rows := (len(cells) + cols - 1) / cols
	colWidths := columnWidths(widths, cols, rows)

	for row := 0; row < rows; row++ {
		line := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			idx := col*rows + row
			if idx >= len(cells) {
				break
			}
			line = append(line, pad(cells[idx], colWidths[col]))
		}
		b.WriteString(strings.TrimRight(strings.Join(line, strings.Repeat(" ", gridGap)), " "))
		b.WriteString("\n")
	}
}

// fitColumns picks the largest column count whose widest-cell-per-column
// layout still fits the terminal width. Returns at least 1.
func fitColumns(widths []int, termWidth int) int {
	if termWidth <= 0 || len(widths) == 0 {
		return 1
	}

	for cols := len(widths); cols > 1; cols-- {
		rows := (len(widths) + cols - 1) / cols
		colWidths := columnWidths(widths, cols, rows)

		total := gridGap * (len(colWidths) - 1)
		for _, w := range colWidths {
			total += w
		}
		if total <= termWidth {
			return len(colWidths)
		}
	}
	return 1
}

// columnWidths computes the max cell width per column for a column-major
// layout of the given shape. Trailing empty columns are dropped.
func columnWidths(widths []int, cols, rows int) []int {
	out := make([]int, 0, cols)
	for col := 0; col < cols; col++ {
		max := 0
		seen := false
		for row := 0; row < rows; row++ {
			idx := col*rows + row
			if idx >= len(widths) {
				break
			}
			seen = true
			if widths[idx] > max {
				max = widths[idx]
			}
		}
		if !seen {
			break
		}
		out = append(out, max)
	}
	return out
}
