package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const colGap = 2

// Column describes one table column. MaxWidth > 0 truncates longer cells
// with an ellipsis.
type Column struct {
	Header   string
	MaxWidth int
}

// RenderTable renders an aligned table with a header separator line.
// Widths are measured on visible text, so styled cells line up.
func RenderTable(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			if i >= len(row) {
				continue
			}
			cell := row[i]
			if c.MaxWidth > 0 && lipgloss.Width(cell) > c.MaxWidth {
				cell = truncate.StringWithTail(cell, uint(c.MaxWidth), "…")
			}
			cells[r][i] = cell
		}
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Header)
	}
	for _, row := range cells {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = StyleHeader.Render(c.Header)
	}
	writeRow(&b, headers, widths)

	seps := make([]string, len(cols))
	for i, w := range widths {
		seps[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, seps, widths)

	for _, row := range cells {
		writeRow(&b, row, widths)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []string, widths []int) {
	for i, cell := range row {
		b.WriteString(cell)
		if i < len(row)-1 {
			pad := max(widths[i]-lipgloss.Width(cell), 0)
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}
