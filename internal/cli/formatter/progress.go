package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a whole percentage.
// Green from 67%, yellow from 34%, red below.
func RenderProgress(percent, width int) string {
	return fmt.Sprintf("[%s] %3d%%", RenderCompactBar(percent, width, false), clampPercent(percent))
}

// RenderCompactBar renders only the blocks. dim drops the color.
func RenderCompactBar(percent, width int, dim bool) string {
	percent = clampPercent(percent)
	if width < 2 {
		width = 2
	}

	filled := percent * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if dim {
		return bar
	}

	style := StyleGreen
	switch {
	case percent < 34:
		style = StyleRed
	case percent < 67:
		style = StyleYellow
	}
	return style.Render(bar)
}

func clampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
