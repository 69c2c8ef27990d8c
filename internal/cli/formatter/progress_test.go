package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCompactBar(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		width   int
		filled  int
		total   int
	}{
		{"0%", 0, 10, 0, 10},
		{"50%", 50, 10, 5, 10},
		{"100%", 100, 10, 10, 10},
		{"over 100% clamps", 150, 10, 10, 10},
		{"negative clamps", -5, 10, 0, 10},
		{"tiny width clamps to 2", 50, 1, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderCompactBar(tt.percent, tt.width, true)
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, tt.total, strings.Count(got, filledBlock)+strings.Count(got, emptyBlock))
			assert.NotContains(t, got, "%")
		})
	}
}

func TestRenderProgress(t *testing.T) {
	got := stripANSI(RenderProgress(45, 10))
	assert.Equal(t, "[████░░░░░░]  45%", got)

	assert.Contains(t, stripANSI(RenderProgress(100, 4)), "100%")
	assert.Contains(t, stripANSI(RenderProgress(-3, 4)), "  0%")
}
