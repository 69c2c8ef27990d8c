package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LevelStyle returns the style for a conformance level badge.
func LevelStyle(l domain.Level) lipgloss.Style {
	switch l {
	case domain.LevelA:
		return StyleGreen
	case domain.LevelAA:
		return StyleBlue
	case domain.LevelAAA:
		return StylePurple
	default:
		return StyleDim
	}
}

// LevelBadge renders a level padded to the widest level name.
func LevelBadge(l domain.Level) string {
	return LevelStyle(l).Render(fmt.Sprintf("%-3s", l))
}

// StatusMark renders the completion glyph for a rule.
func StatusMark(completed bool) string {
	if completed {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// StatusText renders the translated pass or pending token in color.
func StatusText(lang domain.Language, completed bool) string {
	label := domain.StatusLabel(lang, completed)
	if completed {
		return StyleGreen.Render(label)
	}
	return StyleRed.Render(label)
}

// Toggle renders a filter switch such as "[x] AA".
func Toggle(label string, on bool) string {
	if on {
		return StyleGreen.Render("[x]") + " " + StyleFg.Render(label)
	}
	return StyleDim.Render("[ ] " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
