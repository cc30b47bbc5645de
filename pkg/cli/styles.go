package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for terminal output.
type Theme struct {
	Primary lipgloss.Color // Main accent color
	Dim     lipgloss.Color // Dimmed text color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Dim   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Foreground(t.Primary),
		Dim:   lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// Row is one label/value line in a summary block.
type Row struct {
	Label string
	Value string
}

// RenderSummary renders a titled block of aligned label/value rows.
func (s Styles) RenderSummary(title string, rows []Row) string {
	width := 0
	for _, r := range rows {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}
	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteByte('\n')
	for _, r := range rows {
		label := fmt.Sprintf("%-*s", width, r.Label)
		b.WriteString("  " + s.Label.Render(label) + "  " + r.Value + "\n")
	}
	return b.String()
}
