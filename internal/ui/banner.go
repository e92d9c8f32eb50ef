package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerText = "secretsieve"

// Banner renders the project name with the palette cycled across letters,
// starting at offset.
func Banner(offset int) string {
	var b strings.Builder
	for i, r := range bannerText {
		color := Palette[(offset+i)%len(Palette)]
		b.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(r)))
	}
	return b.String()
}
