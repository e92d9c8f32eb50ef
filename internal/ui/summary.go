package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	typeStyle  = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	spanStyle  = lipgloss.NewStyle().Foreground(Muted)
	valueStyle = lipgloss.NewStyle().Foreground(Accent)
	cleanStyle = lipgloss.NewStyle().Foreground(Primary)
)

// Summary formats the closing line of a detect run.
func Summary(secrets int, sources int, scanned uint64) string {
	size := humanize.Bytes(scanned)
	noun := "sources"
	if sources == 1 {
		noun = "source"
	}
	switch secrets {
	case 0:
		return fmt.Sprintf("secretsieve: no secrets in %d %s (%s scanned)", sources, noun, size)
	case 1:
		return fmt.Sprintf("secretsieve: 1 secret in %d %s (%s scanned)", sources, noun, size)
	default:
		return fmt.Sprintf("secretsieve: %s secrets in %d %s (%s scanned)", humanize.Comma(int64(secrets)), sources, noun, size)
	}
}

// Finding formats one detected secret for text output.
func Finding(source string, line, start, end int, secretType, value string) string {
	loc := fmt.Sprintf("%s:%d [%d:%d]", source, line, start, end)
	return fmt.Sprintf("%s %s %s", spanStyle.Render(loc), typeStyle.Render(secretType), valueStyle.Render(value))
}

// Clean styles a success message.
func Clean(msg string) string {
	return cleanStyle.Render(msg)
}
