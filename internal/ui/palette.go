package ui

import "github.com/charmbracelet/lipgloss"

const (
	hexTeal   = "#2DD4BF"
	hexCyan   = "#22D3EE"
	hexBlue   = "#60A5FA"
	hexViolet = "#A78BFA"
	hexAmber  = "#FBBF24"
	hexRed    = "#F87171"
	hexSlate  = "#94A3B8"
)

var (
	Primary   = lipgloss.Color(hexTeal)
	Secondary = lipgloss.Color(hexViolet)
	Accent    = lipgloss.Color(hexAmber)
	Danger    = lipgloss.Color(hexRed)
	Muted     = lipgloss.Color(hexSlate)

	// Palette is cycled through by Banner.
	Palette = []lipgloss.Color{Primary, lipgloss.Color(hexCyan), lipgloss.Color(hexBlue), Secondary, Accent}
)
