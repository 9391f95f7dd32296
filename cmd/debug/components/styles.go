package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4")
	SecondaryColor = lipgloss.Color("#04B575")
	AccentColor    = lipgloss.Color("#FFD700")
	DangerColor    = lipgloss.Color("#F25D94")

	// Grayscale
	LightGray = lipgloss.Color("#D9D9D9")
	Gray      = lipgloss.Color("#8B8B8B")
	DarkGray  = lipgloss.Color("#383838")

	// Biome accent colors for the status line
	SummerColor  = lipgloss.Color("#149628")
	WinterColor  = lipgloss.Color("#1E5AA0")
	DroughtColor = lipgloss.Color("#AA823C")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(DangerColor).
			Bold(true).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Padding(0, 1)

	MapBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray)
)

// BiomeStyle returns the status-line style for a biome id.
func BiomeStyle(biome string) lipgloss.Style {
	switch biome {
	case "winter":
		return lipgloss.NewStyle().Foreground(WinterColor).Bold(true)
	case "drought":
		return lipgloss.NewStyle().Foreground(DroughtColor).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(SummerColor).Bold(true)
	}
}
