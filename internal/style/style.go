package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Maze cells
	Wall     = lipgloss.NewStyle().Foreground(lipgloss.Color("250")) // Light grey
	Start    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // Bright red
	End      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))  // Bright green
	Hint     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	Corridor = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // Sky blue
	DeadEnd  = lipgloss.NewStyle().Foreground(lipgloss.Color("204")) // Pinkish-reddish purple
	Junction = lipgloss.NewStyle().Foreground(lipgloss.Color("228")) // Bright yellow

	// Walker
	Walker = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")) // Bright yellow
	Trail  = lipgloss.NewStyle().Foreground(lipgloss.Color("136"))            // Dark yellow

	PlayHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Solved     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Best       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // Bright red

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
