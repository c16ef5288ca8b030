package output

import "github.com/charmbracelet/lipgloss"

// Color constants using ANSI 256-color palette.
const (
	// ColorPrimary is used for sizes and titles (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorSecondary is used for on-disk sizes (green).
	ColorSecondary = lipgloss.Color("42")

	// ColorMuted is used for labels and secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

var (
	// FooterBox contains the usage summary.
	FooterBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			MarginTop(1)

	// LabelStyle is used for field labels (e.g., "Root:", "Nodes:").
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ValueStyle is used for field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	// ApparentStyle is used for apparent sizes.
	ApparentStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// ActualStyle is used for on-disk sizes.
	ActualStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// PathStyle is used for node paths.
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
