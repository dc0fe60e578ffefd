package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Faint     = lipgloss.Color("#374151")
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Diagram node styles
	NodePrimary = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#93C5FD")).
			Bold(true)

	NodeSecondary = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A7F3D0"))

	NodeFocused = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	NodeHighlight = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	NodeDimmed = lipgloss.NewStyle().
			Foreground(Faint)

	PairFrame = lipgloss.NewStyle().
			Foreground(Muted)

	EdgeDimmed = lipgloss.NewStyle().
			Foreground(Faint)

	Callout = lipgloss.NewStyle().
		Foreground(Black).
		Background(Warning).
		Bold(true)

	ClickBadge = lipgloss.NewStyle().
			Foreground(White).
			Background(Error).
			Bold(true)

	// Drawer
	Drawer = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	DrawerHeading = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Chip = lipgloss.NewStyle().
		Foreground(White).
		Background(lipgloss.Color("#1F2937")).
		Padding(0, 1)

	LinkCursor = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// RelationColor returns the line color for a relation style. Styles carry
// hex colors; an empty value falls back to Muted.
func RelationColor(hex string) lipgloss.Color {
	if hex == "" {
		return Muted
	}
	return lipgloss.Color(hex)
}
