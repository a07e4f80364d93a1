package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Task list styles
	TaskRow = lipgloss.NewStyle()

	TaskSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	TaskDone = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	StatusBadge = lipgloss.NewStyle().
			Foreground(Secondary)

	ProjectLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	FilterActive = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

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

// categoryColors maps the color names allowed in settings to terminal colors
var categoryColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#EF4444"),
	"orange": lipgloss.Color("#F97316"),
	"yellow": lipgloss.Color("#EAB308"),
	"green":  lipgloss.Color("#10B981"),
	"blue":   lipgloss.Color("#60A5FA"),
	"purple": lipgloss.Color("#8B5CF6"),
	"pink":   lipgloss.Color("#EC4899"),
	"gray":   lipgloss.Color("#6B7280"),
}

// CategoryColor returns the terminal color for a category's configured
// color name, falling back to the primary color for unknown names.
func CategoryColor(name string) lipgloss.Color {
	if c, ok := categoryColors[name]; ok {
		return c
	}
	return Primary
}

// CategoryStyle returns a style rendering a category badge in its color
func CategoryStyle(colorName string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(colorName)).Bold(true)
}
