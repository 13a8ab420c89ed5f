package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/morgansel/taskpilot/internal/domain"
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

// PriorityBadge returns a colored priority label such as "● Critical".
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return StyleRed.Render("● Critical")
	case domain.PriorityHigh:
		return StyleYellow.Render("● High")
	case domain.PriorityMedium:
		return StyleBlue.Render("● Medium")
	case domain.PriorityLow:
		return StyleDim.Render("● Low")
	default:
		return StyleDim.Render(string(p))
	}
}

// QuadrantBadge returns a colored matrix quadrant label.
func QuadrantBadge(q domain.MatrixQuadrant) string {
	switch q {
	case domain.QuadrantUrgentImportant:
		return StyleRed.Render("Q1 " + string(q))
	case domain.QuadrantImportantNotUrgent:
		return StyleGreen.Render("Q2 " + string(q))
	case domain.QuadrantUrgentNotImportant:
		return StyleYellow.Render("Q3 " + string(q))
	default:
		return StyleDim.Render("Q4 " + string(q))
	}
}

// StatusPill returns a colored status indicator.
func StatusPill(status domain.Status) string {
	switch status {
	case domain.StatusPending:
		return StyleBlue.Render("○ Pending")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// CategoryBadge returns a purple-styled category label.
func CategoryBadge(c domain.Category) string {
	return StylePurple.Render(string(c))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold foreground.
func Bold(text string) string {
	return StyleBold.Render(text)
}
