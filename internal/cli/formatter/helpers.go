package formatter

import (
	"fmt"
	"math"
	"time"
)

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// RelativeDateFrom returns a human-friendly relative date string from a
// reference time.
func RelativeDateFrom(t, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today " + t.Format("15:04")
	case days == 1:
		return "Tomorrow " + t.Format("15:04")
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0:
		return t.Format("Jan 2")
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	default:
		return t.Format("Jan 2")
	}
}

// RelativeDateStyled returns RelativeDateFrom with urgency coloring.
func RelativeDateStyled(t, now time.Time) string {
	text := RelativeDateFrom(t, now)
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days < 0:
		return StyleRed.Render(text)
	case days <= 2:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}
