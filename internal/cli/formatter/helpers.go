package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner) + "\n"
	}

	return boxStyle.Render(content) + "\n"
}

// HumanDate returns "Today", "Yesterday" or a short absolute date,
// relative to now.
func HumanDate(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Mon Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes renders minutes as "Xh Ym".
func FormatMinutes(min int) string {
	return analytics.FormatDuration(min)
}

// FormatHours renders fractional hours with one decimal.
func FormatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

// FormatMood renders an optional mood score, colored by value.
func FormatMood(mood *int) string {
	if mood == nil {
		return Dim("-")
	}
	return MoodStyle(*mood).Render(fmt.Sprintf("%d/10", *mood))
}

// Truncate shortens s to max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Label returns the display name for key, falling back to a short id.
func Label(names map[string]string, key string) string {
	if key == domain.UnassignedProject {
		return key
	}
	if n, ok := names[key]; ok && n != "" {
		return n
	}
	if len(key) > 8 {
		return key[:8]
	}
	return key
}
