package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Options controls the styling of a rendered grid.
type Options struct {
	HeaderStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
	EntryStyle  lipgloss.Style
	TodayStyle  lipgloss.Style
	ShowHeader  bool
}

// Render produces a multi-line month view. Days holding items use EntryStyle.
func Render[T any](g Grid[T], opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(strings.Join(WeekdayLabels[:], " ")))
	}

	for _, week := range g.Weeks() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			cells = append(cells, renderCell(c, opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell[T any](c Cell[T], opts Options) string {
	if c.Empty() {
		return opts.EmptyStyle.Render("  ")
	}
	style := opts.EmptyStyle
	if len(c.Items) > 0 {
		style = opts.EntryStyle
	}
	if c.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	return style.Render(fmt.Sprintf("%2d", c.Day))
}
