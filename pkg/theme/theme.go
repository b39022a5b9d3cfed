// Package theme holds the Lip Gloss styles of each planner page. A theme is
// chosen per page and passed down; nothing is global.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/planner/pkg/calendar"
)

// Page names.
const (
	Dashboard  = "dashboard"
	Calendar   = "calendar"
	Finance    = "finance"
	Journal    = "journal"
	Activities = "activities"
	Watchlist  = "watchlist"
	Outings    = "outings"
	Routines   = "routines"
	SelfLove   = "selflove"
	Sport      = "sport"
	Profile    = "profile"
)

// Theme groups the styles used to print one page.
type Theme struct {
	Page   string
	Accent string

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Badge    lipgloss.Style
	Panel    PanelTheme
	Calendar calendar.Options
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

var accents = map[string]string{
	Dashboard:  "#f472b6",
	Calendar:   "#6366F1",
	Finance:    "#10B981",
	Journal:    "#a78bfa",
	Activities: "#F59E0B",
	Watchlist:  "#0EA5E9",
	Outings:    "#fb7185",
	Routines:   "#34d399",
	SelfLove:   "#EC4899",
	Sport:      "#f97316",
	Profile:    "#60a5fa",
}

// Pages lists the page names in menu order.
var Pages = []string{Dashboard, Calendar, Finance, Journal, Activities, Watchlist, Outings, Routines, SelfLove, Sport, Profile}

// ForPage returns the theme of page. Unknown pages get Default.
func ForPage(page string) Theme {
	accent, ok := accents[page]
	if !ok {
		return Default()
	}
	return build(page, accent)
}

// Default is the neutral theme.
func Default() Theme {
	return build("", "212")
}

func build(page, accent string) Theme {
	color := lipgloss.Color(accent)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	return Theme{
		Page:     page,
		Accent:   accent,
		Title:    lipgloss.NewStyle().Foreground(color).Bold(true),
		Subtitle: lipgloss.NewStyle().Italic(true),
		Muted:    muted,
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(color).
			Padding(0, 1),
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(color).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Foreground(color),
			Body:  lipgloss.NewStyle(),
		},
		Calendar: calendar.Options{
			HeaderStyle: muted.Bold(true),
			EmptyStyle:  muted.Faint(true),
			EntryStyle:  lipgloss.NewStyle().Foreground(color).Bold(true),
			TodayStyle:  lipgloss.NewStyle().Reverse(true),
			ShowHeader:  true,
		},
	}
}
