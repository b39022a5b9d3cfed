package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/datekey"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the month grid with a centred "mois année" heading, followed by
// the items of each day when detail is not nil.
func Month[T any](pp *PrettyPrint, g calendar.Grid[T], detail func(T) string) {
	title := fmt.Sprintf("%s %d", datekey.MonthName(g.Month), g.Year)
	mid := (width - len([]rune(title))) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = fmt.Fprintln(pp.Out, strings.Repeat(" ", mid)+pp.Theme.Title.Render(title))
	_, _ = fmt.Fprintln(pp.Out, calendar.Render(g, pp.Theme.Calendar))
	pp.NewLine()

	if detail == nil {
		return
	}
	day := color.New(color.Bold)
	for _, c := range g.Cells {
		if c.Empty() || len(c.Items) == 0 {
			continue
		}
		wd := time.Date(g.Year, g.Month, c.Day, 0, 0, 0, 0, time.UTC).Weekday()
		label := fmt.Sprintf("%2d %.3s", c.Day, datekey.WeekdayName(wd))
		if c.IsToday {
			label = pp.Theme.Badge.Render(label)
		} else {
			label = day.Sprint(label)
		}
		_, _ = fmt.Fprintln(pp.Out, label)
		for _, it := range c.Items {
			_, _ = fmt.Fprintf(pp.Out, "   %s\n", detail(it))
		}
	}
	pp.NewLine()
}
