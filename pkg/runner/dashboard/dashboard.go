// Package dashboard renders the planner home, once or live.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/profile"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/tasks"
	"tableflip.dev/planner/pkg/theme"
	"tableflip.dev/planner/pkg/ticker"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

type Dashboard struct {
	Profile *profile.Service
	Tasks   *tasks.Service
	// Store is watched in live mode. Nil leaves only the clock.
	Store store.Store
	Now   datekey.Clock
	Out   io.Writer

	JSON   bool
	Watch  bool
	Clear  bool
	ShowID bool
	// Interval is the clock refresh in live mode, a minute by default.
	Interval time.Duration

	Log *slog.Logger

	mu sync.Mutex
}

// Do renders the dashboard. In live mode it re-renders every Interval and on
// every write to the task, profile or notes slots, until ctx is done.
func (d *Dashboard) Do(ctx context.Context) error {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Log == nil {
		d.Log = logging.For(logging.ComponentDashboard)
	}
	if !d.Watch {
		return d.render()
	}

	interval := d.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	// Subscribe before the first render so no write is missed.
	if d.Store != nil {
		events, err := d.Store.Watch(ctx)
		if err != nil {
			d.Log.Warn("live reload unavailable", "error", err)
		} else {
			g.Go(func() error {
				return d.follow(ctx, events)
			})
		}
	}
	if err := d.render(); err != nil {
		cancel()
		_ = g.Wait()
		return err
	}
	g.Go(func() error {
		return ticker.Run(ctx, interval, func(time.Time) {
			d.refresh("clock")
		})
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// follow reloads the slots the dashboard shows as their keys change.
func (d *Dashboard) follow(ctx context.Context, events <-chan store.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ctx.Err()
			}
			if ev.Type == store.EventKeyChanged && !Watched(ev.Key) {
				continue
			}
			d.Tasks.Value().Reload()
			d.Profile.Reload()
			d.refresh(ev.Key)
		}
	}
}

// Watched reports whether a write to key changes the dashboard.
func Watched(key string) bool {
	switch key {
	case tasks.StoreKey, profile.StoreKey, profile.NotesKey:
		return true
	}
	return false
}

func (d *Dashboard) refresh(reason string) {
	if err := d.render(); err != nil {
		d.Log.Warn("dashboard not rendered", "reason", reason, "error", err)
		return
	}
	d.Log.Debug("dashboard rendered", "reason", reason)
}

func (d *Dashboard) render() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	dash := d.Profile.Dashboard(d.Tasks, d.Now())
	if d.JSON {
		return printers.JSON(d.Out, dash)
	}
	if d.Clear {
		_, _ = fmt.Fprint(d.Out, clearScreen)
	}
	pp := printers.New(d.Out, theme.Dashboard)
	pp.ShowID = d.ShowID
	Print(pp, dash)
	return nil
}

// Print writes the dashboard with pp.
func Print(pp *printers.PrettyPrint, dash profile.Dashboard) {
	pp.Title("Bonjour " + dash.Name)
	pp.Subtitle(dash.Today)
	pp.NewLine()

	for _, p := range dash.Progress {
		pp.Bar(p.Label, p.Percent, p.Meta)
	}
	pp.NewLine()

	pp.TitleWithCount("Aujourd'hui", len(dash.Tasks))
	if len(dash.Tasks) == 0 {
		pp.Empty("rien de prévu")
	}
	rows := make([][]string, 0, len(dash.Tasks))
	for _, t := range dash.Tasks {
		rows = append(rows, []string{t.ID, t.Start + "-" + t.End, t.Title, t.Tag})
	}
	if len(rows) > 0 {
		pp.Table([]string{"ID", "Heure", "Titre", "Tag"}, rows)
	}
	pp.NewLine()

	pp.Title("À venir")
	if len(dash.Upcoming) == 0 {
		pp.Empty("rien à venir")
	}
	for _, g := range dash.Upcoming {
		pp.Subtitle(datekey.DayMonth(g.Date))
		for _, t := range g.Tasks {
			pp.Line("%s  %s", t.Start, t.Title)
		}
	}
	pp.NewLine()

	pp.Title("Notes")
	for i, n := range dash.Notes {
		if n == "" {
			n = "…"
		}
		pp.Line("%d. %s", i+1, n)
	}
}
