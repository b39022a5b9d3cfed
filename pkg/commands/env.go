package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/planner/pkg/activities"
	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/dataurl"
	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/dialog"
	"tableflip.dev/planner/pkg/finance"
	"tableflip.dev/planner/pkg/journal"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/outings"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/profile"
	"tableflip.dev/planner/pkg/routines"
	"tableflip.dev/planner/pkg/selflove"
	"tableflip.dev/planner/pkg/sport"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/tasks"
	"tableflip.dev/planner/pkg/watchlist"
)

// env is what every command needs: the store, the clock and the logger.
type env struct {
	cfg    *store.FileConfig
	store  store.Store
	loc    *time.Location
	now    datekey.Clock
	log    *slog.Logger
	email  string
	out    io.Writer
	prompt dialog.Prompter
}

// openEnv resolves the configuration, installs the logger and opens the
// store. A store that cannot be used leaves every value in memory.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := store.LoadConfigFrom(viper.GetViper())
	if err != nil {
		return nil, err
	}
	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}
	logging.SetDefault(log)
	log = logging.WithComponent(log, logging.ComponentCLI)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	s, err := store.Load(cfg)
	switch {
	case errors.Is(err, store.ErrUnavailable):
		log.Warn("no durable store, changes will not be kept", "backend", cfg.Store)
		s = nil
	case err != nil:
		return nil, fmt.Errorf("open store: %w", err)
	}

	e := &env{
		cfg:   cfg,
		store: s,
		loc:   loc,
		now:   datekey.In(loc),
		log:   log,
		email: viper.GetString(options.KeyEmail),
		out:   cmd.OutOrStdout(),
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && dialog.Interactive(f) {
		e.prompt = dialog.NewTerminal()
	}
	return e, nil
}

func (e *env) printer(page string, showID bool) *printers.PrettyPrint {
	pp := printers.New(e.out, page)
	pp.ShowID = showID
	return pp
}

// confirm asks before a destructive change. Without a terminal the change
// goes ahead only with --yes.
func (e *env) confirm(ctx context.Context, yes bool, label string) (bool, error) {
	if yes {
		return true, nil
	}
	if e.prompt == nil {
		return false, errors.New("refusing to change without a terminal, pass --yes")
	}
	return dialog.AskConfirm(ctx, e.prompt, label)
}

// readImage loads a picture as a data URL, waiting for the read or for ctx.
func (e *env) readImage(ctx context.Context, path string) (string, error) {
	select {
	case res, ok := <-dataurl.Read(ctx, path):
		if !ok {
			return "", ctx.Err()
		}
		if res.Err != nil {
			return "", res.Err
		}
		e.log.Debug("image loaded", "path", res.Path, "size", len(res.URL))
		return res.URL, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (e *env) tasks() *tasks.Service {
	return tasks.New(e.store, tasks.WithClock(e.now), tasks.WithLogger(logging.For(logging.ComponentTasks)))
}

func (e *env) finance() *finance.Service {
	return finance.New(e.store, finance.WithClock(e.now), finance.WithLogger(logging.For(logging.ComponentFinance)))
}

func (e *env) journal() *journal.Service {
	return journal.New(e.store, journal.WithLogger(logging.For(logging.ComponentJournal)))
}

func (e *env) activities() *activities.Service {
	return activities.New(e.store, activities.WithLogger(logging.For(logging.ComponentActivity)))
}

func (e *env) watchlist() *watchlist.Service {
	return watchlist.New(e.store, watchlist.WithLogger(logging.For(logging.ComponentWatch)))
}

func (e *env) outings() *outings.Service {
	return outings.New(e.store, outings.WithClock(e.now), outings.WithLogger(logging.For(logging.ComponentOutings)))
}

func (e *env) routines() *routines.Service {
	return routines.New(e.store, routines.WithLogger(logging.For(logging.ComponentRoutines)))
}

func (e *env) selflove() *selflove.Service {
	return selflove.New(e.store, selflove.WithClock(e.now), selflove.WithLogger(logging.For(logging.ComponentSelfLove)))
}

func (e *env) sport() *sport.Service {
	return sport.New(e.store, sport.WithLogger(logging.For(logging.ComponentSport)))
}

func (e *env) profile() *profile.Service {
	return profile.New(e.store, profile.WithEmail(e.email), profile.WithClock(e.now), profile.WithLogger(logging.For(logging.ComponentProfile)))
}

func (e *env) today() string {
	return datekey.Day(e.now())
}

// run opens the environment and maps errors for --json.
func run(fn func(cmd *cobra.Command, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return oo.HandleError(err)
		}
		return oo.HandleError(fn(cmd, e, args))
	}
}
