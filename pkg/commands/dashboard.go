package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/runner/dashboard"
)

func addDashboard(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var watch bool
	cmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Show today, the coming days, time progress and the notepad.",
		Aliases: []string{"home", "d"},
		Example: `
planner dashboard
planner dashboard --watch
`,
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			d := &dashboard.Dashboard{
				Profile: e.profile(),
				Tasks:   e.tasks(),
				Store:   e.store,
				Now:     e.now,
				Out:     e.out,
				JSON:    oo.JSON,
				Watch:   watch,
				ShowID:  io.ShowID,
				Log:     logging.For(logging.ComponentDashboard),
			}
			if f, ok := e.out.(*os.File); ok && watch && !oo.JSON {
				d.Clear = isatty.IsTerminal(f.Fd())
			}
			return d.Do(cmd.Context())
		}),
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep the dashboard open, refreshing every minute and on every change.")
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
