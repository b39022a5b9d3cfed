package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/theme"
	"tableflip.dev/planner/pkg/watchlist"
)

func watchIDs(e *env) []string {
	var ids []string
	for _, it := range e.watchlist().List() {
		ids = append(ids, it.ID)
	}
	return ids
}

func addWatchlist(topLevel *cobra.Command) {
	cmd := parentCmd("watchlist", "Films, series and podcasts to watch.", "watch", "w")
	addWatchList(cmd)
	addWatchAdd(cmd)
	addWatchEdit(cmd)
	addWatchCycle(cmd)
	addWatchWatched(cmd)
	addWatchRemove(cmd)
	addWatchBanner(cmd)
	topLevel.AddCommand(cmd)
}

func addWatchList(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the three columns of the watchlist.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.watchlist()
			columns := svc.ByStatus()
			stats := svc.Stats()
			return oo.Print(e.out, map[string]any{"stats": stats, "columns": columns}, func() {
				pp := e.printer(theme.Watchlist, io.ShowID)
				pp.Title("Watchlist")
				pp.Line("%d à découvrir · %d en cours · %d vus", stats.ToDiscover, stats.Watching, stats.Watched)
				for _, col := range columns {
					pp.NewLine()
					pp.TitleWithCount(col.Status.Label(), len(col.Items))
					if len(col.Items) == 0 {
						pp.Empty("rien ici")
						continue
					}
					rows := make([][]string, 0, len(col.Items))
					for _, it := range col.Items {
						rows = append(rows, []string{it.ID, it.Title, it.Type, it.Subtitle()})
					}
					pp.Table([]string{"ID", "Titre", "Type", "Où"}, rows)
				}
			})
		}),
	}
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addWatchAdd(parent *cobra.Command) {
	var (
		kind     string
		status   string
		platform string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add something to watch.",
		Example: `
planner watchlist add "Le Bureau des légendes" --type série --platform Canal+
`,
		Args: cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			t, err := watchlist.ParseType(kind)
			if err != nil {
				return err
			}
			d := watchlist.Draft{Title: strings.Join(args, " "), Type: t, Platform: platform}
			if status != "" {
				if d.Status, err = watchlist.ParseStatus(status); err != nil {
					return err
				}
			}
			it, err := e.watchlist().Add(d)
			if err != nil {
				return err
			}
			return oo.Print(e.out, it, func() {
				e.printer(theme.Watchlist, true).Line("%s ajouté (%s)", it.Title, it.ID)
			})
		}),
	}
	cmd.Flags().StringVarP(&kind, "type", "t", watchlist.DefaultType, "One of "+strings.Join(watchlist.Types, ", ")+".")
	cmd.Flags().StringVarP(&status, "status", "s", "", "a-regarder, en-cours or termine.")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Where to watch it.")
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return watchlist.Types, cobra.ShellCompDirectiveNoFileComp
	})
	parent.AddCommand(cmd)
}

func addWatchEdit(parent *cobra.Command) {
	var platform string
	cmd := &cobra.Command{
		Use:               "edit <id> <title>",
		Short:             "Rename an item and set its platform.",
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: idCompletions(watchIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			it, err := e.watchlist().Edit(args[0], strings.Join(args[1:], " "), platform)
			if err != nil {
				return err
			}
			return oo.Print(e.out, it, func() {
				e.printer(theme.Watchlist, false).Line("%s · %s", it.Title, it.Subtitle())
			})
		}),
	}
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Where to watch it, empty for none.")
	parent.AddCommand(cmd)
}

// addWatchMove adds a command moving one item between columns.
func addWatchMove(parent *cobra.Command, use, short string, move func(*watchlist.Service, string) (watchlist.Item, error)) {
	cmd := &cobra.Command{
		Use:               use + " <id>",
		Short:             short,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(watchIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			it, err := move(e.watchlist(), args[0])
			if err != nil {
				return err
			}
			return oo.Print(e.out, it, func() {
				e.printer(theme.Watchlist, false).Line("%s → %s", it.Title, it.Status.Label())
			})
		}),
	}
	parent.AddCommand(cmd)
}

func addWatchCycle(parent *cobra.Command) {
	addWatchMove(parent, "cycle", "Move an item to the next column.", (*watchlist.Service).Cycle)
}

func addWatchWatched(parent *cobra.Command) {
	addWatchMove(parent, "watched", "Mark an item as watched.", (*watchlist.Service).MarkWatched)
}

func addWatchRemove(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:               "rm <id>",
		Short:             "Remove an item.",
		Aliases:           []string{"remove", "delete"},
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(watchIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			ok, err := e.confirm(cmd.Context(), io.Yes, "Supprimer "+args[0])
			if err != nil || !ok {
				return err
			}
			return e.watchlist().Remove(args[0])
		}),
	}
	options.AddYesArg(cmd, io)
	parent.AddCommand(cmd)
}

func addWatchBanner(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "banner <status> <image>",
		Short: "Replace the banner of a column with a local picture or an image name.",
		Example: `
planner watchlist banner en-cours ~/Images/canape.jpg
`,
		Args: cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			st, err := watchlist.ParseStatus(args[0])
			if err != nil {
				return err
			}
			banner := args[1]
			if _, err := os.Stat(banner); err == nil {
				if banner, err = e.readImage(cmd.Context(), banner); err != nil {
					return err
				}
			}
			if err := e.watchlist().SetBanner(st, banner); err != nil {
				return err
			}
			return oo.Print(e.out, e.watchlist().Banners(), func() {
				e.printer(theme.Watchlist, false).Line("Bannière %s mise à jour.", st.Label())
			})
		}),
	}
	parent.AddCommand(cmd)
}
