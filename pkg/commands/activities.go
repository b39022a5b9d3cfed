package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/activities"
	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/theme"
)

func activityIDs(e *env) []string {
	var ids []string
	for _, a := range e.activities().List() {
		ids = append(ids, a.ID)
	}
	return ids
}

func statusCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, st := range activities.Statuses {
		out = append(out, string(st))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func addActivities(topLevel *cobra.Command) {
	cmd := parentCmd("activities", "Keep a board of things to do, planned and done.", "activity", "a")
	addActivitiesList(cmd)
	addActivitiesAdd(cmd)
	addActivitiesStatus(cmd)
	addActivitiesRemove(cmd)
	topLevel.AddCommand(cmd)
}

func addActivitiesList(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the board, one column per status.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.activities()
			columns := svc.ByStatus()
			stats := svc.Stats()
			return oo.Print(e.out, map[string]any{"stats": stats, "columns": columns}, func() {
				pp := e.printer(theme.Activities, io.ShowID)
				pp.Title("Activités")
				pp.Line("%d idées · %d planifiées · %d faites", stats.Ideas, stats.Scheduled, stats.Done)
				for _, col := range columns {
					pp.NewLine()
					pp.TitleWithCount(col.Key.Label(), len(col.Items))
					if len(col.Items) == 0 {
						pp.Empty("rien ici")
						continue
					}
					rows := make([][]string, 0, len(col.Items))
					for _, a := range col.Items {
						rows = append(rows, []string{a.ID, a.Title, a.Category, a.IdealDate})
					}
					pp.Table([]string{"ID", "Titre", "Catégorie", "Date"}, rows)
				}
			})
		}),
	}
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addActivitiesAdd(parent *cobra.Command) {
	var (
		category string
		status   string
		on       options.OnOptions
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an activity idea.",
		Example: `
planner activities add "Atelier poterie" --category Créatif --status planifie --on 4/12
`,
		Args: cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			d := activities.Draft{Title: strings.Join(args, " "), Category: category}
			if status != "" {
				st, err := activities.ParseStatus(status)
				if err != nil {
					return err
				}
				d.Status = st
			}
			day, err := on.DayKey(e.now())
			if err != nil {
				return err
			}
			d.IdealDate = day
			a, err := e.activities().Add(d)
			if err != nil {
				return err
			}
			return oo.Print(e.out, a, func() {
				e.printer(theme.Activities, true).Line("%s ajoutée (%s)", a.Title, a.ID)
			})
		}),
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category, "+activities.DefaultCategory+" by default.")
	cmd.Flags().StringVarP(&status, "status", "s", "", "a-faire, planifie or fait.")
	_ = cmd.RegisterFlagCompletionFunc("status", statusCompletions)
	options.AddOnArgs(cmd, &on, "Ideal date.")
	parent.AddCommand(cmd)
}

func addActivitiesStatus(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move an activity to another column.",
		Example: `
planner activities status 0190f8a1 fait
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: idCompletions(activityIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			st, err := activities.ParseStatus(args[1])
			if err != nil {
				return err
			}
			a, err := e.activities().SetStatus(args[0], st)
			if err != nil {
				return err
			}
			return oo.Print(e.out, a, func() {
				e.printer(theme.Activities, false).Line("%s → %s", a.Title, a.Status.Label())
			})
		}),
	}
	parent.AddCommand(cmd)
}

func addActivitiesRemove(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:               "rm <id>",
		Short:             "Remove an activity.",
		Aliases:           []string{"remove", "delete"},
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(activityIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			ok, err := e.confirm(cmd.Context(), io.Yes, "Supprimer l'activité "+args[0])
			if err != nil || !ok {
				return err
			}
			return e.activities().Remove(args[0])
		}),
	}
	options.AddYesArg(cmd, io)
	parent.AddCommand(cmd)
}
