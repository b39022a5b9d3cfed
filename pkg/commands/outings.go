package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/outings"
	"tableflip.dev/planner/pkg/theme"
)

func outingIDs(e *env) []string {
	var ids []string
	for _, o := range e.outings().List() {
		ids = append(ids, o.ID)
	}
	return ids
}

func addOutings(topLevel *cobra.Command) {
	cmd := parentCmd("outings", "Plan outings and the places to see.", "outing", "o")
	addOutingsList(cmd)
	addOutingsAdd(cmd)
	addOutingsRemove(cmd)
	topLevel.AddCommand(cmd)
}

func addOutingsList(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List outings by date.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.outings()
			days := svc.ByDate()
			stats := svc.Stats(e.now())
			return oo.Print(e.out, map[string]any{"stats": stats, "days": days}, func() {
				pp := e.printer(theme.Outings, io.ShowID)
				pp.Title("Sorties")
				pp.Line("%d prévues · %d lieux · prochaine le %s", stats.Planned, stats.Places, stats.NextDate)
				for _, g := range days {
					pp.NewLine()
					pp.Subtitle(g.Key)
					for _, o := range g.Items {
						head := o.Title + " @ " + o.Location
						if pp.ShowID {
							head = o.ID + "  " + head
						}
						pp.Line("%s", head)
						if o.Details != "" {
							pp.Wrapped(o.Details, 4)
						}
					}
				}
				if len(days) == 0 {
					pp.Empty("aucune sortie")
				}
			})
		}),
	}
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addOutingsAdd(parent *cobra.Command) {
	var (
		d  outings.Draft
		on options.OnOptions
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Plan an outing, a week from today unless --on says otherwise.",
		Example: `
planner outings add "Pique-nique" --location "Parc de la Tête d'Or" --on 6/21
`,
		Args: cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			day, err := on.DayKey(e.now())
			if err != nil {
				return err
			}
			d.Title = strings.Join(args, " ")
			d.Date = day
			o, err := e.outings().Add(d)
			if err != nil {
				return err
			}
			return oo.Print(e.out, o, func() {
				e.printer(theme.Outings, true).Line("%s le %s (%s)", o.Title, o.Date, o.ID)
			})
		}),
	}
	cmd.Flags().StringVarP(&d.Location, "location", "l", "", "Where it happens.")
	cmd.Flags().StringVar(&d.Details, "details", "", "Anything to remember.")
	options.AddOnArgs(cmd, &on, "Date of the outing.")
	parent.AddCommand(cmd)
}

func addOutingsRemove(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:               "rm <id>",
		Short:             "Remove an outing.",
		Aliases:           []string{"remove", "delete"},
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(outingIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			ok, err := e.confirm(cmd.Context(), io.Yes, "Supprimer la sortie "+args[0])
			if err != nil || !ok {
				return err
			}
			return e.outings().Remove(args[0])
		}),
	}
	options.AddYesArg(cmd, io)
	parent.AddCommand(cmd)
}
