package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/routines"
	"tableflip.dev/planner/pkg/theme"
)

func stepIDs(*env) []string {
	var ids []string
	for _, r := range routines.All() {
		for _, s := range r.Steps {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func addRoutines(topLevel *cobra.Command) {
	cmd := parentCmd("routines", "Tick the morning and evening rituals.", "routine", "r")
	addRoutinesList(cmd)
	addRoutinesToggle(cmd)
	addRoutinesReset(cmd)
	topLevel.AddCommand(cmd)
}

func printRoutines(pp *printers.PrettyPrint, svc *routines.Service) {
	st := svc.Stats()
	pp.Title("Routines")
	pp.Line("%d étapes le matin · %d le soir · %d cochées", st.Morning, st.Evening, st.Checked)
	for _, r := range routines.All() {
		pp.NewLine()
		pp.Subtitle(r.Label)
		for _, s := range r.Steps {
			if pp.ShowID {
				pp.Line("%s %-10s %s", checkbox(svc.IsDone(s.ID)), s.ID, s.Title)
				continue
			}
			pp.Line("%s %s", checkbox(svc.IsDone(s.ID)), s.Title)
		}
	}
}

func addRoutinesList(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show both routines and what is ticked.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.routines()
			return oo.Print(e.out, map[string]any{"routines": routines.All(), "completed": svc.Completed(), "stats": svc.Stats()}, func() {
				printRoutines(e.printer(theme.Routines, io.ShowID), svc)
			})
		}),
	}
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addRoutinesToggle(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "toggle <step>...",
		Short: "Tick or untick steps.",
		Example: `
planner routines toggle morning-1 evening-2
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: idCompletions(stepIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.routines()
			for _, id := range args {
				if _, err := svc.Toggle(id); err != nil {
					return err
				}
			}
			return oo.Print(e.out, svc.Completed(), func() {
				printRoutines(e.printer(theme.Routines, false), svc)
			})
		}),
	}
	parent.AddCommand(cmd)
}

func addRoutinesReset(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Untick every step.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			ok, err := e.confirm(cmd.Context(), io.Yes, "Tout décocher")
			if err != nil || !ok {
				return err
			}
			e.routines().Reset()
			return nil
		}),
	}
	options.AddYesArg(cmd, io)
	parent.AddCommand(cmd)
}
