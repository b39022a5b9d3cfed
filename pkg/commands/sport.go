package commands

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/fold"
	"tableflip.dev/planner/pkg/sport"
	"tableflip.dev/planner/pkg/theme"
	"tableflip.dev/planner/pkg/tui/countdown"
	"tableflip.dev/planner/pkg/validation"
)

func sessionIDs(*env) []string {
	var ids []string
	for _, s := range sport.Week {
		ids = append(ids, s.ID)
	}
	return ids
}

func todoIDs(e *env) []string {
	var ids []string
	for _, t := range e.sport().State().Todos {
		ids = append(ids, t.ID)
	}
	return ids
}

// sportSetters lists the fields accepted by "sport set".
func sportSetters() []string {
	out := []string{"profileName", "programName", "motto", "startDate", "level"}
	for _, f := range sport.NumericFields {
		out = append(out, string(f))
	}
	return out
}

func addSport(topLevel *cobra.Command) {
	cmd := parentCmd("sport", "The weekly training program, measurements and hydration.", "s")
	addSportShow(cmd)
	addSportToggle(cmd)
	addSportPlan(cmd)
	addSportSet(cmd)
	addSportFocus(cmd)
	addSportWater(cmd)
	addSportTodo(cmd)
	addSportNotes(cmd)
	addSportTimer(cmd)
	topLevel.AddCommand(cmd)
}

func addSportShow(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the program card and the week.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.sport()
			st := svc.State()
			m := svc.Metrics()
			week := svc.Schedule()
			return oo.Print(e.out, map[string]any{"state": st, "metrics": m, "schedule": week}, func() {
				pp := e.printer(theme.Sport, io.ShowID)
				pp.Title(st.ProgramName)
				pp.Subtitle(st.ProfileName + " · " + string(st.Level) + " · " + st.Motto)
				if len(st.FocusAreas) > 0 {
					pp.Field("Focus", strings.Join(st.FocusAreas, ", "))
				}
				if st.StartDate != "" {
					pp.Field("Programme", st.StartDate+" → "+m.EndDate)
				}
				pp.NewLine()

				rows := make([][]string, 0, len(week))
				for _, s := range week {
					mark := checkbox(slices.Contains(st.CompletedSessionIDs, s.ID))
					if s.IsRest() {
						mark = "   "
					}
					rows = append(rows, []string{s.ID, mark, s.Day, s.Icon + " " + s.Title, fmt.Sprintf("%d min", s.DurationMinutes)})
				}
				pp.Table([]string{"ID", "", "Jour", "Séance", "Durée"}, rows)
				pp.NewLine()

				pp.Bar("Séances", m.WeeklyPercent, fmt.Sprintf("%d / %d", m.CompletedSessions, m.ActiveSessions))
				pp.Bar("Minutes", m.MinutesPercent, fmt.Sprintf("%d / %d", m.MinutesDone, m.MinutesGoal))
				pp.Bar("Hydratation", int(math.Round(m.HydrationProgress*100)), fmt.Sprintf("%.2f L restants sur %.2f L", m.HydrationRemaining, m.HydrationTarget))
				pp.Bar("Poids", m.WeightProgress, fmt.Sprintf("%.1f kg → %.1f kg", st.CurrentWeightKg, st.GoalWeightKg))
				pp.Bar("Tour de taille", m.WaistProgress, fmt.Sprintf("%.0f cm → %.0f cm", st.WaistCm, st.GoalWaistCm))
				pp.Field("IMC", fmt.Sprintf("%.1f (%s)", m.BMIRounded, m.BMIStatus))
				if m.NextSession != nil {
					pp.Field("Prochaine séance", m.NextSession.Day+" · "+m.NextSession.Title)
				}

				if len(st.Todos) > 0 {
					pp.NewLine()
					pp.Subtitle("À faire")
					for _, t := range st.Todos {
						if pp.ShowID {
							pp.Line("%s %s %s", checkbox(t.Done), t.ID, t.Text)
							continue
						}
						pp.Line("%s %s", checkbox(t.Done), t.Text)
					}
				}
				if st.Notes != "" {
					pp.NewLine()
					pp.Subtitle("Notes")
					pp.Wrapped(st.Notes, 2)
				}
			})
		}),
	}
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addSportToggle(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "toggle <session>",
		Short:             "Tick or untick a session of the week.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(sessionIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			done, err := e.sport().ToggleSession(args[0])
			if err != nil {
				return err
			}
			return oo.Print(e.out, map[string]any{"id": args[0], "done": done}, func() {
				e.printer(theme.Sport, false).Line("%s %s", checkbox(done), args[0])
			})
		}),
	}
	parent.AddCommand(cmd)
}

func addSportPlan(parent *cobra.Command) {
	var (
		title   string
		details string
		minutes int
	)
	cmd := &cobra.Command{
		Use:   "plan <session>",
		Short: "Change the title, details or length of a session.",
		Example: `
planner sport plan sport-wed --title "Natation" --minutes 40
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(sessionIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			var p sport.OverridePatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				p.Title = &title
			}
			if flags.Changed("details") {
				p.Details = &details
			}
			if flags.Changed("minutes") {
				p.DurationMinutes = &minutes
			}
			s, err := e.sport().Override(args[0], p)
			if err != nil {
				return err
			}
			return oo.Print(e.out, s, func() {
				e.printer(theme.Sport, false).Line("%s · %s %s (%d min)", s.Day, s.Icon, s.Title, s.DurationMinutes)
			})
		}),
	}
	cmd.Flags().StringVar(&title, "title", "", "Session title.")
	cmd.Flags().StringVar(&details, "details", "", "Session details.")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Session length in minutes.")
	parent.AddCommand(cmd)
}

func parseLevel(s string) (sport.Level, error) {
	for _, l := range sport.Levels {
		if fold.Equal(s, string(l)) {
			return l, nil
		}
	}
	return "", validation.New("level", "unknown level %q", s)
}

func addSportSet(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a measurement or a label of the card.",
		Example: `
planner sport set currentWeightKg 61,5
planner sport set level avance
planner sport set motto "Un pas après l'autre"
`,
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return sportSetters(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.sport()
			field, value := args[0], strings.Join(args[1:], " ")
			switch field {
			case "profileName", "programName", "motto":
				return svc.SetText(field, value)
			case "startDate":
				return svc.SetStartDate(value)
			case "level":
				l, err := parseLevel(value)
				if err != nil {
					return err
				}
				return svc.SetLevel(l)
			}
			for _, f := range sport.NumericFields {
				if string(f) == field {
					v, err := svc.SetNumber(f, value)
					if err != nil {
						return err
					}
					return oo.Print(e.out, map[string]float64{field: v}, func() {
						e.printer(theme.Sport, false).Field(field, v)
					})
				}
			}
			return validation.New("field", "unknown field %q, expected one of %s", field, strings.Join(sportSetters(), ", "))
		}),
	}
	parent.AddCommand(cmd)
}

func addSportFocus(parent *cobra.Command) {
	cmd := parentCmd("focus", "The focus areas of the program.")
	cmd.AddCommand(&cobra.Command{
		Use:   "add <area>",
		Short: "Add a focus area.",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			return e.sport().AddFocusArea(strings.Join(args, " "))
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <area>",
		Short: "Remove a focus area.",
		Args:  cobra.MinimumNArgs(1),
		ValidArgsFunction: idCompletions(func(e *env) []string {
			return e.sport().State().FocusAreas
		}),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			e.sport().RemoveFocusArea(strings.Join(args, " "))
			return nil
		}),
	})
	parent.AddCommand(cmd)
}

func addSportWater(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "water <litres|reset>",
		Short: "Log water drunk today, negative to correct, or reset the day.",
		Example: `
planner sport water 0.25
planner sport water -- -0.25
planner sport water reset
`,
		Args: cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.sport()
			if args[0] == "reset" {
				svc.ResetWater()
				return nil
			}
			delta, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", "."), 64)
			if err != nil {
				return validation.New("litres", "%q is not a number", args[0])
			}
			total := svc.AdjustWater(delta)
			m := svc.Metrics()
			return oo.Print(e.out, map[string]float64{"waterLiters": total, "target": m.HydrationTarget}, func() {
				e.printer(theme.Sport, false).Bar("Hydratation", int(math.Round(m.HydrationProgress*100)), fmt.Sprintf("%.2f L sur %.2f L", total, m.HydrationTarget))
			})
		}),
	}
	parent.AddCommand(cmd)
}

func addSportTodo(parent *cobra.Command) {
	cmd := parentCmd("todo", "Small training to-dos.", "todos")
	cmd.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a to-do.",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			t, err := e.sport().AddTodo(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return oo.Print(e.out, t, func() {
				e.printer(theme.Sport, false).Line("%s (%s)", t.Text, t.ID)
			})
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:               "toggle <id>",
		Short:             "Tick or untick a to-do.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(todoIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			t, err := e.sport().ToggleTodo(args[0])
			if err != nil {
				return err
			}
			return oo.Print(e.out, t, func() {
				e.printer(theme.Sport, false).Line("%s %s", checkbox(t.Done), t.Text)
			})
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:               "rm <id>",
		Short:             "Remove a to-do.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(todoIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			return e.sport().RemoveTodo(args[0])
		}),
	})
	parent.AddCommand(cmd)
}

func addSportNotes(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "notes [text]",
		Short: "Replace the training notes. No text clears them.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			e.sport().SetNotes(strings.Join(args, " "))
			return nil
		}),
	}
	parent.AddCommand(cmd)
}

func addSportTimer(parent *cobra.Command) {
	var preset int
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the rest timer full screen.",
		Example: `
planner sport timer --seconds 60
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(countdown.Run(sport.TimerPresets, preset))
		},
	}
	cmd.Flags().IntVar(&preset, "seconds", sport.DefaultTimerPreset, "Preset in seconds.")
	parent.AddCommand(cmd)
}
