package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/tasks"
	"tableflip.dev/planner/pkg/theme"
)

func taskIDs(e *env) []string {
	var ids []string
	for _, t := range e.tasks().List() {
		ids = append(ids, t.ID)
	}
	return ids
}

func taskRows(list []tasks.Task) [][]string {
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{t.ID, t.Date, t.Start + "-" + t.End, t.Title, t.Tag})
	}
	return rows
}

var taskHeaders = []string{"ID", "Jour", "Heure", "Titre", "Tag"}

func addTasks(topLevel *cobra.Command) {
	cmd := parentCmd("tasks", "Plan the blocks of your days.", "task", "t")
	addTasksList(cmd)
	addTasksToday(cmd)
	addTasksAdd(cmd)
	addTasksEdit(cmd)
	addTasksRemove(cmd)
	topLevel.AddCommand(cmd)
}

func addTasksList(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every task by day.",
		Example: `
planner tasks list --show-id
`,
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			groups := e.tasks().ByDate()
			return oo.Print(e.out, groups, func() {
				pp := e.printer(theme.Calendar, io.ShowID)
				pp.TitleWithCount("Tâches", len(e.tasks().List()))
				for _, g := range groups {
					pp.Subtitle(g.Key)
					pp.Table(taskHeaders, taskRows(g.Items))
				}
			})
		}),
	}
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addTasksToday(parent *cobra.Command) {
	io := &options.IDOptions{}
	on := &options.OnOptions{}
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the tasks of a day, today by default.",
		Example: `
planner tasks today
planner tasks today --on 3/5
`,
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			day, err := on.DayKey(e.now())
			if err != nil {
				return err
			}
			if day == "" {
				day = e.today()
			}
			list := e.tasks().On(day)
			return oo.Print(e.out, list, func() {
				pp := e.printer(theme.Calendar, io.ShowID)
				pp.TitleWithCount(day, len(list))
				pp.Table(taskHeaders, taskRows(list))
			})
		}),
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOnArgs(cmd, on, "Day to show.")
	parent.AddCommand(cmd)
}

func addTasksAdd(parent *cobra.Command) {
	to := &options.TaskOptions{}
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task.",
		Example: `
planner tasks add "Yoga" --start 18:30 --end 19:30 --on 2024-3-5 --tag Énergie
`,
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			day, err := to.On.DayKey(e.now())
			if err != nil {
				return err
			}
			if day == "" {
				day = e.today()
			}
			title := to.Title
			if len(args) > 0 {
				title = strings.Join(args, " ")
			}
			t, err := e.tasks().Add(tasks.Draft{
				Title: title,
				Start: to.Start,
				End:   to.End,
				Date:  day,
				Color: to.Color,
				Tag:   to.Tag,
			})
			if err != nil {
				return err
			}
			return oo.Print(e.out, t, func() {
				fmt.Fprintf(e.out, "Ajouté %s le %s de %s à %s.\n", t.Title, t.Date, t.Start, t.End)
			})
		}),
	}
	options.AddTaskArgs(cmd, to)
	parent.AddCommand(cmd)
}

func addTasksEdit(parent *cobra.Command) {
	to := &options.TaskOptions{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the fields of a task given as flags.",
		Args:  cobra.ExactArgs(1),
		Example: `
planner tasks edit task-0193... --start 09:00 --end 10:00
`,
		ValidArgsFunction: idCompletions(taskIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			var p tasks.Patch
			flags := cmd.Flags()
			set := func(name string, v string) *string {
				if !flags.Changed(name) {
					return nil
				}
				return &v
			}
			p.Title = set("title", to.Title)
			p.Start = set("start", to.Start)
			p.End = set("end", to.End)
			p.Color = set("color", to.Color)
			p.Tag = set("tag", to.Tag)
			if flags.Changed("on") {
				day, err := to.On.DayKey(e.now())
				if err != nil {
					return err
				}
				p.Date = &day
			}
			t, err := e.tasks().Update(args[0], p)
			if err != nil {
				return err
			}
			return oo.Print(e.out, t, func() {
				pp := e.printer(theme.Calendar, true)
				pp.Table(taskHeaders, taskRows([]tasks.Task{t}))
			})
		}),
	}
	options.AddTaskArgs(cmd, to)
	parent.AddCommand(cmd)
}

func addTasksRemove(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:               "rm <id>",
		Short:             "Remove a task.",
		Aliases:           []string{"remove", "delete"},
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(taskIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.tasks()
			t, err := svc.Get(args[0])
			if err != nil {
				return err
			}
			ok, err := e.confirm(cmd.Context(), io.Yes, fmt.Sprintf("Supprimer %q", t.Title))
			if err != nil || !ok {
				return err
			}
			return svc.Remove(t.ID)
		}),
	}
	options.AddYesArg(cmd, io)
	parent.AddCommand(cmd)
}

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	var brief bool
	cmd := &cobra.Command{
		Use:     "calendar",
		Short:   "Show the month grid with its tasks.",
		Aliases: []string{"cal"},
		Example: `
planner calendar
planner calendar --month 2024-03 --brief
`,
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			year, month, err := mo.Resolve(e.now())
			if err != nil {
				return err
			}
			g := e.tasks().Month(year, month, e.now())
			return oo.Print(e.out, g, func() {
				pp := e.printer(theme.Calendar, false)
				var detail func(tasks.Task) string
				if !brief {
					detail = func(t tasks.Task) string {
						return fmt.Sprintf("%s-%s %s", t.Start, t.End, t.Title)
					}
				}
				printers.Month(pp, g, detail)
			})
		}),
	}
	options.AddMonthArgs(cmd, mo)
	cmd.Flags().BoolVar(&brief, "brief", false, "Only print the grid.")
	topLevel.AddCommand(cmd)
}
