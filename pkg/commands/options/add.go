package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions are the fields of a task given as flags.
type TaskOptions struct {
	Title string
	Start string
	End   string
	Color string
	Tag   string
	On    OnOptions
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "", "Task title.")
	cmd.Flags().StringVar(&o.Start, "start", "", "Start time, HH:MM.")
	cmd.Flags().StringVar(&o.End, "end", "", "End time, HH:MM.")
	cmd.Flags().StringVar(&o.Color, "color", "", "Hex colour, for example #6366F1.")
	cmd.Flags().StringVar(&o.Tag, "tag", "", "Free tag.")
	AddOnArgs(cmd, &o.On, "Day of the task, default today.")
}
