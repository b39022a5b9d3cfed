// Package commands is the planner command tree.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
	so = &options.StoreOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:           "planner",
		Short:         base.Wrap80("A personal life organizer: agenda, budget, journal, sport and self-care pages on the command line."),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddStoreArgs(cmd, so, viper.GetViper())

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addDashboard(topLevel)
	addCalendar(topLevel)
	addTasks(topLevel)
	addFinance(topLevel)
	addJournal(topLevel)
	addActivities(topLevel)
	addWatchlist(topLevel)
	addOutings(topLevel)
	addRoutines(topLevel)
	addSelfLove(topLevel)
	addSport(topLevel)
	addProfile(topLevel)
	addStore(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// parentCmd builds a parent command that prints its help.
func parentCmd(use, short string, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   base.Wrap80(short),
		Aliases: aliases,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
}
