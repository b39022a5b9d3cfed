package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/planner/pkg/store"
)

// StoreOptions selects where planner state lives. The flags override
// .planner.yaml and PLANNER_* variables.
type StoreOptions struct {
	Backend  string
	Path     string
	Timezone string
	Email    string
}

// AddStoreArgs registers the persistent store flags on cmd and binds them to
// v.
func AddStoreArgs(cmd *cobra.Command, o *StoreOptions, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.Backend, "store", store.BackendDisk,
		"Storage backend: disk, memory or none.")
	flags.StringVar(&o.Path, "path", "~/.planner",
		"Directory of the disk store.")
	flags.StringVar(&o.Timezone, "timezone", "Local",
		`Timezone "today" is evaluated in.`)
	flags.StringVar(&o.Email, "email", "",
		"Account email, used to name a fresh profile.")

	_ = v.BindPFlag(store.KeyStore, flags.Lookup("store"))
	_ = v.BindPFlag(store.KeyPath, flags.Lookup("path"))
	_ = v.BindPFlag(store.KeyTimezone, flags.Lookup("timezone"))
	_ = v.BindPFlag(KeyEmail, flags.Lookup("email"))
}

// KeyEmail is the configuration key of the account email.
const KeyEmail = "email"
