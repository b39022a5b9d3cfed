package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/timeutil"
)

// LastOptions limits a listing to a look-back window.
type LastOptions struct {
	Last string
}

func AddLastArgs(cmd *cobra.Command, o *LastOptions) {
	cmd.Flags().StringVar(&o.Last, "last", "",
		`Only show the last window, for example "1w", "3j" or "1mois".`)
}

// Window parses --last. ok is false when the flag is not set.
func (o *LastOptions) Window() (time.Duration, bool, error) {
	if o.Last == "" {
		return 0, false, nil
	}
	d, _, err := timeutil.ParseWindow(o.Last)
	if err != nil {
		return 0, false, err
	}
	return d, true, nil
}
