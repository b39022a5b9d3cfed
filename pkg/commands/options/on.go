package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/datekey"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions picks a day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions, usage string) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		usage+` Example: --on="2024-3-5" or --on="3/5".`)
}

// DayKey resolves --on to a date-key, relative to now for the short form.
// Empty stays empty.
func (o *OnOptions) DayKey(now time.Time) (string, error) {
	if o.OnString == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, now.Location())
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, now.Location())
		if err != nil {
			return "", fmt.Errorf("--on %q: want YYYY-M-D or M/D", o.OnString)
		}
		t = t.AddDate(now.Year(), 0, 0)
		// 1/3 asked on 12/5 means next year.
		if datekey.Day(t) < datekey.Day(now) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return datekey.Day(t), nil
}
