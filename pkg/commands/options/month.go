package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/datekey"
)

// MonthOptions picks a month.
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Month as YYYY-MM, default the current one.`)
}

// Key returns the chosen month key, or the month of now.
func (o *MonthOptions) Key(now time.Time) (string, error) {
	if o.Month == "" {
		return datekey.Month(now), nil
	}
	if _, err := datekey.ParseMonth(o.Month, now.Location()); err != nil {
		return "", fmt.Errorf("--month %q: want YYYY-MM", o.Month)
	}
	return o.Month, nil
}

// Resolve returns the chosen year and month.
func (o *MonthOptions) Resolve(now time.Time) (int, time.Month, error) {
	key, err := o.Key(now)
	if err != nil {
		return 0, 0, err
	}
	t, _ := datekey.ParseMonth(key, now.Location())
	return t.Year(), t.Month(), nil
}
