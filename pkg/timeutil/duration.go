// Package timeutil parses the look-back windows given to --last.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is used when no window is given.
const DefaultWindow = "1w"

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
)

type unit struct {
	label   string
	value   time.Duration
	aliases []string
}

// units are in descending size; FormatWindow walks them in this order.
var units = []unit{
	{"mo", month, []string{"mo", "mois", "month", "months"}},
	{"w", week, []string{"w", "wk", "wks", "week", "weeks", "sem", "semaine", "semaines"}},
	{"d", day, []string{"d", "day", "days", "j", "jour", "jours"}},
	{"h", time.Hour, []string{"h", "hr", "hrs", "hour", "hours", "heure", "heures"}},
	{"m", time.Minute, []string{"m", "min", "mins", "minute", "minutes"}},
	{"s", time.Second, []string{"s", "sec", "secs", "second", "seconds", "seconde", "secondes"}},
}

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	byAlias = func() map[string]time.Duration {
		m := make(map[string]time.Duration)
		for _, u := range units {
			for _, a := range u.aliases {
				m[a] = u.value
			}
		}
		return m
	}()
)

// ParseWindow parses "1w", "3j" or "1sem2d6h" into a duration and its
// canonical label. Empty input is DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultWindow
	}

	var total time.Duration
	for strings.TrimSpace(rest) != "" {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, "", fmt.Errorf("timeutil: invalid window segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("timeutil: invalid window value %q: %w", m[1], err)
		}
		base, ok := byAlias[m[2]]
		if !ok {
			return 0, "", fmt.Errorf("timeutil: unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * base
		rest = rest[len(m[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("timeutil: window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with the largest units first, for example "1w2d6h".
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	var b strings.Builder
	for _, u := range units {
		if d < u.value {
			continue
		}
		n := d / u.value
		d -= n * u.value
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
