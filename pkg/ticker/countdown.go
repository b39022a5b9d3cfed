package ticker

import (
	"fmt"
	"time"

	"tableflip.dev/planner/pkg/validation"
)

// Countdown is the rest timer state machine. It does not keep time itself;
// whoever owns it calls Tick once per second while it is running.
type Countdown struct {
	preset    int
	remaining int
	running   bool
}

// NewCountdown returns a stopped countdown armed with preset seconds.
func NewCountdown(preset int) (*Countdown, error) {
	c := &Countdown{}
	if err := c.SetPreset(preset); err != nil {
		return nil, err
	}
	return c, nil
}

// SetPreset changes the length of the next run. A running countdown is not
// affected.
func (c *Countdown) SetPreset(seconds int) error {
	if seconds <= 0 {
		return validation.New("preset", "must be positive, got %d", seconds)
	}
	c.preset = seconds
	return nil
}

// Preset is the armed length in seconds.
func (c *Countdown) Preset() int { return c.preset }

// Remaining is the number of seconds left, 0 when stopped.
func (c *Countdown) Remaining() int { return c.remaining }

// Running reports whether the countdown is ticking.
func (c *Countdown) Running() bool { return c.running }

// Start begins a run of Preset seconds. It reports false when already
// running.
func (c *Countdown) Start() bool {
	if c.running || c.preset <= 0 {
		return false
	}
	c.remaining = c.preset
	c.running = true
	return true
}

// Stop halts and clears the countdown.
func (c *Countdown) Stop() {
	c.running = false
	c.remaining = 0
}

// Tick consumes one second and reports whether the run just finished.
func (c *Countdown) Tick() bool {
	if !c.running {
		return false
	}
	if c.remaining <= 1 {
		c.Stop()
		return true
	}
	c.remaining--
	return false
}

// Label renders the remaining time as MM:SS.
func (c *Countdown) Label() string {
	return FormatClock(time.Duration(c.remaining) * time.Second)
}

// FormatClock renders d as zero padded minutes and seconds.
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
