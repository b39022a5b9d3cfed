package tasks

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// Tint blends hex over white at alpha, the opaque equivalent of drawing the
// colour with that transparency on a white page.
func Tint(hex string, alpha float64) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("tasks: colour %q: %w", hex, err)
	}
	alpha = min(max(alpha, 0), 1)
	return white.BlendRgb(c, alpha).Clamped().Hex(), nil
}
