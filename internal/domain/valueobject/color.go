package valueobject

import (
	"fmt"
	"math"
)

const DefaultColor = "#000000"

type RGB struct {
	R uint8
	G uint8
	B uint8
}

// NewRGBFromMeans rounds per-channel means to the nearest integer, clamped to [0,255].
func NewRGBFromMeans(r, g, b float64) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
