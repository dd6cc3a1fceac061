package visual

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Color is an RGB triple with each component in [0, 1].
type Color [3]float64

// RGB8 quantizes the color to 8-bit channels.
func (c Color) RGB8() (r, g, b uint8) {
	return quantize(c[0]), quantize(c[1]), quantize(c[2])
}

func quantize(v float64) uint8 {
	return uint8(math.Round(clip01(v) * 255))
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette is the five-color set applied to the rendered scene for one
// episode.
type Palette struct {
	Pole       Color
	Cart       Color
	Axle       Color
	Track      Color
	Background Color
}

// DefaultPalette returns the fixed scene colors used before any roll:
// blue pole, yellow cart, magenta axle, cyan track, white background.
func DefaultPalette() Palette {
	return Palette{
		Pole:       Color{0, 0, 1},
		Cart:       Color{1, 1, 0},
		Axle:       Color{1, 0, 1},
		Track:      Color{0, 1, 1},
		Background: Color{1, 1, 1},
	}
}

// Roll draws a new palette from the seeded generator: five colors of three
// independent Normal(0.5, 0.5) samples each, clipped component-wise to
// [0, 1], in the fixed order pole, cart, axle, track, background. Each call
// advances the generator by exactly 15 scalar draws; the order is part of
// the seed-reproducibility contract and must not change.
func Roll(src rand.Source) Palette {
	normal := distuv.Normal{Mu: 0.5, Sigma: 0.5, Src: src}
	return Palette{
		Pole:       rollColor(normal),
		Cart:       rollColor(normal),
		Axle:       rollColor(normal),
		Track:      rollColor(normal),
		Background: rollColor(normal),
	}
}

func rollColor(normal distuv.Normal) Color {
	var c Color
	for i := range c {
		c[i] = clip01(normal.Rand())
	}
	return c
}
