package render

import (
	"math"

	"github.com/ndmitriev/pixelpole/internal/physics"
	"github.com/ndmitriev/pixelpole/internal/visual"
)

// Geometry holds the derived scene dimensions in world units. The world is
// Width pixels wide and spans twice the cart position threshold, so one
// world unit equals one pixel and Scale converts physical x to world x.
type Geometry struct {
	Scale      float64 // pixels per physical unit
	CartY      float64 // world y of the cart center (track height)
	CartWidth  float64
	CartHeight float64
	PoleWidth  float64
	PoleLen    float64 // full rendered pole length
	AxleOffset float64 // axle height above the cart center
	AxleRadius float64
}

// DefaultGeometry derives the scene dimensions from the physical constants:
// poleHalfLength is reused as the physical pole length and xThreshold fixes
// the visible world width at 2*xThreshold.
func DefaultGeometry(poleHalfLength, xThreshold float64) Geometry {
	scale := Width / (2 * xThreshold)
	const poleWidth = 5.0
	return Geometry{
		Scale:      scale,
		CartY:      10,
		CartWidth:  20,
		CartHeight: 10,
		PoleWidth:  poleWidth,
		PoleLen:    scale * 2 * poleHalfLength,
		AxleOffset: 10.0 / 4.0, // cartHeight / 4
		AxleRadius: poleWidth / 2,
	}
}

// Rasterize draws the scene for the given physical state and palette.
// Draw order: background, track, cart, pole, axle; later shapes overwrite
// earlier ones. The pole is rotated by -theta about the axle point. Calling
// it twice with the same inputs yields byte-identical frames.
func Rasterize(s physics.State, pal visual.Palette, g Geometry) Frame {
	var f Frame

	cartX := s.X*g.Scale + Width/2.0
	axleX := cartX
	axleY := g.CartY + g.AxleOffset

	// Inverse pole rotation: world = axle + R(-theta)·local, so
	// local = R(theta)·(world - axle).
	cos := math.Cos(s.Theta)
	sin := math.Sin(s.Theta)

	bgR, bgG, bgB := pal.Background.RGB8()
	trR, trG, trB := pal.Track.RGB8()
	caR, caG, caB := pal.Cart.RGB8()
	poR, poG, poB := pal.Pole.RGB8()
	axR, axG, axB := pal.Axle.RGB8()

	for py := 0; py < Height; py++ {
		// Pixel centers; world y points up, rows run top-down.
		wy := Height - float64(py) - 0.5
		for px := 0; px < Width; px++ {
			wx := float64(px) + 0.5

			r, g8, b := bgR, bgG, bgB

			if wy >= g.CartY-0.5 && wy < g.CartY+0.5 {
				r, g8, b = trR, trG, trB
			}
			if math.Abs(wx-cartX) <= g.CartWidth/2 && math.Abs(wy-g.CartY) <= g.CartHeight/2 {
				r, g8, b = caR, caG, caB
			}

			dx := wx - axleX
			dy := wy - axleY
			u := cos*dx - sin*dy
			v := sin*dx + cos*dy
			if math.Abs(u) <= g.PoleWidth/2 && v >= -g.PoleWidth/2 && v <= g.PoleLen-g.PoleWidth/2 {
				r, g8, b = poR, poG, poB
			}
			if dx*dx+dy*dy <= g.AxleRadius*g.AxleRadius {
				r, g8, b = axR, axG, axB
			}

			f.set(px, py, r, g8, b)
		}
	}
	return f
}
