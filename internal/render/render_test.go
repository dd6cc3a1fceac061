package render

import (
	"bytes"
	"testing"

	"github.com/ndmitriev/pixelpole/internal/physics"
	"github.com/ndmitriev/pixelpole/internal/visual"
)

func testGeometry() Geometry {
	return DefaultGeometry(5.0, 2.4)
}

func TestFrameShape(t *testing.T) {
	f := Rasterize(physics.State{}, visual.DefaultPalette(), testGeometry())

	if got := len(f.Bytes()); got != Width*Height*Channels {
		t.Errorf("frame size = %d, want %d", got, Width*Height*Channels)
	}
}

func TestRasterizeIdempotent(t *testing.T) {
	s := physics.State{X: 0.3, Theta: -0.2}
	pal := visual.DefaultPalette()
	g := testGeometry()

	a := Rasterize(s, pal, g)
	b := Rasterize(s, pal, g)

	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two renders of the same state should be byte-identical")
	}
}

func TestSceneLayout(t *testing.T) {
	pal := visual.DefaultPalette()
	f := Rasterize(physics.State{}, pal, testGeometry())

	check := func(x, y int, want visual.Color, what string) {
		t.Helper()
		wr, wg, wb := want.RGB8()
		r, g, b := f.At(x, y)
		if r != wr || g != wg || b != wb {
			t.Errorf("%s at (%d,%d): got %d,%d,%d want %d,%d,%d", what, x, y, r, g, b, wr, wg, wb)
		}
	}

	// Top-left corner: nothing but background there.
	check(0, 0, pal.Background, "background")
	// Track occupies world y=10 outside the cart: row 54, far left.
	check(0, 54, pal.Track, "track")
	// Cart covers the track around center x: half-width 10 around column 32.
	check(39, 54, pal.Cart, "cart")
	// Upright pole runs straight up the center column.
	check(31, 0, pal.Pole, "pole")
	// Axle sits at the pole anchor just above the cart center (world y=12.5).
	check(31, 51, pal.Axle, "axle")
}

func TestCartTracksState(t *testing.T) {
	pal := visual.DefaultPalette()
	g := testGeometry()

	// x = 1.2 puts the cart center three quarters across the screen.
	f := Rasterize(physics.State{X: 1.2}, pal, g)

	cr, cg, cb := pal.Cart.RGB8()
	r, gg, b := f.At(48, 54)
	if r != cr || gg != cg || b != cb {
		t.Errorf("cart center not at shifted position: got %d,%d,%d", r, gg, b)
	}
	// Old center is now bare track.
	tr, tg, tb := pal.Track.RGB8()
	if r, gg, b := f.At(20, 54); r != tr || gg != tg || b != tb {
		t.Errorf("track not exposed at old cart position: got %d,%d,%d", r, gg, b)
	}
}

func TestPoleRotation(t *testing.T) {
	pal := visual.DefaultPalette()
	g := testGeometry()

	upright := Rasterize(physics.State{}, pal, g)
	tilted := Rasterize(physics.State{Theta: 0.4}, pal, g)

	if bytes.Equal(upright.Bytes(), tilted.Bytes()) {
		t.Error("tilting the pole should change the frame")
	}

	// With a positive tilt the pole leaves the top-center column.
	pr, pg, pb := pal.Pole.RGB8()
	r, gg, b := tilted.At(31, 0)
	if r == pr && gg == pg && b == pb {
		t.Error("tilted pole should not still cover the top-center pixel")
	}
}

func TestCanvasCloseIdempotent(t *testing.T) {
	c := NewCanvas(testGeometry())

	c.Close()
	c.Close() // second close is a no-op

	if c.Open() {
		t.Error("canvas should report closed")
	}

	// A closed canvas that never rendered is also fine to close again.
	fresh := NewCanvas(testGeometry())
	fresh.Close()
	if fresh.Open() {
		t.Error("fresh canvas should close cleanly")
	}
}
