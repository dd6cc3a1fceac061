package render

import (
	"github.com/ndmitriev/pixelpole/internal/physics"
	"github.com/ndmitriev/pixelpole/internal/visual"
)

// Canvas is the render target for one environment instance. It is the only
// component with a lifecycle: the environment constructs it lazily on first
// render and tears it down via Close.
type Canvas struct {
	geom Geometry
	open bool
}

// NewCanvas opens a render target with the given scene geometry.
func NewCanvas(g Geometry) *Canvas {
	return &Canvas{geom: g, open: true}
}

// Render rasterizes the scene into a fresh frame. A closed canvas reopens
// transparently; the frame is a pure function of state and palette either
// way.
func (c *Canvas) Render(s physics.State, pal visual.Palette) Frame {
	c.open = true
	return Rasterize(s, pal, c.geom)
}

// Close releases the render target. Safe to call multiple times or on a
// canvas that never rendered.
func (c *Canvas) Close() {
	c.open = false
}

// Open reports whether the canvas currently holds a live render target.
func (c *Canvas) Open() bool {
	return c.open
}
