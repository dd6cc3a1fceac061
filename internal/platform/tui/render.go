package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ndmitriev/pixelpole/internal/render"
)

// RenderFrame converts a 64x64 observation to a styled string for the
// terminal. Each character cell covers two vertically adjacent pixels using
// the upper-half-block glyph: foreground is the top pixel, background the
// bottom one, so the frame fits in 32 rows of 64 columns.
func RenderFrame(f *render.Frame) string {
	var sb strings.Builder
	sb.Grow(render.Width * render.Height * 12)

	for y := 0; y < render.Height; y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < render.Width {
			top := hexAt(f, x, y)
			bottom := hexAt(f, x, y+1)

			// Group consecutive columns with the same color pair to keep
			// ANSI escape volume down.
			var run strings.Builder
			for x < render.Width && hexAt(f, x, y) == top && hexAt(f, x, y+1) == bottom {
				run.WriteRune('▀')
				x++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func hexAt(f *render.Frame, x, y int) string {
	r, g, b := f.At(x, y)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
