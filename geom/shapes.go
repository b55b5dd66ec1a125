package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UnitCircle samples the unit circle in the xy-plane with n points. The
// sample angles span [0, 2pi] inclusive, so the last point coincides with
// the first and the polyline draws closed.
func UnitCircle(n int) Polyline {
	if n <= 0 {
		return nil
	}
	out := make(Polyline, n)
	if n == 1 {
		out[0] = mgl64.Vec3{1, 0, 0}
		return out
	}
	for i := range out {
		th := 2 * math.Pi * float64(i) / float64(n-1)
		out[i] = mgl64.Vec3{math.Cos(th), math.Sin(th), 0}
	}
	return out
}

// GridLines builds a square grid on the xy-plane spanning [-extent, extent]
// in both axes. It returns 2n polylines: n verticals followed by n
// horizontals, each sampled with n points so the lines deform smoothly under
// a nonlinear warp of their vertices.
func GridLines(n int, extent float64) []Polyline {
	if n < 2 {
		return nil
	}
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = -extent + 2*extent*float64(i)/float64(n-1)
	}

	out := make([]Polyline, 0, 2*n)
	for _, x := range ticks {
		line := make(Polyline, n)
		for j, y := range ticks {
			line[j] = mgl64.Vec3{x, y, 0}
		}
		out = append(out, line)
	}
	for _, y := range ticks {
		line := make(Polyline, n)
		for j, x := range ticks {
			line[j] = mgl64.Vec3{x, y, 0}
		}
		out = append(out, line)
	}
	return out
}
