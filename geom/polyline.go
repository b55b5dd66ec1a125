package geom

import "github.com/go-gl/mathgl/mgl64"

// Polyline is an ordered sequence of 3D points joined by line segments.
// A closed polyline repeats its first point at the end.
type Polyline []mgl64.Vec3

// Clone returns a deep copy of the polyline.
func (p Polyline) Clone() Polyline {
	if p == nil {
		return nil
	}
	out := make(Polyline, len(p))
	copy(out, p)
	return out
}

// Transform applies a to the xy components of each src point and writes the
// results into dst, reusing its storage when it is large enough. The z
// component is held at zero. It returns the destination slice, following the
// append convention.
func Transform(dst, src Polyline, a Mat2) Polyline {
	if cap(dst) < len(src) {
		dst = make(Polyline, len(src))
	}
	dst = dst[:len(src)]
	for i, p := range src {
		x, y := a.Apply(p[0], p[1])
		dst[i] = mgl64.Vec3{x, y, 0}
	}
	return dst
}
