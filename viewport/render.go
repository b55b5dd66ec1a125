package viewport

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// clipNearW is the clip-space w below which a point counts as behind the
// camera.
const clipNearW = 1e-6

// projectSegment clips a world-space segment against the near plane in
// clip space and maps the surviving portion to pixel coordinates. ok is
// false when the segment lies entirely behind the camera.
func projectSegment(vp mgl64.Mat4, a, b mgl64.Vec3, w, h int) (x0, y0, x1, y1 float64, ok bool) {
	ca := vp.Mul4x1(mgl64.Vec4{a[0], a[1], a[2], 1})
	cb := vp.Mul4x1(mgl64.Vec4{b[0], b[1], b[2], 1})

	wa, wb := ca.W(), cb.W()
	if wa < clipNearW && wb < clipNearW {
		return 0, 0, 0, 0, false
	}
	if wa < clipNearW {
		t := (clipNearW - wa) / (wb - wa)
		ca = lerp4(ca, cb, t)
		wa = ca.W()
	} else if wb < clipNearW {
		t := (clipNearW - wb) / (wa - wb)
		cb = lerp4(cb, ca, t)
		wb = cb.W()
	}

	x0, y0 = ndcToPixel(ca.X()/wa, ca.Y()/wa, w, h)
	x1, y1 = ndcToPixel(cb.X()/wb, cb.Y()/wb, w, h)
	return x0, y0, x1, y1, true
}

func lerp4(a, b mgl64.Vec4, t float64) mgl64.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

func ndcToPixel(nx, ny float64, w, h int) (float64, float64) {
	return (nx*0.5 + 0.5) * float64(w-1), (1 - (ny*0.5 + 0.5)) * float64(h-1)
}

// clipToRect clips a segment to a rectangle with the Liang-Barsky
// parametric test. Segments projected from points grazing the near plane
// can land millions of pixels off screen; clipping first keeps the
// rasterizer's work bounded by the image size.
func clipToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}

	t0, t1 := 0.0, 1.0
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// drawLine rasterizes a segment with Bresenham stepping, stamping
// width-sized squares for thick strokes.
func drawLine(img *image.RGBA, x0f, y0f, x1f, y1f float64, col color.RGBA, width int) {
	x0, y0 := int(x0f+0.5), int(y0f+0.5)
	x1, y1 := int(x1f+0.5), int(y1f+0.5)

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		stamp(img, x0, y0, col, width)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func stamp(img *image.RGBA, x, y int, col color.RGBA, width int) {
	if width <= 1 {
		setPixel(img, x, y, col)
		return
	}
	r := width / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			setPixel(img, x+dx, y+dy, col)
		}
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	img.SetRGBA(x, y, col)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
