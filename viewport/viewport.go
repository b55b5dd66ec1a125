package viewport

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/vizkit/explorer/errors"
	"github.com/vizkit/explorer/geom"
	"github.com/vizkit/explorer/scene"
)

// Reference decoration layout. The grid spans [-decorExtent, decorExtent]
// in the xy plane; axes extend axisLen from the origin.
const (
	decorExtent = 2.0
	decorStep   = 0.5
	axisLen     = 1.5
)

var (
	decorGridStyle = scene.Style{Color: color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}, Width: 1}
	axisXStyle     = scene.Style{Color: color.RGBA{R: 0xcc, G: 0x33, B: 0x33, A: 0xff}, Width: 2}
	axisYStyle     = scene.Style{Color: color.RGBA{R: 0x33, G: 0xa0, B: 0x33, A: 0xff}, Width: 2}
	axisZStyle     = scene.Style{Color: color.RGBA{R: 0x33, G: 0x55, B: 0xcc, A: 0xff}, Width: 2}
)

// Options configures viewport creation
type Options struct {
	// Width and Height set the initial raster size in pixels
	Width  int
	Height int

	// Background is the clear color. A fully transparent color is
	// treated as unset and replaced with white.
	Background color.RGBA

	// Logger for render diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns sensible defaults for viewport creation
func DefaultOptions() Options {
	return Options{
		Width:      960,
		Height:     720,
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Viewport is a software-rasterized scene viewer. It owns an actor table,
// an orbit camera and an RGBA frame buffer, and implements scene.Viewer
// so modules can draw into it directly.
type Viewport struct {
	table *scene.Table
	cam   *Camera
	log   *zap.Logger

	showGrid bool
	showAxes bool
	decor    []scene.Handle

	onFrame func()

	renderMu sync.Mutex
	img      *image.RGBA
	bg       color.RGBA
	frames   int
}

// New creates a viewport with the given options
func New(opts Options) *Viewport {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Background.A == 0 {
		opts.Background = def.Background
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	v := &Viewport{
		table:    scene.NewTable(),
		cam:      NewCamera(),
		log:      log.Named("viewport"),
		showGrid: true,
		showAxes: true,
		img:      image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		bg:       opts.Background,
	}
	fill(v.img, v.bg)
	v.addDecorations()
	return v
}

// NewWithDefaults creates a viewport with default options
func NewWithDefaults() *Viewport {
	return New(DefaultOptions())
}

// AddPolyline implements scene.Viewer. Points are copied, so the caller
// may keep mutating its buffer.
func (v *Viewport) AddPolyline(pts geom.Polyline, st scene.Style) scene.Handle {
	return v.table.Insert(&scene.Object{Points: pts.Clone(), Style: st})
}

// SetPoints implements scene.Viewer
func (v *Viewport) SetPoints(h scene.Handle, pts geom.Polyline) bool {
	return v.table.SetPoints(h, pts)
}

// Remove implements scene.Viewer
func (v *Viewport) Remove(h scene.Handle) bool {
	_, ok := v.table.Remove(h)
	return ok
}

// Clear implements scene.Viewer. Viewport-owned decorations are re-added
// according to the current visibility flags, so a module switch never
// strips the reference grid.
func (v *Viewport) Clear() {
	v.table.Clear()
	v.decor = v.decor[:0]
	v.addDecorations()
}

// Render rasterizes the scene into the frame buffer and fires the frame
// callback. Safe to call concurrently with Resize and EncodePNG.
func (v *Viewport) Render() {
	v.renderMu.Lock()

	b := v.img.Rect
	w, h := b.Dx(), b.Dy()
	fill(v.img, v.bg)

	view := v.cam.View()
	proj := v.cam.Projection(float64(w) / float64(h))
	vp := proj.Mul4(view)

	v.table.Each(func(_ scene.Handle, obj *scene.Object) bool {
		drawPolyline(v.img, vp, obj, w, h)
		return true
	})

	v.frames++
	v.renderMu.Unlock()

	if v.onFrame != nil {
		v.onFrame()
	}
}

// Resize reallocates the frame buffer. The current frame is discarded;
// the next Render repaints at the new size.
func (v *Viewport) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	v.renderMu.Lock()
	defer v.renderMu.Unlock()

	if b := v.img.Rect; b.Dx() == w && b.Dy() == h {
		return
	}
	v.img = image.NewRGBA(image.Rect(0, 0, w, h))
	fill(v.img, v.bg)
}

// Image returns the frame buffer of the last completed render. Resize
// swaps the buffer out, so callers must re-fetch it every frame.
func (v *Viewport) Image() *image.RGBA {
	v.renderMu.Lock()
	defer v.renderMu.Unlock()
	return v.img
}

// EncodePNG writes the last rendered frame as a PNG snapshot
func (v *Viewport) EncodePNG(w io.Writer) error {
	v.renderMu.Lock()
	defer v.renderMu.Unlock()

	if err := png.Encode(w, v.img); err != nil {
		return errors.Export("encode png snapshot", err)
	}
	return nil
}

// Camera exposes the orbit camera for input controllers
func (v *Viewport) Camera() *Camera {
	return v.cam
}

// ResetCamera restores the default orbit pose and re-renders
func (v *Viewport) ResetCamera() {
	v.cam.Reset()
	v.Render()
}

// SetGridVisible toggles the reference grid decoration and re-renders
func (v *Viewport) SetGridVisible(show bool) {
	if v.showGrid == show {
		return
	}
	v.showGrid = show
	v.rebuildDecorations()
	v.Render()
}

// SetAxesVisible toggles the axes triad decoration and re-renders
func (v *Viewport) SetAxesVisible(show bool) {
	if v.showAxes == show {
		return
	}
	v.showAxes = show
	v.rebuildDecorations()
	v.Render()
}

// GridVisible reports whether the reference grid is shown
func (v *Viewport) GridVisible() bool {
	return v.showGrid
}

// AxesVisible reports whether the axes triad is shown
func (v *Viewport) AxesVisible() bool {
	return v.showAxes
}

// OnFrame registers a callback invoked after every completed render
func (v *Viewport) OnFrame(fn func()) {
	v.onFrame = fn
}

// Frames returns the number of completed renders
func (v *Viewport) Frames() int {
	v.renderMu.Lock()
	defer v.renderMu.Unlock()
	return v.frames
}

// DecorationCount returns the number of viewport-owned actors
func (v *Viewport) DecorationCount() int {
	return len(v.decor)
}

// Table exposes the underlying actor table
func (v *Viewport) Table() *scene.Table {
	return v.table
}

func (v *Viewport) addDecorations() {
	if v.showGrid {
		for x := -decorExtent; x <= decorExtent+decorStep/2; x += decorStep {
			v.addDecor(geom.Polyline{{x, -decorExtent, 0}, {x, decorExtent, 0}}, decorGridStyle)
		}
		for y := -decorExtent; y <= decorExtent+decorStep/2; y += decorStep {
			v.addDecor(geom.Polyline{{-decorExtent, y, 0}, {decorExtent, y, 0}}, decorGridStyle)
		}
	}
	if v.showAxes {
		v.addDecor(geom.Polyline{{0, 0, 0}, {axisLen, 0, 0}}, axisXStyle)
		v.addDecor(geom.Polyline{{0, 0, 0}, {0, axisLen, 0}}, axisYStyle)
		v.addDecor(geom.Polyline{{0, 0, 0}, {0, 0, axisLen}}, axisZStyle)
	}
}

func (v *Viewport) addDecor(pts geom.Polyline, st scene.Style) {
	h := v.table.Insert(&scene.Object{Points: pts, Style: st, Decor: true})
	v.decor = append(v.decor, h)
}

func (v *Viewport) rebuildDecorations() {
	for _, h := range v.decor {
		v.table.Remove(h)
	}
	v.decor = v.decor[:0]
	v.addDecorations()
}

func drawPolyline(img *image.RGBA, vp mgl64.Mat4, obj *scene.Object, w, h int) {
	width := int(obj.Style.Width + 0.5)
	if width < 1 {
		width = 1
	}
	for i := 0; i+1 < len(obj.Points); i++ {
		x0, y0, x1, y1, ok := projectSegment(vp, obj.Points[i], obj.Points[i+1], w, h)
		if !ok {
			continue
		}
		x0, y0, x1, y1, ok = clipToRect(x0, y0, x1, y1, 0, 0, float64(w-1), float64(h-1))
		if !ok {
			continue
		}
		drawLine(img, x0, y0, x1, y1, obj.Style.Color, width)
	}
}

// fill paints the first row then copies it down, which is much cheaper
// than per-pixel SetRGBA across the whole frame.
func fill(img *image.RGBA, col color.RGBA) {
	b := img.Rect
	if b.Empty() {
		return
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		img.SetRGBA(x, b.Min.Y, col)
	}
	rowStart := img.PixOffset(b.Min.X, b.Min.Y)
	row := img.Pix[rowStart : rowStart+b.Dx()*4]
	for y := b.Min.Y + 1; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		copy(img.Pix[off:off+b.Dx()*4], row)
	}
}

var _ scene.Viewer = (*Viewport)(nil)
