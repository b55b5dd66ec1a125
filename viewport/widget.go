package viewport

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Pointer input tuning. orbitRate converts drag pixels to radians,
// zoomStep is the radius change per scroll notch.
const (
	orbitRate = 0.008
	zoomStep  = 0.5
)

// Widget embeds a Viewport in a fyne UI. Dragging orbits the camera and
// scrolling zooms; every camera change triggers a re-render.
type Widget struct {
	widget.BaseWidget

	vp  *Viewport
	img *canvas.Image
}

// NewWidget wraps a viewport in a fyne widget
func NewWidget(vp *Viewport) *Widget {
	w := &Widget{vp: vp}

	w.img = canvas.NewImageFromImage(vp.Image())
	w.img.FillMode = canvas.ImageFillContain
	w.img.ScaleMode = canvas.ImageScaleFastest
	w.img.SetMinSize(fyne.NewSize(320, 240))

	// Resize swaps the frame buffer, so the image source must be
	// re-fetched on every frame.
	vp.OnFrame(func() {
		w.img.Image = vp.Image()
		w.img.Refresh()
	})

	w.ExtendBaseWidget(w)
	return w
}

// Viewport returns the wrapped viewport
func (w *Widget) Viewport() *Viewport {
	return w.vp
}

// CreateRenderer implements fyne.Widget
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.img)
}

// Resize implements fyne.CanvasObject, keeping the raster size in step
// with the widget's layout size.
func (w *Widget) Resize(size fyne.Size) {
	w.BaseWidget.Resize(size)
	w.vp.Resize(int(size.Width), int(size.Height))
	w.vp.Render()
}

// Dragged implements fyne.Draggable, orbiting the camera
func (w *Widget) Dragged(e *fyne.DragEvent) {
	w.vp.Camera().Orbit(-float64(e.Dragged.DX)*orbitRate, float64(e.Dragged.DY)*orbitRate)
	w.vp.Render()
}

// DragEnd implements fyne.Draggable
func (w *Widget) DragEnd() {}

// Scrolled implements fyne.Scrollable, zooming the camera. Scrolling up
// moves the camera closer.
func (w *Widget) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY == 0 {
		return
	}
	delta := zoomStep
	if e.Scrolled.DY > 0 {
		delta = -zoomStep
	}
	w.vp.Camera().Zoom(delta)
	w.vp.Render()
}

var (
	_ fyne.Draggable  = (*Widget)(nil)
	_ fyne.Scrollable = (*Widget)(nil)
)
