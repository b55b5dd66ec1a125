// Package viewport renders the actor scene with a small software
// rasterizer and exposes it both as a plain image and as a fyne widget.
//
// The Viewport implements scene.Viewer: modules draw polylines into its
// actor table, and Render projects them through an orbit camera into an
// RGBA pixel buffer. Reference decorations (plane grid, axes triad) are
// owned by the viewport itself and survive Clear according to their
// visibility flags.
//
// The Widget wraps a Viewport for desktop use: it shows the pixel buffer
// in a canvas image, resizes the buffer with the layout, and translates
// drag and scroll gestures into camera orbit and zoom.
//
// Rendering is CPU-only, so the same code path runs headless in tests and
// drives PNG snapshot export.
package viewport
