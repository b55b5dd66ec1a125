package scene

import "github.com/vizkit/explorer/geom"

// Recorder is an in-memory Viewer with no rendering backend. It stores
// actors in a Table and counts operations, which makes it the viewer of
// choice for module tests and the terminal inspector.
type Recorder struct {
	table   *Table
	renders int
	updates int
}

// NewRecorder creates an empty headless viewer.
func NewRecorder() *Recorder {
	return &Recorder{table: NewTable()}
}

// AddPolyline inserts a copy of the polyline as a new actor.
func (r *Recorder) AddPolyline(pts geom.Polyline, st Style) Handle {
	return r.table.Insert(&Object{Points: pts.Clone(), Style: st})
}

// SetPoints replaces an actor's geometry.
func (r *Recorder) SetPoints(h Handle, pts geom.Polyline) bool {
	if !r.table.SetPoints(h, pts) {
		return false
	}
	r.updates++
	return true
}

// Remove deletes an actor.
func (r *Recorder) Remove(h Handle) bool {
	_, ok := r.table.Remove(h)
	return ok
}

// Clear removes every actor.
func (r *Recorder) Clear() {
	r.table.Clear()
}

// Render counts a frame; nothing is drawn.
func (r *Recorder) Render() {
	r.renders++
}

// Actors returns the number of live actors.
func (r *Recorder) Actors() int {
	return r.table.Len()
}

// Renders returns how many frames were requested.
func (r *Recorder) Renders() int {
	return r.renders
}

// Updates returns how many geometry updates were applied.
func (r *Recorder) Updates() int {
	return r.updates
}

// Table exposes the backing actor table for inspection.
func (r *Recorder) Table() *Table {
	return r.table
}

var _ Viewer = (*Recorder)(nil)
