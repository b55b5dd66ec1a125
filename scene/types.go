package scene

import (
	"image/color"

	"github.com/vizkit/explorer/geom"
)

// Handle is an opaque reference to an actor in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Style controls how an actor's polyline is drawn.
type Style struct {
	Color color.RGBA
	Width float64
}

// Object is a single scene actor: a styled polyline. Decor marks objects
// owned by the viewer itself (reference grid, axes triad) rather than by
// the active module.
type Object struct {
	Points geom.Polyline
	Style  Style
	Decor  bool
}

// EventType identifies an actor lifecycle event.
type EventType uint8

const (
	EventAdded EventType = iota
	EventUpdated
	EventRemoved
)

// Event represents an actor lifecycle event.
type Event struct {
	Object *Object
	Handle Handle
	Type   EventType
}

// Observer receives notifications about actor lifecycle events.
type Observer interface {
	OnSceneEvent(Event)
}

// Viewer is the drawing protocol between modules and a rendering backend.
// Implementations copy points on AddPolyline, so callers may reuse their
// buffers afterward.
type Viewer interface {
	// AddPolyline inserts a new actor and returns its handle.
	AddPolyline(pts geom.Polyline, st Style) Handle

	// SetPoints replaces an actor's geometry, mutating the stored buffer
	// in place when the point count is unchanged. It reports whether the
	// handle was valid.
	SetPoints(h Handle, pts geom.Polyline) bool

	// Remove deletes an actor. It reports whether the handle was valid.
	Remove(h Handle) bool

	// Clear removes every actor. Backends that own decorations re-add
	// them according to their visibility flags.
	Clear()

	// Render draws the current scene.
	Render()
}
