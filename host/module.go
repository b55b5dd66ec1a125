package host

import (
	"github.com/vizkit/explorer/param"
	"github.com/vizkit/explorer/scene"
)

// Meta describes a module for menus and catalogs.
type Meta struct {
	ID          string
	Name        string
	Category    string
	Description string
}

// Module is the contract every visualization implements. The host drives
// the lifecycle strictly as Setup, zero or more Updates, then Teardown.
type Module interface {
	// Meta returns static metadata. It must be callable before Setup.
	Meta() Meta

	// ParamSchema declares the tunable parameters. The host validates
	// the schema before Setup and builds the parameter form from it.
	ParamSchema() param.Schema

	// Setup creates the module's initial actors in the viewer. It is
	// called exactly once per instance.
	Setup(v scene.Viewer) error

	// Update applies a full parameter snapshot. It is called after
	// Setup with the panel's defaults and again on every edit, and must
	// tolerate repeated application of equal values.
	Update(p param.Values) error

	// Teardown releases module-held state. The host clears the viewer
	// afterward, so implementations only drop their own references.
	Teardown() error
}

// Factory builds a fresh module instance per activation.
type Factory func() Module

// Panel is the parameter form the host pushes schemas into. The form
// reports edits through its own callback wiring; the host only needs to
// install a schema and read the current values back.
type Panel interface {
	SetSchema(s param.Schema)
	Current() param.Values
}
