package host

import (
	"go.uber.org/zap"

	"github.com/vizkit/explorer/errors"
	"github.com/vizkit/explorer/param"
	"github.com/vizkit/explorer/scene"
)

// Options configures host behavior.
type Options struct {
	// Panel receives the active module's schema and supplies current
	// parameter values. May be nil for headless hosts, which then prime
	// modules with schema defaults.
	Panel Panel

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// OnError is invoked with update failures that occur outside any
	// call the caller could return an error from, such as form edits.
	OnError func(error)
}

// DefaultOptions returns default host configuration.
func DefaultOptions() Options {
	return Options{}
}

// Host owns the single active visualization module and its lifecycle.
type Host struct {
	registry *Registry
	viewer   scene.Viewer
	panel    Panel
	log      *zap.Logger
	onError  func(error)

	active   Module
	activeID string
}

// New creates a host drawing into the given viewer.
func New(reg *Registry, viewer scene.Viewer, opts Options) *Host {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{
		registry: reg,
		viewer:   viewer,
		panel:    opts.Panel,
		log:      log.Named("host"),
		onError:  opts.OnError,
	}
}

// NewWithDefaults creates a host with default options.
func NewWithDefaults(reg *Registry, viewer scene.Viewer) *Host {
	return New(reg, viewer, DefaultOptions())
}

// Activate switches to the module registered under id. The previous module
// is torn down first and the viewer cleared; teardown failures are logged
// and swallowed so clearing always proceeds. The new module is set up,
// its schema pushed to the panel, and its parameters primed with the
// panel's current values (schema defaults when no panel is attached)
// before the first render.
func (h *Host) Activate(id string) error {
	h.dropActive()

	f, ok := h.registry.Lookup(id)
	if !ok {
		return errors.UnknownModule(id)
	}

	m := f()
	schema := m.ParamSchema()
	if err := schema.Validate(); err != nil {
		return errors.New(errors.PhaseSchema, errors.KindInvalidSchema).
			Module(id).
			Cause(err).
			Detail("invalid parameter schema").
			Build()
	}

	if err := m.Setup(h.viewer); err != nil {
		h.viewer.Clear()
		return errors.Setup(id, err)
	}
	h.active = m
	h.activeID = id

	// Building the form fires the panel's initial change notification,
	// which already routes through OnParams. The explicit prime below
	// keeps headless hosts and panels with deferred wiring correct;
	// updates are idempotent, so applying twice is harmless.
	vals := schema.Defaults()
	if h.panel != nil {
		h.panel.SetSchema(schema)
		vals = h.panel.Current()
	}
	if err := m.Update(vals); err != nil {
		return errors.Update(id, err)
	}
	h.viewer.Render()

	h.log.Info("module activated",
		zap.String("module", id),
		zap.Int("params", len(schema)))
	return nil
}

// OnParams applies a parameter snapshot to the active module and renders.
// It is the callback target for panel edits. Failures are logged and
// forwarded to the OnError hook; with no module active it is a no-op.
func (h *Host) OnParams(vals param.Values) {
	if h.active == nil {
		return
	}
	if err := h.active.Update(vals); err != nil {
		werr := errors.Update(h.activeID, err)
		h.log.Error("parameter update failed",
			zap.String("module", h.activeID),
			zap.Error(werr))
		if h.onError != nil {
			h.onError(werr)
		}
		return
	}
	h.viewer.Render()
}

// Deactivate tears down the active module, clears the viewer, and renders
// the empty scene. It is a no-op when nothing is active.
func (h *Host) Deactivate() {
	if h.active == nil {
		return
	}
	h.dropActive()
	h.viewer.Render()
}

// ActiveMeta returns the metadata of the active module.
func (h *Host) ActiveMeta() (Meta, bool) {
	if h.active == nil {
		return Meta{}, false
	}
	return h.active.Meta(), true
}

// Registry returns the module registry.
func (h *Host) Registry() *Registry {
	return h.registry
}

func (h *Host) dropActive() {
	if h.active == nil {
		return
	}
	if err := h.active.Teardown(); err != nil {
		h.log.Warn("module teardown failed",
			zap.String("module", h.activeID),
			zap.Error(errors.Teardown(h.activeID, err)))
	}
	h.active = nil
	h.activeID = ""
	h.viewer.Clear()
}
