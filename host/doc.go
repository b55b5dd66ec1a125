// Package host manages visualization module registration and lifecycle.
//
// A module is a self-contained visualization: it publishes metadata and a
// parameter schema, draws into a viewer during setup, and reacts to
// parameter changes until it is torn down. The Registry maps module ids to
// factories; the Host owns the single active module and runs the
// activation protocol:
//
//	reg := host.NewRegistry()
//	reg.MustRegister(lineartransform.ID, func() host.Module {
//		return lineartransform.New()
//	})
//
//	h := host.New(reg, viewer, host.Options{Panel: panel})
//	if err := h.Activate(lineartransform.ID); err != nil {
//		// unknown id or setup failure
//	}
//
// Activation tears down the previous module, clears the viewer, runs the
// new module's Setup, pushes its schema to the parameter panel, primes it
// with the panel's current values, and renders. Teardown failures are
// logged and swallowed so the viewer always ends up clean.
//
// All host methods must be called from one goroutine, conventionally the
// UI event loop. The host itself holds no locks; the scene table below it
// is the synchronization point for render-versus-update races.
package host
