// Package explorer provides a desktop shell for parametric math
// visualizations.
//
// A visualization module renders a mathematical object into a shared 3D
// scene and republishes it whenever its parameters change. The explorer
// supplies everything around that contract: a declarative parameter
// schema that becomes a live form, a software-rendered viewport with an
// orbit camera, and a host that drives module lifecycles.
//
// # Architecture Overview
//
// The repository is organized into packages with distinct responsibilities:
//
//	explorer/            Root package with the builtin module registry
//	├── host/            Module contract, registry, activation lifecycle
//	├── param/           Parameter specs, schemas, and typed value maps
//	├── geom/            Polylines, circle/grid generators, 2x2 matrix
//	│                    algebra and eigendecomposition
//	├── scene/           Actor handle table and the Viewer facade
//	├── viewport/        Orbit camera, line rasterizer, fyne widget
//	├── panel/           Schema-driven parameter form with animation
//	├── modules/         Builtin visualization modules
//	├── errors/          Structured error types for lifecycle phases
//	├── config/          Environment configuration and logger setup
//	└── cmd/explorer/    GUI shell and terminal inspector binaries
//
// # Quick Start
//
// Drive a module without any UI:
//
//	rec := scene.NewRecorder()
//	h := host.NewWithDefaults(explorer.Builtins(), rec)
//
//	if err := h.Activate(lineartransform.ID); err != nil {
//	    log.Fatal(err)
//	}
//
//	h.OnParams(param.Values{"A": geom.Mat2{{0, -1}, {1, 0}}})
//	fmt.Println(rec.Actors()) // actors currently in the scene
//
// # Module Contract
//
// A module implements host.Module: Meta for catalog info, ParamSchema for
// its form, Setup to claim actors on a viewer, Update to move existing
// actors, and Teardown to release state. Update must be idempotent; the
// host may call it with the same values twice during activation.
//
// # Thread Safety
//
// The scene table and viewport frame buffer are safe for concurrent use;
// everything else expects the UI goroutine, except where noted. The
// panel's animation goroutine re-enters the host through the slider
// callback, which is the supported path.
package explorer
