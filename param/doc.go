// Package param defines the declarative parameter model shared by
// visualization modules, the parameter panel, and the host.
//
// A module describes its tunable inputs as a Schema, an ordered list of
// Spec entries. The panel renders one control per spec and reports edits
// as a Values map. Values offers kind-aware readers with defaults, so a
// module reads parameters without per-key type assertions:
//
//	n := p.Int("grid_n", 10)
//	a := p.Matrix("A", geom.Identity())
//
// Specs carry optional numeric bounds. Controls clamp to them; modules may
// additionally validate with Schema.Validate before use.
package param
