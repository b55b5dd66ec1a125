// Package panel builds a live parameter form from a declarative schema.
//
// Panel is a fyne widget that turns each param.Spec into the matching
// input control: sliders for floats and ints, a check for bools, a
// select for enums, and a 2x2 entry grid for matrices. Every edit
// re-emits the full parameter mapping through a single callback, and a
// schema containing a float named "animate_t" gains a Play button that
// drives the value from 0 to 1 with a damped spring.
//
// The panel implements host.Panel, so the module host can push schemas
// into it on activation and read the current mapping back when priming.
package panel
