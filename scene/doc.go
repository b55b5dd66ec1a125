// Package scene provides actor handle management for visualization viewers.
//
// Actors are styled polylines addressed by opaque handles. The package
// defines the Viewer protocol that modules draw through, the Table that
// backs every viewer implementation, and a headless Recorder viewer for
// tests and terminal tooling.
//
// # Handle Table
//
// The Table maps integer handles to actors:
//
//	table := scene.NewTable()
//
//	// Insert an actor, get a handle
//	handle := table.Insert(&scene.Object{Points: pts, Style: st})
//
//	// Retrieve by handle
//	obj, ok := table.Get(handle)
//
//	// Remove and reclaim the slot
//	obj, ok := table.Remove(handle)
//
// Handle 0 is reserved and always invalid. Slots freed by Remove are reused
// by later inserts, so long-lived sessions do not grow the table without
// bound.
//
// # Viewer Protocol
//
// Modules never talk to a concrete renderer. They draw through the narrow
// Viewer interface:
//
//	h := viewer.AddPolyline(points, scene.Style{Color: black, Width: 2})
//	viewer.SetPoints(h, movedPoints)
//	viewer.Remove(h)
//	viewer.Render()
//
// SetPoints writes into the actor's existing point buffer when the length
// is unchanged, which keeps per-frame parameter updates allocation-free.
//
// # Observers
//
// Register observers to track actor lifecycle events:
//
//	table.Subscribe(obs) // obs.OnSceneEvent called for add/update/remove
//
// Observers see events synchronously on the calling goroutine.
package scene
