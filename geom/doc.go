// Package geom provides the small linear-algebra toolkit shared by
// visualization modules: 2x2 matrices acting on the xy-plane, polylines
// embedded in 3D space, canonical shapes (unit circle, square grid), and
// real eigendecomposition of 2x2 matrices.
//
// Points are mgl64.Vec3 values. Planar shapes keep z = 0 so they can be
// handed straight to a 3D viewer.
package geom
