// Package lineartransform visualizes a 2x2 linear map acting on the plane.
//
// The module draws the unit circle and a square reference grid, then warps
// both through the interpolated matrix At = (1-t)*I + t*A as parameters
// change. Real eigenvectors of At are overlaid as scaled segments from the
// origin, colored by draw order.
//
// Per-frame updates mutate the existing actors' point buffers in place.
// Only a change to the grid density tears actors down and rebuilds them,
// since that changes the scene topology.
package lineartransform
