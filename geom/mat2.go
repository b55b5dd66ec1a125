package geom

// Mat2 is a 2x2 matrix in row-major order.
type Mat2 [2][2]float64

// Identity returns the 2x2 identity matrix.
func Identity() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

// Apply multiplies the matrix with the column vector (x, y).
func (m Mat2) Apply(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y, m[1][0]*x + m[1][1]*y
}

// Lerp interpolates from the identity toward m: (1-t)*I + t*m.
// t=0 yields the identity, t=1 yields m itself. Values outside [0, 1]
// extrapolate.
func (m Mat2) Lerp(t float64) Mat2 {
	s := 1 - t
	return Mat2{
		{s + t*m[0][0], t * m[0][1]},
		{t * m[1][0], s + t*m[1][1]},
	}
}

// Det returns the determinant.
func (m Mat2) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Trace returns the trace.
func (m Mat2) Trace() float64 {
	return m[0][0] + m[1][1]
}
