package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// RealTol is the largest imaginary magnitude still treated as zero when
// deciding whether an eigenvalue or eigenvector component is real.
const RealTol = 1e-8

// EigenPair is a real eigenvalue with its unit-length eigenvector.
type EigenPair struct {
	Value  float64
	Vector mgl64.Vec2
}

// Eigen computes the real eigenpairs of a 2x2 matrix. Complex pairs are
// skipped, so the result holds zero, one, or two entries in factorization
// order. Eigenvectors are normalized to unit length.
func Eigen(a Mat2) []EigenPair {
	d := mat.NewDense(2, 2, []float64{a[0][0], a[0][1], a[1][0], a[1][1]})

	var eig mat.Eigen
	if !eig.Factorize(d, mat.EigenRight) {
		return nil
	}
	vals := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	var out []EigenPair
	for i := 0; i < 2; i++ {
		if math.Abs(imag(vals[i])) >= RealTol {
			continue
		}
		vx, vy := vecs.At(0, i), vecs.At(1, i)
		if math.Abs(imag(vx)) >= RealTol || math.Abs(imag(vy)) >= RealTol {
			continue
		}
		v := mgl64.Vec2{real(vx), real(vy)}
		n := v.Len() + 1e-9
		out = append(out, EigenPair{
			Value:  real(vals[i]),
			Vector: mgl64.Vec2{v[0] / n, v[1] / n},
		})
	}
	return out
}
