package parameters

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// InertiaTensorFromComponents assembles the symmetric 3x3 inertia tensor of
// a laterally symmetric rigid body. The xy and yz products vanish under the
// planar-symmetry assumption, leaving four independent components:
//
//	| Ixx  0   Ixz |
//	|  0  Iyy   0  |
//	| Ixz  0   Izz |
func InertiaTensorFromComponents(ixx, ixz, iyy, izz float64) *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		ixx, 0.0, ixz,
		0.0, iyy, 0.0,
		ixz, 0.0, izz,
	})
}

// PrincipalRadii holds a body's principal radii of gyration and the
// orientation of its principal axes in the XZ plane.
type PrincipalRadii struct {
	Kaa   float64 // radius about the maximal planar principal axis [m]
	Kbb   float64 // radius about the minimal planar principal axis [m]
	Kyy   float64 // radius about the out-of-plane y axis [m]
	Alpha float64 // rotation from the x axis to the maximal axis [rad]
}

// DecomposePlanarInertia eigen-decomposes the XZ sub-tensor of a body's
// inertia tensor into principal radii of gyration and an orientation angle.
//
// The y axis is already principal under the planar-symmetry assumption, so
// the y row and column are dropped and the remaining symmetric 2x2 tensor is
// factorized. The smaller eigenvalue yields Kbb, the larger Kaa.
//
// The z component of the maximal eigenvector is negated before atan2 so the
// rotation about y reads as if measured in a standard (x, -z) plane where z
// grows downward. This sign convention must not be altered: reported angles
// match the reference data only with the negation in place.
func DecomposePlanarInertia(tensor *mat.SymDense, mass float64) (PrincipalRadii, error) {
	planar := mat.NewSymDense(2, []float64{
		tensor.At(0, 0), tensor.At(0, 2),
		tensor.At(2, 0), tensor.At(2, 2),
	})

	var eig mat.EigenSym
	if ok := eig.Factorize(planar, true); !ok {
		return PrincipalRadii{}, fmt.Errorf("eigen decomposition of planar inertia tensor failed: %v", mat.Formatted(planar))
	}

	// Eigenvalues come back in ascending order: column 0 is the minimal
	// principal direction, column 1 the maximal one.
	evals := eig.Values(nil)
	var evecs mat.Dense
	eig.VectorsTo(&evecs)

	alpha := math.Atan2(-evecs.At(1, 1), evecs.At(0, 1))

	return PrincipalRadii{
		Kaa:   math.Sqrt(evals[1] / mass),
		Kbb:   math.Sqrt(evals[0] / mass),
		Kyy:   math.Sqrt(tensor.At(1, 1) / mass),
		Alpha: alpha,
	}, nil
}

// InertiaEllipsoidAxes returns the width (along the minimal planar axis) and
// height of the XZ cross-section of the constant density ellipsoid that has
// the same principal moments and axes of inertia as the body.
func InertiaEllipsoidAxes(r PrincipalRadii) (width, height float64) {
	width = math.Sqrt(5.0 / 2.0 * (-r.Kaa*r.Kaa + r.Kyy*r.Kyy + r.Kbb*r.Kbb))
	height = math.Sqrt(5.0 / 2.0 * (r.Kaa*r.Kaa + r.Kyy*r.Kyy - r.Kbb*r.Kbb))
	return width, height
}
