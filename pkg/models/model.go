// Package models provides the linearized Carvallo-Whipple bicycle model:
// formation of the canonical and state-space matrices of the 2-DOF roll and
// steer dynamics, parameter sweeps, and stability eigen analysis.
//
// Every entry point is a pure function of the wrapped parameter set and the
// call's overrides; no derived value is cached between calls.
package models

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/singletrack-labs/bikedyn/pkg/parameters"
)

// CanonicalMatrices are the 2x2 matrices of the second order linearized
// model
//
//	M q'' + v C1 q' + (g K0 + v^2 K2) q = T
//
// over the coordinates q = [roll angle, steer angle]. M and K0 are speed
// independent; C1 scales with speed and K2 with speed squared.
type CanonicalMatrices struct {
	M  *mat.Dense
	C1 *mat.Dense
	K0 *mat.Dense
	K2 *mat.Dense
}

// StateSpaceMatrices are the first order realization of the canonical
// matrices over the state [roll angle, steer angle, roll rate, steer rate]
// and the input [roll torque, steer torque]. A is 4x4, B is 4x2.
type StateSpaceMatrices struct {
	A *mat.Dense
	B *mat.Dense
}

// Eigenmodes holds the eigenvalues and right eigenvectors of the state
// matrix. Ordering is whatever the solver returns; callers must not assume
// a sort.
type Eigenmodes struct {
	Values  []complex128
	Vectors *mat.CDense
}

// Meijaard2007Model wraps a benchmark parameter set and forms the linearized
// equations of motion of Meijaard et al. 2007.
//
// Calls accept overrides for any benchmark parameter; exactly one override
// may be a sweep vector, in which case results are batched in the vector's
// order with one independent evaluation per sample. Without a sweep the
// returned batch has length one.
type Meijaard2007Model struct {
	set *parameters.Meijaard2007ParameterSet
}

// NewMeijaard2007Model wraps the given parameter set.
func NewMeijaard2007Model(set *parameters.Meijaard2007ParameterSet) *Meijaard2007Model {
	return &Meijaard2007Model{set: set}
}

// ParameterSet returns the wrapped benchmark parameter set.
func (m *Meijaard2007Model) ParameterSet() *parameters.Meijaard2007ParameterSet {
	return m.set
}

// FormReducedCanonicalMatrices evaluates the closed-form expressions for the
// canonical matrices, one batch entry per sweep sample.
func (m *Meijaard2007Model) FormReducedCanonicalMatrices(overrides Overrides) ([]CanonicalMatrices, error) {
	samples, err := overrides.expand(m.set.Parameters())
	if err != nil {
		return nil, err
	}
	out := make([]CanonicalMatrices, len(samples))
	for i, p := range samples {
		out[i] = formCanonical(parameters.DeriveMeijaard2007(p))
	}
	return out, nil
}

// FormStateSpaceMatrices builds the first order realization
//
//	A = |     0           I      |    B = |  0   |
//	    | -M^-1 (g K0 + v^2 K2)  |        | M^-1 |
//	    |      -M^-1 (v C1)      |
//
// one batch entry per sweep sample. A singular mass matrix fails with a
// NumericError.
func (m *Meijaard2007Model) FormStateSpaceMatrices(overrides Overrides) ([]StateSpaceMatrices, error) {
	samples, err := overrides.expand(m.set.Parameters())
	if err != nil {
		return nil, err
	}
	out := make([]StateSpaceMatrices, len(samples))
	for i, p := range samples {
		derived := parameters.DeriveMeijaard2007(p)
		ss, err := formStateSpace(formCanonical(derived), derived["v"], derived["g"])
		if err != nil {
			return nil, err
		}
		out[i] = ss
	}
	return out, nil
}

// CalcEigen computes the eigenvalues and right eigenvectors of the state
// matrix, one batch entry per sweep sample.
func (m *Meijaard2007Model) CalcEigen(overrides Overrides) ([]Eigenmodes, error) {
	states, err := m.FormStateSpaceMatrices(overrides)
	if err != nil {
		return nil, err
	}
	out := make([]Eigenmodes, len(states))
	for i, ss := range states {
		var eig mat.Eigen
		if ok := eig.Factorize(ss.A, mat.EigenRight); !ok {
			return nil, &NumericError{Op: "state matrix eigen decomposition", Err: errors.New("factorization did not converge")}
		}
		vectors := mat.NewCDense(4, 4, nil)
		eig.VectorsTo(vectors)
		out[i] = Eigenmodes{Values: eig.Values(nil), Vectors: vectors}
	}
	return out, nil
}

// formCanonical evaluates the benchmark reduction of the four body bicycle
// to the canonical matrices, following the notation of Meijaard et al. 2007:
// T denotes the whole bicycle, A the front assembly (fork and front wheel),
// lambda the steer axis tilt.
func formCanonical(p map[string]float64) CanonicalMatrices {
	sinl, cosl := math.Sincos(p["lam"])
	w, c := p["w"], p["c"]
	mB, mF, mH, mR := p["mB"], p["mF"], p["mH"], p["mR"]
	xB, xH, zB, zH := p["xB"], p["xH"], p["zB"], p["zH"]
	rF, rR := p["rF"], p["rR"]

	// Whole bicycle aggregates.
	mT := mR + mB + mH + mF
	xT := (xB*mB + xH*mH + w*mF) / mT
	zT := (-rR*mR + zB*mB + zH*mH - rF*mF) / mT

	iTxx := p["IRxx"] + p["IBxx"] + p["IHxx"] + p["IFxx"] +
		mR*rR*rR + mB*zB*zB + mH*zH*zH + mF*rF*rF
	iTxz := p["IBxz"] + p["IHxz"] - mB*xB*zB - mH*xH*zH + mF*w*rF
	iTzz := p["IRzz"] + p["IBzz"] + p["IHzz"] + p["IFzz"] +
		mB*xB*xB + mH*xH*xH + mF*w*w

	// Front assembly aggregates.
	mA := mH + mF
	xA := (xH*mH + w*mF) / mA
	zA := (zH*mH - rF*mF) / mA

	iAxx := p["IHxx"] + p["IFxx"] + mH*(zH-zA)*(zH-zA) + mF*(rF+zA)*(rF+zA)
	iAxz := p["IHxz"] - mH*(xH-xA)*(zH-zA) + mF*(w-xA)*(rF+zA)
	iAzz := p["IHzz"] + p["IFzz"] + mH*(xH-xA)*(xH-xA) + mF*(w-xA)*(w-xA)

	// Perpendicular distance from the front assembly mass center to the
	// steer axis, and the assembly inertia about the steer axis.
	uA := (xA-w-c)*cosl - zA*sinl
	iAll := mA*uA*uA + iAxx*sinl*sinl + 2*iAxz*sinl*cosl + iAzz*cosl*cosl
	iAlx := -mA*uA*zA + iAxx*sinl + iAxz*cosl
	iAlz := mA*uA*xA + iAxz*sinl + iAzz*cosl

	mu := c / w * cosl

	// Gyroscopic coefficients of the wheels.
	sR := p["IRyy"] / rR
	sF := p["IFyy"] / rF
	sT := sR + sF
	sA := mA*uA + mu*mT*xT

	mMat := mat.NewDense(2, 2, []float64{
		iTxx, iAlx + mu*iTxz,
		iAlx + mu*iTxz, iAll + 2*mu*iAlz + mu*mu*iTzz,
	})

	k0 := mat.NewDense(2, 2, []float64{
		mT * zT, -sA,
		-sA, -sA * sinl,
	})

	k2 := mat.NewDense(2, 2, []float64{
		0.0, (sT - mT*zT) / w * cosl,
		0.0, (sA + sF*sinl) / w * cosl,
	})

	c1 := mat.NewDense(2, 2, []float64{
		0.0, mu*sT + sF*cosl + iTxz/w*cosl - mu*mT*zT,
		-(mu*sT + sF*cosl), iAlz/w*cosl + mu*(sA+iTzz/w*cosl),
	})

	return CanonicalMatrices{M: mMat, C1: c1, K0: k0, K2: k2}
}

// formStateSpace converts the canonical matrices to the first order block
// realization at speed v and gravity g.
func formStateSpace(can CanonicalMatrices, v, g float64) (StateSpaceMatrices, error) {
	var minv mat.Dense
	if err := minv.Inverse(can.M); err != nil {
		return StateSpaceMatrices{}, &NumericError{Op: "mass matrix inversion", Err: err}
	}

	// K = g K0 + v^2 K2, C = v C1.
	var k, c mat.Dense
	k.Scale(g, can.K0)
	var k2v mat.Dense
	k2v.Scale(v*v, can.K2)
	k.Add(&k, &k2v)
	c.Scale(v, can.C1)

	var minvK, minvC mat.Dense
	minvK.Mul(&minv, &k)
	minvC.Mul(&minv, &c)

	a := mat.NewDense(4, 4, nil)
	a.Set(0, 2, 1.0)
	a.Set(1, 3, 1.0)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a.Set(2+i, j, -minvK.At(i, j))
			a.Set(2+i, 2+j, -minvC.At(i, j))
		}
	}

	b := mat.NewDense(4, 2, nil)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			b.Set(2+i, j, minv.At(i, j))
		}
	}

	return StateSpaceMatrices{A: a, B: b}, nil
}
