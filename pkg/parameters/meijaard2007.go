package parameters

import (
	"gonum.org/v1/gonum/mat"
)

// meijaard2007Schema maps parameter names to display labels. The table is
// the benchmark parameterization of Meijaard, Papadopoulos, Ruina & Schwab,
// "Linearized dynamics equations for the balance and steer of a bicycle",
// Proc. R. Soc. A 463:1955-1982, 2007.
var meijaard2007Schema = map[string]string{
	"IBxx": "I_{Bxx}",
	"IBxz": "I_{Bxz}",
	"IByy": "I_{Byy}",
	"IBzz": "I_{Bzz}",
	"IFxx": "I_{Fxx}",
	"IFyy": "I_{Fyy}",
	"IHxx": "I_{Hxx}",
	"IHxz": "I_{Hxz}",
	"IHyy": "I_{Hyy}",
	"IHzz": "I_{Hzz}",
	"IRxx": "I_{Rxx}",
	"IRyy": "I_{Ryy}",
	"c":    "c",
	"g":    "g",
	"lam":  "\\lambda",
	"mB":   "m_B",
	"mF":   "m_F",
	"mH":   "m_H",
	"mR":   "m_R",
	"rF":   "r_F",
	"rR":   "r_R",
	"v":    "v",
	"w":    "w",
	"xB":   "x_B",
	"xH":   "x_H",
	"zB":   "z_B",
	"zH":   "z_H",
}

var meijaard2007BodyLabels = []string{"B", "F", "H", "R"}

// Meijaard2007ParameterSet is the four rigid body benchmark
// parameterization: frame (with or without rider) B, front wheel F,
// handlebar/fork assembly H, and rear wheel R. Inertia is given as raw
// tensor components in the global frame at the nominal configuration.
type Meijaard2007ParameterSet struct {
	params        map[string]float64
	includesRider bool
}

// NewMeijaard2007ParameterSet validates params against the benchmark schema
// and wraps it. includesRider is true when body B combines the rear frame
// and the rider.
//
// Required keys (all finite floats):
//
//   - IBxx, IBxz, IByy, IBzz : frame inertia [kg*m^2]
//   - IFxx, IFyy             : front wheel inertia [kg*m^2]
//   - IHxx, IHxz, IHyy, IHzz : handlebar/fork inertia [kg*m^2]
//   - IRxx, IRyy             : rear wheel inertia [kg*m^2]
//   - c                      : trail [m]
//   - g                      : acceleration due to gravity [m/s^2]
//   - lam                    : steer axis tilt [rad]
//   - mB, mF, mH, mR         : body masses [kg]
//   - rF, rR                 : wheel radii [m]
//   - v                      : forward speed [m/s]
//   - w                      : wheelbase [m]
//   - xB, zB, xH, zH         : mass center offsets [m]
func NewMeijaard2007ParameterSet(params map[string]float64, includesRider bool) (*Meijaard2007ParameterSet, error) {
	if err := validateParameters(meijaard2007Schema, params); err != nil {
		return nil, err
	}
	return &Meijaard2007ParameterSet{params: params, includesRider: includesRider}, nil
}

func (s *Meijaard2007ParameterSet) Parameterization() string { return "meijaard2007" }

func (s *Meijaard2007ParameterSet) ParameterNames() []string { return sortedNames(meijaard2007Schema) }

func (s *Meijaard2007ParameterSet) BodyLabels() []string { return meijaard2007BodyLabels }

func (s *Meijaard2007ParameterSet) Parameters() map[string]float64 { return s.params }

// IncludesRider reports whether body B is the combined rear frame and rider.
func (s *Meijaard2007ParameterSet) IncludesRider() bool { return s.includesRider }

// DerivedParameters returns the parameter mapping extended with the values
// the schema leaves implicit: zero wheel cross-inertia, axisymmetric wheel
// z-inertia, wheel x-positions fixed by the wheelbase, zero lateral offsets,
// and wheel centers one radius above the ground contact.
func (s *Meijaard2007ParameterSet) DerivedParameters() map[string]float64 {
	return DeriveMeijaard2007(s.params)
}

// DeriveMeijaard2007 extends a benchmark parameter mapping with its implicit
// values. The extras are recomputed from whatever geometry p carries, so the
// function also serves mappings that have had overrides merged in.
func DeriveMeijaard2007(p map[string]float64) map[string]float64 {
	extras := map[string]float64{
		"IFxz": 0.0,
		"IFzz": p["IFxx"],
		"IRxz": 0.0,
		"IRzz": p["IRxx"],
		"xF":   p["w"],
		"xR":   0.0,
		"yB":   0.0,
		"yF":   0.0,
		"yH":   0.0,
		"yR":   0.0,
		"zF":   -p["rF"],
		"zR":   -p["rR"],
	}
	return mergeDerived(p, extras)
}

// MassCenterVector returns the 3-vector locating the mass center of the
// given body in the global frame.
func (s *Meijaard2007ParameterSet) MassCenterVector(body string) (*mat.VecDense, error) {
	if !containsLabel(meijaard2007BodyLabels, body) {
		return nil, &UndefinedBodyError{Body: body}
	}
	p := s.DerivedParameters()
	return mat.NewVecDense(3, []float64{
		p["x"+body],
		p["y"+body],
		p["z"+body],
	}), nil
}

// CenterOfMass returns the vector locating the center of mass of the
// collection of bodies. A single body returns its own mass center vector
// exactly.
func (s *Meijaard2007ParameterSet) CenterOfMass(bodies ...string) (*mat.VecDense, error) {
	if len(bodies) == 0 {
		return nil, &UndefinedBodyError{Body: ""}
	}
	if len(bodies) == 1 {
		return s.MassCenterVector(bodies[0])
	}

	masses := make([]float64, len(bodies))
	positions := make([]*mat.VecDense, len(bodies))
	for i, body := range bodies {
		v, err := s.MassCenterVector(body)
		if err != nil {
			return nil, err
		}
		masses[i] = s.params["m"+body]
		positions[i] = v
	}
	_, com := TotalCenterOfMass(masses, positions)
	return com, nil
}

// InertiaTensor returns the body's inertia tensor with respect to the global
// coordinate system and the body's mass center.
func (s *Meijaard2007ParameterSet) InertiaTensor(body string) (*mat.SymDense, error) {
	if !containsLabel(meijaard2007BodyLabels, body) {
		return nil, &UndefinedBodyError{Body: body}
	}
	p := s.DerivedParameters()
	return InertiaTensorFromComponents(
		p["I"+body+"xx"],
		p["I"+body+"xz"],
		p["I"+body+"yy"],
		p["I"+body+"zz"],
	), nil
}

// PrincipalRadiiOfGyration decomposes the body's planar inertia into
// principal radii of gyration and the orientation of the maximal axis.
func (s *Meijaard2007ParameterSet) PrincipalRadiiOfGyration(body string) (PrincipalRadii, error) {
	tensor, err := s.InertiaTensor(body)
	if err != nil {
		return PrincipalRadii{}, err
	}
	return DecomposePlanarInertia(tensor, s.params["m"+body])
}
