package parameters

import (
	"gonum.org/v1/gonum/mat"
)

// moore2019Schema maps parameter names to display labels. The table is the
// principal parameterization of Moore & Hubbard, "Expanded Optimization for
// Discovering Optimal Lateral Handling Bicycles", BMD 2019. Each body's
// inertia is given as principal radii of gyration and a principal axis tilt
// instead of raw tensor components.
var moore2019Schema = map[string]string{
	"alphaD": "\\alpha_D",
	"alphaH": "\\alpha_H",
	"alphaP": "\\alpha_P",
	"c":      "c",
	"g":      "g",
	"kDaa":   "k_{Daa}",
	"kDbb":   "k_{Dbb}",
	"kDyy":   "k_{Dyy}",
	"kFaa":   "k_{Faa}",
	"kFyy":   "k_{Fyy}",
	"kHaa":   "k_{Haa}",
	"kHbb":   "k_{Hbb}",
	"kHyy":   "k_{Hyy}",
	"kPaa":   "k_{Paa}",
	"kPbb":   "k_{Pbb}",
	"kPyy":   "k_{Pyy}",
	"kRaa":   "k_{Raa}",
	"kRyy":   "k_{Ryy}",
	"lP":     "l_P",
	"lam":    "\\lambda",
	"mD":     "m_D",
	"mF":     "m_F",
	"mH":     "m_H",
	"mP":     "m_P",
	"mR":     "m_R",
	"rF":     "r_F",
	"rR":     "r_R",
	"v":      "v",
	"w":      "w",
	"wP":     "w_P",
	"xD":     "x_D",
	"xH":     "x_H",
	"xP":     "x_P",
	"zD":     "z_D",
	"zH":     "z_H",
	"zP":     "z_P",
}

var moore2019BodyLabels = []string{"D", "F", "H", "P", "R"}

// Moore2019ParameterSet is the five rigid body principal parameterization:
// rear frame D, front wheel F, handlebar/fork assembly H, rider P, and rear
// wheel R. lP and wP give the length and width of the diamond enclosing the
// rider.
type Moore2019ParameterSet struct {
	params map[string]float64
}

// NewMoore2019ParameterSet validates params against the principal schema and
// wraps it.
func NewMoore2019ParameterSet(params map[string]float64) (*Moore2019ParameterSet, error) {
	if err := validateParameters(moore2019Schema, params); err != nil {
		return nil, err
	}
	return &Moore2019ParameterSet{params: params}, nil
}

func (s *Moore2019ParameterSet) Parameterization() string { return "moore2019" }

func (s *Moore2019ParameterSet) ParameterNames() []string { return sortedNames(moore2019Schema) }

func (s *Moore2019ParameterSet) BodyLabels() []string { return moore2019BodyLabels }

func (s *Moore2019ParameterSet) Parameters() map[string]float64 { return s.params }

// DerivedParameters returns the parameter mapping extended with the values
// the schema leaves implicit: zero wheel slip angles, zero lateral and rear
// longitudinal offsets, wheel positions fixed by geometry, and transverse
// wheel symmetry (kbb equal to kaa).
func (s *Moore2019ParameterSet) DerivedParameters() map[string]float64 {
	p := s.params
	extras := map[string]float64{
		"alphaF": 0.0,
		"alphaR": 0.0,
		"yD":     0.0,
		"yF":     0.0,
		"yH":     0.0,
		"yP":     0.0,
		"yR":     0.0,
		"xR":     0.0,
		"xF":     p["w"],
		"zR":     -p["rR"],
		"zF":     -p["rF"],
		"kRbb":   p["kRaa"],
		"kFbb":   p["kFaa"],
	}
	return mergeDerived(p, extras)
}

// MassCenterVector returns the 3-vector locating the mass center of the
// given body in the global frame.
func (s *Moore2019ParameterSet) MassCenterVector(body string) (*mat.VecDense, error) {
	if !containsLabel(moore2019BodyLabels, body) {
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
// collection of bodies.
func (s *Moore2019ParameterSet) CenterOfMass(bodies ...string) (*mat.VecDense, error) {
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

// PrincipalRadiiOfGyration reads the body's principal radii and axis tilt
// straight from the parameter mapping.
func (s *Moore2019ParameterSet) PrincipalRadiiOfGyration(body string) (PrincipalRadii, error) {
	if !containsLabel(moore2019BodyLabels, body) {
		return PrincipalRadii{}, &UndefinedBodyError{Body: body}
	}
	p := s.DerivedParameters()
	return PrincipalRadii{
		Kaa:   p["k"+body+"aa"],
		Kbb:   p["k"+body+"bb"],
		Kyy:   p["k"+body+"yy"],
		Alpha: p["alpha"+body],
	}, nil
}

// InertiaTensor reconstructs the body's inertia tensor in the global frame
// from its principal radii and axis tilt.
func (s *Moore2019ParameterSet) InertiaTensor(body string) (*mat.SymDense, error) {
	radii, err := s.PrincipalRadiiOfGyration(body)
	if err != nil {
		return nil, err
	}
	ixx, ixz, iyy, izz := tensorFromPrincipal(s.params["m"+body], radii)
	return InertiaTensorFromComponents(ixx, ixz, iyy, izz), nil
}

// ToBenchmark converts the set to an equivalent benchmark parameterization
// with the rider rigidly folded into the frame. The receiver is unchanged.
func (s *Moore2019ParameterSet) ToBenchmark() (*Meijaard2007ParameterSet, error) {
	b := ConvertPrincipalToBenchmark(s.DerivedParameters())
	return NewMeijaard2007ParameterSet(b, true)
}
