package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moore2019Params() map[string]float64 {
	return map[string]float64{
		"alphaD": 0.1,
		"alphaH": -0.9,
		"alphaP": 0.3,
		"c":      0.08,
		"g":      9.81,
		"kDaa":   0.3,
		"kDbb":   0.25,
		"kDyy":   0.35,
		"kFaa":   0.24,
		"kFyy":   0.3,
		"kHaa":   0.25,
		"kHbb":   0.1,
		"kHyy":   0.22,
		"kPaa":   0.5,
		"kPbb":   0.2,
		"kPyy":   0.45,
		"kRaa":   0.2,
		"kRyy":   0.25,
		"lP":     1.7,
		"lam":    0.314159265358979,
		"mD":     10.0,
		"mF":     3.0,
		"mH":     4.0,
		"mP":     75.0,
		"mR":     2.0,
		"rF":     0.35,
		"rR":     0.3,
		"v":      3.0,
		"w":      1.02,
		"wP":     0.4,
		"xD":     0.4,
		"xH":     0.9,
		"xP":     0.3,
		"zD":     -0.5,
		"zH":     -0.7,
		"zP":     -1.0,
	}
}

func TestNewMoore2019ParameterSet(t *testing.T) {
	t.Parallel()

	set, err := NewMoore2019ParameterSet(moore2019Params())
	require.NoError(t, err)

	assert.Equal(t, "moore2019", set.Parameterization())
	assert.Equal(t, []string{"D", "F", "H", "P", "R"}, set.BodyLabels())
	assert.Len(t, set.ParameterNames(), 36)
}

func TestNewMoore2019ParameterSet_MissingKey(t *testing.T) {
	t.Parallel()

	params := moore2019Params()
	delete(params, "kPaa")

	_, err := NewMoore2019ParameterSet(params)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "kPaa", verr.Key)
}

func TestMoore2019DerivedParameters(t *testing.T) {
	t.Parallel()

	set, err := NewMoore2019ParameterSet(moore2019Params())
	require.NoError(t, err)
	p := set.DerivedParameters()

	assert.Equal(t, 0.0, p["alphaF"])
	assert.Equal(t, 0.0, p["alphaR"])
	assert.Equal(t, p["kRaa"], p["kRbb"])
	assert.Equal(t, p["kFaa"], p["kFbb"])
	assert.Equal(t, p["w"], p["xF"])
	assert.Equal(t, 0.0, p["xR"])
	assert.Equal(t, -p["rR"], p["zR"])
	assert.Equal(t, -p["rF"], p["zF"])
	for _, body := range []string{"D", "F", "H", "P", "R"} {
		assert.Equal(t, 0.0, p["y"+body])
	}
}

func TestMoore2019PrincipalRadiiOfGyration(t *testing.T) {
	t.Parallel()

	set, err := NewMoore2019ParameterSet(moore2019Params())
	require.NoError(t, err)

	radii, err := set.PrincipalRadiiOfGyration("P")
	require.NoError(t, err)
	assert.Equal(t, PrincipalRadii{Kaa: 0.5, Kbb: 0.2, Kyy: 0.45, Alpha: 0.3}, radii)

	// Wheels fall back to the derived transverse symmetry.
	radii, err = set.PrincipalRadiiOfGyration("R")
	require.NoError(t, err)
	assert.Equal(t, radii.Kaa, radii.Kbb)
	assert.Equal(t, 0.0, radii.Alpha)

	_, err = set.PrincipalRadiiOfGyration("B")
	var berr *UndefinedBodyError
	require.ErrorAs(t, err, &berr)
}

func TestMoore2019InertiaTensor_ConsistentWithDecomposition(t *testing.T) {
	t.Parallel()

	set, err := NewMoore2019ParameterSet(moore2019Params())
	require.NoError(t, err)

	for _, body := range []string{"D", "H", "P"} {
		tensor, err := set.InertiaTensor(body)
		require.NoError(t, err)

		got, err := DecomposePlanarInertia(tensor, set.Parameters()["m"+body])
		require.NoError(t, err)

		want, err := set.PrincipalRadiiOfGyration(body)
		require.NoError(t, err)

		assert.InDelta(t, want.Kaa, got.Kaa, 1e-12, "body %s", body)
		assert.InDelta(t, want.Kbb, got.Kbb, 1e-12, "body %s", body)
		assert.InDelta(t, want.Kyy, got.Kyy, 1e-12, "body %s", body)
	}
}
