package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/singletrack-labs/bikedyn/pkg/parameters"
)

func benchmarkModel(t *testing.T) *Meijaard2007Model {
	t.Helper()
	return NewMeijaard2007Model(parameters.Meijaard2007Benchmark())
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

func dims(t *testing.T, m mat.Matrix, rows, cols int) {
	t.Helper()
	r, c := m.Dims()
	assert.Equal(t, rows, r)
	assert.Equal(t, cols, c)
}

func TestFormReducedCanonicalMatrices_Scalar(t *testing.T) {
	t.Parallel()

	batch, err := benchmarkModel(t).FormReducedCanonicalMatrices(nil)
	require.NoError(t, err)
	require.Len(t, batch, 1)

	can := batch[0]
	dims(t, can.M, 2, 2)
	dims(t, can.C1, 2, 2)
	dims(t, can.K0, 2, 2)
	dims(t, can.K2, 2, 2)
}

// The canonical matrices at the reference parameter point must match the
// values published in Table 2 of Meijaard et al. 2007.
func TestFormReducedCanonicalMatrices_BenchmarkValues(t *testing.T) {
	t.Parallel()

	batch, err := benchmarkModel(t).FormReducedCanonicalMatrices(nil)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	can := batch[0]

	opt := cmpopts.EquateApprox(0, 1e-8)
	assert.Empty(t, cmp.Diff([]float64{
		80.81722, 2.31941332208709,
		2.31941332208709, 0.29784188199686,
	}, can.M.RawMatrix().Data, opt))

	assert.Empty(t, cmp.Diff([]float64{
		0.0, 33.86641391492494,
		-0.85035641456978, 1.68540397397560,
	}, can.C1.RawMatrix().Data, opt))

	assert.Empty(t, cmp.Diff([]float64{
		-80.95, -2.59951685249872,
		-2.59951685249872, -0.80329488458618,
	}, can.K0.RawMatrix().Data, opt))

	assert.Empty(t, cmp.Diff([]float64{
		0.0, 76.59734589573222,
		0.0, 2.65431523794604,
	}, can.K2.RawMatrix().Data, opt))
}

func TestFormReducedCanonicalMatrices_Sweep(t *testing.T) {
	t.Parallel()

	model := benchmarkModel(t)
	wheelbases := linspace(0.5, 1.5, 5)

	batch, err := model.FormReducedCanonicalMatrices(Overrides{"w": Sweep(wheelbases)})
	require.NoError(t, err)
	require.Len(t, batch, 5)

	for i, can := range batch {
		dims(t, can.M, 2, 2)
		dims(t, can.C1, 2, 2)
		dims(t, can.K0, 2, 2)
		dims(t, can.K2, 2, 2)

		// Each sample must equal an independent scalar evaluation at the
		// same wheelbase, in the sweep vector's order.
		single, err := model.FormReducedCanonicalMatrices(Overrides{"w": Scalar(wheelbases[i])})
		require.NoError(t, err)
		assert.True(t, mat.EqualApprox(single[0].M, can.M, 1e-14))
		assert.True(t, mat.EqualApprox(single[0].K2, can.K2, 1e-14))
	}
}

func TestSweepConflict(t *testing.T) {
	t.Parallel()

	model := benchmarkModel(t)
	over := Overrides{
		"w": Sweep(linspace(0.5, 1.5, 50)),
		"v": Sweep(linspace(1.0, 3.0, 50)),
	}

	var conflict *SweepConflictError

	_, err := model.FormReducedCanonicalMatrices(over)
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"v", "w"}, conflict.Keys)

	_, err = model.FormStateSpaceMatrices(over)
	require.ErrorAs(t, err, &conflict)

	_, err = model.CalcEigen(over)
	require.ErrorAs(t, err, &conflict)
}

func TestFormStateSpaceMatrices(t *testing.T) {
	t.Parallel()

	model := benchmarkModel(t)

	batch, err := model.FormStateSpaceMatrices(nil)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	dims(t, batch[0].A, 4, 4)
	dims(t, batch[0].B, 4, 2)

	batch, err = model.FormStateSpaceMatrices(Overrides{"w": Sweep(linspace(0.5, 1.5, 5))})
	require.NoError(t, err)
	require.Len(t, batch, 5)

	speeds := linspace(0.0, 10.0, 10)
	batch, err = model.FormStateSpaceMatrices(Overrides{"v": Sweep(speeds)})
	require.NoError(t, err)
	require.Len(t, batch, 10)
	for i, ss := range batch {
		dims(t, ss.A, 4, 4)
		dims(t, ss.B, 4, 2)

		// The top blocks embed the rates: identity in the top right, zero
		// top left, and their rows are speed independent.
		assert.Equal(t, 1.0, ss.A.At(0, 2))
		assert.Equal(t, 1.0, ss.A.At(1, 3))
		assert.Equal(t, 0.0, ss.A.At(0, 0))
		assert.Equal(t, 0.0, ss.B.At(0, 0))

		single, err := model.FormStateSpaceMatrices(Overrides{"v": Scalar(speeds[i])})
		require.NoError(t, err)
		assert.True(t, mat.EqualApprox(single[0].A, ss.A, 1e-14))
	}
}

func TestCalcEigen_Shapes(t *testing.T) {
	t.Parallel()

	model := benchmarkModel(t)

	modes, err := model.CalcEigen(nil)
	require.NoError(t, err)
	require.Len(t, modes, 1)
	assert.Len(t, modes[0].Values, 4)
	r, c := modes[0].Vectors.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)

	modes, err = model.CalcEigen(Overrides{"g": Scalar(6.0)})
	require.NoError(t, err)
	require.Len(t, modes, 1)
	assert.Len(t, modes[0].Values, 4)

	modes, err = model.CalcEigen(Overrides{"v": Sweep(linspace(0.0, 10.0, 10))})
	require.NoError(t, err)
	require.Len(t, modes, 10)
	for _, m := range modes {
		assert.Len(t, m.Values, 4)
		r, c := m.Vectors.Dims()
		assert.Equal(t, 4, r)
		assert.Equal(t, 4, c)
	}
}

// The benchmark bicycle is self-stable between the weave speed (~4.3 m/s)
// and the capsize speed (~6.0 m/s).
func TestCalcEigen_BenchmarkStability(t *testing.T) {
	t.Parallel()

	model := benchmarkModel(t)

	stable := func(speed float64) bool {
		modes, err := model.CalcEigen(Overrides{"v": Scalar(speed)})
		require.NoError(t, err)
		for _, ev := range modes[0].Values {
			if real(ev) >= 0 {
				return false
			}
		}
		return true
	}

	assert.False(t, stable(1.0))
	assert.False(t, stable(3.0))
	assert.True(t, stable(5.0))
	assert.False(t, stable(8.0))
}

func TestFormStateSpace_SingularMassMatrix(t *testing.T) {
	t.Parallel()

	can := CanonicalMatrices{
		M:  mat.NewDense(2, 2, []float64{1.0, 2.0, 2.0, 4.0}),
		C1: mat.NewDense(2, 2, nil),
		K0: mat.NewDense(2, 2, nil),
		K2: mat.NewDense(2, 2, nil),
	}

	_, err := formStateSpace(can, 5.0, 9.81)
	var nerr *NumericError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "mass matrix inversion", nerr.Op)
}

func TestOverrides_DoNotMutateParameterSet(t *testing.T) {
	t.Parallel()

	set := parameters.Meijaard2007Benchmark()
	model := NewMeijaard2007Model(set)

	_, err := model.CalcEigen(Overrides{"v": Sweep(linspace(0.0, 10.0, 5)), "g": Scalar(6.0)})
	require.NoError(t, err)

	assert.Equal(t, 5.0, set.Parameters()["v"])
	assert.Equal(t, 9.81, set.Parameters()["g"])
}
