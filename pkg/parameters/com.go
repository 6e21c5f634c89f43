package parameters

import (
	"gonum.org/v1/gonum/mat"
)

// TotalCenterOfMass combines several point masses into a single mass and
// mass center:
//
//	com = sum(m_i * p_i) / sum(m_i)
//
// positions[i] is the 3-vector locating mass masses[i]. The two slices must
// be the same nonzero length and the total mass must be nonzero.
func TotalCenterOfMass(masses []float64, positions []*mat.VecDense) (float64, *mat.VecDense) {
	total := 0.0
	com := mat.NewVecDense(3, nil)
	for i, m := range masses {
		total += m
		com.AddScaledVec(com, m, positions[i])
	}
	com.ScaleVec(1.0/total, com)
	return total, com
}
