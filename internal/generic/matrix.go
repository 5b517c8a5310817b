package generic

// Matrix is a 3×3 Pauli-channel decoherence rate matrix.
//
// Damping contributes to [0][0], dephasing to [2][2]. The zero value is
// the noiseless matrix.
type Matrix [3][3]float64

// IsZero reports whether every entry is zero.
func (m Matrix) IsZero() bool {
	return m == Matrix{}
}

// Add returns the element-wise sum of m and o.
func (m Matrix) Add(o Matrix) Matrix {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}
