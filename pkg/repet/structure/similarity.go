package structure

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// normalizeColumns returns a copy of X with every column scaled to
// unit L2 norm (columns that are all-zero are left unscaled).
func normalizeColumns(x *mat.Dense) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, x)
		norm := floats.Norm(col, 2)
		if norm == 0 {
			norm = 1
		}
		for i := 0; i < r; i++ {
			out.Set(i, j, col[i]/norm)
		}
	}
	return out
}

// Similarity computes the cosine similarity between every column of A
// and every column of B: L2-normalize both, then compute A^T*B. The
// result is in [-1,1] (in [0,1] for non-negative inputs such as
// magnitude spectrograms).
func Similarity(a, b *mat.Dense) *mat.Dense {
	an := normalizeColumns(a)
	bn := normalizeColumns(b)
	var s mat.Dense
	s.Mul(an.T(), bn)
	return &s
}

// SelfSimilarity is Similarity(a, a): symmetric, with unit diagonal
// wherever a column has nonzero norm.
func SelfSimilarity(a *mat.Dense) *mat.Dense {
	return Similarity(a, a)
}
