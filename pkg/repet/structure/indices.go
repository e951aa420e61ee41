package structure

import "gonum.org/v1/gonum/mat"

// Indices applies LocalMaxima to every column of a similarity matrix,
// returning the per-frame list of nearest repeating-frame indices.
// The diagonal entry (the frame's own index) is not removed: it is kept
// whenever it is a strict local maximum, which is the case unless
// another entry within +/-distance is at least as large.
func Indices(similarity *mat.Dense, threshold float64, distance, number int) [][]int {
	t, _ := similarity.Dims()
	out := make([][]int, t)
	col := make([]float64, t)
	for i := 0; i < t; i++ {
		mat.Col(col, i, similarity)
		_, idx := LocalMaxima(col, threshold, distance, number)
		out[i] = idx
	}
	return out
}
