package structure

import "sort"

// LocalMaxima scans v left-to-right for constrained local maxima:
// index i qualifies iff v[i] >= threshold and v[i] is strictly greater
// than every neighbor within +/-distance (clipped to the vector
// bounds). Equal neighbors disqualify a candidate. Qualifying indices
// are ranked by value descending (ties keep scan order, so the first
// maximum wins) and truncated to at most `cap` entries. The returned
// indices are in rank order, not time order.
func LocalMaxima(v []float64, threshold float64, distance, cap_ int) (values []float64, indices []int) {
	type candidate struct {
		index int
		value float64
	}
	var candidates []candidate

	n := len(v)
	for i := 0; i < n; i++ {
		if v[i] < threshold {
			continue
		}
		isMax := true
		lo := i - distance
		if lo < 0 {
			lo = 0
		}
		hi := i + distance
		if hi > n-1 {
			hi = n - 1
		}
		for j := lo; j <= hi; j++ {
			if j == i {
				continue
			}
			if v[j] >= v[i] {
				isMax = false
				break
			}
		}
		if isMax {
			candidates = append(candidates, candidate{index: i, value: v[i]})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].value > candidates[j].value
	})

	k := cap_
	if k > len(candidates) {
		k = len(candidates)
	}
	values = make([]float64, k)
	indices = make([]int, k)
	for i := 0; i < k; i++ {
		values[i] = candidates[i].value
		indices[i] = candidates[i].index
	}
	return values, indices
}
