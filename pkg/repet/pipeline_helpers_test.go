package repet

import "math/rand"

// repeatingSignal builds a mono-duplicated test signal made of a
// random block of blockLen samples tiled `repeats` times, giving every
// pipeline genuine sample-domain periodicity to recover.
func repeatingSignal(blockLen, repeats int, seed int64) Signal {
	rng := rand.New(rand.NewSource(seed))
	block := make([]float64, blockLen)
	for i := range block {
		block[i] = rng.Float64()*2 - 1
	}

	n := blockLen * repeats
	sig := newSignal(n, 1)
	for i := 0; i < n; i++ {
		sig[i][0] = block[i%blockLen]
	}
	return sig
}

func silence(n, channels int) Signal {
	return newSignal(n, channels)
}
