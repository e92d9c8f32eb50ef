package validate

import "math"

// Entropy returns the Shannon entropy of raw in bits per byte.
func Entropy(raw []byte) float64 {
	if len(raw) == 0 {
		return 0
	}
	var counts [256]int
	for _, b := range raw {
		counts[b]++
	}
	total := float64(len(raw))
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		h -= p * math.Log2(p)
	}
	return h
}
