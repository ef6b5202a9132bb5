// Package shuffle derives randomized traversal orders over track ids.
package shuffle

import "math/rand/v2"

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator produces Fisher-Yates permutations from its source.
type Generator struct {
	src Source
}

// New creates a generator drawing from src. A nil src uses the unseeded
// global source, so every call yields an independent permutation.
func New(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// Generate returns a shuffled copy of ids. The input is left untouched.
func (g *Generator) Generate(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	for i := len(out) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// IsPermutation reports whether a and b hold the same ids with the same
// multiplicity.
func IsPermutation(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}
	return true
}
