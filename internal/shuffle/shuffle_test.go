package shuffle

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted returns pre-recorded draws and records the bounds it was asked for.
type scripted struct {
	draws  []int
	bounds []int
}

func (s *scripted) IntN(n int) int {
	s.bounds = append(s.bounds, n)
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("t%d", i)
	}
	return out
}

func TestGenerate_IsPermutation(t *testing.T) {
	g := New(rand.New(rand.NewPCG(1, 2)))

	for n := range 40 {
		in := ids(n)
		out := g.Generate(in)
		require.Len(t, out, n)
		assert.True(t, IsPermutation(in, out), "n=%d: %v is not a permutation of %v", n, out, in)
	}
}

func TestGenerate_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	New(rand.New(rand.NewPCG(3, 4))).Generate(in)

	assert.Equal(t, []string{"a", "b", "c", "d"}, in)
}

func TestGenerate_FisherYatesBounds(t *testing.T) {
	src := &scripted{draws: []int{0, 0, 0}}

	out := New(src).Generate([]string{"a", "b", "c", "d"})

	// i runs from 3 down to 1, drawing j in [0, i].
	assert.Equal(t, []int{4, 3, 2}, src.bounds)
	// swaps (3,0), (2,0), (1,0) on [a b c d]
	assert.Equal(t, []string{"b", "c", "d", "a"}, out)
}

func TestGenerate_IdentityDraws(t *testing.T) {
	// Drawing j == i at every step leaves the order untouched.
	src := &scripted{draws: []int{2, 1}}

	out := New(src).Generate([]string{"a", "b", "c"})

	assert.Equal(t, []string{"a", "b", "c"}, out)
}

func TestGenerate_EmptyAndSingle(t *testing.T) {
	g := New(nil)

	assert.Empty(t, g.Generate(nil))
	assert.Equal(t, []string{"only"}, g.Generate([]string{"only"}))
}

func TestGenerate_DefaultSourceCoversAllPositions(t *testing.T) {
	g := New(nil)
	seen := map[string]bool{}

	for range 500 {
		out := g.Generate([]string{"a", "b", "c"})
		seen[out[0]] = true
	}

	assert.Len(t, seen, 3, "every id should eventually come first")
}

func TestIsPermutation(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{"same order", []string{"a", "b"}, []string{"a", "b"}, true},
		{"reordered", []string{"a", "b", "c"}, []string{"c", "a", "b"}, true},
		{"different length", []string{"a"}, []string{"a", "b"}, false},
		{"different ids", []string{"a", "b"}, []string{"a", "c"}, false},
		{"multiplicity", []string{"a", "a", "b"}, []string{"a", "b", "b"}, false},
		{"both empty", nil, []string{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPermutation(tt.a, tt.b))
		})
	}
}
