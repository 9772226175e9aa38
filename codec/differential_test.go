package codec

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEncodeDifferential(t *testing.T) {
	testCases := []struct {
		name string
		in   []int32
		want []int32
	}{
		{"single", []int32{5}, []int32{5}},
		{"ascending", []int32{3, 5, 10}, []int32{3, 2, 5}},
		{"negative diff", []int32{3, -2}, []int32{3, -5}},
		{"chroma planes", []int32{10, 7}, []int32{10, -3}},
		{"empty", []int32{}, []int32{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(encodeDifferential(tc.in), qt.DeepEquals, tc.want)
		})
	}
}

func TestDifferentialRoundTrip(t *testing.T) {
	c := qt.New(t)
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 50; trial++ {
		seq := make([]int32, 1+rng.Intn(64))
		for i := range seq {
			seq[i] = rng.Int31n(4001) - 2000
		}
		c.Assert(decodeDifferential(encodeDifferential(seq)), qt.DeepEquals, seq)
	}
}
