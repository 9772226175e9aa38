package codec

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestClassify(t *testing.T) {
	c := qt.New(t)

	testCases := []struct {
		value int32
		size  uint8
		index uint16
	}{
		{0, 0, 0},
		{1, 1, 1},
		{-1, 1, 0},
		{2, 2, 2},
		{3, 2, 3},
		{-2, 2, 1},
		{-3, 2, 0},
		{5, 3, 5},
		{-5, 3, 2},
		{7, 3, 7},
		{-7, 3, 0},
		{10, 4, 10},
		{1023, 10, 1023},
		{-1023, 10, 0},
		{2047, 11, 2047},
		{-2047, 11, 0},
		{32767, 15, 32767},
		{-32767, 15, 0},
	}

	for _, tc := range testCases {
		size, index, err := classify(tc.value)
		c.Assert(err, qt.IsNil, qt.Commentf("value %d", tc.value))
		c.Assert(size, qt.Equals, tc.size, qt.Commentf("value %d", tc.value))
		c.Assert(index, qt.Equals, tc.index, qt.Commentf("value %d", tc.value))
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	c := qt.New(t)

	for _, v := range []int32{32768, -32768, 1 << 20, -(1 << 20)} {
		_, _, err := classify(v)
		cerr, ok := IsCodecError(err)
		c.Assert(ok, qt.IsTrue, qt.Commentf("value %d", v))
		c.Assert(cerr.Kind, qt.Equals, KindOutOfRange)
	}
}

func TestDequantizeInvertsClassify(t *testing.T) {
	c := qt.New(t)

	for v := int32(-2047); v <= 2047; v++ {
		size, index, err := classify(v)
		c.Assert(err, qt.IsNil)
		got, err := dequantize(size, index)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, v)

		// Size bounds from the amplitude limits
		c.Assert(size <= 11, qt.IsTrue, qt.Commentf("value %d size %d", v, size))
		if v > -1024 && v < 1024 {
			c.Assert(size <= 10, qt.IsTrue, qt.Commentf("value %d size %d", v, size))
		}
	}
}

func TestDequantizeOutOfRange(t *testing.T) {
	testCases := []struct {
		name  string
		size  uint8
		index uint16
	}{
		{"size exceeds 15", 16, 0},
		{"index outside category", 3, 8},
		{"index outside size 1", 1, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := qt.New(t)
			_, err := dequantize(tc.size, tc.index)
			cerr, ok := IsCodecError(err)
			c.Assert(ok, qt.IsTrue)
			c.Assert(cerr.Kind, qt.Equals, KindOutOfRange)
		})
	}
}
