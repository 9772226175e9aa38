package codec

import "math/bits"

// classify maps a signed value to its JPEG amplitude category. The
// category size is the bit length of |v|; the index is the zero-based
// position of v in the canonical ordering of the size-s category,
// negatives ascending from -(2^s - 1) followed by positives ascending
// from 2^(s-1). Zero classifies as (0, 0).
func classify(v int32) (size uint8, index uint16, err error) {
	if v == 0 {
		return 0, 0, nil
	}

	if v < -MaxCategoryMagnitude || v > MaxCategoryMagnitude {
		return 0, 0, errKind(KindOutOfRange,
			"value %d magnitude exceeds category limit %d", v, MaxCategoryMagnitude)
	}

	mag := v
	if mag < 0 {
		mag = -mag
	}
	size = uint8(bits.Len32(uint32(mag)))
	if v > 0 {
		// Positives occupy the upper half of the category; the value
		// is its own index.
		index = uint16(v)
	} else {
		index = uint16(v + (1 << size) - 1)
	}
	return size, index, nil
}

// dequantize is the inverse of classify: it recovers the signed value
// at the given index of the size-s category.
func dequantize(size uint8, index uint16) (int32, error) {
	if size == 0 {
		return 0, nil
	}
	if size > 15 {
		return 0, errKind(KindOutOfRange, "category size %d exceeds 15", size)
	}
	if uint32(index) >= 1<<size {
		return 0, errKind(KindOutOfRange,
			"index %d out of range for category size %d", index, size)
	}

	half := uint16(1) << (size - 1)
	if index >= half {
		return int32(index), nil
	}
	return int32(index) - (1 << size) + 1, nil
}
