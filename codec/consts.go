// Package codec implements the entropy-coding core of a baseline
// JPEG-style codec: zigzag traversal, DPCM coding of DC coefficients,
// run-length coding of AC coefficients and canonical baseline Huffman
// coding, between in-memory coefficient blocks and packed bitstrings.
package codec

// LayerType selects a Huffman table pair
type LayerType int

const (
	// Luminance is the Y plane
	Luminance LayerType = iota
	// Chrominance is the concatenated Cb and Cr planes
	Chrominance

	numLayerTypes
)

func (l LayerType) String() string {
	switch l {
	case Luminance:
		return "luminance"
	case Chrominance:
		return "chrominance"
	default:
		return "unknown"
	}
}

const (
	// BlockSide is the width and height of a coefficient block
	BlockSide = 8

	// BlockCoefficients is the total coefficient count per block
	BlockCoefficients = BlockSide * BlockSide

	// ACPerBlock is the number of AC coefficients per block
	ACPerBlock = BlockCoefficients - 1

	// MaxCodeLength is the longest Huffman codeword in bits
	MaxCodeLength = 16

	// MaxDCDiffMagnitude bounds |differential DC|
	MaxDCDiffMagnitude = 2047

	// MaxACMagnitude bounds |nonzero AC coefficient|
	MaxACMagnitude = 1023

	// MaxCategoryMagnitude bounds |value| classifiable by the category table
	MaxCategoryMagnitude = 32767
)

// AC symbol bytes in RRRRSSSS form: run length in the high nibble,
// amplitude size in the low nibble.
const (
	symbolEOB = 0x00
	symbolZRL = 0xF0
)

// zigzagToRaster maps zigzag position to raster index for an 8x8 block.
// Pinned against the generic traversal in the tests.
var zigzagToRaster = [BlockCoefficients]uint8{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}
