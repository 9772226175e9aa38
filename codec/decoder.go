package codec

// Decode reconstructs the coefficient planes from the four bit
// strings. The chrominance layer splits evenly back into Cb and Cr.
// The input is not mutated.
func Decode(s *Bitstreams) (*Planes, error) {
	var layers [numLayerTypes][]Block
	for layer := Luminance; layer < numLayerTypes; layer++ {
		blocks, err := decodeLayer(s.DC[layer], s.AC[layer], layer)
		if err != nil {
			return nil, err
		}
		layers[layer] = blocks
	}

	chroma := layers[Chrominance]
	if len(chroma)%2 != 0 {
		return nil, errKind(KindShapeMismatch,
			"chrominance layer has %d blocks, cannot split evenly into Cb and Cr",
			len(chroma))
	}

	half := len(chroma) / 2
	return &Planes{
		Y:  layers[Luminance],
		Cb: chroma[:half],
		Cr: chroma[half:],
	}, nil
}

// decodeLayer rebuilds the block sequence of one layer from its DC and
// AC streams
func decodeLayer(dcBits, acBits BitString, layer LayerType) ([]Block, error) {
	diffs, err := decodeHuffmanDC(dcBits, layer)
	if err != nil {
		return nil, err
	}
	dcs := decodeDifferential(diffs)

	symbols, err := decodeHuffmanAC(acBits, layer)
	if err != nil {
		return nil, err
	}
	groups, err := splitAtEOB(symbols)
	if err != nil {
		return nil, err
	}

	if len(dcs) != len(groups) {
		return nil, errKind(KindShapeMismatch,
			"%s layer has %d DC values but %d AC blocks", layer, len(dcs), len(groups))
	}

	blocks := make([]Block, len(groups))
	for i, group := range groups {
		ac, err := decodeRunLength(group)
		if err != nil {
			return nil, err
		}

		var zz [BlockCoefficients]int16
		zz[0] = int16(dcs[i])
		copy(zz[1:], ac)
		blocks[i] = BlockFromZigzag(zz)
	}
	return blocks, nil
}

// splitAtEOB splits a flat symbol sequence into per-block groups, each
// terminated by (and including) its EOB
func splitAtEOB(symbols []RunValue) ([][]RunValue, error) {
	var groups [][]RunValue
	start := 0
	for i, s := range symbols {
		if s == EOB {
			groups = append(groups, symbols[start:i+1])
			start = i + 1
		}
	}
	if start != len(symbols) {
		return nil, errKind(KindShapeMismatch,
			"%d trailing AC symbols after the last end-of-block", len(symbols)-start)
	}
	return groups, nil
}
