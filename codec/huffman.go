package codec

// encodeHuffmanDC appends the codeword for a differential DC value
// followed by its amplitude suffix
func encodeHuffmanDC(w *BitWriter, diff int32, layer LayerType) error {
	if diff < -MaxDCDiffMagnitude || diff > MaxDCDiffMagnitude {
		return errKind(KindOutOfRange,
			"differential DC %d should be within [-%d, %d]",
			diff, MaxDCDiffMagnitude, MaxDCDiffMagnitude)
	}

	size, index, err := classify(diff)
	if err != nil {
		return err
	}

	dcTables[layer].writeSymbol(w, size)
	if size > 0 {
		w.Write(uint32(index), uint32(size))
	}
	return nil
}

// encodeHuffmanAC appends the codeword for one run-length symbol
// followed by the amplitude suffix of its nonzero value. The EOB and
// ZRL sentinels are emitted verbatim.
func encodeHuffmanAC(w *BitWriter, sym RunValue, layer LayerType) error {
	if sym == EOB {
		acTables[layer].writeSymbol(w, symbolEOB)
		return nil
	}
	if sym == ZRL {
		acTables[layer].writeSymbol(w, symbolZRL)
		return nil
	}

	if sym.Value == 0 || sym.Value < -MaxACMagnitude || sym.Value > MaxACMagnitude {
		return errKind(KindOutOfRange,
			"AC coefficient %d should be within [-%d, 0) or (0, %d]",
			sym.Value, MaxACMagnitude, MaxACMagnitude)
	}
	if sym.Run > 15 {
		return errKind(KindOutOfRange, "zero run %d exceeds 15", sym.Run)
	}

	size, index, err := classify(int32(sym.Value))
	if err != nil {
		return err
	}

	acTables[layer].writeSymbol(w, sym.Run<<4|size)
	w.Write(uint32(index), uint32(size))
	return nil
}

// decodeHuffmanDC decodes a DC bit string into differential DC values.
// The cursor must land exactly on the end of the string.
func decodeHuffmanDC(bits BitString, layer LayerType) ([]int32, error) {
	r := NewBitReader(bits)
	table := dcTables[layer]

	var out []int32
	for !r.AtEnd() {
		size, err := table.nextSymbol(r)
		if err != nil {
			return nil, err
		}
		if size == 0 {
			out = append(out, 0)
			continue
		}
		index, err := r.Read(size)
		if err != nil {
			return nil, err
		}
		v, err := dequantize(size, index)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeHuffmanAC decodes an AC bit string into a flat sequence of
// run-length symbols, EOB and ZRL included
func decodeHuffmanAC(bits BitString, layer LayerType) ([]RunValue, error) {
	r := NewBitReader(bits)
	table := acTables[layer]

	var out []RunValue
	for !r.AtEnd() {
		sym, err := table.nextSymbol(r)
		if err != nil {
			return nil, err
		}
		run, size := sym>>4, sym&0x0F
		if size == 0 {
			// EOB or ZRL, no amplitude suffix
			out = append(out, RunValue{Run: run, Value: 0})
			continue
		}
		index, err := r.Read(size)
		if err != nil {
			return nil, err
		}
		v, err := dequantize(size, index)
		if err != nil {
			return nil, err
		}
		out = append(out, RunValue{Run: run, Value: int16(v)})
	}
	return out, nil
}
