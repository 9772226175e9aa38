package codec

// Planes holds the separated quantized coefficient blocks of one
// image, one block sequence per plane.
type Planes struct {
	Y  []Block
	Cb []Block
	Cr []Block
}

// Bitstreams is the compressed artifact: one DC and one AC bit string
// per layer type.
type Bitstreams struct {
	DC [numLayerTypes]BitString
	AC [numLayerTypes]BitString
}

// layerBlocks groups the planes into the two entropy-coding layers.
// Chrominance is Cb followed by Cr under one table pair.
func layerBlocks(p *Planes) [numLayerTypes][]Block {
	chroma := make([]Block, 0, len(p.Cb)+len(p.Cr))
	chroma = append(chroma, p.Cb...)
	chroma = append(chroma, p.Cr...)
	return [numLayerTypes][]Block{
		Luminance:   p.Y,
		Chrominance: chroma,
	}
}

// Encode entropy-codes the planes into four bit strings: differential
// DC and run-length AC, each Huffman coded per layer. The input is not
// mutated.
func Encode(p *Planes) (*Bitstreams, error) {
	out := &Bitstreams{}
	for layer, blocks := range layerBlocks(p) {
		dc, err := encodeLayerDC(blocks, LayerType(layer))
		if err != nil {
			return nil, err
		}
		ac, err := encodeLayerAC(blocks, LayerType(layer))
		if err != nil {
			return nil, err
		}
		out.DC[layer] = dc
		out.AC[layer] = ac
	}
	return out, nil
}

// encodeLayerDC DPCM-codes the DC column of a block sequence and
// Huffman-codes the differences
func encodeLayerDC(blocks []Block, layer LayerType) (BitString, error) {
	dcs := make([]int32, len(blocks))
	for i := range blocks {
		dcs[i] = int32(blocks[i].DC())
	}

	w := NewBitWriter(len(blocks) * 2)
	for _, diff := range encodeDifferential(dcs) {
		if err := encodeHuffmanDC(w, diff, layer); err != nil {
			return BitString{}, err
		}
	}
	return w.Detach(), nil
}

// encodeLayerAC run-length-codes the AC coefficients of every block in
// zigzag order and Huffman-codes the symbols into one stream
func encodeLayerAC(blocks []Block, layer LayerType) (BitString, error) {
	w := NewBitWriter(len(blocks) * 8)
	for i := range blocks {
		zz := blocks[i].Zigzag()
		for _, sym := range encodeRunLength(zz[1:]) {
			if err := encodeHuffmanAC(w, sym, layer); err != nil {
				return BitString{}, err
			}
		}
	}
	return w.Detach(), nil
}
