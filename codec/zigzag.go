package codec

// zigzagAdvance moves the cursor one step along the zigzag walk of an
// n×n matrix. On even-sum diagonals the walk runs up-right: step to
// (max(0, i-1), j+1) unless the right edge forces a step down. Odd-sum
// diagonals swap the roles of row and column.
func zigzagAdvance(row, col, n int) (int, int) {
	if (row+col)%2 == 0 {
		row, col = zigzagStep(row, col, n)
	} else {
		col, row = zigzagStep(col, row, n)
	}
	return row, col
}

func zigzagStep(i, j, n int) (int, int) {
	if j < n-1 {
		return max(0, i-1), j + 1
	}
	return i + 1, j
}

// ZigZag returns the elements of a square matrix in JPEG zigzag order
func ZigZag(m [][]int32) ([]int32, error) {
	n := len(m)
	for _, row := range m {
		if len(row) != n {
			return nil, errKind(KindNonSquare,
				"matrix is %dx%d, rows must equal columns", n, len(row))
		}
	}

	out := make([]int32, 0, n*n)
	row, col := 0, 0
	for i := 0; i < n*n; i++ {
		out = append(out, m[row][col])
		row, col = zigzagAdvance(row, col, n)
	}
	return out, nil
}

// InverseZigZag places a zigzag-ordered sequence back into a square
// matrix. A size of 0 selects the smallest matrix that fits the
// sequence; positions past the end of the sequence take fill.
func InverseZigZag(seq []int32, size int, fill int32) ([][]int32, error) {
	if size == 0 {
		for size*size < len(seq) {
			size++
		}
	} else if size*size < len(seq) {
		return nil, errKind(KindShapeMismatch,
			"sequence of %d values does not fit a %dx%d matrix", len(seq), size, size)
	}

	m := make([][]int32, size)
	for i := range m {
		m[i] = make([]int32, size)
	}

	row, col := 0, 0
	for i := 0; i < size*size; i++ {
		if i < len(seq) {
			m[row][col] = seq[i]
		} else {
			m[row][col] = fill
		}
		row, col = zigzagAdvance(row, col, size)
	}
	return m, nil
}
