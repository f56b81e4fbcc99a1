package entity

// Translate maps a row-major linear index to its row and column.
// cols must be at least 1.
func Translate(index, cols int) (int, int) {
	return index / cols, index % cols
}

// Index is the inverse of Translate.
func Index(row, col, cols int) int {
	return row*cols + col
}
