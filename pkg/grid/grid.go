package grid

// GetGridCoords converts a linear cell index into (x, y) coordinates for a
// row-major grid with the given number of columns.
func GetGridCoords(index, cols int) (int, int) {
	return index % cols, index / cols
}

// Index converts (x, y) coordinates into a linear cell index for a row-major
// grid with the given number of columns.
func Index(x, y, cols int) int {
	return y*cols + x
}
