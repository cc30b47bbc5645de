package dataset

// Batch returns the contiguous [start, start+size) windows of an aligned
// input/label pair. Bounds are clamped to the sequence end, so a window
// reaching past it is truncated rather than padded or rejected; a start
// at or past the end yields empty slices. Inputs and labels must be the
// same length.
func Batch(inputs, labels []int, start, size int) ([]int, []int) {
	n := len(inputs)
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := start + size
	if size < 0 || end > n {
		end = n
	}
	return inputs[start:end], labels[start:end]
}
