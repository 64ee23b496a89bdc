package model

// ROI is a rectangular region of interest. X and Y are offsets into the
// scaled full image, so a node sees coordinates that already include its
// scale factor.
type ROI struct {
	X      int
	Y      int
	Width  int
	Height int
	// Scale relates this region to the full-resolution input. A scale of
	// 0.5 renders at half resolution.
	Scale float32
}

// Area returns the number of pixels covered by the region.
func (r ROI) Area() int {
	return r.Width * r.Height
}

// SameBounds reports whether two regions cover the same rectangle at the
// same scale.
func (r ROI) SameBounds(o ROI) bool {
	return r == o
}
