package model

// Image is a snapshot of the input image metadata taken when the pipeline
// receives its input buffer. Nodes read it instead of any shared state, so
// a render is unaffected by later imports.
type Image struct {
	Width  int
	Height int
	// Raw marks mosaiced sensor data that still needs demosaicing.
	Raw bool
	// Filters and XTrans describe the mosaic layout of raw input.
	Filters uint32
	XTrans  [6][6]uint8
	// BlackLevel and WhitePoint bound the sensor value range.
	BlackLevel uint16
	WhitePoint uint32
	// WBCoeffs are the as-shot white balance multipliers.
	WBCoeffs [4]float32
	Maker    string
	Model    string
}
