package pixelpipe

import "github.com/rawpipe/go-rawpipe/pkg/pixelpipe/model"

// ColorTransformer converts a buffer between colorspaces in place. The
// engine calls it whenever a module wants its input in a different space
// than the previous node produced.
type ColorTransformer interface {
	Transform(buf []float32, width, height, channels int, from, to model.Colorspace) error
}

// passthroughTransform only retags. It stands in until a profiled
// conversion is wired up, which keeps the bracketing logic exercised
// without touching pixel values.
type passthroughTransform struct{}

func (passthroughTransform) Transform(_ []float32, _, _, _ int, _, _ model.Colorspace) error {
	return nil
}
