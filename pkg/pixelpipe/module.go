package pixelpipe

import "github.com/rawpipe/go-rawpipe/pkg/pixelpipe/model"

// Module identifies one image operation instance. Everything beyond the
// identity is an optional capability: the engine type-asserts the
// interfaces below and substitutes identity behavior for any the module
// does not implement.
type Module interface {
	// Operation returns the module name, unique per operation.
	Operation() string
	// Instance distinguishes multi-instances of the same operation.
	Instance() int32
}

// Processor transforms the input region into the output region. This is
// the primary process entry point.
type Processor interface {
	Process(node *Node, in, out []float32, roiIn, roiOut model.ROI) error
}

// PlainProcessor is the fallback process entry point for modules ported
// before Processor existed. The engine prefers Processor when a module
// implements both.
type PlainProcessor interface {
	ProcessPlain(node *Node, in, out []float32, roiIn, roiOut model.ROI) error
}

// TiledProcessor processes in slices when the full region would exceed the
// memory budget.
type TiledProcessor interface {
	ProcessTiled(node *Node, in, out []float32, roiIn, roiOut model.ROI, inBPP int) error
}

// InputROIModifier reports which input region a node needs to produce a
// given output region. Without it the input region equals the output.
type InputROIModifier interface {
	ModifyROIIn(node *Node, roiOut model.ROI) model.ROI
}

// OutputROIModifier reports which output region a node produces from a
// given input region. Without it the output region equals the input.
type OutputROIModifier interface {
	ModifyROIOut(node *Node, roiIn model.ROI) model.ROI
}

// OutputFormatter rewrites the buffer descriptor for nodes that change the
// pixel format, such as demosaic going from one channel to four.
type OutputFormatter interface {
	OutputFormat(node *Node, dsc *model.BufferDesc)
}

// ColorspaceHints declares the colorspace a module wants its input in and
// the colorspace it writes. CSNone leaves the surrounding space untouched.
type ColorspaceHints interface {
	InputColorspace(node *Node) model.Colorspace
	OutputColorspace(node *Node) model.Colorspace
}

// TilingAdvisor reports per-call memory requirements. Without it the
// engine assumes one full input and one full output buffer.
type TilingAdvisor interface {
	TilingCallback(node *Node, roiIn, roiOut model.ROI) model.Tiling
}

// Lifecycle lets a module attach scratch state to a node when the pipeline
// is built and release it when the pipeline is torn down.
type Lifecycle interface {
	InitPipe(pipe *Pipeline, node *Node) error
	CleanupPipe(pipe *Pipeline, node *Node)
}

// Tagger exposes the operation tag bitmask. Untagged modules are treated
// as plain pixel filters.
type Tagger interface {
	OperationTags() Tags
}

// Blender hooks a module into the blending stage that runs after its
// process call.
type Blender interface {
	// BlendColorspace picks the space blending happens in. The engine
	// converts both operands into it before BlendProcess runs.
	BlendColorspace(node *Node, current model.Colorspace) model.Colorspace
	// BlendProcess merges the module output over its input in out.
	BlendProcess(node *Node, in, out []float32, roiIn, roiOut model.ROI) error
	// BlendTiling reports the extra memory the blend stage needs.
	BlendTiling(node *Node, roiIn, roiOut model.ROI) model.Tiling
}

// Tags classifies what a module does to the image geometry.
type Tags uint32

const (
	TagNone Tags = 0
	// TagDistort marks modules that move pixels and therefore cannot be
	// bypassed in mask display mode.
	TagDistort Tags = 1 << iota
	// TagDecoration marks overlays such as borders and watermarks.
	TagDecoration
	// TagCropping marks modules that change the canvas extent.
	TagCropping
)

func moduleTags(m Module) Tags {
	if t, ok := m.(Tagger); ok {
		return t.OperationTags()
	}
	return TagNone
}

// MaskMode selects how a node's blend mask is applied.
type MaskMode uint32

const (
	MaskDisabled MaskMode = 0
	MaskEnabled  MaskMode = 1 << (iota - 1)
	MaskDrawn
	MaskParametric
	MaskRaster
)

// BlendParams configures the blend stage of one node. A nil BlendParams or
// a MaskDisabled mode turns blending off.
type BlendParams struct {
	MaskMode MaskMode
	Opacity  float32
	// Colorspace forces the blend space when set to a real working space;
	// otherwise the module's BlendColorspace picks one.
	Colorspace model.Colorspace
}
