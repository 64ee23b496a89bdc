package pixelpipe

import "github.com/rawpipe/go-rawpipe/pkg/pixelpipe/model"

// Node is one module instance placed in a pipeline. The engine records the
// regions and formats of the last render on it, so callers can inspect
// what each stage actually saw.
type Node struct {
	// Module is the image operation this node runs.
	Module Module
	// Enabled nodes process pixels; disabled ones are skipped.
	Enabled bool
	// Order is the sort key from the iop order list. The not-found
	// sentinel makes unordered nodes skip themselves.
	Order int32
	// Blend configures the optional blend stage.
	Blend *BlendParams
	// Data holds module scratch state allocated by Lifecycle.InitPipe.
	Data any

	// BufIn and BufOut are the full-image regions from the forward
	// dimension walk.
	BufIn  model.ROI
	BufOut model.ROI
	// ProcessedIn and ProcessedOut are the regions of the last render.
	ProcessedIn  model.ROI
	ProcessedOut model.ROI
	// DscIn and DscOut are the buffer formats of the last render.
	DscIn  model.BufferDesc
	DscOut model.BufferDesc
	// TilingReady gates tiled dispatch for this node.
	TilingReady bool
	// Hash identifies the node configuration for buffer caching.
	Hash uint64

	pipe *Pipeline
}

// Pipe returns the pipeline owning this node.
func (n *Node) Pipe() *Pipeline { return n.pipe }

// Name returns the operation name of the node's module.
func (n *Node) Name() string { return n.Module.Operation() }

// blendActive reports whether the blend stage runs for this node.
func (n *Node) blendActive() bool {
	return n.Blend != nil && n.Blend.MaskMode != MaskDisabled
}

// rehash folds the node configuration into the caching hash.
func (n *Node) rehash() {
	h := uint64(5381)
	mix := func(b byte) { h = h*33 + uint64(b) }
	for _, b := range []byte(n.Module.Operation()) {
		mix(b)
	}
	for i := 0; i < 4; i++ {
		mix(byte(n.Module.Instance() >> (8 * i)))
		mix(byte(n.Order >> (8 * i)))
	}
	if n.Enabled {
		mix(1)
	} else {
		mix(0)
	}
	n.Hash = h
}
