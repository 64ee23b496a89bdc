package pixelpipe

import "github.com/rawpipe/go-rawpipe/pkg/pixelpipe/model"

// GetDimensions walks the chain from head to tail applying each node's
// output region callback, and returns the final output size for the given
// input size. It allocates no pixel buffers and records the per-node
// extents for later renders.
func (p *Pipeline) GetDimensions(widthIn, heightIn int) (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	roiIn := model.ROI{Width: widthIn, Height: heightIn, Scale: 1}

	for _, n := range p.nodes {
		n.BufIn = roiIn
		roiOut := roiIn
		if !skipNode(n) {
			if m, ok := n.Module.(OutputROIModifier); ok {
				roiOut = m.ModifyROIOut(n, roiIn)
			}
		}
		n.BufOut = roiOut
		roiIn = roiOut
	}

	return roiIn.Width, roiIn.Height
}
