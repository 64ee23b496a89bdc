package pixelpipe

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rawpipe/go-rawpipe/pkg/ioporder"
	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe/model"
)

// Process renders the requested region at the given scale and publishes
// the result to the backbuffer. The pipeline must be dirty; a successful
// render leaves it valid, a failed or canceled one invalid.
//
// The render is a depth-first walk from the tail node to the input. The
// walk itself is single-threaded; data parallelism lives inside the node
// process functions and the input resampler.
func (p *Pipeline) Process(x, y, width, height int, scale float32) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A cancel requested before the render starts aborts it; the flag is
	// consumed either way so the next render starts clean.
	if p.shutdown.Swap(false) {
		p.status.Store(int32(StatusInvalid))
		return errors.Wrap(ErrCanceled, "before render start")
	}

	if Status(p.status.Load()) != StatusDirty {
		return errors.Wrapf(ErrNotDirty, "status %s", p.Status())
	}
	if p.input == nil {
		p.status.Store(int32(StatusInvalid))
		return ErrNoInput
	}

	p.status.Store(int32(StatusRunning))

	// Format transitions mutate the cursor as the walk ascends, so every
	// render starts from the input format.
	p.dsc = p.initialDsc

	roi := model.ROI{X: x, Y: y, Width: width, Height: height, Scale: scale}
	buf, dsc, err := p.processRec(len(p.nodes)-1, roi)
	if err != nil {
		p.status.Store(int32(StatusInvalid))
		return errors.Wrap(err, "render")
	}

	p.backbufMu.Lock()
	size := roi.Width * roi.Height * dsc.Channels
	if cap(p.backbuf) < size {
		p.backbuf = make([]float32, size)
	}
	p.backbuf = p.backbuf[:size]
	copy(p.backbuf, buf[:size])
	p.backbufWidth = roi.Width
	p.backbufHeight = roi.Height
	p.backbufDsc = dsc
	p.backbufMu.Unlock()

	// Intermediates are cache-owned; the borrowed input must survive.
	if !sameBuffer(buf, p.input) {
		p.cache.Invalidate(buf)
	}

	p.status.Store(int32(StatusValid))
	return nil
}

func sameBuffer(a, b []float32) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// skipNode applies the skip rule: disabled nodes and nodes whose order is
// the not-found sentinel take no part in a render.
func skipNode(n *Node) bool {
	return !n.Enabled || n.Order == ioporder.OrderNotFound
}

// processRec renders the output region of node idx and returns the buffer
// holding it together with its format. Index -1 is the base case that
// stages the input region.
func (p *Pipeline) processRec(idx int, roiOut model.ROI) ([]float32, model.BufferDesc, error) {
	if p.canceled() {
		return nil, model.BufferDesc{}, errors.Wrap(ErrCanceled, "descending")
	}

	if idx < 0 {
		return p.fetchInput(roiOut)
	}

	node := p.nodes[idx]
	if skipNode(node) {
		return p.processRec(idx-1, roiOut)
	}

	roiIn := roiOut
	if m, ok := node.Module.(InputROIModifier); ok {
		roiIn = m.ModifyROIIn(node, roiOut)
	}
	node.ProcessedIn = roiIn
	node.ProcessedOut = roiOut

	in, inDsc, err := p.processRec(idx-1, roiIn)
	if err != nil {
		return nil, model.BufferDesc{}, err
	}

	node.DscIn = inDsc
	node.DscOut = inDsc
	if f, ok := node.Module.(OutputFormatter); ok {
		f.OutputFormat(node, &node.DscOut)
	}
	outDsc := node.DscOut
	p.dsc = outDsc

	size := roiOut.Width * roiOut.Height * outDsc.Channels
	out, err := p.cache.Get(node.Hash, size, node, false)
	if err != nil {
		return nil, model.BufferDesc{}, errors.Wrapf(err, "output buffer for %s", node.Name())
	}

	if p.canceled() {
		return nil, model.BufferDesc{}, errors.Wrap(ErrCanceled, "before process")
	}

	// Mask display bypasses every node that neither moves pixels nor
	// changes the buffer layout, so the overlay reaches the output intact.
	if p.maskDisplay && moduleTags(node.Module)&TagDistort == 0 &&
		inDsc.BPP() == outDsc.BPP() && roiIn.SameBounds(roiOut) {
		node.DscOut = node.DscIn
		p.dsc = node.DscIn
		copy(out[:size], in[:size])
		return out, node.DscOut, nil
	}

	tiling := model.DefaultTiling()
	if a, ok := node.Module.(TilingAdvisor); ok {
		tiling = a.TilingCallback(node, roiIn, roiOut)
	}
	if node.blendActive() {
		if b, ok := node.Module.(Blender); ok {
			tiling = tiling.Max(b.BlendTiling(node, roiIn, roiOut))
		}
	}

	outDsc, err = p.processOnCPU(node, in, inDsc, roiIn, out, outDsc, roiOut, tiling)
	if err != nil {
		return nil, model.BufferDesc{}, err
	}
	node.DscOut = outDsc
	p.dsc = outDsc

	p.log.WithFields(logrus.Fields{
		"op":  node.Name(),
		"roi": roiOut,
		"cst": outDsc.Cst.String(),
	}).Debug("processed node")

	return out, outDsc, nil
}

// processOnCPU runs one node's process function with the colorspace
// bracket around it and the tiled fallback when the region does not fit
// the memory budget.
func (p *Pipeline) processOnCPU(node *Node, in []float32, inDsc model.BufferDesc, roiIn model.ROI,
	out []float32, outDsc model.BufferDesc, roiOut model.ROI, tiling model.Tiling) (model.BufferDesc, error) {

	if p.canceled() {
		return outDsc, errors.Wrap(ErrCanceled, "before input transform")
	}

	cstFrom := inDsc.Cst
	cstTo := cstFrom
	cstOut := model.CSNone
	hints, hasHints := node.Module.(ColorspaceHints)
	if hasHints {
		if want := hints.InputColorspace(node); want != model.CSNone {
			cstTo = want
		}
		cstOut = hints.OutputColorspace(node)
	}

	if cstFrom != cstTo {
		if err := p.transform.Transform(in, roiIn.Width, roiIn.Height, inDsc.Channels, cstFrom, cstTo); err != nil {
			return outDsc, errors.Wrapf(err, "input transform for %s", node.Name())
		}
		inDsc.Cst = cstTo
		node.DscIn.Cst = cstTo
	}

	if p.canceled() {
		return outDsc, errors.Wrap(ErrCanceled, "before process call")
	}

	if err := p.dispatch(node, in, inDsc, roiIn, out, outDsc, roiOut, tiling); err != nil {
		return outDsc, err
	}

	if p.canceled() {
		return outDsc, errors.Wrap(ErrCanceled, "after process call")
	}

	// Record what the module wrote. Without hints the descriptor keeps
	// whatever OutputFormat set, so format transitions stay authoritative.
	if hasHints {
		if cstOut == model.CSNone {
			cstOut = cstTo
		}
		outDsc.Cst = cstOut
	}

	if node.blendActive() {
		if err := p.blend(node, in, inDsc, roiIn, out, &outDsc, roiOut); err != nil {
			return outDsc, err
		}
	}

	if p.canceled() {
		return outDsc, errors.Wrap(ErrCanceled, "after blend")
	}
	return outDsc, nil
}

// dispatch picks the process entry point: tiled when the footprint busts
// the budget and the module supports it, otherwise the primary process
// function with the legacy alias as fallback.
func (p *Pipeline) dispatch(node *Node, in []float32, inDsc model.BufferDesc, roiIn model.ROI,
	out []float32, outDsc model.BufferDesc, roiOut model.ROI, tiling model.Tiling) error {

	fits := p.fitsBudget(roiIn, roiOut, inDsc.BPP(), outDsc.BPP(), tiling)

	if !fits && node.TilingReady {
		if tp, ok := node.Module.(TiledProcessor); ok {
			p.log.WithField("op", node.Name()).Debug("processing tiled")
			return errors.Wrapf(tp.ProcessTiled(node, in, out, roiIn, roiOut, inDsc.BPP()),
				"tiled process %s", node.Name())
		}
		p.log.WithField("op", node.Name()).Warn("region over budget but module cannot tile")
	}

	if proc, ok := node.Module.(Processor); ok {
		return errors.Wrapf(proc.Process(node, in, out, roiIn, roiOut), "process %s", node.Name())
	}
	if plain, ok := node.Module.(PlainProcessor); ok {
		return errors.Wrapf(plain.ProcessPlain(node, in, out, roiIn, roiOut), "process %s", node.Name())
	}
	return errors.Wrapf(ErrNoProcess, "%s", node.Name())
}

// fitsBudget decides whether one full-frame process call stays inside the
// memory budget.
func (p *Pipeline) fitsBudget(roiIn, roiOut model.ROI, inBPP, outBPP int, tiling model.Tiling) bool {
	area := uint64(roiIn.Area())
	if out := uint64(roiOut.Area()); out > area {
		area = out
	}
	bpp := uint64(inBPP)
	if uint64(outBPP) > bpp {
		bpp = uint64(outBPP)
	}

	required := uint64(tiling.Factor*float32(area*bpp)) + tiling.Overhead
	return required <= p.budget
}

// blend converts both operands into the blend colorspace and runs the
// module's blend function over them.
func (p *Pipeline) blend(node *Node, in []float32, inDsc model.BufferDesc, roiIn model.ROI,
	out []float32, outDsc *model.BufferDesc, roiOut model.ROI) error {

	b, ok := node.Module.(Blender)
	if !ok {
		return nil
	}

	blendCst := outDsc.Cst
	// Raw data cannot be blended, so only a real working space forces the
	// blend colorspace.
	if cs := node.Blend.Colorspace; cs > model.CSRaw {
		blendCst = cs
	} else {
		blendCst = b.BlendColorspace(node, blendCst)
	}

	if inDsc.Cst != blendCst {
		if err := p.transform.Transform(in, roiIn.Width, roiIn.Height, inDsc.Channels, inDsc.Cst, blendCst); err != nil {
			return errors.Wrapf(err, "blend input transform for %s", node.Name())
		}
		node.DscIn.Cst = blendCst
	}
	if outDsc.Cst != blendCst {
		if err := p.transform.Transform(out, roiOut.Width, roiOut.Height, outDsc.Channels, outDsc.Cst, blendCst); err != nil {
			return errors.Wrapf(err, "blend output transform for %s", node.Name())
		}
		outDsc.Cst = blendCst
	}

	if p.canceled() {
		return errors.Wrap(ErrCanceled, "before blend process")
	}

	return errors.Wrapf(b.BlendProcess(node, in, out, roiIn, roiOut), "blend %s", node.Name())
}
