package pixelpipe_test

import (
	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe"
	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe/model"
)

// fakeModule carries only the identity; capabilities come from embedding.
type fakeModule struct {
	op   string
	inst int32
}

func (m fakeModule) Operation() string { return m.op }
func (m fakeModule) Instance() int32   { return m.inst }

// gainModule multiplies every sample, leaving geometry and format alone.
type gainModule struct {
	fakeModule
	factor float32
}

func (m *gainModule) Process(node *pixelpipe.Node, in, out []float32, _, roiOut model.ROI) error {
	n := roiOut.Area() * node.DscOut.Channels
	for i := 0; i < n; i++ {
		out[i] = in[i] * m.factor
	}
	return nil
}

// cropModule keeps the top-left quarter of its input.
type cropModule struct {
	fakeModule
}

func (m *cropModule) ModifyROIOut(_ *pixelpipe.Node, roiIn model.ROI) model.ROI {
	out := roiIn
	out.Width = roiIn.Width / 2
	out.Height = roiIn.Height / 2
	return out
}

func (m *cropModule) ModifyROIIn(_ *pixelpipe.Node, roiOut model.ROI) model.ROI {
	in := roiOut
	in.Width = roiOut.Width * 2
	in.Height = roiOut.Height * 2
	return in
}

func (m *cropModule) Process(node *pixelpipe.Node, in, out []float32, roiIn, roiOut model.ROI) error {
	ch := node.DscOut.Channels
	for y := 0; y < roiOut.Height; y++ {
		copy(out[y*roiOut.Width*ch:(y+1)*roiOut.Width*ch],
			in[y*roiIn.Width*ch:y*roiIn.Width*ch+roiOut.Width*ch])
	}
	return nil
}

// monoModule expands one-channel mosaic data to four-channel RGB, the way
// demosaic changes the buffer format.
type monoModule struct {
	fakeModule
}

func (m *monoModule) OutputFormat(_ *pixelpipe.Node, dsc *model.BufferDesc) {
	dsc.Channels = 4
	dsc.Cst = model.CSRGB
	dsc.Filters = 0
}

func (m *monoModule) Process(_ *pixelpipe.Node, in, out []float32, _, roiOut model.ROI) error {
	for i := 0; i < roiOut.Area(); i++ {
		v := in[i]
		out[i*4+0] = v
		out[i*4+1] = v
		out[i*4+2] = v
		out[i*4+3] = 1
	}
	return nil
}

// tileModule records which process entry point the engine picked.
type tileModule struct {
	fakeModule
	fullCalls  int
	tiledCalls int
}

func (m *tileModule) Process(node *pixelpipe.Node, in, out []float32, _, roiOut model.ROI) error {
	m.fullCalls++
	copy(out[:roiOut.Area()*node.DscOut.Channels], in)
	return nil
}

func (m *tileModule) ProcessTiled(node *pixelpipe.Node, in, out []float32, _, roiOut model.ROI, _ int) error {
	m.tiledCalls++
	copy(out[:roiOut.Area()*node.DscOut.Channels], in)
	return nil
}

func (m *tileModule) TilingCallback(_ *pixelpipe.Node, _, _ model.ROI) model.Tiling {
	return model.DefaultTiling()
}

// plainModule only implements the legacy process entry point.
type plainModule struct {
	fakeModule
	calls int
}

func (m *plainModule) ProcessPlain(node *pixelpipe.Node, in, out []float32, _, roiOut model.ROI) error {
	m.calls++
	copy(out[:roiOut.Area()*node.DscOut.Channels], in)
	return nil
}

// cancelModule cancels its own pipeline from inside the process call.
type cancelModule struct {
	fakeModule
}

func (m *cancelModule) Process(node *pixelpipe.Node, in, out []float32, _, roiOut model.ROI) error {
	copy(out[:roiOut.Area()*node.DscOut.Channels], in)
	node.Pipe().Cancel()
	return nil
}

// labModule asks for Lab input and declares Lab output.
type labModule struct {
	fakeModule
}

func (m *labModule) Process(node *pixelpipe.Node, in, out []float32, _, roiOut model.ROI) error {
	copy(out[:roiOut.Area()*node.DscOut.Channels], in)
	return nil
}

func (m *labModule) InputColorspace(_ *pixelpipe.Node) model.Colorspace {
	return model.CSLab
}

func (m *labModule) OutputColorspace(_ *pixelpipe.Node) model.Colorspace {
	return model.CSLab
}

// lifeModule tracks the pipeline lifecycle hooks.
type lifeModule struct {
	fakeModule
	inits    int
	cleanups int
}

type lifeScratch struct {
	ready bool
}

func (m *lifeModule) InitPipe(_ *pixelpipe.Pipeline, node *pixelpipe.Node) error {
	m.inits++
	node.Data = &lifeScratch{ready: true}
	return nil
}

func (m *lifeModule) CleanupPipe(_ *pixelpipe.Pipeline, _ *pixelpipe.Node) {
	m.cleanups++
}

func (m *lifeModule) Process(node *pixelpipe.Node, in, out []float32, _, roiOut model.ROI) error {
	copy(out[:roiOut.Area()*node.DscOut.Channels], in)
	return nil
}

// meanBlendModule averages its input and output during the blend stage.
type meanBlendModule struct {
	gainModule
}

func (m *meanBlendModule) BlendColorspace(_ *pixelpipe.Node, current model.Colorspace) model.Colorspace {
	return current
}

func (m *meanBlendModule) BlendProcess(node *pixelpipe.Node, in, out []float32, _, roiOut model.ROI) error {
	n := roiOut.Area() * node.DscOut.Channels
	for i := 0; i < n; i++ {
		out[i] = (in[i] + out[i]) / 2
	}
	return nil
}

func (m *meanBlendModule) BlendTiling(_ *pixelpipe.Node, _, _ model.ROI) model.Tiling {
	return model.DefaultTiling()
}

// rampInput builds a deterministic input buffer with ch channels.
func rampInput(width, height, ch int) []float32 {
	buf := make([]float32, width*height*ch)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < ch; c++ {
				buf[(y*width+x)*ch+c] = float32(x) + float32(y)*10 + float32(c)*100
			}
		}
	}
	return buf
}

func rgbImage(width, height int) model.Image {
	return model.Image{Width: width, Height: height}
}

func rawImage(width, height int) model.Image {
	return model.Image{
		Width:      width,
		Height:     height,
		Raw:        true,
		Filters:    0x94949494,
		WhitePoint: 16383,
	}
}
