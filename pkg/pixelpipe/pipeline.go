package pixelpipe

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rawpipe/go-rawpipe/pkg/ioporder"
	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe/cache"
	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe/model"
)

// Status tracks where a pipeline is in its render lifecycle.
type Status int32

const (
	// StatusDirty means the pipeline needs a render. It is the only legal
	// state to start one from.
	StatusDirty Status = iota
	// StatusRunning means a render is in flight.
	StatusRunning
	// StatusValid means the backbuffer holds the latest render.
	StatusValid
	// StatusInvalid means the last render failed or was canceled.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusDirty:
		return "dirty"
	case StatusRunning:
		return "running"
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// DefaultMemoryBudget caps a single process call at 2 GiB unless
// WithMemoryBudget overrides it.
const DefaultMemoryBudget uint64 = 2 << 30

// Pipeline runs an ordered chain of nodes over a borrowed input buffer.
//
// Two locks cover the shared state: mu guards the node list and serializes
// renders, backbufMu guards the published result so a reader can inspect
// the previous render while the next one is in flight. Cancellation is a
// single atomic flag polled throughout a render.
type Pipeline struct {
	mu        sync.Mutex
	backbufMu sync.Mutex

	nodes []*Node

	input   []float32
	iwidth  int
	iheight int
	iscale  float32
	image   model.Image

	// dsc is the format cursor of the render in flight; initialDsc is the
	// input format it resets to, because format transitions mutate dsc as
	// the walk ascends.
	dsc        model.BufferDesc
	initialDsc model.BufferDesc

	backbuf       []float32
	backbufWidth  int
	backbufHeight int
	backbufDsc    model.BufferDesc

	status   atomic.Int32
	shutdown atomic.Bool

	maskDisplay bool

	cache     cache.Cache
	budget    uint64
	transform ColorTransformer
	log       *logrus.Entry
}

// New builds an empty pipeline with the default cache, memory budget and
// colorspace transform.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		cache:     cache.NoCache{},
		budget:    DefaultMemoryBudget,
		transform: passthroughTransform{},
		log:       logrus.WithField("component", "pixelpipe"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetInput hands the pipeline its input buffer. The buffer is borrowed for
// the lifetime of the pipeline and never written to. The image snapshot
// seeds the initial buffer descriptor: raw input starts as a one-channel
// mosaic, anything else as four-channel RGB.
func (p *Pipeline) SetInput(buf []float32, width, height int, iscale float32, img model.Image) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.input = buf
	p.iwidth = width
	p.iheight = height
	p.iscale = iscale
	p.image = img

	dsc := model.BufferDesc{Datatype: model.TypeFloat}
	if img.Raw {
		dsc.Channels = 1
		dsc.Cst = model.CSRaw
		dsc.Filters = img.Filters
		dsc.XTrans = img.XTrans
		wp := float32(65535)
		if img.WhitePoint > 0 {
			wp = float32(img.WhitePoint)
		}
		for k := 0; k < 3; k++ {
			dsc.ProcessedMaximum[k] = 1.0 / wp
		}
	} else {
		dsc.Channels = 4
		dsc.Cst = model.CSRGB
		for k := 0; k < 3; k++ {
			dsc.ProcessedMaximum[k] = 1.0
		}
	}
	p.initialDsc = dsc
	p.dsc = dsc

	p.status.Store(int32(StatusDirty))
}

// AddNode appends a node for the given module, ordered after everything
// already in the pipeline, and runs the module's InitPipe hook.
func (p *Pipeline) AddNode(m Module) (*Node, error) {
	if m == nil {
		return nil, ErrModuleMustBeSet
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.addNode(m, int32((len(p.nodes)+1)*100), true)
}

func (p *Pipeline) addNode(m Module, order int32, enabled bool) (*Node, error) {
	n := &Node{
		Module:      m,
		Enabled:     enabled,
		Order:       order,
		TilingReady: true,
		pipe:        p,
	}
	n.rehash()

	if lc, ok := m.(Lifecycle); ok {
		if err := lc.InitPipe(p, n); err != nil {
			return nil, errors.Wrapf(err, "init %s", m.Operation())
		}
	}

	p.nodes = append(p.nodes, n)
	return n, nil
}

// BuildNodes replaces the node chain with one node per order entry whose
// module is registered. Entries without a registered module are left out.
// The enabled predicate decides the starting state per operation; nil
// selects DefaultEnabled.
func (p *Pipeline) BuildNodes(order *ioporder.List, reg *Registry, enabled func(op string) bool) error {
	if enabled == nil {
		enabled = DefaultEnabled
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.cleanupNodes()

	for _, e := range order.Entries() {
		m, ok := reg.Lookup(e.Operation, e.Instance)
		if !ok {
			p.log.WithField("op", e.Operation).Debug("no module for order entry")
			continue
		}
		if _, err := p.addNode(m, e.Order, enabled(e.Operation)); err != nil {
			p.cleanupNodes()
			return err
		}
	}

	p.status.Store(int32(StatusDirty))
	return nil
}

func (p *Pipeline) cleanupNodes() {
	for _, n := range p.nodes {
		if lc, ok := n.Module.(Lifecycle); ok {
			lc.CleanupPipe(p, n)
		}
		n.Data = nil
	}
	p.nodes = nil
}

// Close tears down the node chain and drops every buffer reference. The
// pipeline must not be used afterwards.
func (p *Pipeline) Close() {
	p.shutdown.Store(true)

	p.mu.Lock()
	p.cleanupNodes()
	p.input = nil
	p.mu.Unlock()

	p.backbufMu.Lock()
	p.backbuf = nil
	p.backbufMu.Unlock()

	p.cache.Flush()
}

// Cancel asks the render in flight to stop at its next poll point.
func (p *Pipeline) Cancel() {
	p.shutdown.Store(true)
}

func (p *Pipeline) canceled() bool {
	return p.shutdown.Load()
}

// MarkDirty flags the pipeline for a new render after a parameter change.
func (p *Pipeline) MarkDirty() {
	p.status.Store(int32(StatusDirty))
}

// Status returns the current lifecycle state. It can be polled from any
// goroutine.
func (p *Pipeline) Status() Status {
	return Status(p.status.Load())
}

// Nodes returns a snapshot of the node chain in pipeline order.
func (p *Pipeline) Nodes() []*Node {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*Node, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// NodeOf finds the node running an (operation, instance) pair.
func (p *Pipeline) NodeOf(op string, instance int32) (*Node, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, n := range p.nodes {
		if n.Module.Operation() == op && n.Module.Instance() == instance {
			return n, true
		}
	}
	return nil, false
}

// Image returns the metadata snapshot taken by SetInput.
func (p *Pipeline) Image() model.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.image
}

// Backbuf returns a copy of the last published render with its dimensions.
// It returns nil before the first successful render.
func (p *Pipeline) Backbuf() ([]float32, int, int) {
	p.backbufMu.Lock()
	defer p.backbufMu.Unlock()

	if p.backbuf == nil {
		return nil, 0, 0
	}
	out := make([]float32, len(p.backbuf))
	copy(out, p.backbuf)
	return out, p.backbufWidth, p.backbufHeight
}

// OutputDesc returns the buffer descriptor of the last published render.
func (p *Pipeline) OutputDesc() model.BufferDesc {
	p.backbufMu.Lock()
	defer p.backbufMu.Unlock()
	return p.backbufDsc
}

// SetMaskDisplay switches the diagnostic mode that bypasses every node not
// tagged as distorting, so mask overlays pass through unchanged.
func (p *Pipeline) SetMaskDisplay(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maskDisplay = on
}
