package model

// Tiling describes the memory requirements a node announces for one
// process call. The engine compares the implied peak footprint against its
// budget to decide between full-frame and tiled processing.
type Tiling struct {
	// Factor scales the larger of the input and output buffer sizes to
	// the peak number of buffer copies alive at once.
	Factor float32
	// MaxBuf scales the largest single allocation.
	MaxBuf float32
	// Overhead is a fixed allocation in bytes on top of the buffers.
	Overhead uint64
	// Overlap is the border in pixels that adjacent tiles must share.
	Overlap int
	// XAlign and YAlign constrain tile origins, for mosaic patterns.
	XAlign int
	YAlign int
}

// DefaultTiling covers a node that reads its input once and writes its
// output once, with no scratch buffers.
func DefaultTiling() Tiling {
	return Tiling{Factor: 2, MaxBuf: 1, XAlign: 1, YAlign: 1}
}

// Max merges two requirements into one that satisfies both.
func (t Tiling) Max(o Tiling) Tiling {
	out := t
	if o.Factor > out.Factor {
		out.Factor = o.Factor
	}
	if o.MaxBuf > out.MaxBuf {
		out.MaxBuf = o.MaxBuf
	}
	if o.Overhead > out.Overhead {
		out.Overhead = o.Overhead
	}
	if o.Overlap > out.Overlap {
		out.Overlap = o.Overlap
	}
	if o.XAlign > out.XAlign {
		out.XAlign = o.XAlign
	}
	if o.YAlign > out.YAlign {
		out.YAlign = o.YAlign
	}
	return out
}
