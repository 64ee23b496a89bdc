package model

// BufferType tags the sample type a descriptor announces. Pixels flow
// through the pipeline as float32; the uint16 tag survives only as input
// metadata until the first format transition rewrites it.
type BufferType int32

const (
	TypeUnknown BufferType = iota
	TypeFloat
	TypeUint16
)

// SampleSize returns the size of one sample in bytes.
func (t BufferType) SampleSize() int {
	switch t {
	case TypeUint16:
		return 2
	default:
		return 4
	}
}

// Colorspace tags the interpretation of channel values in a buffer.
type Colorspace int32

const (
	CSNone Colorspace = iota - 1
	CSRaw
	CSLab
	CSRGB
	CSLCH
	CSHSL
	CSJzCzHz
)

func (c Colorspace) String() string {
	switch c {
	case CSRaw:
		return "RAW"
	case CSLab:
		return "Lab"
	case CSRGB:
		return "RGB"
	case CSLCH:
		return "LCh"
	case CSHSL:
		return "HSL"
	case CSJzCzHz:
		return "JzCzHz"
	default:
		return "none"
	}
}

// FiltersXTrans marks an X-Trans mosaic in the Filters field.
const FiltersXTrans uint32 = 9

// BufferDesc describes the pixel format of a buffer between two nodes.
type BufferDesc struct {
	Channels int
	Datatype BufferType
	// Filters encodes the Bayer pattern of mosaiced data, zero for plain
	// buffers and FiltersXTrans for X-Trans sensors.
	Filters uint32
	XTrans  [6][6]uint8
	// ProcessedMaximum tracks the clipping point per channel as white
	// balance and highlight handling rescale the data.
	ProcessedMaximum [4]float32
	Cst              Colorspace
}

// BPP returns the size of one pixel in bytes.
func (d BufferDesc) BPP() int {
	return d.Channels * d.Datatype.SampleSize()
}
