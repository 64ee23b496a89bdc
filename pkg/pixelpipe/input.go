package pixelpipe

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe/cache"
	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe/model"
)

// fetchInput stages the requested region of the input buffer. A request
// for the full image at native scale returns the borrowed input without
// copying; everything else lands in a staging buffer, offset-copied at
// native scale or bilinearly resampled otherwise.
func (p *Pipeline) fetchInput(roi model.ROI) ([]float32, model.BufferDesc, error) {
	if p.canceled() {
		return nil, model.BufferDesc{}, errors.Wrap(ErrCanceled, "fetching input")
	}

	dsc := p.initialDsc

	if roi.Scale == 1 && roi.X == 0 && roi.Y == 0 &&
		roi.Width == p.iwidth && roi.Height == p.iheight {
		return p.input, dsc, nil
	}

	ch := dsc.Channels
	out, err := p.cache.Get(cache.InvalidHash, roi.Area()*ch, nil, false)
	if err != nil {
		return nil, model.BufferDesc{}, errors.Wrap(err, "input staging buffer")
	}

	if roi.Scale == 1 {
		err = p.copyRegion(out, roi, ch)
	} else {
		err = p.resampleRegion(out, roi, ch)
	}
	if err != nil {
		return nil, model.BufferDesc{}, err
	}
	return out, dsc, nil
}

// forEachRowBand splits the output rows into one contiguous band per CPU
// and runs fn on each band concurrently.
func (p *Pipeline) forEachRowBand(rows int, fn func(y0, y1 int) error) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > rows {
		workers = rows
	}
	if workers < 1 {
		workers = 1
	}

	g := errgroup.Group{}
	band := (rows + workers - 1) / workers
	for start := 0; start < rows; start += band {
		y0, y1 := start, start+band
		if y1 > rows {
			y1 = rows
		}
		g.Go(func() error {
			if p.canceled() {
				return errors.Wrap(ErrCanceled, "staging input rows")
			}
			return fn(y0, y1)
		})
	}
	return g.Wait()
}

// copyRegion extracts a native-scale window. Rows and columns outside the
// input are zero-filled.
func (p *Pipeline) copyRegion(out []float32, roi model.ROI, ch int) error {
	inX := clampInt(roi.X, 0, p.iwidth)
	inY := clampInt(roi.Y, 0, p.iheight)
	copyW := roi.Width
	if avail := p.iwidth - inX; copyW > avail {
		copyW = avail
	}
	if copyW < 0 {
		copyW = 0
	}

	return p.forEachRowBand(roi.Height, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			dst := out[y*roi.Width*ch : (y+1)*roi.Width*ch]
			srcY := inY + y
			if srcY >= p.iheight {
				zero(dst)
				continue
			}
			src := p.input[(srcY*p.iwidth+inX)*ch:]
			copy(dst[:copyW*ch], src[:copyW*ch])
			zero(dst[copyW*ch:])
		}
		return nil
	})
}

func zero(s []float32) {
	for i := range s {
		s[i] = 0
	}
}

// resampleRegion fills a scaled window by bilinear interpolation. The
// region offsets are in scaled coordinates; source lookups are clamped to
// the input bounds.
func (p *Pipeline) resampleRegion(out []float32, roi model.ROI, ch int) error {
	scale := float64(roi.Scale)

	return p.forEachRowBand(roi.Height, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			sy := (float64(roi.Y+y)+0.5)/scale - 0.5
			iy0, fy := splitCoord(sy, p.iheight)
			iy1 := clampInt(iy0+1, 0, p.iheight-1)

			for x := 0; x < roi.Width; x++ {
				sx := (float64(roi.X+x)+0.5)/scale - 0.5
				ix0, fx := splitCoord(sx, p.iwidth)
				ix1 := clampInt(ix0+1, 0, p.iwidth-1)

				dst := out[(y*roi.Width+x)*ch : (y*roi.Width+x+1)*ch]
				for c := 0; c < ch; c++ {
					v00 := float64(p.input[(iy0*p.iwidth+ix0)*ch+c])
					v01 := float64(p.input[(iy0*p.iwidth+ix1)*ch+c])
					v10 := float64(p.input[(iy1*p.iwidth+ix0)*ch+c])
					v11 := float64(p.input[(iy1*p.iwidth+ix1)*ch+c])
					top := v00 + (v01-v00)*fx
					bot := v10 + (v11-v10)*fx
					dst[c] = float32(top + (bot-top)*fy)
				}
			}
		}
		return nil
	})
}

// splitCoord clamps a source coordinate and splits it into the lower index
// and the interpolation fraction.
func splitCoord(v float64, limit int) (int, float64) {
	if v < 0 {
		return 0, 0
	}
	if v > float64(limit-1) {
		return limit - 1, 0
	}
	i := int(v)
	return i, v - float64(i)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
