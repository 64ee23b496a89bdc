package pixelpipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe"
	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe/model"
)

func TestGetDimensionsIdentity(t *testing.T) {
	t.Parallel()

	p := pixelpipe.New()
	defer p.Close()

	_, err := p.AddNode(&gainModule{fakeModule: fakeModule{op: "exposure"}, factor: 2})
	require.NoError(t, err)

	w, h := p.GetDimensions(123, 45)
	assert.Equal(t, 123, w)
	assert.Equal(t, 45, h)
}

func TestGetDimensionsChain(t *testing.T) {
	t.Parallel()

	p := pixelpipe.New()
	defer p.Close()

	_, err := p.AddNode(&cropModule{fakeModule: fakeModule{op: "crop"}})
	require.NoError(t, err)
	_, err = p.AddNode(&cropModule{fakeModule: fakeModule{op: "clipping"}})
	require.NoError(t, err)

	w, h := p.GetDimensions(16, 12)
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)

	crop, ok := p.NodeOf("crop", 0)
	require.True(t, ok)
	assert.Equal(t, model.ROI{Width: 16, Height: 12, Scale: 1}, crop.BufIn)
	assert.Equal(t, model.ROI{Width: 8, Height: 6, Scale: 1}, crop.BufOut)

	clip, ok := p.NodeOf("clipping", 0)
	require.True(t, ok)
	assert.Equal(t, model.ROI{Width: 8, Height: 6, Scale: 1}, clip.BufIn)
}

func TestGetDimensionsSkipsDisabled(t *testing.T) {
	t.Parallel()

	p := pixelpipe.New()
	defer p.Close()

	n, err := p.AddNode(&cropModule{fakeModule: fakeModule{op: "crop"}})
	require.NoError(t, err)
	n.Enabled = false

	w, h := p.GetDimensions(16, 12)
	assert.Equal(t, 16, w)
	assert.Equal(t, 12, h)
}
