package pixelpipe

import (
	"github.com/sirupsen/logrus"

	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe/cache"
)

// Option configures a pipeline at construction time.
type Option func(*Pipeline)

// WithCache installs a buffer cache. The default never retains buffers.
func WithCache(c cache.Cache) Option {
	return func(p *Pipeline) {
		if c != nil {
			p.cache = c
		}
	}
}

// WithMemoryBudget caps the in-memory footprint of a single process call,
// in bytes. Nodes whose requirements exceed it run tiled.
func WithMemoryBudget(bytes uint64) Option {
	return func(p *Pipeline) {
		if bytes > 0 {
			p.budget = bytes
		}
	}
}

// WithColorTransformer installs the converter used for colorspace
// bracketing. The default only retags buffers.
func WithColorTransformer(t ColorTransformer) Option {
	return func(p *Pipeline) {
		if t != nil {
			p.transform = t
		}
	}
}

// WithLogger redirects pipeline diagnostics.
func WithLogger(l *logrus.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l.WithField("component", "pixelpipe")
		}
	}
}
