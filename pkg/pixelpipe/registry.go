package pixelpipe

import (
	"github.com/pkg/errors"

	"github.com/rawpipe/go-rawpipe/pkg/ioporder"
)

// Registry holds the module instances available to BuildNodes. It replaces
// any global module table: each pipeline owner decides which registry to
// build from.
type Registry struct {
	modules []Module
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a module instance. The (operation, instance) pair must be
// unique.
func (r *Registry) Register(m Module) error {
	if m == nil {
		return ErrModuleMustBeSet
	}
	op := m.Operation()
	if len(op) > ioporder.OperationMaxLen {
		return errors.Wrapf(ErrOperationTooLong, "%q", op)
	}
	if _, ok := r.Lookup(op, m.Instance()); ok {
		return errors.Wrapf(ErrModuleExists, "%s instance %d", op, m.Instance())
	}
	r.modules = append(r.modules, m)
	return nil
}

// Lookup finds the module for an (operation, instance) pair.
func (r *Registry) Lookup(op string, instance int32) (Module, bool) {
	for _, m := range r.modules {
		if m.Operation() == op && m.Instance() == instance {
			return m, true
		}
	}
	return nil, false
}

// Len returns the number of registered modules.
func (r *Registry) Len() int { return len(r.modules) }

// DefaultEnabled is the stock predicate for BuildNodes: the minimal chain
// that turns sensor data into a viewable image, everything else off.
func DefaultEnabled(op string) bool {
	switch op {
	case "rawprepare", "demosaic", "colorin", "exposure", "colorout":
		return true
	}
	return false
}
