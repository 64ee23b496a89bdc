package pixelpipe

import "github.com/pkg/errors"

var (
	// ErrCanceled is returned when a render is aborted through Cancel.
	ErrCanceled = errors.New("render canceled")
	// ErrNotDirty is returned when Process is called in any state other
	// than dirty.
	ErrNotDirty = errors.New("pipeline is not dirty")
	// ErrNoInput is returned when Process runs before SetInput.
	ErrNoInput = errors.New("no input buffer set")
	// ErrNoProcess is returned when an enabled node's module implements no
	// process function at all.
	ErrNoProcess = errors.New("module has no process function")
	// ErrModuleMustBeSet is returned when a nil module is added.
	ErrModuleMustBeSet = errors.New("module must be set")
	// ErrModuleExists is returned when a module with the same operation
	// and instance is already registered.
	ErrModuleExists = errors.New("module already registered")
	// ErrOperationTooLong is returned for operation names over the length
	// limit.
	ErrOperationTooLong = errors.New("operation name too long")
)
