// Package ioporder maintains the ordered list of image operations that a
// processing pipeline runs, from rawprepare at the head to gamma at the tail.
//
// A List owns its entries. Order keys are integers spaced one hundred apart
// and are recomputed every time a list is built or deserialized, so keys are
// never trusted from storage. Built-in lists for the shipped pipeline
// versions are available through Builtin, and any list can be checked
// against the precedence rules with Validate.
package ioporder
