package ioporder

import "github.com/pkg/errors"

var (
	// ErrUnknownVersion is returned when a version has no built-in table.
	ErrUnknownVersion = errors.New("unknown iop order version")
	// ErrCorruptList is returned when serialized data cannot be decoded.
	ErrCorruptList = errors.New("corrupted iop order list")
	// ErrRuleViolation is returned by Validate when a list breaks a
	// mandatory precedence rule.
	ErrRuleViolation = errors.New("iop order rule violation")
)
