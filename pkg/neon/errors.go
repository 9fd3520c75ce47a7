package neon

import "errors"

var (
	// ErrInvalidID indicates text that is not exactly 32 hex digits.
	ErrInvalidID = errors.New("neon: invalid id")
	// ErrInvalidLsn indicates text that is not in "X/X" form.
	ErrInvalidLsn = errors.New("neon: invalid lsn")
)
