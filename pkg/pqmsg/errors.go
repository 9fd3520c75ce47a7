package pqmsg

import "errors"

var (
	// ErrInsufficientData indicates a read needed more bytes than remain unread.
	ErrInsufficientData = errors.New("pqmsg: insufficient data left in message")
	// ErrInvalidString indicates a string field that is unterminated, contains
	// an embedded NUL, or cannot be converted to or from the client encoding.
	ErrInvalidString = errors.New("pqmsg: invalid string in message")
	// ErrInvalidFormat indicates unread bytes remain after the last field.
	ErrInvalidFormat = errors.New("pqmsg: invalid message format")
	// ErrUnknownEncoding indicates an encoding name with no known converter.
	ErrUnknownEncoding = errors.New("pqmsg: unknown encoding")
)
