package pqmsg

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/pqwire/internal/buf"
	"github.com/joshuapare/pqwire/internal/logger"
)

// take consumes n bytes. On failure the cursor does not move.
func (b *Buffer) take(n int, field string) ([]byte, error) {
	end, err := buf.Span(len(b.data), b.cursor, n)
	if err != nil {
		logger.Debug("pqmsg: short read", "field", field, "need", n, "remaining", b.Remaining(), "cursor", b.cursor)
		return nil, fmt.Errorf("%w: %s needs %d bytes, %d remaining (%v)",
			ErrInsufficientData, field, n, b.Remaining(), err)
	}
	p := b.data[b.cursor:end:end]
	b.cursor = end
	return p, nil
}

// GetInt32LE reads a little-endian uint32 at the cursor and advances it by 4.
func (b *Buffer) GetInt32LE() (uint32, error) {
	p, err := b.take(4, "int32le")
	if err != nil {
		return 0, err
	}
	return buf.U32LE(p), nil
}

// GetInt64LE reads a little-endian uint64 at the cursor and advances it by 8.
func (b *Buffer) GetInt64LE() (uint64, error) {
	p, err := b.take(8, "int64le")
	if err != nil {
		return 0, err
	}
	return buf.U64LE(p), nil
}

// GetByte reads a single byte.
func (b *Buffer) GetByte() (byte, error) {
	p, err := b.take(1, "byte")
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// GetInt16 reads a network-order uint16.
func (b *Buffer) GetInt16() (uint16, error) {
	p, err := b.take(2, "int16")
	if err != nil {
		return 0, err
	}
	return buf.U16BE(p), nil
}

// GetInt32 reads a network-order uint32.
func (b *Buffer) GetInt32() (uint32, error) {
	p, err := b.take(4, "int32")
	if err != nil {
		return 0, err
	}
	return buf.U32BE(p), nil
}

// GetInt64 reads a network-order uint64.
func (b *Buffer) GetInt64() (uint64, error) {
	p, err := b.take(8, "int64")
	if err != nil {
		return 0, err
	}
	return buf.U64BE(p), nil
}

// GetBytes returns the next n bytes without copying. The result aliases the
// buffer.
func (b *Buffer) GetBytes(n int) ([]byte, error) {
	return b.take(n, "bytes")
}

// CopyBytes fills dst from the next len(dst) bytes.
func (b *Buffer) CopyBytes(dst []byte) error {
	p, err := b.take(len(dst), "copy bytes")
	if err != nil {
		return err
	}
	copy(dst, p)
	return nil
}

// GetString reads a NUL-terminated string and converts it from the client
// encoding. The terminator is consumed but not returned.
func (b *Buffer) GetString() (string, error) {
	rest := b.Unread()
	n := bytes.IndexByte(rest, 0)
	if n < 0 {
		logger.Debug("pqmsg: unterminated string", "cursor", b.cursor, "remaining", len(rest))
		return "", fmt.Errorf("%w: missing terminator after %d bytes", ErrInvalidString, len(rest))
	}
	s, err := b.enc.decode(rest[:n])
	if err != nil {
		logger.Debug("pqmsg: string conversion failed", "encoding", b.enc.Name(), "error", err)
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidString, b.enc.Name(), err)
	}
	b.cursor += n + 1
	return s, nil
}

// End verifies that the whole message was consumed.
func (b *Buffer) End() error {
	if n := b.Remaining(); n > 0 {
		return fmt.Errorf("%w: %d unread bytes at offset %d", ErrInvalidFormat, n, b.cursor)
	}
	return nil
}

// ReadU32LE reads a little-endian uint32 from msg. See Buffer.GetInt32LE.
func ReadU32LE(msg *Buffer) (uint32, error) { return msg.GetInt32LE() }

// ReadU64LE reads a little-endian uint64 from msg. See Buffer.GetInt64LE.
func ReadU64LE(msg *Buffer) (uint64, error) { return msg.GetInt64LE() }
