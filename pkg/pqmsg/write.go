package pqmsg

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pqwire/internal/buf"
	"github.com/joshuapare/pqwire/internal/logger"
)

// SendInt32LE appends v in little-endian byte order.
func (b *Buffer) SendInt32LE(v uint32) { b.data = buf.AppendU32LE(b.data, v) }

// SendInt64LE appends v in little-endian byte order.
func (b *Buffer) SendInt64LE(v uint64) { b.data = buf.AppendU64LE(b.data, v) }

// SendByte appends a single byte.
func (b *Buffer) SendByte(c byte) { b.data = append(b.data, c) }

// SendInt16 appends v in network byte order.
func (b *Buffer) SendInt16(v uint16) { b.data = buf.AppendU16BE(b.data, v) }

// SendInt32 appends v in network byte order.
func (b *Buffer) SendInt32(v uint32) { b.data = buf.AppendU32BE(b.data, v) }

// SendInt64 appends v in network byte order.
func (b *Buffer) SendInt64(v uint64) { b.data = buf.AppendU64BE(b.data, v) }

// SendBytes appends p verbatim.
func (b *Buffer) SendBytes(p []byte) { b.data = append(b.data, p...) }

// SendString appends s converted to the client encoding, followed by a NUL.
// On error nothing is appended.
func (b *Buffer) SendString(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return fmt.Errorf("%w: embedded NUL at offset %d", ErrInvalidString, i)
	}
	p, err := b.enc.encode(s)
	if err != nil {
		logger.Debug("pqmsg: string conversion failed", "encoding", b.enc.Name(), "error", err)
		return fmt.Errorf("%w: %s: %v", ErrInvalidString, b.enc.Name(), err)
	}
	b.data = append(append(b.data, p...), 0)
	return nil
}

// WriteU32LE appends v to b in little-endian byte order. See Buffer.SendInt32LE.
func WriteU32LE(b *Buffer, v uint32) { b.SendInt32LE(v) }

// WriteU64LE appends v to b in little-endian byte order. See Buffer.SendInt64LE.
func WriteU64LE(b *Buffer, v uint64) { b.SendInt64LE(v) }
