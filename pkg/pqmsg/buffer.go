package pqmsg

// Buffer is a message under construction or being parsed.
//
// The zero value is an empty buffer using the UTF8 client encoding.
// Invariant: 0 <= cursor <= len(data).
type Buffer struct {
	data   []byte
	cursor int
	enc    Encoding
	owned  bool // data was allocated by the Buffer, not wrapped by FromBytes
}

// New returns an empty Buffer ready for Send* calls.
func New(opts ...Option) *Buffer {
	o := buildOptions(opts)
	return &Buffer{
		data:  make([]byte, 0, o.Capacity),
		enc:   o.Encoding,
		owned: true,
	}
}

// FromBytes wraps a received message for Get* calls. The slice is not copied
// and must not be modified while the Buffer is in use. The Buffer never
// writes into it: Send* calls and Reset move to a private allocation.
func FromBytes(b []byte, opts ...Option) *Buffer {
	o := buildOptions(opts)
	return &Buffer{data: b[:len(b):len(b)], enc: o.Encoding}
}

// Len returns the total number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Cursor returns the read position.
func (b *Buffer) Cursor() int { return b.cursor }

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return len(b.data) - b.cursor }

// Bytes returns the whole buffer contents, read or not. The slice aliases
// the buffer until the next Send* call.
func (b *Buffer) Bytes() []byte { return b.data }

// Unread returns the bytes after the cursor without consuming them.
func (b *Buffer) Unread() []byte { return b.data[b.cursor:] }

// Encoding returns the client encoding used for string fields.
func (b *Buffer) Encoding() Encoding { return b.enc }

// Reset empties the buffer and moves the cursor to the start. Capacity is
// kept only when the Buffer allocated it; wrapped bytes are released.
func (b *Buffer) Reset() {
	if b.owned {
		b.data = b.data[:0]
	} else {
		b.data = nil
		b.owned = true
	}
	b.cursor = 0
}

// Rewind moves the cursor back to the start so the contents can be reread.
func (b *Buffer) Rewind() { b.cursor = 0 }
