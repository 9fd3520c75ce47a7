// Package buf contains bounds helpers and fixed-width integer codecs.
//
// All codecs are written as explicit shifts and masks over individual bytes,
// so the encoded form is the same on every GOARCH regardless of native byte
// order or alignment rules.
package buf

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	_ = b[3]
	return uint32(b[0]) |
		uint32(b[1])<<8 |
		uint32(b[2])<<16 |
		uint32(b[3])<<24
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	_ = b[7]
	return uint64(b[0]) |
		uint64(b[1])<<8 |
		uint64(b[2])<<16 |
		uint64(b[3])<<24 |
		uint64(b[4])<<32 |
		uint64(b[5])<<40 |
		uint64(b[6])<<48 |
		uint64(b[7])<<56
}

// U16BE reads a big-endian uint16 from b. Returns 0 when b is too short.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return uint16(b[0])<<8 | uint16(b[1])
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	_ = b[3]
	return uint32(b[0])<<24 |
		uint32(b[1])<<16 |
		uint32(b[2])<<8 |
		uint32(b[3])
}

// U64BE reads a big-endian uint64 from b. Returns 0 when b is too short.
func U64BE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return uint64(U32BE(b[0:4]))<<32 | uint64(U32BE(b[4:8]))
}

// AppendU32LE appends v to dst in little-endian byte order.
func AppendU32LE(dst []byte, v uint32) []byte {
	return append(dst,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
	)
}

// AppendU64LE appends v to dst in little-endian byte order.
func AppendU64LE(dst []byte, v uint64) []byte {
	return append(dst,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56),
	)
}

// AppendU16BE appends v to dst in network byte order.
func AppendU16BE(dst []byte, v uint16) []byte {
	return append(dst, byte(v>>8), byte(v))
}

// AppendU32BE appends v to dst in network byte order.
func AppendU32BE(dst []byte, v uint32) []byte {
	return append(dst,
		byte(v>>24),
		byte(v>>16),
		byte(v>>8),
		byte(v),
	)
}

// AppendU64BE appends v to dst in network byte order.
func AppendU64BE(dst []byte, v uint64) []byte {
	dst = AppendU32BE(dst, uint32(v>>32))
	return AppendU32BE(dst, uint32(v))
}
