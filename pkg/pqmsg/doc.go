// Package pqmsg implements the message buffer used to build and parse
// PostgreSQL-protocol payloads exchanged with the storage service.
//
// A Buffer is a growable byte sequence with a read cursor. Outgoing messages
// are built with the Send* methods, which only append. Incoming messages are
// wrapped with FromBytes and consumed with the Get* methods, which advance the
// cursor.
//
// Two byte orders are in play:
//   - Standard protocol fields (GetInt16/32/64, SendInt16/32/64) use network
//     order, as libpq does.
//   - Fields copied from in-memory C structs on the wire (GetInt32LE,
//     GetInt64LE, SendInt32LE, SendInt64LE) are little-endian.
//
// Guarantees:
//   - A read never goes past the end of the buffer. A short read returns an
//     error wrapping ErrInsufficientData and leaves the cursor where it was.
//   - Encodings are produced with explicit shifts, never by reinterpreting
//     memory, so output is identical on every architecture.
//   - A Buffer is owned by its caller and is not safe for concurrent use.
package pqmsg
