// Package neon defines the identifiers and WAL positions carried in messages
// between compute nodes and the storage service.
//
// IDs travel as 32-character hex strings in connection strings and GUCs, and
// as 16 raw bytes inside messages. LSNs are written as "X/X" in text and as
// little-endian uint64 values on the wire.
package neon
