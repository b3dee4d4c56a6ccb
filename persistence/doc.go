// Package persistence provides the binary snapshot format for sieves.
//
// A snapshot carries the solved grid and every stored item, with a
// fixed-size header (magic, version, compression type, CRC32 checksum)
// followed by an optionally compressed payload. Restoring a snapshot
// re-inserts items through the raw path: they were validated when first
// admitted, so the admissibility check is not repeated.
package persistence
