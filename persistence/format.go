package persistence

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies sieve snapshot files (ASCII: "SVE1").
	MagicNumber = 0x53564531
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidCompression = errors.New("unknown compression type")
)

// FileHeader is the fixed 32-byte header at the start of every snapshot.
type FileHeader struct {
	Magic           uint32 // 0x53564531 ("SVE1")
	Version         uint32 // File format version
	Compression     uint8  // CompressionType of the payload
	Padding         [3]byte
	ItemCount       uint32  // Number of stored items
	UncompressedLen uint32  // Payload size before compression
	PayloadLen      uint32  // Payload size as stored
	Checksum        uint32  // CRC32 (IEEE) of the stored payload
	Reserved        [8]byte // Future use
}

// ChecksumMismatchError is returned when snapshot verification fails.
// CRC32 detects accidental corruption only; it is not tamper-proof.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch reports whether err is a checksum mismatch.
func IsChecksumMismatch(err error) bool {
	var cm *ChecksumMismatchError
	return errors.As(err, &cm)
}
