package persistence

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"

	"github.com/hupe1980/sievego/cellmask"
	"github.com/hupe1980/sievego/sieve"
	"github.com/hupe1980/sievego/sudoku"
)

// byteOrder is little endian, native on x86/ARM.
var byteOrder = binary.LittleEndian

// itemBytes is the stored size of one item: two uint64 words.
const itemBytes = 16

// Snapshot is the decoded content of a snapshot file.
type Snapshot struct {
	Grid  *sudoku.Grid
	Items []cellmask.Mask
}

// WriteSnapshot serializes the sieve to w using the given payload
// compression.
func WriteSnapshot(w io.Writer, s *sieve.Sieve, ct CompressionType) error {
	items := s.Items()

	payload := make([]byte, 0, cellmask.Cells+len(items)*itemBytes)
	digits := s.Config().Digits()
	payload = append(payload, digits[:]...)
	for _, item := range items {
		payload = byteOrder.AppendUint64(payload, item[0])
		payload = byteOrder.AppendUint64(payload, item[1])
	}

	stored, actual, err := compress(payload, ct)
	if err != nil {
		return err
	}

	header := FileHeader{
		Magic:           MagicNumber,
		Version:         Version,
		Compression:     uint8(actual),
		ItemCount:       uint32(len(items)),
		UncompressedLen: uint32(len(payload)),
		PayloadLen:      uint32(len(stored)),
		Checksum:        crc32.ChecksumIEEE(stored),
	}
	if err := binary.Write(w, byteOrder, &header); err != nil {
		return err
	}
	_, err = w.Write(stored)
	return err
}

// ReadSnapshot decodes a snapshot from r, verifying magic, version and
// checksum.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var header FileHeader
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}

	stored := make([]byte, header.PayloadLen)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, err
	}
	if sum := crc32.ChecksumIEEE(stored); sum != header.Checksum {
		return nil, &ChecksumMismatchError{Expected: header.Checksum, Actual: sum}
	}

	payload, err := decompress(stored, CompressionType(header.Compression), int(header.UncompressedLen))
	if err != nil {
		return nil, err
	}

	want := cellmask.Cells + int(header.ItemCount)*itemBytes
	if len(payload) != want {
		return nil, fmt.Errorf("snapshot payload is %d bytes, want %d", len(payload), want)
	}

	var digits [cellmask.Cells]uint8
	copy(digits[:], payload[:cellmask.Cells])
	grid, err := sudoku.NewGrid(digits)
	if err != nil {
		return nil, err
	}

	items := make([]cellmask.Mask, header.ItemCount)
	off := cellmask.Cells
	for i := range items {
		items[i][0] = byteOrder.Uint64(payload[off:])
		items[i][1] = byteOrder.Uint64(payload[off+8:])
		off += itemBytes
	}

	return &Snapshot{Grid: grid, Items: items}, nil
}

// Restore rebuilds a sieve from the snapshot. Items re-enter through the
// raw path; they were validated at original admission.
func (snap *Snapshot) Restore(logger *slog.Logger) (*sieve.Sieve, error) {
	s, err := sieve.New(snap.Grid, nil, func(o *sieve.Options) {
		o.Logger = logger
	})
	if err != nil {
		return nil, err
	}
	for _, item := range snap.Items {
		s.RawAdd(item)
	}
	return s, nil
}
