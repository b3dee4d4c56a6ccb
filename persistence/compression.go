package persistence

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm used for the payload.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD CompressionType = 2
)

func (ct CompressionType) String() string {
	switch ct {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(ct))
	}
}

// ZSTD encoder/decoder pools for efficiency.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// compress returns the stored form of payload. For LZ4, an incompressible
// payload falls back to CompressionNone, mirroring the block convention of
// lz4.CompressBlock returning 0.
func compress(payload []byte, ct CompressionType) ([]byte, CompressionType, error) {
	switch ct {
	case CompressionNone:
		return payload, CompressionNone, nil
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(payload)))
		var c lz4.Compressor
		n, err := c.CompressBlock(payload, buf)
		if err != nil {
			return nil, ct, err
		}
		if n == 0 || n >= len(payload) {
			// Incompressible; store raw.
			return payload, CompressionNone, nil
		}
		return buf[:n], CompressionLZ4, nil
	case CompressionZSTD:
		enc := getZstdEncoder()
		out := enc.EncodeAll(payload, nil)
		zstdEncoderPool.Put(enc)
		return out, CompressionZSTD, nil
	default:
		return nil, ct, fmt.Errorf("%w: %d", ErrInvalidCompression, ct)
	}
}

// decompress restores a stored payload to uncompressedLen bytes.
func decompress(stored []byte, ct CompressionType, uncompressedLen int) ([]byte, error) {
	switch ct {
	case CompressionNone:
		return stored, nil
	case CompressionLZ4:
		out := make([]byte, uncompressedLen)
		n, err := lz4.UncompressBlock(stored, out)
		if err != nil {
			return nil, err
		}
		return out[:n], nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		out, err := dec.DecodeAll(stored, make([]byte, 0, uncompressedLen))
		zstdDecoderPool.Put(dec)
		return out, err
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, ct)
	}
}
