//go:build !cgo

package zstream

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// oneShotEncoders caches one stateless encoder per compression level.
// EncodeAll is documented as safe for concurrent use on a shared encoder,
// so a single cached instance serves all callers at that level.
var (
	oneShotEncoders   = make(map[Level]*zstd.Encoder)
	oneShotEncodersMu sync.Mutex
)

// oneShotDecoderPool pools decoders for reuse to eliminate allocation
// overhead. The klauspost/compress/zstd decoder is explicitly designed for
// reuse: it operates without allocations after a warmup.
var oneShotDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

func encoderForLevel(level Level) (*zstd.Encoder, error) {
	oneShotEncodersMu.Lock()
	defer oneShotEncodersMu.Unlock()

	if enc, ok := oneShotEncoders[level]; ok {
		return enc, nil
	}

	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(int(level))),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, err
	}
	oneShotEncoders[level] = enc

	return enc, nil
}

func compressOneShot(data []byte, level Level) ([]byte, error) {
	enc, err := encoderForLevel(level)
	if err != nil {
		return nil, engineError("compression context init", err)
	}

	// EncodeAll appends into the pre-sized destination, so the single call
	// below never reallocates: CompressBound covers any input of this
	// length including frame overhead.
	dst := make([]byte, 0, CompressBound(len(data)))

	return enc.EncodeAll(data, dst), nil
}

func decompressOneShot(data []byte, contentSize int) ([]byte, error) {
	decoder, _ := oneShotDecoderPool.Get().(*zstd.Decoder)
	defer oneShotDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, make([]byte, 0, contentSize))
	if err != nil {
		return nil, engineError("decompress", err)
	}

	return out, nil
}
