package zstream

import (
	"github.com/klauspost/compress/zstd"
)

// Compress compresses data in a single call at LevelDefault.
//
// The returned slice is newly allocated and owned by the caller. Empty
// input returns nil without invoking the codec.
func Compress(data []byte) ([]byte, error) {
	return CompressLevel(data, LevelDefault)
}

// CompressLevel compresses data in a single call at the given level.
//
// The output capacity is computed up front via CompressBound, so the codec
// writes the whole frame in one pass; the result is truncated to the bytes
// actually written and never exceeds the bound. Either a complete frame or
// an error is returned, never a partial result.
func CompressLevel(data []byte, level Level) ([]byte, error) {
	if !level.Valid() {
		return nil, invalidLevelError(level)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return compressOneShot(data, level)
}

// Uncompress decompresses a frame produced by Compress or CompressLevel in
// a single call.
//
// The frame header must declare the original content size; the output
// buffer is allocated to exactly that size before the single decompress
// call. Frames without a declared content size (multi-block or flushed
// streaming frames) fail with ErrUnknownContentSize before any output
// allocation happens. Empty input returns nil.
func Uncompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return nil, engineError("frame header decode", err)
	}
	if !header.HasFCS {
		return nil, ErrUnknownContentSize
	}
	if header.FrameContentSize >= maxOneShotContentSize {
		return nil, ErrContentSizeTooLarge
	}

	return decompressOneShot(data, int(header.FrameContentSize))
}
