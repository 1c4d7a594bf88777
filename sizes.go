package zstream

// maxBlockSize is the Zstandard maximum block size (128 KiB). The
// recommended streaming buffer sizes derive from it, matching libzstd's
// ZSTD_CStreamInSize/ZSTD_DStreamOutSize queries.
const maxBlockSize = 128 << 10

// maxOneShotContentSize caps the output allocation Uncompress will perform
// from a frame's declared content size. Declared sizes at or above the cap
// are treated as corruption rather than honored (prevents memory exhaustion
// from a hostile header), and anything below it fits a 32-bit int.
const maxOneShotContentSize = 1 << 31

// CompressBound returns the maximum compressed size for an input of
// srcSize bytes, including all frame overhead. Mirrors libzstd's
// ZSTD_compressBound formula.
func CompressBound(srcSize int) int {
	margin := 0
	if srcSize < maxBlockSize {
		margin = (maxBlockSize - srcSize) >> 11
	}

	return srcSize + (srcSize >> 8) + margin
}

// RecommendedCompressInSize returns the preferred chunk size to feed into a
// CompressSession. Larger chunks are accepted; the session splits them into
// steps of this size internally.
func RecommendedCompressInSize() int {
	return maxBlockSize
}

// RecommendedCompressOutSize returns the output buffer size a
// CompressSession uses per step: large enough to hold a full compressed
// block in one pass.
func RecommendedCompressOutSize() int {
	return CompressBound(maxBlockSize)
}

// RecommendedDecompressInSize returns the preferred chunk size to feed into
// a DecompressSession.
func RecommendedDecompressInSize() int {
	return maxBlockSize
}

// RecommendedDecompressOutSize returns the output buffer size a
// DecompressSession drains decompressed data through per step.
func RecommendedDecompressOutSize() int {
	return maxBlockSize
}
