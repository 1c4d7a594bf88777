package zstream

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// compressibleData builds a payload with enough repetition to compress well
// but enough variation to exercise real codec work. Deterministic per seed.
func compressibleData(size int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, size)
	for i := range data {
		if i%8 < 6 {
			data[i] = byte(i % 199)
		} else {
			data[i] = byte(rng.Intn(256))
		}
	}

	return data
}

// randomData builds an effectively incompressible payload.
func randomData(size int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, size)
	rng.Read(data)

	return data
}

// chunks splits data into pieces of at most chunkSize bytes.
func chunks(data []byte, chunkSize int) [][]byte {
	var out [][]byte
	for pos := 0; pos < len(data); pos += chunkSize {
		end := pos + chunkSize
		if end > len(data) {
			end = len(data)
		}
		out = append(out, data[pos:end])
	}

	return out
}

// compressStream feeds data through a CompressSession in chunkSize pieces
// and returns the complete frame.
func compressStream(t *testing.T, data []byte, chunkSize int, opts ...CompressOption) []byte {
	t.Helper()

	session, err := NewCompressSession(opts...)
	require.NoError(t, err)
	defer session.Close()

	var frame []byte
	for _, chunk := range chunks(data, chunkSize) {
		out, err := session.Compress(chunk)
		require.NoError(t, err)
		frame = append(frame, out...)
	}

	tail, err := session.Finish()
	require.NoError(t, err)

	return append(frame, tail...)
}

// decompressStream feeds a frame through a DecompressSession in chunkSize
// pieces and returns the reassembled payload.
func decompressStream(t *testing.T, frame []byte, chunkSize int) []byte {
	t.Helper()

	session, err := NewDecompressSession()
	require.NoError(t, err)
	defer session.Close()

	var data []byte
	for _, chunk := range chunks(frame, chunkSize) {
		out, err := session.Uncompress(chunk)
		require.NoError(t, err)
		data = append(data, out...)
	}

	tail, err := session.Finish()
	require.NoError(t, err)

	return append(data, tail...)
}
