package zstream

import (
	"bytes"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestDecompressSession_RoundTrip_ChunkBoundaries(t *testing.T) {
	payload := compressibleData(1<<20, 20)
	frame, err := Compress(payload)
	require.NoError(t, err)

	for _, chunkSize := range []int{1, 13, 4096, 128 * 1024, len(frame)} {
		restored := decompressStream(t, frame, chunkSize)
		require.True(t, bytes.Equal(payload, restored), "chunk size %d", chunkSize)
	}
}

func TestDecompressSession_LargeRandomPayload(t *testing.T) {
	payload := randomData(4<<20, 21)
	want := xxhash.Sum64(payload)

	frame := compressStream(t, payload, 256*1024)

	restored := decompressStream(t, frame, 64*1024)
	require.Equal(t, len(payload), len(restored))
	require.Equal(t, want, xxhash.Sum64(restored))
}

func TestDecompressSession_MultiFrame(t *testing.T) {
	first := compressibleData(32*1024, 22)
	second := compressibleData(48*1024, 23)

	frameA, err := Compress(first)
	require.NoError(t, err)
	frameB, err := Compress(second)
	require.NoError(t, err)

	// Frames written back to back decode as one continuous stream.
	stream := append(append([]byte(nil), frameA...), frameB...)
	restored := decompressStream(t, stream, 4096)
	require.True(t, bytes.Equal(append(append([]byte(nil), first...), second...), restored))
}

func TestDecompressSession_Flush(t *testing.T) {
	session, err := NewDecompressSession()
	require.NoError(t, err)
	defer session.Close()

	out, err := session.Flush()
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecompressSession_TruncatedFrame(t *testing.T) {
	frame, err := Compress(compressibleData(256*1024, 24))
	require.NoError(t, err)

	session, err := NewDecompressSession()
	require.NoError(t, err)
	defer session.Close()

	// Feeding only half the frame cannot fail yet; the codec is simply
	// waiting for more input. The truncation surfaces at Finish.
	var feedErr error
	for _, chunk := range chunks(frame[:len(frame)/2], 8192) {
		if _, feedErr = session.Uncompress(chunk); feedErr != nil {
			break
		}
	}

	_, finErr := session.Finish()
	require.True(t, feedErr != nil || finErr != nil, "a truncated frame must be reported")
}

func TestDecompressSession_GarbageInput(t *testing.T) {
	session, err := NewDecompressSession()
	require.NoError(t, err)
	defer session.Close()

	_, feedErr := session.Uncompress([]byte("definitely not a zstd frame, not even close"))
	_, finErr := session.Finish()
	require.True(t, feedErr != nil || finErr != nil, "garbage input must be reported")
}

func TestDecompressSession_ErrorSticks(t *testing.T) {
	session, err := NewDecompressSession()
	require.NoError(t, err)
	defer session.Close()

	// Large garbage payloads guarantee the codec trips while input is
	// still being fed, so the error surfaces on Uncompress itself.
	garbage := randomData(1<<20, 25)
	var feedErr error
	for _, chunk := range chunks(garbage, 4096) {
		if _, feedErr = session.Uncompress(chunk); feedErr != nil {
			break
		}
	}
	require.Error(t, feedErr)

	_, err = session.Uncompress([]byte("more"))
	require.Error(t, err, "the session must stay failed after a codec error")
}

func TestDecompressSession_FinishTwice(t *testing.T) {
	frame, err := Compress([]byte("short payload"))
	require.NoError(t, err)

	session, err := NewDecompressSession()
	require.NoError(t, err)

	out, err := session.Uncompress(frame)
	require.NoError(t, err)

	tail, err := session.Finish()
	require.NoError(t, err)
	require.Equal(t, []byte("short payload"), append(out, tail...))

	again, err := session.Finish()
	require.NoError(t, err)
	require.Nil(t, again)
}

func TestDecompressSession_UseAfterFinish(t *testing.T) {
	session, err := NewDecompressSession()
	require.NoError(t, err)

	_, err = session.Finish()
	require.NoError(t, err)

	_, err = session.Uncompress([]byte("late"))
	require.ErrorIs(t, err, ErrSessionClosed)
}

func TestDecompressSession_CloseWithoutFinish(t *testing.T) {
	frame, err := Compress(compressibleData(64*1024, 26))
	require.NoError(t, err)

	session, err := NewDecompressSession()
	require.NoError(t, err)

	_, err = session.Uncompress(frame[:len(frame)/2])
	require.NoError(t, err)

	require.NoError(t, session.Close())
	require.NoError(t, session.Close(), "second close must be a no-op")

	_, err = session.Uncompress([]byte("late"))
	require.ErrorIs(t, err, ErrSessionClosed)
}
