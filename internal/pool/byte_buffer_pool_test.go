package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(64)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 64)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = bb.Write([]byte(" world"))
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, 11, bb.Len())

	capBefore := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap(), "Reset must retain allocated memory")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, err := bb.Write([]byte("stream data"))
	require.NoError(t, err)

	var sink bytes.Buffer
	n, err := bb.WriteTo(&sink)
	require.NoError(t, err)
	require.Equal(t, int64(11), n)
	require.Equal(t, "stream data", sink.String())
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	_, err := bb.Write([]byte("payload"))
	require.NoError(t, err)

	p.Put(bb)

	got := p.Get()
	require.NotNil(t, got)
	require.Equal(t, 0, got.Len(), "pooled buffers must come back empty")
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	_, err := bb.Write(make([]byte, 256))
	require.NoError(t, err)
	require.Greater(t, bb.Cap(), 64)

	// Must not panic; the oversized buffer is simply dropped.
	p.Put(bb)
	p.Put(nil)

	got := p.Get()
	require.NotNil(t, got)
	require.Equal(t, 0, got.Len())
}

func TestStreamBufferDefaults(t *testing.T) {
	bb := GetStreamBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), StreamBufferDefaultSize)
	PutStreamBuffer(bb)
}
