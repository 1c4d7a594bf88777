package codec

import (
	"github.com/arloliu/zstream"
)

// ZstdCodec compresses payloads with Zstandard via the root zstream
// one-shot API. Frames carry the original content size, so decompression
// allocates the exact output size up front.
type ZstdCodec struct {
	level zstream.Level
}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstandard codec at the default level.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{level: zstream.LevelDefault}
}

// NewZstdCodecLevel creates a Zstandard codec at the given level. The level
// is validated on the first Compress call.
func NewZstdCodecLevel(level zstream.Level) ZstdCodec {
	return ZstdCodec{level: level}
}

// Compress compresses the payload with Zstandard.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return zstream.CompressLevel(data, c.level)
}

// Decompress decompresses a Zstandard frame produced by Compress.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	return zstream.Uncompress(data)
}
