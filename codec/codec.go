package codec

import "fmt"

// Type identifies a compression algorithm.
type Type uint8

const (
	// TypeNone represents no compression.
	TypeNone Type = 0x1
	// TypeZstd represents Zstandard compression.
	TypeZstd Type = 0x2
	// TypeS2 represents S2 compression.
	TypeS2 Type = 0x3
	// TypeLZ4 represents LZ4 block compression.
	TypeLZ4 Type = 0x4
)

// String returns the algorithm name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a complete payload in one call.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete payload in one call.
//
// The input must have been produced by the matching Compressor; corrupted
// or mismatched data returns an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// New creates a Codec for the given algorithm type.
func New(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NewNoOpCodec(), nil
	case TypeZstd:
		return NewZstdCodec(), nil
	case TypeS2:
		return NewS2Codec(), nil
	case TypeLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %s", t)
	}
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCodec(),
	TypeZstd: NewZstdCodec(),
	TypeS2:   NewS2Codec(),
	TypeLZ4:  NewLZ4Codec(),
}

// Get retrieves a shared built-in Codec for the given algorithm type.
func Get(t Type) (Codec, error) {
	if c, ok := builtinCodecs[t]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
