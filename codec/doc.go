// Package codec provides runtime-selectable one-shot compression over
// complete payloads.
//
// The root zstream package is the right tool when the algorithm is fixed
// (Zstandard) or when input arrives incrementally. This package serves
// callers that pick an algorithm per payload (for example from a stored
// header byte) and want a uniform interface over it.
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Algorithms
//
//   - TypeNone: passthrough, zero overhead
//   - TypeZstd: best ratio, moderate speed (delegates to the root package)
//   - TypeS2: balanced ratio and speed
//   - TypeLZ4: block format, very fast decompression
//
// Select via the factory:
//
//	c, err := codec.New(codec.TypeZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := c.Compress(payload)
//
// All implementations treat empty input as a no-op returning nil. All are
// safe for concurrent use.
package codec
