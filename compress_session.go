package zstream

import (
	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/zstream/internal/options"
	"github.com/arloliu/zstream/internal/pool"
)

type compressConfig struct {
	level Level
}

// CompressOption is a functional option for configuring a CompressSession.
type CompressOption = options.Option[*compressConfig]

// WithLevel sets the compression level for the session.
//
// The level is validated when the option is applied, before any codec
// context is allocated; an out-of-range level fails session construction
// with ErrInvalidLevel.
func WithLevel(level Level) CompressOption {
	return options.New(func(cfg *compressConfig) error {
		if !level.Valid() {
			return invalidLevelError(level)
		}
		cfg.level = level

		return nil
	})
}

// CompressSession is an incremental Zstandard compressor.
//
// It owns exactly one codec compression context and one reusable sink
// buffer; both are released exactly once, by Finish or Close. The
// concatenation of every slice returned by Compress, Flush and Finish
// forms one complete Zstandard frame.
//
// A CompressSession is not safe for concurrent use: the context and sink
// are mutated in place on every call.
type CompressSession struct {
	enc   *zstd.Encoder    // nil once the session is released
	sink  *pool.ByteBuffer // compressed output lands here between drains
	level Level
	wrote bool // true once any input byte reached the codec
}

// NewCompressSession creates a streaming compression session.
//
// The session compresses at LevelDefault unless WithLevel overrides it.
// Construction fails with ErrInvalidLevel before any codec context is
// allocated, or with a codec error if context initialization fails; no
// resources leak on a failed construction.
func NewCompressSession(opts ...CompressOption) (*CompressSession, error) {
	cfg := &compressConfig{level: LevelDefault}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	sink := pool.GetStreamBuffer()
	// WithZeroFrames makes zero-byte input encode as a complete frame, so
	// an input-less session can still emit a valid empty frame at Finish.
	enc, err := zstd.NewWriter(sink,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(int(cfg.level))),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		pool.PutStreamBuffer(sink)
		return nil, engineError("compression context init", err)
	}

	return &CompressSession{enc: enc, sink: sink, level: cfg.level}, nil
}

// Level returns the compression level the session was created with.
func (s *CompressSession) Level() Level {
	return s.level
}

// Compress feeds one input chunk through the codec and returns the
// compressed bytes emitted for it.
//
// The chunk is consumed completely: the session steps through it in
// RecommendedCompressInSize pieces, draining the sink after each step. The
// returned slice may be empty while the codec buffers input internally.
// On a codec error the session stops immediately and returns the error.
func (s *CompressSession) Compress(chunk []byte) ([]byte, error) {
	if s.enc == nil {
		return nil, ErrSessionClosed
	}
	if len(chunk) == 0 {
		return nil, nil
	}
	s.wrote = true

	// Reserve roughly half the input size: the number of codec steps is
	// unknown up front and repeated small appends would reallocate
	// quadratically otherwise.
	result := make([]byte, 0, len(chunk)/2+64)
	step := RecommendedCompressInSize()

	for pos := 0; pos < len(chunk); {
		end := pos + step
		if end > len(chunk) {
			end = len(chunk)
		}

		n, err := s.enc.Write(chunk[pos:end])
		if err != nil {
			return nil, engineError("compress", err)
		}
		pos += n
		result = s.drainInto(result)
	}

	return result, nil
}

// Flush forces the codec to emit all buffered compressed data without
// ending the frame. Compression may continue afterward; flushing never
// corrupts the frame.
func (s *CompressSession) Flush() ([]byte, error) {
	if s.enc == nil {
		return nil, ErrSessionClosed
	}

	if err := s.enc.Flush(); err != nil {
		return nil, engineError("flush", err)
	}

	return s.takeSink(), nil
}

// Finish ends the frame, emitting the epilogue and checksum, and releases
// the codec context and sink. The codec is drained completely before
// returning, so the returned slice always terminates the frame.
//
// Calling Finish again after the session is released is a no-op returning
// (nil, nil).
func (s *CompressSession) Finish() ([]byte, error) {
	if s.enc == nil {
		return nil, nil
	}

	var tail []byte
	if s.wrote {
		err := s.enc.Close()
		tail = s.takeSink()
		s.release()
		if err != nil {
			return nil, engineError("finish", err)
		}

		return tail, nil
	}

	// No input ever reached the codec, so the streaming path has no frame
	// to terminate and closing it emits nothing. Encode zero bytes as a
	// complete empty frame instead; it decompresses to empty output.
	tail = s.enc.EncodeAll(nil, nil)
	err := s.enc.Close()
	s.release()
	if err != nil {
		return nil, engineError("finish", err)
	}

	return tail, nil
}

// Close abandons the session without returning output, releasing the codec
// context and sink exactly once. It is idempotent and safe to defer
// alongside an explicit Finish.
func (s *CompressSession) Close() error {
	if s.enc == nil {
		return nil
	}

	err := s.enc.Close()
	s.release()
	if err != nil {
		return engineError("close", err)
	}

	return nil
}

// drainInto appends the sink contents to dst and resets the sink for the
// next codec step.
func (s *CompressSession) drainInto(dst []byte) []byte {
	if s.sink.Len() == 0 {
		return dst
	}
	dst = append(dst, s.sink.Bytes()...)
	s.sink.Reset()

	return dst
}

// takeSink copies the sink contents out and resets it. The copy is required
// because the sink returns to the pool while the result is caller-owned.
func (s *CompressSession) takeSink() []byte {
	if s.sink.Len() == 0 {
		return nil
	}
	out := append([]byte(nil), s.sink.Bytes()...)
	s.sink.Reset()

	return out
}

func (s *CompressSession) release() {
	pool.PutStreamBuffer(s.sink)
	s.sink = nil
	s.enc = nil
}
