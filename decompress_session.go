package zstream

import (
	"errors"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// DecompressSession is an incremental Zstandard decompressor.
//
// The codec's decompression context is pull-based, so the session bridges
// it to this push-style API with an in-process pipe and a single drain
// goroutine that collects decompressed bytes as the codec produces them.
// The goroutine exits when the stream ends, the codec fails, or the session
// is closed; the public API stays synchronous and single-caller.
//
// Decompressed output may lag input by one call: bytes fed to Uncompress
// are guaranteed to have been handed back once Finish returns. A
// DecompressSession is not safe for concurrent use.
type DecompressSession struct {
	dec *zstd.Decoder // nil once the session is released
	pw  *io.PipeWriter

	done chan struct{} // closed when the drain goroutine exits
	err  error         // codec error, written before done is closed

	mu      sync.Mutex
	pending []byte // decompressed, not yet returned to the caller
}

// NewDecompressSession creates a streaming decompression session.
//
// Construction fails with a codec error if context initialization fails,
// releasing the pipe so nothing leaks.
func NewDecompressSession() (*DecompressSession, error) {
	pr, pw := io.Pipe()
	dec, err := zstd.NewReader(pr,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		pw.Close()
		pr.Close()

		return nil, engineError("decompression context init", err)
	}

	s := &DecompressSession{
		dec:  dec,
		pw:   pw,
		done: make(chan struct{}),
	}
	go s.drain(pr)

	return s, nil
}

// drain pulls decompressed data out of the codec into the pending
// accumulator until end of stream or codec error. On error the read side of
// the pipe is closed with it, so a blocked or later Uncompress fails fast.
func (s *DecompressSession) drain(pr *io.PipeReader) {
	defer close(s.done)

	buf := make([]byte, RecommendedDecompressOutSize())
	for {
		n, err := s.dec.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.pending = append(s.pending, buf[:n]...)
			s.mu.Unlock()
		}
		if errors.Is(err, io.EOF) {
			pr.Close()
			return
		}
		if err != nil {
			s.err = engineError("decompress", err)
			pr.CloseWithError(err)

			return
		}
	}
}

// Uncompress feeds one chunk of compressed input through the codec and
// returns the decompressed bytes available so far.
//
// The call blocks until the codec has consumed the whole chunk. The
// returned slice may be empty while the codec sits mid-block; remaining
// output is handed back by later calls or by Finish. A codec error fails
// the call immediately.
func (s *DecompressSession) Uncompress(chunk []byte) ([]byte, error) {
	if s.dec == nil {
		return nil, ErrSessionClosed
	}

	if len(chunk) > 0 {
		if _, err := s.pw.Write(chunk); err != nil {
			<-s.done
			if s.err != nil {
				return nil, s.err
			}

			return nil, engineError("decompress", err)
		}
	}

	return s.takePending(), nil
}

// Flush is a no-op returning empty output: decompressed data is emitted as
// it is produced, so there is nothing to force out mid-stream.
func (s *DecompressSession) Flush() ([]byte, error) {
	return nil, nil
}

// Finish signals end of input, releases the codec context, and returns any
// remaining decompressed bytes. A truncated or corrupt frame surfaces here
// as an error. Calling Finish again after the session is released is a
// no-op returning (nil, nil).
func (s *DecompressSession) Finish() ([]byte, error) {
	if s.dec == nil {
		return nil, nil
	}

	s.pw.Close()
	<-s.done
	s.dec.Close()
	s.dec = nil

	tail := s.takePending()
	if s.err != nil {
		return nil, s.err
	}

	return tail, nil
}

// Close abandons the session without returning output, releasing the codec
// context exactly once. It is idempotent and safe to defer alongside an
// explicit Finish.
func (s *DecompressSession) Close() error {
	if s.dec == nil {
		return nil
	}

	s.pw.Close()
	<-s.done
	s.dec.Close()
	s.dec = nil

	return nil
}

func (s *DecompressSession) takePending() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.pending
	s.pending = nil

	return out
}
