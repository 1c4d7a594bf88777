package zstream

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevel is returned when a compression level is outside the
	// LevelMin..LevelMax range. It is reported before any codec context is
	// allocated.
	ErrInvalidLevel = errors.New("invalid compression level")

	// ErrUnknownContentSize is returned by Uncompress when the compressed
	// frame does not declare its original content size. A streaming
	// session omits it whenever the frame spans more than one block or was
	// flushed mid-stream; decompress such frames with a DecompressSession.
	ErrUnknownContentSize = errors.New("compressed frame does not declare its content size, use DecompressSession")

	// ErrSessionClosed is returned by session operations after the session
	// has been finished or closed.
	ErrSessionClosed = errors.New("session already finished")

	// ErrContentSizeTooLarge is returned by Uncompress when the declared
	// content size exceeds the one-shot safety limit. Likely corrupted data.
	ErrContentSizeTooLarge = errors.New("declared content size exceeds one-shot limit")
)

// engineError wraps a codec failure with the operation that triggered it.
// Every codec call checks its error immediately; nothing continues past a
// failed call.
func engineError(op string, err error) error {
	return fmt.Errorf("zstd %s failed: %w", op, err)
}

func invalidLevelError(level Level) error {
	return fmt.Errorf("%w: %d (valid range %d..%d)", ErrInvalidLevel, level, LevelMin, LevelMax)
}
