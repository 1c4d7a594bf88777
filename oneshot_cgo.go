//go:build cgo

package zstream

import (
	"github.com/valyala/gozstd"
)

// The cgo backend delegates one-shot calls to libzstd itself via gozstd.
// libzstd sizes the output from ZSTD_compressBound internally, so the
// bound-allocate-truncate sequence happens inside the engine.

func compressOneShot(data []byte, level Level) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, int(level)), nil
}

func decompressOneShot(data []byte, contentSize int) ([]byte, error) {
	out, err := gozstd.Decompress(make([]byte, 0, contentSize), data)
	if err != nil {
		return nil, engineError("decompress", err)
	}

	return out, nil
}
