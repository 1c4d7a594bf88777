// Package zstream provides a high-level API over the Zstandard compression
// codec: one-shot compress/uncompress helpers and incremental streaming
// sessions that hide buffer management from the caller.
//
// # One-Shot API
//
// The one-shot functions compress or decompress a complete payload in a
// single call:
//
//	compressed, err := zstream.Compress(data)
//	if err != nil {
//	    return err
//	}
//
//	original, err := zstream.Uncompress(compressed)
//	if err != nil {
//	    return err
//	}
//
// One-shot compression writes the original content size into the frame
// header, so Uncompress can allocate the exact output size up front.
// Uncompress refuses frames that do not declare a content size (streaming
// sessions omit it once a frame spans multiple blocks or gets flushed) and
// returns ErrUnknownContentSize; use a DecompressSession for those.
//
// # Streaming Sessions
//
// Sessions carry the codec's state across calls so that input can arrive in
// arbitrary chunks. A session owns exactly one codec context and one
// reusable output buffer; both are released exactly once, either by Finish
// or by Close.
//
//	session, err := zstream.NewCompressSession(zstream.WithLevel(zstream.LevelMax))
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
//
//	var frame []byte
//	for _, chunk := range chunks {
//	    out, err := session.Compress(chunk)
//	    if err != nil {
//	        return err
//	    }
//	    frame = append(frame, out...)
//	}
//	tail, err := session.Finish()
//	if err != nil {
//	    return err
//	}
//	frame = append(frame, tail...)
//
// The concatenation of every slice returned by Compress, Flush and Finish is
// a complete Zstandard frame. Decompression is symmetric:
//
//	session, err := zstream.NewDecompressSession()
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
//
//	var original []byte
//	for _, chunk := range frameChunks {
//	    out, err := session.Uncompress(chunk)
//	    if err != nil {
//	        return err
//	    }
//	    original = append(original, out...)
//	}
//	tail, err := session.Finish()
//	if err != nil {
//	    return err
//	}
//	original = append(original, tail...)
//
// # Compression Levels
//
// Levels follow the Zstandard scale from LevelMin (1) to LevelMax (22), with
// LevelDefault (3) balancing ratio and speed and LevelFastest (1) favoring
// throughput. Levels are validated before any codec context is allocated.
//
// # Concurrency
//
// The one-shot functions are safe for concurrent use. Sessions are not:
// each session mutates its codec context and buffer in place and must be
// confined to one goroutine or guarded by external locking.
//
// For runtime-selectable algorithms (Zstd, S2, LZ4, none) over complete
// payloads, see the codec subpackage.
package zstream
