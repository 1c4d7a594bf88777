package codec

// NoOpCodec passes payloads through unchanged.
//
// Useful as a baseline for benchmarks and for payloads that are already
// compressed or incompressible.
//
// Both directions return the input slice as-is without copying, so the
// result shares memory with the input.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a passthrough codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input unchanged.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input unchanged.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
