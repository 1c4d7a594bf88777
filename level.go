package zstream

import "strconv"

// Level selects the Zstandard compression ratio/speed trade-off.
//
// Valid levels span LevelMin..LevelMax on the standard Zstandard scale.
// Higher levels compress better and run slower.
type Level int

const (
	// LevelFastest favors throughput over ratio.
	LevelFastest Level = 1
	// LevelDefault balances compression ratio and speed.
	LevelDefault Level = 3
	// LevelMax yields the best compression ratio at the highest CPU cost.
	LevelMax Level = 22
	// LevelMin is the lowest valid level.
	LevelMin Level = LevelFastest
)

// Valid reports whether the level is within the supported range.
func (l Level) Valid() bool {
	return l >= LevelMin && l <= LevelMax
}

// String returns a human-readable representation of the level.
func (l Level) String() string {
	return "zstd-" + strconv.Itoa(int(l))
}
