package grid

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Source is the shared pseudo-random stream spawns draw from.
// *frand.RNG satisfies it; tests may plug in a scripted sequence.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic stream for a non-zero seed and an
// entropy-seeded one for seed 0.
func NewSource(seed int64) Source {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return frand.NewCustom(key[:], 1024, 12)
}
