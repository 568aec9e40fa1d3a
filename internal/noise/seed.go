package noise

import "math/rand/v2"

const (
	tableSize = 256
	tableMask = tableSize - 1

	// Second PCG word; fixed so a seed value always yields the same table.
	pcgStream = 0x6a09e667f3bcc908
)

// Seed parameterises every noise function.
//
// Seed holds no Go pointers, so it may be placed in C-allocated memory and
// read from any number of threads at once. It is immutable after Init.
type Seed struct {
	value uint32
	perm  [tableSize * 2]uint8
}

// NewSeed returns a seed initialised from value.
func NewSeed(value uint32) Seed {
	var s Seed
	s.Init(value)
	return s
}

// Init fills s in place. Every byte of s is written, so s may point at
// uninitialised memory.
func (s *Seed) Init(value uint32) {
	s.value = value

	var base [tableSize]uint8
	for i := range base {
		base[i] = uint8(i)
	}
	r := rand.New(rand.NewPCG(uint64(value), pcgStream))
	for i := tableSize - 1; i > 0; i-- {
		j := int(r.Uint64N(uint64(i + 1)))
		base[i], base[j] = base[j], base[i]
	}
	copy(s.perm[:tableSize], base[:])
	copy(s.perm[tableSize:], base[:])
}

// Value returns the integer the seed was built from.
func (s *Seed) Value() uint32 {
	return s.value
}

// hash folds lattice coordinates through the permutation table.
func (s *Seed) hash(cell []int) uint8 {
	h := 0
	for _, c := range cell {
		h = int(s.perm[h+(c&tableMask)])
	}
	return uint8(h)
}

// hashAt re-permutes h with a small salt so one lattice hash can feed
// several independent lookups.
func (s *Seed) hashAt(h uint8, salt int) uint8 {
	return s.perm[int(h)+salt]
}
