package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uniform returns a pseudo-random number in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rand.Float64()*(hi-lo)
}

// Reflections is one synthetic still: the source arrays a container is built from.
type Reflections struct {
	HKL         [][3]int32
	I           []float64
	VarI        []float64
	ID          []int32
	XYZ         [][3]float64
	GlobalIndex []int32
	Identifiers map[int]string
}

// Len returns the number of reflections.
func (r *Reflections) Len() int { return len(r.I) }

// Reflections generates n reflections spread over nexpt experiments. Local
// ids are sorted and identifiers are named "experiment<k+shotStart>";
// global indices start at globalStart.
func (r *RNG) Reflections(n, nexpt, shotStart int, globalStart int32) *Reflections {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := &Reflections{
		HKL:         make([][3]int32, n),
		I:           make([]float64, n),
		VarI:        make([]float64, n),
		ID:          make([]int32, n),
		XYZ:         make([][3]float64, n),
		GlobalIndex: make([]int32, n),
		Identifiers: make(map[int]string, nexpt),
	}
	for i := range n {
		for j := range 3 {
			out.HKL[i][j] = int32(r.rand.Intn(200) - 100)
			out.XYZ[i][j] = -1000 + 2000*r.rand.Float64()
		}
		out.I[i] = -500 + 1000*r.rand.Float64()
		out.VarI[i] = 1000*r.rand.Float64() + 1e-6
		// contiguous blocks of equal ids
		out.ID[i] = int32(i * nexpt / max(n, 1))
		out.GlobalIndex[i] = globalStart + int32(i)
	}
	for k := range nexpt {
		out.Identifiers[k] = experimentName(k + shotStart)
	}
	return out
}

// Still lays the reflections out the way a DIALS reflection file does,
// including a shoebox column of a type readers do not decode.
func (r *Reflections) Still() *Still {
	return NewStill(r.Len()).
		Identifiers(r.Identifiers).
		MillerIndex("miller_index", r.HKL).
		Float64("intensity.sum.value", r.I).
		Float64("intensity.sum.variance", r.VarI).
		Int32("id", r.ID).
		Vec3("xyz", r.XYZ).
		Int32("global_refl_index", r.GlobalIndex).
		Raw("shoebox", "Shoebox<>", r.Len(), make([]byte, 3*r.Len()))
}
