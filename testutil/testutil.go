package testutil

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
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
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Intn returns a pseudo-random number in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Shuffled returns 0..n-1 in random order.
func (r *RNG) Shuffled(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// UniformInts returns n values drawn uniformly from [0, maxVal).
// Duplicates are likely when n approaches maxVal.
func (r *RNG) UniformInts(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := make([]int, n)
	for i := range values {
		values[i] = r.rand.Intn(maxVal)
	}
	return values
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfInts returns n values in [0, distinct) with a Zipfian skew, so a few
// values repeat heavily. Useful for duplicate-heavy workloads.
func (r *RNG) ZipfInts(n, distinct int, s float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := make([]int, n)
	for i := range values {
		values[i] = r.zipfLocked(distinct, s)
	}
	return values
}

// Ascending returns 0..n-1.
func Ascending(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}

// Descending returns n-1..0.
func Descending(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = n - 1 - i
	}
	return values
}

// Sorted returns a sorted copy of values; the reference order for
// order-statistic checks.
func Sorted[T cmp.Ordered](values []T) []T {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted
}

// AVLHeightBound returns the maximum height of an AVL tree holding n nodes,
// 1.4405·log2(n+2) − 0.3277.
func AVLHeightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}
