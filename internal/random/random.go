// Package random provides the index source used wherever the studio picks
// one of several templates.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Source returns an index in [0, n) for n > 0.
type Source interface {
	Intn(n int) int
}

// Seeded is a pseudo-random Source safe for concurrent use.
type Seeded struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// NewSeeded creates a seeded Source. A zero seed is replaced by a fresh one.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			s = time.Now().UnixNano()
		}
		seed = s
	}
	return &Seeded{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed reports the seed in use, for reproducing a run.
func (s *Seeded) Seed() int64 { return s.seed }

func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Fixed always picks the same index, wrapped into range.
type Fixed int

func (f Fixed) Intn(n int) int {
	return Index(int(f), n)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Index folds any i into [0, n). n must be positive.
func Index(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
