// Package keylock serializes work per string key over a fixed set of mutexes.
package keylock

import (
	"hash/maphash"
	"sync"
)

// DefaultStripes is the stripe count used when New is given n <= 0.
const DefaultStripes = 64

// Striped maps each key onto one of n mutexes. Two keys may share a stripe, so a
// holder must never wait on another key while holding one, except through LockPair.
type Striped struct {
	seed    maphash.Seed
	stripes []sync.Mutex
}

func New(n int) *Striped {
	if n <= 0 {
		n = DefaultStripes
	}
	return &Striped{seed: maphash.MakeSeed(), stripes: make([]sync.Mutex, n)}
}

func (s *Striped) index(key string) int {
	return int(maphash.String(s.seed, key) % uint64(len(s.stripes)))
}

// Lock blocks until key's stripe is held and returns its release func.
func (s *Striped) Lock(key string) (unlock func()) {
	mu := &s.stripes[s.index(key)]
	mu.Lock()
	return mu.Unlock
}

// LockPair holds the stripes of both keys, taking them in index order.
func (s *Striped) LockPair(a, b string) (unlock func()) {
	i, j := s.index(a), s.index(b)
	if i == j {
		return s.Lock(a)
	}
	if i > j {
		i, j = j, i
	}
	first, second := &s.stripes[i], &s.stripes[j]
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
