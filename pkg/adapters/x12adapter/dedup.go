package x12adapter

import (
	"sync"

	"github.com/dgraph-io/ristretto"
)

const defaultDedupMaxKeys = 100_000

// seenIndex remembers interchange keys in a ristretto cache bounded to max
// entries. Once full, the cache's admission policy decides which keys are
// kept, so a key evicted long ago may be reported as new again.
type seenIndex struct {
	cache *ristretto.Cache
	mu    sync.Mutex
	max   int
}

func newSeenIndex(maxKeys int) (*seenIndex, error) {
	if maxKeys <= 0 {
		maxKeys = defaultDedupMaxKeys
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        int64(maxKeys * 10),
		MaxCost:            int64(maxKeys),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &seenIndex{cache: cache, max: maxKeys}, nil
}

// Seen records key and reports whether it had been recorded before.
func (s *seenIndex) Seen(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.cache.Get(key); found {
		return true
	}
	s.cache.Set(key, struct{}{}, 1)
	// Sets are applied asynchronously; the next lookup must see this one.
	s.cache.Wait()
	return false
}

func (s *seenIndex) Close() {
	s.cache.Close()
}
