package db

import (
	"context"
	"sync"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/hmm-ocr-corrector/internal/hmm"
)

// MemoryCache keeps decode results in a map, the map is dropped when it reaches the limit
type MemoryCache struct {
	data  map[string]entry
	limit int

	lock sync.RWMutex
}

// NewMemoryCache creates an in-memory cache, limit <= 0 means unlimited
func NewMemoryCache(limit int) *MemoryCache {
	goapp.Log.Info().Int("limit", limit).Msg("Memory cache")
	return &MemoryCache{data: make(map[string]entry), limit: limit}
}

// Get implements service.Cache
func (mc *MemoryCache) Get(ctx context.Context, key string) (hmm.Path, bool, error) {
	mc.lock.RLock()
	defer mc.lock.RUnlock()
	e, ok := mc.data[key]
	if !ok {
		return hmm.Path{}, false, nil
	}
	return e.path(), true, nil
}

// Set implements service.Cache
func (mc *MemoryCache) Set(ctx context.Context, key string, p hmm.Path) error {
	mc.lock.Lock()
	defer mc.lock.Unlock()
	if mc.limit > 0 && len(mc.data) >= mc.limit {
		goapp.Log.Debug().Int("size", len(mc.data)).Msg("Reset memory cache")
		mc.data = make(map[string]entry)
	}
	mc.data[key] = toEntry(p)
	return nil
}

// Len returns the number of cached items
func (mc *MemoryCache) Len() int {
	mc.lock.RLock()
	defer mc.lock.RUnlock()
	return len(mc.data)
}
