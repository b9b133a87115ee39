package keyval

import (
	"context"
	"sync"
)

// MemoryApi keeps snapshots in process memory. Used when no external
// store is configured, and in tests. Nothing survives a restart.
type MemoryApi struct {
	mutex  sync.RWMutex
	values map[string]string
}

func NewMemoryApi() *MemoryApi {
	return &MemoryApi{
		values: make(map[string]string),
	}
}

func (api *MemoryApi) Get(_ context.Context, key string) (string, error) {
	api.mutex.RLock()
	defer api.mutex.RUnlock()
	val, ok := api.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return val, nil
}

func (api *MemoryApi) Set(_ context.Context, key, value string) error {
	api.mutex.Lock()
	defer api.mutex.Unlock()
	api.values[key] = value
	return nil
}
