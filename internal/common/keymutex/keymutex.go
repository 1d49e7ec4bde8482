// Package keymutex serializes read-modify-write sequences on a per-key
// basis. The room document has no store-side locking, so every service
// mutation of a room must run between Lock(roomID) and the returned unlock.
package keymutex

import "sync"

// KeyMutex hands out one mutex per key. Mutexes are created on first use
// and kept for the process lifetime; the key space here is room ids, which
// is small and bounded by room cleanup.
type KeyMutex struct {
	mu      sync.Mutex
	mutexes map[string]*sync.Mutex
}

// New creates an empty KeyMutex
func New() *KeyMutex {
	return &KeyMutex{
		mutexes: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for key and returns its unlock function
func (k *KeyMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.mutexes[key]
	if !ok {
		m = &sync.Mutex{}
		k.mutexes[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Forget drops the mutex for a key. Call only once no holder can remain,
// e.g. after a room is deleted.
func (k *KeyMutex) Forget(key string) {
	k.mu.Lock()
	delete(k.mutexes, key)
	k.mu.Unlock()
}
