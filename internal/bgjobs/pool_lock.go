package bgjobs

import (
	"sync"
)

// PoolLocker hands out one lock per named pool. Lottery pools are not safe
// for concurrent use, so every access from background jobs goes through it.
type PoolLocker struct {
	mu sync.Mutex
	m  map[string]*PoolLock
}

func NewPoolLocker() *PoolLocker {
	return &PoolLocker{
		m: make(map[string]*PoolLock),
	}
}

// Get returns a lock for the pool, creating it on first use.
func (l *PoolLocker) Get(name string) *PoolLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.m[name]
	if !ok {
		lock = &PoolLock{}
		l.m[name] = lock
	}
	return lock
}

// PoolLock is taken exclusively by mutating operations (draw, modify, clear)
// and shared by read-only ones (count, dump).
type PoolLock struct {
	mu sync.RWMutex
}

func (l *PoolLock) ExclusiveLock() func() {
	l.mu.Lock()
	return l.mu.Unlock
}

func (l *PoolLock) SharedLock() func() {
	l.mu.RLock()
	return l.mu.RUnlock
}
