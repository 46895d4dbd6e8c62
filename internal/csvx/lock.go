package csvx

import (
	"path/filepath"
	"sync"
)

// PathLocker serializes load-modify-save cycles on the same file within the
// process. Paths are cleaned before lookup so `./data/x.csv` and `data/x.csv`
// share one lock.
type PathLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPathLocker() *PathLocker {
	return &PathLocker{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for path and returns the unlock function.
//
//	unlock := locker.Lock(path)
//	defer unlock()
func (p *PathLocker) Lock(path string) func() {
	key := filepath.Clean(path)

	p.mu.Lock()
	m, ok := p.locks[key]
	if !ok {
		m = &sync.Mutex{}
		p.locks[key] = m
	}
	p.mu.Unlock()

	m.Lock()
	return m.Unlock
}
