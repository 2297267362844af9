package impl

import "sync"

// accountLocks serializes logins per account name. The storage transaction
// alone is not enough on engines with weak isolation: two concurrent logins
// could both count 9 live sessions and both insert a 10th and 11th. The map
// only ever holds one mutex per account name seen since start, which is fine
// at fleet scale.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *accountLocks) lock(name string) func() {
	l.mu.Lock()
	m, ok := l.locks[name]
	if !ok {
		m = &sync.Mutex{}
		l.locks[name] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
