package impl

import (
	"context"
	"sync"

	"rdapi/internal/domain"
	"rdapi/internal/store"
)

// memoryStore implements the narrow store interfaces so the session logic
// can run without a database. WithTx snapshots the maps and restores them
// when fn fails, mimicking a rolled-back transaction.
type memoryStore struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	nameIdx  map[string]string
	devices  map[string]*domain.Device
	keyIdx   map[string]string
	sessions map[string]*domain.Session
}

type storeSnapshot struct {
	accounts map[string]*domain.Account
	nameIdx  map[string]string
	devices  map[string]*domain.Device
	keyIdx   map[string]string
	sessions map[string]*domain.Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[string]*domain.Account),
		nameIdx:  make(map[string]string),
		devices:  make(map[string]*domain.Device),
		keyIdx:   make(map[string]string),
		sessions: make(map[string]*domain.Session),
	}
}

func (m *memoryStore) WithTx(ctx context.Context, fn func(tx storeTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.snapshot()
	if err := fn(&memoryTx{store: m}); err != nil {
		m.restore(snapshot)
		return err
	}
	return nil
}

func (m *memoryStore) DeleteAccountData(ctx context.Context, accountID domain.AccountID) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := map[string]int64{}
	if a, ok := m.accounts[accountID]; ok {
		deleted["accounts"] = 1
		delete(m.nameIdx, a.Name)
		delete(m.accounts, accountID)
	}
	for id, s := range m.sessions {
		if s.AccountID == accountID {
			deleted["sessions"]++
			delete(m.sessions, id)
		}
	}
	return deleted, nil
}

func (m *memoryStore) snapshot() storeSnapshot {
	s := storeSnapshot{
		accounts: make(map[string]*domain.Account, len(m.accounts)),
		nameIdx:  make(map[string]string, len(m.nameIdx)),
		devices:  make(map[string]*domain.Device, len(m.devices)),
		keyIdx:   make(map[string]string, len(m.keyIdx)),
		sessions: make(map[string]*domain.Session, len(m.sessions)),
	}
	for id, a := range m.accounts {
		cp := *a
		s.accounts[id] = &cp
	}
	for k, v := range m.nameIdx {
		s.nameIdx[k] = v
	}
	for id, d := range m.devices {
		cp := *d
		s.devices[id] = &cp
	}
	for k, v := range m.keyIdx {
		s.keyIdx[k] = v
	}
	for id, sess := range m.sessions {
		cp := *sess
		s.sessions[id] = &cp
	}
	return s
}

func (m *memoryStore) restore(s storeSnapshot) {
	m.accounts = s.accounts
	m.nameIdx = s.nameIdx
	m.devices = s.devices
	m.keyIdx = s.keyIdx
	m.sessions = s.sessions
}

// Locked read helpers for assertions.

func (m *memoryStore) seedAccount(a *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.accounts[a.ID] = &cp
	m.nameIdx[a.Name] = a.ID
}

func (m *memoryStore) seedDevice(d *domain.Device) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	m.devices[d.ID] = &cp
	m.keyIdx[d.Key] = d.ID
}

func (m *memoryStore) seedSession(s *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.sessions[s.ID] = &cp
}

func (m *memoryStore) sessionByID(id string) (*domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	cp := *s
	return &cp, true
}

func (m *memoryStore) sessionsForAccount(accountID string) []*domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Session
	for _, s := range m.sessions {
		if s.AccountID == accountID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out
}

func (m *memoryStore) deviceByKey(key string) (*domain.Device, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.keyIdx[key]
	if !ok {
		return nil, false
	}
	cp := *m.devices[id]
	return &cp, true
}

func (m *memoryStore) accountByName(name string) (*domain.Account, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.nameIdx[name]
	if !ok {
		return nil, false
	}
	cp := *m.accounts[id]
	return &cp, true
}

type memoryTx struct {
	store *memoryStore
}

func (m *memoryTx) Accounts() accountStore { return &memoryAccountStore{store: m.store} }

func (m *memoryTx) Devices() deviceStore { return &memoryDeviceStore{store: m.store} }

func (m *memoryTx) Sessions() sessionStore { return &memorySessionStore{store: m.store} }

type memoryAccountStore struct {
	store *memoryStore
}

func (a *memoryAccountStore) Create(ctx context.Context, acct *domain.Account) error {
	cp := *acct
	a.store.accounts[acct.ID] = &cp
	a.store.nameIdx[acct.Name] = acct.ID
	return nil
}

func (a *memoryAccountStore) FindByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	acct, ok := a.store.accounts[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	cp := *acct
	return &cp, nil
}

func (a *memoryAccountStore) FindByName(ctx context.Context, name string) (*domain.Account, error) {
	id, ok := a.store.nameIdx[name]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	cp := *a.store.accounts[id]
	return &cp, nil
}

func (a *memoryAccountStore) FindByCredentials(ctx context.Context, name, password string) (*domain.Account, error) {
	id, ok := a.store.nameIdx[name]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	acct := a.store.accounts[id]
	if acct.Password != password {
		return nil, store.ErrRecordNotFound
	}
	cp := *acct
	return &cp, nil
}

func (a *memoryAccountStore) Update(ctx context.Context, acct *domain.Account) error {
	cp := *acct
	a.store.accounts[acct.ID] = &cp
	a.store.nameIdx[acct.Name] = acct.ID
	return nil
}

type memoryDeviceStore struct {
	store *memoryStore
}

func (d *memoryDeviceStore) FindByKey(ctx context.Context, key string) (*domain.Device, error) {
	id, ok := d.store.keyIdx[key]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	cp := *d.store.devices[id]
	return &cp, nil
}

func (d *memoryDeviceStore) Save(ctx context.Context, dev *domain.Device) error {
	cp := *dev
	d.store.devices[dev.ID] = &cp
	d.store.keyIdx[dev.Key] = dev.ID
	return nil
}

type memorySessionStore struct {
	store *memoryStore
}

func (s *memorySessionStore) Get(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	sess, ok := s.store.sessions[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	cp := *sess
	return &cp, nil
}

func (s *memorySessionStore) ListForAccount(ctx context.Context, accountID domain.AccountID) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, sess := range s.store.sessions {
		if sess.AccountID == accountID {
			cp := *sess
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memorySessionStore) FindByDeviceID(ctx context.Context, deviceID domain.DeviceID) (*domain.Session, error) {
	for _, sess := range s.store.sessions {
		if sess.DeviceID == deviceID {
			cp := *sess
			return &cp, nil
		}
	}
	return nil, store.ErrRecordNotFound
}

func (s *memorySessionStore) Insert(ctx context.Context, sess *domain.Session) error {
	cp := *sess
	s.store.sessions[sess.ID] = &cp
	return nil
}

func (s *memorySessionStore) UpdateExpiry(ctx context.Context, id domain.SessionID, expireAt int64) error {
	sess, ok := s.store.sessions[id]
	if !ok {
		return store.ErrRecordNotFound
	}
	sess.ExpireAt = expireAt
	return nil
}

func (s *memorySessionStore) Delete(ctx context.Context, id domain.SessionID) error {
	delete(s.store.sessions, id)
	return nil
}

func (s *memorySessionStore) DeleteForAccount(ctx context.Context, accountID domain.AccountID) (int64, error) {
	var n int64
	for id, sess := range s.store.sessions {
		if sess.AccountID == accountID {
			delete(s.store.sessions, id)
			n++
		}
	}
	return n, nil
}
