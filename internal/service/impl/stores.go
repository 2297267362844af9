package impl

import (
	"context"
	"errors"

	"rdapi/internal/domain"
	"rdapi/internal/store"
)

// The impls depend on these narrow interfaces instead of *store.Store so the
// session logic can be exercised against an in-memory store in tests. The
// gorm adapters at the bottom are the only production implementation.

type dataStore interface {
	WithTx(ctx context.Context, fn func(tx storeTx) error) error
	DeleteAccountData(ctx context.Context, accountID domain.AccountID) (map[string]int64, error)
}

type storeTx interface {
	Accounts() accountStore
	Devices() deviceStore
	Sessions() sessionStore
}

type accountStore interface {
	Create(ctx context.Context, a *domain.Account) error
	FindByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	FindByName(ctx context.Context, name string) (*domain.Account, error)
	FindByCredentials(ctx context.Context, name, password string) (*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) error
}

type deviceStore interface {
	FindByKey(ctx context.Context, key string) (*domain.Device, error)
	Save(ctx context.Context, d *domain.Device) error
}

type sessionStore interface {
	Get(ctx context.Context, id domain.SessionID) (*domain.Session, error)
	ListForAccount(ctx context.Context, accountID domain.AccountID) ([]*domain.Session, error)
	FindByDeviceID(ctx context.Context, deviceID domain.DeviceID) (*domain.Session, error)
	Insert(ctx context.Context, sess *domain.Session) error
	UpdateExpiry(ctx context.Context, id domain.SessionID, expireAt int64) error
	Delete(ctx context.Context, id domain.SessionID) error
	DeleteForAccount(ctx context.Context, accountID domain.AccountID) (int64, error)
}

func isNotFound(err error) bool { return errors.Is(err, store.ErrRecordNotFound) }

type gormStoreAdapter struct {
	store *store.Store
}

func (g gormStoreAdapter) WithTx(ctx context.Context, fn func(tx storeTx) error) error {
	if g.store == nil {
		return errors.New("nil store")
	}
	return g.store.WithTx(ctx, func(tx *store.Store) error {
		return fn(gormTxAdapter{tx: tx})
	})
}

func (g gormStoreAdapter) DeleteAccountData(ctx context.Context, accountID domain.AccountID) (map[string]int64, error) {
	if g.store == nil {
		return nil, errors.New("nil store")
	}
	return g.store.DeleteAccountData(ctx, accountID)
}

type gormTxAdapter struct {
	tx *store.Store
}

func (g gormTxAdapter) Accounts() accountStore { return g.tx.Accounts() }

func (g gormTxAdapter) Devices() deviceStore { return g.tx.Devices() }

func (g gormTxAdapter) Sessions() sessionStore { return g.tx.Sessions() }
