package impl

import (
	"context"
	"log/slog"
	"time"

	"rdapi/internal/domain"
	"rdapi/internal/dto"
	"rdapi/internal/service"
	"rdapi/internal/store"
)

var _ service.AccountService = (*AccountServiceImpl)(nil)

type AccountServiceImpl struct {
	Store dataStore

	now   func() time.Time
	newID func() string
}

func NewAccountServiceImpl(st *store.Store) *AccountServiceImpl {
	return &AccountServiceImpl{
		Store: gormStoreAdapter{store: st},
		now:   time.Now,
		newID: domain.NewID,
	}
}

// Create provisions a new enabled account. The secret is stored as received;
// clients submit it pre-processed.
func (a *AccountServiceImpl) Create(ctx context.Context, r dto.AccountCreateRequest) error {
	if r.Account == "" {
		return ErrEmptyAccount
	}
	return a.Store.WithTx(ctx, func(tx storeTx) error {
		if _, err := tx.Accounts().FindByName(ctx, r.Account); err == nil {
			return domain.ErrAccountExists
		} else if !isNotFound(err) {
			return err
		}
		return tx.Accounts().Create(ctx, &domain.Account{
			ID:        a.newID(),
			Name:      r.Account,
			Password:  r.Password,
			Status:    domain.AccountEnabled,
			CreatedAt: a.now().UnixMilli(),
		})
	})
}

// Update edits nickname, password and status. Disabling revokes every live
// session of the account inside the same transaction, so a disable is an
// immediate global logout; re-enabling does not bring sessions back.
func (a *AccountServiceImpl) Update(ctx context.Context, name string, r dto.AccountUpdateRequest) (bool, error) {
	if name == "" {
		return false, ErrEmptyAccount
	}
	modified := false
	err := a.Store.WithTx(ctx, func(tx storeTx) error {
		account, err := tx.Accounts().FindByName(ctx, name)
		if err != nil {
			if isNotFound(err) {
				return domain.ErrAccountNotFound
			}
			return err
		}

		if r.Status != nil {
			modified = true
			account.Status = *r.Status
			if !account.Enabled() {
				revoked, err := tx.Sessions().DeleteForAccount(ctx, account.ID)
				if err != nil {
					return err
				}
				slog.Info("account disabled, sessions revoked",
					"account", account.Name, "sessions", revoked)
			}
		}
		if r.Nickname != "" {
			modified = true
			account.Nickname = r.Nickname
		}
		if r.Password != "" {
			modified = true
			account.Password = r.Password
		}

		if !modified {
			return nil
		}
		return tx.Accounts().Update(ctx, account)
	})
	if err != nil {
		return false, err
	}
	return modified, nil
}

// Delete removes the account and cascades over its sessions and address-book
// data.
func (a *AccountServiceImpl) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyAccount
	}
	var accountID domain.AccountID
	err := a.Store.WithTx(ctx, func(tx storeTx) error {
		account, err := tx.Accounts().FindByName(ctx, name)
		if err != nil {
			if isNotFound(err) {
				return domain.ErrAccountNotFound
			}
			return err
		}
		accountID = account.ID
		return nil
	})
	if err != nil {
		return err
	}

	deleted, err := a.Store.DeleteAccountData(ctx, accountID)
	if err != nil {
		return err
	}
	slog.Info("account deleted", "account", name, "resources", deleted)
	return nil
}
