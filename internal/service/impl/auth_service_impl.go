package impl

import (
	"context"
	"time"

	"rdapi/internal/domain"
	"rdapi/internal/dto"
	"rdapi/internal/service"
	"rdapi/internal/store"
)

var _ service.AuthService = (*AuthServiceImpl)(nil)

type AuthServiceImpl struct {
	Store       dataStore
	TokenTTL    time.Duration
	MaxSessions int

	now   func() time.Time
	newID func() string
	locks *accountLocks
}

func NewAuthServiceImpl(st *store.Store, tokenTTL time.Duration, maxSessions int) *AuthServiceImpl {
	return &AuthServiceImpl{
		Store:       gormStoreAdapter{store: st},
		TokenTTL:    tokenTTL,
		MaxSessions: maxSessions,
		now:         time.Now,
		newID:       domain.NewID,
		locks:       newAccountLocks(),
	}
}

// Login validates the credentials and issues or reuses a bearer token bound
// to the calling device.
//
// The account's sessions are partitioned in one pass: expired ones are
// evicted, a live one bound to the calling device becomes the reuse
// candidate, the rest count toward the concurrent-session cap. The partition
// always covers the full list so expired sessions enumerated after a device
// match still get cleaned up. Evictions commit even when the cap rejects the
// login. A reused token keeps its expiry untouched; only heartbeats extend
// sessions.
func (a *AuthServiceImpl) Login(ctx context.Context, r dto.LoginRequest) (*dto.LoginResponse, error) {
	// Missing fields fail the same way a wrong secret does; the response
	// never hints at which part was off.
	if r.Username == "" || r.Password == "" || r.DeviceKey == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// Serialize the count-then-insert sequence per account (login name is
	// unique, so it is as good a key as the account id we don't know yet).
	unlock := a.locks.lock(r.Username)
	defer unlock()

	var resp *dto.LoginResponse
	var capErr error

	err := a.Store.WithTx(ctx, func(tx storeTx) error {
		account, err := tx.Accounts().FindByCredentials(ctx, r.Username, r.Password)
		if err != nil {
			if isNotFound(err) {
				// Unknown name and wrong secret are deliberately the same.
				return domain.ErrInvalidCredentials
			}
			return err
		}

		device, err := tx.Devices().FindByKey(ctx, r.DeviceKey)
		if err != nil && !isNotFound(err) {
			return err
		}

		sessions, err := tx.Sessions().ListForAccount(ctx, account.ID)
		if err != nil {
			return err
		}

		now := a.now().UnixMilli()
		var reusable *domain.Session
		var expired []*domain.Session
		live := 0
		for _, s := range sessions {
			switch {
			case !s.Live(now):
				expired = append(expired, s)
			case device != nil && s.DeviceID == device.ID:
				reusable = s
			default:
				live++
			}
		}
		for _, s := range expired {
			if err := tx.Sessions().Delete(ctx, s.ID); err != nil {
				return err
			}
		}

		if reusable == nil && live >= a.MaxSessions {
			// Returning nil commits the evictions above; the rejection is
			// surfaced outside the transaction.
			capErr = &domain.TooManySessionsError{Limit: a.MaxSessions}
			return nil
		}

		if device == nil {
			device = &domain.Device{ID: a.newID(), Key: r.DeviceKey}
		}
		device.ClientID = r.ClientID
		if r.DeviceInfo.Name != "" {
			device.Hostname = r.DeviceInfo.Name
		}
		device.LastSeenAt = now
		if err := tx.Devices().Save(ctx, device); err != nil {
			return err
		}

		token := reusable
		if token == nil {
			token = &domain.Session{
				ID:        a.newID(),
				AccountID: account.ID,
				DeviceID:  device.ID,
				LoginAt:   now,
				ExpireAt:  now + a.TokenTTL.Milliseconds(),
			}
			if err := tx.Sessions().Insert(ctx, token); err != nil {
				return err
			}
		}

		resp = &dto.LoginResponse{
			Type:        "access_token",
			AccessToken: token.ID,
			User:        dto.LoginUser{Name: account.Name},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if capErr != nil {
		return nil, capErr
	}
	return resp, nil
}

// Logout revokes the token if it still exists. The caller already passed the
// token guard, so a vanished row is not an error.
func (a *AuthServiceImpl) Logout(ctx context.Context, tokenID domain.SessionID) error {
	return a.Store.WithTx(ctx, func(tx storeTx) error {
		return tx.Sessions().Delete(ctx, tokenID)
	})
}

func (a *AuthServiceImpl) CurrentUser(ctx context.Context, accountID domain.AccountID) (*domain.Account, error) {
	var account *domain.Account
	err := a.Store.WithTx(ctx, func(tx storeTx) error {
		found, err := tx.Accounts().FindByID(ctx, accountID)
		if err != nil {
			if isNotFound(err) {
				return domain.ErrAccountNotFound
			}
			return err
		}
		account = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}
