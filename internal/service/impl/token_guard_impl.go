package impl

import (
	"context"
	"regexp"
	"time"

	"rdapi/internal/domain"
	"rdapi/internal/service"
	"rdapi/internal/store"
)

var _ service.TokenGuard = (*TokenGuardImpl)(nil)

// Same shape the clients send: "Bearer <token>", token without whitespace.
var bearerPattern = regexp.MustCompile(`^Bearer\s(\S+)$`)

type TokenGuardImpl struct {
	Store dataStore

	now func() time.Time
}

func NewTokenGuardImpl(st *store.Store) *TokenGuardImpl {
	return &TokenGuardImpl{
		Store: gormStoreAdapter{store: st},
		now:   time.Now,
	}
}

// Authorize resolves the Authorization header value to a live session. It
// performs exactly one session lookup and, when the token turns out to be
// expired, exactly one delete: the lazy eviction that keeps the table clean
// without a background sweeper.
func (g *TokenGuardImpl) Authorize(ctx context.Context, bearer string) (*service.SessionContext, error) {
	if bearer == "" {
		return nil, domain.ErrMissingCredential
	}
	m := bearerPattern.FindStringSubmatch(bearer)
	if m == nil {
		return nil, domain.ErrMalformedCredential
	}

	var sc *service.SessionContext
	var authErr error

	err := g.Store.WithTx(ctx, func(tx storeTx) error {
		sess, err := tx.Sessions().Get(ctx, m[1])
		if err != nil {
			if isNotFound(err) {
				authErr = domain.ErrUnknownCredential
				return nil
			}
			return err
		}

		if !sess.Live(g.now().UnixMilli()) {
			if err := tx.Sessions().Delete(ctx, sess.ID); err != nil {
				return err
			}
			// Commit the eviction; the rejection travels outside the tx.
			authErr = domain.ErrCredentialExpired
			return nil
		}

		sc = &service.SessionContext{
			Session:   *sess,
			AccountID: sess.AccountID,
			DeviceID:  sess.DeviceID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if authErr != nil {
		return nil, authErr
	}
	return sc, nil
}
