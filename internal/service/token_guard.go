package service

import (
	"context"

	"rdapi/internal/domain"
)

// SessionContext is the resolved identity behind a bearer credential. It is
// handed to the wrapped handler for the duration of one request and never
// stored anywhere ambient.
type SessionContext struct {
	Session   domain.Session
	AccountID domain.AccountID
	DeviceID  domain.DeviceID
}

// TokenGuard is the gate every protected operation passes through. Authorize
// resolves the raw Authorization header value to a live session or rejects
// the request with one of the domain.ErrUnauthenticated sub-reasons; expired
// tokens are evicted on sight.
type TokenGuard interface {
	Authorize(ctx context.Context, bearer string) (*SessionContext, error)
}
