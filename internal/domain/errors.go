package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")

	// ErrUnauthenticated is the base for every bearer-credential rejection.
	// The wrapped sub-reasons below exist for logs and metrics; callers only
	// ever see the generic mapping the transport layer produces.
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrMissingCredential   = fmt.Errorf("%w: missing bearer credential", ErrUnauthenticated)
	ErrMalformedCredential = fmt.Errorf("%w: malformed bearer credential", ErrUnauthenticated)
	ErrUnknownCredential   = fmt.Errorf("%w: unknown bearer credential", ErrUnauthenticated)
	ErrCredentialExpired   = fmt.Errorf("%w: session expired", ErrUnauthenticated)
)

// TooManySessionsError rejects a login that would push an account past its
// concurrent-session cap. It carries the configured limit so the transport
// layer can report it.
type TooManySessionsError struct {
	Limit int
}

func (e *TooManySessionsError) Error() string {
	return fmt.Sprintf("account already has %d concurrent sessions", e.Limit)
}
