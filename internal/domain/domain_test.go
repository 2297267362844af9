package domain

import (
	"errors"
	"regexp"
	"testing"
)

func TestNewID(t *testing.T) {
	hex32 := regexp.MustCompile(`^[0-9a-f]{32}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if !hex32.MatchString(id) {
			t.Fatalf("id %q is not 32 hex chars", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestSessionLive(t *testing.T) {
	s := &Session{ExpireAt: 1000}

	if !s.Live(999) {
		t.Fatalf("session must be live before its expiry")
	}
	if s.Live(1000) {
		t.Fatalf("session expiring exactly now must be dead")
	}
	if s.Live(1001) {
		t.Fatalf("session must be dead after its expiry")
	}
}

func TestUnauthenticatedSubReasons(t *testing.T) {
	for _, err := range []error{
		ErrMissingCredential,
		ErrMalformedCredential,
		ErrUnknownCredential,
		ErrCredentialExpired,
	} {
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("%v must wrap ErrUnauthenticated", err)
		}
	}
}

func TestTooManySessionsError(t *testing.T) {
	err := &TooManySessionsError{Limit: 10}
	if err.Error() == "" {
		t.Fatalf("error text must not be empty")
	}

	var tms *TooManySessionsError
	if !errors.As(error(err), &tms) || tms.Limit != 10 {
		t.Fatalf("errors.As must recover the limit")
	}
}
