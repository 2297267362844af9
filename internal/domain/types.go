package domain

import (
	"strings"

	"github.com/google/uuid"
)

type AccountID = string
type DeviceID = string
type SessionID = string

// NewID mints an opaque identifier. Session ids double as bearer credentials,
// so they keep the full 128 bits of a v4 UUID; dashes are stripped because
// clients treat ids as plain hex strings.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
