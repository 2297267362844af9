package service

import (
	"context"

	"rdapi/internal/dto"
)

// AccountService is the admin-facing provisioning surface.
type AccountService interface {
	Create(ctx context.Context, r dto.AccountCreateRequest) error
	// Update applies the non-empty fields of r and reports whether anything
	// changed. Setting status to disabled revokes every live session of the
	// account in the same transaction.
	Update(ctx context.Context, name string, r dto.AccountUpdateRequest) (bool, error)
	Delete(ctx context.Context, name string) error
}
