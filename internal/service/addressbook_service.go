package service

import (
	"context"

	"rdapi/internal/domain"
	"rdapi/internal/dto"
)

type AddressBookService interface {
	Get(ctx context.Context, accountID domain.AccountID) (*dto.AddressBook, error)
	// Replace swaps the account's whole address book (tags and peers) for the
	// submitted one atomically.
	Replace(ctx context.Context, accountID domain.AccountID, ab dto.AddressBook) error
}
