package store

import (
	"context"

	"rdapi/internal/domain"

	"gorm.io/gorm"
)

type AccountStore struct{ db *gorm.DB }

func (s *Store) Accounts() *AccountStore { return &AccountStore{db: s.DB} }

func (as *AccountStore) Create(ctx context.Context, a *domain.Account) error {
	if a.ID == "" {
		a.ID = domain.NewID()
	}
	return as.db.WithContext(ctx).Create(a).Error
}

func (as *AccountStore) FindByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var a domain.Account
	if err := as.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (as *AccountStore) FindByName(ctx context.Context, name string) (*domain.Account, error) {
	var a domain.Account
	if err := as.db.WithContext(ctx).First(&a, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByCredentials matches login name and secret exactly, case-sensitive.
// Absent row and wrong secret are indistinguishable to the caller.
func (as *AccountStore) FindByCredentials(ctx context.Context, name, password string) (*domain.Account, error) {
	var a domain.Account
	if err := as.db.WithContext(ctx).First(&a, "name = ? AND password = ?", name, password).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (as *AccountStore) Update(ctx context.Context, a *domain.Account) error {
	return as.db.WithContext(ctx).Save(a).Error
}
