package service

import (
	"context"

	"rdapi/internal/domain"
	"rdapi/internal/dto"
)

type AuthService interface {
	Login(ctx context.Context, r dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, tokenID domain.SessionID) error
	CurrentUser(ctx context.Context, accountID domain.AccountID) (*domain.Account, error)
}
