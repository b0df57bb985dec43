package app

import (
	"context"

	"github.com/dwikikusuma/shoping-storefront/internal/account/domain"
)

type AuthGateway interface {
	CreateAccessToken(ctx context.Context, in domain.LoginInput) (*domain.AccessToken, []domain.UserError, error)
	CreateCustomer(ctx context.Context, in domain.RegisterInput) (*domain.Customer, []domain.UserError, error)
}

// TokenStore keeps the customer access token between runs.
type TokenStore interface {
	SetAccessToken(ctx context.Context, token string) error
	Logout(ctx context.Context) error
}
