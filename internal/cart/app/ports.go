package app

import (
	"context"

	"github.com/dwikikusuma/shoping-storefront/internal/cart/domain"
)

// CartGateway is the remote commerce backend. GetCart returns (nil, nil) when
// the remote has no cart for id.
type CartGateway interface {
	CreateCart(ctx context.Context) (domain.Cart, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	VariantAvailability(ctx context.Context, variantID string) (domain.Availability, error)
	AddLines(ctx context.Context, cartID string, lines []domain.LineInput) ([]domain.UserError, error)
	UpdateLines(ctx context.Context, cartID string, lines []domain.LineUpdate) ([]domain.UserError, error)
}

// CartIDStore persists the cart identifier across process runs.
type CartIDStore interface {
	CartID(ctx context.Context) (string, error)
	SetCartID(ctx context.Context, id string) error
	ClearCartID(ctx context.Context) error
}
