package app

import (
	"context"

	"github.com/dwikikusuma/shoping-storefront/internal/catalog/domain"
)

type ProductRepo interface {
	ProductByHandle(ctx context.Context, handle string) (domain.Product, error)
	SearchProducts(ctx context.Context, query string, first int) ([]domain.Product, error)
}

type CollectionRepo interface {
	CollectionByHandle(ctx context.Context, handle string, first int, after string) (domain.CollectionPage, error)
	CollectionSource
}

// CollectionSource lists collections (title and handle at least) for menus.
type CollectionSource interface {
	ListCollections(ctx context.Context, first int) ([]domain.Collection, error)
}
