// Package shopifyadmin reads collections through the Shopify Admin REST API.
// Menus can be built from it when the storefront token cannot see every
// collection (unpublished ones, for instance).
package shopifyadmin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	shopify "github.com/bold-commerce/go-shopify/v4"

	"github.com/dwikikusuma/shoping-storefront/internal/catalog/domain"
)

type Config struct {
	Shop        string
	AccessToken string
	APIVersion  string
	HTTPClient  *http.Client
}

type CollectionSource struct {
	client *shopify.Client
}

func New(cfg Config) (*CollectionSource, error) {
	if cfg.Shop == "" || cfg.AccessToken == "" {
		return nil, errors.New("shopifyadmin: shop and access token are required")
	}

	var opts []shopify.Option
	if cfg.APIVersion != "" {
		opts = append(opts, shopify.WithVersion(cfg.APIVersion))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, shopify.WithHTTPClient(cfg.HTTPClient))
	}

	client, err := shopify.NewClient(shopify.App{}, cfg.Shop, cfg.AccessToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("shopifyadmin: create client: %w", err)
	}
	return &CollectionSource{client: client}, nil
}

// ListCollections returns custom collections followed by smart collections,
// up to first of each.
func (s *CollectionSource) ListCollections(ctx context.Context, first int) ([]domain.Collection, error) {
	opts := shopify.ListOptions{Limit: first}

	custom, err := s.client.CustomCollection.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list custom collections: %w", err)
	}
	smart, err := s.client.SmartCollection.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list smart collections: %w", err)
	}

	out := make([]domain.Collection, 0, len(custom)+len(smart))
	for _, c := range custom {
		out = append(out, domain.Collection{
			ID:     strconv.FormatUint(c.Id, 10),
			Title:  c.Title,
			Handle: c.Handle,
		})
	}
	for _, c := range smart {
		out = append(out, domain.Collection{
			ID:     strconv.FormatUint(c.Id, 10),
			Title:  c.Title,
			Handle: c.Handle,
		})
	}
	return out, nil
}
