package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/shoping-storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	DefaultSearchSize  = 6
	MaxSearchSize      = 50
	CollectionPageSize = 50
	MenuSourceSize     = 50

	// SizeOption is the variant option the storefront selects sizes by.
	SizeOption = "Accessory size"
)

type Service struct {
	products    ProductRepo
	collections CollectionRepo
	menu        CollectionSource
}

// NewService wires the catalog. menu may be nil, in which case menus are
// built from collections.
func NewService(products ProductRepo, collections CollectionRepo, menu CollectionSource) *Service {
	if menu == nil {
		menu = collections
	}
	return &Service{
		products:    products,
		collections: collections,
		menu:        menu,
	}
}

func (s *Service) ProductByHandle(ctx context.Context, handle string) (domain.Product, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.products.ProductByHandle(ctx, handle)
}

func (s *Service) SearchProducts(ctx context.Context, keyword string, first int) ([]domain.Product, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrInvalidInput
	}
	if first <= 0 {
		first = DefaultSearchSize
	}
	if first > MaxSearchSize {
		first = MaxSearchSize
	}
	return s.products.SearchProducts(ctx, keyword, first)
}

// CollectionByHandle returns one page of products; pass the previous page's
// EndCursor as after to continue.
func (s *Service) CollectionByHandle(ctx context.Context, handle, after string) (domain.CollectionPage, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return domain.CollectionPage{}, ErrInvalidInput
	}
	return s.collections.CollectionByHandle(ctx, handle, CollectionPageSize, after)
}

// CollectionsByKeyword keeps collections whose title contains keyword as a
// standalone token: "MAN" matches "MAN SHOES" but not "WOMAN SHOES".
func (s *Service) CollectionsByKeyword(ctx context.Context, keyword string) ([]domain.Collection, error) {
	return s.collectionsByKeyword(ctx, s.collections, keyword)
}

func (s *Service) collectionsByKeyword(ctx context.Context, src CollectionSource, keyword string) ([]domain.Collection, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrInvalidInput
	}
	re, err := regexp.Compile(`(?i)(^|[^A-Z])` + regexp.QuoteMeta(keyword) + `([^A-Z]|$)`)
	if err != nil {
		return nil, fmt.Errorf("keyword pattern: %w", err)
	}

	all, err := src.ListCollections(ctx, MenuSourceSize)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Collection, 0, len(all))
	for _, c := range all {
		if re.MatchString(c.Title) {
			out = append(out, c)
		}
	}
	return out, nil
}

// BuildMenu fetches and splits the collections of every prefix concurrently.
func (s *Service) BuildMenu(ctx context.Context, prefixes ...string) (map[string]domain.SplitResult, error) {
	results := make([]domain.SplitResult, len(prefixes))

	g, ctx := errgroup.WithContext(ctx)
	for i, prefix := range prefixes {
		g.Go(func() error {
			cols, err := s.collectionsByKeyword(ctx, s.menu, prefix)
			if err != nil {
				return fmt.Errorf("menu %s: %w", prefix, err)
			}
			results[i] = SplitCollectionsByPrefix(cols, prefix)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	menu := make(map[string]domain.SplitResult, len(prefixes))
	for i, prefix := range prefixes {
		menu[prefix] = results[i]
	}
	return menu, nil
}

// RelatedProducts finds the sibling colourways of a product: products sharing
// the first dash-separated segment of the handle whose handle has exactly two
// segments ("crew-black", "crew-white").
func (s *Service) RelatedProducts(ctx context.Context, handle string) ([]domain.Product, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, ErrInvalidInput
	}
	family, _, _ := strings.Cut(handle, "-")

	found, err := s.products.SearchProducts(ctx, family, DefaultSearchSize)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(found))
	for _, p := range found {
		if len(strings.Split(p.Handle, "-")) == 2 {
			out = append(out, p)
		}
	}
	return out, nil
}

// VariantForSize picks the variant for a size selection.
func VariantForSize(p domain.Product, size string) (domain.Variant, error) {
	v, ok := p.VariantWithOption(SizeOption, size)
	if !ok {
		return domain.Variant{}, fmt.Errorf("size %q: %w", size, ErrNotFound)
	}
	return v, nil
}
