package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/dwikikusuma/shoping-storefront/internal/cart/app"
	"github.com/dwikikusuma/shoping-storefront/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/shoping-storefront/internal/checkout/app"
	"github.com/dwikikusuma/shoping-storefront/internal/session"
)

// fixedGateway always serves the same cart.
type fixedGateway struct {
	cart domain.Cart
}

func (g *fixedGateway) CreateCart(ctx context.Context) (domain.Cart, error) { return g.cart, nil }

func (g *fixedGateway) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	c := g.cart
	return &c, nil
}

func (g *fixedGateway) VariantAvailability(ctx context.Context, variantID string) (domain.Availability, error) {
	return domain.Availability{VariantID: variantID, AvailableForSale: true, QuantityAvailable: 100}, nil
}

func (g *fixedGateway) AddLines(ctx context.Context, cartID string, lines []domain.LineInput) ([]domain.UserError, error) {
	return nil, nil
}

func (g *fixedGateway) UpdateLines(ctx context.Context, cartID string, lines []domain.LineUpdate) ([]domain.UserError, error) {
	return nil, nil
}

func TestCartManagerReader(t *testing.T) {
	ctx := context.Background()
	gw := &fixedGateway{cart: domain.Cart{
		ID:            "gid://shopify/Cart/1",
		CheckoutURL:   "https://shop.example/checkout/1",
		TotalQuantity: 2,
		Lines: []domain.Line{{
			ID:       "gid://shopify/CartLine/1",
			Quantity: 2,
			Merchandise: domain.Merchandise{
				VariantID: "v1",
				Title:     "S",
				Price:     domain.Money{Amount: "9.9", CurrencyCode: "EUR"},
				Product:   domain.ProductRef{Title: "Crew Black"},
			},
		}},
	}}
	mgr := cartapp.NewManager(gw, session.New(session.NewMemoryStore()), nil)

	t.Run("no cart yet", func(t *testing.T) {
		got, err := NewCartManagerReader(mgr).CurrentCart(ctx)
		require.NoError(t, err)
		assert.Empty(t, got.Items)

		_, err = checkoutapp.NewService(NewCartManagerReader(mgr)).Begin(ctx)
		assert.ErrorIs(t, err, checkoutapp.ErrEmptyCart)
	})

	t.Run("after init", func(t *testing.T) {
		require.NoError(t, mgr.Init(ctx))

		summary, err := checkoutapp.NewService(NewCartManagerReader(mgr)).Begin(ctx)
		require.NoError(t, err)
		assert.Equal(t, "https://shop.example/checkout/1", summary.CheckoutURL)
		require.Len(t, summary.Lines, 1)
		assert.Equal(t, "Crew Black", summary.Lines[0].ProductTitle)
		assert.Equal(t, "19.8", summary.Subtotal.Amount.String())
	})
}
