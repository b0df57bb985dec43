package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/shoping-storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/shoping-storefront/internal/checkout/app"
)

type CartManagerReader struct {
	mgr *cartapp.Manager
}

func NewCartManagerReader(mgr *cartapp.Manager) *CartManagerReader {
	return &CartManagerReader{mgr: mgr}
}

// CurrentCart refreshes the manager's snapshot and converts it. Without a
// cart id the result is an empty cart.
func (r *CartManagerReader) CurrentCart(ctx context.Context) (checkoutapp.Cart, error) {
	if err := r.mgr.Refresh(ctx); err != nil {
		return checkoutapp.Cart{}, err
	}

	cart, ok := r.mgr.Snapshot()
	if !ok {
		return checkoutapp.Cart{}, nil
	}

	items := make([]checkoutapp.CartItem, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, checkoutapp.CartItem{
			LineID:       l.ID,
			Title:        l.Merchandise.Title,
			ProductTitle: l.Merchandise.Product.Title,
			Quantity:     l.Quantity,
			Amount:       l.Merchandise.Price.Amount,
			CurrencyCode: l.Merchandise.Price.CurrencyCode,
		})
	}
	return checkoutapp.Cart{
		ID:            cart.ID,
		CheckoutURL:   cart.CheckoutURL,
		TotalQuantity: cart.TotalQuantity,
		Items:         items,
	}, nil
}
