package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/shoping-storefront/internal/checkout/domain"
)

// CartReader returns the current remote cart, freshly fetched.
type CartReader interface {
	CurrentCart(ctx context.Context) (Cart, error)
}

type Cart struct {
	ID            string
	CheckoutURL   string
	TotalQuantity int
	Items         []CartItem
}

type CartItem struct {
	LineID       string
	Title        string
	ProductTitle string
	Quantity     int
	Amount       string
	CurrencyCode string
}

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrNoCheckoutURL = errors.New("cart has no checkout url")
)

type Service struct {
	Cart CartReader
}

func NewService(cart CartReader) *Service {
	return &Service{Cart: cart}
}

// Begin prepares the hand-off to the hosted checkout page.
func (s *Service) Begin(ctx context.Context) (domain.Summary, error) {
	cart, err := s.Cart.CurrentCart(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	if len(cart.Items) == 0 {
		return domain.Summary{}, ErrEmptyCart
	}
	if cart.CheckoutURL == "" {
		return domain.Summary{}, ErrNoCheckoutURL
	}

	lines := make([]domain.SummaryLine, len(cart.Items))
	subtotal := decimal.Zero
	currency := cart.Items[0].CurrencyCode

	for idx, it := range cart.Items {
		if it.CurrencyCode != currency {
			return domain.Summary{}, fmt.Errorf("mixed currencies in cart: %s and %s", currency, it.CurrencyCode)
		}
		unit, err := decimal.NewFromString(it.Amount)
		if err != nil {
			return domain.Summary{}, fmt.Errorf("line %s price %q: %w", it.LineID, it.Amount, err)
		}

		lineTotal := unit.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(lineTotal)

		lines[idx] = domain.SummaryLine{
			LineID:       it.LineID,
			Title:        it.Title,
			ProductTitle: it.ProductTitle,
			Quantity:     it.Quantity,
			UnitPrice:    domain.Money{CurrencyCode: currency, Amount: unit},
			LineTotal:    domain.Money{CurrencyCode: currency, Amount: lineTotal},
		}
	}

	return domain.Summary{
		CartID:        cart.ID,
		CheckoutURL:   cart.CheckoutURL,
		TotalQuantity: cart.TotalQuantity,
		Lines:         lines,
		Subtotal:      domain.Money{CurrencyCode: currency, Amount: subtotal},
	}, nil
}
