package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cast"

	"github.com/dwikikusuma/shoping-storefront/internal/cart/domain"
	sf "github.com/dwikikusuma/shoping-storefront/pkg/storefront"
)

// Lines beyond this are not fetched.
const maxCartLines = 20

const cartCreateMutation = `
mutation {
  cartCreate {
    cart { id checkoutUrl }
  }
}`

const variantQuery = `
query($id: ID!) {
  node(id: $id) {
    ... on ProductVariant {
      id
      title
      availableForSale
      quantityAvailable
      product { title }
    }
  }
}`

const cartLinesAddMutation = `
mutation cartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart { id totalQuantity }
    userErrors { message }
  }
}`

const cartLinesUpdateMutation = `
mutation cartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart { id totalQuantity }
    userErrors { message }
  }
}`

const cartQuery = `
query cart($id: ID!, $first: Int!) {
  cart(id: $id) {
    id
    checkoutUrl
    totalQuantity
    lines(first: $first) {
      edges {
        node {
          id
          quantity
          merchandise {
            ... on ProductVariant {
              id
              title
              price { amount currencyCode }
              product {
                title
                handle
                images(first: 1) {
                  edges { node { url altText } }
                }
              }
            }
          }
        }
      }
    }
  }
}`

type Doer interface {
	Do(ctx context.Context, query string, vars map[string]any, out any) error
}

// CartGateway implements the cart port against the Storefront GraphQL API.
type CartGateway struct {
	client Doer
}

func NewCartGateway(client Doer) *CartGateway {
	return &CartGateway{client: client}
}

type imageNode struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type cartNode struct {
	ID            string `json:"id"`
	CheckoutURL   string `json:"checkoutUrl"`
	TotalQuantity int    `json:"totalQuantity"`
	Lines         sf.Connection[struct {
		ID          string `json:"id"`
		Quantity    int    `json:"quantity"`
		Merchandise struct {
			ID    string `json:"id"`
			Title string `json:"title"`
			Price struct {
				Amount       string `json:"amount"`
				CurrencyCode string `json:"currencyCode"`
			} `json:"price"`
			Product struct {
				Title  string                   `json:"title"`
				Handle string                   `json:"handle"`
				Images sf.Connection[imageNode] `json:"images"`
			} `json:"product"`
		} `json:"merchandise"`
	}] `json:"lines"`
}

type userErrorNode struct {
	Message string `json:"message"`
}

func (g *CartGateway) CreateCart(ctx context.Context) (domain.Cart, error) {
	var out struct {
		CartCreate struct {
			Cart *cartNode `json:"cart"`
		} `json:"cartCreate"`
	}
	if err := g.client.Do(ctx, cartCreateMutation, nil, &out); err != nil {
		return domain.Cart{}, err
	}
	if out.CartCreate.Cart == nil || out.CartCreate.Cart.ID == "" {
		return domain.Cart{}, errors.New("cartCreate returned no cart")
	}
	return toDomain(*out.CartCreate.Cart), nil
}

func (g *CartGateway) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	var out struct {
		Cart *cartNode `json:"cart"`
	}
	vars := map[string]any{"id": cartID, "first": maxCartLines}
	if err := g.client.Do(ctx, cartQuery, vars, &out); err != nil {
		return nil, err
	}
	if out.Cart == nil {
		return nil, nil
	}
	c := toDomain(*out.Cart)
	return &c, nil
}

// VariantAvailability treats an unknown variant as not for sale with nothing
// available.
func (g *CartGateway) VariantAvailability(ctx context.Context, variantID string) (domain.Availability, error) {
	var out struct {
		Node *struct {
			ID                string `json:"id"`
			Title             string `json:"title"`
			AvailableForSale  bool   `json:"availableForSale"`
			QuantityAvailable any    `json:"quantityAvailable"`
			Product           struct {
				Title string `json:"title"`
			} `json:"product"`
		} `json:"node"`
	}
	if err := g.client.Do(ctx, variantQuery, map[string]any{"id": variantID}, &out); err != nil {
		return domain.Availability{}, err
	}
	if out.Node == nil {
		return domain.Availability{VariantID: variantID}, nil
	}

	// quantityAvailable is null when the shop does not track inventory.
	qty, err := cast.ToIntE(out.Node.QuantityAvailable)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("quantityAvailable: %w", err)
	}

	return domain.Availability{
		VariantID:         variantID,
		Title:             out.Node.Title,
		ProductTitle:      out.Node.Product.Title,
		AvailableForSale:  out.Node.AvailableForSale,
		QuantityAvailable: qty,
	}, nil
}

func (g *CartGateway) AddLines(ctx context.Context, cartID string, lines []domain.LineInput) ([]domain.UserError, error) {
	in := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		in = append(in, map[string]any{"merchandiseId": l.MerchandiseID, "quantity": l.Quantity})
	}

	var out struct {
		CartLinesAdd struct {
			UserErrors []userErrorNode `json:"userErrors"`
		} `json:"cartLinesAdd"`
	}
	vars := map[string]any{"cartId": cartID, "lines": in}
	if err := g.client.Do(ctx, cartLinesAddMutation, vars, &out); err != nil {
		return nil, err
	}
	return toUserErrors(out.CartLinesAdd.UserErrors), nil
}

func (g *CartGateway) UpdateLines(ctx context.Context, cartID string, lines []domain.LineUpdate) ([]domain.UserError, error) {
	in := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		in = append(in, map[string]any{"id": l.LineID, "quantity": l.Quantity})
	}

	var out struct {
		CartLinesUpdate struct {
			UserErrors []userErrorNode `json:"userErrors"`
		} `json:"cartLinesUpdate"`
	}
	vars := map[string]any{"cartId": cartID, "lines": in}
	if err := g.client.Do(ctx, cartLinesUpdateMutation, vars, &out); err != nil {
		return nil, err
	}
	return toUserErrors(out.CartLinesUpdate.UserErrors), nil
}

func toUserErrors(nodes []userErrorNode) []domain.UserError {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]domain.UserError, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, domain.UserError{Message: n.Message})
	}
	return out
}

func toDomain(n cartNode) domain.Cart {
	cart := domain.Cart{
		ID:            n.ID,
		CheckoutURL:   n.CheckoutURL,
		TotalQuantity: n.TotalQuantity,
	}
	for _, l := range n.Lines.Nodes() {
		m := l.Merchandise
		line := domain.Line{
			ID:       l.ID,
			Quantity: l.Quantity,
			Merchandise: domain.Merchandise{
				VariantID: m.ID,
				Title:     m.Title,
				Price:     domain.Money{Amount: m.Price.Amount, CurrencyCode: m.Price.CurrencyCode},
				Product: domain.ProductRef{
					Title:  m.Product.Title,
					Handle: m.Product.Handle,
				},
			},
		}
		if imgs := m.Product.Images.Nodes(); len(imgs) > 0 {
			line.Merchandise.Product.Image = &domain.Image{URL: imgs[0].URL, AltText: imgs[0].AltText}
		}
		cart.Lines = append(cart.Lines, line)
	}
	return cart
}
