package storefront

import (
	"context"

	"github.com/dwikikusuma/shoping-storefront/internal/account/domain"
)

const accessTokenCreateMutation = `
mutation customerAccessTokenCreate($input: CustomerAccessTokenCreateInput!) {
  customerAccessTokenCreate(input: $input) {
    customerAccessToken { accessToken expiresAt }
    customerUserErrors { code field message }
  }
}`

const customerCreateMutation = `
mutation customerCreate($input: CustomerCreateInput!) {
  customerCreate(input: $input) {
    customer { id email firstName lastName }
    customerUserErrors { code field message }
  }
}`

type Doer interface {
	Do(ctx context.Context, query string, vars map[string]any, out any) error
}

// AuthGateway implements app.AuthGateway against the Storefront API.
type AuthGateway struct {
	client Doer
}

func NewAuthGateway(client Doer) *AuthGateway {
	return &AuthGateway{client: client}
}

type userErrorNode struct {
	Code    string   `json:"code"`
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

func (g *AuthGateway) CreateAccessToken(ctx context.Context, in domain.LoginInput) (*domain.AccessToken, []domain.UserError, error) {
	var out struct {
		Payload struct {
			Token *struct {
				AccessToken string `json:"accessToken"`
				ExpiresAt   string `json:"expiresAt"`
			} `json:"customerAccessToken"`
			UserErrors []userErrorNode `json:"customerUserErrors"`
		} `json:"customerAccessTokenCreate"`
	}
	vars := map[string]any{"input": map[string]any{
		"email":    in.Email,
		"password": in.Password,
	}}
	if err := g.client.Do(ctx, accessTokenCreateMutation, vars, &out); err != nil {
		return nil, nil, err
	}

	p := out.Payload
	var token *domain.AccessToken
	if p.Token != nil {
		token = &domain.AccessToken{Token: p.Token.AccessToken, ExpiresAt: p.Token.ExpiresAt}
	}
	return token, toUserErrors(p.UserErrors), nil
}

func (g *AuthGateway) CreateCustomer(ctx context.Context, in domain.RegisterInput) (*domain.Customer, []domain.UserError, error) {
	var out struct {
		Payload struct {
			Customer *struct {
				ID        string `json:"id"`
				Email     string `json:"email"`
				FirstName string `json:"firstName"`
				LastName  string `json:"lastName"`
			} `json:"customer"`
			UserErrors []userErrorNode `json:"customerUserErrors"`
		} `json:"customerCreate"`
	}
	vars := map[string]any{"input": map[string]any{
		"firstName":        in.FirstName,
		"lastName":         in.LastName,
		"email":            in.Email,
		"password":         in.Password,
		"acceptsMarketing": false,
	}}
	if err := g.client.Do(ctx, customerCreateMutation, vars, &out); err != nil {
		return nil, nil, err
	}

	p := out.Payload
	var customer *domain.Customer
	if c := p.Customer; c != nil {
		customer = &domain.Customer{ID: c.ID, Email: c.Email, FirstName: c.FirstName, LastName: c.LastName}
	}
	return customer, toUserErrors(p.UserErrors), nil
}

func toUserErrors(nodes []userErrorNode) []domain.UserError {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]domain.UserError, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, domain.UserError{Code: n.Code, Field: n.Field, Message: n.Message})
	}
	return out
}
