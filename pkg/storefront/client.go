package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultAPIVersion = "2024-01"

	tokenHeader = "X-Shopify-Storefront-Access-Token"
)

// Config holds what is needed to reach one shop's Storefront GraphQL endpoint.
type Config struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string

	// Endpoint overrides the URL derived from ShopDomain and APIVersion.
	Endpoint string

	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client posts GraphQL documents to the Storefront API. It performs no retries
// and enforces no timeout beyond what the supplied http.Client does.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

func New(cfg Config) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		domain := strings.TrimSuffix(strings.TrimSpace(cfg.ShopDomain), "/")
		if domain == "" {
			return nil, errors.New("storefront: shop domain is required")
		}
		version := cfg.APIVersion
		if version == "" {
			version = DefaultAPIVersion
		}
		endpoint = fmt.Sprintf("https://%s/api/%s/graphql.json", domain, version)
	}
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, errors.New("storefront: access token is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		endpoint:   endpoint,
		token:      cfg.AccessToken,
		httpClient: httpClient,
		log:        log.With(slog.String("component", "storefront")),
	}, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Do sends query with vars and decodes the "data" member into out (which may
// be nil). Failures are reported as *TransportError, *HTTPError or
// *GraphQLError.
func (c *Client) Do(ctx context.Context, query string, vars map[string]any, out any) error {
	reqID := uuid.NewString()
	log := c.log.With(slog.String("request_id", reqID))

	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("storefront: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("storefront: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("graphql request failed", slog.Any("err", err))
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}
	log.Debug("graphql response",
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode}
		if decodeErr == nil && len(env.Errors) > 0 {
			httpErr.Message = env.Errors[0].Message
		}
		return httpErr
	}
	if decodeErr != nil {
		return fmt.Errorf("storefront: decode response: %w", decodeErr)
	}

	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return &GraphQLError{Messages: msgs}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("storefront: decode data: %w", err)
	}
	return nil
}
