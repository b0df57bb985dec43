package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(Config{Endpoint: srv.URL, AccessToken: "tok"})
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("derives endpoint from domain", func(t *testing.T) {
		c, err := New(Config{ShopDomain: "shop.example.com", AccessToken: "tok"})
		require.NoError(t, err)
		assert.Equal(t, "https://shop.example.com/api/2024-01/graphql.json", c.Endpoint())
	})

	t.Run("missing domain", func(t *testing.T) {
		_, err := New(Config{AccessToken: "tok"})
		require.Error(t, err)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := New(Config{ShopDomain: "shop.example.com"})
		require.Error(t, err)
	})
}

func TestDo_SendsQueryAndDecodesData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "tok", r.Header.Get(tokenHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "query { shop { name } }", req.Query)
		assert.Equal(t, "x", req.Variables["id"])

		_, _ = w.Write([]byte(`{"data":{"shop":{"name":"Demo"}}}`))
	})

	var out struct {
		Shop struct {
			Name string `json:"name"`
		} `json:"shop"`
	}
	err := c.Do(context.Background(), "query { shop { name } }", map[string]any{"id": "x"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Demo", out.Shop.Name)
}

func TestDo_Errors(t *testing.T) {
	t.Run("graphql errors", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errors":[{"message":"bad id"},{"message":"again"}]}`))
		})
		err := c.Do(context.Background(), "{}", nil, nil)

		var gqlErr *GraphQLError
		require.True(t, errors.As(err, &gqlErr))
		assert.Equal(t, []string{"bad id", "again"}, gqlErr.Messages)
		assert.Equal(t, "bad id", gqlErr.First())
	})

	t.Run("http status with message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":[{"message":"Unauthorized"}]}`))
		})
		err := c.Do(context.Background(), "{}", nil, nil)

		var httpErr *HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
		assert.Equal(t, "Unauthorized", httpErr.Error())
	})

	t.Run("http status without body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		err := c.Do(context.Background(), "{}", nil, nil)
		assert.EqualError(t, err, "HTTP error! status: 502")
	})

	t.Run("no response", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c, err := New(Config{Endpoint: url, AccessToken: "tok"})
		require.NoError(t, err)

		err = c.Do(context.Background(), "{}", nil, nil)
		assert.True(t, IsTransport(err))
	})
}

func TestConnectionNodes(t *testing.T) {
	var conn Connection[struct {
		ID string `json:"id"`
	}]
	raw := `{"edges":[{"node":{"id":"a"}},{"node":{"id":"b"}}],"pageInfo":{"hasNextPage":true,"endCursor":"c1"}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &conn))

	nodes := conn.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "a", nodes[0].ID)
	assert.Equal(t, "b", nodes[1].ID)
	require.NotNil(t, conn.PageInfo)
	assert.True(t, conn.PageInfo.HasNextPage)
	assert.Equal(t, "c1", *conn.PageInfo.EndCursor)
}
