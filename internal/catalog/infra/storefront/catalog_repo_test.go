package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/shoping-storefront/internal/catalog/app"
	sf "github.com/dwikikusuma/shoping-storefront/pkg/storefront"
)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newRepo(t *testing.T, respond func(req gqlRequest) string) *CatalogRepo {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(respond(req)))
	}))
	t.Cleanup(srv.Close)

	client, err := sf.New(sf.Config{Endpoint: srv.URL, AccessToken: "tok"})
	require.NoError(t, err)
	return NewCatalogRepo(client)
}

func TestProductByHandle(t *testing.T) {
	repo := newRepo(t, func(req gqlRequest) string {
		assert.Equal(t, "crew-black", req.Variables["handle"])
		return `{"data":{"product":{
			"id":"gid://shopify/Product/1","title":"Crew Black","handle":"crew-black","descriptionHtml":"<p>x</p>",
			"collections":{"edges":[{"node":{"id":"c1","title":"MAN SOCKS","handle":"man-socks"}}]},
			"options":[{"id":"o1","name":"Accessory size","values":["S","M"]}],
			"images":{"edges":[{"node":{"url":"https://img/1.jpg","altText":"a"}}]},
			"variants":{"edges":[
				{"node":{"id":"v1","title":"S","selectedOptions":[{"name":"Accessory size","value":"S"}],"price":{"amount":"12.0","currencyCode":"EUR"}}},
				{"node":{"id":"v2","title":"M","selectedOptions":{"name":"Accessory size","value":"M"},"price":{"amount":"12.0","currencyCode":"EUR"}}}
			]}}}}`
	})

	p, err := repo.ProductByHandle(context.Background(), "crew-black")
	require.NoError(t, err)
	assert.Equal(t, "Crew Black", p.Title)
	require.Len(t, p.Collections, 1)
	assert.Equal(t, "man-socks", p.Collections[0].Handle)
	require.Len(t, p.Options, 1)
	assert.Equal(t, []string{"S", "M"}, p.Options[0].Values)
	require.Len(t, p.Variants, 2)

	v, err := app.VariantForSize(p, "M")
	require.NoError(t, err)
	assert.Equal(t, "v2", v.ID)
	assert.Nil(t, p.MinPrice)
}

func TestProductByHandle_NotFound(t *testing.T) {
	repo := newRepo(t, func(gqlRequest) string { return `{"data":{"product":null}}` })

	_, err := repo.ProductByHandle(context.Background(), "nope")
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestSearchProducts(t *testing.T) {
	repo := newRepo(t, func(req gqlRequest) string {
		assert.Equal(t, "crew", req.Variables["query"])
		assert.EqualValues(t, 6, req.Variables["first"])
		return `{"data":{"products":{"edges":[
			{"node":{"id":"p1","title":"Crew Black","handle":"crew-black",
				"images":{"edges":[]},
				"priceRange":{"minVariantPrice":{"amount":"9.5","currencyCode":"EUR"}},
				"variants":{"edges":[]}}}
		]}}}`
	})

	got, err := repo.SearchProducts(context.Background(), "crew", 6)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].MinPrice)
	assert.Equal(t, "9.5", got[0].MinPrice.Amount)
}

func TestListCollections(t *testing.T) {
	repo := newRepo(t, func(req gqlRequest) string {
		assert.EqualValues(t, 50, req.Variables["first"])
		return `{"data":{"collections":{"edges":[
			{"node":{"id":"c1","title":"MAN","handle":"man","image":null}},
			{"node":{"id":"c2","title":"MAN SHOES","handle":"man-shoes","image":{"url":"https://img/c2.jpg","altText":""}}}
		]}}}`
	})

	got, err := repo.ListCollections(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Image)
	require.NotNil(t, got[1].Image)
	assert.Equal(t, "https://img/c2.jpg", got[1].Image.URL)
}

func TestCollectionByHandle(t *testing.T) {
	t.Run("first page sends null cursor", func(t *testing.T) {
		repo := newRepo(t, func(req gqlRequest) string {
			v, present := req.Variables["after"]
			assert.True(t, present)
			assert.Nil(t, v)
			return `{"data":{"collection":{"id":"c1","title":"MAN SOCKS","handle":"man-socks","image":null,
				"products":{"pageInfo":{"hasNextPage":true,"endCursor":"cur-1"},
				"edges":[{"node":{"id":"p1","title":"Crew","handle":"crew-black","images":{"edges":[]},"variants":{"edges":[]}}}]}}}}`
		})

		page, err := repo.CollectionByHandle(context.Background(), "man-socks", 50, "")
		require.NoError(t, err)
		assert.Equal(t, "MAN SOCKS", page.Collection.Title)
		require.Len(t, page.Products, 1)
		assert.True(t, page.PageInfo.HasNextPage)
		assert.Equal(t, "cur-1", page.PageInfo.EndCursor)
	})

	t.Run("next page passes cursor", func(t *testing.T) {
		repo := newRepo(t, func(req gqlRequest) string {
			assert.Equal(t, "cur-1", req.Variables["after"])
			return `{"data":{"collection":{"id":"c1","title":"MAN SOCKS","handle":"man-socks",
				"products":{"pageInfo":{"hasNextPage":false,"endCursor":null},"edges":[]}}}}`
		})

		page, err := repo.CollectionByHandle(context.Background(), "man-socks", 50, "cur-1")
		require.NoError(t, err)
		assert.False(t, page.PageInfo.HasNextPage)
		assert.Empty(t, page.PageInfo.EndCursor)
	})

	t.Run("missing collection", func(t *testing.T) {
		repo := newRepo(t, func(gqlRequest) string { return `{"data":{"collection":null}}` })
		_, err := repo.CollectionByHandle(context.Background(), "gone", 50, "")
		assert.ErrorIs(t, err, app.ErrNotFound)
	})
}
