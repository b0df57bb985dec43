package storefront

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/shoping-storefront/internal/catalog/app"
	"github.com/dwikikusuma/shoping-storefront/internal/catalog/domain"
	sf "github.com/dwikikusuma/shoping-storefront/pkg/storefront"
)

const variantFields = `
variants(first: 10) {
  edges {
    node {
      id
      title
      selectedOptions { name value }
      price { amount currencyCode }
    }
  }
}`

const productByHandleQuery = `
query getProductByHandle($handle: String!) {
  product(handle: $handle) {
    id
    title
    handle
    descriptionHtml
    collections(first: 10) {
      edges { node { id title handle } }
    }
    options { id name values }
    images(first: 10) {
      edges { node { url altText } }
    }
    ` + variantFields + `
  }
}`

const searchProductsQuery = `
query searchProducts($query: String!, $first: Int!) {
  products(first: $first, query: $query) {
    edges {
      node {
        id
        title
        handle
        images(first: 10) {
          edges { node { url altText } }
        }
        priceRange {
          minVariantPrice { amount currencyCode }
        }
        ` + variantFields + `
      }
    }
  }
}`

const collectionsQuery = `
query collections($first: Int!) {
  collections(first: $first) {
    edges {
      node {
        id
        title
        handle
        image { url altText }
      }
    }
  }
}`

const collectionByHandleQuery = `
query getCollectionByHandle($handle: String!, $first: Int!, $after: String) {
  collection(handle: $handle) {
    id
    title
    handle
    image { url altText }
    products(first: $first, after: $after) {
      pageInfo { hasNextPage endCursor }
      edges {
        node {
          id
          title
          handle
          images(first: 50) {
            edges { node { url altText } }
          }
          ` + variantFields + `
        }
      }
    }
  }
}`

type Doer interface {
	Do(ctx context.Context, query string, vars map[string]any, out any) error
}

// CatalogRepo implements the catalog ports against the Storefront GraphQL API.
type CatalogRepo struct {
	client Doer
}

func NewCatalogRepo(client Doer) *CatalogRepo {
	return &CatalogRepo{client: client}
}

type moneyNode struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type imageNode struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type collectionNode struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Handle string     `json:"handle"`
	Image  *imageNode `json:"image"`
}

type productNode struct {
	ID              string                        `json:"id"`
	Title           string                        `json:"title"`
	Handle          string                        `json:"handle"`
	DescriptionHTML string                        `json:"descriptionHtml"`
	Collections     sf.Connection[collectionNode] `json:"collections"`
	Options         []struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Values []string `json:"values"`
	} `json:"options"`
	Images     sf.Connection[imageNode] `json:"images"`
	PriceRange *struct {
		MinVariantPrice moneyNode `json:"minVariantPrice"`
	} `json:"priceRange"`
	Variants sf.Connection[struct {
		ID              string                 `json:"id"`
		Title           string                 `json:"title"`
		SelectedOptions domain.SelectedOptions `json:"selectedOptions"`
		Price           moneyNode              `json:"price"`
	}] `json:"variants"`
}

func (r *CatalogRepo) ProductByHandle(ctx context.Context, handle string) (domain.Product, error) {
	var out struct {
		Product *productNode `json:"product"`
	}
	if err := r.client.Do(ctx, productByHandleQuery, map[string]any{"handle": handle}, &out); err != nil {
		return domain.Product{}, err
	}
	if out.Product == nil {
		return domain.Product{}, fmt.Errorf("product %q: %w", handle, app.ErrNotFound)
	}
	return toProduct(*out.Product), nil
}

func (r *CatalogRepo) SearchProducts(ctx context.Context, query string, first int) ([]domain.Product, error) {
	var out struct {
		Products sf.Connection[productNode] `json:"products"`
	}
	vars := map[string]any{"query": query, "first": first}
	if err := r.client.Do(ctx, searchProductsQuery, vars, &out); err != nil {
		return nil, err
	}

	nodes := out.Products.Nodes()
	products := make([]domain.Product, 0, len(nodes))
	for _, n := range nodes {
		products = append(products, toProduct(n))
	}
	return products, nil
}

func (r *CatalogRepo) ListCollections(ctx context.Context, first int) ([]domain.Collection, error) {
	var out struct {
		Collections sf.Connection[collectionNode] `json:"collections"`
	}
	if err := r.client.Do(ctx, collectionsQuery, map[string]any{"first": first}, &out); err != nil {
		return nil, err
	}

	nodes := out.Collections.Nodes()
	cols := make([]domain.Collection, 0, len(nodes))
	for _, n := range nodes {
		cols = append(cols, toCollection(n))
	}
	return cols, nil
}

func (r *CatalogRepo) CollectionByHandle(ctx context.Context, handle string, first int, after string) (domain.CollectionPage, error) {
	var out struct {
		Collection *struct {
			collectionNode
			Products sf.Connection[productNode] `json:"products"`
		} `json:"collection"`
	}

	vars := map[string]any{"handle": handle, "first": first, "after": nil}
	if after != "" {
		vars["after"] = after
	}
	if err := r.client.Do(ctx, collectionByHandleQuery, vars, &out); err != nil {
		return domain.CollectionPage{}, err
	}
	if out.Collection == nil {
		return domain.CollectionPage{}, fmt.Errorf("collection %q: %w", handle, app.ErrNotFound)
	}

	page := domain.CollectionPage{Collection: toCollection(out.Collection.collectionNode)}
	for _, n := range out.Collection.Products.Nodes() {
		page.Products = append(page.Products, toProduct(n))
	}
	if pi := out.Collection.Products.PageInfo; pi != nil {
		page.PageInfo.HasNextPage = pi.HasNextPage
		if pi.EndCursor != nil {
			page.PageInfo.EndCursor = *pi.EndCursor
		}
	}
	return page, nil
}

func toCollection(n collectionNode) domain.Collection {
	c := domain.Collection{ID: n.ID, Title: n.Title, Handle: n.Handle}
	if n.Image != nil {
		c.Image = &domain.Image{URL: n.Image.URL, AltText: n.Image.AltText}
	}
	return c
}

func toProduct(n productNode) domain.Product {
	p := domain.Product{
		ID:              n.ID,
		Title:           n.Title,
		Handle:          n.Handle,
		DescriptionHTML: n.DescriptionHTML,
	}
	for _, c := range n.Collections.Nodes() {
		p.Collections = append(p.Collections, toCollection(c))
	}
	for _, o := range n.Options {
		p.Options = append(p.Options, domain.ProductOption{ID: o.ID, Name: o.Name, Values: o.Values})
	}
	for _, img := range n.Images.Nodes() {
		p.Images = append(p.Images, domain.Image{URL: img.URL, AltText: img.AltText})
	}
	for _, v := range n.Variants.Nodes() {
		p.Variants = append(p.Variants, domain.Variant{
			ID:              v.ID,
			Title:           v.Title,
			Price:           domain.Money{Amount: v.Price.Amount, CurrencyCode: v.Price.CurrencyCode},
			SelectedOptions: v.SelectedOptions,
		})
	}
	if n.PriceRange != nil {
		low := n.PriceRange.MinVariantPrice
		p.MinPrice = &domain.Money{Amount: low.Amount, CurrencyCode: low.CurrencyCode}
	}
	return p
}
