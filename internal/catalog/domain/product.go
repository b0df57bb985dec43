package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

type Money struct {
	Amount       string
	CurrencyCode string
}

type Image struct {
	URL     string
	AltText string
}

type ProductOption struct {
	ID     string
	Name   string
	Values []string
}

type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SelectedOptions is what the API reports for a variant's options. Upstream
// payloads carry either one object or an array, so both forms are accepted;
// read through All.
type SelectedOptions struct {
	Single *Option
	Many   []Option
}

func (s SelectedOptions) All() []Option {
	if s.Single != nil {
		return []Option{*s.Single}
	}
	return s.Many
}

func (s SelectedOptions) Has(name, value string) bool {
	for _, o := range s.All() {
		if o.Name == name && o.Value == value {
			return true
		}
	}
	return false
}

func (s *SelectedOptions) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*s = SelectedOptions{}
		return nil
	case b[0] == '[':
		var many []Option
		if err := json.Unmarshal(b, &many); err != nil {
			return err
		}
		*s = SelectedOptions{Many: many}
		return nil
	default:
		var one Option
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*s = SelectedOptions{Single: &one}
		return nil
	}
}

type Variant struct {
	ID              string
	Title           string
	Price           Money
	SelectedOptions SelectedOptions
}

type Product struct {
	ID              string
	Title           string
	Handle          string
	DescriptionHTML string
	Collections     []Collection
	Options         []ProductOption
	Images          []Image
	Variants        []Variant
	MinPrice        *Money
}

// VariantWithOption returns the first variant whose selected options include
// name=value.
func (p Product) VariantWithOption(name, value string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.SelectedOptions.Has(name, value) {
			return v, true
		}
	}
	return Variant{}, false
}

// LegacyID is the trailing segment of a global id such as
// "gid://shopify/ProductVariant/4242".
func LegacyID(gid string) string {
	if i := strings.LastIndex(gid, "/"); i >= 0 {
		return gid[i+1:]
	}
	return gid
}
