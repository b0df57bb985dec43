package domain

type Money struct {
	Amount       string
	CurrencyCode string
}

type Image struct {
	URL     string
	AltText string
}

type ProductRef struct {
	Title  string
	Handle string
	Image  *Image
}

type Merchandise struct {
	VariantID string
	Title     string
	Price     Money
	Product   ProductRef
}

// Line is one row of a remote cart. ID is the line id, not the variant id.
type Line struct {
	ID          string
	Quantity    int
	Merchandise Merchandise
}

// Cart mirrors the remote cart. TotalQuantity is whatever the remote computed.
type Cart struct {
	ID            string
	CheckoutURL   string
	TotalQuantity int
	Lines         []Line
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// LinesForVariant returns every line referencing variantID. Repeated adds of
// the same variant may produce more than one.
func (c Cart) LinesForVariant(variantID string) []Line {
	var out []Line
	for _, l := range c.Lines {
		if l.Merchandise.VariantID == variantID {
			out = append(out, l)
		}
	}
	return out
}

// Availability is a point-in-time stock read for a variant; never cached.
type Availability struct {
	VariantID         string
	Title             string
	ProductTitle      string
	AvailableForSale  bool
	QuantityAvailable int
}

func (a Availability) Covers(quantity int) bool {
	return a.AvailableForSale && a.QuantityAvailable >= quantity
}

type LineInput struct {
	MerchandiseID string
	Quantity      int
}

type LineUpdate struct {
	LineID   string
	Quantity int
}

type UserError struct {
	Message string
}
