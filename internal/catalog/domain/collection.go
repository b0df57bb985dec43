package domain

type Collection struct {
	ID     string
	Title  string
	Handle string
	Image  *Image
}

// SplitNode is a menu entry: the collection title without its group prefix.
type SplitNode struct {
	Label  string
	Handle string
}

// SplitResult is the two-tier menu for one prefix. Order is significant.
type SplitResult struct {
	Primary   []SplitNode
	Secondary []SplitNode
}

type PageInfo struct {
	HasNextPage bool
	EndCursor   string
}

// CollectionPage is one page of a collection's products.
type CollectionPage struct {
	Collection Collection
	Products   []Product
	PageInfo   PageInfo
}
