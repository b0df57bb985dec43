package app

import (
	"regexp"
	"strings"

	"github.com/dwikikusuma/shoping-storefront/internal/catalog/domain"
)

const (
	ShopAllLabel = "SHOP ALL"

	socksLabel = "socks"
)

var leadingSocks = regexp.MustCompile(`(?i)^SOCKS[\s\p{Zs}]+`)

// SplitCollectionsByPrefix builds the two-tier menu for one group prefix such
// as "MAN". Labels of one or two words are secondary, longer ones primary.
// A collection titled exactly like the prefix becomes the leading SHOP ALL
// entry; a secondary "socks" entry is moved to the front. Titles not starting
// with the prefix, and entries without title or handle, are dropped.
//
// It has no side effects and is safe for concurrent use.
func SplitCollectionsByPrefix(collections []domain.Collection, prefix string) domain.SplitResult {
	primary := make([]domain.SplitNode, 0)
	secondary := make([]domain.SplitNode, 0)

	upperPrefix := strings.ToUpper(strings.TrimSpace(prefix))
	stripPrefix := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(upperPrefix) + `[\s\p{Zs}]+`)

	var (
		hasShopAll    bool
		shopAllHandle string
	)

	for _, c := range collections {
		if c.Title == "" || c.Handle == "" {
			continue
		}

		title := strings.TrimSpace(c.Title)
		upper := strings.ToUpper(title)

		if upper == upperPrefix {
			// Last one wins.
			hasShopAll = true
			shopAllHandle = c.Handle
			continue
		}
		if !strings.HasPrefix(upper, upperPrefix) {
			continue
		}

		label := stripPrefix.ReplaceAllString(title, "")

		if len(strings.Fields(label)) <= 2 {
			secondary = append(secondary, domain.SplitNode{Label: label, Handle: c.Handle})
			continue
		}
		primary = append(primary, domain.SplitNode{
			Label:  leadingSocks.ReplaceAllString(label, ""),
			Handle: c.Handle,
		})
	}

	for i, n := range secondary {
		if strings.ToLower(n.Label) != socksLabel {
			continue
		}
		if i > 0 {
			copy(secondary[1:i+1], secondary[:i])
			secondary[0] = n
		}
		break
	}

	if hasShopAll {
		primary = append([]domain.SplitNode{{Label: ShopAllLabel, Handle: shopAllHandle}}, primary...)
	}

	return domain.SplitResult{Primary: primary, Secondary: secondary}
}
