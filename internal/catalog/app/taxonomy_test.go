package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dwikikusuma/shoping-storefront/internal/catalog/domain"
)

func cols(pairs ...string) []domain.Collection {
	out := make([]domain.Collection, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.Collection{Title: pairs[i], Handle: pairs[i+1]})
	}
	return out
}

func TestSplitCollectionsByPrefix(t *testing.T) {
	tests := []struct {
		name   string
		in     []domain.Collection
		prefix string
		want   domain.SplitResult
	}{
		{
			name: "shop all, socks first, two-word labels stay secondary",
			in: cols(
				"MAN", "man",
				"MAN SHOES", "man-shoes",
				"MAN SOCKS CREW", "socks-crew",
				"MAN SOCKS", "socks",
			),
			prefix: "MAN",
			want: domain.SplitResult{
				Primary: []domain.SplitNode{{Label: "SHOP ALL", Handle: "man"}},
				Secondary: []domain.SplitNode{
					{Label: "SOCKS", Handle: "socks"},
					{Label: "SHOES", Handle: "man-shoes"},
					{Label: "SOCKS CREW", Handle: "socks-crew"},
				},
			},
		},
		{
			name: "deep labels are primary and lose a leading socks word",
			in: cols(
				"Man Socks Ankle Low", "ankle-low",
				"MAN KNITWEAR AND SWEATERS", "knit",
				"man t-shirts", "tees",
			),
			prefix: "man",
			want: domain.SplitResult{
				Primary: []domain.SplitNode{
					{Label: "Ankle Low", Handle: "ankle-low"},
					{Label: "KNITWEAR AND SWEATERS", Handle: "knit"},
				},
				Secondary: []domain.SplitNode{{Label: "t-shirts", Handle: "tees"}},
			},
		},
		{
			name: "other groups and incomplete entries are dropped",
			in: cols(
				"WOMAN DRESSES", "woman-dresses",
				"", "no-title",
				"MAN BAGS", "",
				"ACCESSORIES", "acc",
				"MAN HATS", "hats",
			),
			prefix: "MAN",
			want: domain.SplitResult{
				Primary:   []domain.SplitNode{},
				Secondary: []domain.SplitNode{{Label: "HATS", Handle: "hats"}},
			},
		},
		{
			name: "last exact match is the shop all handle",
			in: cols(
				" man ", "first",
				"MAN", "second",
			),
			prefix: "MAN",
			want: domain.SplitResult{
				Primary:   []domain.SplitNode{{Label: "SHOP ALL", Handle: "second"}},
				Secondary: []domain.SplitNode{},
			},
		},
		{
			name: "socks already first keeps order",
			in: cols(
				"WOMAN socks", "w-socks",
				"WOMAN TOPS", "w-tops",
				"WOMAN SOCKS", "w-socks-2",
			),
			prefix: "WOMAN",
			want: domain.SplitResult{
				Primary: []domain.SplitNode{},
				Secondary: []domain.SplitNode{
					{Label: "socks", Handle: "w-socks"},
					{Label: "TOPS", Handle: "w-tops"},
					{Label: "SOCKS", Handle: "w-socks-2"},
				},
			},
		},
		{
			name: "non-breaking spaces separate words",
			in: cols(
				"MAN\u00a0SHOES", "man-shoes",
				"MAN SOCKS\u00a0KNEE HIGH", "man-knee-high",
			),
			prefix: "MAN",
			want: domain.SplitResult{
				Primary:   []domain.SplitNode{{Label: "KNEE HIGH", Handle: "man-knee-high"}},
				Secondary: []domain.SplitNode{{Label: "SHOES", Handle: "man-shoes"}},
			},
		},
		{
			name:   "empty input",
			in:     nil,
			prefix: "MAN",
			want:   domain.SplitResult{Primary: []domain.SplitNode{}, Secondary: []domain.SplitNode{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCollectionsByPrefix(tt.in, tt.prefix)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("split mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitCollectionsByPrefix_Idempotent(t *testing.T) {
	in := cols(
		"MAN SOCKS", "socks",
		"MAN JACKETS AND COATS", "jackets",
		"MAN", "man",
		"MAN SHOES", "shoes",
	)
	snapshot := append([]domain.Collection(nil), in...)

	first := SplitCollectionsByPrefix(in, "MAN")
	second := SplitCollectionsByPrefix(in, "MAN")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second call differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(snapshot, in); diff != "" {
		t.Fatalf("input was modified:\n%s", diff)
	}
}

func TestSplitCollectionsByPrefix_NoEntryInBothLists(t *testing.T) {
	in := cols(
		"MAN SOCKS", "socks",
		"MAN SOCKS CREW LONG", "crew",
		"MAN SHOES", "shoes",
		"MAN", "man",
	)
	got := SplitCollectionsByPrefix(in, "MAN")

	seen := map[string]bool{}
	for _, n := range got.Secondary {
		seen[n.Handle] = true
	}
	for _, n := range got.Primary {
		if seen[n.Handle] && n.Label != ShopAllLabel {
			t.Fatalf("handle %q in both lists", n.Handle)
		}
	}
}
