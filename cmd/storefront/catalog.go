package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	catalogapp "github.com/dwikikusuma/shoping-storefront/internal/catalog/app"
	"github.com/dwikikusuma/shoping-storefront/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-storefront/pkg/money"
)

func newMenuCmd(get func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "menu [prefix...]",
		Short: "Print the navigation menu grouped by prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := get()
			prefixes := args
			if len(prefixes) == 0 {
				prefixes = d.menuPrefixes
			}

			menu, err := d.catalog.BuildMenu(cmd.Context(), prefixes...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, p := range prefixes {
				split := menu[p]
				fmt.Fprintln(w, strings.ToUpper(p))
				for _, n := range split.Primary {
					fmt.Fprintf(w, "  %s (%s)\n", n.Label, n.Handle)
				}
				for _, n := range split.Secondary {
					fmt.Fprintf(w, "    %s (%s)\n", n.Label, n.Handle)
				}
			}
			return nil
		},
	}
}

func newProductCmd(get func() *deps) *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:   "product <handle>",
		Short: "Show a product and its variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := get()
			p, err := d.catalog.ProductByHandle(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if size != "" {
				v, err := catalogapp.VariantForSize(p, size)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, v.ID)
				return nil
			}

			fmt.Fprintf(w, "%s [%s]\n", p.Title, domain.LegacyID(p.ID))
			for _, v := range p.Variants {
				fmt.Fprintf(w, "  %s  %s  %s\n", v.Title, money.MustFormat(v.Price.Amount), v.ID)
			}

			related, err := d.catalog.RelatedProducts(cmd.Context(), p.Handle)
			if err != nil {
				d.log.Warn("related products unavailable", slog.Any("err", err))
				return nil
			}
			if len(related) > 0 {
				fmt.Fprintln(w, "Also available:")
				printProducts(w, related)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "print only the variant id for this size")
	return cmd
}

func newSearchCmd(get func() *deps) *cobra.Command {
	var first int
	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := get().catalog.SearchProducts(cmd.Context(), args[0], first)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}
	cmd.Flags().IntVarP(&first, "first", "n", catalogapp.DefaultSearchSize, "number of results")
	return cmd
}

func newCollectionCmd(get func() *deps) *cobra.Command {
	var after string
	cmd := &cobra.Command{
		Use:   "collection <handle>",
		Short: "List one page of a collection's products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := get().catalog.CollectionByHandle(cmd.Context(), args[0], after)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, page.Collection.Title)
			printProducts(w, page.Products)
			if page.PageInfo.HasNextPage {
				fmt.Fprintf(w, "More: --after %s\n", page.PageInfo.EndCursor)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&after, "after", "", "cursor from a previous page")
	return cmd
}

func newCollectionsCmd(get func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "collections <keyword>",
		Short: "List collections whose title contains keyword as a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, err := get().catalog.CollectionsByKeyword(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, c := range cols {
				fmt.Fprintf(w, "%s (%s)\n", c.Title, c.Handle)
			}
			return nil
		},
	}
}

func printProducts(w io.Writer, products []domain.Product) {
	for _, p := range products {
		price := ""
		switch {
		case p.MinPrice != nil:
			price = money.MustFormat(p.MinPrice.Amount)
		case len(p.Variants) > 0:
			price = money.MustFormat(p.Variants[0].Price.Amount)
		}
		fmt.Fprintf(w, "  %s  %s  (%s)\n", p.Title, price, p.Handle)
	}
}
