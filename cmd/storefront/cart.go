package main

import (
	"fmt"
	"io"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/dwikikusuma/shoping-storefront/internal/cart/domain"
	"github.com/dwikikusuma/shoping-storefront/pkg/money"
)

func newCartCmd(get func() *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show or change the cart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := get()
			if err := d.cart.Init(cmd.Context()); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), d)
			return nil
		},
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <variant-id>",
		Short: "Add a variant to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := get()
			if err := d.cart.Init(cmd.Context()); err != nil {
				return err
			}
			if err := d.cart.AddLine(cmd.Context(), args[0], qty); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), d)
			return nil
		},
	}
	add.Flags().IntVarP(&qty, "quantity", "q", 1, "number of items")

	update := &cobra.Command{
		Use:   "update <line-id> <quantity>",
		Short: "Set the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cast.ToIntE(args[1])
			if err != nil {
				return fmt.Errorf("quantity %q: %w", args[1], err)
			}
			return changeLine(cmd, get(), args[0], func(domain.Line) int { return n })
		},
	}

	var all bool
	remove := &cobra.Command{
		Use:   "remove <line-id>",
		Short: "Take one item off a cart line, or the whole line with --all",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return changeLine(cmd, get(), args[0], func(l domain.Line) int {
				if all {
					return 0
				}
				return l.Quantity - 1
			})
		},
	}
	remove.Flags().BoolVar(&all, "all", false, "remove the whole line")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Forget the cart; the next command starts a new one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().cart.Reset(cmd.Context())
		},
	}

	cmd.AddCommand(show, add, update, remove, reset)
	return cmd
}

func changeLine(cmd *cobra.Command, d *deps, lineID string, quantity func(domain.Line) int) error {
	ctx := cmd.Context()
	if err := d.cart.Init(ctx); err != nil {
		return err
	}

	cart, _ := d.cart.Snapshot()
	line, ok := findLine(cart, lineID)
	if !ok {
		return fmt.Errorf("no line %s in cart", lineID)
	}
	if err := d.cart.UpdateLine(ctx, line.ID, line.Merchandise.VariantID, quantity(line)); err != nil {
		return err
	}
	printCart(cmd.OutOrStdout(), d)
	return nil
}

func findLine(cart domain.Cart, lineID string) (domain.Line, bool) {
	for _, l := range cart.Lines {
		if l.ID == lineID {
			return l, true
		}
	}
	return domain.Line{}, false
}

func printCart(w io.Writer, d *deps) {
	cart, ok := d.cart.Snapshot()
	if !ok || cart.IsEmpty() {
		fmt.Fprintln(w, "Your cart is currently empty.")
		return
	}

	for _, l := range cart.Lines {
		m := l.Merchandise
		fmt.Fprintf(w, "%d x %s (%s)  %s  [%s]\n",
			l.Quantity, m.Product.Title, m.Title, money.MustFormat(m.Price.Amount), l.ID)
	}
	fmt.Fprintf(w, "Items: %d\n", cart.TotalQuantity)
}
