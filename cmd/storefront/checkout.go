package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dwikikusuma/shoping-storefront/pkg/money"
)

func newCheckoutCmd(get func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Print the cart summary and the hosted checkout link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := get()
			if err := d.cart.Init(cmd.Context()); err != nil {
				return err
			}

			summary, err := d.checkout.Begin(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, l := range summary.Lines {
				fmt.Fprintf(w, "%d x %s (%s)  %s\n", l.Quantity, l.ProductTitle, l.Title, money.FormatDecimal(l.LineTotal.Amount))
			}
			fmt.Fprintf(w, "Subtotal  %s\n", money.FormatDecimal(summary.Subtotal.Amount))
			fmt.Fprintln(w, summary.CheckoutURL)
			return nil
		},
	}
}
