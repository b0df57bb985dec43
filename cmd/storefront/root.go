package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(load depsLoader) *cobra.Command {
	var d *deps

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse a Shopify storefront and manage a cart from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			d, err = load(cmd.Context())
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if d == nil {
				return nil
			}
			return d.close()
		},
	}

	get := func() *deps { return d }
	root.AddCommand(
		newMenuCmd(get),
		newProductCmd(get),
		newSearchCmd(get),
		newCollectionCmd(get),
		newCollectionsCmd(get),
		newCartCmd(get),
		newCheckoutCmd(get),
		newLoginCmd(get),
		newRegisterCmd(get),
		newLogoutCmd(get),
	)
	return root
}
