package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dwikikusuma/shoping-storefront/internal/account/domain"
)

func newLoginCmd(get func() *deps) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the customer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := get().account.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (token expires %s)\n", email, tok.ExpiresAt)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(get func() *deps) *cobra.Command {
	var in domain.RegisterInput
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a customer account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := get().account.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s\n", c.Email)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.FirstName, "first-name", "", "first name")
	f.StringVar(&in.LastName, "last-name", "", "last name")
	f.StringVar(&in.Email, "email", "", "email")
	f.StringVar(&in.Password, "password", "", "password")
	f.StringVar(&in.RePassword, "confirm-password", "", "password again")
	return cmd
}

func newLogoutCmd(get func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the customer token; the cart is kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().account.Logout(cmd.Context())
		},
	}
}
