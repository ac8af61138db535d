package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	inErrors "github.com/anandita/storefront/internal/errors"
	"github.com/anandita/storefront/internal/money"
)

func newCheckoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for everything in the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmation, err := a.checkouts.Checkout(cmd.Context(), a.userID())
			if err != nil {
				if errors.Is(err, inErrors.ErrEmptyCart) {
					return nil
				}
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Order Placed Successfully!")
			fmt.Fprintf(out, "Order Number: #%d\n", confirmation.OrderID)
			fmt.Fprintf(out, "Total Amount: %s\n", money.Format(confirmation.GrandTotal))
			return nil
		},
	}
}
