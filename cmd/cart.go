package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anandita/storefront/cart/pkg/response"
	"github.com/anandita/storefront/internal/money"
)

func printCart(w io.Writer, cart response.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, item := range cart.CartItems {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			item.ID, item.Name, money.Format(item.Price), item.Quantity,
			money.Format(item.Subtotal))
	}
	_ = tw.Flush()

	summary := cart.Summary()
	fmt.Fprintf(w, "\nItems: %d\n", summary.ItemCount)
	fmt.Fprintf(w, "Subtotal: %s\n", money.Format(summary.Subtotal))
	fmt.Fprintf(w, "Tax (10%%): %s\n", money.Format(summary.Tax))
	fmt.Fprintf(w, "Total: %s\n", money.Format(summary.GrandTotal))
}

func newCartCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := a.carts.LoadCart(cmd.Context(), a.userID())
			if err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), cart)
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <productId>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context()
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			product, err := a.products.FindProductById(c, productID)
			if err != nil {
				a.terminal.Error("Failed to add item to cart. Please try again.")
				return err
			}
			if err := a.carts.AddItem(c, a.userID(), product); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), a.carts.View().Cart)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <cartItemId> <quantity>",
		Short: "Set the quantity of a cart line, zero removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cartItemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid cart item id %q", args[0])
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			if err := a.carts.SetQuantity(cmd.Context(), a.userID(), cartItemID, quantity); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), a.carts.View().Cart)
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <cartItemId>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cartItemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid cart item id %q", args[0])
			}
			if err := a.carts.RemoveItem(cmd.Context(), a.userID(), cartItemID); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), a.carts.View().Cart)
			return nil
		},
	}
	removeCmd.Flags().BoolVar(&a.assumeYes, "yes", false, "remove without asking for confirmation")

	cmd.AddCommand(addCmd, setCmd, removeCmd)
	return cmd
}
