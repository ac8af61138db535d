package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anandita/storefront/internal/money"
	"github.com/anandita/storefront/order/pkg/response"
)

const orderDateLayout = "January 2, 2006 03:04 PM"

func printOrders(w io.Writer, orders []response.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tDATE\tSTATUS\tTOTAL")
	for _, order := range orders {
		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\n",
			order.ID, order.CreatedAt.Format(orderDateLayout), order.Status,
			money.Format(order.GrandTotal))
	}
	_ = tw.Flush()
}

func printOrderDetail(w io.Writer, detail response.OrderDetail) {
	fmt.Fprintf(w, "Order #%d\n", detail.ID)
	fmt.Fprintf(w, "Placed: %s\n", detail.CreatedAt.Format(orderDateLayout))
	fmt.Fprintf(w, "Status: %s\n\n", detail.Status)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tPRICE\tQTY\tSUBTOTAL")
	for _, item := range detail.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			item.ProductName, money.Format(item.ProductPrice), item.Quantity,
			money.Format(item.Subtotal))
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\nSubtotal: %s\n", money.Format(detail.TotalAmount))
	fmt.Fprintf(w, "Tax: %s\n", money.Format(detail.TaxAmount))
	fmt.Fprintf(w, "Grand Total: %s\n", money.Format(detail.GrandTotal))
}

func newOrdersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orders [orderId]",
		Short: "Show the order history",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context()
			if len(args) == 1 {
				orderID, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid order id %q", args[0])
				}
				detail, err := a.orders.FindOrderDetail(c, orderID)
				if err != nil {
					a.terminal.Error("Failed to load order details. Please try again.")
					return err
				}
				printOrderDetail(cmd.OutOrStdout(), detail)
				return nil
			}

			orders, err := a.orders.FindOrders(c, a.userID())
			if err != nil {
				a.terminal.Error("Failed to load orders. Please try again.")
				return err
			}
			printOrders(cmd.OutOrStdout(), orders)
			return nil
		},
	}
}
