package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anandita/storefront/internal/money"
	"github.com/anandita/storefront/product/service"
	"github.com/anandita/storefront/product/pkg/response"
)

func printProducts(w io.Writer, products []response.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		stock := fmt.Sprintf("%d", p.Stock)
		if !p.InStock() {
			stock = "out of stock"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Category, money.Format(p.Price), stock)
	}
	_ = tw.Flush()
}

func printProductDetail(w io.Writer, p response.Product) {
	fmt.Fprintf(w, "%s\n", p.Name)
	if p.Category != "" {
		fmt.Fprintf(w, "Category: %s\n", p.Category)
	}
	fmt.Fprintf(w, "Price: %s\n", money.Format(p.Price))
	if p.InStock() {
		fmt.Fprintf(w, "Stock: %d units available\n", p.Stock)
	} else {
		fmt.Fprintln(w, "Stock: out of stock")
	}
	description := p.Description
	if description == "" {
		description = "No description available."
	}
	fmt.Fprintf(w, "\n%s\n", description)
}

func newShopCommand(a *app) *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "shop [productId]",
		Short: "Browse the product catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context()
			if len(args) == 1 {
				productID, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid product id %q", args[0])
				}
				product, err := a.products.FindProductById(c, productID)
				if err != nil {
					a.terminal.Error("Failed to load product. Please try again.")
					return err
				}
				printProductDetail(cmd.OutOrStdout(), product)
				return nil
			}

			products, err := a.products.FindProducts(c)
			if err != nil {
				a.terminal.Error("Failed to load products. Please try again.")
				return err
			}
			printProducts(cmd.OutOrStdout(), service.Filter(products, search, category))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by name or description")
	cmd.Flags().StringVar(&category, "category", "", "filter by exact category")
	return cmd
}
