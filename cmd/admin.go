package cmd

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/anandita/storefront/product/pkg/request"
)

// upsertFlags binds the shared product fields of admin add and admin update.
func upsertFlags(cmd *cobra.Command, param *request.UpsertProduct, price *string) {
	cmd.Flags().StringVar(&param.Name, "name", "", "product name")
	cmd.Flags().StringVar(&param.Description, "description", "", "product description")
	cmd.Flags().StringVar(&param.Category, "category", "", "product category")
	cmd.Flags().StringVar(&param.ImageUrl, "image-url", "", "product image url")
	cmd.Flags().StringVar(price, "price", "", "unit price, e.g. 19.99")
	cmd.Flags().IntVar(&param.Stock, "stock", 0, "units in stock")
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q", raw)
	}
	return price, nil
}

func newAdminCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the product catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.products.FindProducts(cmd.Context())
			if err != nil {
				a.terminal.Error("Failed to load products. Please try again.")
				return err
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}

	var addParam request.UpsertProduct
	var addPrice string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parsePrice(addPrice)
			if err != nil {
				return err
			}
			addParam.Price = price
			message, err := a.products.InsertProduct(cmd.Context(), addParam)
			if err != nil {
				a.terminal.Error("Failed to save product. Please try again.")
				return err
			}
			if message == "" {
				message = "Product created successfully!"
			}
			a.terminal.Success(message)
			return nil
		},
	}
	upsertFlags(addCmd, &addParam, &addPrice)

	var updateParam request.UpsertProduct
	var updatePrice string
	updateCmd := &cobra.Command{
		Use:   "update <productId>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			price, err := parsePrice(updatePrice)
			if err != nil {
				return err
			}
			updateParam.Price = price
			message, err := a.products.UpdateProduct(cmd.Context(), productID, updateParam)
			if err != nil {
				a.terminal.Error("Failed to save product. Please try again.")
				return err
			}
			if message == "" {
				message = "Product updated successfully!"
			}
			a.terminal.Success(message)
			return nil
		},
	}
	upsertFlags(updateCmd, &updateParam, &updatePrice)

	deleteCmd := &cobra.Command{
		Use:   "delete <productId>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			if !a.Confirm("Are you sure you want to delete this product?") {
				return nil
			}
			message, err := a.products.RemoveProduct(cmd.Context(), productID)
			if err != nil {
				a.terminal.Error("Failed to delete product. Please try again.")
				return err
			}
			if message == "" {
				message = "Product deleted successfully!"
			}
			a.terminal.Success(message)
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&a.assumeYes, "yes", false, "delete without asking for confirmation")

	cmd.AddCommand(listCmd, addCmd, updateCmd, deleteCmd)
	return cmd
}
