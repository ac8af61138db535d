package render

import (
	"fmt"
	"strings"

	"github.com/anandita/storefront/internal/markup"
	"github.com/anandita/storefront/internal/money"
	"github.com/anandita/storefront/product/pkg/response"
)

const (
	cardPlaceholder   = "https://via.placeholder.com/300x200?text=Product+Image"
	detailPlaceholder = "https://via.placeholder.com/400x300?text=Product+Image"
)

// Card renders one product card for the shop grid.
func Card(p response.Product) string {
	category := p.Category
	if category == "" {
		category = "Uncategorized"
	}
	stockStatus := "in-stock"
	stockText := fmt.Sprintf("%d in stock", p.Stock)
	if !p.InStock() {
		stockStatus = "out-of-stock"
		stockText = "Out of stock"
	}
	overlay := ""
	disabled := ""
	if !p.InStock() {
		overlay = `<div class="out-of-stock-overlay">Out of Stock</div>`
		disabled = " disabled"
	}

	return fmt.Sprintf(`<div class="product-card" data-category=%q>
  <div class="product-image"><img src=%q alt=%q>%s</div>
  <div class="product-info">
    <div class="product-category">%s</div>
    <h3 class="product-name">%s</h3>
    <p class="product-description">%s</p>
    <div class="product-footer">
      <div class="product-price">%s</div>
      <div class="product-stock %s">%s</div>
    </div>
    <div class="product-actions">
      <a href="/shop/%d" class="btn btn-secondary">View</a>
      <form method="post" action="/cart/items">
        <input type="hidden" name="product_id" value="%d">
        <button type="submit" class="btn btn-primary"%s>Add to Cart</button>
      </form>
    </div>
  </div>
</div>`,
		markup.Escape(p.Category),
		markup.OrPlaceholder(p.ImageUrl, cardPlaceholder),
		markup.Escape(p.Name),
		overlay,
		markup.Escape(category),
		markup.Escape(p.Name),
		markup.Escape(markup.Truncate(p.Description, 80)),
		money.Format(p.Price),
		stockStatus,
		stockText,
		p.ID,
		p.ID,
		disabled,
	)
}

// Grid renders the whole product grid, or the empty state when nothing
// matched the filter.
func Grid(products []response.Product) string {
	if len(products) == 0 {
		return `<div class="empty-state"><p>No products found.</p></div>`
	}
	cards := make([]string, len(products))
	for i, p := range products {
		cards[i] = Card(p)
	}
	return `<div class="products-grid">` + strings.Join(cards, "\n") + `</div>`
}

// Detail renders the product detail view.
func Detail(p response.Product) string {
	category := p.Category
	if category == "" {
		category = "Uncategorized"
	}
	description := p.Description
	if description == "" {
		description = "No description available."
	}
	disabled := ""
	if !p.InStock() {
		disabled = " disabled"
	}

	return fmt.Sprintf(`<div class="product-detail">
  <div class="product-detail-image"><img src=%q alt=%q></div>
  <div class="product-detail-info">
    <div class="product-category">%s</div>
    <h2>%s</h2>
    <div class="product-price-large">%s</div>
    <p class="product-description-full">%s</p>
    <div class="product-stock-info"><span>%d units available</span></div>
    <form method="post" action="/cart/items">
      <input type="hidden" name="product_id" value="%d">
      <button type="submit" class="btn btn-primary btn-large"%s>Add to Cart</button>
    </form>
  </div>
</div>`,
		markup.OrPlaceholder(p.ImageUrl, detailPlaceholder),
		markup.Escape(p.Name),
		markup.Escape(category),
		markup.Escape(p.Name),
		money.Format(p.Price),
		markup.Escape(description),
		p.Stock,
		p.ID,
		disabled,
	)
}

// AdminRow renders one row of the admin product table.
func AdminRow(p response.Product) string {
	stockClass := "in-stock"
	if p.Stock == 0 {
		stockClass = "out-of-stock"
	} else if p.Stock < 10 {
		stockClass = "low-stock"
	}

	return fmt.Sprintf(`<tr data-product-id="%d">
  <td>%d</td>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td class=%q>%d</td>
  <td>
    <a href="/admin/products/%d/edit" class="btn-icon btn-edit">Edit</a>
    <form method="post" action="/admin/products/%d/delete">
      <button type="submit" class="btn-icon btn-delete">Delete</button>
    </form>
  </td>
</tr>`,
		p.ID,
		p.ID,
		markup.Escape(p.Name),
		markup.Escape(markup.Truncate(p.Description, 100)),
		money.Format(p.Price),
		stockClass,
		p.Stock,
		p.ID,
		p.ID,
	)
}

// AdminTable renders the admin table body.
func AdminTable(products []response.Product) string {
	if len(products) == 0 {
		return `<tr><td colspan="6" class="empty-table">No products yet. Click "Add New Product" to get started!</td></tr>`
	}
	rows := make([]string, len(products))
	for i, p := range products {
		rows[i] = AdminRow(p)
	}
	return strings.Join(rows, "\n")
}
