package render

import (
	"fmt"

	"github.com/anandita/storefront/internal/markup"
	"github.com/anandita/storefront/product/pkg/response"
)

// Form renders the admin product form. With a nil product it renders the
// create variant, otherwise the edit variant pre-filled from the product.
func Form(p *response.Product) string {
	action := "/admin/products"
	heading := "Add New Product"
	submit := "Create Product"
	name, description, category, imageUrl, price, stock := "", "", "", "", "", "0"
	if p != nil {
		action = fmt.Sprintf("/admin/products/%d", p.ID)
		heading = "Edit Product"
		submit = "Save Changes"
		name = p.Name
		description = p.Description
		category = p.Category
		imageUrl = p.ImageUrl
		price = p.Price.StringFixed(2)
		stock = fmt.Sprintf("%d", p.Stock)
	}

	return fmt.Sprintf(`<div class="admin-form">
  <h2>%s</h2>
  <form method="post" action=%q>
    <div class="form-group">
      <label for="name">Name</label>
      <input type="text" id="name" name="name" value=%q required>
    </div>
    <div class="form-group">
      <label for="description">Description</label>
      <textarea id="description" name="description">%s</textarea>
    </div>
    <div class="form-group">
      <label for="category">Category</label>
      <input type="text" id="category" name="category" value=%q>
    </div>
    <div class="form-group">
      <label for="image_url">Image URL</label>
      <input type="url" id="image_url" name="image_url" value=%q>
    </div>
    <div class="form-row">
      <div class="form-group">
        <label for="price">Price</label>
        <input type="number" id="price" name="price" value=%q step="0.01" min="0.01" required>
      </div>
      <div class="form-group">
        <label for="stock">Stock</label>
        <input type="number" id="stock" name="stock" value=%q min="0">
      </div>
    </div>
    <div class="form-actions">
      <a href="/admin" class="btn btn-secondary">Cancel</a>
      <button type="submit" class="btn btn-primary">%s</button>
    </div>
  </form>
</div>`,
		heading,
		action,
		markup.Escape(name),
		markup.Escape(description),
		markup.Escape(category),
		markup.Escape(imageUrl),
		price,
		stock,
		submit,
	)
}
