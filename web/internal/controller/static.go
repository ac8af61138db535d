package controller

import "net/http"

const stylesheet = `:root { --primary: #2c3e50; --accent: #e67e22; --muted: #7f8c8d; }
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: 'Segoe UI', Arial, sans-serif; color: #2c3e50; background: #f5f6fa; }
.header { background: var(--primary); color: #fff; padding: 0 24px; }
.nav { display: flex; align-items: center; justify-content: space-between; height: 56px; max-width: 1100px; margin: 0 auto; }
.logo { color: #fff; font-weight: 700; font-size: 1.2rem; text-decoration: none; }
.nav-links { display: flex; gap: 16px; }
.nav-link { color: #ecf0f1; text-decoration: none; padding: 4px 8px; }
.nav-link.active { border-bottom: 2px solid var(--accent); }
.cart-badge { background: var(--accent); color: #fff; border-radius: 10px; padding: 1px 7px; font-size: 0.75rem; }
.container { max-width: 1100px; margin: 24px auto; padding: 0 24px; }
.toast-container { position: fixed; top: 70px; right: 24px; z-index: 10; }
.toast { padding: 10px 16px; margin-bottom: 8px; border-radius: 4px; color: #fff; background: var(--muted); }
.toast-success { background: #27ae60; }
.toast-error { background: #c0392b; }
.products-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 20px; }
.product-card { background: #fff; border-radius: 6px; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.product-image { position: relative; }
.product-image img { width: 100%; height: 160px; object-fit: cover; }
.out-of-stock-overlay { position: absolute; inset: 0; background: rgba(0,0,0,.55); color: #fff; display: flex; align-items: center; justify-content: center; }
.product-info { padding: 12px; }
.product-category { color: var(--muted); font-size: 0.75rem; text-transform: uppercase; }
.product-price, .product-price-large { color: var(--accent); font-weight: 700; }
.product-price-large { font-size: 1.6rem; }
.out-of-stock { color: #c0392b; }
.low-stock { color: #e67e22; }
.in-stock { color: #27ae60; }
.btn { display: inline-block; border: 0; border-radius: 4px; padding: 8px 14px; cursor: pointer; text-decoration: none; font-size: 0.9rem; }
.btn-primary { background: var(--accent); color: #fff; }
.btn-secondary { background: #bdc3c7; color: #2c3e50; }
.btn[disabled] { opacity: .5; cursor: not-allowed; }
.cart-content { display: grid; grid-template-columns: 2fr 1fr; gap: 24px; }
.cart-item { display: flex; gap: 12px; background: #fff; padding: 12px; border-radius: 6px; margin-bottom: 12px; }
.cart-summary { background: #fff; padding: 16px; border-radius: 6px; align-self: start; }
.summary-row { display: flex; justify-content: space-between; margin-bottom: 8px; }
.summary-row.total { font-weight: 700; border-top: 1px solid #ecf0f1; padding-top: 8px; }
.empty-state, .empty-table { text-align: center; color: var(--muted); padding: 48px 0; }
.orders-list .order-card { background: #fff; border-radius: 6px; padding: 16px; margin-bottom: 12px; }
.order-status { text-transform: capitalize; color: var(--muted); }
.admin-table { width: 100%; background: #fff; border-collapse: collapse; }
.admin-table th, .admin-table td { padding: 10px; border-bottom: 1px solid #ecf0f1; text-align: left; }
.admin-form, .auth-form { background: #fff; padding: 24px; border-radius: 6px; max-width: 480px; margin: 0 auto; }
.form-group { margin-bottom: 14px; }
.form-group label { display: block; margin-bottom: 4px; font-weight: 600; }
.form-group input, .form-group textarea, .form-group select { width: 100%; padding: 8px; border: 1px solid #bdc3c7; border-radius: 4px; }
.form-row { display: flex; gap: 12px; }
.form-actions { display: flex; justify-content: flex-end; gap: 8px; }
.success-popup { background: #fff; border-radius: 6px; padding: 32px; max-width: 480px; margin: 48px auto; text-align: center; }
.order-summary-popup { margin: 16px 0; }
.summary-item { display: flex; justify-content: space-between; margin-bottom: 8px; }
.total-highlight { color: var(--accent); }
.popup-actions { display: flex; justify-content: center; gap: 12px; }
.filter-bar { display: flex; gap: 12px; margin-bottom: 20px; }
.filter-bar input, .filter-bar select { padding: 8px; border: 1px solid #bdc3c7; border-radius: 4px; }
`

// Stylesheet serves the storefront stylesheet.
func Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "max-age=3600")
	_, _ = w.Write([]byte(stylesheet))
}
