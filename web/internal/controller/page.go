package controller

import (
	"fmt"
	"strings"

	"github.com/anandita/storefront/internal/markup"
	"github.com/anandita/storefront/notification"
)

// navLink marks the active page in the header nav.
func navLink(href string, label string, active string) string {
	class := "nav-link"
	if href == active {
		class = "nav-link active"
	}
	return fmt.Sprintf(`<a href=%q class=%q>%s</a>`, href, class, label)
}

func toastContainer(toasts []notification.Toast) string {
	if len(toasts) == 0 {
		return `<div id="toastContainer" class="toast-container"></div>`
	}
	rendered := make([]string, len(toasts))
	for i, t := range toasts {
		rendered[i] = fmt.Sprintf(
			`<div class="toast toast-%s">%s</div>`,
			t.Kind,
			markup.Escape(t.Message),
		)
	}
	return fmt.Sprintf(
		`<div id="toastContainer" class="toast-container">%s</div>`,
		strings.Join(rendered, "\n"),
	)
}

// page wraps body in the storefront shell: header nav with the cart badge,
// the toast container, and the page content.
func page(title string, active string, badge string, toasts []notification.Toast, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s - Storefront</title>
  <link rel="stylesheet" href="/static/styles.css">
</head>
<body>
  <header class="header">
    <nav class="nav">
      <a href="/shop" class="logo">Storefront</a>
      <div class="nav-links">
        %s
        %s
        <a href="/cart" class="nav-link cart-link">Cart %s</a>
        %s
        %s
      </div>
    </nav>
  </header>
  %s
  <main class="container">
%s
  </main>
</body>
</html>
`,
		markup.Escape(title),
		navLink("/shop", "Shop", active),
		navLink("/orders", "My Orders", active),
		badge,
		navLink("/register", "Register", active),
		navLink("/admin", "Admin", active),
		toastContainer(toasts),
		body,
	)
}
