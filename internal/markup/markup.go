// Package markup holds the small helpers shared by every view renderer.
// Renderers are pure: domain object in, HTML fragment string out.
package markup

import "html"

func Escape(s string) string {
	return html.EscapeString(s)
}

// Truncate shortens text for card display, appending an ellipsis marker the
// way the storefront cards do.
func Truncate(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// OrPlaceholder falls back to a placeholder image when the product has none.
func OrPlaceholder(imageUrl string, placeholder string) string {
	if imageUrl == "" {
		return placeholder
	}
	return imageUrl
}
