package constants

const (
	AppStorefront    = "storefront"
	AppStorefrontWeb = "storefront-web"
)
