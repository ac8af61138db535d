package log

const (
	KeyAppName       = "app"
	KeyRequestID     = "requestId"
	KeyProcess       = "process"
	KeyTag           = "tag"
	KeyConfig        = "config"
	KeyEmail         = "email"
	KeyUserID        = "userId"
	KeyProductID     = "productId"
	KeyCartItemID    = "cartItemId"
	KeyOrderID       = "orderId"
	KeyQuantity      = "quantity"
	KeyItemCount     = "itemCount"
	KeyCart          = "cart"
	KeyRequestBody   = "requestBody"
	KeyRequestMethod = "requestMethod"
	KeyRequestURL    = "requestURL"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestURI    = "requestURI"
	KeyStatusCode    = "statusCode"
)
