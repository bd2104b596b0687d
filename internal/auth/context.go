package auth

import "context"

// GetMerchantID reads the merchant scope the auth middleware stored on the
// request context. Empty means the request was not authenticated.
func GetMerchantID(ctx context.Context) string {
	if val, ok := ctx.Value("merchant_id").(string); ok {
		return val
	}
	return ""
}

func GetUserID(ctx context.Context) string {
	if val, ok := ctx.Value("user_id").(string); ok {
		return val
	}
	return ""
}
