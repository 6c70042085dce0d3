package csrf

import "context"

type tokenContextKey struct{}

// WithToken stores the encoded token issued for the current response.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the token issued for the current response,
// or "" when the request did not pass through a Protector.
func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}
