package models

import "context"

// contextKey - приватный тип для ключей контекста, чтобы избежать коллизий.
type contextKey string

const (
	// ClaimsContextKey is the key under which verified token claims are stored,
	// both in gin.Context and in the request context.Context.
	ClaimsContextKey = "claims"

	claimsCtxKey contextKey = ClaimsContextKey
)

// ContextWithClaims returns a copy of ctx carrying the verified claims.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, claims)
}

// GetClaimsFromContext извлекает claims из контекста.
// Возвращает claims и true, если ключ найден и значение корректного типа.
func GetClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsCtxKey).(*Claims)
	return claims, ok && claims != nil
}
