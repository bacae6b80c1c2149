package httpx

import (
	"context"

	"github.com/aussiebroadwan/campus/pkg/jwtx"
)

type ctxKey string

const CtxKeyAccountID ctxKey = "account_id"

// AccountIDFromContext returns the authenticated account id, or "" for an
// anonymous request.
func AccountIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAccountID).(string); ok {
		return v
	}
	return ""
}

// ContextWithAuth injects the verified account id for downstream handlers.
func ContextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	return context.WithValue(ctx, CtxKeyAccountID, c.Subject)
}
