package middleware

import (
	"context"
	"lottery_backend/internal/api/apierr"
	"lottery_backend/internal/model"
	"lottery_backend/pkg/token"
	"net/http"
	"strings"
)

type ctxKey struct{}

// Auth - проверяет Bearer токен и кладёт адрес счёта в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || len(raw) == 0 {
				apierr.Write(w, model.ErrUnauthorized)
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				apierr.Write(w, model.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAddress(r.Context(), claims.Address)))
		})
	}
}

func WithAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ctxKey{}, address)
}

func AddressFromContext(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(ctxKey{}).(string)
	return address, ok && len(address) > 0
}
