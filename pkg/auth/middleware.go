package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Soufian-A/runners-erp/pkg/utils"
)

type ContextKey string

const ActorKey ContextKey = "actor"

// SystemActor is recorded when an operation runs without an authenticated caller.
const SystemActor = "system"

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := validator.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), claims.Actor)))
		})
	}
}

func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(ActorKey).(string); ok && actor != "" {
		return actor
	}
	return SystemActor
}
