package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/GlebRadaev/fruitshop/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// SessionView is the read-only view of the active session.
type SessionView interface {
	IsAuthenticated() bool
	CurrentUser() *domain.SessionUser
}

// AuthMiddleware accepts a request only when its bearer token belongs to the
// user of the active session.
func AuthMiddleware(jwtService JWTServiceInterface, session SessionView) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			current := session.CurrentUser()
			if !session.IsAuthenticated() || current == nil || current.ID != claims.UserID {
				utils.RespondWithError(w, http.StatusUnauthorized, "Session expired, please login again")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
