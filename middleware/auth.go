package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Abinet16/Mulu-Asset-Managment-template/config"
	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
	"github.com/Abinet16/Mulu-Asset-Managment-template/utils"
)

// ExtractToken picks the credential from the request. Precedence is fixed:
// cookie first, then Authorization header, then the token query parameter.
// The first source present wins; the rest are ignored even when set.
func ExtractToken(r *http.Request) (string, bool) {
	if c, err := r.Cookie(config.AuthCookieName); err == nil && c.Value != "" {
		return c.Value, true
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if tok := strings.TrimPrefix(authHeader, "Bearer "); tok != "" {
			return tok, true
		}
	}

	if tok := r.URL.Query().Get("token"); tok != "" {
		return tok, true
	}

	return "", false
}

// AuthMiddleware verifies the caller's token and stores the derived
// identity on the request context. It never touches the database.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := ExtractToken(r)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			slog.Debug("token verification failed", "path", r.URL.Path, "error", err)
			if errors.Is(err, utils.ErrTokenExpired) {
				utils.RespondWithError(w, http.StatusUnauthorized, "Token expired")
				return
			}
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), "userID", claims.UserID)
		ctx = context.WithValue(ctx, "userEmail", claims.Email)
		ctx = context.WithValue(ctx, "userRole", claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly denies everyone whose verified role is not admin.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value("userRole").(string)
		if !ok || role != models.RoleAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Access forbidden: Admins only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole allows any of the listed roles through.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value("userRole").(string)
			if ok {
				for _, a := range allowed {
					if role == a {
						next.ServeHTTP(w, r)
						return
					}
				}
			}
			utils.RespondWithError(w, http.StatusForbidden, "Access forbidden: insufficient role")
		})
	}
}
