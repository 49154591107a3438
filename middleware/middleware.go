package middleware

import (
	"net/http"
	"strings"

	"github.com/DXD-Magante/dxd-magnate-sub008/logging"
	"github.com/DXD-Magante/dxd-magnate-sub008/utils"
)

// JWTAuthMiddleware verifies the session token and forwards the role claim
// in the Role header so handlers can gate on it.
func JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logging.Logger.Warnf("Event ID: JWT_AUTH_MISSING_HEADER, Description: Authorization header missing for request to %s %s", r.Method, r.URL.Path)
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(tokenStr)
		if err != nil {
			logging.Logger.Warnf("Event ID: JWT_AUTH_INVALID_TOKEN, Description: Invalid token provided for request to %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		if role, ok := claims["role"].(string); ok {
			r.Header.Set("Role", role)
		}

		next.ServeHTTP(w, r)
	})
}
