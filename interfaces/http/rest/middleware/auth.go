package middleware

import (
	"net/http"
	"strings"

	"freshtrack-backend/pkg/auth"
	"freshtrack-backend/pkg/common"
)

// Authenticate verifies the Bearer token on every request and stores the
// authenticated user in the request context. The error messages distinguish
// a missing header, a malformed header and a rejected token.
func Authenticate(tokens *auth.TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.RespondMessage(w, http.StatusUnauthorized, "Token is missing!")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				common.RespondMessage(w, http.StatusUnauthorized, "Bearer token malformed!")
				return
			}

			email, err := tokens.Verify(parts[1])
			if err != nil {
				common.RespondMessage(w, http.StatusUnauthorized, "Token is invalid or expired!")
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{Email: email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
