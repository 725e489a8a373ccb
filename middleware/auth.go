package middleware

import (
	"fmt"
	"net/http"

	"nexuraPortal/internal/access"
)

// RequireAccess runs guard in front of next and stores the granted principal
// in the request context.
func RequireAccess(guard access.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := guard.Check(r)
			if !ok {
				respondWithError(w, http.StatusForbidden, "Access denied")
				return
			}
			ctx := access.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(fmt.Sprintf(`{"error": %q}`, message)))
}
