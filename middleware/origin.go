package middleware

import (
	"net/http"

	"nexuraPortal/internal/origin"
)

// OriginMiddleware records the origin backend requests may resolve against.
// Requests whose origin the resolver rejects carry none.
func OriginMiddleware(res origin.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := origin.With(r.Context(), res.Resolve(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
