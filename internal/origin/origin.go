// Package origin carries the scheme and host backend paths are resolved
// against when no backend URL is configured. The origin comes from
// configuration, or from the request only when it names an allowed origin.
package origin

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct{}

func With(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, contextKey{}, origin)
}

func FromContext(ctx context.Context) string {
	o, _ := ctx.Value(contextKey{}).(string)
	return o
}

// Resolver picks the origin for one request.
type Resolver struct {
	// Public is a fixed origin; it wins when set.
	Public string
	// Allowed lists request origins accepted when Public is empty. "*" does
	// not match anything here.
	Allowed []string
	// TrustProxy honours X-Forwarded-Proto and X-Forwarded-Host.
	TrustProxy bool
}

// Resolve returns "" when the request origin is not allowed; backend reads
// then fail instead of reaching a host the viewer chose.
func (res Resolver) Resolve(r *http.Request) string {
	if res.Public != "" {
		return normalize(res.Public)
	}
	candidate := normalize(FromRequest(r, res.TrustProxy))
	if candidate == "" {
		return ""
	}
	for _, allowed := range res.Allowed {
		if a := normalize(allowed); a != "*" && a == candidate {
			return candidate
		}
	}
	return ""
}

// FromRequest derives "scheme://host" from the request. Forwarded headers
// are read only when trustProxy is set.
func FromRequest(r *http.Request, trustProxy bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host
	if trustProxy {
		if proto := firstValue(r.Header.Get("X-Forwarded-Proto")); proto != "" {
			scheme = strings.ToLower(proto)
		}
		if fwd := firstValue(r.Header.Get("X-Forwarded-Host")); fwd != "" {
			host = fwd
		}
	}
	if host == "" {
		return ""
	}
	return scheme + "://" + host
}

func normalize(o string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(o), "/"))
}

func firstValue(header string) string {
	v, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(v)
}
