// Package access decides whether a viewer may see a protected page.
package access

import (
	"context"
	"net/http"
)

// Principal identifies the viewer. The zero value is an anonymous viewer.
type Principal struct {
	UserID   string
	Username string
	Address  string
}

func (p Principal) Anonymous() bool {
	return p.UserID == "" && p.Username == "" && p.Address == ""
}

// Guard is the capability check placed in front of protected views.
type Guard interface {
	Check(r *http.Request) (Principal, bool)
}

// AllowAll grants every request as an anonymous viewer. It stands in until a
// real identity provider is wired; callers depend only on Guard.
type AllowAll struct{}

func (AllowAll) Check(*http.Request) (Principal, bool) {
	return Principal{}, true
}

type contextKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

func FromContext(ctx context.Context) Principal {
	p, _ := ctx.Value(contextKey{}).(Principal)
	return p
}
