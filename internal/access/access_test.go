package access

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowAllGrantsAnonymous(t *testing.T) {
	var g Guard = AllowAll{}
	p, ok := g.Check(httptest.NewRequest("GET", "/leaderboard", nil))
	assert.True(t, ok)
	assert.True(t, p.Anonymous())
}

func TestPrincipalContext(t *testing.T) {
	assert.True(t, FromContext(context.Background()).Anonymous())

	ctx := WithPrincipal(context.Background(), Principal{Username: "alice"})
	p := FromContext(ctx)
	assert.False(t, p.Anonymous())
	assert.Equal(t, "alice", p.Username)
}
