package relay

import (
	"context"
	"net/http"

	"hirehack/internal/domain/user"
	"hirehack/internal/session"
)

// Profile fetches the caller's user record. Fetched fresh every time, never
// cached in the gateway.
func (c *Client) Profile(ctx context.Context, sc session.Context) (user.Profile, *Error) {
	var p user.Profile
	if rerr := c.doJSON(ctx, sc, http.MethodGet, "/api/users/profile", nil, &p); rerr != nil {
		return user.Profile{}, rerr
	}
	if p.ID == 0 && p.Username == "" {
		return user.Profile{}, newError(KindUpstream, 0, "profile response missing user", nil)
	}
	return p, nil
}
