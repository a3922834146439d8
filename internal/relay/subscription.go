package relay

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"hirehack/internal/session"
)

var checkoutIntervals = map[string]bool{
	"day":   true,
	"week":  true,
	"month": true,
	"year":  true,
}

// CheckoutURL builds the hosted checkout address for the given amount and
// billing interval. The backend redirects from there to the payment provider.
func (c *Client) CheckoutURL(amount int, interval string) (string, *Error) {
	if amount <= 0 {
		return "", newError(KindValidation, 0, "amount must be positive", nil)
	}
	interval = strings.ToLower(strings.TrimSpace(interval))
	if !checkoutIntervals[interval] {
		return "", newError(KindValidation, 0, "interval must be one of day, week, month, year", nil)
	}
	return fmt.Sprintf("%s/api/subscription/checkout?amount=%d&interval=%s", c.baseURL, amount, interval), nil
}

// CancelSubscription cancels the subscription identified by the backend's
// subscription id. Callers report the cancelled status optimistically.
func (c *Client) CancelSubscription(ctx context.Context, sc session.Context, subscriptionID string) *Error {
	if subscriptionID == "" {
		return newError(KindValidation, 0, "subscription id is required", nil)
	}
	return c.doJSON(ctx, sc, http.MethodPost, "/api/subscription/cancel/"+subscriptionID, nil, nil)
}
