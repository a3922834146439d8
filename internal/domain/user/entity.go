package user

// Subscription statuses as reported by the core backend.
const (
	SubscriptionFreeTrial = "free_trial"
	SubscriptionActive    = "active"
	SubscriptionInactive  = "inactive"
	SubscriptionCancelled = "cancelled"
)

// Profile is the user record fetched fresh from the backend on every page
// load. The gateway never caches or mutates it, with one exception: after a
// successful subscription cancel the status is reported as cancelled without
// a refetch.
type Profile struct {
	ID                 int    `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	SubscriptionStatus string `json:"subscription_status"`
	// The backend spells this field "plain_period" on the wire.
	PlanPeriod     string `json:"plain_period,omitempty"`
	SubscriptionID string `json:"subscription_id,omitempty"`
}

// CanStartQuiz reports whether the subscription tier allows starting an
// interview quiz. Trial accounts are read-only for this feature.
func (p Profile) CanStartQuiz() bool {
	return p.SubscriptionStatus != SubscriptionFreeTrial && p.SubscriptionStatus != ""
}
