package complaint

import "strings"

// Complaint is a user-filed issue report, round-tripped to the backend with
// no derived state beyond the list filtering below.
type Complaint struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Desc        string `json:"desc"`
	FeatureName string `json:"feature_name"`
	Status      string `json:"status,omitempty"`
	UserID      int    `json:"user_id,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Filter narrows a complaint list by free-text query (title, description,
// feature name; case-insensitive) and by exact status.
func Filter(items []Complaint, query, status string) []Complaint {
	query = strings.ToLower(strings.TrimSpace(query))
	status = strings.TrimSpace(status)
	if query == "" && status == "" {
		return items
	}

	out := make([]Complaint, 0, len(items))
	for _, cm := range items {
		if status != "" && cm.Status != status {
			continue
		}
		if query != "" && !matchesQuery(cm, query) {
			continue
		}
		out = append(out, cm)
	}
	return out
}

func matchesQuery(cm Complaint, query string) bool {
	return strings.Contains(strings.ToLower(cm.Title), query) ||
		strings.Contains(strings.ToLower(cm.Desc), query) ||
		strings.Contains(strings.ToLower(cm.FeatureName), query)
}
