package job

// Job is one search hit from the backend's job search agent.
type Job struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location,omitempty"`
	JobType     string `json:"job_type,omitempty"`
	PostedAt    string `json:"posted_at,omitempty"`
	ApplyURL    string `json:"apply_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// SearchResult is the search agent's response envelope.
type SearchResult struct {
	Success bool   `json:"success"`
	Data    []Job  `json:"data"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}
