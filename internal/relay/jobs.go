package relay

import (
	"context"
	"net/http"

	"hirehack/internal/domain/job"
	"hirehack/internal/session"
)

type jobSearchRequest struct {
	JobTitle   string `json:"job_title"`
	SkillsDesc string `json:"skills_desc"`
}

// SearchJobs forwards a search to the backend's job search agent.
func (c *Client) SearchJobs(ctx context.Context, sc session.Context, jobTitle, skillsDesc string) (job.SearchResult, *Error) {
	if jobTitle == "" {
		return job.SearchResult{}, newError(KindValidation, 0, "job title is required", nil)
	}

	var result job.SearchResult
	rerr := c.doJSON(ctx, sc, http.MethodPost, "/api/ai/agent/job/search-agent", jobSearchRequest{
		JobTitle:   jobTitle,
		SkillsDesc: skillsDesc,
	}, &result)
	if rerr != nil {
		return job.SearchResult{}, rerr
	}
	return result, nil
}
