package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"hirehack/internal/domain/resume"
	"hirehack/internal/session"
)

// ReadResumeFile uploads the raw resume file and returns the extracted text,
// ready for the parser graph.
func (c *Client) ReadResumeFile(ctx context.Context, sc session.Context, fileName string, file io.Reader) (string, *Error) {
	var resp struct {
		ResumeText string `json:"resume_text"`
	}
	if rerr := c.doFile(ctx, sc, "/api/resume/read", "file", fileName, file, &resp); rerr != nil {
		return "", rerr
	}
	if resp.ResumeText == "" {
		return "", newError(KindUpstream, 0, "file reader returned no text", nil)
	}
	return resp.ResumeText, nil
}

type buildResumeRequest struct {
	Role           string `json:"role"`
	JobDescription string `json:"job_description"`
}

// BuildResume asks the backend agent to draft a resume targeting a role and
// job description.
func (c *Client) BuildResume(ctx context.Context, sc session.Context, role, jobDescription string) (resume.Parsed, *Error) {
	if role == "" || jobDescription == "" {
		return resume.Parsed{}, newError(KindValidation, 0, "role and job description are required", nil)
	}

	var parsed resume.Parsed
	rerr := c.doJSON(ctx, sc, http.MethodPost, "/api/ai/agent/resume/create-resume", buildResumeRequest{
		Role:           role,
		JobDescription: jobDescription,
	}, &parsed)
	if rerr != nil {
		return resume.Parsed{}, rerr
	}
	return parsed, nil
}

// GenerateResumeInput carries the free-text profile details the generator
// agent turns into a structured resume.
type GenerateResumeInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNum       string `json:"phone_num"`
	ProfileDesc    string `json:"profile_desc"`
	EducationDesc  string `json:"education_desc"`
	ExperienceDesc string `json:"experience_desc"`
	SkillsDesc     string `json:"skills_description"`
}

// GenerateResume builds a full resume from a user's free-text profile.
func (c *Client) GenerateResume(ctx context.Context, sc session.Context, in GenerateResumeInput) (resume.Parsed, *Error) {
	if in.Name == "" {
		return resume.Parsed{}, newError(KindValidation, 0, "name is required", nil)
	}

	var parsed resume.Parsed
	if rerr := c.doJSON(ctx, sc, http.MethodPost, "/api/ai/agent/generate/resume", in, &parsed); rerr != nil {
		return resume.Parsed{}, rerr
	}
	return parsed, nil
}

type saveResumeRequest struct {
	UserID     int    `json:"user_id"`
	ResumeData string `json:"resume_data"`
	FormatID   *int   `json:"format_id"`
	Title      string `json:"title"`
}

// SaveResume persists an edited resume under the user's account.
func (c *Client) SaveResume(ctx context.Context, sc session.Context, userID int, title, resumeData string, formatID *int) (resume.Stored, *Error) {
	if title == "" {
		return resume.Stored{}, newError(KindValidation, 0, "resume title is required", nil)
	}

	var stored resume.Stored
	rerr := c.doJSON(ctx, sc, http.MethodPost, "/api/ai/agent/save/resume", saveResumeRequest{
		UserID:     userID,
		ResumeData: resumeData,
		FormatID:   formatID,
		Title:      title,
	}, &stored)
	if rerr != nil {
		return resume.Stored{}, rerr
	}
	return stored, nil
}

// UserResumes lists the user's saved resumes.
func (c *Client) UserResumes(ctx context.Context, sc session.Context, userID int) ([]resume.Stored, *Error) {
	var items []resume.Stored
	path := fmt.Sprintf("/api/ai/agent/get/user/resumes/%d", userID)
	if rerr := c.doJSON(ctx, sc, http.MethodGet, path, nil, &items); rerr != nil {
		return nil, rerr
	}
	return items, nil
}

// RenameResume updates a saved resume's title.
func (c *Client) RenameResume(ctx context.Context, sc session.Context, resumeID int, updatedTitle string) *Error {
	if updatedTitle == "" {
		return newError(KindValidation, 0, "updated title is required", nil)
	}
	path := fmt.Sprintf("/api/ai/agent/rename/resume/%d?updated_title=%s", resumeID, url.QueryEscape(updatedTitle))
	return c.doJSON(ctx, sc, http.MethodPatch, path, nil, nil)
}

// DeleteResume removes a saved resume.
func (c *Client) DeleteResume(ctx context.Context, sc session.Context, resumeID int) *Error {
	path := fmt.Sprintf("/api/ai/agent/delete/resume/%d", resumeID)
	return c.doJSON(ctx, sc, http.MethodDelete, path, nil, nil)
}

type updateTemplateRequest struct {
	Template string `json:"template"`
	ResumeID int    `json:"resume_id"`
}

// UpdateResumeTemplate switches the rendering template of a saved resume.
func (c *Client) UpdateResumeTemplate(ctx context.Context, sc session.Context, template string, resumeID int) *Error {
	if template == "" {
		return newError(KindValidation, 0, "template is required", nil)
	}
	return c.doJSON(ctx, sc, http.MethodPost, "/api/resume/update-template", updateTemplateRequest{
		Template: template,
		ResumeID: resumeID,
	}, nil)
}
