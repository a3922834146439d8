package graph

import (
	"context"
	"encoding/json"

	"hirehack/internal/domain/quiz"
	"hirehack/internal/domain/resume"
)

// ParseResume runs the resume parser over extracted resume text.
func (c *Client) ParseResume(ctx context.Context, resumeText string) (resume.Parsed, error) {
	raw, err := c.run(ctx, ResumeParser, map[string]string{"resume_text": resumeText})
	if err != nil {
		return resume.Parsed{}, err
	}
	var parsed resume.Parsed
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return resume.Parsed{}, shapeError(ResumeParser)
	}
	if parsed.Name == "" && parsed.Summary == "" && len(parsed.Experiences) == 0 {
		return resume.Parsed{}, shapeError(ResumeParser)
	}
	return parsed, nil
}

// ImprovedVersions holds the three rewrite variants the improver offers:
// professional, achievement-focused, and ATS-optimized.
type ImprovedVersions struct {
	Version1 string `json:"improve_version1"`
	Version2 string `json:"improve_version2"`
	Version3 string `json:"improve_version3"`
}

// ImproveText rewrites a single resume passage in three styles.
func (c *Client) ImproveText(ctx context.Context, text string) (ImprovedVersions, error) {
	raw, err := c.run(ctx, ResumeImprover, map[string]string{"input_text": text})
	if err != nil {
		return ImprovedVersions{}, err
	}
	var resp struct {
		ImproveVersion ImprovedVersions `json:"improve_version"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return ImprovedVersions{}, shapeError(ResumeImprover)
	}
	v := resp.ImproveVersion
	if v.Version1 == "" && v.Version2 == "" && v.Version3 == "" {
		return ImprovedVersions{}, shapeError(ResumeImprover)
	}
	return v, nil
}

// ImproveExperience rewrites experience bullet points against a job
// description.
func (c *Client) ImproveExperience(ctx context.Context, jobDesc string) ([]string, error) {
	raw, err := c.run(ctx, ExpImprover, map[string]string{"job_desc": jobDesc})
	if err != nil {
		return nil, err
	}
	var resp struct {
		Responsibilities []string `json:"responsibilities"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil || len(resp.Responsibilities) == 0 {
		return nil, shapeError(ExpImprover)
	}
	return resp.Responsibilities, nil
}

// GenerateSummary produces a profile summary tailored to a job description.
func (c *Client) GenerateSummary(ctx context.Context, jobDescription string) (string, error) {
	raw, err := c.run(ctx, SummaryBuilder, map[string]string{"job_description": jobDescription})
	if err != nil {
		return "", err
	}
	var resp struct {
		GeneratedSummary string `json:"generated_summary"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil || resp.GeneratedSummary == "" {
		return "", shapeError(SummaryBuilder)
	}
	return resp.GeneratedSummary, nil
}

// BuildExperience drafts a full experience entry from a free-text
// description.
func (c *Client) BuildExperience(ctx context.Context, experienceDesc string) (resume.Experience, error) {
	raw, err := c.run(ctx, ExperienceBuilder, map[string]string{"experience_desc": experienceDesc})
	if err != nil {
		return resume.Experience{}, err
	}
	var resp struct {
		Experience resume.Experience `json:"experience"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return resume.Experience{}, shapeError(ExperienceBuilder)
	}
	if resp.Experience.CompanyName == "" && resp.Experience.Role == "" {
		return resume.Experience{}, shapeError(ExperienceBuilder)
	}
	return resp.Experience, nil
}

// GenerateProject drafts a project entry relevant to a job description.
func (c *Client) GenerateProject(ctx context.Context, jobDesc string) (resume.ProjectItem, error) {
	raw, err := c.run(ctx, ProjectGen, map[string]string{"job_desc": jobDesc})
	if err != nil {
		return resume.ProjectItem{}, err
	}
	var resp struct {
		Project resume.ProjectItem `json:"project"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil || resp.Project.Name == "" {
		return resume.ProjectItem{}, shapeError(ProjectGen)
	}
	return resp.Project, nil
}

// GenerateSkills suggests skills matching a job description.
func (c *Client) GenerateSkills(ctx context.Context, jobDesc string) ([]string, error) {
	raw, err := c.run(ctx, SkillsGen, map[string]string{"job_desc": jobDesc})
	if err != nil {
		return nil, err
	}
	var resp struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil || len(resp.Skills) == 0 {
		return nil, shapeError(SkillsGen)
	}
	return resp.Skills, nil
}

// QuizQuestions invokes the quiz agent directly. The usual path for quiz
// generation goes through the backend relay; this covers deployments where
// the graph runtime is called first-hand.
func (c *Client) QuizQuestions(ctx context.Context, jobTitle, jobDesc string, numQuiz int) ([]quiz.Question, error) {
	raw, err := c.run(ctx, QuizAgent, map[string]any{
		"job_title": jobTitle,
		"job_desc":  jobDesc,
		"num_quiz":  numQuiz,
	})
	if err != nil {
		return nil, err
	}
	var resp quiz.Payload
	if err := json.Unmarshal(raw, &resp); err != nil || len(resp.Questions) == 0 {
		return nil, shapeError(QuizAgent)
	}
	return resp.Questions, nil
}
