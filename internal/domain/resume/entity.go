package resume

// Experience is one employment entry with its bullet points.
type Experience struct {
	CompanyName string   `json:"company_name"`
	Role        string   `json:"role"`
	Bulletin    []string `json:"bulletin"`
}

// ProjectItem is a project entry on a resume.
type ProjectItem struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// Parsed is the structured record produced by the resume-parser graph from an
// uploaded file. It lives in the resume editor flow until explicitly saved.
type Parsed struct {
	Name            string        `json:"name"`
	Email           string        `json:"email,omitempty"`
	PhoneNo         string        `json:"phone_no,omitempty"`
	LinkedinProfile string        `json:"linkedin_profile,omitempty"`
	GithubProfile   string        `json:"github_profile,omitempty"`
	Address         string        `json:"address,omitempty"`
	Website         string        `json:"website,omitempty"`
	Summary         string        `json:"summary"`
	Experiences     []Experience  `json:"experiences,omitempty"`
	Education       []string      `json:"education,omitempty"`
	Certifications  []string      `json:"certifications,omitempty"`
	Awards          []string      `json:"awards,omitempty"`
	Projects        []ProjectItem `json:"projects,omitempty"`
	Skills          []string      `json:"skills,omitempty"`
}

// Stored is a persisted resume row as the backend returns it.
type Stored struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	ResumeData string `json:"resume_data"`
	FormatID   *int   `json:"format_id"`
	UserID     int    `json:"user_id"`
	CreatedAt  string `json:"created_at,omitempty"`
}
