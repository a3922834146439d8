package flow

import (
	"errors"

	"hirehack/internal/domain/resume"
)

// ResumeState enumerates the resume editor flow's states.
type ResumeState int

const (
	ResumeEmpty ResumeState = iota
	ResumeUploading
	ResumeProcessing
	ResumeEditing
	ResumeSaving
	ResumeExporting
)

func (s ResumeState) String() string {
	switch s {
	case ResumeEmpty:
		return "empty"
	case ResumeUploading:
		return "uploading"
	case ResumeProcessing:
		return "processing"
	case ResumeEditing:
		return "editing"
	case ResumeSaving:
		return "saving"
	case ResumeExporting:
		return "exporting"
	default:
		return "unknown"
	}
}

// ErrBulletIndex rejects bullet edits outside the experience list.
var ErrBulletIndex = errors.New("experience or bullet index out of range")

// ResumeFlow is one resume editing session:
// Empty -> Uploading -> Processing -> Editing -> (Saving|Exporting) -> Editing.
// The parsed resume lives only here until an explicit save; navigating away
// (flow expiry) discards it.
type ResumeFlow struct {
	ID       string        `json:"id"`
	State    ResumeState   `json:"state"`
	FileName string        `json:"file_name,omitempty"`
	Parsed   resume.Parsed `json:"parsed"`
	Title    string        `json:"title,omitempty"`
	Template string        `json:"template,omitempty"`
}

func NewResumeFlow(id string) *ResumeFlow {
	return &ResumeFlow{ID: id, State: ResumeEmpty}
}

// BeginUpload marks a file as selected.
func (f *ResumeFlow) BeginUpload(fileName string) error {
	if f.State != ResumeEmpty {
		return transitionError("resume", f.State.String(), "upload")
	}
	f.FileName = fileName
	f.State = ResumeUploading
	return nil
}

// BeginProcessing marks the upload as handed to the parser.
func (f *ResumeFlow) BeginProcessing() error {
	if f.State != ResumeUploading {
		return transitionError("resume", f.State.String(), "process")
	}
	f.State = ResumeProcessing
	return nil
}

// ParseCompleted installs the parsed resume and opens the editor.
func (f *ResumeFlow) ParseCompleted(parsed resume.Parsed) error {
	if f.State != ResumeProcessing {
		return transitionError("resume", f.State.String(), "finish parsing")
	}
	f.Parsed = parsed
	f.State = ResumeEditing
	return nil
}

// OpenGenerated installs a resume produced by an agent, with no file upload
// behind it, and opens the editor directly.
func (f *ResumeFlow) OpenGenerated(parsed resume.Parsed) error {
	if f.State != ResumeEmpty {
		return transitionError("resume", f.State.String(), "open generated")
	}
	f.Parsed = parsed
	f.State = ResumeEditing
	return nil
}

// ParseFailed abandons the upload and returns to the empty state.
func (f *ResumeFlow) ParseFailed() error {
	if f.State != ResumeUploading && f.State != ResumeProcessing {
		return transitionError("resume", f.State.String(), "fail parsing")
	}
	f.FileName = ""
	f.State = ResumeEmpty
	return nil
}

// ApplyImprovedBullet replaces exactly one experience bullet. Only the bullet
// list of the touched experience is copied; every other field and entry keeps
// its existing backing data.
func (f *ResumeFlow) ApplyImprovedBullet(expIndex, bulletIndex int, text string) error {
	if f.State != ResumeEditing {
		return transitionError("resume", f.State.String(), "edit")
	}
	if expIndex < 0 || expIndex >= len(f.Parsed.Experiences) {
		return ErrBulletIndex
	}
	exp := f.Parsed.Experiences[expIndex]
	if bulletIndex < 0 || bulletIndex >= len(exp.Bulletin) {
		return ErrBulletIndex
	}

	bullets := make([]string, len(exp.Bulletin))
	copy(bullets, exp.Bulletin)
	bullets[bulletIndex] = text
	f.Parsed.Experiences[expIndex].Bulletin = bullets
	return nil
}

// SetSummary replaces the profile summary.
func (f *ResumeFlow) SetSummary(summary string) error {
	if f.State != ResumeEditing {
		return transitionError("resume", f.State.String(), "edit")
	}
	f.Parsed.Summary = summary
	return nil
}

// AddProject appends a generated project entry.
func (f *ResumeFlow) AddProject(p resume.ProjectItem) error {
	if f.State != ResumeEditing {
		return transitionError("resume", f.State.String(), "edit")
	}
	f.Parsed.Projects = append(f.Parsed.Projects, p)
	return nil
}

// AddExperience appends a built experience entry.
func (f *ResumeFlow) AddExperience(e resume.Experience) error {
	if f.State != ResumeEditing {
		return transitionError("resume", f.State.String(), "edit")
	}
	f.Parsed.Experiences = append(f.Parsed.Experiences, e)
	return nil
}

// MergeSkills adds generated skills, skipping ones already present.
func (f *ResumeFlow) MergeSkills(skills []string) error {
	if f.State != ResumeEditing {
		return transitionError("resume", f.State.String(), "edit")
	}
	existing := make(map[string]bool, len(f.Parsed.Skills))
	for _, s := range f.Parsed.Skills {
		existing[s] = true
	}
	for _, s := range skills {
		if !existing[s] {
			f.Parsed.Skills = append(f.Parsed.Skills, s)
			existing[s] = true
		}
	}
	return nil
}

// BeginSave enters the save attempt.
func (f *ResumeFlow) BeginSave(title string) error {
	if f.State != ResumeEditing {
		return transitionError("resume", f.State.String(), "save")
	}
	f.Title = title
	f.State = ResumeSaving
	return nil
}

// BeginExport enters the export attempt.
func (f *ResumeFlow) BeginExport() error {
	if f.State != ResumeEditing {
		return transitionError("resume", f.State.String(), "export")
	}
	f.State = ResumeExporting
	return nil
}

// Settle ends a save or export attempt, successful or not, returning to the
// editor.
func (f *ResumeFlow) Settle() error {
	if f.State != ResumeSaving && f.State != ResumeExporting {
		return transitionError("resume", f.State.String(), "settle")
	}
	f.State = ResumeEditing
	return nil
}
