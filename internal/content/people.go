package content

import "github.com/goliatone/go-consulting-site/internal/richtext"

type TeamMember struct {
	ID          int              `json:"id" yaml:"id,omitempty"`
	DocumentID  string           `json:"documentId" yaml:"documentId,omitempty"`
	FullName    string           `json:"fullName" yaml:"fullName"`
	Position    string           `json:"position" yaml:"position"`
	Department  string           `json:"department" yaml:"department"`
	Bio         richtext.Content `json:"bio" yaml:"bio"`
	Email       string           `json:"email" yaml:"email"`
	LinkedinURL string           `json:"linkedinUrl" yaml:"linkedinUrl"`
	Photo       *Media           `json:"photo" yaml:"photo"`
	IsActive    bool             `json:"isActive" yaml:"isActive"`
	OrderIndex  int              `json:"orderIndex" yaml:"orderIndex"`
}

func (m *TeamMember) MediaRefs() []*Media { return []*Media{m.Photo} }

// JobType enumerates employment types offered on the careers page.
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
	JobRemote     JobType = "remote"
)

// Valid reports whether t is one of the known job types.
func (t JobType) Valid() bool {
	switch t {
	case JobFullTime, JobPartTime, JobContract, JobInternship, JobRemote:
		return true
	default:
		return false
	}
}

type Job struct {
	ID                  int              `json:"id" yaml:"id,omitempty"`
	DocumentID          string           `json:"documentId" yaml:"documentId,omitempty"`
	Title               string           `json:"title" yaml:"title"`
	Department          string           `json:"department" yaml:"department"`
	Location            string           `json:"location" yaml:"location"`
	JobType             JobType          `json:"jobType" yaml:"jobType"`
	ExperienceLevel     string           `json:"experienceLevel" yaml:"experienceLevel"`
	SalaryRange         string           `json:"salaryRange" yaml:"salaryRange"`
	Summary             string           `json:"summary" yaml:"summary"`
	Description         richtext.Content `json:"description" yaml:"description"`
	Responsibilities    richtext.Content `json:"responsibilities" yaml:"responsibilities"`
	Requirements        richtext.Content `json:"requirements" yaml:"requirements"`
	Benefits            richtext.Content `json:"benefits" yaml:"benefits"`
	ApplicationNotes    richtext.Content `json:"applicationInstructions" yaml:"applicationInstructions"`
	ApplicationDeadline Date             `json:"applicationDeadline" yaml:"applicationDeadline"`
	IsActive            bool             `json:"isActive" yaml:"isActive"`
	CreatedAt           Date             `json:"createdAt" yaml:"createdAt"`
}
