// Package resume synthesizes structured resume documents from an interview
// profile and composes cover letters.
package resume

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spigell/cv-assistant/internal/scoring"
)

type Identity struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Experience struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	Credential  string `json:"credential"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Document is a synthesized resume. The list fields are never nil.
type Document struct {
	Identity       Identity     `json:"identity"`
	Summary        string       `json:"summary"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications"`
	Score          int          `json:"score"`
}

// DumpToTmpFile writes the document as indented JSON to a new temporary file
// and returns its path.
func (d *Document) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "resume_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// Draft converts the document into the shape the completeness score reads.
func (d *Document) Draft() scoring.Draft {
	draft := scoring.Draft{
		PersonalInfo: scoring.DraftPersonalInfo{
			FullName: d.Identity.Name,
			Email:    d.Identity.Email,
			Phone:    d.Identity.Phone,
			Address:  d.Identity.Location,
			LinkedIn: d.Identity.LinkedIn,
			Website:  d.Identity.Website,
		},
		Summary:        d.Summary,
		Experience:     make([]scoring.DraftExperience, 0, len(d.Experience)),
		Education:      make([]scoring.DraftEducation, 0, len(d.Education)),
		Skills:         append([]string{}, d.Skills...),
		Certifications: append([]string{}, d.Certifications...),
	}

	for _, e := range d.Experience {
		start, end := splitDuration(e.Duration)
		draft.Experience = append(draft.Experience, scoring.DraftExperience{
			JobTitle:    e.Title,
			Company:     e.Organization,
			StartDate:   start,
			EndDate:     end,
			Current:     isOngoing(end),
			Description: append([]string{}, e.Achievements...),
		})
	}

	for _, e := range d.Education {
		draft.Education = append(draft.Education, scoring.DraftEducation{
			Degree:         e.Credential,
			School:         e.Institution,
			GraduationYear: e.Year,
		})
	}

	return draft
}

func splitDuration(duration string) (string, string) {
	loc := durationSeparatorRe.FindStringIndex(duration)
	if loc == nil {
		return strings.TrimSpace(duration), ""
	}
	return strings.TrimSpace(duration[:loc[0]]), strings.TrimSpace(duration[loc[1]:])
}

func isOngoing(end string) bool {
	switch strings.ToLower(end) {
	case "present", "current", "now":
		return true
	default:
		return false
	}
}
