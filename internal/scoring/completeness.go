// Package scoring rates resume documents: a completeness score for drafts
// assembled by hand and a weighted category breakdown for uploaded documents.
package scoring

import (
	"math"
	"strings"
	"unicode/utf8"
)

type DraftPersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

type DraftExperience struct {
	JobTitle    string   `json:"job_title"`
	Company     string   `json:"company"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Current     bool     `json:"current"`
	Location    string   `json:"location"`
	Description []string `json:"description"`
}

type DraftEducation struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	GraduationYear string `json:"graduation_year"`
	GPA            string `json:"gpa"`
	Location       string `json:"location"`
}

// Draft is a resume document under construction.
type Draft struct {
	PersonalInfo   DraftPersonalInfo `json:"personal_info"`
	Summary        string            `json:"summary"`
	Experience     []DraftExperience `json:"experience"`
	Education      []DraftEducation  `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications []string          `json:"certifications"`
}

const (
	personalInfoPoints = 20.0
	personalInfoFields = 6.0

	summaryLongPoints  = 15
	summaryShortPoints = 10
	summaryLongLen     = 50
	summaryShortLen    = 20

	experiencePointsPerEntry = 8
	experienceMaxPoints      = 25

	educationPoints = 15

	skillsManyPoints = 15
	skillsFewPoints  = 10
	skillsMany       = 5
	skillsFew        = 3

	certificationPoints = 10
)

// ScoreDraft returns the completeness score of a draft in [0, 100].
func ScoreDraft(d Draft) int {
	score := personalInfoPoints * float64(countNonEmpty(
		d.PersonalInfo.FullName,
		d.PersonalInfo.Email,
		d.PersonalInfo.Phone,
		d.PersonalInfo.Address,
		d.PersonalInfo.LinkedIn,
		d.PersonalInfo.Website,
	)) / personalInfoFields

	switch n := utf8.RuneCountInString(d.Summary); {
	case n > summaryLongLen:
		score += summaryLongPoints
	case n > summaryShortLen:
		score += summaryShortPoints
	}

	score += float64(min(len(d.Experience)*experiencePointsPerEntry, experienceMaxPoints))

	if len(d.Education) > 0 {
		score += educationPoints
	}

	switch n := countNonEmpty(d.Skills...); {
	case n >= skillsMany:
		score += skillsManyPoints
	case n >= skillsFew:
		score += skillsFewPoints
	}

	if countNonEmpty(d.Certifications...) > 0 {
		score += certificationPoints
	}

	return int(math.Round(math.Max(0, math.Min(score, 100))))
}

// Label describes a 0-100 score in words.
func Label(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Very Good"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func countNonEmpty(values ...string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}
