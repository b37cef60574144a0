// Package profile holds the facts gathered about the interview subject and
// attributes free-text answers to individual profile fields.
package profile

import (
	"errors"
	"fmt"
	"strings"
)

type CareerLevel string

const (
	CareerLevelUnset     CareerLevel = ""
	CareerLevelEntry     CareerLevel = "entry"
	CareerLevelMid       CareerLevel = "mid"
	CareerLevelSenior    CareerLevel = "senior"
	CareerLevelExecutive CareerLevel = "executive"
)

// Field names a single attributable profile fact.
type Field string

const (
	FieldNone Field = ""

	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldLocation Field = "location"
	FieldLinkedIn Field = "linkedin"
	FieldWebsite  Field = "website"

	FieldTargetRole      Field = "target_role"
	FieldIndustry        Field = "industry"
	FieldYearsExperience Field = "years_experience"

	FieldRecentTitle      Field = "recent_title"
	FieldEmployer         Field = "employer"
	FieldResponsibilities Field = "responsibilities"
	FieldAchievements     Field = "achievements"
	FieldTools            Field = "tools"
	FieldLeadership       Field = "leadership"

	FieldEducationLevel Field = "education_level"
	FieldDegree         Field = "degree"
	FieldSchool         Field = "school"
	FieldGPA            Field = "gpa"
	FieldHonors         Field = "honors"

	FieldTechnicalSkills Field = "technical_skills"
	FieldSoftSkills      Field = "soft_skills"
	FieldCertifications  Field = "certifications"

	FieldEarlyCareer Field = "early_career"
	FieldProjects    Field = "projects"
	FieldAwards      Field = "awards"
)

var ErrUnknownField = errors.New("unknown profile field")

type PersonalInfo struct {
	Name     string `json:"name,omitempty" mapstructure:"name"`
	Email    string `json:"email,omitempty" mapstructure:"email"`
	Phone    string `json:"phone,omitempty" mapstructure:"phone"`
	Location string `json:"location,omitempty" mapstructure:"location"`
	LinkedIn string `json:"linkedin,omitempty" mapstructure:"linkedin"`
	Website  string `json:"website,omitempty" mapstructure:"website"`
}

// Background keeps the free-text answers collected during the deep-dive
// phases of the interview.
type Background struct {
	RecentTitle      string `json:"recent_title,omitempty" mapstructure:"recent-title"`
	Employer         string `json:"employer,omitempty" mapstructure:"employer"`
	Responsibilities string `json:"responsibilities,omitempty" mapstructure:"responsibilities"`
	Achievements     string `json:"achievements,omitempty" mapstructure:"achievements"`
	Tools            string `json:"tools,omitempty" mapstructure:"tools"`
	Leadership       string `json:"leadership,omitempty" mapstructure:"leadership"`

	EducationLevel string `json:"education_level,omitempty" mapstructure:"education-level"`
	Degree         string `json:"degree,omitempty" mapstructure:"degree"`
	School         string `json:"school,omitempty" mapstructure:"school"`
	GPA            string `json:"gpa,omitempty" mapstructure:"gpa"`
	Honors         string `json:"honors,omitempty" mapstructure:"honors"`

	TechnicalSkills string `json:"technical_skills,omitempty" mapstructure:"technical-skills"`
	SoftSkills      string `json:"soft_skills,omitempty" mapstructure:"soft-skills"`
	Certifications  string `json:"certifications,omitempty" mapstructure:"certifications"`

	EarlyCareer string `json:"early_career,omitempty" mapstructure:"early-career"`
	Projects    string `json:"projects,omitempty" mapstructure:"projects"`
	Awards      string `json:"awards,omitempty" mapstructure:"awards"`
}

type Profile struct {
	PersonalInfo    PersonalInfo `json:"personal_info" mapstructure:"personal-info"`
	CareerLevel     CareerLevel  `json:"career_level,omitempty" mapstructure:"career-level"`
	TargetRole      string       `json:"target_role,omitempty" mapstructure:"target-role"`
	Industry        string       `json:"industry,omitempty" mapstructure:"industry"`
	YearsExperience *int         `json:"years_experience,omitempty" mapstructure:"years-experience"`
	Background      Background   `json:"background" mapstructure:"background"`
}

// Validate reports invariant violations. Sparse profiles are valid.
func (p Profile) Validate() error {
	if p.YearsExperience != nil && *p.YearsExperience < 0 {
		return fmt.Errorf("years of experience must be non-negative, got %d", *p.YearsExperience)
	}

	switch p.CareerLevel {
	case CareerLevelUnset, CareerLevelEntry, CareerLevelMid, CareerLevelSenior, CareerLevelExecutive:
	default:
		return fmt.Errorf("unknown career level %q", p.CareerLevel)
	}

	return nil
}

// Has reports whether the field already holds a value.
func (p Profile) Has(f Field) bool {
	if f == FieldYearsExperience {
		return p.YearsExperience != nil
	}

	ptr := p.stringField(f)
	if ptr == nil {
		return false
	}
	return strings.TrimSpace(*ptr) != ""
}

// Apply attributes an answer to the field and returns the updated profile.
// Answers that carry nothing usable leave the field unset.
func (p Profile) Apply(f Field, answer string) (Profile, error) {
	if f == FieldNone {
		return p, nil
	}

	answer = strings.TrimSpace(answer)

	if f == FieldYearsExperience {
		years, ok := ExtractYears(answer)
		if !ok || years > MaxYearsExperience {
			return p, nil
		}
		p.YearsExperience = &years
		if p.CareerLevel == CareerLevelUnset {
			p.CareerLevel = LevelForYears(years)
		}
		return p, nil
	}

	ptr := p.stringField(f)
	if ptr == nil {
		return p, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}

	value := normalize(f, answer)
	if value == "" {
		return p, nil
	}
	*ptr = value

	return p, nil
}

// LevelForYears derives a career level from years of experience.
func LevelForYears(years int) CareerLevel {
	switch {
	case years < 3:
		return CareerLevelEntry
	case years < 8:
		return CareerLevelMid
	case years < 15:
		return CareerLevelSenior
	default:
		return CareerLevelExecutive
	}
}

// stringField returns a pointer to the text-valued field, or nil for fields
// that are not stored as text.
func (p *Profile) stringField(f Field) *string {
	switch f {
	case FieldName:
		return &p.PersonalInfo.Name
	case FieldEmail:
		return &p.PersonalInfo.Email
	case FieldPhone:
		return &p.PersonalInfo.Phone
	case FieldLocation:
		return &p.PersonalInfo.Location
	case FieldLinkedIn:
		return &p.PersonalInfo.LinkedIn
	case FieldWebsite:
		return &p.PersonalInfo.Website
	case FieldTargetRole:
		return &p.TargetRole
	case FieldIndustry:
		return &p.Industry
	case FieldRecentTitle:
		return &p.Background.RecentTitle
	case FieldEmployer:
		return &p.Background.Employer
	case FieldResponsibilities:
		return &p.Background.Responsibilities
	case FieldAchievements:
		return &p.Background.Achievements
	case FieldTools:
		return &p.Background.Tools
	case FieldLeadership:
		return &p.Background.Leadership
	case FieldEducationLevel:
		return &p.Background.EducationLevel
	case FieldDegree:
		return &p.Background.Degree
	case FieldSchool:
		return &p.Background.School
	case FieldGPA:
		return &p.Background.GPA
	case FieldHonors:
		return &p.Background.Honors
	case FieldTechnicalSkills:
		return &p.Background.TechnicalSkills
	case FieldSoftSkills:
		return &p.Background.SoftSkills
	case FieldCertifications:
		return &p.Background.Certifications
	case FieldEarlyCareer:
		return &p.Background.EarlyCareer
	case FieldProjects:
		return &p.Background.Projects
	case FieldAwards:
		return &p.Background.Awards
	default:
		return nil
	}
}

func normalize(f Field, answer string) string {
	if answer == "" || IsNegative(answer) {
		return ""
	}

	switch f {
	case FieldName:
		return ExtractName(answer)
	case FieldEmail:
		if email, ok := ExtractEmail(answer); ok {
			return email
		}
		return answer
	case FieldPhone:
		if phone, ok := ExtractPhone(answer); ok {
			return phone
		}
		return answer
	case FieldLinkedIn, FieldWebsite:
		url, _ := ExtractURL(answer)
		return url
	default:
		return answer
	}
}
