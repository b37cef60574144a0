// Package interview sequences resume interview questions and tracks the
// conversation state of a single session.
package interview

import (
	"strings"

	"github.com/spigell/cv-assistant/internal/profile"
)

// Question is a single prompt together with the profile field its answer
// is attributed to.
type Question struct {
	ID     string        `json:"id"`
	Text   string        `json:"text"`
	Target profile.Field `json:"target,omitempty"`
}

var personalQuestions = []Question{
	{ID: "personal.name", Target: profile.FieldName, Text: "Let's start with your personal information. What's your full name?"},
	{ID: "personal.email", Target: profile.FieldEmail, Text: "What's your professional email address?"},
	{ID: "personal.phone", Target: profile.FieldPhone, Text: "What's your phone number?"},
	{ID: "personal.location", Target: profile.FieldLocation, Text: "What city and state are you located in? (This helps with local job searches)"},
	{ID: "personal.linkedin", Target: profile.FieldLinkedIn, Text: "Do you have a LinkedIn profile? If yes, please share the URL."},
}

var careerQuestions = []Question{
	{ID: "career.target_role", Target: profile.FieldTargetRole, Text: "What specific job title or role are you targeting? (e.g., 'Senior Software Engineer', 'Marketing Manager')"},
	{ID: "career.industry", Target: profile.FieldIndustry, Text: "What industry are you focusing on? (e.g., Technology, Healthcare, Finance, Education)"},
	{ID: "career.years", Target: profile.FieldYearsExperience, Text: "How many years of professional experience do you have in your field?"},
}

var experienceQuestions = []Question{
	{ID: "experience.title", Target: profile.FieldRecentTitle, Text: "Let's talk about your work experience. Starting with your most recent position, what was your job title?"},
	{ID: "experience.employer", Target: profile.FieldEmployer, Text: "What company did you work for, and what dates did you work there?"},
	{ID: "experience.responsibilities", Target: profile.FieldResponsibilities, Text: "What were your main responsibilities in this role?"},
	{ID: "experience.achievements", Target: profile.FieldAchievements, Text: "What were your biggest achievements or accomplishments? Please include specific numbers, percentages, or results if possible."},
	{ID: "experience.tools", Target: profile.FieldTools, Text: "What technologies, tools, or methodologies did you use in this position?"},
	{ID: "experience.leadership", Target: profile.FieldLeadership, Text: "Did you manage any team members or lead any projects? If so, please provide details."},
}

var educationQuestions = []Question{
	{ID: "education.level", Target: profile.FieldEducationLevel, Text: "Now let's cover your education. What's your highest level of education?"},
	{ID: "education.degree", Target: profile.FieldDegree, Text: "What was your degree and major/field of study?"},
	{ID: "education.school", Target: profile.FieldSchool, Text: "Which school did you attend and when did you graduate?"},
	{ID: "education.gpa", Target: profile.FieldGPA, Text: "What was your GPA? (Include only if 3.5 or higher)"},
	{ID: "education.honors", Target: profile.FieldHonors, Text: "Did you receive any honors, awards, or participate in relevant activities?"},
}

var skillQuestions = []Question{
	{ID: "skills.technical", Target: profile.FieldTechnicalSkills, Text: "What are your top technical skills? (programming languages, software, tools, etc.)"},
	{ID: "skills.soft", Target: profile.FieldSoftSkills, Text: "What are your strongest soft skills? (leadership, communication, problem-solving, etc.)"},
	{ID: "skills.certifications", Target: profile.FieldCertifications, Text: "Do you have any certifications or professional licenses?"},
}

var earlyCareerQuestion = Question{
	ID:     "extra.early_career",
	Target: profile.FieldEarlyCareer,
	Text:   "Do you have any relevant internships, volunteer work, or academic projects to include?",
}

var closingQuestions = []Question{
	{ID: "extra.projects", Target: profile.FieldProjects, Text: "Do you have any notable projects, publications, or portfolio items to showcase?"},
	{ID: "extra.awards", Target: profile.FieldAwards, Text: "Are there any awards, honors, or professional achievements you'd like to highlight?"},
}

var entryLevelMarkers = []string{"graduate", "entry", "first job"}

// MinQuestions is the number of questions asked regardless of the profile.
var MinQuestions = len(experienceQuestions) + len(educationQuestions) + len(skillQuestions) + len(closingQuestions)

// IsEntryLevel reports whether the text carries entry-level phrasing.
func IsEntryLevel(text string) bool {
	return containsAny(strings.ToLower(text), entryLevelMarkers)
}

// GenerateQuestions builds the ordered interview for the trigger text,
// skipping questions whose answers the profile already holds.
func GenerateQuestions(trigger string, p profile.Profile) []Question {
	questions := make([]Question, 0, MinQuestions+len(personalQuestions)+len(careerQuestions)+1)

	questions = appendMissing(questions, personalQuestions, p)
	questions = appendMissing(questions, careerQuestions, p)

	questions = append(questions, experienceQuestions...)
	questions = append(questions, educationQuestions...)
	questions = append(questions, skillQuestions...)

	if IsEntryLevel(trigger) {
		questions = append(questions, earlyCareerQuestion)
	}

	questions = append(questions, closingQuestions...)

	return questions
}

// Prompts returns the question texts in order.
func Prompts(questions []Question) []string {
	prompts := make([]string, 0, len(questions))
	for _, q := range questions {
		prompts = append(prompts, q.Text)
	}
	return prompts
}

func appendMissing(dst, phase []Question, p profile.Profile) []Question {
	for _, q := range phase {
		if !p.Has(q.Target) {
			dst = append(dst, q)
		}
	}
	return dst
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
