package resume

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/cv-assistant/internal/profile"
	"github.com/spigell/cv-assistant/internal/scoring"
)

func intPtr(v int) *int { return &v }

func TestSynthesizeEmptyProfileUsesTemplates(t *testing.T) {
	t.Parallel()

	doc := Synthesize(profile.Profile{}, "")

	assert.Equal(t, Identity{Name: "Professional Name", Email: "professional@email.com", Phone: "(555) 123-4567"}, doc.Identity)
	assert.True(t, strings.HasPrefix(doc.Summary, "Results-driven Professional with 3+ years of experience in Technology."))
	require.Len(t, doc.Experience, 2)
	assert.Equal(t, "Senior Professional", doc.Experience[0].Title)
	assert.Equal(t, "Leading Technology Company", doc.Experience[0].Organization)
	assert.Equal(t, "Growing Tech Startup", doc.Experience[1].Organization)
	assert.Equal(t, []Education{templateEducation}, doc.Education)
	assert.Equal(t, []string{
		"JavaScript", "React", "Node.js", "Python", "SQL", "Git", "AWS",
		"Leadership", "Project Management", "Strategic Planning", "Team Building",
	}, doc.Skills)
	assert.NotNil(t, doc.Certifications)
	assert.Empty(t, doc.Certifications)
}

func TestSynthesizeDoesNotShareTemplates(t *testing.T) {
	t.Parallel()

	doc := Synthesize(profile.Profile{}, "")
	doc.Experience[0].Achievements[0] = "changed"
	doc.Skills[0] = "changed"

	again := Synthesize(profile.Profile{}, "")
	assert.NotEqual(t, "changed", again.Experience[0].Achievements[0])
	assert.Equal(t, "JavaScript", again.Skills[0])
}

func TestSynthesizeSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile profile.Profile
		context string
		prefix  string
	}{
		{
			name:    "profile values",
			profile: profile.Profile{TargetRole: "Data Scientist", Industry: "Finance", YearsExperience: intPtr(5)},
			prefix:  "Results-driven Data Scientist with 5+ years of experience in Finance.",
		},
		{
			name:    "industry detected from context",
			profile: profile.Profile{TargetRole: "Nurse Manager"},
			context: "I need a resume for healthcare administration",
			prefix:  "Results-driven Nurse Manager with 3+ years of experience in Healthcare.",
		},
		{
			name:    "zero years falls back to the default",
			profile: profile.Profile{YearsExperience: intPtr(0)},
			prefix:  "Results-driven Professional with 3+ years of experience in Technology.",
		},
		{
			name:    "explicit industry wins over context",
			profile: profile.Profile{Industry: "Retail"},
			context: "resume for a bank",
			prefix:  "Results-driven Professional with 3+ years of experience in Retail.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Synthesize(tt.profile, tt.context)
			assert.True(t, strings.HasPrefix(doc.Summary, tt.prefix), doc.Summary)
		})
	}
}

func TestSynthesizeFromAnswers(t *testing.T) {
	t.Parallel()

	p := profile.Profile{
		PersonalInfo: profile.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "Austin, TX",
			LinkedIn: "linkedin.com/in/jane",
		},
		TargetRole: "Staff Engineer",
		Background: profile.Background{
			RecentTitle:     "Senior Backend Engineer",
			Employer:        "Acme Corp from 2019 to present",
			Achievements:    "Cut p99 latency by 40%. Shipped the billing rewrite",
			Leadership:      "Led a team of 5 engineers",
			Degree:          "B.S. in Computer Science",
			School:          "State University, graduated 2015",
			TechnicalSkills: "Go, SQL, kafka, Kubernetes",
			SoftSkills:      "Mentoring, communication, Kafka",
			Certifications:  "CKA; AWS Solutions Architect",
		},
	}

	doc := Synthesize(p, "")

	assert.Equal(t, "Jane Doe", doc.Identity.Name)
	assert.Equal(t, "Austin, TX", doc.Identity.Location)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, Experience{
		Title:        "Senior Backend Engineer",
		Organization: "Acme Corp",
		Duration:     "2019 - Present",
		Achievements: []string{"Cut p99 latency by 40%", "Shipped the billing rewrite", "Led a team of 5 engineers"},
	}, doc.Experience[0])
	assert.Equal(t, []Education{{Credential: "B.S. in Computer Science", Institution: "State University", Year: "2015"}}, doc.Education)
	assert.Equal(t, []string{"Go", "SQL", "kafka", "Kubernetes", "Mentoring", "communication"}, doc.Skills)
	assert.Equal(t, []string{"CKA", "AWS Solutions Architect"}, doc.Certifications)
}

func TestSynthesizeKeepsTemplateBulletsWithoutAchievements(t *testing.T) {
	t.Parallel()

	doc := Synthesize(profile.Profile{Background: profile.Background{RecentTitle: "Analyst"}}, "")

	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Analyst", doc.Experience[0].Title)
	assert.Empty(t, doc.Experience[0].Duration)
	assert.Equal(t, templateExperience[0].Achievements, doc.Experience[0].Achievements)
}

func TestSynthesizeTargetRoleTitlesTemplate(t *testing.T) {
	t.Parallel()

	doc := Synthesize(profile.Profile{TargetRole: "Marketing Manager"}, "")
	assert.Equal(t, "Marketing Manager", doc.Experience[0].Title)
	assert.Equal(t, "Senior Professional", templateExperience[0].Title)
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Go", "SQL", "Kafka"}, splitList("Go; SQL,\n- and Kafka."))
	assert.Empty(t, splitList("none"))
	assert.Empty(t, splitList(""))
	assert.Equal(t, []string{"PMP"}, splitList(" PMP "))
}

func TestDetectIndustry(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Create a resume for a data scientist with 5 years experience": "Technology",
		"I need a resume for healthcare administration":                "Healthcare",
		"Help me transition from marketing to product management":      "Marketing",
		"resume for a bank teller":                                     "Finance",
		"I'm a recent graduate":                                        "",
		"data engineer working on production systems":                  "Technology",
		"software engineer at an e-commerce startup":                   "Technology",
		"retail merchandising lead":                                    "Retail",
		"factory shift supervisor":                                     "Manufacturing",
		"store and plant operations, production planning":              "",
		"is it a good fit":                                             "",
	}

	for text, expect := range tests {
		assert.Equalf(t, expect, DetectIndustry(text), "text %q", text)
	}
}

func TestDraftConversion(t *testing.T) {
	t.Parallel()

	doc := Synthesize(profile.Profile{}, "")
	draft := doc.Draft()

	require.Len(t, draft.Experience, 2)
	assert.Equal(t, "2022", draft.Experience[0].StartDate)
	assert.Equal(t, "Present", draft.Experience[0].EndDate)
	assert.True(t, draft.Experience[0].Current)
	assert.Equal(t, "2022", draft.Experience[1].EndDate)
	assert.False(t, draft.Experience[1].Current)
	assert.Equal(t, "University of Technology", draft.Education[0].School)

	// 10 + 15 + 16 + 15 + 15
	assert.Equal(t, 71, scoring.ScoreDraft(draft))
}

func TestDumpToTmpFile(t *testing.T) {
	t.Parallel()

	doc := Synthesize(profile.Profile{PersonalInfo: profile.PersonalInfo{Name: "Jane"}}, "")
	doc.Score = 71

	path, err := doc.DumpToTmpFile()
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"identity\"")

	var restored Document
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, doc, restored)
}
