package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullDraft() Draft {
	return Draft{
		PersonalInfo: DraftPersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Address:  "Berlin",
			LinkedIn: "linkedin.com/in/jane",
			Website:  "jane.dev",
		},
		Summary:        "Backend engineer with eight years of experience building payment systems.",
		Experience:     []DraftExperience{{JobTitle: "Engineer"}, {JobTitle: "Senior Engineer"}, {JobTitle: "Lead"}, {JobTitle: "Staff"}},
		Education:      []DraftEducation{{Degree: "B.Sc."}},
		Skills:         []string{"Go", "SQL", "Kafka", "Kubernetes", "Leadership"},
		Certifications: []string{"CKA"},
	}
}

func TestScoreDraft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		draft  func() Draft
		expect int
	}{
		{
			name:   "empty draft scores zero",
			draft:  func() Draft { return Draft{} },
			expect: 0,
		},
		{
			name:   "complete draft is capped at 100",
			draft:  fullDraft,
			expect: 100,
		},
		{
			name: "three of six personal fields",
			draft: func() Draft {
				return Draft{PersonalInfo: DraftPersonalInfo{FullName: "A", Email: "b@c.de", Phone: "1"}}
			},
			expect: 10,
		},
		{
			name: "one personal field rounds",
			draft: func() Draft {
				return Draft{PersonalInfo: DraftPersonalInfo{FullName: "A"}}
			},
			expect: 3,
		},
		{
			name: "short summary",
			draft: func() Draft {
				return Draft{Summary: "twenty-one characters"}
			},
			expect: 10,
		},
		{
			name: "summary of exactly twenty runes earns nothing",
			draft: func() Draft {
				return Draft{Summary: "ääääääääääääääääääää"}
			},
			expect: 0,
		},
		{
			name: "experience points cap at 25",
			draft: func() Draft {
				return Draft{Experience: make([]DraftExperience, 3)}
			},
			expect: 24,
		},
		{
			name: "three skills",
			draft: func() Draft {
				return Draft{Skills: []string{"Go", "SQL", "Git"}}
			},
			expect: 10,
		},
		{
			name: "blank skills and certifications do not count",
			draft: func() Draft {
				return Draft{Skills: []string{"Go", " ", "", "SQL", "Git"}, Certifications: []string{"  "}}
			},
			expect: 10,
		},
		{
			name: "education and certification",
			draft: func() Draft {
				return Draft{Education: []DraftEducation{{}}, Certifications: []string{"PMP"}}
			},
			expect: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, ScoreDraft(tt.draft()))
		})
	}
}

func TestScoreDraftEightyPoints(t *testing.T) {
	t.Parallel()

	d := Draft{
		PersonalInfo: DraftPersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
		},
		Summary:    "Backend engineer with eight years of experience building payment systems.",
		Experience: []DraftExperience{{}, {}},
		Education:  []DraftEducation{{}},
		Skills:     []string{"Go", "SQL", "Kafka", "Docker", "Git"},
	}

	// 10 + 15 + 16 + 15 + 15 + 0
	assert.Equal(t, 71, ScoreDraft(d))

	d.PersonalInfo.Address = "Berlin"
	d.Certifications = []string{"CKA"}
	// 13.33 + 15 + 16 + 15 + 15 + 10
	assert.Equal(t, 84, ScoreDraft(d))
}

func TestScoreDraftIsMonotonic(t *testing.T) {
	t.Parallel()

	d := Draft{}
	prev := ScoreDraft(d)

	steps := []func(*Draft){
		func(d *Draft) { d.PersonalInfo.FullName = "Jane" },
		func(d *Draft) { d.PersonalInfo.Email = "jane@example.com" },
		func(d *Draft) { d.Summary = "a summary that is long enough" },
		func(d *Draft) { d.Experience = append(d.Experience, DraftExperience{}) },
		func(d *Draft) { d.Skills = []string{"Go", "SQL", "Git"} },
		func(d *Draft) { d.Education = []DraftEducation{{}} },
		func(d *Draft) { d.Summary = "a summary that is comfortably longer than fifty characters" },
		func(d *Draft) { d.Certifications = []string{"CKA"} },
		func(d *Draft) { d.Experience = append(d.Experience, DraftExperience{}) },
	}

	for i, step := range steps {
		step(&d)
		next := ScoreDraft(d)
		assert.GreaterOrEqualf(t, next, prev, "step %d decreased the score", i)
		assert.LessOrEqual(t, next, 100)
		prev = next
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score  int
		expect string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89, "Very Good"},
		{80, "Very Good"},
		{70, "Good"},
		{60, "Fair"},
		{59, "Needs Improvement"},
		{0, "Needs Improvement"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.expect, Label(tt.score), "score %d", tt.score)
	}
}
