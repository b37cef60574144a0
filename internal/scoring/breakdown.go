package scoring

import (
	"fmt"
)

type Category string

const (
	CategoryFormatting Category = "formatting"
	CategoryATS        Category = "ats"
	CategoryKeywords   Category = "keywords"
	CategoryExperience Category = "experience"
	CategoryEducation  Category = "education"
	CategorySkills     Category = "skills"
)

// Categories lists every breakdown category in reporting order.
var Categories = []Category{
	CategoryFormatting,
	CategoryATS,
	CategoryKeywords,
	CategoryExperience,
	CategoryEducation,
	CategorySkills,
}

// weights are percentages and sum to 100.
var weights = map[Category]int{
	CategoryFormatting: 20,
	CategoryATS:        25,
	CategoryKeywords:   20,
	CategoryExperience: 15,
	CategoryEducation:  10,
	CategorySkills:     10,
}

type Breakdown struct {
	Formatting int `json:"formatting"`
	ATS        int `json:"ats_compatibility"`
	Keywords   int `json:"keywords"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Skills     int `json:"skills"`
	Overall    int `json:"overall"`
}

// NewBreakdown builds a breakdown from per-category scores and computes the
// weighted overall score.
func NewBreakdown(scores map[Category]int) (Breakdown, error) {
	var b Breakdown
	for _, c := range Categories {
		v, ok := scores[c]
		if !ok {
			return Breakdown{}, fmt.Errorf("missing score for category %s", c)
		}
		b.set(c, v)
	}

	overall, err := b.WeightedOverall()
	if err != nil {
		return Breakdown{}, err
	}
	b.Overall = overall

	return b, nil
}

// Score returns the score of a single category.
func (b Breakdown) Score(c Category) int {
	switch c {
	case CategoryFormatting:
		return b.Formatting
	case CategoryATS:
		return b.ATS
	case CategoryKeywords:
		return b.Keywords
	case CategoryExperience:
		return b.Experience
	case CategoryEducation:
		return b.Education
	case CategorySkills:
		return b.Skills
	default:
		return 0
	}
}

func (b *Breakdown) set(c Category, v int) {
	switch c {
	case CategoryFormatting:
		b.Formatting = v
	case CategoryATS:
		b.ATS = v
	case CategoryKeywords:
		b.Keywords = v
	case CategoryExperience:
		b.Experience = v
	case CategoryEducation:
		b.Education = v
	case CategorySkills:
		b.Skills = v
	}
}

// Validate checks every category score lies in [0, 100].
func (b Breakdown) Validate() error {
	for _, c := range Categories {
		if v := b.Score(c); v < 0 || v > 100 {
			return fmt.Errorf("%s score %d out of range [0, 100]", c, v)
		}
	}
	return nil
}

// WeightedOverall rounds the weighted sum of the category scores half up.
// The sum is kept in hundredths so the rounding is exact.
func (b Breakdown) WeightedOverall() (int, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}

	hundredths := 0
	for _, c := range Categories {
		hundredths += weights[c] * b.Score(c)
	}

	return (hundredths + 50) / 100, nil
}

type Severity string

const (
	SeverityBlocking Severity = "blocking"
	SeverityAdvisory Severity = "advisory"
	SeverityPositive Severity = "positive"
)

type Suggestion struct {
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
	Message  string   `json:"message"`
}

const (
	formattingThreshold = 80
	atsThreshold        = 75
	keywordsThreshold   = 70
	experienceThreshold = 80
	skillsThreshold     = 75
	excellentOverall    = 85
)

// Suggest derives improvement suggestions from a breakdown. Every rule is
// independent of the others.
func Suggest(b Breakdown) []Suggestion {
	suggestions := make([]Suggestion, 0)

	if b.Formatting < formattingThreshold {
		suggestions = append(suggestions, Suggestion{
			Severity: SeverityAdvisory,
			Category: "Formatting",
			Message:  "Consider using a cleaner, more professional template with consistent spacing and fonts.",
		})
	}

	if b.ATS < atsThreshold {
		suggestions = append(suggestions, Suggestion{
			Severity: SeverityBlocking,
			Category: "ATS Compatibility",
			Message:  "Your resume may not pass ATS systems. Use standard section headers and avoid complex formatting.",
		})
	}

	if b.Keywords < keywordsThreshold {
		suggestions = append(suggestions, Suggestion{
			Severity: SeverityAdvisory,
			Category: "Keywords",
			Message:  "Include more industry-specific keywords and skills relevant to your target role.",
		})
	}

	if b.Experience < experienceThreshold {
		suggestions = append(suggestions, Suggestion{
			Severity: SeverityAdvisory,
			Category: "Experience",
			Message:  "Add more quantifiable achievements and specific results to your work experience.",
		})
	}

	if b.Skills < skillsThreshold {
		suggestions = append(suggestions, Suggestion{
			Severity: SeverityAdvisory,
			Category: "Skills",
			Message:  "Expand your skills section with more relevant technical and soft skills.",
		})
	}

	if b.Overall >= excellentOverall {
		suggestions = append(suggestions, Suggestion{
			Severity: SeverityPositive,
			Category: "Overall",
			Message:  "Excellent resume! You're well-positioned for your job search.",
		})
	}

	return suggestions
}
