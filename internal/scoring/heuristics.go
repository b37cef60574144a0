package scoring

import (
	"context"
	"strconv"
	"strings"
)

// Heuristic scores one category of an uploaded document.
type Heuristic interface {
	Name() string
	Category() Category
	Evaluate(ctx context.Context, u Upload) (int, error)
}

// Status represents runtime information about a heuristic.
type Status struct {
	Name     string
	Category Category
	Details  map[string]string
}

type statusProvider interface {
	Status() Status
}

// Describe returns status entries for the provided heuristics.
func Describe(heuristics []Heuristic) []Status {
	statuses := make([]Status, 0, len(heuristics))
	for _, h := range heuristics {
		if reporter, ok := h.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}
		statuses = append(statuses, Status{Name: h.Name(), Category: h.Category()})
	}
	return statuses
}

// DefaultKeywords are matched by the keyword heuristic when none are
// configured.
var DefaultKeywords = []string{
	"agile", "analytics", "api", "automation", "aws", "budget", "cloud",
	"collaboration", "communication", "customer", "data", "design",
	"leadership", "management", "optimization", "performance",
	"project management", "python", "sql", "stakeholder", "strategy", "testing",
}

// TextHeuristics returns the heuristics that inspect the extracted text of
// a document, one per category.
func TextHeuristics(keywords []string) []Heuristic {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	return []Heuristic{
		&formattingHeuristic{},
		&atsHeuristic{},
		&keywordHeuristic{keywords: keywords},
		&experienceHeuristic{},
		&educationHeuristic{},
		&skillsHeuristic{},
	}
}

func clamp(score int) int {
	return max(0, min(score, 100))
}

type formattingHeuristic struct{}

func (h *formattingHeuristic) Name() string { return "formatting" }

func (h *formattingHeuristic) Category() Category { return CategoryFormatting }

func (h *formattingHeuristic) Evaluate(_ context.Context, u Upload) (int, error) {
	p := parseText(u.Text)
	if p.empty() {
		return 0, nil
	}

	score := 40

	switch bullets := p.bullets(); {
	case bullets >= 3:
		score += 20
	case bullets >= 1:
		score += 10
	}

	switch avg := p.averageLineLength(); {
	case avg >= 20 && avg <= 120:
		score += 20
	case avg < 160:
		score += 10
	}

	switch {
	case p.headers >= 3:
		score += 10
	case p.headers >= 1:
		score += 5
	}

	if p.longestLine() <= 200 && !strings.Contains(u.Text, "\t") {
		score += 10
	}

	return clamp(score), nil
}

type atsHeuristic struct{}

func (h *atsHeuristic) Name() string { return "ats_compatibility" }

func (h *atsHeuristic) Category() Category { return CategoryATS }

func (h *atsHeuristic) Evaluate(_ context.Context, u Upload) (int, error) {
	p := parseText(u.Text)
	if p.empty() {
		return 0, nil
	}

	score := 0
	for _, s := range []section{sectionExperience, sectionEducation, sectionSkills} {
		if p.has(s) {
			score += 20
		}
	}
	if emailRe.MatchString(u.Text) {
		score += 10
	}
	if phoneRe.MatchString(u.Text) {
		score += 10
	}
	if p.has(sectionSummary) {
		score += 5
	}

	switch ratio := p.symbolRatio(); {
	case ratio < 0.02:
		score += 15
	case ratio < 0.05:
		score += 8
	}

	return clamp(score), nil
}

type keywordHeuristic struct {
	keywords []string
}

const keywordTarget = 15

func (h *keywordHeuristic) Name() string { return "keywords" }

func (h *keywordHeuristic) Category() Category { return CategoryKeywords }

func (h *keywordHeuristic) Evaluate(_ context.Context, u Upload) (int, error) {
	p := parseText(u.Text)
	if p.empty() {
		return 0, nil
	}

	normalized := p.normalized()
	matched := 0
	for _, kw := range h.keywords {
		if containsTerm(normalized, kw) {
			matched++
		}
	}

	target := min(len(h.keywords), keywordTarget)
	score := 0
	if target > 0 {
		score = 60 * min(matched, target) / target
	}
	score += 4 * min(p.countActionVerbs(), 10)

	return clamp(score), nil
}

func (h *keywordHeuristic) Status() Status {
	return Status{
		Name:     h.Name(),
		Category: h.Category(),
		Details:  map[string]string{"keywords": strconv.Itoa(len(h.keywords))},
	}
}

type experienceHeuristic struct{}

func (h *experienceHeuristic) Name() string { return "experience" }

func (h *experienceHeuristic) Category() Category { return CategoryExperience }

func (h *experienceHeuristic) Evaluate(_ context.Context, u Upload) (int, error) {
	p := parseText(u.Text)
	if p.empty() {
		return 0, nil
	}

	ranges := len(dateRangeRe.FindAllString(u.Text, -1))
	if !p.has(sectionExperience) && ranges == 0 {
		return 20, nil
	}

	score := 15
	if p.has(sectionExperience) {
		score = 30
	}
	score += 7 * min(p.quantified(), 6)
	score += 6 * min(ranges, 3)
	score += 2 * min(p.countActionVerbs(), 5)

	return clamp(score), nil
}

type educationHeuristic struct{}

var (
	degreeTerms      = []string{"bachelor", "master", "phd", "ph.d", "doctorate", "mba", "associate", "diploma", "degree", "b.s", "b.a", "m.s", "bsc", "msc"}
	institutionTerms = []string{"university", "college", "institute", "school", "academy"}
)

func (h *educationHeuristic) Name() string { return "education" }

func (h *educationHeuristic) Category() Category { return CategoryEducation }

func (h *educationHeuristic) Evaluate(_ context.Context, u Upload) (int, error) {
	p := parseText(u.Text)
	if p.empty() {
		return 0, nil
	}

	normalized := p.normalized()
	score := 0
	if p.has(sectionEducation) {
		score += 40
	}
	if containsAnyTerm(normalized, degreeTerms) {
		score += 30
	}
	if containsAnyTerm(normalized, institutionTerms) {
		score += 20
	}
	if yearRe.MatchString(u.Text) {
		score += 10
	}

	return clamp(score), nil
}

func containsAnyTerm(normalized string, terms []string) bool {
	for _, term := range terms {
		if containsTerm(normalized, term) {
			return true
		}
	}
	return false
}

type skillsHeuristic struct{}

func (h *skillsHeuristic) Name() string { return "skills" }

func (h *skillsHeuristic) Category() Category { return CategorySkills }

func (h *skillsHeuristic) Evaluate(_ context.Context, u Upload) (int, error) {
	p := parseText(u.Text)
	if p.empty() || !p.has(sectionSkills) {
		return 0, nil
	}

	return clamp(30 + 5*min(p.skillItems(), 14)), nil
}
