package resume

import (
	"strings"
	"unicode"
)

type industryMarkers struct {
	name    string
	markers []string
}

// industries is ordered: the first industry with a matching marker wins.
var industries = []industryMarkers{
	{name: "Healthcare", markers: []string{"healthcare", "health", "medical", "hospital", "clinical", "nurse", "nursing", "pharma"}},
	{name: "Finance", markers: []string{"finance", "financial", "bank", "banking", "fintech", "accounting", "investment"}},
	{name: "Marketing", markers: []string{"marketing", "brand", "branding", "seo", "advertising", "campaign"}},
	{name: "Education", markers: []string{"education", "teacher", "teaching", "tutor", "curriculum"}},
	{name: "Technology", markers: []string{"software", "developer", "engineer", "engineering", "data", "tech", "devops", "cloud"}},
	{name: "Retail", markers: []string{"retail", "merchandising", "ecommerce", "e-commerce"}},
	{name: "Manufacturing", markers: []string{"manufacturing", "factory", "assembly"}},
}

// DetectIndustry guesses the industry from free text. It returns an empty
// string when no marker is present.
func DetectIndustry(text string) string {
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-')
	}) {
		words[w] = struct{}{}
	}

	for _, ind := range industries {
		for _, m := range ind.markers {
			if _, ok := words[m]; ok {
				return ind.name
			}
		}
	}
	return ""
}
