package scoring

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	yearRe       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	dateRangeRe  = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*(?:-|–|—|to)\s*(?:(?:19|20)\d{2}|present|current|now)\b`)
	quantifiedRe = regexp.MustCompile(`\d+(?:\.\d+)?\s?%|[$€£]\s?\d|\b\d+\+|\b\d+[kKmM]\b|\b\d{2,}\b`)
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe      = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{5,}\d`)
)

type section string

const (
	sectionSummary        section = "summary"
	sectionExperience     section = "experience"
	sectionEducation      section = "education"
	sectionSkills         section = "skills"
	sectionCertifications section = "certifications"
	sectionOther          section = "other"
)

var sectionHeaders = map[string]section{
	"summary":                   sectionSummary,
	"professional summary":      sectionSummary,
	"profile":                   sectionSummary,
	"objective":                 sectionSummary,
	"career objective":          sectionSummary,
	"experience":                sectionExperience,
	"work experience":           sectionExperience,
	"professional experience":   sectionExperience,
	"employment history":        sectionExperience,
	"work history":              sectionExperience,
	"education":                 sectionEducation,
	"education and training":    sectionEducation,
	"academic background":       sectionEducation,
	"skills":                    sectionSkills,
	"technical skills":          sectionSkills,
	"core competencies":         sectionSkills,
	"key skills":                sectionSkills,
	"certifications":            sectionCertifications,
	"licenses & certifications": sectionCertifications,
	"projects":                  sectionOther,
	"awards":                    sectionOther,
	"publications":              sectionOther,
	"volunteer experience":      sectionOther,
}

var actionVerbs = []string{
	"achieved", "analyzed", "built", "collaborated", "coordinated", "created",
	"delivered", "designed", "developed", "drove", "implemented", "improved",
	"increased", "launched", "led", "managed", "mentored", "optimized",
	"reduced", "streamlined",
}

var bulletPrefixes = []string{"-", "•", "*", "–", "·", "▪"}

// parsedText is the line structure of an uploaded document.
type parsedText struct {
	raw      string
	lines    []string
	sections map[section][]string
	headers  int
}

func parseText(text string) parsedText {
	p := parsedText{raw: text, sections: make(map[section][]string)}

	current := section("")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p.lines = append(p.lines, line)

		if s, ok := headerSection(line); ok {
			current = s
			p.headers++
			if _, seen := p.sections[s]; !seen {
				p.sections[s] = []string{}
			}
			continue
		}

		if current != "" {
			p.sections[current] = append(p.sections[current], line)
		}
	}

	return p
}

func headerSection(line string) (section, bool) {
	normalized := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ":"))
	s, ok := sectionHeaders[strings.TrimSpace(normalized)]
	return s, ok
}

func (p parsedText) empty() bool { return len(p.lines) == 0 }

func (p parsedText) has(s section) bool {
	_, ok := p.sections[s]
	return ok
}

func (p parsedText) bullets() int {
	n := 0
	for _, line := range p.lines {
		if isBullet(line) {
			n++
		}
	}
	return n
}

func isBullet(line string) bool {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func (p parsedText) averageLineLength() int {
	if len(p.lines) == 0 {
		return 0
	}
	total := 0
	for _, line := range p.lines {
		total += utf8.RuneCountInString(line)
	}
	return total / len(p.lines)
}

func (p parsedText) longestLine() int {
	longest := 0
	for _, line := range p.lines {
		longest = max(longest, utf8.RuneCountInString(line))
	}
	return longest
}

// symbolRatio is the share of runes that are neither letters, digits, spaces
// nor ordinary punctuation. Tables and decorative glyphs push it up.
func (p parsedText) symbolRatio() float64 {
	total, odd := 0, 0
	for _, r := range p.raw {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(".,;:()-'\"/&@+%$#!?", r) {
			continue
		}
		odd++
	}
	if total == 0 {
		return 0
	}
	return float64(odd) / float64(total)
}

// normalized returns the lowercased words of the text joined by single
// spaces and padded with a space on both ends.
func (p parsedText) normalized() string {
	words := strings.FieldsFunc(strings.ToLower(p.raw), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("+#.-", r))
	})
	for i, w := range words {
		words[i] = strings.Trim(w, ".-")
	}
	return " " + strings.Join(words, " ") + " "
}

func containsTerm(normalized, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	return strings.Contains(normalized, " "+term+" ")
}

func (p parsedText) countActionVerbs() int {
	normalized := p.normalized()
	n := 0
	for _, verb := range actionVerbs {
		if containsTerm(normalized, verb) {
			n++
		}
	}
	return n
}

// quantified counts experience lines that carry a number other than a year.
func (p parsedText) quantified() int {
	n := 0
	for _, line := range p.sections[sectionExperience] {
		if quantifiedRe.MatchString(yearRe.ReplaceAllString(line, "")) {
			n++
		}
	}
	return n
}

// skillItems counts the comma, bullet or pipe separated entries listed under
// a skills header.
func (p parsedText) skillItems() int {
	n := 0
	for _, line := range p.sections[sectionSkills] {
		for _, item := range strings.FieldsFunc(line, func(r rune) bool {
			return strings.ContainsRune(",;|•·▪", r)
		}) {
			item = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(item), "-*–"))
			if item != "" {
				n++
			}
		}
	}
	return n
}
