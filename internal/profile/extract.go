package profile

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{5,}\d`)
	yearsRe = regexp.MustCompile(`\d+`)
	// calendarYearRe matches a number that names a year, as in "since 2015".
	calendarYearRe = regexp.MustCompile(`^(?:19|20)\d{2}$`)
	urlRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z0-9\-]+\.)+[a-z]{2,}(?:/\S*)?`)
)

var nameLeadIns = []string{
	"my full name is",
	"my name is",
	"full name:",
	"name:",
	"this is",
	"it's",
	"it is",
	"i'm",
	"i am",
}

var negativeAnswers = map[string]struct{}{
	"no":      {},
	"nope":    {},
	"none":    {},
	"n/a":     {},
	"na":      {},
	"not yet": {},
	"nothing": {},
	"skip":    {},
	"-":       {},
}

// IsNegative reports whether the answer declines the question.
func IsNegative(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	a = strings.TrimRight(a, ".!")
	if _, ok := negativeAnswers[a]; ok {
		return true
	}
	return strings.HasPrefix(a, "no,") || strings.HasPrefix(a, "no ") || strings.HasPrefix(a, "none ")
}

// ExtractName strips conversational lead-ins such as "my name is".
func ExtractName(answer string) string {
	name := strings.TrimSpace(answer)
	lower := strings.ToLower(name)
	for _, lead := range nameLeadIns {
		if strings.HasPrefix(lower, lead) {
			name = name[len(lead):]
			break
		}
	}

	name = strings.Trim(name, " \t.,!")
	return strings.Join(strings.Fields(name), " ")
}

func ExtractEmail(answer string) (string, bool) {
	m := emailRe.FindString(answer)
	if m == "" {
		return "", false
	}
	return strings.ToLower(m), true
}

func ExtractPhone(answer string) (string, bool) {
	m := phoneRe.FindString(answer)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

// MaxYearsExperience bounds a plausible years-of-experience answer.
const MaxYearsExperience = 70

// ExtractYears returns the first number in the answer that reads as a count
// of years. Calendar years are skipped.
func ExtractYears(answer string) (int, bool) {
	for _, m := range yearsRe.FindAllString(answer, -1) {
		if calendarYearRe.MatchString(m) {
			continue
		}
		years, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		return years, true
	}
	return 0, false
}

func ExtractURL(answer string) (string, bool) {
	for _, loc := range urlRe.FindAllStringIndex(answer, -1) {
		start, end := loc[0], loc[1]
		// Either side of an email address is not a URL.
		if start > 0 && answer[start-1] == '@' {
			continue
		}
		if end < len(answer) && answer[end] == '@' {
			continue
		}
		return strings.TrimRight(answer[start:end], ".,;)"), true
	}
	return "", false
}
