package resume

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spigell/cv-assistant/internal/profile"
)

const (
	defaultName     = "Professional Name"
	defaultEmail    = "professional@email.com"
	defaultPhone    = "(555) 123-4567"
	defaultYears    = 3
	defaultRole     = "Professional"
	defaultIndustry = "Technology"
)

var templateExperience = []Experience{
	{
		Title:        "Senior Professional",
		Organization: "Leading Technology Company",
		Duration:     "2022 - Present",
		Achievements: []string{
			"Led cross-functional team of 8+ members to deliver critical projects 25% ahead of schedule",
			"Implemented innovative solutions resulting in 40% improvement in system performance",
			"Managed $2M+ budget and reduced operational costs by 30% through process optimization",
			"Mentored 5 junior team members, with 100% promotion rate within 18 months",
			"Collaborated with C-level executives to develop strategic initiatives increasing revenue by 15%",
		},
	},
	{
		Title:        "Mid-Level Professional",
		Organization: "Growing Tech Startup",
		Duration:     "2020 - 2022",
		Achievements: []string{
			"Developed and deployed scalable solutions serving 50,000+ users daily",
			"Reduced system downtime by 60% through proactive monitoring and optimization",
			"Collaborated with product and design teams to launch 3 major features",
			"Achieved 95% customer satisfaction rate through improved user experience design",
		},
	},
}

var templateEducation = Education{
	Credential:  "Bachelor of Science in Computer Science",
	Institution: "University of Technology",
	Year:        "2020",
}

var (
	baselineTechnicalSkills = []string{"JavaScript", "React", "Node.js", "Python", "SQL", "Git", "AWS"}
	baselineSoftSkills      = []string{"Leadership", "Project Management", "Strategic Planning", "Team Building"}
)

var (
	durationRe          = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|—|to|until)\s*((?:19|20)\d{2}|present|current|now)\b`)
	durationSeparatorRe = regexp.MustCompile(`\s*(?:-|–|—)\s*`)
	yearRe              = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	sentenceBreakRe     = regexp.MustCompile(`[.!]\s+|[\n;]`)
)

// Synthesize builds a resume from the profile. Missing facts fall back to
// template content, so the result is always a complete document. The profile
// must already pass Validate; an invalid years value is not reported here.
func Synthesize(p profile.Profile, context string) Document {
	return Document{
		Identity:       identity(p.PersonalInfo),
		Summary:        summary(p, context),
		Experience:     experience(p),
		Education:      education(p.Background),
		Skills:         skills(p.Background),
		Certifications: splitList(p.Background.Certifications),
	}
}

func identity(info profile.PersonalInfo) Identity {
	return Identity{
		Name:     orDefault(info.Name, defaultName),
		Email:    orDefault(info.Email, defaultEmail),
		Phone:    orDefault(info.Phone, defaultPhone),
		Location: strings.TrimSpace(info.Location),
		LinkedIn: strings.TrimSpace(info.LinkedIn),
		Website:  strings.TrimSpace(info.Website),
	}
}

func summary(p profile.Profile, context string) string {
	years := defaultYears
	if p.YearsExperience != nil && *p.YearsExperience > 0 {
		years = *p.YearsExperience
	}

	industry := strings.TrimSpace(p.Industry)
	if industry == "" {
		industry = orDefault(DetectIndustry(context), defaultIndustry)
	}

	return fmt.Sprintf("Results-driven %s with %d+ years of experience in %s. "+
		"Proven track record of delivering high-impact solutions and driving measurable business results. "+
		"Expert in cross-functional collaboration, strategic problem-solving, and implementing innovative approaches "+
		"that increase efficiency by 40%%+ and reduce costs. "+
		"Passionate about leveraging cutting-edge technologies and best practices to exceed organizational goals "+
		"and drive continuous improvement.",
		orDefault(p.TargetRole, defaultRole), years, industry)
}

func experience(p profile.Profile) []Experience {
	bg := p.Background
	if strings.TrimSpace(bg.RecentTitle) == "" && strings.TrimSpace(bg.Employer) == "" {
		entries := cloneExperience(templateExperience)
		if role := strings.TrimSpace(p.TargetRole); role != "" {
			entries[0].Title = role
		}
		return entries
	}

	organization, duration := splitEmployer(bg.Employer)

	achievements := splitSentences(bg.Achievements)
	achievements = append(achievements, splitSentences(bg.Leadership)...)
	if len(achievements) == 0 {
		achievements = append([]string{}, templateExperience[0].Achievements...)
	}

	return []Experience{{
		Title:        orDefault(bg.RecentTitle, orDefault(p.TargetRole, defaultRole)),
		Organization: organization,
		Duration:     duration,
		Achievements: achievements,
	}}
}

// splitEmployer separates "Acme Corp, 2019 - 2023" into the organization and
// a normalized duration.
func splitEmployer(answer string) (string, string) {
	answer = strings.TrimSpace(answer)

	loc := durationRe.FindStringSubmatchIndex(answer)
	if loc == nil {
		return answer, ""
	}

	start := answer[loc[2]:loc[3]]
	end := answer[loc[4]:loc[5]]
	if isOngoing(end) {
		end = "Present"
	}

	return trimConnectors(answer[:loc[0]] + " " + answer[loc[1]:]), start + " - " + end
}

func trimConnectors(s string) string {
	s = strings.TrimSpace(s)
	for _, suffix := range []string{" from", " since", " between"} {
		if strings.HasSuffix(strings.ToLower(s), suffix) {
			s = s[:len(s)-len(suffix)]
		}
	}
	return strings.Trim(s, " ,;:-()")
}

func education(bg profile.Background) []Education {
	credential := strings.TrimSpace(bg.Degree)
	if credential == "" {
		credential = strings.TrimSpace(bg.EducationLevel)
	}
	school := strings.TrimSpace(bg.School)

	if credential == "" && school == "" {
		return []Education{templateEducation}
	}

	year := lastYear(school)
	if year == "" {
		year = lastYear(credential)
	}

	institution := yearRe.ReplaceAllString(school, "")
	institution = trimConnectors(strings.Join(strings.Fields(institution), " "))
	for _, suffix := range []string{" graduated in", " graduated", " in", " class of"} {
		if strings.HasSuffix(strings.ToLower(institution), suffix) {
			institution = strings.TrimSpace(institution[:len(institution)-len(suffix)])
		}
	}

	return []Education{{
		Credential:  credential,
		Institution: strings.Trim(institution, " ,;:-()"),
		Year:        year,
	}}
}

func lastYear(s string) string {
	years := yearRe.FindAllString(s, -1)
	if len(years) == 0 {
		return ""
	}
	return years[len(years)-1]
}

func skills(bg profile.Background) []string {
	listed := append(splitList(bg.TechnicalSkills), splitList(bg.SoftSkills)...)
	if len(listed) == 0 {
		listed = append(append([]string{}, baselineTechnicalSkills...), baselineSoftSkills...)
	}
	return dedupe(listed)
}

// splitList splits an enumerating answer such as "Go, SQL; Kafka" into its
// items. Negative answers yield an empty list.
func splitList(answer string) []string {
	items := make([]string, 0)
	if profile.IsNegative(answer) {
		return items
	}

	for _, item := range strings.FieldsFunc(answer, func(r rune) bool {
		return strings.ContainsRune(",;\n•|", r)
	}) {
		item = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(item), "-*"))
		item = strings.TrimRight(item, ".")
		if strings.HasPrefix(strings.ToLower(item), "and ") {
			item = strings.TrimSpace(item[4:])
		}
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func splitSentences(answer string) []string {
	out := make([]string, 0)
	if profile.IsNegative(answer) {
		return out
	}

	for _, part := range sentenceBreakRe.Split(answer, -1) {
		part = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(part), "-*•"))
		part = strings.TrimRight(part, ".!")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// dedupe drops case-insensitive repeats, keeping the first spelling.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

func cloneExperience(entries []Experience) []Experience {
	out := make([]Experience, len(entries))
	for i, e := range entries {
		e.Achievements = append([]string{}, e.Achievements...)
		out[i] = e
	}
	return out
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
