package interview

import "strings"

type Intent int

const (
	IntentUnknown Intent = iota
	IntentResume
	IntentCoverLetter
	IntentOptimize
)

func (i Intent) String() string {
	switch i {
	case IntentResume:
		return "resume"
	case IntentCoverLetter:
		return "cover_letter"
	case IntentOptimize:
		return "optimize"
	default:
		return "unknown"
	}
}

var (
	resumeMarkers      = []string{"resume", "cv"}
	coverLetterMarkers = []string{"cover letter"}
	optimizeMarkers    = []string{"improve", "optimize"}
)

// Classify maps free text to an intent. Resume requests win over the other
// markers when several are present.
func Classify(text string) Intent {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, resumeMarkers):
		return IntentResume
	case containsAny(lower, coverLetterMarkers):
		return IntentCoverLetter
	case containsAny(lower, optimizeMarkers):
		return IntentOptimize
	default:
		return IntentUnknown
	}
}
