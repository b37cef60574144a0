package interview

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spigell/cv-assistant/internal/profile"
)

// AnswerValidator checks an answer before it is attributed to the profile.
// A nil validator accepts every answer.
type AnswerValidator interface {
	ValidateAnswer(target profile.Field, answer string) error
}

// InvalidAnswerError describes why an answer was not accepted.
type InvalidAnswerError struct {
	Field  profile.Field
	Reason string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer for %s: %s", e.Field, e.Reason)
}

// StrictValidator checks contact details and numeric answers. Open-ended
// answers are always accepted.
type StrictValidator struct {
	validate *validator.Validate
}

func NewStrictValidator() *StrictValidator {
	return &StrictValidator{validate: validator.New()}
}

func (v *StrictValidator) ValidateAnswer(target profile.Field, answer string) error {
	answer = strings.TrimSpace(answer)

	switch target {
	case profile.FieldEmail:
		candidate := answer
		if email, ok := profile.ExtractEmail(answer); ok {
			candidate = email
		}
		if err := v.validate.Var(candidate, "required,email"); err != nil {
			return &InvalidAnswerError{Field: target, Reason: "that doesn't look like a valid email address"}
		}

	case profile.FieldPhone:
		if _, ok := profile.ExtractPhone(answer); !ok {
			return &InvalidAnswerError{Field: target, Reason: "that doesn't look like a phone number"}
		}

	case profile.FieldLinkedIn, profile.FieldWebsite:
		if profile.IsNegative(answer) {
			return nil
		}
		url, ok := profile.ExtractURL(answer)
		if !ok {
			return &InvalidAnswerError{Field: target, Reason: "please share a full URL or answer \"no\""}
		}
		if !strings.Contains(url, "://") {
			url = "https://" + url
		}
		if err := v.validate.Var(url, "required,url"); err != nil {
			return &InvalidAnswerError{Field: target, Reason: "please share a full URL or answer \"no\""}
		}

	case profile.FieldYearsExperience:
		years, ok := profile.ExtractYears(answer)
		if !ok {
			return &InvalidAnswerError{Field: target, Reason: "please answer with a number of years"}
		}
		if err := v.validate.Var(years, fmt.Sprintf("gte=0,lte=%d", profile.MaxYearsExperience)); err != nil {
			return &InvalidAnswerError{Field: target, Reason: fmt.Sprintf("years of experience must be between 0 and %d", profile.MaxYearsExperience)}
		}
	}

	return nil
}
