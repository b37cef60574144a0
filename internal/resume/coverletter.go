package resume

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrIncompleteRequest = errors.New("cover letter request is incomplete")

const defaultHiringManager = "Hiring Manager"

type CoverLetterRequest struct {
	Company        string `json:"company" validate:"required"`
	JobTitle       string `json:"job_title" validate:"required"`
	Name           string `json:"name" validate:"required"`
	HiringManager  string `json:"hiring_manager,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (r CoverLetterRequest) trimmed() CoverLetterRequest {
	return CoverLetterRequest{
		Company:        strings.TrimSpace(r.Company),
		JobTitle:       strings.TrimSpace(r.JobTitle),
		Name:           strings.TrimSpace(r.Name),
		HiringManager:  strings.TrimSpace(r.HiringManager),
		JobDescription: strings.TrimSpace(r.JobDescription),
	}
}

// Validate reports the missing required fields of the request.
func (r CoverLetterRequest) Validate() error {
	err := requestValidator.Struct(r.trimmed())
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}

	missing := make([]string, 0, len(invalid))
	for _, fe := range invalid {
		missing = append(missing, fe.Field())
	}
	return fmt.Errorf("%w: missing %s", ErrIncompleteRequest, strings.Join(missing, ", "))
}

// ComposeCoverLetter fills the cover letter template for the request.
func ComposeCoverLetter(req CoverLetterRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	req = req.trimmed()

	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", orDefault(req.HiringManager, defaultHiringManager))
	fmt.Fprintf(&b, "I am writing to express my strong interest in the %s position at %s. "+
		"With my background in professional development and proven track record of success, "+
		"I am confident that I would be a valuable addition to your team.\n\n", req.JobTitle, req.Company)

	b.WriteString("In my previous roles, I have consistently demonstrated:\n")
	b.WriteString("• Strong problem-solving abilities and attention to detail\n")
	b.WriteString("• Excellent communication and collaboration skills\n")
	b.WriteString("• The ability to work effectively in fast-paced environments\n")
	b.WriteString("• A commitment to delivering high-quality results\n\n")

	if req.JobDescription != "" {
		fmt.Fprintf(&b, "Based on the job description provided, I am particularly excited about the opportunity "+
			"to contribute to %s's mission and bring my expertise to help achieve your goals.\n\n", req.Company)
	}

	fmt.Fprintf(&b, "I am eager to discuss how my skills and experience align with your needs. "+
		"Thank you for considering my application. I look forward to the opportunity to speak with you further "+
		"about how I can contribute to %s's continued success.\n\n", req.Company)

	fmt.Fprintf(&b, "Sincerely,\n%s", req.Name)

	return b.String(), nil
}
