package scoring

import (
	"errors"
	"fmt"
	"mime"
	"strings"
)

const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

// RejectionError is returned for uploads the analyzer does not accept. Its
// Reason is meant to be shown to the user as is.
type RejectionError struct {
	MIMEType string
	Reason   string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedFormat, e.MIMEType)
}

func (e *RejectionError) Unwrap() error { return ErrUnsupportedFormat }

// Upload is an uploaded document with the text a collaborator extracted
// from it.
type Upload struct {
	Name     string `json:"name"`
	MIMEType string `json:"mime_type" binding:"required"`
	Text     string `json:"text"`
}

// Accept checks the upload is a PDF or a Word (.docx) document.
func Accept(u Upload) error {
	mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(u.MIMEType))
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(u.MIMEType))
	}

	switch mediaType {
	case MIMETypePDF, MIMETypeDOCX:
		return nil
	default:
		return &RejectionError{
			MIMEType: u.MIMEType,
			Reason:   "Please upload a PDF or Word document (.docx)",
		}
	}
}
