package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/cv-assistant/internal/scoring"
)

func TestDecodeDraft(t *testing.T) {
	t.Parallel()

	draft, err := DecodeDraft([]byte(`{
		"personal_info": {"full_name": "Jane Doe", "email": "jane@example.com"},
		"summary": "Backend engineer",
		"experience": [{"job_title": "Engineer", "company": "Acme", "current": true, "description": ["Shipped things"]}],
		"skills": ["Go", "SQL"]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", draft.PersonalInfo.FullName)
	require.Len(t, draft.Experience, 1)
	assert.True(t, draft.Experience[0].Current)
	assert.Equal(t, []string{"Go", "SQL"}, draft.Skills)
	assert.Equal(t, 15, scoring.ScoreDraft(draft))
}

func TestDecodeDraftAcceptsEmptyObject(t *testing.T) {
	t.Parallel()

	draft, err := DecodeDraft([]byte(`{}`))
	require.NoError(t, err)
	assert.Zero(t, scoring.ScoreDraft(draft))
}

func TestDecodeDraftReportsFieldErrors(t *testing.T) {
	t.Parallel()

	_, err := DecodeDraft([]byte(`{"skills": "Go", "experience": [{"current": "yes"}], "photo": "me.png"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Errors, 3)

	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"(root)", "skills", "experience.0.current"}, fields)
	assert.Contains(t, err.Error(), "validation failed:")
}

func TestDecodeDraftRejectsNonObjects(t *testing.T) {
	t.Parallel()

	_, err := DecodeDraft([]byte(`[1, 2]`))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestDecodeDraftRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := DecodeDraft([]byte(`{"summary": `))
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "draft", loadErr.Name)
}
