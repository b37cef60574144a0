package interview

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/cv-assistant/internal/profile"
	"github.com/spigell/cv-assistant/internal/resume"
)

func answerAll(t *testing.T, s Session, answer string) Session {
	t.Helper()

	for s.State == StateInterviewing {
		var err error
		s, _, err = s.Answer(answer, nil)
		require.NoError(t, err)
	}
	return s
}

func TestSessionStart(t *testing.T) {
	t.Parallel()

	s := NewSession("s1", profile.Profile{})
	started, first, err := s.Start("create a resume")
	require.NoError(t, err)

	assert.Equal(t, StateIdle, s.State, "start must not mutate the receiver")
	assert.Equal(t, StateInterviewing, started.State)
	assert.Equal(t, "personal.name", first.ID)
	assert.Equal(t, "create a resume", started.Context)

	answered, total := started.Progress()
	assert.Equal(t, 0, answered)
	assert.Equal(t, 24, total)

	_, _, err = started.Start("resume again")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSessionStartMarksEntryLevel(t *testing.T) {
	t.Parallel()

	started, _, err := NewSession("s1", profile.Profile{}).Start("I'm a recent graduate, build my resume")
	require.NoError(t, err)
	assert.Equal(t, profile.CareerLevelEntry, started.Profile.CareerLevel)

	senior := profile.Profile{CareerLevel: profile.CareerLevelSenior}
	started, _, err = NewSession("s2", senior).Start("entry level resume")
	require.NoError(t, err)
	assert.Equal(t, profile.CareerLevelSenior, started.Profile.CareerLevel)
}

func TestSessionStartValidatesProfile(t *testing.T) {
	t.Parallel()

	_, _, err := NewSession("s1", profile.Profile{YearsExperience: intPtr(-1)}).Start("resume")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestSessionInterviewReachesSynthesizing(t *testing.T) {
	t.Parallel()

	s, _, err := NewSession("s1", profile.Profile{}).Start("resume")
	require.NoError(t, err)

	total := s.Sequence.Len()
	for i := 0; i < total; i++ {
		var turn Turn
		s, turn, err = s.Answer("some answer", nil)
		require.NoError(t, err)

		if i < total-1 {
			require.NotNil(t, turn.Next)
			assert.False(t, turn.Done)
			assert.Equal(t, StateInterviewing, s.State)
		} else {
			assert.Nil(t, turn.Next)
			assert.True(t, turn.Done)
		}
	}

	assert.Equal(t, StateSynthesizing, s.State)
	answered, _ := s.Progress()
	assert.Equal(t, total, answered)

	_, _, err = s.Answer("one more", nil)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSessionAnswersAreAttributed(t *testing.T) {
	t.Parallel()

	s, _, err := NewSession("s1", profile.Profile{}).Start("resume")
	require.NoError(t, err)

	answers := []string{"My name is Jane Doe", "jane@example.com", "(555) 010-0199", "Austin, TX", "no", "Staff Engineer", "Finance", "9 years"}
	for _, a := range answers {
		s, _, err = s.Answer(a, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, "Jane Doe", s.Profile.PersonalInfo.Name)
	assert.Equal(t, "jane@example.com", s.Profile.PersonalInfo.Email)
	assert.Empty(t, s.Profile.PersonalInfo.LinkedIn)
	assert.Equal(t, "Finance", s.Profile.Industry)
	require.NotNil(t, s.Profile.YearsExperience)
	assert.Equal(t, 9, *s.Profile.YearsExperience)
	assert.Equal(t, profile.CareerLevelSenior, s.Profile.CareerLevel)

	current, err := s.Sequence.Current()
	require.NoError(t, err)
	assert.Equal(t, "experience.title", current.ID)
}

func TestSessionStrictValidatorKeepsCursor(t *testing.T) {
	t.Parallel()

	p := profile.Profile{PersonalInfo: profile.PersonalInfo{Name: "Jane"}}
	s, first, err := NewSession("s1", p).Start("resume")
	require.NoError(t, err)
	require.Equal(t, profile.FieldEmail, first.Target)

	v := NewStrictValidator()
	next, turn, err := s.Answer("not an email", v)
	require.NoError(t, err)

	var invalid *InvalidAnswerError
	require.ErrorAs(t, turn.Invalid, &invalid)
	assert.Equal(t, profile.FieldEmail, invalid.Field)
	require.NotNil(t, turn.Next)
	assert.Equal(t, first.ID, turn.Next.ID)
	assert.Equal(t, 0, next.Sequence.Cursor())
	assert.Empty(t, next.Profile.PersonalInfo.Email)

	next, turn, err = next.Answer("jane@example.com", v)
	require.NoError(t, err)
	assert.NoError(t, turn.Invalid)
	assert.Equal(t, 1, next.Sequence.Cursor())
	assert.Equal(t, "jane@example.com", next.Profile.PersonalInfo.Email)
}

func TestSessionAttach(t *testing.T) {
	t.Parallel()

	s, _, err := NewSession("s1", profile.Profile{}).Start("resume")
	require.NoError(t, err)

	_, err = s.Attach(resume.Document{})
	require.ErrorIs(t, err, ErrInvalidTransition)

	s = answerAll(t, s, "n/a")
	doc := resume.Synthesize(s.Profile, s.Context)

	complete, err := s.Attach(doc)
	require.NoError(t, err)
	assert.Equal(t, StateComplete, complete.State)
	require.NotNil(t, complete.Document)
	assert.Equal(t, "Professional Name", complete.Document.Identity.Name)

	_, err = complete.Attach(doc)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSessionResetReplaysTheInterview(t *testing.T) {
	t.Parallel()

	s := NewSession("s1", profile.Profile{TargetRole: "Engineer"})
	started, first, err := s.Start("resume")
	require.NoError(t, err)

	started, _, err = started.Answer("Jane", nil)
	require.NoError(t, err)

	reset := started.Reset()
	assert.Equal(t, StateIdle, reset.State)
	assert.False(t, reset.Sequence.Active())
	assert.Nil(t, reset.Document)
	assert.Equal(t, "Jane", reset.Profile.PersonalInfo.Name, "reset keeps the profile")

	cleared := started.Clear()
	assert.Equal(t, profile.Profile{}, cleared.Profile)
	assert.Equal(t, "s1", cleared.ID)

	_, replay, err := cleared.Start("resume")
	require.NoError(t, err)
	assert.Equal(t, first, replay)
}

func TestSessionResetFromEveryState(t *testing.T) {
	t.Parallel()

	idle := NewSession("s1", profile.Profile{})
	interviewing, _, err := idle.Start("resume")
	require.NoError(t, err)
	synthesizing := answerAll(t, interviewing, "none")
	complete, err := synthesizing.Attach(resume.Synthesize(synthesizing.Profile, ""))
	require.NoError(t, err)

	for _, s := range []Session{idle, interviewing, synthesizing, complete} {
		reset := s.Reset()
		assert.Equal(t, StateIdle, reset.State)

		_, _, err := reset.Start("resume")
		assert.NoError(t, err)
	}
}

func TestSessionJSON(t *testing.T) {
	t.Parallel()

	s, _, err := NewSession("s1", profile.Profile{}).Start("resume")
	require.NoError(t, err)
	s, _, err = s.Answer("Jane Doe", nil)
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored Session
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, s, restored)
}
