package interview

import (
	"errors"
	"fmt"

	"github.com/spigell/cv-assistant/internal/profile"
	"github.com/spigell/cv-assistant/internal/resume"
)

type State string

const (
	StateIdle         State = "idle"
	StateInterviewing State = "interviewing"
	StateSynthesizing State = "synthesizing"
	StateComplete     State = "complete"
)

var ErrInvalidTransition = errors.New("invalid session transition")

// Session is the conversation state of one user. Operations return an
// updated copy and leave the receiver untouched.
type Session struct {
	ID       string           `json:"id"`
	State    State            `json:"state"`
	Profile  profile.Profile  `json:"profile"`
	Sequence Sequence         `json:"sequence"`
	Context  string           `json:"context,omitempty"`
	Document *resume.Document `json:"document,omitempty"`
}

// Turn is the outcome of a single answer.
type Turn struct {
	// Next is the question to ask next. It is nil once the interview is over.
	Next *Question
	Done bool
	// Invalid is set when the validator rejected the answer. The cursor has
	// not moved and Next repeats the current question.
	Invalid error
}

func NewSession(id string, p profile.Profile) Session {
	return Session{ID: id, State: StateIdle, Profile: p}
}

func (s Session) transitionError(op string) error {
	return fmt.Errorf("%s in state %s: %w", op, s.State, ErrInvalidTransition)
}

// Start begins the interview for the trigger text and returns the first
// question.
func (s Session) Start(trigger string) (Session, Question, error) {
	if s.State != StateIdle {
		return s, Question{}, s.transitionError("start")
	}
	if err := s.Profile.Validate(); err != nil {
		return s, Question{}, fmt.Errorf("start: %w", err)
	}

	if IsEntryLevel(trigger) && s.Profile.CareerLevel == profile.CareerLevelUnset {
		s.Profile.CareerLevel = profile.CareerLevelEntry
	}

	seq, err := NewSequence(GenerateQuestions(trigger, s.Profile))
	if err != nil {
		return s, Question{}, fmt.Errorf("start: %w", err)
	}

	first, err := seq.Current()
	if err != nil {
		return s, Question{}, fmt.Errorf("start: %w", err)
	}

	s.State = StateInterviewing
	s.Sequence = seq
	s.Context = trigger
	s.Document = nil

	return s, first, nil
}

// Answer attributes the answer to the current question and advances the
// cursor. A nil validator accepts every answer.
func (s Session) Answer(answer string, v AnswerValidator) (Session, Turn, error) {
	if s.State != StateInterviewing {
		return s, Turn{}, s.transitionError("answer")
	}

	current, err := s.Sequence.Current()
	if err != nil {
		return s, Turn{}, fmt.Errorf("answer: %w", err)
	}

	if v != nil {
		if invalid := v.ValidateAnswer(current.Target, answer); invalid != nil {
			return s, Turn{Next: &current, Invalid: invalid}, nil
		}
	}

	updated, err := s.Profile.Apply(current.Target, answer)
	if err != nil {
		return s, Turn{}, fmt.Errorf("answer %s: %w", current.ID, err)
	}

	seq, err := s.Sequence.Advance()
	if err != nil {
		return s, Turn{}, fmt.Errorf("answer %s: %w", current.ID, err)
	}

	s.Profile = updated
	s.Sequence = seq

	if seq.Done() {
		s.State = StateSynthesizing
		return s, Turn{Done: true}, nil
	}

	next, err := seq.Current()
	if err != nil {
		return s, Turn{}, fmt.Errorf("answer %s: %w", current.ID, err)
	}

	return s, Turn{Next: &next}, nil
}

// Attach stores the synthesized document and completes the session.
func (s Session) Attach(doc resume.Document) (Session, error) {
	if s.State != StateSynthesizing {
		return s, s.transitionError("attach document")
	}

	s.Document = &doc
	s.State = StateComplete
	return s, nil
}

// Reset returns the session to idle. The profile is kept.
func (s Session) Reset() Session {
	return Session{ID: s.ID, State: StateIdle, Profile: s.Profile}
}

// Clear resets the session and forgets the profile.
func (s Session) Clear() Session {
	return NewSession(s.ID, profile.Profile{})
}

// Progress returns the number of answered questions and the interview
// length.
func (s Session) Progress() (int, int) {
	return s.Sequence.Cursor(), s.Sequence.Len()
}
