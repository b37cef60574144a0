package interview

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptySequence     = errors.New("question sequence is empty")
	ErrSequenceExhausted = errors.New("question sequence is exhausted")
)

// Sequence is an ordered list of questions and the index of the next
// unanswered one. Only the cursor changes after creation.
type Sequence struct {
	questions []Question
	cursor    int
}

func NewSequence(questions []Question) (Sequence, error) {
	if len(questions) == 0 {
		return Sequence{}, ErrEmptySequence
	}

	owned := make([]Question, len(questions))
	copy(owned, questions)

	return Sequence{questions: owned}, nil
}

func (s Sequence) Len() int { return len(s.questions) }

func (s Sequence) Cursor() int { return s.cursor }

// Active reports whether the sequence was created by an interview.
func (s Sequence) Active() bool { return len(s.questions) > 0 }

func (s Sequence) Done() bool { return s.Active() && s.cursor == len(s.questions) }

// Current returns the question at the cursor.
func (s Sequence) Current() (Question, error) {
	if err := s.check(); err != nil {
		return Question{}, err
	}
	if s.cursor == len(s.questions) {
		return Question{}, ErrSequenceExhausted
	}
	return s.questions[s.cursor], nil
}

// Advance moves the cursor forward by one question.
func (s Sequence) Advance() (Sequence, error) {
	if err := s.check(); err != nil {
		return s, err
	}
	if s.cursor == len(s.questions) {
		return s, fmt.Errorf("advance at cursor %d: %w", s.cursor, ErrSequenceExhausted)
	}
	s.cursor++
	return s, nil
}

func (s Sequence) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

func (s Sequence) check() error {
	if s.cursor < 0 || s.cursor > len(s.questions) {
		return fmt.Errorf("cursor %d out of bounds [0, %d]", s.cursor, len(s.questions))
	}
	return nil
}

type sequenceJSON struct {
	Questions []Question `json:"questions"`
	Cursor    int        `json:"cursor"`
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	return json.Marshal(sequenceJSON{Questions: s.Questions(), Cursor: s.cursor})
}

func (s *Sequence) UnmarshalJSON(data []byte) error {
	var raw sequenceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	restored := Sequence{questions: raw.Questions, cursor: raw.Cursor}
	if err := restored.check(); err != nil {
		return err
	}

	*s = restored
	return nil
}
