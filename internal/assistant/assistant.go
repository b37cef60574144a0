// Package assistant turns free-text input into interview progress and
// replies, and finishes interviews by synthesizing and scoring the resume.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/interview"
	"github.com/spigell/cv-assistant/internal/logger"
	"github.com/spigell/cv-assistant/internal/metrics"
	"github.com/spigell/cv-assistant/internal/resume"
	"github.com/spigell/cv-assistant/internal/scoring"
	"github.com/spigell/cv-assistant/internal/utils"
)

var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrSynthesisPending = errors.New("document synthesis is in progress")
)

const maxLoggedInput = 120

type Config struct {
	// StrictAnswers enables validation of contact details and numeric answers.
	StrictAnswers bool
	// SynthesisDelay simulates document generation latency.
	SynthesisDelay time.Duration
}

type Assistant struct {
	cfg       Config
	validator interview.AnswerValidator
	logger    *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Assistant {
	if log == nil {
		log = zap.NewNop()
	}

	a := &Assistant{cfg: cfg, logger: log}
	if cfg.StrictAnswers {
		a.validator = interview.NewStrictValidator()
	}
	return a
}

// Respond handles one user message and returns the reply together with the
// updated session. The input session is never modified.
func (a *Assistant) Respond(_ context.Context, text string, s interview.Session) (string, interview.Session, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", s, ErrEmptyInput
	}

	log := logger.WithFields(a.logger, logger.CommonFields(s.ID, string(s.State))...)
	intent := interview.Classify(text)

	log.Debug("message received",
		zap.String("intent", intent.String()),
		zap.String("input", utils.TruncateForLog(text, maxLoggedInput)),
	)

	var (
		reply string
		next  interview.Session
		err   error
	)

	switch s.State {
	case interview.StateIdle:
		reply, next, err = a.respondIdle(log, intent, text, s)
	case interview.StateInterviewing:
		reply, next, err = a.respondInterviewing(log, text, s)
	case interview.StateSynthesizing:
		return "", s, ErrSynthesisPending
	case interview.StateComplete:
		reply, next = respondComplete(intent), s
	default:
		return "", s, fmt.Errorf("unknown session state %q", s.State)
	}
	if err != nil {
		return "", s, err
	}

	metrics.Replies.WithLabelValues(intent.String(), string(s.State)).Inc()

	return reply, next, nil
}

func (a *Assistant) respondIdle(log *zap.Logger, intent interview.Intent, text string, s interview.Session) (string, interview.Session, error) {
	switch intent {
	case interview.IntentResume:
		started, first, err := s.Start(text)
		if err != nil {
			return "", s, err
		}

		_, total := started.Progress()
		log.Info("interview started",
			zap.Int("questions", total),
			zap.String("career_level", string(started.Profile.CareerLevel)),
		)
		metrics.InterviewsStarted.Inc()

		return introReply + first.Text, started, nil
	case interview.IntentCoverLetter:
		return coverLetterReply, s, nil
	case interview.IntentOptimize:
		return optimizeReply, s, nil
	default:
		return clarifyReply, s, nil
	}
}

func (a *Assistant) respondInterviewing(log *zap.Logger, text string, s interview.Session) (string, interview.Session, error) {
	next, turn, err := s.Answer(text, a.validator)
	if err != nil {
		return "", s, err
	}

	if turn.Invalid != nil {
		var invalid *interview.InvalidAnswerError
		reason := turn.Invalid.Error()
		if errors.As(turn.Invalid, &invalid) {
			reason = invalid.Reason
			metrics.InvalidAnswers.WithLabelValues(string(invalid.Field)).Inc()
		}
		log.Info("answer rejected", zap.String("reason", reason))

		return fmt.Sprintf(invalidReplyFormat, reason, turn.Next.Text), next, nil
	}

	answered, total := next.Progress()
	log.Debug("answer recorded", zap.Int("answered", answered), zap.Int("total", total))

	if turn.Done {
		log.Info("interview complete", zap.Int("answered", answered))
		return closingReply, next, nil
	}

	return ackReply + turn.Next.Text, next, nil
}

func respondComplete(intent interview.Intent) string {
	switch intent {
	case interview.IntentCoverLetter:
		return coverLetterReply
	case interview.IntentOptimize:
		return optimizeReply
	default:
		return readyReply
	}
}

// Finish synthesizes and scores the document of a session whose interview
// is over, and attaches it.
func (a *Assistant) Finish(ctx context.Context, s interview.Session) (interview.Session, error) {
	if s.State != interview.StateSynthesizing {
		return s, fmt.Errorf("finish in state %s: %w", s.State, interview.ErrInvalidTransition)
	}
	if err := s.Profile.Validate(); err != nil {
		return s, fmt.Errorf("finish: %w", err)
	}

	log := logger.WithFields(a.logger, logger.CommonFields(s.ID, string(s.State))...)
	started := time.Now()

	if err := utils.WaitFor(ctx, a.cfg.SynthesisDelay); err != nil {
		return s, fmt.Errorf("waiting for synthesis: %w", err)
	}

	doc := resume.Synthesize(s.Profile, s.Context)
	doc.Score = scoring.ScoreDraft(doc.Draft())

	complete, err := s.Attach(doc)
	if err != nil {
		return s, err
	}

	took := time.Since(started)
	metrics.DocumentsSynthesized.Inc()
	metrics.SynthesisDuration.Observe(took.Seconds())
	metrics.DocumentScore.WithLabelValues(metrics.SourceSynthesized).Observe(float64(doc.Score))

	log.Info("document synthesized",
		zap.Int("score", doc.Score),
		zap.String("label", scoring.Label(doc.Score)),
		zap.Int("skills", len(doc.Skills)),
		zap.Duration("took", took),
	)

	return complete, nil
}

// ReadyMessage describes a finished document to the user.
func ReadyMessage(doc *resume.Document) string {
	if doc == nil {
		return ""
	}
	return fmt.Sprintf(readyMessageFormat, doc.Score, scoring.Label(doc.Score))
}
