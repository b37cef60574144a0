package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/cv-assistant/internal/assistant"
	"github.com/spigell/cv-assistant/internal/interview"
	"github.com/spigell/cv-assistant/internal/logger"
	"github.com/spigell/cv-assistant/internal/metrics"
	"github.com/spigell/cv-assistant/internal/profile"
	"github.com/spigell/cv-assistant/internal/resume"
	"github.com/spigell/cv-assistant/internal/schemas"
	"github.com/spigell/cv-assistant/internal/scoring"
)

const maxBodyBytes = 1 << 20

type createSessionRequest struct {
	Profile map[string]any `json:"profile"`
}

type messageRequest struct {
	Text string `json:"text" binding:"required"`
}

type resetRequest struct {
	Clear bool `json:"clear" form:"clear"`
}

type sessionView struct {
	ID       string           `json:"id"`
	State    interview.State  `json:"state"`
	Answered int              `json:"answered"`
	Total    int              `json:"total"`
	Question string           `json:"question,omitempty"`
	Profile  profile.Profile  `json:"profile"`
	Document *resume.Document `json:"document,omitempty"`
	Label    string           `json:"label,omitempty"`
	Failure  string           `json:"failure,omitempty"`
}

func viewOf(s interview.Session, failure string) sessionView {
	answered, total := s.Progress()
	v := sessionView{
		ID:       s.ID,
		State:    s.State,
		Answered: answered,
		Total:    total,
		Profile:  s.Profile,
		Document: s.Document,
		Failure:  failure,
	}
	if s.State == interview.StateInterviewing {
		if q, err := s.Sequence.Current(); err == nil {
			v.Question = q.Text
		}
	}
	if s.Document != nil {
		v.Label = scoring.Label(s.Document.Score)
	}
	return v
}

func (s *Server) createSession(c *gin.Context) {
	seed := s.cfg.Seed

	if c.Request.ContentLength != 0 {
		var req createSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Profile) > 0 {
			p, err := profile.Decode(req.Profile)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			seed = p
		}
	}

	session := s.sessions.Create(seed)
	s.logger.Info("session created", zap.String(logger.FieldSession, session.ID))

	c.JSON(http.StatusCreated, viewOf(session, ""))
}

func (s *Server) getSession(c *gin.Context) {
	e, ok := s.sessions.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	e.mu.Lock()
	view := viewOf(e.session, e.failure)
	e.mu.Unlock()

	c.JSON(http.StatusOK, view)
}

func (s *Server) deleteSession(c *gin.Context) {
	if !s.sessions.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) postMessage(c *gin.Context) {
	e, ok := s.sessions.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	reply, next, err := s.assistant.Respond(c.Request.Context(), req.Text, e.session)
	switch {
	case errors.Is(err, assistant.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, assistant.ErrSynthesisPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, interview.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		s.logger.Error("responding failed", zap.String(logger.FieldSession, e.session.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	started := e.session.State != interview.StateSynthesizing && next.State == interview.StateSynthesizing
	e.session = next
	e.failure = ""

	if started {
		s.wg.Add(1)
		go s.finish(e, next, e.generation)
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply, "session": viewOf(next, "")})
}

// finish synthesizes the document outside of the request and stores it unless
// the session was reset in the meantime.
func (s *Server) finish(e *entry, snapshot interview.Session, generation uint64) {
	defer s.wg.Done()

	done, err := s.assistant.Finish(s.ctx, snapshot)

	e.mu.Lock()
	defer e.mu.Unlock()

	log := logger.WithFields(s.logger, logger.CommonFields(snapshot.ID, string(snapshot.State))...)
	if e.generation != generation {
		log.Info("discarding stale document", zap.Uint64("generation", generation))
		return
	}
	if err != nil {
		log.Error("document synthesis failed", zap.Error(err))
		e.session = snapshot.Reset()
		e.failure = err.Error()
		return
	}

	e.session = done
}

func (s *Server) resetSession(c *gin.Context) {
	e, ok := s.sessions.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req resetRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if req.Clear {
		e.session = e.session.Clear()
	} else {
		e.session = e.session.Reset()
	}
	e.generation++
	e.failure = ""

	c.JSON(http.StatusOK, viewOf(e.session, ""))
}

func (s *Server) scoreDraft(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := schemas.DecodeDraft(body)
	if err != nil {
		var invalid *schemas.ValidationError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "draft does not match schema", "fields": invalid.Errors})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score := scoring.ScoreDraft(draft)
	metrics.DocumentScore.WithLabelValues(metrics.SourceDraft).Observe(float64(score))

	c.JSON(http.StatusOK, gin.H{"score": score, "label": scoring.Label(score)})
}

func (s *Server) analyzeDocument(c *gin.Context) {
	var upload scoring.Upload
	if err := c.ShouldBindJSON(&upload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.analyzer.Analyze(c.Request.Context(), upload)
	if err != nil {
		var rejected *scoring.RejectionError
		if errors.As(err, &rejected) {
			metrics.UploadsRejected.Inc()
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": rejected.Reason})
			return
		}
		s.logger.Error("analysis failed", zap.String("document", upload.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.DocumentScore.WithLabelValues(metrics.SourceUpload).Observe(float64(report.Breakdown.Overall))

	c.JSON(http.StatusOK, report)
}
