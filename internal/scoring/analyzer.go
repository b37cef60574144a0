package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrHeuristicCoverage = errors.New("heuristics must cover every category exactly once")

// Step describes the result of a single heuristic.
type Step struct {
	Name     string        `json:"name"`
	Category Category      `json:"category"`
	Score    int           `json:"score"`
	Took     time.Duration `json:"took"`
}

// Report is the outcome of analyzing an uploaded document.
type Report struct {
	Breakdown   Breakdown    `json:"breakdown"`
	Label       string       `json:"label"`
	Suggestions []Suggestion `json:"suggestions"`
	Steps       []Step       `json:"steps"`
}

type Analyzer struct {
	heuristics []Heuristic
	logger     *zap.Logger
}

func NewAnalyzer(logger *zap.Logger, heuristics []Heuristic) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{heuristics: heuristics, logger: logger}
}

// Heuristics returns the heuristics the analyzer runs.
func (a *Analyzer) Heuristics() []Heuristic {
	out := make([]Heuristic, len(a.heuristics))
	copy(out, a.heuristics)
	return out
}

// Validate checks that the heuristics cover every category exactly once.
func (a *Analyzer) Validate() error {
	seen := make(map[Category]string, len(a.heuristics))
	for _, h := range a.heuristics {
		c := h.Category()
		if _, known := weights[c]; !known {
			return fmt.Errorf("%s: unknown category %q: %w", h.Name(), c, ErrHeuristicCoverage)
		}
		if prev, dup := seen[c]; dup {
			return fmt.Errorf("%s and %s both score %s: %w", prev, h.Name(), c, ErrHeuristicCoverage)
		}
		seen[c] = h.Name()
	}

	for _, c := range Categories {
		if _, ok := seen[c]; !ok {
			return fmt.Errorf("no heuristic for %s: %w", c, ErrHeuristicCoverage)
		}
	}

	return nil
}

// Analyze accepts the upload, runs every heuristic concurrently and
// aggregates the scores into a report.
func (a *Analyzer) Analyze(ctx context.Context, u Upload) (*Report, error) {
	if err := Accept(u); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	steps := make([]Step, len(a.heuristics))
	g, gctx := errgroup.WithContext(ctx)
	for i, h := range a.heuristics {
		g.Go(func() error {
			started := time.Now()
			score, err := h.Evaluate(gctx, u)
			if err != nil {
				return fmt.Errorf("%s: %w", h.Name(), err)
			}
			if score < 0 || score > 100 {
				return fmt.Errorf("%s: score %d out of range [0, 100]", h.Name(), score)
			}
			steps[i] = Step{Name: h.Name(), Category: h.Category(), Score: score, Took: time.Since(started)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scores := make(map[Category]int, len(steps))
	for _, step := range steps {
		a.logger.Debug("heuristic step",
			zap.String("name", step.Name),
			zap.String("category", string(step.Category)),
			zap.Int("score", step.Score),
			zap.Duration("took", step.Took),
		)
		scores[step.Category] = step.Score
	}

	breakdown, err := NewBreakdown(scores)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Breakdown:   breakdown,
		Label:       Label(breakdown.Overall),
		Suggestions: Suggest(breakdown),
		Steps:       steps,
	}

	a.logger.Info("document analyzed",
		zap.String("name", u.Name),
		zap.Int("overall", breakdown.Overall),
		zap.String("label", report.Label),
		zap.Int("suggestions", len(report.Suggestions)),
	)

	return report, nil
}
