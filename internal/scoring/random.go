package scoring

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
)

// scoreRange is an inclusive range of generated scores.
type scoreRange struct {
	min, max int
}

var randomRanges = map[Category]scoreRange{
	CategoryFormatting: {70, 99},
	CategoryATS:        {65, 89},
	CategoryKeywords:   {55, 89},
	CategoryExperience: {75, 94},
	CategoryEducation:  {80, 94},
	CategorySkills:     {70, 94},
}

// lockedRand serializes access to a rand.Rand shared by heuristics that run
// concurrently.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *lockedRand) between(sr scoreRange) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sr.min + r.rng.Intn(sr.max-sr.min+1)
}

// RandomHeuristics returns heuristics that ignore the document and draw
// scores from fixed per-category ranges. They stand in for a real analysis
// backend in demos and tests.
func RandomHeuristics(rng *rand.Rand) []Heuristic {
	shared := &lockedRand{rng: rng}

	heuristics := make([]Heuristic, 0, len(Categories))
	for _, c := range Categories {
		heuristics = append(heuristics, &randomHeuristic{category: c, rng: shared})
	}
	return heuristics
}

type randomHeuristic struct {
	category Category
	rng      *lockedRand
}

func (h *randomHeuristic) Name() string { return "random_" + string(h.category) }

func (h *randomHeuristic) Category() Category { return h.category }

func (h *randomHeuristic) Evaluate(ctx context.Context, _ Upload) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return h.rng.between(randomRanges[h.category]), nil
}

func (h *randomHeuristic) Status() Status {
	sr := randomRanges[h.category]
	return Status{
		Name:     h.Name(),
		Category: h.category,
		Details: map[string]string{
			"min": strconv.Itoa(sr.min),
			"max": strconv.Itoa(sr.max),
		},
	}
}
