package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/spigell/cv-assistant/internal/interview"
	"github.com/spigell/cv-assistant/internal/metrics"
	"github.com/spigell/cv-assistant/internal/profile"
)

// entry serializes access to one session. generation changes on every reset
// so that a synthesis started before the reset can tell its result is stale.
type entry struct {
	mu         sync.Mutex
	session    interview.Session
	generation uint64
	failure    string
}

type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*entry)}
}

// Create registers a new idle session seeded with the profile.
func (r *Registry) Create(p profile.Profile) interview.Session {
	s := interview.NewSession(uuid.NewString(), p)

	r.mu.Lock()
	r.sessions[s.ID] = &entry{session: s}
	r.mu.Unlock()

	metrics.ActiveSessions.Inc()
	return s
}

func (r *Registry) get(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sessions[id]
	return e, ok
}

// Delete forgets the session.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	metrics.ActiveSessions.Dec()
	return true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
