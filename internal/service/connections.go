package service

import (
	"sync"
	"time"

	"github.com/odvcencio/maestro/internal/models"
)

// ConnectionStore holds per-session connection toggles layered over the
// catalog. Nothing is persisted; the catalog itself is never modified.
// An overlay lives until its session is discarded or expires.
type ConnectionStore struct {
	mu       sync.Mutex
	sessions map[string]*connectionOverlay
	clock    func() time.Time
}

type connectionOverlay struct {
	expires    time.Time
	repos      map[string]bool
	connectors map[string]bool
}

func NewConnectionStore() *ConnectionStore {
	return &ConnectionStore{sessions: make(map[string]*connectionOverlay), clock: time.Now}
}

// SetRepo records a toggle for session, whose token expires at expires.
func (s *ConnectionStore) SetRepo(session string, expires time.Time, repoID string, connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay(session, expires).repos[repoID] = connected
}

func (s *ConnectionStore) SetConnector(session string, expires time.Time, connectorID string, connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay(session, expires).connectors[connectorID] = connected
}

// Has reports whether session has recorded any toggles.
func (s *ConnectionStore) Has(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[session]
	return ok
}

// Repos returns repos with the session's toggles applied. The input is not modified.
func (s *ConnectionStore) Repos(session string, repos []models.Repo) []models.Repo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Repo, len(repos))
	copy(out, repos)
	o, ok := s.sessions[session]
	if !ok {
		return out
	}
	for i := range out {
		if connected, set := o.repos[out[i].ID]; set {
			out[i].Connected = connected
		}
	}
	return out
}

func (s *ConnectionStore) Repo(session string, repo models.Repo) models.Repo {
	return s.Repos(session, []models.Repo{repo})[0]
}

func (s *ConnectionStore) Connectors(session string, connectors []models.Connector) []models.Connector {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Connector, len(connectors))
	copy(out, connectors)
	o, ok := s.sessions[session]
	if !ok {
		return out
	}
	for i := range out {
		if connected, set := o.connectors[out[i].ID]; set {
			out[i].Connected = connected
		}
	}
	return out
}

// Discard drops every toggle recorded for session.
func (s *ConnectionStore) Discard(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, session)
}

// overlay returns the overlay for session, creating it if needed. Expired
// overlays are pruned first. Callers hold s.mu.
func (s *ConnectionStore) overlay(session string, expires time.Time) *connectionOverlay {
	now := s.clock()
	for id, o := range s.sessions {
		if !o.expires.After(now) {
			delete(s.sessions, id)
		}
	}
	o, ok := s.sessions[session]
	if !ok {
		o = &connectionOverlay{repos: make(map[string]bool), connectors: make(map[string]bool)}
		s.sessions[session] = o
	}
	o.expires = expires
	return o
}
