package mcpsrv

import (
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/bites/gallery"
	"github.com/qyinm/bites/types"
)

// SessionStore holds one gallery session per MCP session id. Stdio and
// stateless transports have no id and share the "" session.
type SessionStore struct {
	mu       sync.Mutex
	source   types.ItemSource
	sessions map[string]*sessionEntry
	metrics  *Metrics
	now      func() time.Time
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *gallery.Session
	lastUsed time.Time
}

// NewSessionStore creates an empty store over source. metrics may be nil.
func NewSessionStore(source types.ItemSource, metrics *Metrics) *SessionStore {
	return &SessionStore{
		source:   source,
		sessions: make(map[string]*sessionEntry),
		metrics:  metrics,
		now:      time.Now,
	}
}

// With runs fn against the session for id, creating it on first use. Calls
// for the same id are serialized.
func (s *SessionStore) With(id string, fn func(*gallery.Session)) {
	entry := s.entry(id)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	fn(entry.session)
}

func (s *SessionStore) entry(id string) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		entry = &sessionEntry{session: gallery.NewSession(s.source)}
		s.sessions[id] = entry
		s.metrics.setSessions(len(s.sessions))
	}
	entry.lastUsed = s.now()
	return entry
}

// Sweep drops sessions idle for longer than ttl and returns how many were
// removed. A non-positive ttl keeps everything.
func (s *SessionStore) Sweep(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, entry := range s.sessions {
		if entry.lastUsed.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	s.metrics.setSessions(len(s.sessions))
	return removed
}

// ResetFavorites clears the liked items of every held session and returns
// the number of sessions touched.
func (s *SessionStore) ResetFavorites() int {
	s.mu.Lock()
	entries := make([]*sessionEntry, 0, len(s.sessions))
	for _, entry := range s.sessions {
		entries = append(entries, entry)
	}
	s.mu.Unlock()

	for _, entry := range entries {
		entry.mu.Lock()
		entry.session.ResetLikes()
		entry.mu.Unlock()
	}
	return len(entries)
}

// Len reports the number of held sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func sessionID(req *mcp.CallToolRequest) string {
	if req == nil || req.Session == nil {
		return ""
	}
	return req.Session.ID()
}
