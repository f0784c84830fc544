package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tevino/abool/v2"

	"go.creack.net/calc/host"
	"go.creack.net/calc/interpreter"
)

// session is one client environment. mu serializes evaluations, the
// interpreter itself does no locking.
type session struct {
	mu      sync.Mutex
	runner  *host.Runner
	history *host.History

	lastAccess time.Time // Guarded by Store.mu.
}

func (s *session) eval(line string) host.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runner.Eval(line)
}

func (s *session) vars() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runner.Session.Env().Snapshot()
}

// Store holds the live sessions keyed by id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session

	ttl         time.Duration
	historySize int
	now         func() time.Time

	sweeping *abool.AtomicBool
}

// NewStore creates an empty store expiring sessions idle for more than ttl.
func NewStore(ttl time.Duration, historySize int) *Store {
	return &Store{
		sessions:    map[string]*session{},
		ttl:         ttl,
		historySize: historySize,
		now:         time.Now,
		sweeping:    abool.New(),
	}
}

func (s *Store) newSession() *session {
	history := host.NewHistory(s.historySize)
	return &session{
		runner:  &host.Runner{Session: interpreter.NewSession(), History: history},
		history: history,
	}
}

// Create registers a new session and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()
	sess := s.newSession()

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.lastAccess = s.now()
	s.sessions[id] = sess
	return id
}

// get looks up a session and marks it as used.
func (s *Store) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if ok {
		sess.lastAccess = s.now()
	}
	return sess, ok
}

// Delete drops a session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops the sessions idle for more than the ttl and returns their ids.
// A sweep started while another is running returns nil right away.
func (s *Store) Sweep() []string {
	if !s.sweeping.SetToIf(false, true) {
		return nil
	}
	defer s.sweeping.UnSet()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var expired []string
	for id, sess := range s.sessions {
		if now.Sub(sess.lastAccess) > s.ttl {
			delete(s.sessions, id)
			expired = append(expired, id)
		}
	}
	return expired
}
