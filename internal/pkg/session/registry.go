package session

import (
	"cmp"
	"slices"
	"sync"
)

// Registry tracks the live sessions by client id.
type Registry interface {
	Register(clientID string, stream Stream) (sess *Session, replaced *Session, err error)
	Deregister(clientID string)
	Remove(sess *Session) bool
	Get(clientID string) (*Session, error)
	Snapshot() []*Session
	ForEachActive(fn func(*Session))
	Size() int
	CloseAll() int
}

// MemoryRegistry is an in-memory Registry safe for concurrent use.
type MemoryRegistry struct {
	sessions  map[string]*Session
	seq       uint64
	queueSize int
	mu        sync.RWMutex
}

// RegistryCfg configures a MemoryRegistry.
type RegistryCfg func(*MemoryRegistry)

// WithQueueSize sets the per-session outbound queue size.
func WithQueueSize(n int) RegistryCfg {
	return func(r *MemoryRegistry) {
		r.queueSize = n
	}
}

// NewMemoryRegistry creates an empty MemoryRegistry.
func NewMemoryRegistry(cfgs ...RegistryCfg) *MemoryRegistry {
	r := &MemoryRegistry{
		sessions:  make(map[string]*Session),
		queueSize: DefaultQueueSize,
	}
	for _, cfg := range cfgs {
		cfg(r)
	}
	return r
}

// Register inserts a session for clientID, replacing any existing one.
// The replaced session, if any, is closed and returned.
func (r *MemoryRegistry) Register(clientID string, stream Stream) (*Session, *Session, error) {
	if clientID == "" {
		return nil, nil, ErrInvalidClientID
	}
	r.mu.Lock()
	r.seq++
	sess := newSession(clientID, r.seq, stream, r.queueSize)
	replaced := r.sessions[clientID]
	r.sessions[clientID] = sess
	r.mu.Unlock()
	if replaced != nil {
		replaced.replace()
	}
	return sess, replaced, nil
}

// Deregister removes and closes the session registered under clientID.
// Removing an unknown client id is a no-op.
func (r *MemoryRegistry) Deregister(clientID string) {
	r.mu.Lock()
	sess, ok := r.sessions[clientID]
	delete(r.sessions, clientID)
	r.mu.Unlock()
	if ok {
		sess.Close()
	}
}

// Remove closes sess and removes it if it is still the registered session for
// its client id. It reports whether an entry was removed.
func (r *MemoryRegistry) Remove(sess *Session) bool {
	if sess == nil {
		return false
	}
	sess.Close()
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.sessions[sess.ClientID]; !ok || cur != sess {
		return false
	}
	delete(r.sessions, sess.ClientID)
	return true
}

// Get returns the session registered under clientID.
func (r *MemoryRegistry) Get(clientID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if sess, ok := r.sessions[clientID]; ok {
		return sess, nil
	}
	return nil, ErrSessionNotFound
}

// Snapshot returns the registered sessions in registration order.
func (r *MemoryRegistry) Snapshot() []*Session {
	r.mu.RLock()
	out := make([]*Session, 0, len(r.sessions))
	for _, sess := range r.sessions {
		out = append(out, sess)
	}
	r.mu.RUnlock()
	slices.SortFunc(out, func(a, b *Session) int {
		return cmp.Compare(a.Seq, b.Seq)
	})
	return out
}

// ForEachActive calls fn for every session in a point-in-time snapshot.
// fn may register or remove sessions.
func (r *MemoryRegistry) ForEachActive(fn func(*Session)) {
	for _, sess := range r.Snapshot() {
		fn(sess)
	}
}

// Size returns the number of registered sessions.
func (r *MemoryRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CloseAll removes and ends every session, returning how many there were.
// Events already queued are still written.
func (r *MemoryRegistry) CloseAll() int {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()
	for _, sess := range sessions {
		sess.End()
	}
	return len(sessions)
}
