package merch

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/merchlab/storefront-modal-api/internal/catalog"
)

// Session is one open modal: the fetched product plus the invalidation token
// that keeps stale fetch results from landing in a closed or reused modal.
type Session struct {
	Token    string
	Handle   string
	Product  *catalog.Product
	OpenedAt time.Time
}

type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*Session)}
}

// begin reserves a token before the product fetch starts, so a Close that
// races the fetch invalidates it.
func (r *sessionRegistry) begin(handle string) *Session {
	session := &Session{
		Token:    uuid.NewString(),
		Handle:   handle,
		OpenedAt: time.Now(),
	}
	r.mu.Lock()
	r.sessions[session.Token] = session
	r.mu.Unlock()
	return session
}

// complete attaches the fetched product if the token is still current.
func (r *sessionRegistry) complete(token string, product *catalog.Product) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok {
		return false
	}
	session.Product = product
	return true
}

func (r *sessionRegistry) get(token string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok || session.Product == nil {
		return nil, false
	}
	return session, true
}

func (r *sessionRegistry) current(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[token]
	return ok
}

func (r *sessionRegistry) remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}
