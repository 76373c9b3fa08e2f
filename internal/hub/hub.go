// Package hub binds the repository to the auth collaborator's current
// session: on every auth-state change the repository is rebound and
// rehydrated before any operation is accepted.
package hub

import (
	"sync"

	"github.com/mkhalil/studenthub/internal/auth"
	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/repository"
)

// Hub is the store access facade. It owns the repository handle for the
// process, applies auth transitions to it, and lets presentation observe
// rebinds through a scoped subscription.
type Hub struct {
	mu     sync.Mutex
	repo   *repository.Repository
	unsub  func()
	nextID int
	subs   map[int]func(userID string)
}

// New wires the repository to the session. The session's current state is
// applied immediately, so a restored identity is bound and hydrated before
// New returns.
func New(repo *repository.Repository, session *auth.Session) *Hub {
	h := &Hub{
		repo: repo,
		subs: make(map[int]func(string)),
	}
	h.unsub = session.OnAuthStateChanged(h.applyAuthState)
	return h
}

// nextBoundUser is the pure auth transition: given the previously bound user
// and the new auth state, it returns the user the repository should be bound
// to. A loading state keeps the previous binding.
func nextBoundUser(prev string, st auth.State) string {
	if st.IsLoading {
		return prev
	}
	return st.UserID
}

func (h *Hub) applyAuthState(st auth.State) {
	h.mu.Lock()
	prev := h.repo.BoundUser()
	next := nextBoundUser(prev, st)
	if next == prev {
		h.mu.Unlock()
		return
	}
	h.repo.Bind(next)
	subs := make([]func(string), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Repo returns the repository once a user is bound; until then every access
// fails with ErrNotAuthenticated.
func (h *Hub) Repo() (*repository.Repository, error) {
	if h.repo.BoundUser() == "" {
		return nil, errors.ErrNotAuthenticated
	}
	return h.repo, nil
}

// Store returns the repository handle without the auth guard, for read paths
// that are valid while signed out (the global quote set).
func (h *Hub) Store() *repository.Repository {
	return h.repo
}

// Subscribe registers a callback invoked with the newly bound user id after
// every rebind. The returned function releases the subscription and is safe
// to call more than once.
func (h *Hub) Subscribe(fn func(userID string)) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Close releases the auth subscription.
func (h *Hub) Close() {
	if h.unsub != nil {
		h.unsub()
		h.unsub = nil
	}
}
