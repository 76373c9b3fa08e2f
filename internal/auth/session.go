package auth

import (
	"fmt"
	"sync"

	"github.com/mkhalil/studenthub/internal/logger"
)

// State is the auth state delivered to subscribers. UserID is empty when
// signed out. IsLoading is true only while the stored identity is being
// resolved during startup.
type State struct {
	UserID    string
	IsLoading bool
}

// Session is the local auth collaborator: it records which user is signed in
// (OS keyring when available, session file otherwise) and notifies
// subscribers on every state change. It supplies identity only; there is no
// remote identity provider in scope.
type Session struct {
	mu     sync.Mutex
	store  identityStore
	userID string
	nextID int
	subs   map[int]func(State)
}

// NewSession restores the persisted identity, preferring the OS keyring and
// falling back to a session file under dataDir.
func NewSession(dataDir string) *Session {
	var store identityStore
	if keyringAvailable() {
		store = keyringStore{}
	} else {
		logger.Debug("OS keyring unavailable, using session file")
		store = newFileStore(dataDir)
	}

	s := &Session{
		store: store,
		subs:  make(map[int]func(State)),
	}

	userID, err := store.Current()
	if err != nil && err != ErrNoIdentity {
		logger.Warn("Failed to restore session", "error", err)
	}
	s.userID = userID
	return s
}

// CurrentUser returns the signed-in user id, or "" when signed out.
func (s *Session) CurrentUser() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Login signs in as the given user id and persists the identity.
func (s *Session) Login(userID string) error {
	if userID == "" {
		return fmt.Errorf("user id cannot be empty")
	}

	s.mu.Lock()
	if err := s.store.Set(userID); err != nil {
		s.mu.Unlock()
		return err
	}
	s.userID = userID
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	notify(subs, State{UserID: userID})
	return nil
}

// Logout clears the signed-in identity.
func (s *Session) Logout() error {
	s.mu.Lock()
	if err := s.store.Clear(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.userID = ""
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	notify(subs, State{})
	return nil
}

// OnAuthStateChanged registers a callback for auth state changes. The
// callback is invoked immediately with the current state, then on every
// subsequent login or logout. The returned function releases the
// subscription and is safe to call more than once.
func (s *Session) OnAuthStateChanged(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	current := State{UserID: s.userID}
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// snapshotSubsLocked must be called with the lock held.
func (s *Session) snapshotSubsLocked() []func(State) {
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(State), st State) {
	for _, fn := range subs {
		fn(st)
	}
}
