package auth

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestSessionLoginLogout(t *testing.T) {
	keyring.MockInit()

	s := NewSession(t.TempDir())
	if got := s.CurrentUser(); got != "" {
		t.Fatalf("CurrentUser() on a fresh session = %q, want empty", got)
	}

	if err := s.Login("amir"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if got := s.CurrentUser(); got != "amir" {
		t.Errorf("CurrentUser() after login = %q, want %q", got, "amir")
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if got := s.CurrentUser(); got != "" {
		t.Errorf("CurrentUser() after logout = %q, want empty", got)
	}
}

func TestSessionRejectsEmptyUser(t *testing.T) {
	keyring.MockInit()

	s := NewSession(t.TempDir())
	if err := s.Login(""); err == nil {
		t.Error("Login(\"\") should fail")
	}
}

func TestSessionRestoresIdentity(t *testing.T) {
	keyring.MockInit()
	dir := t.TempDir()

	first := NewSession(dir)
	if err := first.Login("amir"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	second := NewSession(dir)
	if got := second.CurrentUser(); got != "amir" {
		t.Errorf("a new session should restore the stored identity, got %q", got)
	}
}

func TestOnAuthStateChanged(t *testing.T) {
	keyring.MockInit()

	s := NewSession(t.TempDir())

	var states []State
	unsub := s.OnAuthStateChanged(func(st State) {
		states = append(states, st)
	})

	if len(states) != 1 || states[0].UserID != "" {
		t.Fatalf("subscriber should fire immediately with the signed-out state, got %+v", states)
	}

	if err := s.Login("amir"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}

	if len(states) != 3 {
		t.Fatalf("got %d notifications, want 3", len(states))
	}
	if states[1].UserID != "amir" || states[2].UserID != "" {
		t.Errorf("notification order wrong: %+v", states)
	}

	unsub()
	if err := s.Login("zaid"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if len(states) != 3 {
		t.Error("unsubscribed callback still received a notification")
	}
	unsub() // calling again is a no-op
}

func TestFileStoreFallback(t *testing.T) {
	dir := t.TempDir()
	store := newFileStore(dir)

	if _, err := store.Current(); err != ErrNoIdentity {
		t.Fatalf("Current() on an empty store error = %v, want ErrNoIdentity", err)
	}

	if err := store.Set("amir"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	userID, err := store.Current()
	if err != nil {
		t.Fatalf("Current() failed: %v", err)
	}
	if userID != "amir" {
		t.Errorf("Current() = %q, want %q", userID, "amir")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if _, err := store.Current(); err != ErrNoIdentity {
		t.Errorf("Current() after clear error = %v, want ErrNoIdentity", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on an empty store should be a no-op, got: %v", err)
	}
}
