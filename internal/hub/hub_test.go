package hub

import (
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/mkhalil/studenthub/internal/auth"
	"github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/repository"
	"github.com/mkhalil/studenthub/internal/storage"
)

func setupHub(t *testing.T) (*Hub, *auth.Session) {
	t.Helper()
	keyring.MockInit()

	dir := t.TempDir()
	repo := repository.New(storage.NewFileStore(dir))
	session := auth.NewSession(dir)
	h := New(repo, session)
	t.Cleanup(h.Close)
	return h, session
}

func TestRepoGuardedUntilLogin(t *testing.T) {
	h, session := setupHub(t)

	if _, err := h.Repo(); !errors.Is(err, errors.ErrNotAuthenticated) {
		t.Fatalf("Repo() before login error = %v, want ErrNotAuthenticated", err)
	}

	if err := session.Login("amir"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	repo, err := h.Repo()
	if err != nil {
		t.Fatalf("Repo() after login failed: %v", err)
	}
	if repo.BoundUser() != "amir" {
		t.Errorf("BoundUser() = %q, want %q", repo.BoundUser(), "amir")
	}
}

func TestLogoutUnbindsRepository(t *testing.T) {
	h, session := setupHub(t)

	if err := session.Login("amir"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	repo, err := h.Repo()
	if err != nil {
		t.Fatalf("Repo() failed: %v", err)
	}
	if _, err := repo.CreateGoal(models.Goal{Title: "g", Category: models.CategoryAcademic, Status: models.StatusNotStarted}); err != nil {
		t.Fatalf("CreateGoal() failed: %v", err)
	}

	if err := session.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if _, err := h.Repo(); !errors.Is(err, errors.ErrNotAuthenticated) {
		t.Errorf("Repo() after logout error = %v, want ErrNotAuthenticated", err)
	}
}

func TestSwitchingUsersRehydrates(t *testing.T) {
	h, session := setupHub(t)

	if err := session.Login("amir"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	repo, _ := h.Repo()
	if _, err := repo.CreateGoal(models.Goal{Title: "Amir's goal", Category: models.CategoryAcademic, Status: models.StatusNotStarted}); err != nil {
		t.Fatalf("CreateGoal() failed: %v", err)
	}

	if err := session.Login("zaid"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	repo, _ = h.Repo()
	goals, err := repo.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals() failed: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("a freshly bound user sees %d goals, want 0", len(goals))
	}

	// Back to the first user: the snapshot reloads from disk.
	if err := session.Login("amir"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	repo, _ = h.Repo()
	goals, err = repo.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals() failed: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "Amir's goal" {
		t.Errorf("rehydrated goals = %+v, want Amir's goal", goals)
	}
}

func TestStoreBypassesGuardForQuotes(t *testing.T) {
	h, _ := setupHub(t)

	quotes := h.Store().ListQuotes()
	if len(quotes) == 0 {
		t.Error("the quote set should be readable while signed out")
	}
}

func TestSubscribeNotifiesOnRebind(t *testing.T) {
	h, session := setupHub(t)

	var seen []string
	unsub := h.Subscribe(func(userID string) {
		seen = append(seen, userID)
	})

	if err := session.Login("amir"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if err := session.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}

	if len(seen) != 2 || seen[0] != "amir" || seen[1] != "" {
		t.Errorf("subscriber saw %v, want [amir \"\"]", seen)
	}

	unsub()
	if err := session.Login("zaid"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if len(seen) != 2 {
		t.Error("unsubscribed callback still received a rebind")
	}
}

func TestNextBoundUser(t *testing.T) {
	tests := []struct {
		name string
		prev string
		st   auth.State
		want string
	}{
		{
			name: "signed out to signed in",
			prev: "",
			st:   auth.State{UserID: "amir"},
			want: "amir",
		},
		{
			name: "signed in to signed out",
			prev: "amir",
			st:   auth.State{},
			want: "",
		},
		{
			name: "loading keeps previous binding",
			prev: "amir",
			st:   auth.State{IsLoading: true},
			want: "amir",
		},
		{
			name: "user switch",
			prev: "amir",
			st:   auth.State{UserID: "zaid"},
			want: "zaid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextBoundUser(tt.prev, tt.st); got != tt.want {
				t.Errorf("nextBoundUser(%q, %+v) = %q, want %q", tt.prev, tt.st, got, tt.want)
			}
		})
	}
}
