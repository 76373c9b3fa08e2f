package repository

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/mkhalil/studenthub/internal/errors"
	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/storage"
)

// memAdapter is an in-memory storage adapter recording save calls.
type memAdapter struct {
	snaps    map[string]storage.Snapshot
	saves    int
	failSave bool
}

func newMemAdapter() *memAdapter {
	return &memAdapter{snaps: map[string]storage.Snapshot{}}
}

func (m *memAdapter) Load(userID string) (storage.Snapshot, error) {
	if snap, ok := m.snaps[userID]; ok {
		return snap, nil
	}
	return storage.EmptySnapshot(), nil
}

func (m *memAdapter) Save(userID string, snap storage.Snapshot) error {
	m.saves++
	if m.failSave {
		return errors.New("disk full")
	}
	m.snaps[userID] = snap
	return nil
}

func (m *memAdapter) Close() error { return nil }

func testRepo(t *testing.T) (*Repository, *memAdapter) {
	t.Helper()
	adapter := newMemAdapter()
	r := New(adapter)
	r.now = func() time.Time { return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC) }
	return r, adapter
}

func TestCreateGoalStampsFields(t *testing.T) {
	r, _ := testRepo(t)
	r.Bind("amir")

	g, err := r.CreateGoal(models.Goal{
		Title:        "Reach 3.8 GPA",
		Category:     models.CategoryAcademic,
		InitialValue: 3.0,
		TargetValue:  3.8,
		Status:       models.StatusInProgress,
	})
	if err != nil {
		t.Fatalf("CreateGoal() failed: %v", err)
	}
	if g.ID == "" {
		t.Error("CreateGoal() did not assign an id")
	}
	if g.UserID != "amir" {
		t.Errorf("CreateGoal() owner = %q, want %q", g.UserID, "amir")
	}
	if !g.CreatedAt.Equal(g.UpdatedAt) {
		t.Error("a freshly created record should have created_at == updated_at")
	}
}

func TestListFiltersByBoundUser(t *testing.T) {
	r, _ := testRepo(t)

	r.Bind("amir")
	if _, err := r.CreateGoal(models.Goal{Title: "Amir's goal", Category: models.CategoryAcademic, Status: models.StatusNotStarted}); err != nil {
		t.Fatalf("CreateGoal() failed: %v", err)
	}

	r.Bind("zaid")
	if _, err := r.CreateGoal(models.Goal{Title: "Zaid's goal", Category: models.CategoryFitness, Status: models.StatusNotStarted}); err != nil {
		t.Fatalf("CreateGoal() failed: %v", err)
	}

	goals, err := r.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals() failed: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "Zaid's goal" {
		t.Errorf("ListGoals() = %+v, want only Zaid's goal", goals)
	}

	// Rebinding the first user brings their data back.
	r.Bind("amir")
	goals, err = r.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals() failed: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "Amir's goal" {
		t.Errorf("ListGoals() after rebind = %+v, want only Amir's goal", goals)
	}
}

func TestUpdateGoalPreservesUnsetFields(t *testing.T) {
	r, _ := testRepo(t)
	r.Bind("amir")

	g, err := r.CreateGoal(models.Goal{
		Title:        "Reach 3.8 GPA",
		Category:     models.CategoryAcademic,
		Description:  "semester target",
		InitialValue: 3.0,
		TargetValue:  3.8,
		CurrentValue: 3.2,
		Status:       models.StatusInProgress,
	})
	if err != nil {
		t.Fatalf("CreateGoal() failed: %v", err)
	}

	cur := 3.5
	r.now = func() time.Time { return time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC) }
	updated, err := r.UpdateGoal(g.ID, models.GoalPatch{CurrentValue: &cur})
	if err != nil {
		t.Fatalf("UpdateGoal() failed: %v", err)
	}

	if updated.CurrentValue != 3.5 {
		t.Errorf("CurrentValue = %v, want 3.5", updated.CurrentValue)
	}
	if updated.Title != g.Title || updated.Description != g.Description || updated.TargetValue != g.TargetValue {
		t.Error("UpdateGoal() changed fields the patch did not set")
	}
	if !updated.UpdatedAt.After(g.UpdatedAt) {
		t.Error("UpdateGoal() did not advance updated_at")
	}
	if !updated.CreatedAt.Equal(g.CreatedAt) {
		t.Error("UpdateGoal() must not touch created_at")
	}
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	r, _ := testRepo(t)
	r.Bind("amir")

	title := "renamed"
	if _, err := r.UpdateGoal("no-such-id", models.GoalPatch{Title: &title}); !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("UpdateGoal() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteGoal(t *testing.T) {
	r, _ := testRepo(t)
	r.Bind("amir")

	g, err := r.CreateGoal(models.Goal{Title: "temp", Category: models.CategoryPersonal, Status: models.StatusNotStarted})
	if err != nil {
		t.Fatalf("CreateGoal() failed: %v", err)
	}

	removed, err := r.DeleteGoal(g.ID)
	if err != nil {
		t.Fatalf("DeleteGoal() failed: %v", err)
	}
	if !removed {
		t.Error("DeleteGoal() = false for an existing goal")
	}

	removed, err = r.DeleteGoal(g.ID)
	if err != nil {
		t.Fatalf("second DeleteGoal() failed: %v", err)
	}
	if removed {
		t.Error("DeleteGoal() = true for an already deleted goal")
	}
}

func TestTaskCompletedAtTransitions(t *testing.T) {
	r, _ := testRepo(t)
	r.Bind("amir")

	task, err := r.CreateTask(models.Task{
		Title:    "Finish problem set",
		Status:   models.StatusNotStarted,
		Priority: models.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	if task.CompletedAt != nil {
		t.Error("a task created not_started must not have completed_at set")
	}

	done := models.StatusCompleted
	task, err = r.UpdateTask(task.ID, models.TaskPatch{Status: &done})
	if err != nil {
		t.Fatalf("UpdateTask() failed: %v", err)
	}
	if task.CompletedAt == nil {
		t.Fatal("transition to completed must stamp completed_at")
	}

	reopened := models.StatusInProgress
	task, err = r.UpdateTask(task.ID, models.TaskPatch{Status: &reopened})
	if err != nil {
		t.Fatalf("UpdateTask() failed: %v", err)
	}
	if task.CompletedAt != nil {
		t.Error("transition away from completed must clear completed_at")
	}
}

func TestTaskCreatedCompletedGetsStamp(t *testing.T) {
	r, _ := testRepo(t)
	r.Bind("amir")

	task, err := r.CreateTask(models.Task{
		Title:    "Already done",
		Status:   models.StatusCompleted,
		Priority: models.PriorityLow,
	})
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	if task.CompletedAt == nil {
		t.Error("a task created completed must have completed_at stamped")
	}
}

func TestUnboundRepositoryRejectsOperations(t *testing.T) {
	r, _ := testRepo(t)

	if _, err := r.CreateGoal(models.Goal{Title: "x"}); !apperrors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Errorf("CreateGoal() unbound error = %v, want ErrNotAuthenticated", err)
	}
	if _, err := r.ListTasks(); !apperrors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Errorf("ListTasks() unbound error = %v, want ErrNotAuthenticated", err)
	}
	if _, err := r.LogHabit("h1", true, ""); !apperrors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Errorf("LogHabit() unbound error = %v, want ErrNotAuthenticated", err)
	}
}

func TestQuotesAvailableWithoutUser(t *testing.T) {
	r, _ := testRepo(t)

	quotes := r.ListQuotes()
	if len(quotes) == 0 {
		t.Fatal("seeded quotes should be readable before any user binds")
	}
}

func TestMutationsPersistSnapshot(t *testing.T) {
	r, adapter := testRepo(t)
	r.Bind("amir")

	if _, err := r.CreateGoal(models.Goal{Title: "g", Category: models.CategoryAcademic, Status: models.StatusNotStarted}); err != nil {
		t.Fatalf("CreateGoal() failed: %v", err)
	}
	if adapter.saves != 1 {
		t.Fatalf("saves = %d, want 1 after a single mutation", adapter.saves)
	}

	snap := adapter.snaps["amir"]
	if len(snap.Goals) != 1 {
		t.Errorf("persisted snapshot has %d goals, want 1", len(snap.Goals))
	}
	if len(snap.Quotes) == 0 {
		t.Error("persisted snapshot should carry the quote set")
	}
}

func TestSaveFailureDoesNotFailMutation(t *testing.T) {
	r, adapter := testRepo(t)
	r.Bind("amir")
	adapter.failSave = true

	g, err := r.CreateGoal(models.Goal{Title: "g", Category: models.CategoryAcademic, Status: models.StatusNotStarted})
	if err != nil {
		t.Fatalf("CreateGoal() must not surface a persistence failure, got: %v", err)
	}

	goals, err := r.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals() failed: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != g.ID {
		t.Error("the mutation should survive in memory when the save fails")
	}
}

func TestBindLoadsPersistedQuotes(t *testing.T) {
	adapter := newMemAdapter()
	snap := storage.EmptySnapshot()
	snap.Quotes = []models.Quote{{
		ID:       "q-custom",
		Text:     "Seek knowledge from the cradle to the grave.",
		Author:   "Proverb",
		Category: models.QuoteAcademic,
	}}
	adapter.snaps["amir"] = snap

	r := New(adapter)
	r.Bind("amir")

	quotes := r.ListQuotes()
	if len(quotes) != 1 || quotes[0].ID != "q-custom" {
		t.Errorf("a persisted quote set should replace the seeds, got %+v", quotes)
	}
}

func TestBindEmptySnapshotKeepsSeedQuotes(t *testing.T) {
	r, _ := testRepo(t)
	r.Bind("amir")

	quotes := r.ListQuotes()
	if len(quotes) != 5 {
		t.Errorf("got %d quotes, want the 5 seeds", len(quotes))
	}
}

func TestUnbindClearsState(t *testing.T) {
	r, _ := testRepo(t)
	r.Bind("amir")
	if _, err := r.CreateGoal(models.Goal{Title: "g", Category: models.CategoryAcademic, Status: models.StatusNotStarted}); err != nil {
		t.Fatalf("CreateGoal() failed: %v", err)
	}

	r.Bind("")
	if r.BoundUser() != "" {
		t.Errorf("BoundUser() = %q, want empty after unbind", r.BoundUser())
	}
	if _, err := r.ListGoals(); !apperrors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Errorf("ListGoals() after unbind error = %v, want ErrNotAuthenticated", err)
	}
}

func TestStudySessionUpdate(t *testing.T) {
	r, _ := testRepo(t)
	r.Bind("amir")

	s, err := r.CreateStudySession(models.StudySession{
		Title:       "Calculus review",
		Subject:     "Math",
		Date:        "2025-03-14",
		DurationMin: 45,
	})
	if err != nil {
		t.Fatalf("CreateStudySession() failed: %v", err)
	}

	completed := true
	mins := 60
	s, err = r.UpdateStudySession(s.ID, models.StudySessionPatch{Completed: &completed, DurationMin: &mins})
	if err != nil {
		t.Fatalf("UpdateStudySession() failed: %v", err)
	}
	if !s.Completed || s.DurationMin != 60 {
		t.Errorf("UpdateStudySession() = %+v, want completed with 60 minutes", s)
	}
	if s.Subject != "Math" {
		t.Error("UpdateStudySession() changed fields the patch did not set")
	}
}
