package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "exam.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestMarkerRepo_Lifecycle(t *testing.T) {
	st := openTestStore(t)
	repo := st.MarkerRepo()
	ctx := context.Background()

	m, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m != nil {
		t.Fatalf("expected no marker in fresh store, got %+v", m)
	}

	saved := &Marker{
		SessionID: "abc-123",
		Name:      "Trader One",
		Date:      time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Score:     7,
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get after save: %v", err)
	}
	if m == nil {
		t.Fatal("expected marker after save")
	}
	if m.Name != saved.Name || m.Score != saved.Score || !m.Date.Equal(saved.Date) {
		t.Errorf("Get = %+v, want %+v", m, saved)
	}

	// Saving again replaces, never duplicates.
	saved.Score = 9
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	m, _ = repo.Get(ctx)
	if m.Score != 9 {
		t.Errorf("Score after replace = %d, want 9", m.Score)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	m, _ = repo.Get(ctx)
	if m != nil {
		t.Errorf("expected no marker after Clear, got %+v", m)
	}
}

func TestRequestLogRepo_Append(t *testing.T) {
	st := openTestStore(t)
	repo := st.RequestLogRepo()
	ctx := context.Background()

	err := repo.Append(ctx, RequestLogData{
		Provider:     "gemini",
		Model:        "gemini-3-pro-preview",
		InputTokens:  120,
		OutputTokens: 300,
		LatencyMs:    850,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	var count int
	if err := st.DB().QueryRow(`SELECT COUNT(*) FROM model_requests`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
