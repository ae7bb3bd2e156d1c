package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventAppendAndToday(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	now := time.Now()

	events := []BrowsingEventData{
		{UserID: "alice", Domain: "github.com", Title: "pull request review", DurationSeconds: 120, Category: "study"},
		{UserID: "alice", Domain: "reddit.com", Title: "front page", DurationSeconds: 300, Distraction: true, DistractionScore: 0.8, Category: "distraction"},
		{UserID: "bob", Domain: "youtube.com", DurationSeconds: 60, Distraction: true, Category: "distraction"},
	}
	for i, e := range events {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.Today(ctx, "alice", now)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("today len = %d, want 2", len(got))
	}
	if got[0].Domain != "github.com" || got[1].Domain != "reddit.com" {
		t.Errorf("events out of order: %s, %s", got[0].Domain, got[1].Domain)
	}
	if got[0].Sequence >= got[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", got[0].Sequence, got[1].Sequence)
	}
	if !got[1].Distraction || got[1].DistractionScore != 0.8 {
		t.Errorf("distraction fields not persisted: %+v", got[1])
	}
}

func TestEventQueryOpts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.Append(ctx, BrowsingEventData{
			UserID: "alice",
			Domain: "example.com",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.Query(ctx, "alice", QueryOpts{After: 2, Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Sequence != 3 || got[1].Sequence != 4 {
		t.Errorf("sequences = %d, %d, want 3, 4", got[0].Sequence, got[1].Sequence)
	}
}

func TestInterventionAppendAndResponse(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterventionRepo()
	ctx := context.Background()
	now := time.Now()

	err := repo.Append(ctx, InterventionData{
		InterventionID:            "iv-1",
		UserID:                    "alice",
		Level:                     "warn",
		TriggerDomain:             "reddit.com",
		DurationOnDistractionSecs: 180,
		DistractionScore:          0.72,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := repo.CountToday(ctx, "alice", now)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	rec, err := repo.RecordResponse(ctx, "iv-1", "complied")
	if err != nil {
		t.Fatalf("record response: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil record")
	}
	if rec.UserResponse != "complied" {
		t.Errorf("user_response = %q, want %q", rec.UserResponse, "complied")
	}
	if rec.Effective == nil || !*rec.Effective {
		t.Error("expected effective = true for complied response")
	}
	if rec.Level != "warn" {
		t.Errorf("level = %q, want %q", rec.Level, "warn")
	}
}

func TestInterventionResponseNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterventionRepo()

	rec, err := repo.RecordResponse(context.Background(), "no-such-id", "dismissed")
	if err != nil {
		t.Fatalf("record response: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record for unknown intervention")
	}
}

func TestInterventionOverrodeNotEffective(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterventionRepo()
	ctx := context.Background()

	err := repo.Append(ctx, InterventionData{
		InterventionID: "iv-2",
		UserID:         "alice",
		Level:          "soft_block",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	rec, err := repo.RecordResponse(ctx, "iv-2", "overrode")
	if err != nil {
		t.Fatalf("record response: %v", err)
	}
	if rec.Effective == nil || *rec.Effective {
		t.Error("expected effective = false for overrode response")
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()
	now := time.Now()

	// No active session yet.
	active, err := repo.Active(ctx, "alice")
	if err != nil {
		t.Fatalf("active (empty): %v", err)
	}
	if active != nil {
		t.Fatal("expected nil session when none exist")
	}

	err = repo.Start(ctx, SessionData{
		SessionID:              "sess-1",
		UserID:                 "alice",
		Topic:                  "linear algebra",
		StartedAt:              now,
		PlannedDurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	active, err = repo.Active(ctx, "alice")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active == nil {
		t.Fatal("expected active session")
	}
	if active.Topic != "linear algebra" || active.PlannedDurationMinutes != 60 {
		t.Errorf("session fields: %+v", active)
	}

	ended, err := repo.End(ctx, "sess-1", now.Add(50*time.Minute))
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if ended == nil || ended.Active {
		t.Fatal("expected ended session")
	}
	if ended.EndedAt == nil {
		t.Fatal("expected ended_at to be set")
	}

	active, err = repo.Active(ctx, "alice")
	if err != nil {
		t.Fatalf("active (after end): %v", err)
	}
	if active != nil {
		t.Fatal("expected no active session after end")
	}
}

func TestSessionStartClosesPrior(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()
	now := time.Now()

	if err := repo.Start(ctx, SessionData{SessionID: "sess-1", UserID: "alice", StartedAt: now}); err != nil {
		t.Fatalf("start 1: %v", err)
	}
	if err := repo.Start(ctx, SessionData{SessionID: "sess-2", UserID: "alice", StartedAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("start 2: %v", err)
	}

	active, err := repo.Active(ctx, "alice")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active == nil || active.SessionID != "sess-2" {
		t.Fatalf("active session = %+v, want sess-2", active)
	}

	first, err := repo.End(ctx, "sess-1", now.Add(2*time.Minute))
	if err != nil {
		t.Fatalf("end sess-1: %v", err)
	}
	if first.Active {
		t.Error("expected sess-1 to be closed by sess-2 start")
	}
}

func TestSessionEndNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	rec, err := repo.End(context.Background(), "no-such-session", time.Now())
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record for unknown session")
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "alice")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		UserID:    "alice",
		Sequence:  42,
		Timestamp: now,
		Data:      map[string]any{"level": "warn"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "alice")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data["level"] != "warn" {
		t.Errorf("data.level = %v, want warn", snap.Data["level"])
	}

	// Another user sees nothing.
	snap, err = repo.Latest(ctx, "bob")
	if err != nil {
		t.Fatalf("latest (other user): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot for other user")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "alice",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "alice", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().PatternSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx, "alice")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "alice",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, "alice", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().PatternSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
