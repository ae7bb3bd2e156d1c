package focus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/adaptifocus/adaptifocus/internal/pattern"
	"github.com/adaptifocus/adaptifocus/internal/store"
)

type mockEventRepo struct {
	mu       sync.Mutex
	appended []store.BrowsingEventData
	today    []store.BrowsingEventRecord
	todayErr error
}

func (m *mockEventRepo) Append(_ context.Context, data store.BrowsingEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appended = append(m.appended, data)
	return nil
}

func (m *mockEventRepo) Query(context.Context, string, store.QueryOpts) ([]store.BrowsingEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) Today(context.Context, string, time.Time) ([]store.BrowsingEventRecord, error) {
	return m.today, m.todayErr
}

func (m *mockEventRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.appended)
}

type mockInterventionRepo struct {
	appended []store.InterventionData
	records  map[string]*store.InterventionRecord
	count    int
}

func (m *mockInterventionRepo) Append(_ context.Context, data store.InterventionData) error {
	m.appended = append(m.appended, data)
	return nil
}

func (m *mockInterventionRepo) RecordResponse(_ context.Context, id, response string) (*store.InterventionRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	effective := response == "complied"
	rec.UserResponse = response
	rec.Effective = &effective
	return rec, nil
}

func (m *mockInterventionRepo) CountToday(context.Context, string, time.Time) (int, error) {
	return m.count, nil
}

func (m *mockInterventionRepo) Today(context.Context, string, time.Time) ([]store.InterventionRecord, error) {
	return nil, nil
}

type mockSessionRepo struct {
	active *store.SessionRecord
}

func (m *mockSessionRepo) Start(_ context.Context, data store.SessionData) error {
	m.active = &store.SessionRecord{
		SessionID:              data.SessionID,
		UserID:                 data.UserID,
		Topic:                  data.Topic,
		StartedAt:              data.StartedAt,
		PlannedDurationMinutes: data.PlannedDurationMinutes,
		Active:                 true,
	}
	return nil
}

func (m *mockSessionRepo) End(_ context.Context, sessionID string, endedAt time.Time) (*store.SessionRecord, error) {
	if m.active == nil || m.active.SessionID != sessionID {
		return nil, nil
	}
	rec := *m.active
	rec.Active = false
	rec.EndedAt = &endedAt
	m.active = nil
	return &rec, nil
}

func (m *mockSessionRepo) Active(context.Context, string) (*store.SessionRecord, error) {
	return m.active, nil
}

type mockSnapshotRepo struct {
	saved  []*store.Snapshot
	latest *store.Snapshot
	err    error
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, snap)
	return nil
}

func (m *mockSnapshotRepo) Latest(context.Context, string) (*store.Snapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.latest, nil
}

func (m *mockSnapshotRepo) Prune(context.Context, string, int) error {
	return m.err
}

type testMocks struct {
	events        *mockEventRepo
	interventions *mockInterventionRepo
	sessions      *mockSessionRepo
	snapshots     *mockSnapshotRepo
}

func newTestService(t *testing.T, now time.Time) (*Service, *testMocks) {
	t.Helper()
	m := &testMocks{
		events:        &mockEventRepo{},
		interventions: &mockInterventionRepo{records: map[string]*store.InterventionRecord{}},
		sessions:      &mockSessionRepo{},
		snapshots:     &mockSnapshotRepo{},
	}
	svc := New(DefaultConfig(), m.events, m.interventions, m.sessions, m.snapshots,
		WithClock(func() time.Time { return now }))
	t.Cleanup(svc.Close)
	return svc, m
}

func TestCheckStudyNoIntervention(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	res, err := svc.Check(context.Background(), CheckRequest{
		UserID:       "alice",
		Domain:       "github.com",
		Title:        "fix flaky retry test",
		DwellSeconds: 400,
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.ShouldIntervene {
		t.Error("study activity should never intervene")
	}
	if res.Category != "study" {
		t.Errorf("category = %q, want study", res.Category)
	}
	if res.Level != "none" {
		t.Errorf("level = %q, want none", res.Level)
	}

	svc.Close()
	if m.events.count() != 1 {
		t.Errorf("persisted events = %d, want 1", m.events.count())
	}
}

func TestCheckDistractionFiresAndPersists(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	res, err := svc.Check(context.Background(), CheckRequest{
		UserID:       "alice",
		Domain:       "netflix.com",
		Title:        "trending tonight",
		DwellSeconds: 700,
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !res.ShouldIntervene {
		t.Fatal("expected intervention after 700s on a distraction domain")
	}
	if res.Level != "nudge" {
		t.Errorf("level = %q, want nudge (one step per check)", res.Level)
	}
	if res.InterventionID == "" {
		t.Error("expected an intervention ID")
	}
	if res.Message == "" {
		t.Error("expected a message")
	}

	if len(m.interventions.appended) != 1 {
		t.Fatalf("persisted interventions = %d, want 1", len(m.interventions.appended))
	}
	got := m.interventions.appended[0]
	if got.InterventionID != res.InterventionID || got.Level != "nudge" || got.TriggerDomain != "netflix.com" {
		t.Errorf("intervention record: %+v", got)
	}
}

func TestCheckCooldownBlocksRefire(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)
	ctx := context.Background()

	req := CheckRequest{UserID: "alice", Domain: "netflix.com", DwellSeconds: 700}
	first, err := svc.Check(ctx, req)
	if err != nil {
		t.Fatalf("check 1: %v", err)
	}
	if !first.ShouldIntervene {
		t.Fatal("expected first check to fire")
	}

	second, err := svc.Check(ctx, req)
	if err != nil {
		t.Fatalf("check 2: %v", err)
	}
	if second.ShouldIntervene {
		t.Error("expected cooldown to block the second check")
	}
}

func TestCheckFailsOpenWhenStoreDown(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)
	m.snapshots.err = errors.New("database is locked")

	res, err := svc.Check(context.Background(), CheckRequest{
		UserID:       "alice",
		Domain:       "netflix.com",
		DwellSeconds: 10,
	})
	if err != nil {
		t.Fatalf("check should fail open, got: %v", err)
	}
	if res.ShouldIntervene {
		t.Error("fresh state after store failure should not intervene at 10s dwell")
	}
}

func TestCheckRestoresFromSnapshot(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	prior := pattern.NewState("alice")
	prior.Level = pattern.LevelWarn
	prior.InterventionsFired = 2
	data, err := stateToMap(prior)
	if err != nil {
		t.Fatalf("encode state: %v", err)
	}

	svc, m := newTestService(t, now)
	m.snapshots.latest = &store.Snapshot{UserID: "alice", Sequence: 9, Timestamp: now.Add(-time.Hour), Data: data}

	res, err := svc.Check(context.Background(), CheckRequest{
		UserID:       "alice",
		Domain:       "netflix.com",
		DwellSeconds: 700,
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !res.ShouldIntervene {
		t.Fatal("expected intervention")
	}
	// One step above the restored warn level.
	if res.Level != "soft_block" {
		t.Errorf("level = %q, want soft_block", res.Level)
	}
}

func TestCheckValidation(t *testing.T) {
	now := time.Now()
	svc, _ := newTestService(t, now)
	ctx := context.Background()

	_, err := svc.Check(ctx, CheckRequest{UserID: "alice"})
	var inv *ErrInvalidInput
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidInput without url/domain, got %v", err)
	}

	_, err = svc.Check(ctx, CheckRequest{Domain: "reddit.com"})
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidInput without user, got %v", err)
	}
}

func TestCheckNegativeDwellClamped(t *testing.T) {
	now := time.Now()
	svc, _ := newTestService(t, now)

	res, err := svc.Check(context.Background(), CheckRequest{
		UserID:       "alice",
		Domain:       "netflix.com",
		DwellSeconds: -50,
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.ShouldIntervene {
		t.Error("clamped zero dwell should not intervene")
	}
}

func TestCheckExtractsDomainFromURL(t *testing.T) {
	now := time.Now()
	svc, _ := newTestService(t, now)

	res, err := svc.Check(context.Background(), CheckRequest{
		UserID:       "alice",
		URL:          "https://www.netflix.com/browse",
		DwellSeconds: 5,
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Category != "distraction" {
		t.Errorf("category = %q, want distraction", res.Category)
	}
}

func TestSessionTopicUpgradesVerdict(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, "alice", "python generators", 45); err != nil {
		t.Fatalf("start session: %v", err)
	}

	res, err := svc.Check(ctx, CheckRequest{
		UserID:       "alice",
		Domain:       "youtube.com",
		Title:        "python generators deep dive",
		DwellSeconds: 60,
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Category != "study" {
		t.Errorf("category = %q, want study via topic relevance", res.Category)
	}
	if res.ShouldIntervene {
		t.Error("on-topic viewing should not intervene")
	}
}

func TestRecordResponseAdjustsSensitivity(t *testing.T) {
	now := time.Now()
	svc, m := newTestService(t, now)
	ctx := context.Background()

	m.interventions.records["iv-1"] = &store.InterventionRecord{
		InterventionID: "iv-1",
		UserID:         "alice",
		Level:          "warn",
	}

	res, err := svc.RecordResponse(ctx, "iv-1", "overrode")
	if err != nil {
		t.Fatalf("record response: %v", err)
	}
	if res == nil || res.Effective {
		t.Fatalf("expected non-effective response, got %+v", res)
	}

	state, ok := svc.states.peek("alice")
	if !ok {
		t.Fatal("expected state for alice")
	}
	if state.OverrideCount != 1 {
		t.Errorf("override count = %d, want 1", state.OverrideCount)
	}
	if state.SensitivityBias() <= 0 {
		t.Errorf("bias = %v, want positive after override", state.SensitivityBias())
	}
}

func TestRecordResponseUnknownID(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	res, err := svc.RecordResponse(context.Background(), "nope", "complied")
	if err != nil {
		t.Fatalf("record response: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result, got %+v", res)
	}
}

func TestRecordResponseValidation(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	_, err := svc.RecordResponse(context.Background(), "iv-1", "shrugged")
	var inv *ErrInvalidInput
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestIngestEventsAcceptsAndSkips(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	accepted, err := svc.IngestEvents(context.Background(), "alice", []EventInput{
		{Domain: "github.com", Title: "code review", DurationSeconds: 120},
		{Title: "no domain at all", DurationSeconds: 60},
		{Domain: "reddit.com", DurationSeconds: -30},
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if accepted != 2 {
		t.Errorf("accepted = %d, want 2", accepted)
	}

	state, ok := svc.states.peek("alice")
	if !ok {
		t.Fatal("expected state for alice")
	}
	if state.FocusSeconds != 120 {
		t.Errorf("focus seconds = %d, want 120", state.FocusSeconds)
	}
	if state.DistractionSeconds != 0 {
		t.Errorf("distraction seconds = %d, want 0 (clamped)", state.DistractionSeconds)
	}

	svc.Close()
	if m.events.count() != 2 {
		t.Errorf("persisted events = %d, want 2", m.events.count())
	}
}

func TestSessionLifecycleResetsCounters(t *testing.T) {
	now := time.Now()
	svc, _ := newTestService(t, now)
	ctx := context.Background()

	state := pattern.NewState("alice")
	state.SessionInterventions = 4
	svc.states.put("alice", state)

	rec, err := svc.StartSession(ctx, "alice", "calculus", 30)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if rec == nil || !rec.Active {
		t.Fatalf("expected active session, got %+v", rec)
	}
	if state.SessionInterventions != 0 {
		t.Errorf("session interventions = %d, want 0 after start", state.SessionInterventions)
	}

	state.SessionInterventions = 2
	ended, err := svc.EndSession(ctx, rec.SessionID)
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if ended == nil || ended.Active {
		t.Fatalf("expected ended session, got %+v", ended)
	}
	if state.SessionInterventions != 0 {
		t.Errorf("session interventions = %d, want 0 after end", state.SessionInterventions)
	}
}

func TestEndSessionUnknownID(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	rec, err := svc.EndSession(context.Background(), "nope")
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil, got %+v", rec)
	}
}

func TestTodaySummary(t *testing.T) {
	now := time.Now()
	svc, m := newTestService(t, now)

	m.events.today = []store.BrowsingEventRecord{
		{Domain: "github.com", DurationSeconds: 600, Category: "study"},
		{Domain: "reddit.com", DurationSeconds: 200, Category: "distraction"},
		{Domain: "youtube.com", DurationSeconds: 100, Category: "distraction"},
		{Domain: "mail.google.com", DurationSeconds: 100, Category: "neutral"},
	}
	m.interventions.count = 2

	sum, err := svc.TodaySummary(context.Background(), "alice")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.EventCount != 4 || sum.StudySeconds != 600 || sum.DistractionSeconds != 300 || sum.NeutralSeconds != 100 {
		t.Errorf("summary counters: %+v", sum)
	}
	if sum.Interventions != 2 {
		t.Errorf("interventions = %d, want 2", sum.Interventions)
	}
	if sum.FocusScore != 0.7 {
		t.Errorf("focus score = %v, want 0.7", sum.FocusScore)
	}
	if len(sum.TopDistractions) != 2 || sum.TopDistractions[0].Domain != "reddit.com" {
		t.Errorf("top distractions: %+v", sum.TopDistractions)
	}
}

func TestTodaySummaryStoreError(t *testing.T) {
	svc, m := newTestService(t, time.Now())
	m.events.todayErr = errors.New("database is locked")

	_, err := svc.TodaySummary(context.Background(), "alice")
	var unavail *ErrStateUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrStateUnavailable, got %v", err)
	}
}

func TestConcurrentChecksSameUser(t *testing.T) {
	now := time.Now()
	svc, _ := newTestService(t, now)
	ctx := context.Background()

	// Distinct URLs so every check is a fresh page and accrues in full.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Check(ctx, CheckRequest{
				UserID:       "alice",
				Domain:       "netflix.com",
				URL:          fmt.Sprintf("https://netflix.com/watch/%d", i),
				DwellSeconds: 10,
			})
			if err != nil {
				t.Errorf("check: %v", err)
			}
		}(i)
	}
	wg.Wait()

	state, ok := svc.states.peek("alice")
	if !ok {
		t.Fatal("expected state for alice")
	}
	if state.DistractionSeconds != 200 {
		t.Errorf("distraction seconds = %d, want 200", state.DistractionSeconds)
	}
}

func TestCheckQueueFullCountsLostEvent(t *testing.T) {
	// Worker stalled inside Append with a depth-1 queue: the first
	// check's event is in flight, the second fills the channel, and the
	// third must still return -- its event is dropped and counted,
	// without touching the user's lock from inside Enqueue.
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	repo := newStallRepo()
	cfg := DefaultConfig()
	cfg.QueueDepth = 1
	svc := New(cfg,
		repo,
		&mockInterventionRepo{records: map[string]*store.InterventionRecord{}},
		&mockSessionRepo{},
		&mockSnapshotRepo{},
		WithClock(func() time.Time { return now }))
	ctx := context.Background()

	if _, err := svc.Check(ctx, CheckRequest{UserID: "alice", Domain: "netflix.com", DwellSeconds: 5}); err != nil {
		t.Fatalf("check 1: %v", err)
	}
	<-repo.started

	if _, err := svc.Check(ctx, CheckRequest{UserID: "alice", Domain: "netflix.com", DwellSeconds: 10}); err != nil {
		t.Fatalf("check 2: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := svc.Check(ctx, CheckRequest{UserID: "alice", Domain: "netflix.com", DwellSeconds: 15}); err != nil {
			t.Errorf("check 3: %v", err)
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("check with a full queue did not return")
	}

	state, ok := svc.states.peek("alice")
	if !ok {
		t.Fatal("expected state for alice")
	}
	if state.LostEvents != 1 {
		t.Errorf("lost events = %d, want 1", state.LostEvents)
	}

	close(repo.release)
	svc.Close()
}

func TestCheckRepeatedPollsAccrueDelta(t *testing.T) {
	// Polls report cumulative dwell for the page; only the time since
	// the previous poll may enter the counters.
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)
	ctx := context.Background()

	for _, dwell := range []int{30, 60, 90} {
		if _, err := svc.Check(ctx, CheckRequest{
			UserID:       "alice",
			Domain:       "netflix.com",
			URL:          "https://netflix.com/watch/1",
			DwellSeconds: dwell,
		}); err != nil {
			t.Fatalf("check at %ds: %v", dwell, err)
		}
	}

	state, ok := svc.states.peek("alice")
	if !ok {
		t.Fatal("expected state for alice")
	}
	if state.DistractionSeconds != 90 {
		t.Errorf("distraction seconds = %d, want 90 (not the 180 a cumulative fold would give)", state.DistractionSeconds)
	}
	if st := state.Domains["netflix.com"]; st == nil || st.TotalSeconds != 90 {
		t.Errorf("domain stat = %+v, want 90s total", st)
	}

	svc.Close()
	total := 0
	m.events.mu.Lock()
	for _, e := range m.events.appended {
		total += e.DurationSeconds
	}
	m.events.mu.Unlock()
	if total != 90 {
		t.Errorf("persisted durations sum = %d, want 90", total)
	}
}

func TestIngestReconcilesPolledDwell(t *testing.T) {
	// The tracker's batched event is the completed visit; the portion
	// already folded in through live checks must not count twice.
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)
	ctx := context.Background()

	if _, err := svc.Check(ctx, CheckRequest{
		UserID:       "alice",
		Domain:       "netflix.com",
		URL:          "https://netflix.com/watch/1",
		DwellSeconds: 90,
	}); err != nil {
		t.Fatalf("check: %v", err)
	}

	if _, err := svc.IngestEvents(ctx, "alice", []EventInput{
		{Domain: "netflix.com", URL: "https://netflix.com/watch/1", DurationSeconds: 120},
	}); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	state, ok := svc.states.peek("alice")
	if !ok {
		t.Fatal("expected state for alice")
	}
	if state.DistractionSeconds != 120 {
		t.Errorf("distraction seconds = %d, want 120 (90 polled + 30 reconciled)", state.DistractionSeconds)
	}
	if state.CurrentPageKey != "" {
		t.Errorf("page tracker = %q, want cleared after the completed visit", state.CurrentPageKey)
	}
}

// hangingSessionRepo blocks Active until the caller's context expires.
type hangingSessionRepo struct{ mockSessionRepo }

func (h *hangingSessionRepo) Active(ctx context.Context, _ string) (*store.SessionRecord, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// hangingSnapshotRepo blocks Latest until the caller's context expires.
type hangingSnapshotRepo struct{ mockSnapshotRepo }

func (h *hangingSnapshotRepo) Latest(ctx context.Context, _ string) (*store.Snapshot, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestCheckStoreHangFailsOpen(t *testing.T) {
	// A hung store read degrades to missing evidence after the read
	// timeout instead of blocking the decision.
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()
	cfg.StoreReadTimeout = 20 * time.Millisecond
	svc := New(cfg,
		&mockEventRepo{},
		&mockInterventionRepo{records: map[string]*store.InterventionRecord{}},
		&hangingSessionRepo{},
		&hangingSnapshotRepo{},
		WithClock(func() time.Time { return now }))
	t.Cleanup(svc.Close)

	start := time.Now()
	res, err := svc.Check(context.Background(), CheckRequest{
		UserID:       "alice",
		Domain:       "netflix.com",
		DwellSeconds: 10,
	})
	if err != nil {
		t.Fatalf("check should fail open, got: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("check took %s, want bounded by the read timeout", elapsed)
	}
	if res.ShouldIntervene {
		t.Error("fresh state after hung store should not intervene at 10s dwell")
	}
}

func TestMixedDomainFollowsTrajectory(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)
	ctx := context.Background()

	// Alice arrives at a mixed domain off a run of distraction sites.
	for i, domain := range []string{"tiktok.com", "instagram.com", "facebook.com"} {
		if _, err := svc.Check(ctx, CheckRequest{
			UserID:       "alice",
			Domain:       domain,
			URL:          fmt.Sprintf("https://%s/%d", domain, i),
			DwellSeconds: 30,
		}); err != nil {
			t.Fatalf("seed check %s: %v", domain, err)
		}
	}
	res, err := svc.Check(ctx, CheckRequest{UserID: "alice", Domain: "youtube.com", DwellSeconds: 10})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Category != "distraction" {
		t.Errorf("category = %q, want distraction off a distraction trajectory", res.Category)
	}

	// Bob arrives at the same domain off a run of study sites.
	for i, domain := range []string{"github.com", "arxiv.org", "leetcode.com"} {
		if _, err := svc.Check(ctx, CheckRequest{
			UserID:       "bob",
			Domain:       domain,
			URL:          fmt.Sprintf("https://%s/%d", domain, i),
			DwellSeconds: 30,
		}); err != nil {
			t.Fatalf("seed check %s: %v", domain, err)
		}
	}
	res, err = svc.Check(ctx, CheckRequest{UserID: "bob", Domain: "youtube.com", DwellSeconds: 10})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Category != "study" {
		t.Errorf("category = %q, want study off a study trajectory", res.Category)
	}

	// A title keyword still beats the trajectory.
	res, err = svc.Check(ctx, CheckRequest{
		UserID:       "alice",
		Domain:       "youtube.com",
		Title:        "python tutorial",
		DwellSeconds: 10,
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Category != "study" {
		t.Errorf("category = %q, want study via title override", res.Category)
	}
}

func TestCheckNormalizesExplicitDomain(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)
	ctx := context.Background()

	for _, domain := range []string{"www.Netflix.com", "netflix.com"} {
		if _, err := svc.Check(ctx, CheckRequest{
			UserID:       "alice",
			Domain:       domain,
			DwellSeconds: 10,
		}); err != nil {
			t.Fatalf("check %s: %v", domain, err)
		}
	}

	state, ok := svc.states.peek("alice")
	if !ok {
		t.Fatal("expected state for alice")
	}
	if len(state.Domains) != 1 || state.Domains["netflix.com"] == nil {
		t.Errorf("domain stats = %v, want a single netflix.com entry", state.Domains)
	}

	svc.Close()
	m.events.mu.Lock()
	defer m.events.mu.Unlock()
	for _, e := range m.events.appended {
		if e.Domain != "netflix.com" {
			t.Errorf("persisted domain = %q, want netflix.com", e.Domain)
		}
	}
}
