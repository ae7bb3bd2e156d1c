// Package focus coordinates the classifier, feature extractor, scorer,
// and intervention engine into user-facing operations. It owns the
// per-user behavioral state: all reads and writes of a user's state go
// through this package, serialized by a per-user lock.
package focus

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/adaptifocus/adaptifocus/internal/classify"
	"github.com/adaptifocus/adaptifocus/internal/engine"
	"github.com/adaptifocus/adaptifocus/internal/pattern"
	"github.com/adaptifocus/adaptifocus/internal/scorer"
	"github.com/adaptifocus/adaptifocus/internal/semantic"
	"github.com/adaptifocus/adaptifocus/internal/store"
)

// Config tunes the coordinator.
type Config struct {
	Window pattern.WindowConfig
	Engine engine.Config

	// SnapshotEvery is the number of checks between state snapshots.
	SnapshotEvery int
	// SnapshotKeep is how many snapshots to retain per user.
	SnapshotKeep int

	// QueueDepth and QueueRetries bound the event persistence queue.
	QueueDepth   int
	QueueRetries int

	// StoreReadTimeout bounds store reads on the check path. Reads that
	// exceed it are treated as empty evidence; the check proceeds.
	StoreReadTimeout time.Duration
}

// DefaultConfig returns the standard coordinator configuration.
func DefaultConfig() Config {
	return Config{
		Window:        pattern.DefaultWindowConfig(),
		Engine:        engine.DefaultConfig(),
		SnapshotEvery: 20,
		SnapshotKeep:  5,
		QueueDepth:    defaultQueueDepth,
		QueueRetries:  defaultMaxRetries,

		StoreReadTimeout: defaultStoreReadTimeout,
	}
}

const defaultStoreReadTimeout = 2 * time.Second

// Service is the single entry point for intervention checks, event
// ingest, sessions, and response feedback.
type Service struct {
	cfg Config

	events        store.EventRepo
	interventions store.InterventionRepo
	sessions      store.SessionRepo
	snapshots     store.SnapshotRepo

	extractor *pattern.Extractor
	engine    *engine.Engine
	scores    *scorer.Chain
	resolver  *semantic.Resolver

	locks  *lockTable
	queue  *persistQueue
	states *stateCache

	now func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithResolver enables LLM title resolution for ambiguous mixed-domain
// events. Without it the rule classifier runs alone.
func WithResolver(r *semantic.Resolver) Option {
	return func(s *Service) { s.resolver = r }
}

// WithScorer replaces the default scorer chain.
func WithScorer(c *scorer.Chain) Option {
	return func(s *Service) { s.scores = c }
}

// WithClock injects a clock for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service on top of the given repositories.
func New(cfg Config, events store.EventRepo, interventions store.InterventionRepo, sessions store.SessionRepo, snapshots store.SnapshotRepo, opts ...Option) *Service {
	s := &Service{
		cfg:           cfg,
		events:        events,
		interventions: interventions,
		sessions:      sessions,
		snapshots:     snapshots,
		extractor:     pattern.NewExtractor(cfg.Window),
		engine:        engine.New(cfg.Engine),
		scores:        scorer.NewChain(),
		locks:         newLockTable(),
		states:        newStateCache(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.queue = newPersistQueue(events, cfg.QueueDepth, cfg.QueueRetries, s.noteLostEvent)
	return s
}

// Close flushes the persistence queue.
func (s *Service) Close() {
	s.queue.Close()
}

// ClassifyRequest identifies a page to classify. Either URL or Domain
// must be set; Domain wins when both are.
type ClassifyRequest struct {
	URL    string
	Domain string
	Title  string
	Topic  string
}

// ClassifyResult is a verdict plus the domain it was computed for.
type ClassifyResult struct {
	Domain  string
	Verdict classify.Verdict
}

// Classify runs the rule classifier. Pure: no state is read or written.
func (s *Service) Classify(req ClassifyRequest) (ClassifyResult, error) {
	domain, err := resolveDomain(req.URL, req.Domain)
	if err != nil {
		return ClassifyResult{}, err
	}

	var v classify.Verdict
	if req.Topic != "" {
		v = classify.ClassifyWithTopic(domain, req.Title, req.Topic)
	} else {
		v = classify.Classify(domain, req.Title)
	}
	return ClassifyResult{Domain: domain, Verdict: v}, nil
}

// CheckRequest carries one intervention check.
type CheckRequest struct {
	UserID       string
	URL          string
	Domain       string
	Title        string
	DwellSeconds int
}

// CheckResult is the outcome of an intervention check.
type CheckResult struct {
	ShouldIntervene  bool    `json:"should_intervene"`
	InterventionID   string  `json:"intervention_id,omitempty"`
	Level            string  `json:"level"`
	Message          string  `json:"message,omitempty"`
	DistractionScore float64 `json:"distraction_score"`
	EffectiveScore   float64 `json:"effective_score"`
	Scorer           string  `json:"scorer"`
	Category         string  `json:"category"`
}

// Check runs one full intervention check: classify the page, fold the
// observation into the user's pattern state, score it, and step the
// escalation machine. Store failures never block the decision; the
// check falls back to whatever state is in memory and fails open.
func (s *Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	domain, err := resolveDomain(req.URL, req.Domain)
	if err != nil {
		return CheckResult{}, err
	}
	if req.UserID == "" {
		return CheckResult{}, &ErrInvalidInput{Field: "user_id", Reason: "must not be empty"}
	}
	dwell := req.DwellSeconds
	if dwell < 0 {
		dwell = 0
	}

	lock := s.locks.get(req.UserID)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()
	state := s.loadState(ctx, req.UserID)
	session := s.activeSession(ctx, req.UserID)

	verdict := s.classifyEvent(state, domain, req.Title, session)

	// Checks report cumulative dwell for the page, so only the time not
	// yet folded in counts toward the pattern state. Without this, a
	// page polled at 30/60/90s would accrue 180s against 90s of clock.
	delta := accrueDwell(state, pageKey(domain, req.URL), dwell)

	ev := pattern.Event{
		Domain:          domain,
		Title:           req.Title,
		URL:             req.URL,
		StartedAt:       now.Add(-time.Duration(delta) * time.Second),
		DurationSeconds: delta,
	}
	if session != nil {
		ev.SessionID = session.SessionID
	}

	fv := s.extractor.Update(state, ev, verdict, now)
	score, scorerName := s.scores.Score(fv)

	decision := s.engine.Decide(state, engine.Input{
		Verdict:       verdict,
		Score:         score,
		DwellSeconds:  dwell,
		Domain:        domain,
		SessionActive: session != nil,
		Now:           now,
	})

	if !s.queue.Enqueue(store.BrowsingEventData{
		UserID:           req.UserID,
		URL:              req.URL,
		Domain:           domain,
		Title:            req.Title,
		DurationSeconds:  delta,
		Distraction:      verdict.Label == classify.LabelDistraction,
		DistractionScore: score,
		Category:         string(verdict.Label),
		SessionID:        ev.SessionID,
	}) {
		state.LostEvents++
	}

	result := CheckResult{
		ShouldIntervene:  decision.ShouldIntervene,
		Level:            decision.Level.String(),
		Message:          decision.Message,
		DistractionScore: decision.DistractionScore,
		EffectiveScore:   decision.EffectiveScore,
		Scorer:           scorerName,
		Category:         string(verdict.Label),
	}

	if decision.ShouldIntervene {
		result.InterventionID = uuid.NewString()
		data := store.InterventionData{
			InterventionID:            result.InterventionID,
			UserID:                    req.UserID,
			Level:                     decision.Level.String(),
			TriggerDomain:             domain,
			TriggerURL:                req.URL,
			DurationOnDistractionSecs: dwell,
			DistractionScore:          score,
			SessionID:                 ev.SessionID,
		}
		if err := s.interventions.Append(ctx, data); err != nil {
			// The user still sees the intervention; only the log entry
			// is lost.
			log.Printf("persist intervention for %s: %v", req.UserID, err)
		}
	}

	s.maybeSnapshot(ctx, state)

	return result, nil
}

// trajectoryCutoff is how decisively the recent browsing direction must
// point before it decides a mixed-domain page with no title signal.
const trajectoryCutoff = 0.5

// classifyEvent applies the rule classifier, upgraded by the session
// topic when one is declared and by a cached semantic verdict when the
// domain is mixed and the title matched no keyword. A cache miss warms
// the resolver in the background; the check itself never waits. When no
// semantic verdict is available the recent browsing trajectory breaks
// the tie instead.
func (s *Service) classifyEvent(state *pattern.State, domain, title string, session *store.SessionRecord) classify.Verdict {
	var verdict classify.Verdict
	if session != nil && session.Topic != "" {
		verdict = classify.ClassifyWithTopic(domain, title, session.Topic)
	} else {
		verdict = classify.Classify(domain, title)
	}

	if !classify.IsMixedDomain(domain) || verdict.Source != classify.SourceDomainPrior {
		return verdict
	}

	if s.resolver != nil && title != "" {
		if resolved, ok := s.resolver.ResolveCached(domain, title); ok {
			return resolved
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := s.resolver.Resolve(ctx, domain, title); err != nil {
				log.Printf("title resolution for %s: %v", domain, err)
			}
		}()
	}

	switch traj := classify.TrajectoryScore(state.RecentDomains(5)); {
	case traj >= trajectoryCutoff:
		return classify.Verdict{Label: classify.LabelStudy, Source: classify.SourceTrajectory, Confidence: 0.6}
	case traj <= -trajectoryCutoff:
		return classify.Verdict{Label: classify.LabelDistraction, Source: classify.SourceTrajectory, Confidence: 0.6}
	}
	return verdict
}

// EventInput is one observation in a batch ingest.
type EventInput struct {
	URL             string
	Domain          string
	Title           string
	DurationSeconds int
}

// IngestEvents folds a batch of observations into the user's state and
// queues them for persistence. Returns how many events were accepted;
// events with neither URL nor domain are skipped, not fatal.
func (s *Service) IngestEvents(ctx context.Context, userID string, events []EventInput) (int, error) {
	if userID == "" {
		return 0, &ErrInvalidInput{Field: "user_id", Reason: "must not be empty"}
	}

	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()
	state := s.loadState(ctx, userID)
	session := s.activeSession(ctx, userID)

	accepted := 0
	for _, in := range events {
		domain, err := resolveDomain(in.URL, in.Domain)
		if err != nil {
			continue
		}
		dwell := in.DurationSeconds
		if dwell < 0 {
			dwell = 0
		}

		verdict := s.classifyEvent(state, domain, in.Title, session)

		// A batched event is the completed visit; any portion already
		// folded in through live checks on the same page must not count
		// twice.
		delta := dwell
		if key := pageKey(domain, in.URL); key == state.CurrentPageKey {
			delta = accrueDwell(state, key, dwell)
			state.CurrentPageKey = ""
			state.CurrentPageDwell = 0
		}

		ev := pattern.Event{
			Domain:          domain,
			Title:           in.Title,
			URL:             in.URL,
			StartedAt:       now.Add(-time.Duration(delta) * time.Second),
			DurationSeconds: delta,
		}
		if session != nil {
			ev.SessionID = session.SessionID
		}
		s.extractor.Update(state, ev, verdict, now)

		if !s.queue.Enqueue(store.BrowsingEventData{
			UserID:           userID,
			URL:              in.URL,
			Domain:           domain,
			Title:            in.Title,
			DurationSeconds:  delta,
			Distraction:      verdict.Label == classify.LabelDistraction,
			Category:         string(verdict.Label),
			SessionID:        ev.SessionID,
		}) {
			state.LostEvents++
		}
		accepted++
	}

	s.maybeSnapshot(ctx, state)

	return accepted, nil
}

// ResponseResult reports the annotated intervention.
type ResponseResult struct {
	InterventionID string `json:"intervention_id"`
	Level          string `json:"level"`
	Response       string `json:"response"`
	Effective      bool   `json:"effective"`
}

var validResponses = map[string]bool{
	"complied":  true,
	"dismissed": true,
	"overrode":  true,
}

// RecordResponse annotates an intervention with how the user reacted
// and adjusts the user's sensitivity counters. Returns nil when no
// intervention with that ID exists.
func (s *Service) RecordResponse(ctx context.Context, interventionID, response string) (*ResponseResult, error) {
	if interventionID == "" {
		return nil, &ErrInvalidInput{Field: "intervention_id", Reason: "must not be empty"}
	}
	if !validResponses[response] {
		return nil, &ErrInvalidInput{Field: "response", Reason: "must be complied, dismissed, or overrode"}
	}

	rec, err := s.interventions.RecordResponse(ctx, interventionID, response)
	if err != nil {
		return nil, &ErrStateUnavailable{Err: err}
	}
	if rec == nil {
		return nil, nil
	}

	lock := s.locks.get(rec.UserID)
	lock.Lock()
	state := s.loadState(ctx, rec.UserID)
	state.RecordResponse(response)
	lock.Unlock()

	return &ResponseResult{
		InterventionID: rec.InterventionID,
		Level:          rec.Level,
		Response:       response,
		Effective:      rec.Effective != nil && *rec.Effective,
	}, nil
}

// StartSession declares a focus period. Any prior active session for
// the user is closed first.
func (s *Service) StartSession(ctx context.Context, userID, topic string, plannedMinutes int) (*store.SessionRecord, error) {
	if userID == "" {
		return nil, &ErrInvalidInput{Field: "user_id", Reason: "must not be empty"}
	}
	if plannedMinutes < 0 {
		return nil, &ErrInvalidInput{Field: "planned_duration_minutes", Reason: "must not be negative"}
	}

	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()
	data := store.SessionData{
		SessionID:              uuid.NewString(),
		UserID:                 userID,
		Topic:                  topic,
		StartedAt:              now,
		PlannedDurationMinutes: plannedMinutes,
	}
	if err := s.sessions.Start(ctx, data); err != nil {
		return nil, &ErrStateUnavailable{Err: err}
	}

	state := s.loadState(ctx, userID)
	state.SessionInterventions = 0

	rec, err := s.sessions.Active(ctx, userID)
	if err != nil {
		return nil, &ErrStateUnavailable{Err: err}
	}
	return rec, nil
}

// EndSession closes a session. Returns nil when the session does not
// exist.
func (s *Service) EndSession(ctx context.Context, sessionID string) (*store.SessionRecord, error) {
	if sessionID == "" {
		return nil, &ErrInvalidInput{Field: "session_id", Reason: "must not be empty"}
	}

	rec, err := s.sessions.End(ctx, sessionID, s.now())
	if err != nil {
		return nil, &ErrStateUnavailable{Err: err}
	}
	if rec == nil {
		return nil, nil
	}

	lock := s.locks.get(rec.UserID)
	lock.Lock()
	state := s.loadState(ctx, rec.UserID)
	state.SessionInterventions = 0
	lock.Unlock()

	return rec, nil
}

// DomainTime is time spent on one domain.
type DomainTime struct {
	Domain  string `json:"domain"`
	Seconds int    `json:"seconds"`
}

// Summary aggregates one user's day.
type Summary struct {
	UserID             string       `json:"user_id"`
	EventCount         int          `json:"event_count"`
	StudySeconds       int          `json:"study_seconds"`
	DistractionSeconds int          `json:"distraction_seconds"`
	NeutralSeconds     int          `json:"neutral_seconds"`
	Interventions      int          `json:"interventions"`
	FocusScore         float64      `json:"focus_score"`
	TopDistractions    []DomainTime `json:"top_distractions,omitempty"`
}

// TodaySummary aggregates the user's events and interventions since
// local midnight.
func (s *Service) TodaySummary(ctx context.Context, userID string) (*Summary, error) {
	if userID == "" {
		return nil, &ErrInvalidInput{Field: "user_id", Reason: "must not be empty"}
	}

	now := s.now()
	events, err := s.events.Today(ctx, userID, now)
	if err != nil {
		return nil, &ErrStateUnavailable{Err: err}
	}
	fired, err := s.interventions.CountToday(ctx, userID, now)
	if err != nil {
		return nil, &ErrStateUnavailable{Err: err}
	}

	sum := &Summary{UserID: userID, EventCount: len(events), Interventions: fired}
	perDomain := make(map[string]int)
	for _, e := range events {
		switch e.Category {
		case string(classify.LabelStudy):
			sum.StudySeconds += e.DurationSeconds
		case string(classify.LabelDistraction):
			sum.DistractionSeconds += e.DurationSeconds
			perDomain[e.Domain] += e.DurationSeconds
		default:
			sum.NeutralSeconds += e.DurationSeconds
		}
	}

	total := sum.StudySeconds + sum.DistractionSeconds + sum.NeutralSeconds
	if total > 0 {
		sum.FocusScore = 1 - float64(sum.DistractionSeconds)/float64(total)
	} else {
		sum.FocusScore = 1
	}

	for domain, secs := range perDomain {
		sum.TopDistractions = append(sum.TopDistractions, DomainTime{Domain: domain, Seconds: secs})
	}
	sort.Slice(sum.TopDistractions, func(i, j int) bool {
		if sum.TopDistractions[i].Seconds != sum.TopDistractions[j].Seconds {
			return sum.TopDistractions[i].Seconds > sum.TopDistractions[j].Seconds
		}
		return sum.TopDistractions[i].Domain < sum.TopDistractions[j].Domain
	})
	if len(sum.TopDistractions) > 5 {
		sum.TopDistractions = sum.TopDistractions[:5]
	}

	return sum, nil
}

// readCtx caps a store read on the check path so a hung store degrades
// to missing evidence instead of blocking the decision.
func (s *Service) readCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.cfg.StoreReadTimeout
	if timeout <= 0 {
		timeout = defaultStoreReadTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// activeSession looks up the user's active session, treating any store
// failure or timeout as no session.
func (s *Service) activeSession(ctx context.Context, userID string) *store.SessionRecord {
	rctx, cancel := s.readCtx(ctx)
	defer cancel()
	session, err := s.sessions.Active(rctx, userID)
	if err != nil {
		log.Printf("active session lookup for %s: %v", userID, err)
		return nil
	}
	return session
}

// pageKey identifies one page for dwell accrual. The URL distinguishes
// pages on the same domain; a bare-domain check keys on the domain alone.
func pageKey(domain, url string) string {
	return domain + "|" + url
}

// accrueDwell returns the portion of the reported dwell not yet folded
// into the state for this page and advances the tracker. A smaller dwell
// than last seen means a fresh visit to the same page and accrues in
// full. Callers must hold the user's lock.
func accrueDwell(state *pattern.State, key string, dwell int) int {
	delta := dwell
	if state.CurrentPageKey == key && dwell >= state.CurrentPageDwell {
		delta = dwell - state.CurrentPageDwell
	}
	state.CurrentPageKey = key
	state.CurrentPageDwell = dwell
	return delta
}

// noteLostEvent records a dropped persistence write against the user's
// state. Called only from the queue worker goroutine, never while the
// user's lock is held by the caller.
func (s *Service) noteLostEvent(userID string) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()
	if state, ok := s.states.peek(userID); ok {
		state.LostEvents++
	}
}

// loadState returns the in-memory state for a user, restoring from the
// latest snapshot on first access. A store failure yields a fresh state
// so checks degrade to conservative no-intervention behavior instead of
// erroring. Callers must hold the user's lock.
func (s *Service) loadState(ctx context.Context, userID string) *pattern.State {
	if state, ok := s.states.peek(userID); ok {
		return state
	}

	state := pattern.NewState(userID)
	rctx, cancel := s.readCtx(ctx)
	defer cancel()
	snap, err := s.snapshots.Latest(rctx, userID)
	if err != nil {
		log.Printf("restore state for %s: %v", userID, err)
	} else if snap != nil {
		if restored, err := stateFromMap(snap.Data); err != nil {
			log.Printf("decode snapshot for %s: %v", userID, err)
		} else {
			restored.UserID = userID
			state = restored
		}
	}

	s.states.put(userID, state)
	return state
}

// maybeSnapshot persists the state every SnapshotEvery checks.
// Best-effort: a failed snapshot is logged and retried at the next
// interval.
func (s *Service) maybeSnapshot(ctx context.Context, state *pattern.State) {
	n := s.states.bumpChecks(state.UserID)
	if s.cfg.SnapshotEvery <= 0 || n < s.cfg.SnapshotEvery {
		return
	}
	s.states.resetChecks(state.UserID)

	data, err := stateToMap(state)
	if err != nil {
		log.Printf("encode snapshot for %s: %v", state.UserID, err)
		return
	}
	snap := &store.Snapshot{
		UserID:    state.UserID,
		Timestamp: s.now(),
		Data:      data,
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		log.Printf("save snapshot for %s: %v", state.UserID, err)
		return
	}
	if err := s.snapshots.Prune(ctx, state.UserID, s.cfg.SnapshotKeep); err != nil {
		log.Printf("prune snapshots for %s: %v", state.UserID, err)
	}
}

// resolveDomain picks the explicit domain or extracts one from the URL.
// Explicit domains are normalized the same way extracted ones are, so
// "www.reddit.com" and "reddit.com" share one entry in the per-domain
// accounting.
func resolveDomain(url, domain string) (string, error) {
	if d := classify.NormalizeDomain(domain); d != "" {
		return d, nil
	}
	if url == "" {
		return "", &ErrInvalidInput{Field: "domain", Reason: "either url or domain must be set"}
	}
	d := classify.ExtractDomain(url)
	if d == "" {
		return "", &ErrInvalidInput{Field: "url", Reason: "no domain could be extracted"}
	}
	return d, nil
}

// stateToMap converts a pattern.State to map[string]any for ent JSON
// storage.
func stateToMap(state *pattern.State) (map[string]any, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// stateFromMap converts stored snapshot data back into a pattern.State.
func stateFromMap(m map[string]any) (*pattern.State, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var state pattern.State
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, err
	}
	if state.Domains == nil {
		state.Domains = make(map[string]*pattern.DomainStat)
	}
	return &state, nil
}
