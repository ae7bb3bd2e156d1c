package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// BrowsingEventData captures one page-view observation for append.
type BrowsingEventData struct {
	UserID           string
	URL              string
	Domain           string
	Title            string
	DurationSeconds  int
	Distraction      bool
	DistractionScore float64
	Category         string
	SessionID        string
}

// BrowsingEventRecord is a stored browsing event read back from the log.
type BrowsingEventRecord struct {
	ID               int
	Sequence         int64
	Timestamp        time.Time
	UserID           string
	URL              string
	Domain           string
	Title            string
	DurationSeconds  int
	Distraction      bool
	DistractionScore float64
	Category         string
	SessionID        string
}

// EventRepo provides append and query access to the browsing event log.
type EventRepo interface {
	// Append records a browsing event.
	Append(ctx context.Context, data BrowsingEventData) error

	// Query returns a user's browsing events matching opts, oldest first.
	Query(ctx context.Context, userID string, opts QueryOpts) ([]BrowsingEventRecord, error)

	// Today returns all of a user's events since local midnight, oldest first.
	Today(ctx context.Context, userID string, now time.Time) ([]BrowsingEventRecord, error)
}

// InterventionData captures a fired intervention for append.
type InterventionData struct {
	InterventionID             string
	UserID                     string
	Level                      string
	TriggerDomain              string
	TriggerURL                 string
	DurationOnDistractionSecs  int
	DistractionScore           float64
	SessionID                  string
}

// InterventionRecord is a stored intervention read back from the log.
type InterventionRecord struct {
	ID                        int
	Sequence                  int64
	Timestamp                 time.Time
	InterventionID            string
	UserID                    string
	Level                     string
	TriggerDomain             string
	TriggerURL                string
	DurationOnDistractionSecs int
	DistractionScore          float64
	SessionID                 string
	UserResponse              string
	Effective                 *bool
}

// InterventionRepo manages the intervention log.
type InterventionRepo interface {
	// Append records a fired intervention.
	Append(ctx context.Context, data InterventionData) error

	// RecordResponse annotates an intervention with the user's reaction.
	// Returns nil if no intervention with that ID exists.
	RecordResponse(ctx context.Context, interventionID, response string) (*InterventionRecord, error)

	// CountToday returns how many interventions fired for the user since
	// local midnight.
	CountToday(ctx context.Context, userID string, now time.Time) (int, error)

	// Today returns the user's interventions since local midnight, oldest first.
	Today(ctx context.Context, userID string, now time.Time) ([]InterventionRecord, error)
}

// SessionData captures a new study session for creation.
type SessionData struct {
	SessionID              string
	UserID                 string
	Topic                  string
	StartedAt              time.Time
	PlannedDurationMinutes int
}

// SessionRecord is a stored study session.
type SessionRecord struct {
	ID                     int
	SessionID              string
	UserID                 string
	Topic                  string
	StartedAt              time.Time
	EndedAt                *time.Time
	PlannedDurationMinutes int
	Active                 bool
}

// SessionRepo manages study session lifecycle rows.
type SessionRepo interface {
	// Start creates a new active session, closing any prior active session
	// for the same user first.
	Start(ctx context.Context, data SessionData) error

	// End closes the session with the given ID. Returns nil if no such
	// session exists.
	End(ctx context.Context, sessionID string, endedAt time.Time) (*SessionRecord, error)

	// Active returns the user's current active session, or nil if none.
	Active(ctx context.Context, userID string) (*SessionRecord, error)
}

// Snapshot represents a point-in-time capture of one user's pattern state.
type Snapshot struct {
	ID        int
	UserID    string
	Sequence  int64
	Timestamp time.Time
	Data      map[string]any
}

// SnapshotRepo manages pattern state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the user's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// Prune deletes all but the user's N most recent snapshots.
	Prune(ctx context.Context, userID string, keep int) error
}

// startOfDay returns local midnight for the day containing t.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
