// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptifocus/adaptifocus/ent/browsingevent"
	"github.com/adaptifocus/adaptifocus/ent/interventionevent"
	"github.com/adaptifocus/adaptifocus/ent/patternsnapshot"
	"github.com/adaptifocus/adaptifocus/ent/predicate"
	"github.com/adaptifocus/adaptifocus/ent/studysession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBrowsingEvent     = "BrowsingEvent"
	TypeInterventionEvent = "InterventionEvent"
	TypePatternSnapshot   = "PatternSnapshot"
	TypeStudySession      = "StudySession"
)

// BrowsingEventMutation represents an operation that mutates the BrowsingEvent nodes in the graph.
type BrowsingEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	sequence             *int64
	addsequence          *int64
	timestamp            *time.Time
	user_id              *string
	url                  *string
	domain               *string
	title                *string
	duration_seconds     *int
	addduration_seconds  *int
	distraction          *bool
	distraction_score    *float64
	adddistraction_score *float64
	category             *string
	session_id           *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*BrowsingEvent, error)
	predicates           []predicate.BrowsingEvent
}

var _ ent.Mutation = (*BrowsingEventMutation)(nil)

// browsingeventOption allows management of the mutation configuration using functional options.
type browsingeventOption func(*BrowsingEventMutation)

// newBrowsingEventMutation creates new mutation for the BrowsingEvent entity.
func newBrowsingEventMutation(c config, op Op, opts ...browsingeventOption) *BrowsingEventMutation {
	m := &BrowsingEventMutation{
		config:        c,
		op:            op,
		typ:           TypeBrowsingEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBrowsingEventID sets the ID field of the mutation.
func withBrowsingEventID(id int) browsingeventOption {
	return func(m *BrowsingEventMutation) {
		var (
			err   error
			once  sync.Once
			value *BrowsingEvent
		)
		m.oldValue = func(ctx context.Context) (*BrowsingEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BrowsingEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBrowsingEvent sets the old BrowsingEvent of the mutation.
func withBrowsingEvent(node *BrowsingEvent) browsingeventOption {
	return func(m *BrowsingEventMutation) {
		m.oldValue = func(context.Context) (*BrowsingEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BrowsingEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BrowsingEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BrowsingEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BrowsingEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BrowsingEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *BrowsingEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *BrowsingEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *BrowsingEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *BrowsingEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *BrowsingEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *BrowsingEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *BrowsingEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *BrowsingEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *BrowsingEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BrowsingEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BrowsingEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetURL sets the "url" field.
func (m *BrowsingEventMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *BrowsingEventMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *BrowsingEventMutation) ClearURL() {
	m.url = nil
	m.clearedFields[browsingevent.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *BrowsingEventMutation) URLCleared() bool {
	_, ok := m.clearedFields[browsingevent.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *BrowsingEventMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, browsingevent.FieldURL)
}

// SetDomain sets the "domain" field.
func (m *BrowsingEventMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *BrowsingEventMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *BrowsingEventMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[browsingevent.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *BrowsingEventMutation) DomainCleared() bool {
	_, ok := m.clearedFields[browsingevent.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *BrowsingEventMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, browsingevent.FieldDomain)
}

// SetTitle sets the "title" field.
func (m *BrowsingEventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *BrowsingEventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *BrowsingEventMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[browsingevent.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *BrowsingEventMutation) TitleCleared() bool {
	_, ok := m.clearedFields[browsingevent.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *BrowsingEventMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, browsingevent.FieldTitle)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *BrowsingEventMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *BrowsingEventMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *BrowsingEventMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *BrowsingEventMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *BrowsingEventMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetDistraction sets the "distraction" field.
func (m *BrowsingEventMutation) SetDistraction(b bool) {
	m.distraction = &b
}

// Distraction returns the value of the "distraction" field in the mutation.
func (m *BrowsingEventMutation) Distraction() (r bool, exists bool) {
	v := m.distraction
	if v == nil {
		return
	}
	return *v, true
}

// OldDistraction returns the old "distraction" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldDistraction(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistraction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistraction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistraction: %w", err)
	}
	return oldValue.Distraction, nil
}

// ResetDistraction resets all changes to the "distraction" field.
func (m *BrowsingEventMutation) ResetDistraction() {
	m.distraction = nil
}

// SetDistractionScore sets the "distraction_score" field.
func (m *BrowsingEventMutation) SetDistractionScore(f float64) {
	m.distraction_score = &f
	m.adddistraction_score = nil
}

// DistractionScore returns the value of the "distraction_score" field in the mutation.
func (m *BrowsingEventMutation) DistractionScore() (r float64, exists bool) {
	v := m.distraction_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDistractionScore returns the old "distraction_score" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldDistractionScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistractionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistractionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistractionScore: %w", err)
	}
	return oldValue.DistractionScore, nil
}

// AddDistractionScore adds f to the "distraction_score" field.
func (m *BrowsingEventMutation) AddDistractionScore(f float64) {
	if m.adddistraction_score != nil {
		*m.adddistraction_score += f
	} else {
		m.adddistraction_score = &f
	}
}

// AddedDistractionScore returns the value that was added to the "distraction_score" field in this mutation.
func (m *BrowsingEventMutation) AddedDistractionScore() (r float64, exists bool) {
	v := m.adddistraction_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetDistractionScore resets all changes to the "distraction_score" field.
func (m *BrowsingEventMutation) ResetDistractionScore() {
	m.distraction_score = nil
	m.adddistraction_score = nil
}

// SetCategory sets the "category" field.
func (m *BrowsingEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *BrowsingEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *BrowsingEventMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[browsingevent.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *BrowsingEventMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[browsingevent.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *BrowsingEventMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, browsingevent.FieldCategory)
}

// SetSessionID sets the "session_id" field.
func (m *BrowsingEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *BrowsingEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the BrowsingEvent entity.
// If the BrowsingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrowsingEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *BrowsingEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[browsingevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *BrowsingEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[browsingevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *BrowsingEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, browsingevent.FieldSessionID)
}

// Where appends a list predicates to the BrowsingEventMutation builder.
func (m *BrowsingEventMutation) Where(ps ...predicate.BrowsingEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BrowsingEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BrowsingEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BrowsingEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BrowsingEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BrowsingEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BrowsingEvent).
func (m *BrowsingEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BrowsingEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, browsingevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, browsingevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, browsingevent.FieldUserID)
	}
	if m.url != nil {
		fields = append(fields, browsingevent.FieldURL)
	}
	if m.domain != nil {
		fields = append(fields, browsingevent.FieldDomain)
	}
	if m.title != nil {
		fields = append(fields, browsingevent.FieldTitle)
	}
	if m.duration_seconds != nil {
		fields = append(fields, browsingevent.FieldDurationSeconds)
	}
	if m.distraction != nil {
		fields = append(fields, browsingevent.FieldDistraction)
	}
	if m.distraction_score != nil {
		fields = append(fields, browsingevent.FieldDistractionScore)
	}
	if m.category != nil {
		fields = append(fields, browsingevent.FieldCategory)
	}
	if m.session_id != nil {
		fields = append(fields, browsingevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BrowsingEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case browsingevent.FieldSequence:
		return m.Sequence()
	case browsingevent.FieldTimestamp:
		return m.Timestamp()
	case browsingevent.FieldUserID:
		return m.UserID()
	case browsingevent.FieldURL:
		return m.URL()
	case browsingevent.FieldDomain:
		return m.Domain()
	case browsingevent.FieldTitle:
		return m.Title()
	case browsingevent.FieldDurationSeconds:
		return m.DurationSeconds()
	case browsingevent.FieldDistraction:
		return m.Distraction()
	case browsingevent.FieldDistractionScore:
		return m.DistractionScore()
	case browsingevent.FieldCategory:
		return m.Category()
	case browsingevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BrowsingEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case browsingevent.FieldSequence:
		return m.OldSequence(ctx)
	case browsingevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case browsingevent.FieldUserID:
		return m.OldUserID(ctx)
	case browsingevent.FieldURL:
		return m.OldURL(ctx)
	case browsingevent.FieldDomain:
		return m.OldDomain(ctx)
	case browsingevent.FieldTitle:
		return m.OldTitle(ctx)
	case browsingevent.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case browsingevent.FieldDistraction:
		return m.OldDistraction(ctx)
	case browsingevent.FieldDistractionScore:
		return m.OldDistractionScore(ctx)
	case browsingevent.FieldCategory:
		return m.OldCategory(ctx)
	case browsingevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown BrowsingEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BrowsingEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case browsingevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case browsingevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case browsingevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case browsingevent.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case browsingevent.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case browsingevent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case browsingevent.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case browsingevent.FieldDistraction:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistraction(v)
		return nil
	case browsingevent.FieldDistractionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistractionScore(v)
		return nil
	case browsingevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case browsingevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown BrowsingEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BrowsingEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, browsingevent.FieldSequence)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, browsingevent.FieldDurationSeconds)
	}
	if m.adddistraction_score != nil {
		fields = append(fields, browsingevent.FieldDistractionScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BrowsingEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case browsingevent.FieldSequence:
		return m.AddedSequence()
	case browsingevent.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case browsingevent.FieldDistractionScore:
		return m.AddedDistractionScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BrowsingEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case browsingevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case browsingevent.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case browsingevent.FieldDistractionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistractionScore(v)
		return nil
	}
	return fmt.Errorf("unknown BrowsingEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BrowsingEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(browsingevent.FieldURL) {
		fields = append(fields, browsingevent.FieldURL)
	}
	if m.FieldCleared(browsingevent.FieldDomain) {
		fields = append(fields, browsingevent.FieldDomain)
	}
	if m.FieldCleared(browsingevent.FieldTitle) {
		fields = append(fields, browsingevent.FieldTitle)
	}
	if m.FieldCleared(browsingevent.FieldCategory) {
		fields = append(fields, browsingevent.FieldCategory)
	}
	if m.FieldCleared(browsingevent.FieldSessionID) {
		fields = append(fields, browsingevent.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BrowsingEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BrowsingEventMutation) ClearField(name string) error {
	switch name {
	case browsingevent.FieldURL:
		m.ClearURL()
		return nil
	case browsingevent.FieldDomain:
		m.ClearDomain()
		return nil
	case browsingevent.FieldTitle:
		m.ClearTitle()
		return nil
	case browsingevent.FieldCategory:
		m.ClearCategory()
		return nil
	case browsingevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown BrowsingEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BrowsingEventMutation) ResetField(name string) error {
	switch name {
	case browsingevent.FieldSequence:
		m.ResetSequence()
		return nil
	case browsingevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case browsingevent.FieldUserID:
		m.ResetUserID()
		return nil
	case browsingevent.FieldURL:
		m.ResetURL()
		return nil
	case browsingevent.FieldDomain:
		m.ResetDomain()
		return nil
	case browsingevent.FieldTitle:
		m.ResetTitle()
		return nil
	case browsingevent.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case browsingevent.FieldDistraction:
		m.ResetDistraction()
		return nil
	case browsingevent.FieldDistractionScore:
		m.ResetDistractionScore()
		return nil
	case browsingevent.FieldCategory:
		m.ResetCategory()
		return nil
	case browsingevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown BrowsingEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BrowsingEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BrowsingEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BrowsingEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BrowsingEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BrowsingEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BrowsingEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BrowsingEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BrowsingEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BrowsingEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BrowsingEvent edge %s", name)
}

// InterventionEventMutation represents an operation that mutates the InterventionEvent nodes in the graph.
type InterventionEventMutation struct {
	config
	op                                 Op
	typ                                string
	id                                 *int
	sequence                           *int64
	addsequence                        *int64
	timestamp                          *time.Time
	intervention_id                    *string
	user_id                            *string
	level                              *string
	trigger_domain                     *string
	trigger_url                        *string
	duration_on_distraction_seconds    *int
	addduration_on_distraction_seconds *int
	distraction_score                  *float64
	adddistraction_score               *float64
	session_id                         *string
	user_response                      *string
	effective                          *bool
	clearedFields                      map[string]struct{}
	done                               bool
	oldValue                           func(context.Context) (*InterventionEvent, error)
	predicates                         []predicate.InterventionEvent
}

var _ ent.Mutation = (*InterventionEventMutation)(nil)

// interventioneventOption allows management of the mutation configuration using functional options.
type interventioneventOption func(*InterventionEventMutation)

// newInterventionEventMutation creates new mutation for the InterventionEvent entity.
func newInterventionEventMutation(c config, op Op, opts ...interventioneventOption) *InterventionEventMutation {
	m := &InterventionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeInterventionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterventionEventID sets the ID field of the mutation.
func withInterventionEventID(id int) interventioneventOption {
	return func(m *InterventionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *InterventionEvent
		)
		m.oldValue = func(ctx context.Context) (*InterventionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterventionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterventionEvent sets the old InterventionEvent of the mutation.
func withInterventionEvent(node *InterventionEvent) interventioneventOption {
	return func(m *InterventionEventMutation) {
		m.oldValue = func(context.Context) (*InterventionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterventionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterventionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterventionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterventionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterventionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *InterventionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *InterventionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *InterventionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *InterventionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *InterventionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *InterventionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *InterventionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *InterventionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetInterventionID sets the "intervention_id" field.
func (m *InterventionEventMutation) SetInterventionID(s string) {
	m.intervention_id = &s
}

// InterventionID returns the value of the "intervention_id" field in the mutation.
func (m *InterventionEventMutation) InterventionID() (r string, exists bool) {
	v := m.intervention_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInterventionID returns the old "intervention_id" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldInterventionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterventionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterventionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterventionID: %w", err)
	}
	return oldValue.InterventionID, nil
}

// ResetInterventionID resets all changes to the "intervention_id" field.
func (m *InterventionEventMutation) ResetInterventionID() {
	m.intervention_id = nil
}

// SetUserID sets the "user_id" field.
func (m *InterventionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InterventionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InterventionEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetLevel sets the "level" field.
func (m *InterventionEventMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *InterventionEventMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *InterventionEventMutation) ResetLevel() {
	m.level = nil
}

// SetTriggerDomain sets the "trigger_domain" field.
func (m *InterventionEventMutation) SetTriggerDomain(s string) {
	m.trigger_domain = &s
}

// TriggerDomain returns the value of the "trigger_domain" field in the mutation.
func (m *InterventionEventMutation) TriggerDomain() (r string, exists bool) {
	v := m.trigger_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerDomain returns the old "trigger_domain" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldTriggerDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerDomain: %w", err)
	}
	return oldValue.TriggerDomain, nil
}

// ClearTriggerDomain clears the value of the "trigger_domain" field.
func (m *InterventionEventMutation) ClearTriggerDomain() {
	m.trigger_domain = nil
	m.clearedFields[interventionevent.FieldTriggerDomain] = struct{}{}
}

// TriggerDomainCleared returns if the "trigger_domain" field was cleared in this mutation.
func (m *InterventionEventMutation) TriggerDomainCleared() bool {
	_, ok := m.clearedFields[interventionevent.FieldTriggerDomain]
	return ok
}

// ResetTriggerDomain resets all changes to the "trigger_domain" field.
func (m *InterventionEventMutation) ResetTriggerDomain() {
	m.trigger_domain = nil
	delete(m.clearedFields, interventionevent.FieldTriggerDomain)
}

// SetTriggerURL sets the "trigger_url" field.
func (m *InterventionEventMutation) SetTriggerURL(s string) {
	m.trigger_url = &s
}

// TriggerURL returns the value of the "trigger_url" field in the mutation.
func (m *InterventionEventMutation) TriggerURL() (r string, exists bool) {
	v := m.trigger_url
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerURL returns the old "trigger_url" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldTriggerURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerURL: %w", err)
	}
	return oldValue.TriggerURL, nil
}

// ClearTriggerURL clears the value of the "trigger_url" field.
func (m *InterventionEventMutation) ClearTriggerURL() {
	m.trigger_url = nil
	m.clearedFields[interventionevent.FieldTriggerURL] = struct{}{}
}

// TriggerURLCleared returns if the "trigger_url" field was cleared in this mutation.
func (m *InterventionEventMutation) TriggerURLCleared() bool {
	_, ok := m.clearedFields[interventionevent.FieldTriggerURL]
	return ok
}

// ResetTriggerURL resets all changes to the "trigger_url" field.
func (m *InterventionEventMutation) ResetTriggerURL() {
	m.trigger_url = nil
	delete(m.clearedFields, interventionevent.FieldTriggerURL)
}

// SetDurationOnDistractionSeconds sets the "duration_on_distraction_seconds" field.
func (m *InterventionEventMutation) SetDurationOnDistractionSeconds(i int) {
	m.duration_on_distraction_seconds = &i
	m.addduration_on_distraction_seconds = nil
}

// DurationOnDistractionSeconds returns the value of the "duration_on_distraction_seconds" field in the mutation.
func (m *InterventionEventMutation) DurationOnDistractionSeconds() (r int, exists bool) {
	v := m.duration_on_distraction_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationOnDistractionSeconds returns the old "duration_on_distraction_seconds" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldDurationOnDistractionSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationOnDistractionSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationOnDistractionSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationOnDistractionSeconds: %w", err)
	}
	return oldValue.DurationOnDistractionSeconds, nil
}

// AddDurationOnDistractionSeconds adds i to the "duration_on_distraction_seconds" field.
func (m *InterventionEventMutation) AddDurationOnDistractionSeconds(i int) {
	if m.addduration_on_distraction_seconds != nil {
		*m.addduration_on_distraction_seconds += i
	} else {
		m.addduration_on_distraction_seconds = &i
	}
}

// AddedDurationOnDistractionSeconds returns the value that was added to the "duration_on_distraction_seconds" field in this mutation.
func (m *InterventionEventMutation) AddedDurationOnDistractionSeconds() (r int, exists bool) {
	v := m.addduration_on_distraction_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationOnDistractionSeconds resets all changes to the "duration_on_distraction_seconds" field.
func (m *InterventionEventMutation) ResetDurationOnDistractionSeconds() {
	m.duration_on_distraction_seconds = nil
	m.addduration_on_distraction_seconds = nil
}

// SetDistractionScore sets the "distraction_score" field.
func (m *InterventionEventMutation) SetDistractionScore(f float64) {
	m.distraction_score = &f
	m.adddistraction_score = nil
}

// DistractionScore returns the value of the "distraction_score" field in the mutation.
func (m *InterventionEventMutation) DistractionScore() (r float64, exists bool) {
	v := m.distraction_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDistractionScore returns the old "distraction_score" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldDistractionScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistractionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistractionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistractionScore: %w", err)
	}
	return oldValue.DistractionScore, nil
}

// AddDistractionScore adds f to the "distraction_score" field.
func (m *InterventionEventMutation) AddDistractionScore(f float64) {
	if m.adddistraction_score != nil {
		*m.adddistraction_score += f
	} else {
		m.adddistraction_score = &f
	}
}

// AddedDistractionScore returns the value that was added to the "distraction_score" field in this mutation.
func (m *InterventionEventMutation) AddedDistractionScore() (r float64, exists bool) {
	v := m.adddistraction_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetDistractionScore resets all changes to the "distraction_score" field.
func (m *InterventionEventMutation) ResetDistractionScore() {
	m.distraction_score = nil
	m.adddistraction_score = nil
}

// SetSessionID sets the "session_id" field.
func (m *InterventionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InterventionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *InterventionEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[interventionevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *InterventionEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[interventionevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InterventionEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, interventionevent.FieldSessionID)
}

// SetUserResponse sets the "user_response" field.
func (m *InterventionEventMutation) SetUserResponse(s string) {
	m.user_response = &s
}

// UserResponse returns the value of the "user_response" field in the mutation.
func (m *InterventionEventMutation) UserResponse() (r string, exists bool) {
	v := m.user_response
	if v == nil {
		return
	}
	return *v, true
}

// OldUserResponse returns the old "user_response" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldUserResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserResponse: %w", err)
	}
	return oldValue.UserResponse, nil
}

// ClearUserResponse clears the value of the "user_response" field.
func (m *InterventionEventMutation) ClearUserResponse() {
	m.user_response = nil
	m.clearedFields[interventionevent.FieldUserResponse] = struct{}{}
}

// UserResponseCleared returns if the "user_response" field was cleared in this mutation.
func (m *InterventionEventMutation) UserResponseCleared() bool {
	_, ok := m.clearedFields[interventionevent.FieldUserResponse]
	return ok
}

// ResetUserResponse resets all changes to the "user_response" field.
func (m *InterventionEventMutation) ResetUserResponse() {
	m.user_response = nil
	delete(m.clearedFields, interventionevent.FieldUserResponse)
}

// SetEffective sets the "effective" field.
func (m *InterventionEventMutation) SetEffective(b bool) {
	m.effective = &b
}

// Effective returns the value of the "effective" field in the mutation.
func (m *InterventionEventMutation) Effective() (r bool, exists bool) {
	v := m.effective
	if v == nil {
		return
	}
	return *v, true
}

// OldEffective returns the old "effective" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldEffective(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffective is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffective requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffective: %w", err)
	}
	return oldValue.Effective, nil
}

// ClearEffective clears the value of the "effective" field.
func (m *InterventionEventMutation) ClearEffective() {
	m.effective = nil
	m.clearedFields[interventionevent.FieldEffective] = struct{}{}
}

// EffectiveCleared returns if the "effective" field was cleared in this mutation.
func (m *InterventionEventMutation) EffectiveCleared() bool {
	_, ok := m.clearedFields[interventionevent.FieldEffective]
	return ok
}

// ResetEffective resets all changes to the "effective" field.
func (m *InterventionEventMutation) ResetEffective() {
	m.effective = nil
	delete(m.clearedFields, interventionevent.FieldEffective)
}

// Where appends a list predicates to the InterventionEventMutation builder.
func (m *InterventionEventMutation) Where(ps ...predicate.InterventionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterventionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterventionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterventionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterventionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterventionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterventionEvent).
func (m *InterventionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterventionEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, interventionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, interventionevent.FieldTimestamp)
	}
	if m.intervention_id != nil {
		fields = append(fields, interventionevent.FieldInterventionID)
	}
	if m.user_id != nil {
		fields = append(fields, interventionevent.FieldUserID)
	}
	if m.level != nil {
		fields = append(fields, interventionevent.FieldLevel)
	}
	if m.trigger_domain != nil {
		fields = append(fields, interventionevent.FieldTriggerDomain)
	}
	if m.trigger_url != nil {
		fields = append(fields, interventionevent.FieldTriggerURL)
	}
	if m.duration_on_distraction_seconds != nil {
		fields = append(fields, interventionevent.FieldDurationOnDistractionSeconds)
	}
	if m.distraction_score != nil {
		fields = append(fields, interventionevent.FieldDistractionScore)
	}
	if m.session_id != nil {
		fields = append(fields, interventionevent.FieldSessionID)
	}
	if m.user_response != nil {
		fields = append(fields, interventionevent.FieldUserResponse)
	}
	if m.effective != nil {
		fields = append(fields, interventionevent.FieldEffective)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterventionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interventionevent.FieldSequence:
		return m.Sequence()
	case interventionevent.FieldTimestamp:
		return m.Timestamp()
	case interventionevent.FieldInterventionID:
		return m.InterventionID()
	case interventionevent.FieldUserID:
		return m.UserID()
	case interventionevent.FieldLevel:
		return m.Level()
	case interventionevent.FieldTriggerDomain:
		return m.TriggerDomain()
	case interventionevent.FieldTriggerURL:
		return m.TriggerURL()
	case interventionevent.FieldDurationOnDistractionSeconds:
		return m.DurationOnDistractionSeconds()
	case interventionevent.FieldDistractionScore:
		return m.DistractionScore()
	case interventionevent.FieldSessionID:
		return m.SessionID()
	case interventionevent.FieldUserResponse:
		return m.UserResponse()
	case interventionevent.FieldEffective:
		return m.Effective()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterventionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interventionevent.FieldSequence:
		return m.OldSequence(ctx)
	case interventionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case interventionevent.FieldInterventionID:
		return m.OldInterventionID(ctx)
	case interventionevent.FieldUserID:
		return m.OldUserID(ctx)
	case interventionevent.FieldLevel:
		return m.OldLevel(ctx)
	case interventionevent.FieldTriggerDomain:
		return m.OldTriggerDomain(ctx)
	case interventionevent.FieldTriggerURL:
		return m.OldTriggerURL(ctx)
	case interventionevent.FieldDurationOnDistractionSeconds:
		return m.OldDurationOnDistractionSeconds(ctx)
	case interventionevent.FieldDistractionScore:
		return m.OldDistractionScore(ctx)
	case interventionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case interventionevent.FieldUserResponse:
		return m.OldUserResponse(ctx)
	case interventionevent.FieldEffective:
		return m.OldEffective(ctx)
	}
	return nil, fmt.Errorf("unknown InterventionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterventionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interventionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case interventionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case interventionevent.FieldInterventionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterventionID(v)
		return nil
	case interventionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interventionevent.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case interventionevent.FieldTriggerDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerDomain(v)
		return nil
	case interventionevent.FieldTriggerURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerURL(v)
		return nil
	case interventionevent.FieldDurationOnDistractionSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationOnDistractionSeconds(v)
		return nil
	case interventionevent.FieldDistractionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistractionScore(v)
		return nil
	case interventionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case interventionevent.FieldUserResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserResponse(v)
		return nil
	case interventionevent.FieldEffective:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffective(v)
		return nil
	}
	return fmt.Errorf("unknown InterventionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterventionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, interventionevent.FieldSequence)
	}
	if m.addduration_on_distraction_seconds != nil {
		fields = append(fields, interventionevent.FieldDurationOnDistractionSeconds)
	}
	if m.adddistraction_score != nil {
		fields = append(fields, interventionevent.FieldDistractionScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterventionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interventionevent.FieldSequence:
		return m.AddedSequence()
	case interventionevent.FieldDurationOnDistractionSeconds:
		return m.AddedDurationOnDistractionSeconds()
	case interventionevent.FieldDistractionScore:
		return m.AddedDistractionScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterventionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interventionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case interventionevent.FieldDurationOnDistractionSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationOnDistractionSeconds(v)
		return nil
	case interventionevent.FieldDistractionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistractionScore(v)
		return nil
	}
	return fmt.Errorf("unknown InterventionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterventionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interventionevent.FieldTriggerDomain) {
		fields = append(fields, interventionevent.FieldTriggerDomain)
	}
	if m.FieldCleared(interventionevent.FieldTriggerURL) {
		fields = append(fields, interventionevent.FieldTriggerURL)
	}
	if m.FieldCleared(interventionevent.FieldSessionID) {
		fields = append(fields, interventionevent.FieldSessionID)
	}
	if m.FieldCleared(interventionevent.FieldUserResponse) {
		fields = append(fields, interventionevent.FieldUserResponse)
	}
	if m.FieldCleared(interventionevent.FieldEffective) {
		fields = append(fields, interventionevent.FieldEffective)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterventionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterventionEventMutation) ClearField(name string) error {
	switch name {
	case interventionevent.FieldTriggerDomain:
		m.ClearTriggerDomain()
		return nil
	case interventionevent.FieldTriggerURL:
		m.ClearTriggerURL()
		return nil
	case interventionevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	case interventionevent.FieldUserResponse:
		m.ClearUserResponse()
		return nil
	case interventionevent.FieldEffective:
		m.ClearEffective()
		return nil
	}
	return fmt.Errorf("unknown InterventionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterventionEventMutation) ResetField(name string) error {
	switch name {
	case interventionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case interventionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case interventionevent.FieldInterventionID:
		m.ResetInterventionID()
		return nil
	case interventionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case interventionevent.FieldLevel:
		m.ResetLevel()
		return nil
	case interventionevent.FieldTriggerDomain:
		m.ResetTriggerDomain()
		return nil
	case interventionevent.FieldTriggerURL:
		m.ResetTriggerURL()
		return nil
	case interventionevent.FieldDurationOnDistractionSeconds:
		m.ResetDurationOnDistractionSeconds()
		return nil
	case interventionevent.FieldDistractionScore:
		m.ResetDistractionScore()
		return nil
	case interventionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case interventionevent.FieldUserResponse:
		m.ResetUserResponse()
		return nil
	case interventionevent.FieldEffective:
		m.ResetEffective()
		return nil
	}
	return fmt.Errorf("unknown InterventionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterventionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterventionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterventionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterventionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterventionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterventionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterventionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InterventionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterventionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InterventionEvent edge %s", name)
}

// PatternSnapshotMutation represents an operation that mutates the PatternSnapshot nodes in the graph.
type PatternSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PatternSnapshot, error)
	predicates    []predicate.PatternSnapshot
}

var _ ent.Mutation = (*PatternSnapshotMutation)(nil)

// patternsnapshotOption allows management of the mutation configuration using functional options.
type patternsnapshotOption func(*PatternSnapshotMutation)

// newPatternSnapshotMutation creates new mutation for the PatternSnapshot entity.
func newPatternSnapshotMutation(c config, op Op, opts ...patternsnapshotOption) *PatternSnapshotMutation {
	m := &PatternSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypePatternSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatternSnapshotID sets the ID field of the mutation.
func withPatternSnapshotID(id int) patternsnapshotOption {
	return func(m *PatternSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *PatternSnapshot
		)
		m.oldValue = func(ctx context.Context) (*PatternSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatternSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatternSnapshot sets the old PatternSnapshot of the mutation.
func withPatternSnapshot(node *PatternSnapshot) patternsnapshotOption {
	return func(m *PatternSnapshotMutation) {
		m.oldValue = func(context.Context) (*PatternSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatternSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatternSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatternSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatternSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatternSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PatternSnapshotMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatternSnapshotMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PatternSnapshot entity.
// If the PatternSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternSnapshotMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatternSnapshotMutation) ResetUserID() {
	m.user_id = nil
}

// SetSequence sets the "sequence" field.
func (m *PatternSnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PatternSnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PatternSnapshot entity.
// If the PatternSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternSnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PatternSnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PatternSnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PatternSnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PatternSnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PatternSnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PatternSnapshot entity.
// If the PatternSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternSnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PatternSnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *PatternSnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *PatternSnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the PatternSnapshot entity.
// If the PatternSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternSnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *PatternSnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the PatternSnapshotMutation builder.
func (m *PatternSnapshotMutation) Where(ps ...predicate.PatternSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatternSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatternSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatternSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatternSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatternSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatternSnapshot).
func (m *PatternSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatternSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, patternsnapshot.FieldUserID)
	}
	if m.sequence != nil {
		fields = append(fields, patternsnapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, patternsnapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, patternsnapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatternSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patternsnapshot.FieldUserID:
		return m.UserID()
	case patternsnapshot.FieldSequence:
		return m.Sequence()
	case patternsnapshot.FieldTimestamp:
		return m.Timestamp()
	case patternsnapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatternSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patternsnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case patternsnapshot.FieldSequence:
		return m.OldSequence(ctx)
	case patternsnapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case patternsnapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown PatternSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patternsnapshot.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patternsnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case patternsnapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case patternsnapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown PatternSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatternSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, patternsnapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatternSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patternsnapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patternsnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown PatternSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatternSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatternSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatternSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PatternSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatternSnapshotMutation) ResetField(name string) error {
	switch name {
	case patternsnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case patternsnapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case patternsnapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case patternsnapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown PatternSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatternSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatternSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatternSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatternSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatternSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatternSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatternSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PatternSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatternSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PatternSnapshot edge %s", name)
}

// StudySessionMutation represents an operation that mutates the StudySession nodes in the graph.
type StudySessionMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	session_id                  *string
	user_id                     *string
	topic                       *string
	started_at                  *time.Time
	ended_at                    *time.Time
	planned_duration_minutes    *int
	addplanned_duration_minutes *int
	active                      *bool
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*StudySession, error)
	predicates                  []predicate.StudySession
}

var _ ent.Mutation = (*StudySessionMutation)(nil)

// studysessionOption allows management of the mutation configuration using functional options.
type studysessionOption func(*StudySessionMutation)

// newStudySessionMutation creates new mutation for the StudySession entity.
func newStudySessionMutation(c config, op Op, opts ...studysessionOption) *StudySessionMutation {
	m := &StudySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStudySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudySessionID sets the ID field of the mutation.
func withStudySessionID(id int) studysessionOption {
	return func(m *StudySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StudySession
		)
		m.oldValue = func(ctx context.Context) (*StudySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudySession sets the old StudySession of the mutation.
func withStudySession(node *StudySession) studysessionOption {
	return func(m *StudySessionMutation) {
		m.oldValue = func(context.Context) (*StudySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudySessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudySessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *StudySessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StudySessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StudySessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *StudySessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StudySessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StudySessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetTopic sets the "topic" field.
func (m *StudySessionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *StudySessionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *StudySessionMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[studysession.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *StudySessionMutation) TopicCleared() bool {
	_, ok := m.clearedFields[studysession.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *StudySessionMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, studysession.FieldTopic)
}

// SetStartedAt sets the "started_at" field.
func (m *StudySessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StudySessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StudySessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *StudySessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *StudySessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *StudySessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[studysession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *StudySessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *StudySessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, studysession.FieldEndedAt)
}

// SetPlannedDurationMinutes sets the "planned_duration_minutes" field.
func (m *StudySessionMutation) SetPlannedDurationMinutes(i int) {
	m.planned_duration_minutes = &i
	m.addplanned_duration_minutes = nil
}

// PlannedDurationMinutes returns the value of the "planned_duration_minutes" field in the mutation.
func (m *StudySessionMutation) PlannedDurationMinutes() (r int, exists bool) {
	v := m.planned_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedDurationMinutes returns the old "planned_duration_minutes" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldPlannedDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedDurationMinutes: %w", err)
	}
	return oldValue.PlannedDurationMinutes, nil
}

// AddPlannedDurationMinutes adds i to the "planned_duration_minutes" field.
func (m *StudySessionMutation) AddPlannedDurationMinutes(i int) {
	if m.addplanned_duration_minutes != nil {
		*m.addplanned_duration_minutes += i
	} else {
		m.addplanned_duration_minutes = &i
	}
}

// AddedPlannedDurationMinutes returns the value that was added to the "planned_duration_minutes" field in this mutation.
func (m *StudySessionMutation) AddedPlannedDurationMinutes() (r int, exists bool) {
	v := m.addplanned_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlannedDurationMinutes resets all changes to the "planned_duration_minutes" field.
func (m *StudySessionMutation) ResetPlannedDurationMinutes() {
	m.planned_duration_minutes = nil
	m.addplanned_duration_minutes = nil
}

// SetActive sets the "active" field.
func (m *StudySessionMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *StudySessionMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *StudySessionMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the StudySessionMutation builder.
func (m *StudySessionMutation) Where(ps ...predicate.StudySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudySession).
func (m *StudySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudySessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, studysession.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, studysession.FieldUserID)
	}
	if m.topic != nil {
		fields = append(fields, studysession.FieldTopic)
	}
	if m.started_at != nil {
		fields = append(fields, studysession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, studysession.FieldEndedAt)
	}
	if m.planned_duration_minutes != nil {
		fields = append(fields, studysession.FieldPlannedDurationMinutes)
	}
	if m.active != nil {
		fields = append(fields, studysession.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldSessionID:
		return m.SessionID()
	case studysession.FieldUserID:
		return m.UserID()
	case studysession.FieldTopic:
		return m.Topic()
	case studysession.FieldStartedAt:
		return m.StartedAt()
	case studysession.FieldEndedAt:
		return m.EndedAt()
	case studysession.FieldPlannedDurationMinutes:
		return m.PlannedDurationMinutes()
	case studysession.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studysession.FieldSessionID:
		return m.OldSessionID(ctx)
	case studysession.FieldUserID:
		return m.OldUserID(ctx)
	case studysession.FieldTopic:
		return m.OldTopic(ctx)
	case studysession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case studysession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case studysession.FieldPlannedDurationMinutes:
		return m.OldPlannedDurationMinutes(ctx)
	case studysession.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown StudySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case studysession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case studysession.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case studysession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case studysession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case studysession.FieldPlannedDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedDurationMinutes(v)
		return nil
	case studysession.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudySessionMutation) AddedFields() []string {
	var fields []string
	if m.addplanned_duration_minutes != nil {
		fields = append(fields, studysession.FieldPlannedDurationMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudySessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldPlannedDurationMinutes:
		return m.AddedPlannedDurationMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldPlannedDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlannedDurationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studysession.FieldTopic) {
		fields = append(fields, studysession.FieldTopic)
	}
	if m.FieldCleared(studysession.FieldEndedAt) {
		fields = append(fields, studysession.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudySessionMutation) ClearField(name string) error {
	switch name {
	case studysession.FieldTopic:
		m.ClearTopic()
		return nil
	case studysession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown StudySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudySessionMutation) ResetField(name string) error {
	switch name {
	case studysession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case studysession.FieldUserID:
		m.ResetUserID()
		return nil
	case studysession.FieldTopic:
		m.ResetTopic()
		return nil
	case studysession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case studysession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case studysession.FieldPlannedDurationMinutes:
		m.ResetPlannedDurationMinutes()
		return nil
	case studysession.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudySessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudySessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudySessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudySessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudySessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudySession edge %s", name)
}
