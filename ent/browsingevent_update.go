// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptifocus/adaptifocus/ent/browsingevent"
	"github.com/adaptifocus/adaptifocus/ent/predicate"
)

// BrowsingEventUpdate is the builder for updating BrowsingEvent entities.
type BrowsingEventUpdate struct {
	config
	hooks    []Hook
	mutation *BrowsingEventMutation
}

// Where appends a list predicates to the BrowsingEventUpdate builder.
func (_u *BrowsingEventUpdate) Where(ps ...predicate.BrowsingEvent) *BrowsingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BrowsingEventUpdate) SetUserID(v string) *BrowsingEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BrowsingEventUpdate) SetNillableUserID(v *string) *BrowsingEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *BrowsingEventUpdate) SetURL(v string) *BrowsingEventUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *BrowsingEventUpdate) SetNillableURL(v *string) *BrowsingEventUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *BrowsingEventUpdate) ClearURL() *BrowsingEventUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *BrowsingEventUpdate) SetDomain(v string) *BrowsingEventUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *BrowsingEventUpdate) SetNillableDomain(v *string) *BrowsingEventUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *BrowsingEventUpdate) ClearDomain() *BrowsingEventUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// SetTitle sets the "title" field.
func (_u *BrowsingEventUpdate) SetTitle(v string) *BrowsingEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BrowsingEventUpdate) SetNillableTitle(v *string) *BrowsingEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *BrowsingEventUpdate) ClearTitle() *BrowsingEventUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *BrowsingEventUpdate) SetDurationSeconds(v int) *BrowsingEventUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *BrowsingEventUpdate) SetNillableDurationSeconds(v *int) *BrowsingEventUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *BrowsingEventUpdate) AddDurationSeconds(v int) *BrowsingEventUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetDistraction sets the "distraction" field.
func (_u *BrowsingEventUpdate) SetDistraction(v bool) *BrowsingEventUpdate {
	_u.mutation.SetDistraction(v)
	return _u
}

// SetNillableDistraction sets the "distraction" field if the given value is not nil.
func (_u *BrowsingEventUpdate) SetNillableDistraction(v *bool) *BrowsingEventUpdate {
	if v != nil {
		_u.SetDistraction(*v)
	}
	return _u
}

// SetDistractionScore sets the "distraction_score" field.
func (_u *BrowsingEventUpdate) SetDistractionScore(v float64) *BrowsingEventUpdate {
	_u.mutation.ResetDistractionScore()
	_u.mutation.SetDistractionScore(v)
	return _u
}

// SetNillableDistractionScore sets the "distraction_score" field if the given value is not nil.
func (_u *BrowsingEventUpdate) SetNillableDistractionScore(v *float64) *BrowsingEventUpdate {
	if v != nil {
		_u.SetDistractionScore(*v)
	}
	return _u
}

// AddDistractionScore adds value to the "distraction_score" field.
func (_u *BrowsingEventUpdate) AddDistractionScore(v float64) *BrowsingEventUpdate {
	_u.mutation.AddDistractionScore(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *BrowsingEventUpdate) SetCategory(v string) *BrowsingEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BrowsingEventUpdate) SetNillableCategory(v *string) *BrowsingEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *BrowsingEventUpdate) ClearCategory() *BrowsingEventUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *BrowsingEventUpdate) SetSessionID(v string) *BrowsingEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BrowsingEventUpdate) SetNillableSessionID(v *string) *BrowsingEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *BrowsingEventUpdate) ClearSessionID() *BrowsingEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the BrowsingEventMutation object of the builder.
func (_u *BrowsingEventUpdate) Mutation() *BrowsingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BrowsingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BrowsingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BrowsingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BrowsingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BrowsingEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := browsingevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := browsingevent.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := browsingevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := browsingevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := browsingevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.category": %w`, err)}
		}
	}
	return nil
}

func (_u *BrowsingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(browsingevent.Table, browsingevent.Columns, sqlgraph.NewFieldSpec(browsingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(browsingevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(browsingevent.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(browsingevent.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(browsingevent.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(browsingevent.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(browsingevent.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(browsingevent.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(browsingevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(browsingevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Distraction(); ok {
		_spec.SetField(browsingevent.FieldDistraction, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DistractionScore(); ok {
		_spec.SetField(browsingevent.FieldDistractionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistractionScore(); ok {
		_spec.AddField(browsingevent.FieldDistractionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(browsingevent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(browsingevent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(browsingevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(browsingevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{browsingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BrowsingEventUpdateOne is the builder for updating a single BrowsingEvent entity.
type BrowsingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BrowsingEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *BrowsingEventUpdateOne) SetUserID(v string) *BrowsingEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BrowsingEventUpdateOne) SetNillableUserID(v *string) *BrowsingEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *BrowsingEventUpdateOne) SetURL(v string) *BrowsingEventUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *BrowsingEventUpdateOne) SetNillableURL(v *string) *BrowsingEventUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *BrowsingEventUpdateOne) ClearURL() *BrowsingEventUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *BrowsingEventUpdateOne) SetDomain(v string) *BrowsingEventUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *BrowsingEventUpdateOne) SetNillableDomain(v *string) *BrowsingEventUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *BrowsingEventUpdateOne) ClearDomain() *BrowsingEventUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// SetTitle sets the "title" field.
func (_u *BrowsingEventUpdateOne) SetTitle(v string) *BrowsingEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BrowsingEventUpdateOne) SetNillableTitle(v *string) *BrowsingEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *BrowsingEventUpdateOne) ClearTitle() *BrowsingEventUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *BrowsingEventUpdateOne) SetDurationSeconds(v int) *BrowsingEventUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *BrowsingEventUpdateOne) SetNillableDurationSeconds(v *int) *BrowsingEventUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *BrowsingEventUpdateOne) AddDurationSeconds(v int) *BrowsingEventUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetDistraction sets the "distraction" field.
func (_u *BrowsingEventUpdateOne) SetDistraction(v bool) *BrowsingEventUpdateOne {
	_u.mutation.SetDistraction(v)
	return _u
}

// SetNillableDistraction sets the "distraction" field if the given value is not nil.
func (_u *BrowsingEventUpdateOne) SetNillableDistraction(v *bool) *BrowsingEventUpdateOne {
	if v != nil {
		_u.SetDistraction(*v)
	}
	return _u
}

// SetDistractionScore sets the "distraction_score" field.
func (_u *BrowsingEventUpdateOne) SetDistractionScore(v float64) *BrowsingEventUpdateOne {
	_u.mutation.ResetDistractionScore()
	_u.mutation.SetDistractionScore(v)
	return _u
}

// SetNillableDistractionScore sets the "distraction_score" field if the given value is not nil.
func (_u *BrowsingEventUpdateOne) SetNillableDistractionScore(v *float64) *BrowsingEventUpdateOne {
	if v != nil {
		_u.SetDistractionScore(*v)
	}
	return _u
}

// AddDistractionScore adds value to the "distraction_score" field.
func (_u *BrowsingEventUpdateOne) AddDistractionScore(v float64) *BrowsingEventUpdateOne {
	_u.mutation.AddDistractionScore(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *BrowsingEventUpdateOne) SetCategory(v string) *BrowsingEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BrowsingEventUpdateOne) SetNillableCategory(v *string) *BrowsingEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *BrowsingEventUpdateOne) ClearCategory() *BrowsingEventUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *BrowsingEventUpdateOne) SetSessionID(v string) *BrowsingEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BrowsingEventUpdateOne) SetNillableSessionID(v *string) *BrowsingEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *BrowsingEventUpdateOne) ClearSessionID() *BrowsingEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the BrowsingEventMutation object of the builder.
func (_u *BrowsingEventUpdateOne) Mutation() *BrowsingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BrowsingEventUpdate builder.
func (_u *BrowsingEventUpdateOne) Where(ps ...predicate.BrowsingEvent) *BrowsingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BrowsingEventUpdateOne) Select(field string, fields ...string) *BrowsingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BrowsingEvent entity.
func (_u *BrowsingEventUpdateOne) Save(ctx context.Context) (*BrowsingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BrowsingEventUpdateOne) SaveX(ctx context.Context) *BrowsingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BrowsingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BrowsingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BrowsingEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := browsingevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := browsingevent.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := browsingevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := browsingevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := browsingevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.category": %w`, err)}
		}
	}
	return nil
}

func (_u *BrowsingEventUpdateOne) sqlSave(ctx context.Context) (_node *BrowsingEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(browsingevent.Table, browsingevent.Columns, sqlgraph.NewFieldSpec(browsingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BrowsingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, browsingevent.FieldID)
		for _, f := range fields {
			if !browsingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != browsingevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(browsingevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(browsingevent.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(browsingevent.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(browsingevent.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(browsingevent.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(browsingevent.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(browsingevent.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(browsingevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(browsingevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Distraction(); ok {
		_spec.SetField(browsingevent.FieldDistraction, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DistractionScore(); ok {
		_spec.SetField(browsingevent.FieldDistractionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistractionScore(); ok {
		_spec.AddField(browsingevent.FieldDistractionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(browsingevent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(browsingevent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(browsingevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(browsingevent.FieldSessionID, field.TypeString)
	}
	_node = &BrowsingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{browsingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
