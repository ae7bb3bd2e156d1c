// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptifocus/adaptifocus/ent/interventionevent"
	"github.com/adaptifocus/adaptifocus/ent/predicate"
)

// InterventionEventUpdate is the builder for updating InterventionEvent entities.
type InterventionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InterventionEventMutation
}

// Where appends a list predicates to the InterventionEventUpdate builder.
func (_u *InterventionEventUpdate) Where(ps ...predicate.InterventionEvent) *InterventionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInterventionID sets the "intervention_id" field.
func (_u *InterventionEventUpdate) SetInterventionID(v string) *InterventionEventUpdate {
	_u.mutation.SetInterventionID(v)
	return _u
}

// SetNillableInterventionID sets the "intervention_id" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableInterventionID(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetInterventionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InterventionEventUpdate) SetUserID(v string) *InterventionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableUserID(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *InterventionEventUpdate) SetLevel(v string) *InterventionEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableLevel(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTriggerDomain sets the "trigger_domain" field.
func (_u *InterventionEventUpdate) SetTriggerDomain(v string) *InterventionEventUpdate {
	_u.mutation.SetTriggerDomain(v)
	return _u
}

// SetNillableTriggerDomain sets the "trigger_domain" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableTriggerDomain(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetTriggerDomain(*v)
	}
	return _u
}

// ClearTriggerDomain clears the value of the "trigger_domain" field.
func (_u *InterventionEventUpdate) ClearTriggerDomain() *InterventionEventUpdate {
	_u.mutation.ClearTriggerDomain()
	return _u
}

// SetTriggerURL sets the "trigger_url" field.
func (_u *InterventionEventUpdate) SetTriggerURL(v string) *InterventionEventUpdate {
	_u.mutation.SetTriggerURL(v)
	return _u
}

// SetNillableTriggerURL sets the "trigger_url" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableTriggerURL(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetTriggerURL(*v)
	}
	return _u
}

// ClearTriggerURL clears the value of the "trigger_url" field.
func (_u *InterventionEventUpdate) ClearTriggerURL() *InterventionEventUpdate {
	_u.mutation.ClearTriggerURL()
	return _u
}

// SetDurationOnDistractionSeconds sets the "duration_on_distraction_seconds" field.
func (_u *InterventionEventUpdate) SetDurationOnDistractionSeconds(v int) *InterventionEventUpdate {
	_u.mutation.ResetDurationOnDistractionSeconds()
	_u.mutation.SetDurationOnDistractionSeconds(v)
	return _u
}

// SetNillableDurationOnDistractionSeconds sets the "duration_on_distraction_seconds" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableDurationOnDistractionSeconds(v *int) *InterventionEventUpdate {
	if v != nil {
		_u.SetDurationOnDistractionSeconds(*v)
	}
	return _u
}

// AddDurationOnDistractionSeconds adds value to the "duration_on_distraction_seconds" field.
func (_u *InterventionEventUpdate) AddDurationOnDistractionSeconds(v int) *InterventionEventUpdate {
	_u.mutation.AddDurationOnDistractionSeconds(v)
	return _u
}

// SetDistractionScore sets the "distraction_score" field.
func (_u *InterventionEventUpdate) SetDistractionScore(v float64) *InterventionEventUpdate {
	_u.mutation.ResetDistractionScore()
	_u.mutation.SetDistractionScore(v)
	return _u
}

// SetNillableDistractionScore sets the "distraction_score" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableDistractionScore(v *float64) *InterventionEventUpdate {
	if v != nil {
		_u.SetDistractionScore(*v)
	}
	return _u
}

// AddDistractionScore adds value to the "distraction_score" field.
func (_u *InterventionEventUpdate) AddDistractionScore(v float64) *InterventionEventUpdate {
	_u.mutation.AddDistractionScore(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InterventionEventUpdate) SetSessionID(v string) *InterventionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableSessionID(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *InterventionEventUpdate) ClearSessionID() *InterventionEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetUserResponse sets the "user_response" field.
func (_u *InterventionEventUpdate) SetUserResponse(v string) *InterventionEventUpdate {
	_u.mutation.SetUserResponse(v)
	return _u
}

// SetNillableUserResponse sets the "user_response" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableUserResponse(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetUserResponse(*v)
	}
	return _u
}

// ClearUserResponse clears the value of the "user_response" field.
func (_u *InterventionEventUpdate) ClearUserResponse() *InterventionEventUpdate {
	_u.mutation.ClearUserResponse()
	return _u
}

// SetEffective sets the "effective" field.
func (_u *InterventionEventUpdate) SetEffective(v bool) *InterventionEventUpdate {
	_u.mutation.SetEffective(v)
	return _u
}

// SetNillableEffective sets the "effective" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableEffective(v *bool) *InterventionEventUpdate {
	if v != nil {
		_u.SetEffective(*v)
	}
	return _u
}

// ClearEffective clears the value of the "effective" field.
func (_u *InterventionEventUpdate) ClearEffective() *InterventionEventUpdate {
	_u.mutation.ClearEffective()
	return _u
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_u *InterventionEventUpdate) Mutation() *InterventionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterventionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterventionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionEventUpdate) check() error {
	if v, ok := _u.mutation.InterventionID(); ok {
		if err := interventionevent.InterventionIDValidator(v); err != nil {
			return &ValidationError{Name: "intervention_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.intervention_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := interventionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := interventionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerDomain(); ok {
		if err := interventionevent.TriggerDomainValidator(v); err != nil {
			return &ValidationError{Name: "trigger_domain", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.trigger_domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerURL(); ok {
		if err := interventionevent.TriggerURLValidator(v); err != nil {
			return &ValidationError{Name: "trigger_url", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.trigger_url": %w`, err)}
		}
	}
	return nil
}

func (_u *InterventionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interventionevent.Table, interventionevent.Columns, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InterventionID(); ok {
		_spec.SetField(interventionevent.FieldInterventionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interventionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(interventionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerDomain(); ok {
		_spec.SetField(interventionevent.FieldTriggerDomain, field.TypeString, value)
	}
	if _u.mutation.TriggerDomainCleared() {
		_spec.ClearField(interventionevent.FieldTriggerDomain, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerURL(); ok {
		_spec.SetField(interventionevent.FieldTriggerURL, field.TypeString, value)
	}
	if _u.mutation.TriggerURLCleared() {
		_spec.ClearField(interventionevent.FieldTriggerURL, field.TypeString)
	}
	if value, ok := _u.mutation.DurationOnDistractionSeconds(); ok {
		_spec.SetField(interventionevent.FieldDurationOnDistractionSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationOnDistractionSeconds(); ok {
		_spec.AddField(interventionevent.FieldDurationOnDistractionSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DistractionScore(); ok {
		_spec.SetField(interventionevent.FieldDistractionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistractionScore(); ok {
		_spec.AddField(interventionevent.FieldDistractionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interventionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(interventionevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UserResponse(); ok {
		_spec.SetField(interventionevent.FieldUserResponse, field.TypeString, value)
	}
	if _u.mutation.UserResponseCleared() {
		_spec.ClearField(interventionevent.FieldUserResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Effective(); ok {
		_spec.SetField(interventionevent.FieldEffective, field.TypeBool, value)
	}
	if _u.mutation.EffectiveCleared() {
		_spec.ClearField(interventionevent.FieldEffective, field.TypeBool)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interventionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterventionEventUpdateOne is the builder for updating a single InterventionEvent entity.
type InterventionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterventionEventMutation
}

// SetInterventionID sets the "intervention_id" field.
func (_u *InterventionEventUpdateOne) SetInterventionID(v string) *InterventionEventUpdateOne {
	_u.mutation.SetInterventionID(v)
	return _u
}

// SetNillableInterventionID sets the "intervention_id" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableInterventionID(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetInterventionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InterventionEventUpdateOne) SetUserID(v string) *InterventionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableUserID(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *InterventionEventUpdateOne) SetLevel(v string) *InterventionEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableLevel(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTriggerDomain sets the "trigger_domain" field.
func (_u *InterventionEventUpdateOne) SetTriggerDomain(v string) *InterventionEventUpdateOne {
	_u.mutation.SetTriggerDomain(v)
	return _u
}

// SetNillableTriggerDomain sets the "trigger_domain" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableTriggerDomain(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetTriggerDomain(*v)
	}
	return _u
}

// ClearTriggerDomain clears the value of the "trigger_domain" field.
func (_u *InterventionEventUpdateOne) ClearTriggerDomain() *InterventionEventUpdateOne {
	_u.mutation.ClearTriggerDomain()
	return _u
}

// SetTriggerURL sets the "trigger_url" field.
func (_u *InterventionEventUpdateOne) SetTriggerURL(v string) *InterventionEventUpdateOne {
	_u.mutation.SetTriggerURL(v)
	return _u
}

// SetNillableTriggerURL sets the "trigger_url" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableTriggerURL(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetTriggerURL(*v)
	}
	return _u
}

// ClearTriggerURL clears the value of the "trigger_url" field.
func (_u *InterventionEventUpdateOne) ClearTriggerURL() *InterventionEventUpdateOne {
	_u.mutation.ClearTriggerURL()
	return _u
}

// SetDurationOnDistractionSeconds sets the "duration_on_distraction_seconds" field.
func (_u *InterventionEventUpdateOne) SetDurationOnDistractionSeconds(v int) *InterventionEventUpdateOne {
	_u.mutation.ResetDurationOnDistractionSeconds()
	_u.mutation.SetDurationOnDistractionSeconds(v)
	return _u
}

// SetNillableDurationOnDistractionSeconds sets the "duration_on_distraction_seconds" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableDurationOnDistractionSeconds(v *int) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetDurationOnDistractionSeconds(*v)
	}
	return _u
}

// AddDurationOnDistractionSeconds adds value to the "duration_on_distraction_seconds" field.
func (_u *InterventionEventUpdateOne) AddDurationOnDistractionSeconds(v int) *InterventionEventUpdateOne {
	_u.mutation.AddDurationOnDistractionSeconds(v)
	return _u
}

// SetDistractionScore sets the "distraction_score" field.
func (_u *InterventionEventUpdateOne) SetDistractionScore(v float64) *InterventionEventUpdateOne {
	_u.mutation.ResetDistractionScore()
	_u.mutation.SetDistractionScore(v)
	return _u
}

// SetNillableDistractionScore sets the "distraction_score" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableDistractionScore(v *float64) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetDistractionScore(*v)
	}
	return _u
}

// AddDistractionScore adds value to the "distraction_score" field.
func (_u *InterventionEventUpdateOne) AddDistractionScore(v float64) *InterventionEventUpdateOne {
	_u.mutation.AddDistractionScore(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InterventionEventUpdateOne) SetSessionID(v string) *InterventionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableSessionID(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *InterventionEventUpdateOne) ClearSessionID() *InterventionEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetUserResponse sets the "user_response" field.
func (_u *InterventionEventUpdateOne) SetUserResponse(v string) *InterventionEventUpdateOne {
	_u.mutation.SetUserResponse(v)
	return _u
}

// SetNillableUserResponse sets the "user_response" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableUserResponse(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetUserResponse(*v)
	}
	return _u
}

// ClearUserResponse clears the value of the "user_response" field.
func (_u *InterventionEventUpdateOne) ClearUserResponse() *InterventionEventUpdateOne {
	_u.mutation.ClearUserResponse()
	return _u
}

// SetEffective sets the "effective" field.
func (_u *InterventionEventUpdateOne) SetEffective(v bool) *InterventionEventUpdateOne {
	_u.mutation.SetEffective(v)
	return _u
}

// SetNillableEffective sets the "effective" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableEffective(v *bool) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetEffective(*v)
	}
	return _u
}

// ClearEffective clears the value of the "effective" field.
func (_u *InterventionEventUpdateOne) ClearEffective() *InterventionEventUpdateOne {
	_u.mutation.ClearEffective()
	return _u
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_u *InterventionEventUpdateOne) Mutation() *InterventionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterventionEventUpdate builder.
func (_u *InterventionEventUpdateOne) Where(ps ...predicate.InterventionEvent) *InterventionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterventionEventUpdateOne) Select(field string, fields ...string) *InterventionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterventionEvent entity.
func (_u *InterventionEventUpdateOne) Save(ctx context.Context) (*InterventionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionEventUpdateOne) SaveX(ctx context.Context) *InterventionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterventionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionEventUpdateOne) check() error {
	if v, ok := _u.mutation.InterventionID(); ok {
		if err := interventionevent.InterventionIDValidator(v); err != nil {
			return &ValidationError{Name: "intervention_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.intervention_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := interventionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := interventionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerDomain(); ok {
		if err := interventionevent.TriggerDomainValidator(v); err != nil {
			return &ValidationError{Name: "trigger_domain", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.trigger_domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerURL(); ok {
		if err := interventionevent.TriggerURLValidator(v); err != nil {
			return &ValidationError{Name: "trigger_url", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.trigger_url": %w`, err)}
		}
	}
	return nil
}

func (_u *InterventionEventUpdateOne) sqlSave(ctx context.Context) (_node *InterventionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interventionevent.Table, interventionevent.Columns, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterventionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interventionevent.FieldID)
		for _, f := range fields {
			if !interventionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interventionevent.FieldID {
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
	if value, ok := _u.mutation.InterventionID(); ok {
		_spec.SetField(interventionevent.FieldInterventionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interventionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(interventionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerDomain(); ok {
		_spec.SetField(interventionevent.FieldTriggerDomain, field.TypeString, value)
	}
	if _u.mutation.TriggerDomainCleared() {
		_spec.ClearField(interventionevent.FieldTriggerDomain, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerURL(); ok {
		_spec.SetField(interventionevent.FieldTriggerURL, field.TypeString, value)
	}
	if _u.mutation.TriggerURLCleared() {
		_spec.ClearField(interventionevent.FieldTriggerURL, field.TypeString)
	}
	if value, ok := _u.mutation.DurationOnDistractionSeconds(); ok {
		_spec.SetField(interventionevent.FieldDurationOnDistractionSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationOnDistractionSeconds(); ok {
		_spec.AddField(interventionevent.FieldDurationOnDistractionSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DistractionScore(); ok {
		_spec.SetField(interventionevent.FieldDistractionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistractionScore(); ok {
		_spec.AddField(interventionevent.FieldDistractionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interventionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(interventionevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UserResponse(); ok {
		_spec.SetField(interventionevent.FieldUserResponse, field.TypeString, value)
	}
	if _u.mutation.UserResponseCleared() {
		_spec.ClearField(interventionevent.FieldUserResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Effective(); ok {
		_spec.SetField(interventionevent.FieldEffective, field.TypeBool, value)
	}
	if _u.mutation.EffectiveCleared() {
		_spec.ClearField(interventionevent.FieldEffective, field.TypeBool)
	}
	_node = &InterventionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interventionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
