// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptifocus/adaptifocus/ent/interventionevent"
)

// InterventionEventCreate is the builder for creating a InterventionEvent entity.
type InterventionEventCreate struct {
	config
	mutation *InterventionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InterventionEventCreate) SetSequence(v int64) *InterventionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InterventionEventCreate) SetTimestamp(v time.Time) *InterventionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableTimestamp(v *time.Time) *InterventionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetInterventionID sets the "intervention_id" field.
func (_c *InterventionEventCreate) SetInterventionID(v string) *InterventionEventCreate {
	_c.mutation.SetInterventionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *InterventionEventCreate) SetUserID(v string) *InterventionEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *InterventionEventCreate) SetLevel(v string) *InterventionEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetTriggerDomain sets the "trigger_domain" field.
func (_c *InterventionEventCreate) SetTriggerDomain(v string) *InterventionEventCreate {
	_c.mutation.SetTriggerDomain(v)
	return _c
}

// SetNillableTriggerDomain sets the "trigger_domain" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableTriggerDomain(v *string) *InterventionEventCreate {
	if v != nil {
		_c.SetTriggerDomain(*v)
	}
	return _c
}

// SetTriggerURL sets the "trigger_url" field.
func (_c *InterventionEventCreate) SetTriggerURL(v string) *InterventionEventCreate {
	_c.mutation.SetTriggerURL(v)
	return _c
}

// SetNillableTriggerURL sets the "trigger_url" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableTriggerURL(v *string) *InterventionEventCreate {
	if v != nil {
		_c.SetTriggerURL(*v)
	}
	return _c
}

// SetDurationOnDistractionSeconds sets the "duration_on_distraction_seconds" field.
func (_c *InterventionEventCreate) SetDurationOnDistractionSeconds(v int) *InterventionEventCreate {
	_c.mutation.SetDurationOnDistractionSeconds(v)
	return _c
}

// SetNillableDurationOnDistractionSeconds sets the "duration_on_distraction_seconds" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableDurationOnDistractionSeconds(v *int) *InterventionEventCreate {
	if v != nil {
		_c.SetDurationOnDistractionSeconds(*v)
	}
	return _c
}

// SetDistractionScore sets the "distraction_score" field.
func (_c *InterventionEventCreate) SetDistractionScore(v float64) *InterventionEventCreate {
	_c.mutation.SetDistractionScore(v)
	return _c
}

// SetNillableDistractionScore sets the "distraction_score" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableDistractionScore(v *float64) *InterventionEventCreate {
	if v != nil {
		_c.SetDistractionScore(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InterventionEventCreate) SetSessionID(v string) *InterventionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableSessionID(v *string) *InterventionEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetUserResponse sets the "user_response" field.
func (_c *InterventionEventCreate) SetUserResponse(v string) *InterventionEventCreate {
	_c.mutation.SetUserResponse(v)
	return _c
}

// SetNillableUserResponse sets the "user_response" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableUserResponse(v *string) *InterventionEventCreate {
	if v != nil {
		_c.SetUserResponse(*v)
	}
	return _c
}

// SetEffective sets the "effective" field.
func (_c *InterventionEventCreate) SetEffective(v bool) *InterventionEventCreate {
	_c.mutation.SetEffective(v)
	return _c
}

// SetNillableEffective sets the "effective" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableEffective(v *bool) *InterventionEventCreate {
	if v != nil {
		_c.SetEffective(*v)
	}
	return _c
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_c *InterventionEventCreate) Mutation() *InterventionEventMutation {
	return _c.mutation
}

// Save creates the InterventionEvent in the database.
func (_c *InterventionEventCreate) Save(ctx context.Context) (*InterventionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterventionEventCreate) SaveX(ctx context.Context) *InterventionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterventionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interventionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationOnDistractionSeconds(); !ok {
		v := interventionevent.DefaultDurationOnDistractionSeconds
		_c.mutation.SetDurationOnDistractionSeconds(v)
	}
	if _, ok := _c.mutation.DistractionScore(); !ok {
		v := interventionevent.DefaultDistractionScore
		_c.mutation.SetDistractionScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterventionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InterventionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InterventionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.InterventionID(); !ok {
		return &ValidationError{Name: "intervention_id", err: errors.New(`ent: missing required field "InterventionEvent.intervention_id"`)}
	}
	if v, ok := _c.mutation.InterventionID(); ok {
		if err := interventionevent.InterventionIDValidator(v); err != nil {
			return &ValidationError{Name: "intervention_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.intervention_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InterventionEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := interventionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "InterventionEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := interventionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.level": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TriggerDomain(); ok {
		if err := interventionevent.TriggerDomainValidator(v); err != nil {
			return &ValidationError{Name: "trigger_domain", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.trigger_domain": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TriggerURL(); ok {
		if err := interventionevent.TriggerURLValidator(v); err != nil {
			return &ValidationError{Name: "trigger_url", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.trigger_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationOnDistractionSeconds(); !ok {
		return &ValidationError{Name: "duration_on_distraction_seconds", err: errors.New(`ent: missing required field "InterventionEvent.duration_on_distraction_seconds"`)}
	}
	if _, ok := _c.mutation.DistractionScore(); !ok {
		return &ValidationError{Name: "distraction_score", err: errors.New(`ent: missing required field "InterventionEvent.distraction_score"`)}
	}
	return nil
}

func (_c *InterventionEventCreate) sqlSave(ctx context.Context) (*InterventionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterventionEventCreate) createSpec() (*InterventionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InterventionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interventionevent.Table, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interventionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interventionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.InterventionID(); ok {
		_spec.SetField(interventionevent.FieldInterventionID, field.TypeString, value)
		_node.InterventionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(interventionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(interventionevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.TriggerDomain(); ok {
		_spec.SetField(interventionevent.FieldTriggerDomain, field.TypeString, value)
		_node.TriggerDomain = value
	}
	if value, ok := _c.mutation.TriggerURL(); ok {
		_spec.SetField(interventionevent.FieldTriggerURL, field.TypeString, value)
		_node.TriggerURL = value
	}
	if value, ok := _c.mutation.DurationOnDistractionSeconds(); ok {
		_spec.SetField(interventionevent.FieldDurationOnDistractionSeconds, field.TypeInt, value)
		_node.DurationOnDistractionSeconds = value
	}
	if value, ok := _c.mutation.DistractionScore(); ok {
		_spec.SetField(interventionevent.FieldDistractionScore, field.TypeFloat64, value)
		_node.DistractionScore = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interventionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserResponse(); ok {
		_spec.SetField(interventionevent.FieldUserResponse, field.TypeString, value)
		_node.UserResponse = value
	}
	if value, ok := _c.mutation.Effective(); ok {
		_spec.SetField(interventionevent.FieldEffective, field.TypeBool, value)
		_node.Effective = &value
	}
	return _node, _spec
}

// InterventionEventCreateBulk is the builder for creating many InterventionEvent entities in bulk.
type InterventionEventCreateBulk struct {
	config
	err      error
	builders []*InterventionEventCreate
}

// Save creates the InterventionEvent entities in the database.
func (_c *InterventionEventCreateBulk) Save(ctx context.Context) ([]*InterventionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterventionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterventionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterventionEventCreateBulk) SaveX(ctx context.Context) []*InterventionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
