// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptifocus/adaptifocus/ent/browsingevent"
)

// BrowsingEventCreate is the builder for creating a BrowsingEvent entity.
type BrowsingEventCreate struct {
	config
	mutation *BrowsingEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BrowsingEventCreate) SetSequence(v int64) *BrowsingEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BrowsingEventCreate) SetTimestamp(v time.Time) *BrowsingEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BrowsingEventCreate) SetNillableTimestamp(v *time.Time) *BrowsingEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *BrowsingEventCreate) SetUserID(v string) *BrowsingEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *BrowsingEventCreate) SetURL(v string) *BrowsingEventCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *BrowsingEventCreate) SetNillableURL(v *string) *BrowsingEventCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetDomain sets the "domain" field.
func (_c *BrowsingEventCreate) SetDomain(v string) *BrowsingEventCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *BrowsingEventCreate) SetNillableDomain(v *string) *BrowsingEventCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *BrowsingEventCreate) SetTitle(v string) *BrowsingEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *BrowsingEventCreate) SetNillableTitle(v *string) *BrowsingEventCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *BrowsingEventCreate) SetDurationSeconds(v int) *BrowsingEventCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *BrowsingEventCreate) SetNillableDurationSeconds(v *int) *BrowsingEventCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetDistraction sets the "distraction" field.
func (_c *BrowsingEventCreate) SetDistraction(v bool) *BrowsingEventCreate {
	_c.mutation.SetDistraction(v)
	return _c
}

// SetNillableDistraction sets the "distraction" field if the given value is not nil.
func (_c *BrowsingEventCreate) SetNillableDistraction(v *bool) *BrowsingEventCreate {
	if v != nil {
		_c.SetDistraction(*v)
	}
	return _c
}

// SetDistractionScore sets the "distraction_score" field.
func (_c *BrowsingEventCreate) SetDistractionScore(v float64) *BrowsingEventCreate {
	_c.mutation.SetDistractionScore(v)
	return _c
}

// SetNillableDistractionScore sets the "distraction_score" field if the given value is not nil.
func (_c *BrowsingEventCreate) SetNillableDistractionScore(v *float64) *BrowsingEventCreate {
	if v != nil {
		_c.SetDistractionScore(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *BrowsingEventCreate) SetCategory(v string) *BrowsingEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *BrowsingEventCreate) SetNillableCategory(v *string) *BrowsingEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *BrowsingEventCreate) SetSessionID(v string) *BrowsingEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *BrowsingEventCreate) SetNillableSessionID(v *string) *BrowsingEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the BrowsingEventMutation object of the builder.
func (_c *BrowsingEventCreate) Mutation() *BrowsingEventMutation {
	return _c.mutation
}

// Save creates the BrowsingEvent in the database.
func (_c *BrowsingEventCreate) Save(ctx context.Context) (*BrowsingEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BrowsingEventCreate) SaveX(ctx context.Context) *BrowsingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BrowsingEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BrowsingEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BrowsingEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := browsingevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := browsingevent.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.Distraction(); !ok {
		v := browsingevent.DefaultDistraction
		_c.mutation.SetDistraction(v)
	}
	if _, ok := _c.mutation.DistractionScore(); !ok {
		v := browsingevent.DefaultDistractionScore
		_c.mutation.SetDistractionScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BrowsingEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BrowsingEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BrowsingEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BrowsingEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := browsingevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := browsingevent.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := browsingevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.domain": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := browsingevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "BrowsingEvent.duration_seconds"`)}
	}
	if _, ok := _c.mutation.Distraction(); !ok {
		return &ValidationError{Name: "distraction", err: errors.New(`ent: missing required field "BrowsingEvent.distraction"`)}
	}
	if _, ok := _c.mutation.DistractionScore(); !ok {
		return &ValidationError{Name: "distraction_score", err: errors.New(`ent: missing required field "BrowsingEvent.distraction_score"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := browsingevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "BrowsingEvent.category": %w`, err)}
		}
	}
	return nil
}

func (_c *BrowsingEventCreate) sqlSave(ctx context.Context) (*BrowsingEvent, error) {
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

func (_c *BrowsingEventCreate) createSpec() (*BrowsingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BrowsingEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(browsingevent.Table, sqlgraph.NewFieldSpec(browsingevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(browsingevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(browsingevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(browsingevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(browsingevent.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(browsingevent.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(browsingevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(browsingevent.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Distraction(); ok {
		_spec.SetField(browsingevent.FieldDistraction, field.TypeBool, value)
		_node.Distraction = value
	}
	if value, ok := _c.mutation.DistractionScore(); ok {
		_spec.SetField(browsingevent.FieldDistractionScore, field.TypeFloat64, value)
		_node.DistractionScore = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(browsingevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(browsingevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// BrowsingEventCreateBulk is the builder for creating many BrowsingEvent entities in bulk.
type BrowsingEventCreateBulk struct {
	config
	err      error
	builders []*BrowsingEventCreate
}

// Save creates the BrowsingEvent entities in the database.
func (_c *BrowsingEventCreateBulk) Save(ctx context.Context) ([]*BrowsingEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BrowsingEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BrowsingEventMutation)
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
func (_c *BrowsingEventCreateBulk) SaveX(ctx context.Context) []*BrowsingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BrowsingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BrowsingEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
