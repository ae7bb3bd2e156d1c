// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptifocus/adaptifocus/ent/browsingevent"
	"github.com/adaptifocus/adaptifocus/ent/predicate"
)

// BrowsingEventDelete is the builder for deleting a BrowsingEvent entity.
type BrowsingEventDelete struct {
	config
	hooks    []Hook
	mutation *BrowsingEventMutation
}

// Where appends a list predicates to the BrowsingEventDelete builder.
func (_d *BrowsingEventDelete) Where(ps ...predicate.BrowsingEvent) *BrowsingEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BrowsingEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BrowsingEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BrowsingEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(browsingevent.Table, sqlgraph.NewFieldSpec(browsingevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BrowsingEventDeleteOne is the builder for deleting a single BrowsingEvent entity.
type BrowsingEventDeleteOne struct {
	_d *BrowsingEventDelete
}

// Where appends a list predicates to the BrowsingEventDelete builder.
func (_d *BrowsingEventDeleteOne) Where(ps ...predicate.BrowsingEvent) *BrowsingEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BrowsingEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{browsingevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BrowsingEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
