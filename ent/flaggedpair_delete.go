// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/serkanatas/kopya/ent/flaggedpair"
	"github.com/serkanatas/kopya/ent/predicate"
)

// FlaggedPairDelete is the builder for deleting a FlaggedPair entity.
type FlaggedPairDelete struct {
	config
	hooks    []Hook
	mutation *FlaggedPairMutation
}

// Where appends a list predicates to the FlaggedPairDelete builder.
func (_d *FlaggedPairDelete) Where(ps ...predicate.FlaggedPair) *FlaggedPairDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FlaggedPairDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FlaggedPairDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FlaggedPairDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(flaggedpair.Table, sqlgraph.NewFieldSpec(flaggedpair.FieldID, field.TypeInt))
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

// FlaggedPairDeleteOne is the builder for deleting a single FlaggedPair entity.
type FlaggedPairDeleteOne struct {
	_d *FlaggedPairDelete
}

// Where appends a list predicates to the FlaggedPairDelete builder.
func (_d *FlaggedPairDeleteOne) Where(ps ...predicate.FlaggedPair) *FlaggedPairDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FlaggedPairDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{flaggedpair.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FlaggedPairDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
