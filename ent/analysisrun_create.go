// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/serkanatas/kopya/ent/analysisrun"
	"github.com/serkanatas/kopya/ent/schema"
)

// AnalysisRunCreate is the builder for creating a AnalysisRun entity.
type AnalysisRunCreate struct {
	config
	mutation *AnalysisRunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AnalysisRunCreate) SetRunID(v string) *AnalysisRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetKeyName sets the "key_name" field.
func (_c *AnalysisRunCreate) SetKeyName(v string) *AnalysisRunCreate {
	_c.mutation.SetKeyName(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *AnalysisRunCreate) SetSource(v string) *AnalysisRunCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetTotalExaminees sets the "total_examinees" field.
func (_c *AnalysisRunCreate) SetTotalExaminees(v int) *AnalysisRunCreate {
	_c.mutation.SetTotalExaminees(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *AnalysisRunCreate) SetQuestionCount(v int) *AnalysisRunCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetTotalPairs sets the "total_pairs" field.
func (_c *AnalysisRunCreate) SetTotalPairs(v int) *AnalysisRunCreate {
	_c.mutation.SetTotalPairs(v)
	return _c
}

// SetTotalFlagged sets the "total_flagged" field.
func (_c *AnalysisRunCreate) SetTotalFlagged(v int) *AnalysisRunCreate {
	_c.mutation.SetTotalFlagged(v)
	return _c
}

// SetThresholds sets the "thresholds" field.
func (_c *AnalysisRunCreate) SetThresholds(v schema.ThresholdSnapshot) *AnalysisRunCreate {
	_c.mutation.SetThresholds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisRunCreate) SetCreatedAt(v time.Time) *AnalysisRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillableCreatedAt(v *time.Time) *AnalysisRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AnalysisRunMutation object of the builder.
func (_c *AnalysisRunCreate) Mutation() *AnalysisRunMutation {
	return _c.mutation
}

// Save creates the AnalysisRun in the database.
func (_c *AnalysisRunCreate) Save(ctx context.Context) (*AnalysisRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisRunCreate) SaveX(ctx context.Context) *AnalysisRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisRunCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisRunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AnalysisRun.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := analysisrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KeyName(); !ok {
		return &ValidationError{Name: "key_name", err: errors.New(`ent: missing required field "AnalysisRun.key_name"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "AnalysisRun.source"`)}
	}
	if _, ok := _c.mutation.TotalExaminees(); !ok {
		return &ValidationError{Name: "total_examinees", err: errors.New(`ent: missing required field "AnalysisRun.total_examinees"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "AnalysisRun.question_count"`)}
	}
	if _, ok := _c.mutation.TotalPairs(); !ok {
		return &ValidationError{Name: "total_pairs", err: errors.New(`ent: missing required field "AnalysisRun.total_pairs"`)}
	}
	if _, ok := _c.mutation.TotalFlagged(); !ok {
		return &ValidationError{Name: "total_flagged", err: errors.New(`ent: missing required field "AnalysisRun.total_flagged"`)}
	}
	if _, ok := _c.mutation.Thresholds(); !ok {
		return &ValidationError{Name: "thresholds", err: errors.New(`ent: missing required field "AnalysisRun.thresholds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisRun.created_at"`)}
	}
	return nil
}

func (_c *AnalysisRunCreate) sqlSave(ctx context.Context) (*AnalysisRun, error) {
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

func (_c *AnalysisRunCreate) createSpec() (*AnalysisRun, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisrun.Table, sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(analysisrun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.KeyName(); ok {
		_spec.SetField(analysisrun.FieldKeyName, field.TypeString, value)
		_node.KeyName = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(analysisrun.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.TotalExaminees(); ok {
		_spec.SetField(analysisrun.FieldTotalExaminees, field.TypeInt, value)
		_node.TotalExaminees = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(analysisrun.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.TotalPairs(); ok {
		_spec.SetField(analysisrun.FieldTotalPairs, field.TypeInt, value)
		_node.TotalPairs = value
	}
	if value, ok := _c.mutation.TotalFlagged(); ok {
		_spec.SetField(analysisrun.FieldTotalFlagged, field.TypeInt, value)
		_node.TotalFlagged = value
	}
	if value, ok := _c.mutation.Thresholds(); ok {
		_spec.SetField(analysisrun.FieldThresholds, field.TypeJSON, value)
		_node.Thresholds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AnalysisRunCreateBulk is the builder for creating many AnalysisRun entities in bulk.
type AnalysisRunCreateBulk struct {
	config
	err      error
	builders []*AnalysisRunCreate
}

// Save creates the AnalysisRun entities in the database.
func (_c *AnalysisRunCreateBulk) Save(ctx context.Context) ([]*AnalysisRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisRunMutation)
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
func (_c *AnalysisRunCreateBulk) SaveX(ctx context.Context) []*AnalysisRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
