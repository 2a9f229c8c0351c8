// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/serkanatas/kopya/ent/flaggedpair"
)

// FlaggedPairCreate is the builder for creating a FlaggedPair entity.
type FlaggedPairCreate struct {
	config
	mutation *FlaggedPairMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *FlaggedPairCreate) SetRunID(v string) *FlaggedPairCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetRank sets the "rank" field.
func (_c *FlaggedPairCreate) SetRank(v int) *FlaggedPairCreate {
	_c.mutation.SetRank(v)
	return _c
}

// SetExamineeA sets the "examinee_a" field.
func (_c *FlaggedPairCreate) SetExamineeA(v string) *FlaggedPairCreate {
	_c.mutation.SetExamineeA(v)
	return _c
}

// SetExamineeB sets the "examinee_b" field.
func (_c *FlaggedPairCreate) SetExamineeB(v string) *FlaggedPairCreate {
	_c.mutation.SetExamineeB(v)
	return _c
}

// SetAgreements sets the "agreements" field.
func (_c *FlaggedPairCreate) SetAgreements(v int) *FlaggedPairCreate {
	_c.mutation.SetAgreements(v)
	return _c
}

// SetWrongAgreements sets the "wrong_agreements" field.
func (_c *FlaggedPairCreate) SetWrongAgreements(v int) *FlaggedPairCreate {
	_c.mutation.SetWrongAgreements(v)
	return _c
}

// SetDifferences sets the "differences" field.
func (_c *FlaggedPairCreate) SetDifferences(v int) *FlaggedPairCreate {
	_c.mutation.SetDifferences(v)
	return _c
}

// SetKIndexAb sets the "k_index_ab" field.
func (_c *FlaggedPairCreate) SetKIndexAb(v float64) *FlaggedPairCreate {
	_c.mutation.SetKIndexAb(v)
	return _c
}

// SetKIndexBa sets the "k_index_ba" field.
func (_c *FlaggedPairCreate) SetKIndexBa(v float64) *FlaggedPairCreate {
	_c.mutation.SetKIndexBa(v)
	return _c
}

// SetGbtZ sets the "gbt_z" field.
func (_c *FlaggedPairCreate) SetGbtZ(v float64) *FlaggedPairCreate {
	_c.mutation.SetGbtZ(v)
	return _c
}

// SetHarppHogan sets the "harpp_hogan" field.
func (_c *FlaggedPairCreate) SetHarppHogan(v float64) *FlaggedPairCreate {
	_c.mutation.SetHarppHogan(v)
	return _c
}

// SetRarityScore sets the "rarity_score" field.
func (_c *FlaggedPairCreate) SetRarityScore(v float64) *FlaggedPairCreate {
	_c.mutation.SetRarityScore(v)
	return _c
}

// SetSuspicion sets the "suspicion" field.
func (_c *FlaggedPairCreate) SetSuspicion(v float64) *FlaggedPairCreate {
	_c.mutation.SetSuspicion(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *FlaggedPairCreate) SetReason(v string) *FlaggedPairCreate {
	_c.mutation.SetReason(v)
	return _c
}

// Mutation returns the FlaggedPairMutation object of the builder.
func (_c *FlaggedPairCreate) Mutation() *FlaggedPairMutation {
	return _c.mutation
}

// Save creates the FlaggedPair in the database.
func (_c *FlaggedPairCreate) Save(ctx context.Context) (*FlaggedPair, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlaggedPairCreate) SaveX(ctx context.Context) *FlaggedPair {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlaggedPairCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlaggedPairCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlaggedPairCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "FlaggedPair.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := flaggedpair.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "FlaggedPair.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rank(); !ok {
		return &ValidationError{Name: "rank", err: errors.New(`ent: missing required field "FlaggedPair.rank"`)}
	}
	if _, ok := _c.mutation.ExamineeA(); !ok {
		return &ValidationError{Name: "examinee_a", err: errors.New(`ent: missing required field "FlaggedPair.examinee_a"`)}
	}
	if v, ok := _c.mutation.ExamineeA(); ok {
		if err := flaggedpair.ExamineeAValidator(v); err != nil {
			return &ValidationError{Name: "examinee_a", err: fmt.Errorf(`ent: validator failed for field "FlaggedPair.examinee_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamineeB(); !ok {
		return &ValidationError{Name: "examinee_b", err: errors.New(`ent: missing required field "FlaggedPair.examinee_b"`)}
	}
	if v, ok := _c.mutation.ExamineeB(); ok {
		if err := flaggedpair.ExamineeBValidator(v); err != nil {
			return &ValidationError{Name: "examinee_b", err: fmt.Errorf(`ent: validator failed for field "FlaggedPair.examinee_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Agreements(); !ok {
		return &ValidationError{Name: "agreements", err: errors.New(`ent: missing required field "FlaggedPair.agreements"`)}
	}
	if _, ok := _c.mutation.WrongAgreements(); !ok {
		return &ValidationError{Name: "wrong_agreements", err: errors.New(`ent: missing required field "FlaggedPair.wrong_agreements"`)}
	}
	if _, ok := _c.mutation.Differences(); !ok {
		return &ValidationError{Name: "differences", err: errors.New(`ent: missing required field "FlaggedPair.differences"`)}
	}
	if _, ok := _c.mutation.KIndexAb(); !ok {
		return &ValidationError{Name: "k_index_ab", err: errors.New(`ent: missing required field "FlaggedPair.k_index_ab"`)}
	}
	if _, ok := _c.mutation.KIndexBa(); !ok {
		return &ValidationError{Name: "k_index_ba", err: errors.New(`ent: missing required field "FlaggedPair.k_index_ba"`)}
	}
	if _, ok := _c.mutation.GbtZ(); !ok {
		return &ValidationError{Name: "gbt_z", err: errors.New(`ent: missing required field "FlaggedPair.gbt_z"`)}
	}
	if _, ok := _c.mutation.HarppHogan(); !ok {
		return &ValidationError{Name: "harpp_hogan", err: errors.New(`ent: missing required field "FlaggedPair.harpp_hogan"`)}
	}
	if _, ok := _c.mutation.RarityScore(); !ok {
		return &ValidationError{Name: "rarity_score", err: errors.New(`ent: missing required field "FlaggedPair.rarity_score"`)}
	}
	if _, ok := _c.mutation.Suspicion(); !ok {
		return &ValidationError{Name: "suspicion", err: errors.New(`ent: missing required field "FlaggedPair.suspicion"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "FlaggedPair.reason"`)}
	}
	return nil
}

func (_c *FlaggedPairCreate) sqlSave(ctx context.Context) (*FlaggedPair, error) {
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

func (_c *FlaggedPairCreate) createSpec() (*FlaggedPair, *sqlgraph.CreateSpec) {
	var (
		_node = &FlaggedPair{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flaggedpair.Table, sqlgraph.NewFieldSpec(flaggedpair.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(flaggedpair.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Rank(); ok {
		_spec.SetField(flaggedpair.FieldRank, field.TypeInt, value)
		_node.Rank = value
	}
	if value, ok := _c.mutation.ExamineeA(); ok {
		_spec.SetField(flaggedpair.FieldExamineeA, field.TypeString, value)
		_node.ExamineeA = value
	}
	if value, ok := _c.mutation.ExamineeB(); ok {
		_spec.SetField(flaggedpair.FieldExamineeB, field.TypeString, value)
		_node.ExamineeB = value
	}
	if value, ok := _c.mutation.Agreements(); ok {
		_spec.SetField(flaggedpair.FieldAgreements, field.TypeInt, value)
		_node.Agreements = value
	}
	if value, ok := _c.mutation.WrongAgreements(); ok {
		_spec.SetField(flaggedpair.FieldWrongAgreements, field.TypeInt, value)
		_node.WrongAgreements = value
	}
	if value, ok := _c.mutation.Differences(); ok {
		_spec.SetField(flaggedpair.FieldDifferences, field.TypeInt, value)
		_node.Differences = value
	}
	if value, ok := _c.mutation.KIndexAb(); ok {
		_spec.SetField(flaggedpair.FieldKIndexAb, field.TypeFloat64, value)
		_node.KIndexAb = value
	}
	if value, ok := _c.mutation.KIndexBa(); ok {
		_spec.SetField(flaggedpair.FieldKIndexBa, field.TypeFloat64, value)
		_node.KIndexBa = value
	}
	if value, ok := _c.mutation.GbtZ(); ok {
		_spec.SetField(flaggedpair.FieldGbtZ, field.TypeFloat64, value)
		_node.GbtZ = value
	}
	if value, ok := _c.mutation.HarppHogan(); ok {
		_spec.SetField(flaggedpair.FieldHarppHogan, field.TypeFloat64, value)
		_node.HarppHogan = value
	}
	if value, ok := _c.mutation.RarityScore(); ok {
		_spec.SetField(flaggedpair.FieldRarityScore, field.TypeFloat64, value)
		_node.RarityScore = value
	}
	if value, ok := _c.mutation.Suspicion(); ok {
		_spec.SetField(flaggedpair.FieldSuspicion, field.TypeFloat64, value)
		_node.Suspicion = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(flaggedpair.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// FlaggedPairCreateBulk is the builder for creating many FlaggedPair entities in bulk.
type FlaggedPairCreateBulk struct {
	config
	err      error
	builders []*FlaggedPairCreate
}

// Save creates the FlaggedPair entities in the database.
func (_c *FlaggedPairCreateBulk) Save(ctx context.Context) ([]*FlaggedPair, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FlaggedPair, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlaggedPairMutation)
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
func (_c *FlaggedPairCreateBulk) SaveX(ctx context.Context) []*FlaggedPair {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlaggedPairCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlaggedPairCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
