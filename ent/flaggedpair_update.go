// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/serkanatas/kopya/ent/flaggedpair"
	"github.com/serkanatas/kopya/ent/predicate"
)

// FlaggedPairUpdate is the builder for updating FlaggedPair entities.
type FlaggedPairUpdate struct {
	config
	hooks    []Hook
	mutation *FlaggedPairMutation
}

// Where appends a list predicates to the FlaggedPairUpdate builder.
func (_u *FlaggedPairUpdate) Where(ps ...predicate.FlaggedPair) *FlaggedPairUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *FlaggedPairUpdate) SetRunID(v string) *FlaggedPairUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableRunID(v *string) *FlaggedPairUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *FlaggedPairUpdate) SetRank(v int) *FlaggedPairUpdate {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableRank(v *int) *FlaggedPairUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *FlaggedPairUpdate) AddRank(v int) *FlaggedPairUpdate {
	_u.mutation.AddRank(v)
	return _u
}

// SetExamineeA sets the "examinee_a" field.
func (_u *FlaggedPairUpdate) SetExamineeA(v string) *FlaggedPairUpdate {
	_u.mutation.SetExamineeA(v)
	return _u
}

// SetNillableExamineeA sets the "examinee_a" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableExamineeA(v *string) *FlaggedPairUpdate {
	if v != nil {
		_u.SetExamineeA(*v)
	}
	return _u
}

// SetExamineeB sets the "examinee_b" field.
func (_u *FlaggedPairUpdate) SetExamineeB(v string) *FlaggedPairUpdate {
	_u.mutation.SetExamineeB(v)
	return _u
}

// SetNillableExamineeB sets the "examinee_b" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableExamineeB(v *string) *FlaggedPairUpdate {
	if v != nil {
		_u.SetExamineeB(*v)
	}
	return _u
}

// SetAgreements sets the "agreements" field.
func (_u *FlaggedPairUpdate) SetAgreements(v int) *FlaggedPairUpdate {
	_u.mutation.ResetAgreements()
	_u.mutation.SetAgreements(v)
	return _u
}

// SetNillableAgreements sets the "agreements" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableAgreements(v *int) *FlaggedPairUpdate {
	if v != nil {
		_u.SetAgreements(*v)
	}
	return _u
}

// AddAgreements adds value to the "agreements" field.
func (_u *FlaggedPairUpdate) AddAgreements(v int) *FlaggedPairUpdate {
	_u.mutation.AddAgreements(v)
	return _u
}

// SetWrongAgreements sets the "wrong_agreements" field.
func (_u *FlaggedPairUpdate) SetWrongAgreements(v int) *FlaggedPairUpdate {
	_u.mutation.ResetWrongAgreements()
	_u.mutation.SetWrongAgreements(v)
	return _u
}

// SetNillableWrongAgreements sets the "wrong_agreements" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableWrongAgreements(v *int) *FlaggedPairUpdate {
	if v != nil {
		_u.SetWrongAgreements(*v)
	}
	return _u
}

// AddWrongAgreements adds value to the "wrong_agreements" field.
func (_u *FlaggedPairUpdate) AddWrongAgreements(v int) *FlaggedPairUpdate {
	_u.mutation.AddWrongAgreements(v)
	return _u
}

// SetDifferences sets the "differences" field.
func (_u *FlaggedPairUpdate) SetDifferences(v int) *FlaggedPairUpdate {
	_u.mutation.ResetDifferences()
	_u.mutation.SetDifferences(v)
	return _u
}

// SetNillableDifferences sets the "differences" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableDifferences(v *int) *FlaggedPairUpdate {
	if v != nil {
		_u.SetDifferences(*v)
	}
	return _u
}

// AddDifferences adds value to the "differences" field.
func (_u *FlaggedPairUpdate) AddDifferences(v int) *FlaggedPairUpdate {
	_u.mutation.AddDifferences(v)
	return _u
}

// SetKIndexAb sets the "k_index_ab" field.
func (_u *FlaggedPairUpdate) SetKIndexAb(v float64) *FlaggedPairUpdate {
	_u.mutation.ResetKIndexAb()
	_u.mutation.SetKIndexAb(v)
	return _u
}

// SetNillableKIndexAb sets the "k_index_ab" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableKIndexAb(v *float64) *FlaggedPairUpdate {
	if v != nil {
		_u.SetKIndexAb(*v)
	}
	return _u
}

// AddKIndexAb adds value to the "k_index_ab" field.
func (_u *FlaggedPairUpdate) AddKIndexAb(v float64) *FlaggedPairUpdate {
	_u.mutation.AddKIndexAb(v)
	return _u
}

// SetKIndexBa sets the "k_index_ba" field.
func (_u *FlaggedPairUpdate) SetKIndexBa(v float64) *FlaggedPairUpdate {
	_u.mutation.ResetKIndexBa()
	_u.mutation.SetKIndexBa(v)
	return _u
}

// SetNillableKIndexBa sets the "k_index_ba" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableKIndexBa(v *float64) *FlaggedPairUpdate {
	if v != nil {
		_u.SetKIndexBa(*v)
	}
	return _u
}

// AddKIndexBa adds value to the "k_index_ba" field.
func (_u *FlaggedPairUpdate) AddKIndexBa(v float64) *FlaggedPairUpdate {
	_u.mutation.AddKIndexBa(v)
	return _u
}

// SetGbtZ sets the "gbt_z" field.
func (_u *FlaggedPairUpdate) SetGbtZ(v float64) *FlaggedPairUpdate {
	_u.mutation.ResetGbtZ()
	_u.mutation.SetGbtZ(v)
	return _u
}

// SetNillableGbtZ sets the "gbt_z" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableGbtZ(v *float64) *FlaggedPairUpdate {
	if v != nil {
		_u.SetGbtZ(*v)
	}
	return _u
}

// AddGbtZ adds value to the "gbt_z" field.
func (_u *FlaggedPairUpdate) AddGbtZ(v float64) *FlaggedPairUpdate {
	_u.mutation.AddGbtZ(v)
	return _u
}

// SetHarppHogan sets the "harpp_hogan" field.
func (_u *FlaggedPairUpdate) SetHarppHogan(v float64) *FlaggedPairUpdate {
	_u.mutation.ResetHarppHogan()
	_u.mutation.SetHarppHogan(v)
	return _u
}

// SetNillableHarppHogan sets the "harpp_hogan" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableHarppHogan(v *float64) *FlaggedPairUpdate {
	if v != nil {
		_u.SetHarppHogan(*v)
	}
	return _u
}

// AddHarppHogan adds value to the "harpp_hogan" field.
func (_u *FlaggedPairUpdate) AddHarppHogan(v float64) *FlaggedPairUpdate {
	_u.mutation.AddHarppHogan(v)
	return _u
}

// SetRarityScore sets the "rarity_score" field.
func (_u *FlaggedPairUpdate) SetRarityScore(v float64) *FlaggedPairUpdate {
	_u.mutation.ResetRarityScore()
	_u.mutation.SetRarityScore(v)
	return _u
}

// SetNillableRarityScore sets the "rarity_score" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableRarityScore(v *float64) *FlaggedPairUpdate {
	if v != nil {
		_u.SetRarityScore(*v)
	}
	return _u
}

// AddRarityScore adds value to the "rarity_score" field.
func (_u *FlaggedPairUpdate) AddRarityScore(v float64) *FlaggedPairUpdate {
	_u.mutation.AddRarityScore(v)
	return _u
}

// SetSuspicion sets the "suspicion" field.
func (_u *FlaggedPairUpdate) SetSuspicion(v float64) *FlaggedPairUpdate {
	_u.mutation.ResetSuspicion()
	_u.mutation.SetSuspicion(v)
	return _u
}

// SetNillableSuspicion sets the "suspicion" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableSuspicion(v *float64) *FlaggedPairUpdate {
	if v != nil {
		_u.SetSuspicion(*v)
	}
	return _u
}

// AddSuspicion adds value to the "suspicion" field.
func (_u *FlaggedPairUpdate) AddSuspicion(v float64) *FlaggedPairUpdate {
	_u.mutation.AddSuspicion(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *FlaggedPairUpdate) SetReason(v string) *FlaggedPairUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *FlaggedPairUpdate) SetNillableReason(v *string) *FlaggedPairUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the FlaggedPairMutation object of the builder.
func (_u *FlaggedPairUpdate) Mutation() *FlaggedPairMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlaggedPairUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlaggedPairUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlaggedPairUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlaggedPairUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlaggedPairUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := flaggedpair.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "FlaggedPair.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamineeA(); ok {
		if err := flaggedpair.ExamineeAValidator(v); err != nil {
			return &ValidationError{Name: "examinee_a", err: fmt.Errorf(`ent: validator failed for field "FlaggedPair.examinee_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamineeB(); ok {
		if err := flaggedpair.ExamineeBValidator(v); err != nil {
			return &ValidationError{Name: "examinee_b", err: fmt.Errorf(`ent: validator failed for field "FlaggedPair.examinee_b": %w`, err)}
		}
	}
	return nil
}

func (_u *FlaggedPairUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flaggedpair.Table, flaggedpair.Columns, sqlgraph.NewFieldSpec(flaggedpair.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(flaggedpair.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(flaggedpair.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(flaggedpair.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamineeA(); ok {
		_spec.SetField(flaggedpair.FieldExamineeA, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamineeB(); ok {
		_spec.SetField(flaggedpair.FieldExamineeB, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agreements(); ok {
		_spec.SetField(flaggedpair.FieldAgreements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgreements(); ok {
		_spec.AddField(flaggedpair.FieldAgreements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongAgreements(); ok {
		_spec.SetField(flaggedpair.FieldWrongAgreements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongAgreements(); ok {
		_spec.AddField(flaggedpair.FieldWrongAgreements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Differences(); ok {
		_spec.SetField(flaggedpair.FieldDifferences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifferences(); ok {
		_spec.AddField(flaggedpair.FieldDifferences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.KIndexAb(); ok {
		_spec.SetField(flaggedpair.FieldKIndexAb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedKIndexAb(); ok {
		_spec.AddField(flaggedpair.FieldKIndexAb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.KIndexBa(); ok {
		_spec.SetField(flaggedpair.FieldKIndexBa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedKIndexBa(); ok {
		_spec.AddField(flaggedpair.FieldKIndexBa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GbtZ(); ok {
		_spec.SetField(flaggedpair.FieldGbtZ, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGbtZ(); ok {
		_spec.AddField(flaggedpair.FieldGbtZ, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HarppHogan(); ok {
		_spec.SetField(flaggedpair.FieldHarppHogan, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHarppHogan(); ok {
		_spec.AddField(flaggedpair.FieldHarppHogan, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RarityScore(); ok {
		_spec.SetField(flaggedpair.FieldRarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRarityScore(); ok {
		_spec.AddField(flaggedpair.FieldRarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Suspicion(); ok {
		_spec.SetField(flaggedpair.FieldSuspicion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuspicion(); ok {
		_spec.AddField(flaggedpair.FieldSuspicion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(flaggedpair.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flaggedpair.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlaggedPairUpdateOne is the builder for updating a single FlaggedPair entity.
type FlaggedPairUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlaggedPairMutation
}

// SetRunID sets the "run_id" field.
func (_u *FlaggedPairUpdateOne) SetRunID(v string) *FlaggedPairUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableRunID(v *string) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *FlaggedPairUpdateOne) SetRank(v int) *FlaggedPairUpdateOne {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableRank(v *int) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *FlaggedPairUpdateOne) AddRank(v int) *FlaggedPairUpdateOne {
	_u.mutation.AddRank(v)
	return _u
}

// SetExamineeA sets the "examinee_a" field.
func (_u *FlaggedPairUpdateOne) SetExamineeA(v string) *FlaggedPairUpdateOne {
	_u.mutation.SetExamineeA(v)
	return _u
}

// SetNillableExamineeA sets the "examinee_a" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableExamineeA(v *string) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetExamineeA(*v)
	}
	return _u
}

// SetExamineeB sets the "examinee_b" field.
func (_u *FlaggedPairUpdateOne) SetExamineeB(v string) *FlaggedPairUpdateOne {
	_u.mutation.SetExamineeB(v)
	return _u
}

// SetNillableExamineeB sets the "examinee_b" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableExamineeB(v *string) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetExamineeB(*v)
	}
	return _u
}

// SetAgreements sets the "agreements" field.
func (_u *FlaggedPairUpdateOne) SetAgreements(v int) *FlaggedPairUpdateOne {
	_u.mutation.ResetAgreements()
	_u.mutation.SetAgreements(v)
	return _u
}

// SetNillableAgreements sets the "agreements" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableAgreements(v *int) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetAgreements(*v)
	}
	return _u
}

// AddAgreements adds value to the "agreements" field.
func (_u *FlaggedPairUpdateOne) AddAgreements(v int) *FlaggedPairUpdateOne {
	_u.mutation.AddAgreements(v)
	return _u
}

// SetWrongAgreements sets the "wrong_agreements" field.
func (_u *FlaggedPairUpdateOne) SetWrongAgreements(v int) *FlaggedPairUpdateOne {
	_u.mutation.ResetWrongAgreements()
	_u.mutation.SetWrongAgreements(v)
	return _u
}

// SetNillableWrongAgreements sets the "wrong_agreements" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableWrongAgreements(v *int) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetWrongAgreements(*v)
	}
	return _u
}

// AddWrongAgreements adds value to the "wrong_agreements" field.
func (_u *FlaggedPairUpdateOne) AddWrongAgreements(v int) *FlaggedPairUpdateOne {
	_u.mutation.AddWrongAgreements(v)
	return _u
}

// SetDifferences sets the "differences" field.
func (_u *FlaggedPairUpdateOne) SetDifferences(v int) *FlaggedPairUpdateOne {
	_u.mutation.ResetDifferences()
	_u.mutation.SetDifferences(v)
	return _u
}

// SetNillableDifferences sets the "differences" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableDifferences(v *int) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetDifferences(*v)
	}
	return _u
}

// AddDifferences adds value to the "differences" field.
func (_u *FlaggedPairUpdateOne) AddDifferences(v int) *FlaggedPairUpdateOne {
	_u.mutation.AddDifferences(v)
	return _u
}

// SetKIndexAb sets the "k_index_ab" field.
func (_u *FlaggedPairUpdateOne) SetKIndexAb(v float64) *FlaggedPairUpdateOne {
	_u.mutation.ResetKIndexAb()
	_u.mutation.SetKIndexAb(v)
	return _u
}

// SetNillableKIndexAb sets the "k_index_ab" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableKIndexAb(v *float64) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetKIndexAb(*v)
	}
	return _u
}

// AddKIndexAb adds value to the "k_index_ab" field.
func (_u *FlaggedPairUpdateOne) AddKIndexAb(v float64) *FlaggedPairUpdateOne {
	_u.mutation.AddKIndexAb(v)
	return _u
}

// SetKIndexBa sets the "k_index_ba" field.
func (_u *FlaggedPairUpdateOne) SetKIndexBa(v float64) *FlaggedPairUpdateOne {
	_u.mutation.ResetKIndexBa()
	_u.mutation.SetKIndexBa(v)
	return _u
}

// SetNillableKIndexBa sets the "k_index_ba" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableKIndexBa(v *float64) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetKIndexBa(*v)
	}
	return _u
}

// AddKIndexBa adds value to the "k_index_ba" field.
func (_u *FlaggedPairUpdateOne) AddKIndexBa(v float64) *FlaggedPairUpdateOne {
	_u.mutation.AddKIndexBa(v)
	return _u
}

// SetGbtZ sets the "gbt_z" field.
func (_u *FlaggedPairUpdateOne) SetGbtZ(v float64) *FlaggedPairUpdateOne {
	_u.mutation.ResetGbtZ()
	_u.mutation.SetGbtZ(v)
	return _u
}

// SetNillableGbtZ sets the "gbt_z" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableGbtZ(v *float64) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetGbtZ(*v)
	}
	return _u
}

// AddGbtZ adds value to the "gbt_z" field.
func (_u *FlaggedPairUpdateOne) AddGbtZ(v float64) *FlaggedPairUpdateOne {
	_u.mutation.AddGbtZ(v)
	return _u
}

// SetHarppHogan sets the "harpp_hogan" field.
func (_u *FlaggedPairUpdateOne) SetHarppHogan(v float64) *FlaggedPairUpdateOne {
	_u.mutation.ResetHarppHogan()
	_u.mutation.SetHarppHogan(v)
	return _u
}

// SetNillableHarppHogan sets the "harpp_hogan" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableHarppHogan(v *float64) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetHarppHogan(*v)
	}
	return _u
}

// AddHarppHogan adds value to the "harpp_hogan" field.
func (_u *FlaggedPairUpdateOne) AddHarppHogan(v float64) *FlaggedPairUpdateOne {
	_u.mutation.AddHarppHogan(v)
	return _u
}

// SetRarityScore sets the "rarity_score" field.
func (_u *FlaggedPairUpdateOne) SetRarityScore(v float64) *FlaggedPairUpdateOne {
	_u.mutation.ResetRarityScore()
	_u.mutation.SetRarityScore(v)
	return _u
}

// SetNillableRarityScore sets the "rarity_score" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableRarityScore(v *float64) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetRarityScore(*v)
	}
	return _u
}

// AddRarityScore adds value to the "rarity_score" field.
func (_u *FlaggedPairUpdateOne) AddRarityScore(v float64) *FlaggedPairUpdateOne {
	_u.mutation.AddRarityScore(v)
	return _u
}

// SetSuspicion sets the "suspicion" field.
func (_u *FlaggedPairUpdateOne) SetSuspicion(v float64) *FlaggedPairUpdateOne {
	_u.mutation.ResetSuspicion()
	_u.mutation.SetSuspicion(v)
	return _u
}

// SetNillableSuspicion sets the "suspicion" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableSuspicion(v *float64) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetSuspicion(*v)
	}
	return _u
}

// AddSuspicion adds value to the "suspicion" field.
func (_u *FlaggedPairUpdateOne) AddSuspicion(v float64) *FlaggedPairUpdateOne {
	_u.mutation.AddSuspicion(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *FlaggedPairUpdateOne) SetReason(v string) *FlaggedPairUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *FlaggedPairUpdateOne) SetNillableReason(v *string) *FlaggedPairUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the FlaggedPairMutation object of the builder.
func (_u *FlaggedPairUpdateOne) Mutation() *FlaggedPairMutation {
	return _u.mutation
}

// Where appends a list predicates to the FlaggedPairUpdate builder.
func (_u *FlaggedPairUpdateOne) Where(ps ...predicate.FlaggedPair) *FlaggedPairUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlaggedPairUpdateOne) Select(field string, fields ...string) *FlaggedPairUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FlaggedPair entity.
func (_u *FlaggedPairUpdateOne) Save(ctx context.Context) (*FlaggedPair, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlaggedPairUpdateOne) SaveX(ctx context.Context) *FlaggedPair {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlaggedPairUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlaggedPairUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlaggedPairUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := flaggedpair.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "FlaggedPair.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamineeA(); ok {
		if err := flaggedpair.ExamineeAValidator(v); err != nil {
			return &ValidationError{Name: "examinee_a", err: fmt.Errorf(`ent: validator failed for field "FlaggedPair.examinee_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamineeB(); ok {
		if err := flaggedpair.ExamineeBValidator(v); err != nil {
			return &ValidationError{Name: "examinee_b", err: fmt.Errorf(`ent: validator failed for field "FlaggedPair.examinee_b": %w`, err)}
		}
	}
	return nil
}

func (_u *FlaggedPairUpdateOne) sqlSave(ctx context.Context) (_node *FlaggedPair, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flaggedpair.Table, flaggedpair.Columns, sqlgraph.NewFieldSpec(flaggedpair.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FlaggedPair.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flaggedpair.FieldID)
		for _, f := range fields {
			if !flaggedpair.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flaggedpair.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(flaggedpair.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(flaggedpair.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(flaggedpair.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamineeA(); ok {
		_spec.SetField(flaggedpair.FieldExamineeA, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamineeB(); ok {
		_spec.SetField(flaggedpair.FieldExamineeB, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agreements(); ok {
		_spec.SetField(flaggedpair.FieldAgreements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgreements(); ok {
		_spec.AddField(flaggedpair.FieldAgreements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongAgreements(); ok {
		_spec.SetField(flaggedpair.FieldWrongAgreements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongAgreements(); ok {
		_spec.AddField(flaggedpair.FieldWrongAgreements, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Differences(); ok {
		_spec.SetField(flaggedpair.FieldDifferences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifferences(); ok {
		_spec.AddField(flaggedpair.FieldDifferences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.KIndexAb(); ok {
		_spec.SetField(flaggedpair.FieldKIndexAb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedKIndexAb(); ok {
		_spec.AddField(flaggedpair.FieldKIndexAb, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.KIndexBa(); ok {
		_spec.SetField(flaggedpair.FieldKIndexBa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedKIndexBa(); ok {
		_spec.AddField(flaggedpair.FieldKIndexBa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GbtZ(); ok {
		_spec.SetField(flaggedpair.FieldGbtZ, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGbtZ(); ok {
		_spec.AddField(flaggedpair.FieldGbtZ, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HarppHogan(); ok {
		_spec.SetField(flaggedpair.FieldHarppHogan, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHarppHogan(); ok {
		_spec.AddField(flaggedpair.FieldHarppHogan, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RarityScore(); ok {
		_spec.SetField(flaggedpair.FieldRarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRarityScore(); ok {
		_spec.AddField(flaggedpair.FieldRarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Suspicion(); ok {
		_spec.SetField(flaggedpair.FieldSuspicion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuspicion(); ok {
		_spec.AddField(flaggedpair.FieldSuspicion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(flaggedpair.FieldReason, field.TypeString, value)
	}
	_node = &FlaggedPair{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flaggedpair.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
