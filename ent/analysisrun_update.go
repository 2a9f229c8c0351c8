// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/serkanatas/kopya/ent/analysisrun"
	"github.com/serkanatas/kopya/ent/predicate"
	"github.com/serkanatas/kopya/ent/schema"
)

// AnalysisRunUpdate is the builder for updating AnalysisRun entities.
type AnalysisRunUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisRunMutation
}

// Where appends a list predicates to the AnalysisRunUpdate builder.
func (_u *AnalysisRunUpdate) Where(ps ...predicate.AnalysisRun) *AnalysisRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *AnalysisRunUpdate) SetRunID(v string) *AnalysisRunUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableRunID(v *string) *AnalysisRunUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetKeyName sets the "key_name" field.
func (_u *AnalysisRunUpdate) SetKeyName(v string) *AnalysisRunUpdate {
	_u.mutation.SetKeyName(v)
	return _u
}

// SetNillableKeyName sets the "key_name" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableKeyName(v *string) *AnalysisRunUpdate {
	if v != nil {
		_u.SetKeyName(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AnalysisRunUpdate) SetSource(v string) *AnalysisRunUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableSource(v *string) *AnalysisRunUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTotalExaminees sets the "total_examinees" field.
func (_u *AnalysisRunUpdate) SetTotalExaminees(v int) *AnalysisRunUpdate {
	_u.mutation.ResetTotalExaminees()
	_u.mutation.SetTotalExaminees(v)
	return _u
}

// SetNillableTotalExaminees sets the "total_examinees" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableTotalExaminees(v *int) *AnalysisRunUpdate {
	if v != nil {
		_u.SetTotalExaminees(*v)
	}
	return _u
}

// AddTotalExaminees adds value to the "total_examinees" field.
func (_u *AnalysisRunUpdate) AddTotalExaminees(v int) *AnalysisRunUpdate {
	_u.mutation.AddTotalExaminees(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AnalysisRunUpdate) SetQuestionCount(v int) *AnalysisRunUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableQuestionCount(v *int) *AnalysisRunUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AnalysisRunUpdate) AddQuestionCount(v int) *AnalysisRunUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetTotalPairs sets the "total_pairs" field.
func (_u *AnalysisRunUpdate) SetTotalPairs(v int) *AnalysisRunUpdate {
	_u.mutation.ResetTotalPairs()
	_u.mutation.SetTotalPairs(v)
	return _u
}

// SetNillableTotalPairs sets the "total_pairs" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableTotalPairs(v *int) *AnalysisRunUpdate {
	if v != nil {
		_u.SetTotalPairs(*v)
	}
	return _u
}

// AddTotalPairs adds value to the "total_pairs" field.
func (_u *AnalysisRunUpdate) AddTotalPairs(v int) *AnalysisRunUpdate {
	_u.mutation.AddTotalPairs(v)
	return _u
}

// SetTotalFlagged sets the "total_flagged" field.
func (_u *AnalysisRunUpdate) SetTotalFlagged(v int) *AnalysisRunUpdate {
	_u.mutation.ResetTotalFlagged()
	_u.mutation.SetTotalFlagged(v)
	return _u
}

// SetNillableTotalFlagged sets the "total_flagged" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableTotalFlagged(v *int) *AnalysisRunUpdate {
	if v != nil {
		_u.SetTotalFlagged(*v)
	}
	return _u
}

// AddTotalFlagged adds value to the "total_flagged" field.
func (_u *AnalysisRunUpdate) AddTotalFlagged(v int) *AnalysisRunUpdate {
	_u.mutation.AddTotalFlagged(v)
	return _u
}

// SetThresholds sets the "thresholds" field.
func (_u *AnalysisRunUpdate) SetThresholds(v schema.ThresholdSnapshot) *AnalysisRunUpdate {
	_u.mutation.SetThresholds(v)
	return _u
}

// SetNillableThresholds sets the "thresholds" field if the given value is not nil.
func (_u *AnalysisRunUpdate) SetNillableThresholds(v *schema.ThresholdSnapshot) *AnalysisRunUpdate {
	if v != nil {
		_u.SetThresholds(*v)
	}
	return _u
}

// Mutation returns the AnalysisRunMutation object of the builder.
func (_u *AnalysisRunUpdate) Mutation() *AnalysisRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRunUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := analysisrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.run_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrun.Table, analysisrun.Columns, sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(analysisrun.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyName(); ok {
		_spec.SetField(analysisrun.FieldKeyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(analysisrun.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalExaminees(); ok {
		_spec.SetField(analysisrun.FieldTotalExaminees, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExaminees(); ok {
		_spec.AddField(analysisrun.FieldTotalExaminees, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(analysisrun.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(analysisrun.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPairs(); ok {
		_spec.SetField(analysisrun.FieldTotalPairs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPairs(); ok {
		_spec.AddField(analysisrun.FieldTotalPairs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFlagged(); ok {
		_spec.SetField(analysisrun.FieldTotalFlagged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFlagged(); ok {
		_spec.AddField(analysisrun.FieldTotalFlagged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Thresholds(); ok {
		_spec.SetField(analysisrun.FieldThresholds, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisRunUpdateOne is the builder for updating a single AnalysisRun entity.
type AnalysisRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisRunMutation
}

// SetRunID sets the "run_id" field.
func (_u *AnalysisRunUpdateOne) SetRunID(v string) *AnalysisRunUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableRunID(v *string) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetKeyName sets the "key_name" field.
func (_u *AnalysisRunUpdateOne) SetKeyName(v string) *AnalysisRunUpdateOne {
	_u.mutation.SetKeyName(v)
	return _u
}

// SetNillableKeyName sets the "key_name" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableKeyName(v *string) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetKeyName(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AnalysisRunUpdateOne) SetSource(v string) *AnalysisRunUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableSource(v *string) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTotalExaminees sets the "total_examinees" field.
func (_u *AnalysisRunUpdateOne) SetTotalExaminees(v int) *AnalysisRunUpdateOne {
	_u.mutation.ResetTotalExaminees()
	_u.mutation.SetTotalExaminees(v)
	return _u
}

// SetNillableTotalExaminees sets the "total_examinees" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableTotalExaminees(v *int) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetTotalExaminees(*v)
	}
	return _u
}

// AddTotalExaminees adds value to the "total_examinees" field.
func (_u *AnalysisRunUpdateOne) AddTotalExaminees(v int) *AnalysisRunUpdateOne {
	_u.mutation.AddTotalExaminees(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AnalysisRunUpdateOne) SetQuestionCount(v int) *AnalysisRunUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableQuestionCount(v *int) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AnalysisRunUpdateOne) AddQuestionCount(v int) *AnalysisRunUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetTotalPairs sets the "total_pairs" field.
func (_u *AnalysisRunUpdateOne) SetTotalPairs(v int) *AnalysisRunUpdateOne {
	_u.mutation.ResetTotalPairs()
	_u.mutation.SetTotalPairs(v)
	return _u
}

// SetNillableTotalPairs sets the "total_pairs" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableTotalPairs(v *int) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetTotalPairs(*v)
	}
	return _u
}

// AddTotalPairs adds value to the "total_pairs" field.
func (_u *AnalysisRunUpdateOne) AddTotalPairs(v int) *AnalysisRunUpdateOne {
	_u.mutation.AddTotalPairs(v)
	return _u
}

// SetTotalFlagged sets the "total_flagged" field.
func (_u *AnalysisRunUpdateOne) SetTotalFlagged(v int) *AnalysisRunUpdateOne {
	_u.mutation.ResetTotalFlagged()
	_u.mutation.SetTotalFlagged(v)
	return _u
}

// SetNillableTotalFlagged sets the "total_flagged" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableTotalFlagged(v *int) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetTotalFlagged(*v)
	}
	return _u
}

// AddTotalFlagged adds value to the "total_flagged" field.
func (_u *AnalysisRunUpdateOne) AddTotalFlagged(v int) *AnalysisRunUpdateOne {
	_u.mutation.AddTotalFlagged(v)
	return _u
}

// SetThresholds sets the "thresholds" field.
func (_u *AnalysisRunUpdateOne) SetThresholds(v schema.ThresholdSnapshot) *AnalysisRunUpdateOne {
	_u.mutation.SetThresholds(v)
	return _u
}

// SetNillableThresholds sets the "thresholds" field if the given value is not nil.
func (_u *AnalysisRunUpdateOne) SetNillableThresholds(v *schema.ThresholdSnapshot) *AnalysisRunUpdateOne {
	if v != nil {
		_u.SetThresholds(*v)
	}
	return _u
}

// Mutation returns the AnalysisRunMutation object of the builder.
func (_u *AnalysisRunUpdateOne) Mutation() *AnalysisRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisRunUpdate builder.
func (_u *AnalysisRunUpdateOne) Where(ps ...predicate.AnalysisRun) *AnalysisRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisRunUpdateOne) Select(field string, fields ...string) *AnalysisRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisRun entity.
func (_u *AnalysisRunUpdateOne) Save(ctx context.Context) (*AnalysisRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRunUpdateOne) SaveX(ctx context.Context) *AnalysisRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRunUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := analysisrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.run_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisRunUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrun.Table, analysisrun.Columns, sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisrun.FieldID)
		for _, f := range fields {
			if !analysisrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisrun.FieldID {
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
		_spec.SetField(analysisrun.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyName(); ok {
		_spec.SetField(analysisrun.FieldKeyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(analysisrun.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalExaminees(); ok {
		_spec.SetField(analysisrun.FieldTotalExaminees, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExaminees(); ok {
		_spec.AddField(analysisrun.FieldTotalExaminees, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(analysisrun.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(analysisrun.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPairs(); ok {
		_spec.SetField(analysisrun.FieldTotalPairs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPairs(); ok {
		_spec.AddField(analysisrun.FieldTotalPairs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFlagged(); ok {
		_spec.SetField(analysisrun.FieldTotalFlagged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFlagged(); ok {
		_spec.AddField(analysisrun.FieldTotalFlagged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Thresholds(); ok {
		_spec.SetField(analysisrun.FieldThresholds, field.TypeJSON, value)
	}
	_node = &AnalysisRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
