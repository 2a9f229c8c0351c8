// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/serkanatas/kopya/ent/answerkey"
	"github.com/serkanatas/kopya/ent/predicate"
)

// AnswerKeyUpdate is the builder for updating AnswerKey entities.
type AnswerKeyUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerKeyMutation
}

// Where appends a list predicates to the AnswerKeyUpdate builder.
func (_u *AnswerKeyUpdate) Where(ps ...predicate.AnswerKey) *AnswerKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AnswerKeyUpdate) SetName(v string) *AnswerKeyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AnswerKeyUpdate) SetNillableName(v *string) *AnswerKeyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AnswerKeyUpdate) SetQuestionCount(v int) *AnswerKeyUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AnswerKeyUpdate) SetNillableQuestionCount(v *int) *AnswerKeyUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AnswerKeyUpdate) AddQuestionCount(v int) *AnswerKeyUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AnswerKeyUpdate) SetAnswers(v map[string]string) *AnswerKeyUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// Mutation returns the AnswerKeyMutation object of the builder.
func (_u *AnswerKeyUpdate) Mutation() *AnswerKeyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerKeyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerKeyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := answerkey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AnswerKey.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerkey.Table, answerkey.Columns, sqlgraph.NewFieldSpec(answerkey.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(answerkey.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(answerkey.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(answerkey.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(answerkey.FieldAnswers, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerkey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerKeyUpdateOne is the builder for updating a single AnswerKey entity.
type AnswerKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerKeyMutation
}

// SetName sets the "name" field.
func (_u *AnswerKeyUpdateOne) SetName(v string) *AnswerKeyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AnswerKeyUpdateOne) SetNillableName(v *string) *AnswerKeyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AnswerKeyUpdateOne) SetQuestionCount(v int) *AnswerKeyUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AnswerKeyUpdateOne) SetNillableQuestionCount(v *int) *AnswerKeyUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AnswerKeyUpdateOne) AddQuestionCount(v int) *AnswerKeyUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AnswerKeyUpdateOne) SetAnswers(v map[string]string) *AnswerKeyUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// Mutation returns the AnswerKeyMutation object of the builder.
func (_u *AnswerKeyUpdateOne) Mutation() *AnswerKeyMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerKeyUpdate builder.
func (_u *AnswerKeyUpdateOne) Where(ps ...predicate.AnswerKey) *AnswerKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerKeyUpdateOne) Select(field string, fields ...string) *AnswerKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerKey entity.
func (_u *AnswerKeyUpdateOne) Save(ctx context.Context) (*AnswerKey, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerKeyUpdateOne) SaveX(ctx context.Context) *AnswerKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerKeyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := answerkey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AnswerKey.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerKeyUpdateOne) sqlSave(ctx context.Context) (_node *AnswerKey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerkey.Table, answerkey.Columns, sqlgraph.NewFieldSpec(answerkey.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerkey.FieldID)
		for _, f := range fields {
			if !answerkey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerkey.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(answerkey.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(answerkey.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(answerkey.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(answerkey.FieldAnswers, field.TypeJSON, value)
	}
	_node = &AnswerKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerkey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
