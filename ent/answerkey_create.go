// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/serkanatas/kopya/ent/answerkey"
)

// AnswerKeyCreate is the builder for creating a AnswerKey entity.
type AnswerKeyCreate struct {
	config
	mutation *AnswerKeyMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AnswerKeyCreate) SetName(v string) *AnswerKeyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *AnswerKeyCreate) SetQuestionCount(v int) *AnswerKeyCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *AnswerKeyCreate) SetAnswers(v map[string]string) *AnswerKeyCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnswerKeyCreate) SetCreatedAt(v time.Time) *AnswerKeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnswerKeyCreate) SetNillableCreatedAt(v *time.Time) *AnswerKeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AnswerKeyMutation object of the builder.
func (_c *AnswerKeyCreate) Mutation() *AnswerKeyMutation {
	return _c.mutation
}

// Save creates the AnswerKey in the database.
func (_c *AnswerKeyCreate) Save(ctx context.Context) (*AnswerKey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerKeyCreate) SaveX(ctx context.Context) *AnswerKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerKeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerKeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerKeyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := answerkey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerKeyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AnswerKey.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := answerkey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AnswerKey.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "AnswerKey.question_count"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "AnswerKey.answers"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnswerKey.created_at"`)}
	}
	return nil
}

func (_c *AnswerKeyCreate) sqlSave(ctx context.Context) (*AnswerKey, error) {
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

func (_c *AnswerKeyCreate) createSpec() (*AnswerKey, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerKey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerkey.Table, sqlgraph.NewFieldSpec(answerkey.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(answerkey.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(answerkey.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(answerkey.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(answerkey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AnswerKeyCreateBulk is the builder for creating many AnswerKey entities in bulk.
type AnswerKeyCreateBulk struct {
	config
	err      error
	builders []*AnswerKeyCreate
}

// Save creates the AnswerKey entities in the database.
func (_c *AnswerKeyCreateBulk) Save(ctx context.Context) ([]*AnswerKey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerKey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerKeyMutation)
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
func (_c *AnswerKeyCreateBulk) SaveX(ctx context.Context) []*AnswerKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerKeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
