// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/serkanatas/kopya/ent/analysisrun"
	"github.com/serkanatas/kopya/ent/answerkey"
	"github.com/serkanatas/kopya/ent/flaggedpair"
	"github.com/serkanatas/kopya/ent/predicate"
	"github.com/serkanatas/kopya/ent/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisRun = "AnalysisRun"
	TypeAnswerKey   = "AnswerKey"
	TypeFlaggedPair = "FlaggedPair"
)

// AnalysisRunMutation represents an operation that mutates the AnalysisRun nodes in the graph.
type AnalysisRunMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	run_id             *string
	key_name           *string
	source             *string
	total_examinees    *int
	addtotal_examinees *int
	question_count     *int
	addquestion_count  *int
	total_pairs        *int
	addtotal_pairs     *int
	total_flagged      *int
	addtotal_flagged   *int
	thresholds         *schema.ThresholdSnapshot
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AnalysisRun, error)
	predicates         []predicate.AnalysisRun
}

var _ ent.Mutation = (*AnalysisRunMutation)(nil)

// analysisrunOption allows management of the mutation configuration using functional options.
type analysisrunOption func(*AnalysisRunMutation)

// newAnalysisRunMutation creates new mutation for the AnalysisRun entity.
func newAnalysisRunMutation(c config, op Op, opts ...analysisrunOption) *AnalysisRunMutation {
	m := &AnalysisRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisRunID sets the ID field of the mutation.
func withAnalysisRunID(id int) analysisrunOption {
	return func(m *AnalysisRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisRun
		)
		m.oldValue = func(ctx context.Context) (*AnalysisRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisRun sets the old AnalysisRun of the mutation.
func withAnalysisRun(node *AnalysisRun) analysisrunOption {
	return func(m *AnalysisRunMutation) {
		m.oldValue = func(context.Context) (*AnalysisRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AnalysisRunMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AnalysisRunMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AnalysisRunMutation) ResetRunID() {
	m.run_id = nil
}

// SetKeyName sets the "key_name" field.
func (m *AnalysisRunMutation) SetKeyName(s string) {
	m.key_name = &s
}

// KeyName returns the value of the "key_name" field in the mutation.
func (m *AnalysisRunMutation) KeyName() (r string, exists bool) {
	v := m.key_name
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyName returns the old "key_name" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldKeyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyName: %w", err)
	}
	return oldValue.KeyName, nil
}

// ResetKeyName resets all changes to the "key_name" field.
func (m *AnalysisRunMutation) ResetKeyName() {
	m.key_name = nil
}

// SetSource sets the "source" field.
func (m *AnalysisRunMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AnalysisRunMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AnalysisRunMutation) ResetSource() {
	m.source = nil
}

// SetTotalExaminees sets the "total_examinees" field.
func (m *AnalysisRunMutation) SetTotalExaminees(i int) {
	m.total_examinees = &i
	m.addtotal_examinees = nil
}

// TotalExaminees returns the value of the "total_examinees" field in the mutation.
func (m *AnalysisRunMutation) TotalExaminees() (r int, exists bool) {
	v := m.total_examinees
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalExaminees returns the old "total_examinees" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldTotalExaminees(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalExaminees is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalExaminees requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalExaminees: %w", err)
	}
	return oldValue.TotalExaminees, nil
}

// AddTotalExaminees adds i to the "total_examinees" field.
func (m *AnalysisRunMutation) AddTotalExaminees(i int) {
	if m.addtotal_examinees != nil {
		*m.addtotal_examinees += i
	} else {
		m.addtotal_examinees = &i
	}
}

// AddedTotalExaminees returns the value that was added to the "total_examinees" field in this mutation.
func (m *AnalysisRunMutation) AddedTotalExaminees() (r int, exists bool) {
	v := m.addtotal_examinees
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalExaminees resets all changes to the "total_examinees" field.
func (m *AnalysisRunMutation) ResetTotalExaminees() {
	m.total_examinees = nil
	m.addtotal_examinees = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *AnalysisRunMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *AnalysisRunMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *AnalysisRunMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *AnalysisRunMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *AnalysisRunMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetTotalPairs sets the "total_pairs" field.
func (m *AnalysisRunMutation) SetTotalPairs(i int) {
	m.total_pairs = &i
	m.addtotal_pairs = nil
}

// TotalPairs returns the value of the "total_pairs" field in the mutation.
func (m *AnalysisRunMutation) TotalPairs() (r int, exists bool) {
	v := m.total_pairs
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPairs returns the old "total_pairs" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldTotalPairs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPairs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPairs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPairs: %w", err)
	}
	return oldValue.TotalPairs, nil
}

// AddTotalPairs adds i to the "total_pairs" field.
func (m *AnalysisRunMutation) AddTotalPairs(i int) {
	if m.addtotal_pairs != nil {
		*m.addtotal_pairs += i
	} else {
		m.addtotal_pairs = &i
	}
}

// AddedTotalPairs returns the value that was added to the "total_pairs" field in this mutation.
func (m *AnalysisRunMutation) AddedTotalPairs() (r int, exists bool) {
	v := m.addtotal_pairs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPairs resets all changes to the "total_pairs" field.
func (m *AnalysisRunMutation) ResetTotalPairs() {
	m.total_pairs = nil
	m.addtotal_pairs = nil
}

// SetTotalFlagged sets the "total_flagged" field.
func (m *AnalysisRunMutation) SetTotalFlagged(i int) {
	m.total_flagged = &i
	m.addtotal_flagged = nil
}

// TotalFlagged returns the value of the "total_flagged" field in the mutation.
func (m *AnalysisRunMutation) TotalFlagged() (r int, exists bool) {
	v := m.total_flagged
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFlagged returns the old "total_flagged" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldTotalFlagged(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFlagged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFlagged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFlagged: %w", err)
	}
	return oldValue.TotalFlagged, nil
}

// AddTotalFlagged adds i to the "total_flagged" field.
func (m *AnalysisRunMutation) AddTotalFlagged(i int) {
	if m.addtotal_flagged != nil {
		*m.addtotal_flagged += i
	} else {
		m.addtotal_flagged = &i
	}
}

// AddedTotalFlagged returns the value that was added to the "total_flagged" field in this mutation.
func (m *AnalysisRunMutation) AddedTotalFlagged() (r int, exists bool) {
	v := m.addtotal_flagged
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFlagged resets all changes to the "total_flagged" field.
func (m *AnalysisRunMutation) ResetTotalFlagged() {
	m.total_flagged = nil
	m.addtotal_flagged = nil
}

// SetThresholds sets the "thresholds" field.
func (m *AnalysisRunMutation) SetThresholds(ss schema.ThresholdSnapshot) {
	m.thresholds = &ss
}

// Thresholds returns the value of the "thresholds" field in the mutation.
func (m *AnalysisRunMutation) Thresholds() (r schema.ThresholdSnapshot, exists bool) {
	v := m.thresholds
	if v == nil {
		return
	}
	return *v, true
}

// OldThresholds returns the old "thresholds" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldThresholds(ctx context.Context) (v schema.ThresholdSnapshot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThresholds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThresholds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThresholds: %w", err)
	}
	return oldValue.Thresholds, nil
}

// ResetThresholds resets all changes to the "thresholds" field.
func (m *AnalysisRunMutation) ResetThresholds() {
	m.thresholds = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AnalysisRunMutation builder.
func (m *AnalysisRunMutation) Where(ps ...predicate.AnalysisRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisRun).
func (m *AnalysisRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisRunMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.run_id != nil {
		fields = append(fields, analysisrun.FieldRunID)
	}
	if m.key_name != nil {
		fields = append(fields, analysisrun.FieldKeyName)
	}
	if m.source != nil {
		fields = append(fields, analysisrun.FieldSource)
	}
	if m.total_examinees != nil {
		fields = append(fields, analysisrun.FieldTotalExaminees)
	}
	if m.question_count != nil {
		fields = append(fields, analysisrun.FieldQuestionCount)
	}
	if m.total_pairs != nil {
		fields = append(fields, analysisrun.FieldTotalPairs)
	}
	if m.total_flagged != nil {
		fields = append(fields, analysisrun.FieldTotalFlagged)
	}
	if m.thresholds != nil {
		fields = append(fields, analysisrun.FieldThresholds)
	}
	if m.created_at != nil {
		fields = append(fields, analysisrun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisrun.FieldRunID:
		return m.RunID()
	case analysisrun.FieldKeyName:
		return m.KeyName()
	case analysisrun.FieldSource:
		return m.Source()
	case analysisrun.FieldTotalExaminees:
		return m.TotalExaminees()
	case analysisrun.FieldQuestionCount:
		return m.QuestionCount()
	case analysisrun.FieldTotalPairs:
		return m.TotalPairs()
	case analysisrun.FieldTotalFlagged:
		return m.TotalFlagged()
	case analysisrun.FieldThresholds:
		return m.Thresholds()
	case analysisrun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisrun.FieldRunID:
		return m.OldRunID(ctx)
	case analysisrun.FieldKeyName:
		return m.OldKeyName(ctx)
	case analysisrun.FieldSource:
		return m.OldSource(ctx)
	case analysisrun.FieldTotalExaminees:
		return m.OldTotalExaminees(ctx)
	case analysisrun.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case analysisrun.FieldTotalPairs:
		return m.OldTotalPairs(ctx)
	case analysisrun.FieldTotalFlagged:
		return m.OldTotalFlagged(ctx)
	case analysisrun.FieldThresholds:
		return m.OldThresholds(ctx)
	case analysisrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisrun.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case analysisrun.FieldKeyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyName(v)
		return nil
	case analysisrun.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case analysisrun.FieldTotalExaminees:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalExaminees(v)
		return nil
	case analysisrun.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case analysisrun.FieldTotalPairs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPairs(v)
		return nil
	case analysisrun.FieldTotalFlagged:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFlagged(v)
		return nil
	case analysisrun.FieldThresholds:
		v, ok := value.(schema.ThresholdSnapshot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThresholds(v)
		return nil
	case analysisrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_examinees != nil {
		fields = append(fields, analysisrun.FieldTotalExaminees)
	}
	if m.addquestion_count != nil {
		fields = append(fields, analysisrun.FieldQuestionCount)
	}
	if m.addtotal_pairs != nil {
		fields = append(fields, analysisrun.FieldTotalPairs)
	}
	if m.addtotal_flagged != nil {
		fields = append(fields, analysisrun.FieldTotalFlagged)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisrun.FieldTotalExaminees:
		return m.AddedTotalExaminees()
	case analysisrun.FieldQuestionCount:
		return m.AddedQuestionCount()
	case analysisrun.FieldTotalPairs:
		return m.AddedTotalPairs()
	case analysisrun.FieldTotalFlagged:
		return m.AddedTotalFlagged()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisrun.FieldTotalExaminees:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalExaminees(v)
		return nil
	case analysisrun.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	case analysisrun.FieldTotalPairs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPairs(v)
		return nil
	case analysisrun.FieldTotalFlagged:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFlagged(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisRunMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisRunMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnalysisRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisRunMutation) ResetField(name string) error {
	switch name {
	case analysisrun.FieldRunID:
		m.ResetRunID()
		return nil
	case analysisrun.FieldKeyName:
		m.ResetKeyName()
		return nil
	case analysisrun.FieldSource:
		m.ResetSource()
		return nil
	case analysisrun.FieldTotalExaminees:
		m.ResetTotalExaminees()
		return nil
	case analysisrun.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case analysisrun.FieldTotalPairs:
		m.ResetTotalPairs()
		return nil
	case analysisrun.FieldTotalFlagged:
		m.ResetTotalFlagged()
		return nil
	case analysisrun.FieldThresholds:
		m.ResetThresholds()
		return nil
	case analysisrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnalysisRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnalysisRun edge %s", name)
}

// AnswerKeyMutation represents an operation that mutates the AnswerKey nodes in the graph.
type AnswerKeyMutation struct {
	config
	op                Op
	typ               string
	id                *int
	name              *string
	question_count    *int
	addquestion_count *int
	answers           *map[string]string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AnswerKey, error)
	predicates        []predicate.AnswerKey
}

var _ ent.Mutation = (*AnswerKeyMutation)(nil)

// answerkeyOption allows management of the mutation configuration using functional options.
type answerkeyOption func(*AnswerKeyMutation)

// newAnswerKeyMutation creates new mutation for the AnswerKey entity.
func newAnswerKeyMutation(c config, op Op, opts ...answerkeyOption) *AnswerKeyMutation {
	m := &AnswerKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerKeyID sets the ID field of the mutation.
func withAnswerKeyID(id int) answerkeyOption {
	return func(m *AnswerKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerKey
		)
		m.oldValue = func(ctx context.Context) (*AnswerKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerKey sets the old AnswerKey of the mutation.
func withAnswerKey(node *AnswerKey) answerkeyOption {
	return func(m *AnswerKeyMutation) {
		m.oldValue = func(context.Context) (*AnswerKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerKeyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerKeyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AnswerKeyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AnswerKeyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AnswerKey entity.
// If the AnswerKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerKeyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AnswerKeyMutation) ResetName() {
	m.name = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *AnswerKeyMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *AnswerKeyMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the AnswerKey entity.
// If the AnswerKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerKeyMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *AnswerKeyMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *AnswerKeyMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *AnswerKeyMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetAnswers sets the "answers" field.
func (m *AnswerKeyMutation) SetAnswers(value map[string]string) {
	m.answers = &value
}

// Answers returns the value of the "answers" field in the mutation.
func (m *AnswerKeyMutation) Answers() (r map[string]string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the AnswerKey entity.
// If the AnswerKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerKeyMutation) OldAnswers(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// ResetAnswers resets all changes to the "answers" field.
func (m *AnswerKeyMutation) ResetAnswers() {
	m.answers = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnswerKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnswerKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnswerKey entity.
// If the AnswerKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnswerKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AnswerKeyMutation builder.
func (m *AnswerKeyMutation) Where(ps ...predicate.AnswerKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerKey).
func (m *AnswerKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerKeyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, answerkey.FieldName)
	}
	if m.question_count != nil {
		fields = append(fields, answerkey.FieldQuestionCount)
	}
	if m.answers != nil {
		fields = append(fields, answerkey.FieldAnswers)
	}
	if m.created_at != nil {
		fields = append(fields, answerkey.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerkey.FieldName:
		return m.Name()
	case answerkey.FieldQuestionCount:
		return m.QuestionCount()
	case answerkey.FieldAnswers:
		return m.Answers()
	case answerkey.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerkey.FieldName:
		return m.OldName(ctx)
	case answerkey.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case answerkey.FieldAnswers:
		return m.OldAnswers(ctx)
	case answerkey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerkey.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case answerkey.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case answerkey.FieldAnswers:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case answerkey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerKeyMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_count != nil {
		fields = append(fields, answerkey.FieldQuestionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerKeyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerkey.FieldQuestionCount:
		return m.AddedQuestionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerkey.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerKeyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerKeyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnswerKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerKeyMutation) ResetField(name string) error {
	switch name {
	case answerkey.FieldName:
		m.ResetName()
		return nil
	case answerkey.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case answerkey.FieldAnswers:
		m.ResetAnswers()
		return nil
	case answerkey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnswerKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerKey edge %s", name)
}

// FlaggedPairMutation represents an operation that mutates the FlaggedPair nodes in the graph.
type FlaggedPairMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	run_id              *string
	rank                *int
	addrank             *int
	examinee_a          *string
	examinee_b          *string
	agreements          *int
	addagreements       *int
	wrong_agreements    *int
	addwrong_agreements *int
	differences         *int
	adddifferences      *int
	k_index_ab          *float64
	addk_index_ab       *float64
	k_index_ba          *float64
	addk_index_ba       *float64
	gbt_z               *float64
	addgbt_z            *float64
	harpp_hogan         *float64
	addharpp_hogan      *float64
	rarity_score        *float64
	addrarity_score     *float64
	suspicion           *float64
	addsuspicion        *float64
	reason              *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*FlaggedPair, error)
	predicates          []predicate.FlaggedPair
}

var _ ent.Mutation = (*FlaggedPairMutation)(nil)

// flaggedpairOption allows management of the mutation configuration using functional options.
type flaggedpairOption func(*FlaggedPairMutation)

// newFlaggedPairMutation creates new mutation for the FlaggedPair entity.
func newFlaggedPairMutation(c config, op Op, opts ...flaggedpairOption) *FlaggedPairMutation {
	m := &FlaggedPairMutation{
		config:        c,
		op:            op,
		typ:           TypeFlaggedPair,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlaggedPairID sets the ID field of the mutation.
func withFlaggedPairID(id int) flaggedpairOption {
	return func(m *FlaggedPairMutation) {
		var (
			err   error
			once  sync.Once
			value *FlaggedPair
		)
		m.oldValue = func(ctx context.Context) (*FlaggedPair, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FlaggedPair.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlaggedPair sets the old FlaggedPair of the mutation.
func withFlaggedPair(node *FlaggedPair) flaggedpairOption {
	return func(m *FlaggedPairMutation) {
		m.oldValue = func(context.Context) (*FlaggedPair, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlaggedPairMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlaggedPairMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlaggedPairMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlaggedPairMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FlaggedPair.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *FlaggedPairMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *FlaggedPairMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *FlaggedPairMutation) ResetRunID() {
	m.run_id = nil
}

// SetRank sets the "rank" field.
func (m *FlaggedPairMutation) SetRank(i int) {
	m.rank = &i
	m.addrank = nil
}

// Rank returns the value of the "rank" field in the mutation.
func (m *FlaggedPairMutation) Rank() (r int, exists bool) {
	v := m.rank
	if v == nil {
		return
	}
	return *v, true
}

// OldRank returns the old "rank" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRank: %w", err)
	}
	return oldValue.Rank, nil
}

// AddRank adds i to the "rank" field.
func (m *FlaggedPairMutation) AddRank(i int) {
	if m.addrank != nil {
		*m.addrank += i
	} else {
		m.addrank = &i
	}
}

// AddedRank returns the value that was added to the "rank" field in this mutation.
func (m *FlaggedPairMutation) AddedRank() (r int, exists bool) {
	v := m.addrank
	if v == nil {
		return
	}
	return *v, true
}

// ResetRank resets all changes to the "rank" field.
func (m *FlaggedPairMutation) ResetRank() {
	m.rank = nil
	m.addrank = nil
}

// SetExamineeA sets the "examinee_a" field.
func (m *FlaggedPairMutation) SetExamineeA(s string) {
	m.examinee_a = &s
}

// ExamineeA returns the value of the "examinee_a" field in the mutation.
func (m *FlaggedPairMutation) ExamineeA() (r string, exists bool) {
	v := m.examinee_a
	if v == nil {
		return
	}
	return *v, true
}

// OldExamineeA returns the old "examinee_a" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldExamineeA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamineeA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamineeA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamineeA: %w", err)
	}
	return oldValue.ExamineeA, nil
}

// ResetExamineeA resets all changes to the "examinee_a" field.
func (m *FlaggedPairMutation) ResetExamineeA() {
	m.examinee_a = nil
}

// SetExamineeB sets the "examinee_b" field.
func (m *FlaggedPairMutation) SetExamineeB(s string) {
	m.examinee_b = &s
}

// ExamineeB returns the value of the "examinee_b" field in the mutation.
func (m *FlaggedPairMutation) ExamineeB() (r string, exists bool) {
	v := m.examinee_b
	if v == nil {
		return
	}
	return *v, true
}

// OldExamineeB returns the old "examinee_b" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldExamineeB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamineeB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamineeB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamineeB: %w", err)
	}
	return oldValue.ExamineeB, nil
}

// ResetExamineeB resets all changes to the "examinee_b" field.
func (m *FlaggedPairMutation) ResetExamineeB() {
	m.examinee_b = nil
}

// SetAgreements sets the "agreements" field.
func (m *FlaggedPairMutation) SetAgreements(i int) {
	m.agreements = &i
	m.addagreements = nil
}

// Agreements returns the value of the "agreements" field in the mutation.
func (m *FlaggedPairMutation) Agreements() (r int, exists bool) {
	v := m.agreements
	if v == nil {
		return
	}
	return *v, true
}

// OldAgreements returns the old "agreements" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldAgreements(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgreements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgreements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgreements: %w", err)
	}
	return oldValue.Agreements, nil
}

// AddAgreements adds i to the "agreements" field.
func (m *FlaggedPairMutation) AddAgreements(i int) {
	if m.addagreements != nil {
		*m.addagreements += i
	} else {
		m.addagreements = &i
	}
}

// AddedAgreements returns the value that was added to the "agreements" field in this mutation.
func (m *FlaggedPairMutation) AddedAgreements() (r int, exists bool) {
	v := m.addagreements
	if v == nil {
		return
	}
	return *v, true
}

// ResetAgreements resets all changes to the "agreements" field.
func (m *FlaggedPairMutation) ResetAgreements() {
	m.agreements = nil
	m.addagreements = nil
}

// SetWrongAgreements sets the "wrong_agreements" field.
func (m *FlaggedPairMutation) SetWrongAgreements(i int) {
	m.wrong_agreements = &i
	m.addwrong_agreements = nil
}

// WrongAgreements returns the value of the "wrong_agreements" field in the mutation.
func (m *FlaggedPairMutation) WrongAgreements() (r int, exists bool) {
	v := m.wrong_agreements
	if v == nil {
		return
	}
	return *v, true
}

// OldWrongAgreements returns the old "wrong_agreements" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldWrongAgreements(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWrongAgreements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWrongAgreements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWrongAgreements: %w", err)
	}
	return oldValue.WrongAgreements, nil
}

// AddWrongAgreements adds i to the "wrong_agreements" field.
func (m *FlaggedPairMutation) AddWrongAgreements(i int) {
	if m.addwrong_agreements != nil {
		*m.addwrong_agreements += i
	} else {
		m.addwrong_agreements = &i
	}
}

// AddedWrongAgreements returns the value that was added to the "wrong_agreements" field in this mutation.
func (m *FlaggedPairMutation) AddedWrongAgreements() (r int, exists bool) {
	v := m.addwrong_agreements
	if v == nil {
		return
	}
	return *v, true
}

// ResetWrongAgreements resets all changes to the "wrong_agreements" field.
func (m *FlaggedPairMutation) ResetWrongAgreements() {
	m.wrong_agreements = nil
	m.addwrong_agreements = nil
}

// SetDifferences sets the "differences" field.
func (m *FlaggedPairMutation) SetDifferences(i int) {
	m.differences = &i
	m.adddifferences = nil
}

// Differences returns the value of the "differences" field in the mutation.
func (m *FlaggedPairMutation) Differences() (r int, exists bool) {
	v := m.differences
	if v == nil {
		return
	}
	return *v, true
}

// OldDifferences returns the old "differences" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldDifferences(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifferences: %w", err)
	}
	return oldValue.Differences, nil
}

// AddDifferences adds i to the "differences" field.
func (m *FlaggedPairMutation) AddDifferences(i int) {
	if m.adddifferences != nil {
		*m.adddifferences += i
	} else {
		m.adddifferences = &i
	}
}

// AddedDifferences returns the value that was added to the "differences" field in this mutation.
func (m *FlaggedPairMutation) AddedDifferences() (r int, exists bool) {
	v := m.adddifferences
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifferences resets all changes to the "differences" field.
func (m *FlaggedPairMutation) ResetDifferences() {
	m.differences = nil
	m.adddifferences = nil
}

// SetKIndexAb sets the "k_index_ab" field.
func (m *FlaggedPairMutation) SetKIndexAb(f float64) {
	m.k_index_ab = &f
	m.addk_index_ab = nil
}

// KIndexAb returns the value of the "k_index_ab" field in the mutation.
func (m *FlaggedPairMutation) KIndexAb() (r float64, exists bool) {
	v := m.k_index_ab
	if v == nil {
		return
	}
	return *v, true
}

// OldKIndexAb returns the old "k_index_ab" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldKIndexAb(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKIndexAb is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKIndexAb requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKIndexAb: %w", err)
	}
	return oldValue.KIndexAb, nil
}

// AddKIndexAb adds f to the "k_index_ab" field.
func (m *FlaggedPairMutation) AddKIndexAb(f float64) {
	if m.addk_index_ab != nil {
		*m.addk_index_ab += f
	} else {
		m.addk_index_ab = &f
	}
}

// AddedKIndexAb returns the value that was added to the "k_index_ab" field in this mutation.
func (m *FlaggedPairMutation) AddedKIndexAb() (r float64, exists bool) {
	v := m.addk_index_ab
	if v == nil {
		return
	}
	return *v, true
}

// ResetKIndexAb resets all changes to the "k_index_ab" field.
func (m *FlaggedPairMutation) ResetKIndexAb() {
	m.k_index_ab = nil
	m.addk_index_ab = nil
}

// SetKIndexBa sets the "k_index_ba" field.
func (m *FlaggedPairMutation) SetKIndexBa(f float64) {
	m.k_index_ba = &f
	m.addk_index_ba = nil
}

// KIndexBa returns the value of the "k_index_ba" field in the mutation.
func (m *FlaggedPairMutation) KIndexBa() (r float64, exists bool) {
	v := m.k_index_ba
	if v == nil {
		return
	}
	return *v, true
}

// OldKIndexBa returns the old "k_index_ba" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldKIndexBa(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKIndexBa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKIndexBa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKIndexBa: %w", err)
	}
	return oldValue.KIndexBa, nil
}

// AddKIndexBa adds f to the "k_index_ba" field.
func (m *FlaggedPairMutation) AddKIndexBa(f float64) {
	if m.addk_index_ba != nil {
		*m.addk_index_ba += f
	} else {
		m.addk_index_ba = &f
	}
}

// AddedKIndexBa returns the value that was added to the "k_index_ba" field in this mutation.
func (m *FlaggedPairMutation) AddedKIndexBa() (r float64, exists bool) {
	v := m.addk_index_ba
	if v == nil {
		return
	}
	return *v, true
}

// ResetKIndexBa resets all changes to the "k_index_ba" field.
func (m *FlaggedPairMutation) ResetKIndexBa() {
	m.k_index_ba = nil
	m.addk_index_ba = nil
}

// SetGbtZ sets the "gbt_z" field.
func (m *FlaggedPairMutation) SetGbtZ(f float64) {
	m.gbt_z = &f
	m.addgbt_z = nil
}

// GbtZ returns the value of the "gbt_z" field in the mutation.
func (m *FlaggedPairMutation) GbtZ() (r float64, exists bool) {
	v := m.gbt_z
	if v == nil {
		return
	}
	return *v, true
}

// OldGbtZ returns the old "gbt_z" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldGbtZ(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGbtZ is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGbtZ requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGbtZ: %w", err)
	}
	return oldValue.GbtZ, nil
}

// AddGbtZ adds f to the "gbt_z" field.
func (m *FlaggedPairMutation) AddGbtZ(f float64) {
	if m.addgbt_z != nil {
		*m.addgbt_z += f
	} else {
		m.addgbt_z = &f
	}
}

// AddedGbtZ returns the value that was added to the "gbt_z" field in this mutation.
func (m *FlaggedPairMutation) AddedGbtZ() (r float64, exists bool) {
	v := m.addgbt_z
	if v == nil {
		return
	}
	return *v, true
}

// ResetGbtZ resets all changes to the "gbt_z" field.
func (m *FlaggedPairMutation) ResetGbtZ() {
	m.gbt_z = nil
	m.addgbt_z = nil
}

// SetHarppHogan sets the "harpp_hogan" field.
func (m *FlaggedPairMutation) SetHarppHogan(f float64) {
	m.harpp_hogan = &f
	m.addharpp_hogan = nil
}

// HarppHogan returns the value of the "harpp_hogan" field in the mutation.
func (m *FlaggedPairMutation) HarppHogan() (r float64, exists bool) {
	v := m.harpp_hogan
	if v == nil {
		return
	}
	return *v, true
}

// OldHarppHogan returns the old "harpp_hogan" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldHarppHogan(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHarppHogan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHarppHogan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHarppHogan: %w", err)
	}
	return oldValue.HarppHogan, nil
}

// AddHarppHogan adds f to the "harpp_hogan" field.
func (m *FlaggedPairMutation) AddHarppHogan(f float64) {
	if m.addharpp_hogan != nil {
		*m.addharpp_hogan += f
	} else {
		m.addharpp_hogan = &f
	}
}

// AddedHarppHogan returns the value that was added to the "harpp_hogan" field in this mutation.
func (m *FlaggedPairMutation) AddedHarppHogan() (r float64, exists bool) {
	v := m.addharpp_hogan
	if v == nil {
		return
	}
	return *v, true
}

// ResetHarppHogan resets all changes to the "harpp_hogan" field.
func (m *FlaggedPairMutation) ResetHarppHogan() {
	m.harpp_hogan = nil
	m.addharpp_hogan = nil
}

// SetRarityScore sets the "rarity_score" field.
func (m *FlaggedPairMutation) SetRarityScore(f float64) {
	m.rarity_score = &f
	m.addrarity_score = nil
}

// RarityScore returns the value of the "rarity_score" field in the mutation.
func (m *FlaggedPairMutation) RarityScore() (r float64, exists bool) {
	v := m.rarity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRarityScore returns the old "rarity_score" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldRarityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRarityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRarityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRarityScore: %w", err)
	}
	return oldValue.RarityScore, nil
}

// AddRarityScore adds f to the "rarity_score" field.
func (m *FlaggedPairMutation) AddRarityScore(f float64) {
	if m.addrarity_score != nil {
		*m.addrarity_score += f
	} else {
		m.addrarity_score = &f
	}
}

// AddedRarityScore returns the value that was added to the "rarity_score" field in this mutation.
func (m *FlaggedPairMutation) AddedRarityScore() (r float64, exists bool) {
	v := m.addrarity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRarityScore resets all changes to the "rarity_score" field.
func (m *FlaggedPairMutation) ResetRarityScore() {
	m.rarity_score = nil
	m.addrarity_score = nil
}

// SetSuspicion sets the "suspicion" field.
func (m *FlaggedPairMutation) SetSuspicion(f float64) {
	m.suspicion = &f
	m.addsuspicion = nil
}

// Suspicion returns the value of the "suspicion" field in the mutation.
func (m *FlaggedPairMutation) Suspicion() (r float64, exists bool) {
	v := m.suspicion
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspicion returns the old "suspicion" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldSuspicion(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspicion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspicion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspicion: %w", err)
	}
	return oldValue.Suspicion, nil
}

// AddSuspicion adds f to the "suspicion" field.
func (m *FlaggedPairMutation) AddSuspicion(f float64) {
	if m.addsuspicion != nil {
		*m.addsuspicion += f
	} else {
		m.addsuspicion = &f
	}
}

// AddedSuspicion returns the value that was added to the "suspicion" field in this mutation.
func (m *FlaggedPairMutation) AddedSuspicion() (r float64, exists bool) {
	v := m.addsuspicion
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuspicion resets all changes to the "suspicion" field.
func (m *FlaggedPairMutation) ResetSuspicion() {
	m.suspicion = nil
	m.addsuspicion = nil
}

// SetReason sets the "reason" field.
func (m *FlaggedPairMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *FlaggedPairMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the FlaggedPair entity.
// If the FlaggedPair object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlaggedPairMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *FlaggedPairMutation) ResetReason() {
	m.reason = nil
}

// Where appends a list predicates to the FlaggedPairMutation builder.
func (m *FlaggedPairMutation) Where(ps ...predicate.FlaggedPair) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlaggedPairMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlaggedPairMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FlaggedPair, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlaggedPairMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlaggedPairMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FlaggedPair).
func (m *FlaggedPairMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlaggedPairMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.run_id != nil {
		fields = append(fields, flaggedpair.FieldRunID)
	}
	if m.rank != nil {
		fields = append(fields, flaggedpair.FieldRank)
	}
	if m.examinee_a != nil {
		fields = append(fields, flaggedpair.FieldExamineeA)
	}
	if m.examinee_b != nil {
		fields = append(fields, flaggedpair.FieldExamineeB)
	}
	if m.agreements != nil {
		fields = append(fields, flaggedpair.FieldAgreements)
	}
	if m.wrong_agreements != nil {
		fields = append(fields, flaggedpair.FieldWrongAgreements)
	}
	if m.differences != nil {
		fields = append(fields, flaggedpair.FieldDifferences)
	}
	if m.k_index_ab != nil {
		fields = append(fields, flaggedpair.FieldKIndexAb)
	}
	if m.k_index_ba != nil {
		fields = append(fields, flaggedpair.FieldKIndexBa)
	}
	if m.gbt_z != nil {
		fields = append(fields, flaggedpair.FieldGbtZ)
	}
	if m.harpp_hogan != nil {
		fields = append(fields, flaggedpair.FieldHarppHogan)
	}
	if m.rarity_score != nil {
		fields = append(fields, flaggedpair.FieldRarityScore)
	}
	if m.suspicion != nil {
		fields = append(fields, flaggedpair.FieldSuspicion)
	}
	if m.reason != nil {
		fields = append(fields, flaggedpair.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlaggedPairMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flaggedpair.FieldRunID:
		return m.RunID()
	case flaggedpair.FieldRank:
		return m.Rank()
	case flaggedpair.FieldExamineeA:
		return m.ExamineeA()
	case flaggedpair.FieldExamineeB:
		return m.ExamineeB()
	case flaggedpair.FieldAgreements:
		return m.Agreements()
	case flaggedpair.FieldWrongAgreements:
		return m.WrongAgreements()
	case flaggedpair.FieldDifferences:
		return m.Differences()
	case flaggedpair.FieldKIndexAb:
		return m.KIndexAb()
	case flaggedpair.FieldKIndexBa:
		return m.KIndexBa()
	case flaggedpair.FieldGbtZ:
		return m.GbtZ()
	case flaggedpair.FieldHarppHogan:
		return m.HarppHogan()
	case flaggedpair.FieldRarityScore:
		return m.RarityScore()
	case flaggedpair.FieldSuspicion:
		return m.Suspicion()
	case flaggedpair.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlaggedPairMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flaggedpair.FieldRunID:
		return m.OldRunID(ctx)
	case flaggedpair.FieldRank:
		return m.OldRank(ctx)
	case flaggedpair.FieldExamineeA:
		return m.OldExamineeA(ctx)
	case flaggedpair.FieldExamineeB:
		return m.OldExamineeB(ctx)
	case flaggedpair.FieldAgreements:
		return m.OldAgreements(ctx)
	case flaggedpair.FieldWrongAgreements:
		return m.OldWrongAgreements(ctx)
	case flaggedpair.FieldDifferences:
		return m.OldDifferences(ctx)
	case flaggedpair.FieldKIndexAb:
		return m.OldKIndexAb(ctx)
	case flaggedpair.FieldKIndexBa:
		return m.OldKIndexBa(ctx)
	case flaggedpair.FieldGbtZ:
		return m.OldGbtZ(ctx)
	case flaggedpair.FieldHarppHogan:
		return m.OldHarppHogan(ctx)
	case flaggedpair.FieldRarityScore:
		return m.OldRarityScore(ctx)
	case flaggedpair.FieldSuspicion:
		return m.OldSuspicion(ctx)
	case flaggedpair.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown FlaggedPair field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlaggedPairMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flaggedpair.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case flaggedpair.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRank(v)
		return nil
	case flaggedpair.FieldExamineeA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamineeA(v)
		return nil
	case flaggedpair.FieldExamineeB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamineeB(v)
		return nil
	case flaggedpair.FieldAgreements:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgreements(v)
		return nil
	case flaggedpair.FieldWrongAgreements:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWrongAgreements(v)
		return nil
	case flaggedpair.FieldDifferences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifferences(v)
		return nil
	case flaggedpair.FieldKIndexAb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKIndexAb(v)
		return nil
	case flaggedpair.FieldKIndexBa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKIndexBa(v)
		return nil
	case flaggedpair.FieldGbtZ:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGbtZ(v)
		return nil
	case flaggedpair.FieldHarppHogan:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHarppHogan(v)
		return nil
	case flaggedpair.FieldRarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRarityScore(v)
		return nil
	case flaggedpair.FieldSuspicion:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspicion(v)
		return nil
	case flaggedpair.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown FlaggedPair field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlaggedPairMutation) AddedFields() []string {
	var fields []string
	if m.addrank != nil {
		fields = append(fields, flaggedpair.FieldRank)
	}
	if m.addagreements != nil {
		fields = append(fields, flaggedpair.FieldAgreements)
	}
	if m.addwrong_agreements != nil {
		fields = append(fields, flaggedpair.FieldWrongAgreements)
	}
	if m.adddifferences != nil {
		fields = append(fields, flaggedpair.FieldDifferences)
	}
	if m.addk_index_ab != nil {
		fields = append(fields, flaggedpair.FieldKIndexAb)
	}
	if m.addk_index_ba != nil {
		fields = append(fields, flaggedpair.FieldKIndexBa)
	}
	if m.addgbt_z != nil {
		fields = append(fields, flaggedpair.FieldGbtZ)
	}
	if m.addharpp_hogan != nil {
		fields = append(fields, flaggedpair.FieldHarppHogan)
	}
	if m.addrarity_score != nil {
		fields = append(fields, flaggedpair.FieldRarityScore)
	}
	if m.addsuspicion != nil {
		fields = append(fields, flaggedpair.FieldSuspicion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlaggedPairMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case flaggedpair.FieldRank:
		return m.AddedRank()
	case flaggedpair.FieldAgreements:
		return m.AddedAgreements()
	case flaggedpair.FieldWrongAgreements:
		return m.AddedWrongAgreements()
	case flaggedpair.FieldDifferences:
		return m.AddedDifferences()
	case flaggedpair.FieldKIndexAb:
		return m.AddedKIndexAb()
	case flaggedpair.FieldKIndexBa:
		return m.AddedKIndexBa()
	case flaggedpair.FieldGbtZ:
		return m.AddedGbtZ()
	case flaggedpair.FieldHarppHogan:
		return m.AddedHarppHogan()
	case flaggedpair.FieldRarityScore:
		return m.AddedRarityScore()
	case flaggedpair.FieldSuspicion:
		return m.AddedSuspicion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlaggedPairMutation) AddField(name string, value ent.Value) error {
	switch name {
	case flaggedpair.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRank(v)
		return nil
	case flaggedpair.FieldAgreements:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgreements(v)
		return nil
	case flaggedpair.FieldWrongAgreements:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWrongAgreements(v)
		return nil
	case flaggedpair.FieldDifferences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifferences(v)
		return nil
	case flaggedpair.FieldKIndexAb:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKIndexAb(v)
		return nil
	case flaggedpair.FieldKIndexBa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKIndexBa(v)
		return nil
	case flaggedpair.FieldGbtZ:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGbtZ(v)
		return nil
	case flaggedpair.FieldHarppHogan:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHarppHogan(v)
		return nil
	case flaggedpair.FieldRarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRarityScore(v)
		return nil
	case flaggedpair.FieldSuspicion:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuspicion(v)
		return nil
	}
	return fmt.Errorf("unknown FlaggedPair numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlaggedPairMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlaggedPairMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlaggedPairMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FlaggedPair nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlaggedPairMutation) ResetField(name string) error {
	switch name {
	case flaggedpair.FieldRunID:
		m.ResetRunID()
		return nil
	case flaggedpair.FieldRank:
		m.ResetRank()
		return nil
	case flaggedpair.FieldExamineeA:
		m.ResetExamineeA()
		return nil
	case flaggedpair.FieldExamineeB:
		m.ResetExamineeB()
		return nil
	case flaggedpair.FieldAgreements:
		m.ResetAgreements()
		return nil
	case flaggedpair.FieldWrongAgreements:
		m.ResetWrongAgreements()
		return nil
	case flaggedpair.FieldDifferences:
		m.ResetDifferences()
		return nil
	case flaggedpair.FieldKIndexAb:
		m.ResetKIndexAb()
		return nil
	case flaggedpair.FieldKIndexBa:
		m.ResetKIndexBa()
		return nil
	case flaggedpair.FieldGbtZ:
		m.ResetGbtZ()
		return nil
	case flaggedpair.FieldHarppHogan:
		m.ResetHarppHogan()
		return nil
	case flaggedpair.FieldRarityScore:
		m.ResetRarityScore()
		return nil
	case flaggedpair.FieldSuspicion:
		m.ResetSuspicion()
		return nil
	case flaggedpair.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown FlaggedPair field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlaggedPairMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlaggedPairMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlaggedPairMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlaggedPairMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlaggedPairMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlaggedPairMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlaggedPairMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FlaggedPair unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlaggedPairMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FlaggedPair edge %s", name)
}
