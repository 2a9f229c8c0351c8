// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/serkanatas/kopya/ent/analysisrun"
	"github.com/serkanatas/kopya/ent/schema"
)

// AnalysisRun is the model entity for the AnalysisRun schema.
type AnalysisRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID identifying the run
	RunID string `json:"run_id,omitempty"`
	// Name of the answer key used, empty for ad-hoc keys
	KeyName string `json:"key_name,omitempty"`
	// Input the response table came from, e.g. a file name
	Source string `json:"source,omitempty"`
	// TotalExaminees holds the value of the "total_examinees" field.
	TotalExaminees int `json:"total_examinees,omitempty"`
	// Questions in the analyzed response table
	QuestionCount int `json:"question_count,omitempty"`
	// TotalPairs holds the value of the "total_pairs" field.
	TotalPairs int `json:"total_pairs,omitempty"`
	// TotalFlagged holds the value of the "total_flagged" field.
	TotalFlagged int `json:"total_flagged,omitempty"`
	// Classifier configuration in force for this run
	Thresholds schema.ThresholdSnapshot `json:"thresholds,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisrun.FieldThresholds:
			values[i] = new([]byte)
		case analysisrun.FieldID, analysisrun.FieldTotalExaminees, analysisrun.FieldQuestionCount, analysisrun.FieldTotalPairs, analysisrun.FieldTotalFlagged:
			values[i] = new(sql.NullInt64)
		case analysisrun.FieldRunID, analysisrun.FieldKeyName, analysisrun.FieldSource:
			values[i] = new(sql.NullString)
		case analysisrun.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisRun fields.
func (_m *AnalysisRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisrun.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case analysisrun.FieldKeyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_name", values[i])
			} else if value.Valid {
				_m.KeyName = value.String
			}
		case analysisrun.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case analysisrun.FieldTotalExaminees:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_examinees", values[i])
			} else if value.Valid {
				_m.TotalExaminees = int(value.Int64)
			}
		case analysisrun.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case analysisrun.FieldTotalPairs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_pairs", values[i])
			} else if value.Valid {
				_m.TotalPairs = int(value.Int64)
			}
		case analysisrun.FieldTotalFlagged:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_flagged", values[i])
			} else if value.Valid {
				_m.TotalFlagged = int(value.Int64)
			}
		case analysisrun.FieldThresholds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field thresholds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Thresholds); err != nil {
					return fmt.Errorf("unmarshal field thresholds: %w", err)
				}
			}
		case analysisrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisRun.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisRun.
// Note that you need to call AnalysisRun.Unwrap() before calling this method if this AnalysisRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisRun) Update() *AnalysisRunUpdateOne {
	return NewAnalysisRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisRun) Unwrap() *AnalysisRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisRun) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("key_name=")
	builder.WriteString(_m.KeyName)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("total_examinees=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalExaminees))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("total_pairs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPairs))
	builder.WriteString(", ")
	builder.WriteString("total_flagged=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFlagged))
	builder.WriteString(", ")
	builder.WriteString("thresholds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Thresholds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisRuns is a parsable slice of AnalysisRun.
type AnalysisRuns []*AnalysisRun
