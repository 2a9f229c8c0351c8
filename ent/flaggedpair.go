// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/serkanatas/kopya/ent/flaggedpair"
)

// FlaggedPair is the model entity for the FlaggedPair schema.
type FlaggedPair struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AnalysisRun this pair belongs to
	RunID string `json:"run_id,omitempty"`
	// Position in the run's suspicion ordering, starting at 0
	Rank int `json:"rank,omitempty"`
	// ExamineeA holds the value of the "examinee_a" field.
	ExamineeA string `json:"examinee_a,omitempty"`
	// ExamineeB holds the value of the "examinee_b" field.
	ExamineeB string `json:"examinee_b,omitempty"`
	// Agreements holds the value of the "agreements" field.
	Agreements int `json:"agreements,omitempty"`
	// WrongAgreements holds the value of the "wrong_agreements" field.
	WrongAgreements int `json:"wrong_agreements,omitempty"`
	// Differences holds the value of the "differences" field.
	Differences int `json:"differences,omitempty"`
	// KIndexAb holds the value of the "k_index_ab" field.
	KIndexAb float64 `json:"k_index_ab,omitempty"`
	// KIndexBa holds the value of the "k_index_ba" field.
	KIndexBa float64 `json:"k_index_ba,omitempty"`
	// GbtZ holds the value of the "gbt_z" field.
	GbtZ float64 `json:"gbt_z,omitempty"`
	// HarppHogan holds the value of the "harpp_hogan" field.
	HarppHogan float64 `json:"harpp_hogan,omitempty"`
	// RarityScore holds the value of the "rarity_score" field.
	RarityScore float64 `json:"rarity_score,omitempty"`
	// Suspicion holds the value of the "suspicion" field.
	Suspicion float64 `json:"suspicion,omitempty"`
	// Human-readable reason fragments joined with ' | '
	Reason       string `json:"reason,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FlaggedPair) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flaggedpair.FieldKIndexAb, flaggedpair.FieldKIndexBa, flaggedpair.FieldGbtZ, flaggedpair.FieldHarppHogan, flaggedpair.FieldRarityScore, flaggedpair.FieldSuspicion:
			values[i] = new(sql.NullFloat64)
		case flaggedpair.FieldID, flaggedpair.FieldRank, flaggedpair.FieldAgreements, flaggedpair.FieldWrongAgreements, flaggedpair.FieldDifferences:
			values[i] = new(sql.NullInt64)
		case flaggedpair.FieldRunID, flaggedpair.FieldExamineeA, flaggedpair.FieldExamineeB, flaggedpair.FieldReason:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FlaggedPair fields.
func (_m *FlaggedPair) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flaggedpair.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case flaggedpair.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case flaggedpair.FieldRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rank", values[i])
			} else if value.Valid {
				_m.Rank = int(value.Int64)
			}
		case flaggedpair.FieldExamineeA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field examinee_a", values[i])
			} else if value.Valid {
				_m.ExamineeA = value.String
			}
		case flaggedpair.FieldExamineeB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field examinee_b", values[i])
			} else if value.Valid {
				_m.ExamineeB = value.String
			}
		case flaggedpair.FieldAgreements:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agreements", values[i])
			} else if value.Valid {
				_m.Agreements = int(value.Int64)
			}
		case flaggedpair.FieldWrongAgreements:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong_agreements", values[i])
			} else if value.Valid {
				_m.WrongAgreements = int(value.Int64)
			}
		case flaggedpair.FieldDifferences:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field differences", values[i])
			} else if value.Valid {
				_m.Differences = int(value.Int64)
			}
		case flaggedpair.FieldKIndexAb:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field k_index_ab", values[i])
			} else if value.Valid {
				_m.KIndexAb = value.Float64
			}
		case flaggedpair.FieldKIndexBa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field k_index_ba", values[i])
			} else if value.Valid {
				_m.KIndexBa = value.Float64
			}
		case flaggedpair.FieldGbtZ:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gbt_z", values[i])
			} else if value.Valid {
				_m.GbtZ = value.Float64
			}
		case flaggedpair.FieldHarppHogan:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field harpp_hogan", values[i])
			} else if value.Valid {
				_m.HarppHogan = value.Float64
			}
		case flaggedpair.FieldRarityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rarity_score", values[i])
			} else if value.Valid {
				_m.RarityScore = value.Float64
			}
		case flaggedpair.FieldSuspicion:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field suspicion", values[i])
			} else if value.Valid {
				_m.Suspicion = value.Float64
			}
		case flaggedpair.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FlaggedPair.
// This includes values selected through modifiers, order, etc.
func (_m *FlaggedPair) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FlaggedPair.
// Note that you need to call FlaggedPair.Unwrap() before calling this method if this FlaggedPair
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FlaggedPair) Update() *FlaggedPairUpdateOne {
	return NewFlaggedPairClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FlaggedPair entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FlaggedPair) Unwrap() *FlaggedPair {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FlaggedPair is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FlaggedPair) String() string {
	var builder strings.Builder
	builder.WriteString("FlaggedPair(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rank))
	builder.WriteString(", ")
	builder.WriteString("examinee_a=")
	builder.WriteString(_m.ExamineeA)
	builder.WriteString(", ")
	builder.WriteString("examinee_b=")
	builder.WriteString(_m.ExamineeB)
	builder.WriteString(", ")
	builder.WriteString("agreements=")
	builder.WriteString(fmt.Sprintf("%v", _m.Agreements))
	builder.WriteString(", ")
	builder.WriteString("wrong_agreements=")
	builder.WriteString(fmt.Sprintf("%v", _m.WrongAgreements))
	builder.WriteString(", ")
	builder.WriteString("differences=")
	builder.WriteString(fmt.Sprintf("%v", _m.Differences))
	builder.WriteString(", ")
	builder.WriteString("k_index_ab=")
	builder.WriteString(fmt.Sprintf("%v", _m.KIndexAb))
	builder.WriteString(", ")
	builder.WriteString("k_index_ba=")
	builder.WriteString(fmt.Sprintf("%v", _m.KIndexBa))
	builder.WriteString(", ")
	builder.WriteString("gbt_z=")
	builder.WriteString(fmt.Sprintf("%v", _m.GbtZ))
	builder.WriteString(", ")
	builder.WriteString("harpp_hogan=")
	builder.WriteString(fmt.Sprintf("%v", _m.HarppHogan))
	builder.WriteString(", ")
	builder.WriteString("rarity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RarityScore))
	builder.WriteString(", ")
	builder.WriteString("suspicion=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suspicion))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteByte(')')
	return builder.String()
}

// FlaggedPairs is a parsable slice of FlaggedPair.
type FlaggedPairs []*FlaggedPair
