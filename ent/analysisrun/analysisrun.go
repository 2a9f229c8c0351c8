// Code generated by ent, DO NOT EDIT.

package analysisrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisrun type in the database.
	Label = "analysis_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldKeyName holds the string denoting the key_name field in the database.
	FieldKeyName = "key_name"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldTotalExaminees holds the string denoting the total_examinees field in the database.
	FieldTotalExaminees = "total_examinees"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldTotalPairs holds the string denoting the total_pairs field in the database.
	FieldTotalPairs = "total_pairs"
	// FieldTotalFlagged holds the string denoting the total_flagged field in the database.
	FieldTotalFlagged = "total_flagged"
	// FieldThresholds holds the string denoting the thresholds field in the database.
	FieldThresholds = "thresholds"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the analysisrun in the database.
	Table = "analysis_runs"
)

// Columns holds all SQL columns for analysisrun fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldKeyName,
	FieldSource,
	FieldTotalExaminees,
	FieldQuestionCount,
	FieldTotalPairs,
	FieldTotalFlagged,
	FieldThresholds,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AnalysisRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByKeyName orders the results by the key_name field.
func ByKeyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyName, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByTotalExaminees orders the results by the total_examinees field.
func ByTotalExaminees(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalExaminees, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByTotalPairs orders the results by the total_pairs field.
func ByTotalPairs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPairs, opts...).ToFunc()
}

// ByTotalFlagged orders the results by the total_flagged field.
func ByTotalFlagged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFlagged, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
