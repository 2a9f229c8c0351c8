// Code generated by ent, DO NOT EDIT.

package flaggedpair

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the flaggedpair type in the database.
	Label = "flagged_pair"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldRank holds the string denoting the rank field in the database.
	FieldRank = "rank"
	// FieldExamineeA holds the string denoting the examinee_a field in the database.
	FieldExamineeA = "examinee_a"
	// FieldExamineeB holds the string denoting the examinee_b field in the database.
	FieldExamineeB = "examinee_b"
	// FieldAgreements holds the string denoting the agreements field in the database.
	FieldAgreements = "agreements"
	// FieldWrongAgreements holds the string denoting the wrong_agreements field in the database.
	FieldWrongAgreements = "wrong_agreements"
	// FieldDifferences holds the string denoting the differences field in the database.
	FieldDifferences = "differences"
	// FieldKIndexAb holds the string denoting the k_index_ab field in the database.
	FieldKIndexAb = "k_index_ab"
	// FieldKIndexBa holds the string denoting the k_index_ba field in the database.
	FieldKIndexBa = "k_index_ba"
	// FieldGbtZ holds the string denoting the gbt_z field in the database.
	FieldGbtZ = "gbt_z"
	// FieldHarppHogan holds the string denoting the harpp_hogan field in the database.
	FieldHarppHogan = "harpp_hogan"
	// FieldRarityScore holds the string denoting the rarity_score field in the database.
	FieldRarityScore = "rarity_score"
	// FieldSuspicion holds the string denoting the suspicion field in the database.
	FieldSuspicion = "suspicion"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// Table holds the table name of the flaggedpair in the database.
	Table = "flagged_pairs"
)

// Columns holds all SQL columns for flaggedpair fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldRank,
	FieldExamineeA,
	FieldExamineeB,
	FieldAgreements,
	FieldWrongAgreements,
	FieldDifferences,
	FieldKIndexAb,
	FieldKIndexBa,
	FieldGbtZ,
	FieldHarppHogan,
	FieldRarityScore,
	FieldSuspicion,
	FieldReason,
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
	// ExamineeAValidator is a validator for the "examinee_a" field. It is called by the builders before save.
	ExamineeAValidator func(string) error
	// ExamineeBValidator is a validator for the "examinee_b" field. It is called by the builders before save.
	ExamineeBValidator func(string) error
)

// OrderOption defines the ordering options for the FlaggedPair queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByRank orders the results by the rank field.
func ByRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRank, opts...).ToFunc()
}

// ByExamineeA orders the results by the examinee_a field.
func ByExamineeA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamineeA, opts...).ToFunc()
}

// ByExamineeB orders the results by the examinee_b field.
func ByExamineeB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamineeB, opts...).ToFunc()
}

// ByAgreements orders the results by the agreements field.
func ByAgreements(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgreements, opts...).ToFunc()
}

// ByWrongAgreements orders the results by the wrong_agreements field.
func ByWrongAgreements(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongAgreements, opts...).ToFunc()
}

// ByDifferences orders the results by the differences field.
func ByDifferences(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifferences, opts...).ToFunc()
}

// ByKIndexAb orders the results by the k_index_ab field.
func ByKIndexAb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKIndexAb, opts...).ToFunc()
}

// ByKIndexBa orders the results by the k_index_ba field.
func ByKIndexBa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKIndexBa, opts...).ToFunc()
}

// ByGbtZ orders the results by the gbt_z field.
func ByGbtZ(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGbtZ, opts...).ToFunc()
}

// ByHarppHogan orders the results by the harpp_hogan field.
func ByHarppHogan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHarppHogan, opts...).ToFunc()
}

// ByRarityScore orders the results by the rarity_score field.
func ByRarityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRarityScore, opts...).ToFunc()
}

// BySuspicion orders the results by the suspicion field.
func BySuspicion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuspicion, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}
