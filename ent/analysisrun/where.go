// Code generated by ent, DO NOT EDIT.

package analysisrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/serkanatas/kopya/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldRunID, v))
}

// KeyName applies equality check predicate on the "key_name" field. It's identical to KeyNameEQ.
func KeyName(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldKeyName, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldSource, v))
}

// TotalExaminees applies equality check predicate on the "total_examinees" field. It's identical to TotalExamineesEQ.
func TotalExaminees(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTotalExaminees, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldQuestionCount, v))
}

// TotalPairs applies equality check predicate on the "total_pairs" field. It's identical to TotalPairsEQ.
func TotalPairs(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTotalPairs, v))
}

// TotalFlagged applies equality check predicate on the "total_flagged" field. It's identical to TotalFlaggedEQ.
func TotalFlagged(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTotalFlagged, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldRunID, v))
}

// KeyNameEQ applies the EQ predicate on the "key_name" field.
func KeyNameEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldKeyName, v))
}

// KeyNameNEQ applies the NEQ predicate on the "key_name" field.
func KeyNameNEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldKeyName, v))
}

// KeyNameIn applies the In predicate on the "key_name" field.
func KeyNameIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldKeyName, vs...))
}

// KeyNameNotIn applies the NotIn predicate on the "key_name" field.
func KeyNameNotIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldKeyName, vs...))
}

// KeyNameGT applies the GT predicate on the "key_name" field.
func KeyNameGT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldKeyName, v))
}

// KeyNameGTE applies the GTE predicate on the "key_name" field.
func KeyNameGTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldKeyName, v))
}

// KeyNameLT applies the LT predicate on the "key_name" field.
func KeyNameLT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldKeyName, v))
}

// KeyNameLTE applies the LTE predicate on the "key_name" field.
func KeyNameLTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldKeyName, v))
}

// KeyNameContains applies the Contains predicate on the "key_name" field.
func KeyNameContains(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContains(FieldKeyName, v))
}

// KeyNameHasPrefix applies the HasPrefix predicate on the "key_name" field.
func KeyNameHasPrefix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasPrefix(FieldKeyName, v))
}

// KeyNameHasSuffix applies the HasSuffix predicate on the "key_name" field.
func KeyNameHasSuffix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasSuffix(FieldKeyName, v))
}

// KeyNameEqualFold applies the EqualFold predicate on the "key_name" field.
func KeyNameEqualFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldKeyName, v))
}

// KeyNameContainsFold applies the ContainsFold predicate on the "key_name" field.
func KeyNameContainsFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldKeyName, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldSource, v))
}

// TotalExamineesEQ applies the EQ predicate on the "total_examinees" field.
func TotalExamineesEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTotalExaminees, v))
}

// TotalExamineesNEQ applies the NEQ predicate on the "total_examinees" field.
func TotalExamineesNEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldTotalExaminees, v))
}

// TotalExamineesIn applies the In predicate on the "total_examinees" field.
func TotalExamineesIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldTotalExaminees, vs...))
}

// TotalExamineesNotIn applies the NotIn predicate on the "total_examinees" field.
func TotalExamineesNotIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldTotalExaminees, vs...))
}

// TotalExamineesGT applies the GT predicate on the "total_examinees" field.
func TotalExamineesGT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldTotalExaminees, v))
}

// TotalExamineesGTE applies the GTE predicate on the "total_examinees" field.
func TotalExamineesGTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldTotalExaminees, v))
}

// TotalExamineesLT applies the LT predicate on the "total_examinees" field.
func TotalExamineesLT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldTotalExaminees, v))
}

// TotalExamineesLTE applies the LTE predicate on the "total_examinees" field.
func TotalExamineesLTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldTotalExaminees, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldQuestionCount, v))
}

// TotalPairsEQ applies the EQ predicate on the "total_pairs" field.
func TotalPairsEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTotalPairs, v))
}

// TotalPairsNEQ applies the NEQ predicate on the "total_pairs" field.
func TotalPairsNEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldTotalPairs, v))
}

// TotalPairsIn applies the In predicate on the "total_pairs" field.
func TotalPairsIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldTotalPairs, vs...))
}

// TotalPairsNotIn applies the NotIn predicate on the "total_pairs" field.
func TotalPairsNotIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldTotalPairs, vs...))
}

// TotalPairsGT applies the GT predicate on the "total_pairs" field.
func TotalPairsGT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldTotalPairs, v))
}

// TotalPairsGTE applies the GTE predicate on the "total_pairs" field.
func TotalPairsGTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldTotalPairs, v))
}

// TotalPairsLT applies the LT predicate on the "total_pairs" field.
func TotalPairsLT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldTotalPairs, v))
}

// TotalPairsLTE applies the LTE predicate on the "total_pairs" field.
func TotalPairsLTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldTotalPairs, v))
}

// TotalFlaggedEQ applies the EQ predicate on the "total_flagged" field.
func TotalFlaggedEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTotalFlagged, v))
}

// TotalFlaggedNEQ applies the NEQ predicate on the "total_flagged" field.
func TotalFlaggedNEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldTotalFlagged, v))
}

// TotalFlaggedIn applies the In predicate on the "total_flagged" field.
func TotalFlaggedIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldTotalFlagged, vs...))
}

// TotalFlaggedNotIn applies the NotIn predicate on the "total_flagged" field.
func TotalFlaggedNotIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldTotalFlagged, vs...))
}

// TotalFlaggedGT applies the GT predicate on the "total_flagged" field.
func TotalFlaggedGT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldTotalFlagged, v))
}

// TotalFlaggedGTE applies the GTE predicate on the "total_flagged" field.
func TotalFlaggedGTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldTotalFlagged, v))
}

// TotalFlaggedLT applies the LT predicate on the "total_flagged" field.
func TotalFlaggedLT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldTotalFlagged, v))
}

// TotalFlaggedLTE applies the LTE predicate on the "total_flagged" field.
func TotalFlaggedLTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldTotalFlagged, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisRun) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisRun) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisRun) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.NotPredicates(p))
}
