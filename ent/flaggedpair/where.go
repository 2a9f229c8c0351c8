// Code generated by ent, DO NOT EDIT.

package flaggedpair

import (
	"entgo.io/ent/dialect/sql"
	"github.com/serkanatas/kopya/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldRunID, v))
}

// Rank applies equality check predicate on the "rank" field. It's identical to RankEQ.
func Rank(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldRank, v))
}

// ExamineeA applies equality check predicate on the "examinee_a" field. It's identical to ExamineeAEQ.
func ExamineeA(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldExamineeA, v))
}

// ExamineeB applies equality check predicate on the "examinee_b" field. It's identical to ExamineeBEQ.
func ExamineeB(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldExamineeB, v))
}

// Agreements applies equality check predicate on the "agreements" field. It's identical to AgreementsEQ.
func Agreements(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldAgreements, v))
}

// WrongAgreements applies equality check predicate on the "wrong_agreements" field. It's identical to WrongAgreementsEQ.
func WrongAgreements(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldWrongAgreements, v))
}

// Differences applies equality check predicate on the "differences" field. It's identical to DifferencesEQ.
func Differences(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldDifferences, v))
}

// KIndexAb applies equality check predicate on the "k_index_ab" field. It's identical to KIndexAbEQ.
func KIndexAb(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldKIndexAb, v))
}

// KIndexBa applies equality check predicate on the "k_index_ba" field. It's identical to KIndexBaEQ.
func KIndexBa(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldKIndexBa, v))
}

// GbtZ applies equality check predicate on the "gbt_z" field. It's identical to GbtZEQ.
func GbtZ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldGbtZ, v))
}

// HarppHogan applies equality check predicate on the "harpp_hogan" field. It's identical to HarppHoganEQ.
func HarppHogan(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldHarppHogan, v))
}

// RarityScore applies equality check predicate on the "rarity_score" field. It's identical to RarityScoreEQ.
func RarityScore(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldRarityScore, v))
}

// Suspicion applies equality check predicate on the "suspicion" field. It's identical to SuspicionEQ.
func Suspicion(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldSuspicion, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldReason, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldContainsFold(FieldRunID, v))
}

// RankEQ applies the EQ predicate on the "rank" field.
func RankEQ(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldRank, v))
}

// RankNEQ applies the NEQ predicate on the "rank" field.
func RankNEQ(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldRank, v))
}

// RankIn applies the In predicate on the "rank" field.
func RankIn(vs ...int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldRank, vs...))
}

// RankNotIn applies the NotIn predicate on the "rank" field.
func RankNotIn(vs ...int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldRank, vs...))
}

// RankGT applies the GT predicate on the "rank" field.
func RankGT(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldRank, v))
}

// RankGTE applies the GTE predicate on the "rank" field.
func RankGTE(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldRank, v))
}

// RankLT applies the LT predicate on the "rank" field.
func RankLT(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldRank, v))
}

// RankLTE applies the LTE predicate on the "rank" field.
func RankLTE(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldRank, v))
}

// ExamineeAEQ applies the EQ predicate on the "examinee_a" field.
func ExamineeAEQ(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldExamineeA, v))
}

// ExamineeANEQ applies the NEQ predicate on the "examinee_a" field.
func ExamineeANEQ(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldExamineeA, v))
}

// ExamineeAIn applies the In predicate on the "examinee_a" field.
func ExamineeAIn(vs ...string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldExamineeA, vs...))
}

// ExamineeANotIn applies the NotIn predicate on the "examinee_a" field.
func ExamineeANotIn(vs ...string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldExamineeA, vs...))
}

// ExamineeAGT applies the GT predicate on the "examinee_a" field.
func ExamineeAGT(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldExamineeA, v))
}

// ExamineeAGTE applies the GTE predicate on the "examinee_a" field.
func ExamineeAGTE(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldExamineeA, v))
}

// ExamineeALT applies the LT predicate on the "examinee_a" field.
func ExamineeALT(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldExamineeA, v))
}

// ExamineeALTE applies the LTE predicate on the "examinee_a" field.
func ExamineeALTE(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldExamineeA, v))
}

// ExamineeAContains applies the Contains predicate on the "examinee_a" field.
func ExamineeAContains(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldContains(FieldExamineeA, v))
}

// ExamineeAHasPrefix applies the HasPrefix predicate on the "examinee_a" field.
func ExamineeAHasPrefix(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldHasPrefix(FieldExamineeA, v))
}

// ExamineeAHasSuffix applies the HasSuffix predicate on the "examinee_a" field.
func ExamineeAHasSuffix(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldHasSuffix(FieldExamineeA, v))
}

// ExamineeAEqualFold applies the EqualFold predicate on the "examinee_a" field.
func ExamineeAEqualFold(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEqualFold(FieldExamineeA, v))
}

// ExamineeAContainsFold applies the ContainsFold predicate on the "examinee_a" field.
func ExamineeAContainsFold(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldContainsFold(FieldExamineeA, v))
}

// ExamineeBEQ applies the EQ predicate on the "examinee_b" field.
func ExamineeBEQ(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldExamineeB, v))
}

// ExamineeBNEQ applies the NEQ predicate on the "examinee_b" field.
func ExamineeBNEQ(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldExamineeB, v))
}

// ExamineeBIn applies the In predicate on the "examinee_b" field.
func ExamineeBIn(vs ...string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldExamineeB, vs...))
}

// ExamineeBNotIn applies the NotIn predicate on the "examinee_b" field.
func ExamineeBNotIn(vs ...string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldExamineeB, vs...))
}

// ExamineeBGT applies the GT predicate on the "examinee_b" field.
func ExamineeBGT(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldExamineeB, v))
}

// ExamineeBGTE applies the GTE predicate on the "examinee_b" field.
func ExamineeBGTE(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldExamineeB, v))
}

// ExamineeBLT applies the LT predicate on the "examinee_b" field.
func ExamineeBLT(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldExamineeB, v))
}

// ExamineeBLTE applies the LTE predicate on the "examinee_b" field.
func ExamineeBLTE(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldExamineeB, v))
}

// ExamineeBContains applies the Contains predicate on the "examinee_b" field.
func ExamineeBContains(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldContains(FieldExamineeB, v))
}

// ExamineeBHasPrefix applies the HasPrefix predicate on the "examinee_b" field.
func ExamineeBHasPrefix(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldHasPrefix(FieldExamineeB, v))
}

// ExamineeBHasSuffix applies the HasSuffix predicate on the "examinee_b" field.
func ExamineeBHasSuffix(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldHasSuffix(FieldExamineeB, v))
}

// ExamineeBEqualFold applies the EqualFold predicate on the "examinee_b" field.
func ExamineeBEqualFold(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEqualFold(FieldExamineeB, v))
}

// ExamineeBContainsFold applies the ContainsFold predicate on the "examinee_b" field.
func ExamineeBContainsFold(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldContainsFold(FieldExamineeB, v))
}

// AgreementsEQ applies the EQ predicate on the "agreements" field.
func AgreementsEQ(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldAgreements, v))
}

// AgreementsNEQ applies the NEQ predicate on the "agreements" field.
func AgreementsNEQ(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldAgreements, v))
}

// AgreementsIn applies the In predicate on the "agreements" field.
func AgreementsIn(vs ...int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldAgreements, vs...))
}

// AgreementsNotIn applies the NotIn predicate on the "agreements" field.
func AgreementsNotIn(vs ...int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldAgreements, vs...))
}

// AgreementsGT applies the GT predicate on the "agreements" field.
func AgreementsGT(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldAgreements, v))
}

// AgreementsGTE applies the GTE predicate on the "agreements" field.
func AgreementsGTE(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldAgreements, v))
}

// AgreementsLT applies the LT predicate on the "agreements" field.
func AgreementsLT(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldAgreements, v))
}

// AgreementsLTE applies the LTE predicate on the "agreements" field.
func AgreementsLTE(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldAgreements, v))
}

// WrongAgreementsEQ applies the EQ predicate on the "wrong_agreements" field.
func WrongAgreementsEQ(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldWrongAgreements, v))
}

// WrongAgreementsNEQ applies the NEQ predicate on the "wrong_agreements" field.
func WrongAgreementsNEQ(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldWrongAgreements, v))
}

// WrongAgreementsIn applies the In predicate on the "wrong_agreements" field.
func WrongAgreementsIn(vs ...int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldWrongAgreements, vs...))
}

// WrongAgreementsNotIn applies the NotIn predicate on the "wrong_agreements" field.
func WrongAgreementsNotIn(vs ...int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldWrongAgreements, vs...))
}

// WrongAgreementsGT applies the GT predicate on the "wrong_agreements" field.
func WrongAgreementsGT(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldWrongAgreements, v))
}

// WrongAgreementsGTE applies the GTE predicate on the "wrong_agreements" field.
func WrongAgreementsGTE(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldWrongAgreements, v))
}

// WrongAgreementsLT applies the LT predicate on the "wrong_agreements" field.
func WrongAgreementsLT(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldWrongAgreements, v))
}

// WrongAgreementsLTE applies the LTE predicate on the "wrong_agreements" field.
func WrongAgreementsLTE(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldWrongAgreements, v))
}

// DifferencesEQ applies the EQ predicate on the "differences" field.
func DifferencesEQ(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldDifferences, v))
}

// DifferencesNEQ applies the NEQ predicate on the "differences" field.
func DifferencesNEQ(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldDifferences, v))
}

// DifferencesIn applies the In predicate on the "differences" field.
func DifferencesIn(vs ...int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldDifferences, vs...))
}

// DifferencesNotIn applies the NotIn predicate on the "differences" field.
func DifferencesNotIn(vs ...int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldDifferences, vs...))
}

// DifferencesGT applies the GT predicate on the "differences" field.
func DifferencesGT(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldDifferences, v))
}

// DifferencesGTE applies the GTE predicate on the "differences" field.
func DifferencesGTE(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldDifferences, v))
}

// DifferencesLT applies the LT predicate on the "differences" field.
func DifferencesLT(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldDifferences, v))
}

// DifferencesLTE applies the LTE predicate on the "differences" field.
func DifferencesLTE(v int) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldDifferences, v))
}

// KIndexAbEQ applies the EQ predicate on the "k_index_ab" field.
func KIndexAbEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldKIndexAb, v))
}

// KIndexAbNEQ applies the NEQ predicate on the "k_index_ab" field.
func KIndexAbNEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldKIndexAb, v))
}

// KIndexAbIn applies the In predicate on the "k_index_ab" field.
func KIndexAbIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldKIndexAb, vs...))
}

// KIndexAbNotIn applies the NotIn predicate on the "k_index_ab" field.
func KIndexAbNotIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldKIndexAb, vs...))
}

// KIndexAbGT applies the GT predicate on the "k_index_ab" field.
func KIndexAbGT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldKIndexAb, v))
}

// KIndexAbGTE applies the GTE predicate on the "k_index_ab" field.
func KIndexAbGTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldKIndexAb, v))
}

// KIndexAbLT applies the LT predicate on the "k_index_ab" field.
func KIndexAbLT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldKIndexAb, v))
}

// KIndexAbLTE applies the LTE predicate on the "k_index_ab" field.
func KIndexAbLTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldKIndexAb, v))
}

// KIndexBaEQ applies the EQ predicate on the "k_index_ba" field.
func KIndexBaEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldKIndexBa, v))
}

// KIndexBaNEQ applies the NEQ predicate on the "k_index_ba" field.
func KIndexBaNEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldKIndexBa, v))
}

// KIndexBaIn applies the In predicate on the "k_index_ba" field.
func KIndexBaIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldKIndexBa, vs...))
}

// KIndexBaNotIn applies the NotIn predicate on the "k_index_ba" field.
func KIndexBaNotIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldKIndexBa, vs...))
}

// KIndexBaGT applies the GT predicate on the "k_index_ba" field.
func KIndexBaGT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldKIndexBa, v))
}

// KIndexBaGTE applies the GTE predicate on the "k_index_ba" field.
func KIndexBaGTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldKIndexBa, v))
}

// KIndexBaLT applies the LT predicate on the "k_index_ba" field.
func KIndexBaLT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldKIndexBa, v))
}

// KIndexBaLTE applies the LTE predicate on the "k_index_ba" field.
func KIndexBaLTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldKIndexBa, v))
}

// GbtZEQ applies the EQ predicate on the "gbt_z" field.
func GbtZEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldGbtZ, v))
}

// GbtZNEQ applies the NEQ predicate on the "gbt_z" field.
func GbtZNEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldGbtZ, v))
}

// GbtZIn applies the In predicate on the "gbt_z" field.
func GbtZIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldGbtZ, vs...))
}

// GbtZNotIn applies the NotIn predicate on the "gbt_z" field.
func GbtZNotIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldGbtZ, vs...))
}

// GbtZGT applies the GT predicate on the "gbt_z" field.
func GbtZGT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldGbtZ, v))
}

// GbtZGTE applies the GTE predicate on the "gbt_z" field.
func GbtZGTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldGbtZ, v))
}

// GbtZLT applies the LT predicate on the "gbt_z" field.
func GbtZLT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldGbtZ, v))
}

// GbtZLTE applies the LTE predicate on the "gbt_z" field.
func GbtZLTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldGbtZ, v))
}

// HarppHoganEQ applies the EQ predicate on the "harpp_hogan" field.
func HarppHoganEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldHarppHogan, v))
}

// HarppHoganNEQ applies the NEQ predicate on the "harpp_hogan" field.
func HarppHoganNEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldHarppHogan, v))
}

// HarppHoganIn applies the In predicate on the "harpp_hogan" field.
func HarppHoganIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldHarppHogan, vs...))
}

// HarppHoganNotIn applies the NotIn predicate on the "harpp_hogan" field.
func HarppHoganNotIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldHarppHogan, vs...))
}

// HarppHoganGT applies the GT predicate on the "harpp_hogan" field.
func HarppHoganGT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldHarppHogan, v))
}

// HarppHoganGTE applies the GTE predicate on the "harpp_hogan" field.
func HarppHoganGTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldHarppHogan, v))
}

// HarppHoganLT applies the LT predicate on the "harpp_hogan" field.
func HarppHoganLT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldHarppHogan, v))
}

// HarppHoganLTE applies the LTE predicate on the "harpp_hogan" field.
func HarppHoganLTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldHarppHogan, v))
}

// RarityScoreEQ applies the EQ predicate on the "rarity_score" field.
func RarityScoreEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldRarityScore, v))
}

// RarityScoreNEQ applies the NEQ predicate on the "rarity_score" field.
func RarityScoreNEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldRarityScore, v))
}

// RarityScoreIn applies the In predicate on the "rarity_score" field.
func RarityScoreIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldRarityScore, vs...))
}

// RarityScoreNotIn applies the NotIn predicate on the "rarity_score" field.
func RarityScoreNotIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldRarityScore, vs...))
}

// RarityScoreGT applies the GT predicate on the "rarity_score" field.
func RarityScoreGT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldRarityScore, v))
}

// RarityScoreGTE applies the GTE predicate on the "rarity_score" field.
func RarityScoreGTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldRarityScore, v))
}

// RarityScoreLT applies the LT predicate on the "rarity_score" field.
func RarityScoreLT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldRarityScore, v))
}

// RarityScoreLTE applies the LTE predicate on the "rarity_score" field.
func RarityScoreLTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldRarityScore, v))
}

// SuspicionEQ applies the EQ predicate on the "suspicion" field.
func SuspicionEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldSuspicion, v))
}

// SuspicionNEQ applies the NEQ predicate on the "suspicion" field.
func SuspicionNEQ(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldSuspicion, v))
}

// SuspicionIn applies the In predicate on the "suspicion" field.
func SuspicionIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldSuspicion, vs...))
}

// SuspicionNotIn applies the NotIn predicate on the "suspicion" field.
func SuspicionNotIn(vs ...float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldSuspicion, vs...))
}

// SuspicionGT applies the GT predicate on the "suspicion" field.
func SuspicionGT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldSuspicion, v))
}

// SuspicionGTE applies the GTE predicate on the "suspicion" field.
func SuspicionGTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldSuspicion, v))
}

// SuspicionLT applies the LT predicate on the "suspicion" field.
func SuspicionLT(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldSuspicion, v))
}

// SuspicionLTE applies the LTE predicate on the "suspicion" field.
func SuspicionLTE(v float64) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldSuspicion, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FlaggedPair) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FlaggedPair) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FlaggedPair) predicate.FlaggedPair {
	return predicate.FlaggedPair(sql.NotPredicates(p))
}
