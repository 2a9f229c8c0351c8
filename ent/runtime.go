// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/serkanatas/kopya/ent/analysisrun"
	"github.com/serkanatas/kopya/ent/answerkey"
	"github.com/serkanatas/kopya/ent/flaggedpair"
	"github.com/serkanatas/kopya/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisrunFields := schema.AnalysisRun{}.Fields()
	_ = analysisrunFields
	// analysisrunDescRunID is the schema descriptor for run_id field.
	analysisrunDescRunID := analysisrunFields[0].Descriptor()
	// analysisrun.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	analysisrun.RunIDValidator = analysisrunDescRunID.Validators[0].(func(string) error)
	// analysisrunDescCreatedAt is the schema descriptor for created_at field.
	analysisrunDescCreatedAt := analysisrunFields[8].Descriptor()
	// analysisrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisrun.DefaultCreatedAt = analysisrunDescCreatedAt.Default.(func() time.Time)
	answerkeyFields := schema.AnswerKey{}.Fields()
	_ = answerkeyFields
	// answerkeyDescName is the schema descriptor for name field.
	answerkeyDescName := answerkeyFields[0].Descriptor()
	// answerkey.NameValidator is a validator for the "name" field. It is called by the builders before save.
	answerkey.NameValidator = answerkeyDescName.Validators[0].(func(string) error)
	// answerkeyDescCreatedAt is the schema descriptor for created_at field.
	answerkeyDescCreatedAt := answerkeyFields[3].Descriptor()
	// answerkey.DefaultCreatedAt holds the default value on creation for the created_at field.
	answerkey.DefaultCreatedAt = answerkeyDescCreatedAt.Default.(func() time.Time)
	flaggedpairFields := schema.FlaggedPair{}.Fields()
	_ = flaggedpairFields
	// flaggedpairDescRunID is the schema descriptor for run_id field.
	flaggedpairDescRunID := flaggedpairFields[0].Descriptor()
	// flaggedpair.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	flaggedpair.RunIDValidator = flaggedpairDescRunID.Validators[0].(func(string) error)
	// flaggedpairDescExamineeA is the schema descriptor for examinee_a field.
	flaggedpairDescExamineeA := flaggedpairFields[2].Descriptor()
	// flaggedpair.ExamineeAValidator is a validator for the "examinee_a" field. It is called by the builders before save.
	flaggedpair.ExamineeAValidator = flaggedpairDescExamineeA.Validators[0].(func(string) error)
	// flaggedpairDescExamineeB is the schema descriptor for examinee_b field.
	flaggedpairDescExamineeB := flaggedpairFields[3].Descriptor()
	// flaggedpair.ExamineeBValidator is a validator for the "examinee_b" field. It is called by the builders before save.
	flaggedpair.ExamineeBValidator = flaggedpairDescExamineeB.Validators[0].(func(string) error)
}
