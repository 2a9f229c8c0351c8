// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisRun is the predicate function for analysisrun builders.
type AnalysisRun func(*sql.Selector)

// AnswerKey is the predicate function for answerkey builders.
type AnswerKey func(*sql.Selector)

// FlaggedPair is the predicate function for flaggedpair builders.
type FlaggedPair func(*sql.Selector)
