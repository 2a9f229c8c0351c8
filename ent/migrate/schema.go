// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisRunsColumns holds the columns for the "analysis_runs" table.
	AnalysisRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "key_name", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "total_examinees", Type: field.TypeInt},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "total_pairs", Type: field.TypeInt},
		{Name: "total_flagged", Type: field.TypeInt},
		{Name: "thresholds", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnalysisRunsTable holds the schema information for the "analysis_runs" table.
	AnalysisRunsTable = &schema.Table{
		Name:       "analysis_runs",
		Columns:    AnalysisRunsColumns,
		PrimaryKey: []*schema.Column{AnalysisRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisrun_run_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRunsColumns[1]},
			},
			{
				Name:    "analysisrun_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRunsColumns[9]},
			},
		},
	}
	// AnswerKeysColumns holds the columns for the "answer_keys" table.
	AnswerKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnswerKeysTable holds the schema information for the "answer_keys" table.
	AnswerKeysTable = &schema.Table{
		Name:       "answer_keys",
		Columns:    AnswerKeysColumns,
		PrimaryKey: []*schema.Column{AnswerKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerkey_name",
				Unique:  false,
				Columns: []*schema.Column{AnswerKeysColumns[1]},
			},
		},
	}
	// FlaggedPairsColumns holds the columns for the "flagged_pairs" table.
	FlaggedPairsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "rank", Type: field.TypeInt},
		{Name: "examinee_a", Type: field.TypeString},
		{Name: "examinee_b", Type: field.TypeString},
		{Name: "agreements", Type: field.TypeInt},
		{Name: "wrong_agreements", Type: field.TypeInt},
		{Name: "differences", Type: field.TypeInt},
		{Name: "k_index_ab", Type: field.TypeFloat64},
		{Name: "k_index_ba", Type: field.TypeFloat64},
		{Name: "gbt_z", Type: field.TypeFloat64},
		{Name: "harpp_hogan", Type: field.TypeFloat64},
		{Name: "rarity_score", Type: field.TypeFloat64},
		{Name: "suspicion", Type: field.TypeFloat64},
		{Name: "reason", Type: field.TypeString},
	}
	// FlaggedPairsTable holds the schema information for the "flagged_pairs" table.
	FlaggedPairsTable = &schema.Table{
		Name:       "flagged_pairs",
		Columns:    FlaggedPairsColumns,
		PrimaryKey: []*schema.Column{FlaggedPairsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flaggedpair_run_id",
				Unique:  false,
				Columns: []*schema.Column{FlaggedPairsColumns[1]},
			},
			{
				Name:    "flaggedpair_run_id_rank",
				Unique:  false,
				Columns: []*schema.Column{FlaggedPairsColumns[1], FlaggedPairsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisRunsTable,
		AnswerKeysTable,
		FlaggedPairsTable,
	}
)

func init() {
}
