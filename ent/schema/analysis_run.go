package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisRun records one completed collusion analysis: which key was
// used, the thresholds in force, and the run-level totals. The flagged
// pairs themselves live in FlaggedPair rows keyed by run_id.
type AnalysisRun struct {
	ent.Schema
}

// ThresholdSnapshot is the serialized classifier configuration for a run.
type ThresholdSnapshot struct {
	KIndexCeiling     float64 `json:"k_index_ceiling"`
	HarppHoganFloor   float64 `json:"harpp_hogan_floor"`
	RarityFloor       float64 `json:"rarity_floor"`
	GBTZFloor         float64 `json:"gbt_z_floor"`
	MinSharedWrong    int     `json:"min_shared_wrong"`
	CountBlankMatches bool    `json:"count_blank_matches"`
}

func (AnalysisRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Unique().
			Comment("UUID identifying the run"),
		field.String("key_name").
			Comment("Name of the answer key used, empty for ad-hoc keys"),
		field.String("source").
			Comment("Input the response table came from, e.g. a file name"),
		field.Int("total_examinees"),
		field.Int("question_count").
			Comment("Questions in the analyzed response table"),
		field.Int("total_pairs"),
		field.Int("total_flagged"),
		field.JSON("thresholds", ThresholdSnapshot{}).
			Comment("Classifier configuration in force for this run"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AnalysisRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("created_at"),
	}
}
