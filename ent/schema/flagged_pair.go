package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FlaggedPair is one flagged examinee pair of an analysis run, with the
// full metric set so a run can be reviewed without re-analyzing.
type FlaggedPair struct {
	ent.Schema
}

func (FlaggedPair) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("AnalysisRun this pair belongs to"),
		field.Int("rank").
			Comment("Position in the run's suspicion ordering, starting at 0"),
		field.String("examinee_a").NotEmpty(),
		field.String("examinee_b").NotEmpty(),
		field.Int("agreements"),
		field.Int("wrong_agreements"),
		field.Int("differences"),
		field.Float("k_index_ab"),
		field.Float("k_index_ba"),
		field.Float("gbt_z"),
		field.Float("harpp_hogan"),
		field.Float("rarity_score"),
		field.Float("suspicion"),
		field.String("reason").
			Comment("Human-readable reason fragments joined with ' | '"),
	}
}

func (FlaggedPair) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("run_id", "rank"),
	}
}
