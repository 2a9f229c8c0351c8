package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerKey is a saved answer key: the canonical correct option per
// question identifier, stored normalized.
type AnswerKey struct {
	ent.Schema
}

func (AnswerKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Caller-chosen key name, e.g. the exam code"),
		field.Int("question_count").
			Comment("Number of questions the key covers"),
		field.JSON("answers", map[string]string{}).
			Comment("Question identifier to normalized correct option"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AnswerKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
