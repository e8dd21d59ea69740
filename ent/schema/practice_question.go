package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeQuestion is one generated multiple-choice question.
// Category separates the short quick-check set embedded in a lesson
// from the extended practice bank.
type PracticeQuestion struct {
	ent.Schema
}

func (PracticeQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("subtopic_id").
			NotEmpty(),
		field.String("category").
			NotEmpty().
			Comment("quick_check or extended"),
		field.Text("question").
			NotEmpty(),
		field.Text("options").
			NotEmpty().
			Comment("JSON array of 4 answer options"),
		field.Int("answer").
			Comment("Index of the correct option"),
		field.Text("explanation").
			Optional().
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PracticeQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subtopic_id"),
		index.Fields("subtopic_id", "category"),
	}
}
