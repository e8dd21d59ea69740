package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subtopic is the unit of content generation: one lesson and one
// batch of practice questions per subtopic. Whether a subtopic "has"
// its artifact is never stored here — it is derived live from the
// lessons / practice_questions tables.
type Subtopic struct {
	ent.Schema
}

func (Subtopic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.Int("sort_order").
			Default(0),
	}
}

func (Subtopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("topic_id", "sort_order"),
	}
}
