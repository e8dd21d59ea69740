package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is the generated lesson artifact for a subtopic.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("subtopic_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Text("content").
			NotEmpty().
			Comment("Full lesson body as JSON (intro, explanation, examples, summary)"),
		field.String("model").
			Optional().
			Default("").
			Comment("Model that generated this lesson"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subtopic_id"),
	}
}
