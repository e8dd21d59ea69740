package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LearningPath is a grade or exam track (e.g. SS2, WAEC) that owns
// an ordered set of topics.
type LearningPath struct {
	ent.Schema
}

func (LearningPath) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty().
			Comment("UUID assigned at import time"),
		field.String("name").
			NotEmpty(),
		field.String("grade").
			NotEmpty().
			Comment("Class or exam label shown under the name"),
		field.String("icon").
			Optional().
			Default(""),
		field.Bool("active").
			Default(true).
			Comment("Inactive paths are hidden from every listing"),
		field.Int("sort_order").
			Default(0),
	}
}
