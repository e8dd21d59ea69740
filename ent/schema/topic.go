package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic belongs to exactly one learning path and owns an ordered
// list of subtopics.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("learning_path_id").
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.String("icon").
			Optional().
			Default(""),
		field.Int("sort_order").
			Default(0).
			Comment("Determines both display order and generation order"),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learning_path_id"),
		index.Fields("learning_path_id", "sort_order"),
	}
}
