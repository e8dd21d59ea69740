package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenEvent records one generation attempt made by the bulk runner,
// whatever its outcome. The ledger shown to the operator is in-memory
// and dies with the session; these rows are the durable audit trail.
type GenEvent struct {
	ent.Schema
}

func (GenEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("artifact_kind").
			NotEmpty().
			Comment("lesson or practice"),
		field.String("topic_id").
			NotEmpty(),
		field.String("subtopic_id").
			NotEmpty(),
		field.String("outcome").
			NotEmpty().
			Comment("created, exists, or failed"),
		field.Text("detail").
			Optional().
			Default(""),
		field.Int64("latency_ms").
			Default(0),
	}
}

func (GenEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("outcome"),
	}
}
