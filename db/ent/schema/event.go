package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Event struct{ ent.Schema }

func (Event) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "events"},
	}
}

func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("title").NotEmpty(),
		field.Time("start_date"),
		field.Time("end_date"),
		// time-of-day kept as "15:04" strings; nil means all-day
		field.String("start_time").Optional().Nillable(),
		field.String("end_time").Optional().Nillable(),
		field.Bool("all_day").Default(false),
		field.String("location").Optional().Nillable(),
		field.String("hosts").Optional().Nillable(),
		field.String("description").Optional().Nillable(),
		field.Float32("confidence").Default(0),
		field.Bool("needs_review").Default(false),
		field.String("google_event_id").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE event -> MANY files
		edge.To("files", FlyerFile.Type),
		// ONE event -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("start_date"),
		index.Fields("needs_review"),
	}
}
