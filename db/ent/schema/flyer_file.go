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

type FlyerFile struct{ ent.Schema }

func (FlyerFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "flyer_files"},
	}
}

func (FlyerFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("event_id", uuid.UUID{}).Optional().Nillable(),
		field.String("source_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Bytes("content_hash").NotEmpty(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (FlyerFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE event (FK: flyer_files.event_id)
		edge.From("event", Event.Type).
			Ref("files").
			Field("event_id").
			Unique(),
		// ONE file -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (FlyerFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
		index.Fields("event_id"),
	}
}
