// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
		{Name: "start_time", Type: field.TypeString, Nullable: true},
		{Name: "end_time", Type: field.TypeString, Nullable: true},
		{Name: "all_day", Type: field.TypeBool, Default: false},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "hosts", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "google_event_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_start_date",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_needs_review",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[11]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "event_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_events_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[11]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_flyer_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{FlyerFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12]},
			},
			{
				Name:    "extractjob_event_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11]},
			},
		},
	}
	// FlyerFilesColumns holds the columns for the "flyer_files" table.
	FlyerFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeUUID, Nullable: true},
	}
	// FlyerFilesTable holds the schema information for the "flyer_files" table.
	FlyerFilesTable = &schema.Table{
		Name:       "flyer_files",
		Columns:    FlyerFilesColumns,
		PrimaryKey: []*schema.Column{FlyerFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "flyer_files_events_files",
				Columns:    []*schema.Column{FlyerFilesColumns[5]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "flyerfile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{FlyerFilesColumns[3]},
			},
			{
				Name:    "flyerfile_event_id",
				Unique:  false,
				Columns: []*schema.Column{FlyerFilesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		ExtractJobTable,
		FlyerFilesTable,
	}
)

func init() {
	EventsTable.Annotation = &entsql.Annotation{
		Table: "events",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = EventsTable
	ExtractJobTable.ForeignKeys[1].RefTable = FlyerFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	FlyerFilesTable.ForeignKeys[0].RefTable = EventsTable
	FlyerFilesTable.Annotation = &entsql.Annotation{
		Table: "flyer_files",
	}
}
