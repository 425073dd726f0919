// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/flyercal-app/flyercal/db/ent/schema"
	"github.com/flyercal-app/flyercal/gen/ent/event"
	"github.com/flyercal-app/flyercal/gen/ent/extractjob"
	"github.com/flyercal-app/flyercal/gen/ent/flyerfile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescTitle is the schema descriptor for title field.
	eventDescTitle := eventFields[1].Descriptor()
	// event.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	event.TitleValidator = eventDescTitle.Validators[0].(func(string) error)
	// eventDescAllDay is the schema descriptor for all_day field.
	eventDescAllDay := eventFields[6].Descriptor()
	// event.DefaultAllDay holds the default value on creation for the all_day field.
	event.DefaultAllDay = eventDescAllDay.Default.(bool)
	// eventDescConfidence is the schema descriptor for confidence field.
	eventDescConfidence := eventFields[10].Descriptor()
	// event.DefaultConfidence holds the default value on creation for the confidence field.
	event.DefaultConfidence = eventDescConfidence.Default.(float32)
	// eventDescNeedsReview is the schema descriptor for needs_review field.
	eventDescNeedsReview := eventFields[11].Descriptor()
	// event.DefaultNeedsReview holds the default value on creation for the needs_review field.
	event.DefaultNeedsReview = eventDescNeedsReview.Default.(bool)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[13].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventFields[14].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// eventDescID is the schema descriptor for id field.
	eventDescID := eventFields[0].Descriptor()
	// event.DefaultID holds the default value on creation for the id field.
	event.DefaultID = eventDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[3].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[10].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	flyerfileFields := schema.FlyerFile{}.Fields()
	_ = flyerfileFields
	// flyerfileDescSourcePath is the schema descriptor for source_path field.
	flyerfileDescSourcePath := flyerfileFields[2].Descriptor()
	// flyerfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	flyerfile.SourcePathValidator = flyerfileDescSourcePath.Validators[0].(func(string) error)
	// flyerfileDescFileExt is the schema descriptor for file_ext field.
	flyerfileDescFileExt := flyerfileFields[3].Descriptor()
	// flyerfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	flyerfile.FileExtValidator = flyerfileDescFileExt.Validators[0].(func(string) error)
	// flyerfileDescContentHash is the schema descriptor for content_hash field.
	flyerfileDescContentHash := flyerfileFields[4].Descriptor()
	// flyerfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	flyerfile.ContentHashValidator = flyerfileDescContentHash.Validators[0].(func([]byte) error)
	// flyerfileDescUploadedAt is the schema descriptor for uploaded_at field.
	flyerfileDescUploadedAt := flyerfileFields[5].Descriptor()
	// flyerfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	flyerfile.DefaultUploadedAt = flyerfileDescUploadedAt.Default.(func() time.Time)
	// flyerfileDescID is the schema descriptor for id field.
	flyerfileDescID := flyerfileFields[0].Descriptor()
	// flyerfile.DefaultID holds the default value on creation for the id field.
	flyerfile.DefaultID = flyerfileDescID.Default.(func() uuid.UUID)
}
