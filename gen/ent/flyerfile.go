// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/flyercal-app/flyercal/gen/ent/event"
	"github.com/flyercal-app/flyercal/gen/ent/flyerfile"
	"github.com/google/uuid"
)

// FlyerFile is the model entity for the FlyerFile schema.
type FlyerFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID *uuid.UUID `json:"event_id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FlyerFileQuery when eager-loading is set.
	Edges        FlyerFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FlyerFileEdges holds the relations/edges for other nodes in the graph.
type FlyerFileEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FlyerFileEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e FlyerFileEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FlyerFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flyerfile.FieldEventID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case flyerfile.FieldContentHash:
			values[i] = new([]byte)
		case flyerfile.FieldSourcePath, flyerfile.FieldFileExt:
			values[i] = new(sql.NullString)
		case flyerfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case flyerfile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FlyerFile fields.
func (_m *FlyerFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flyerfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case flyerfile.FieldEventID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = new(uuid.UUID)
				*_m.EventID = *value.S.(*uuid.UUID)
			}
		case flyerfile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case flyerfile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case flyerfile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case flyerfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FlyerFile.
// This includes values selected through modifiers, order, etc.
func (_m *FlyerFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the FlyerFile entity.
func (_m *FlyerFile) QueryEvent() *EventQuery {
	return NewFlyerFileClient(_m.config).QueryEvent(_m)
}

// QueryJobs queries the "jobs" edge of the FlyerFile entity.
func (_m *FlyerFile) QueryJobs() *ExtractJobQuery {
	return NewFlyerFileClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this FlyerFile.
// Note that you need to call FlyerFile.Unwrap() before calling this method if this FlyerFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FlyerFile) Update() *FlyerFileUpdateOne {
	return NewFlyerFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FlyerFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FlyerFile) Unwrap() *FlyerFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FlyerFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FlyerFile) String() string {
	var builder strings.Builder
	builder.WriteString("FlyerFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.EventID; v != nil {
		builder.WriteString("event_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FlyerFiles is a parsable slice of FlyerFile.
type FlyerFiles []*FlyerFile
