// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptifocus/adaptifocus/ent/browsingevent"
)

// BrowsingEvent is the model entity for the BrowsingEvent schema.
type BrowsingEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Owner of the event
	UserID string `json:"user_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Dwell time; clamped non-negative at ingest
	DurationSeconds int `json:"duration_seconds,omitempty"`
	// Verdict at ingest time
	Distraction bool `json:"distraction,omitempty"`
	// Propensity score at ingest time
	DistractionScore float64 `json:"distraction_score,omitempty"`
	// study, distraction, or neutral
	Category string `json:"category,omitempty"`
	// Study session the event belongs to, if any
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BrowsingEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case browsingevent.FieldDistraction:
			values[i] = new(sql.NullBool)
		case browsingevent.FieldDistractionScore:
			values[i] = new(sql.NullFloat64)
		case browsingevent.FieldID, browsingevent.FieldSequence, browsingevent.FieldDurationSeconds:
			values[i] = new(sql.NullInt64)
		case browsingevent.FieldUserID, browsingevent.FieldURL, browsingevent.FieldDomain, browsingevent.FieldTitle, browsingevent.FieldCategory, browsingevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case browsingevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BrowsingEvent fields.
func (_m *BrowsingEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case browsingevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case browsingevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case browsingevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case browsingevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case browsingevent.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case browsingevent.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case browsingevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case browsingevent.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = int(value.Int64)
			}
		case browsingevent.FieldDistraction:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field distraction", values[i])
			} else if value.Valid {
				_m.Distraction = value.Bool
			}
		case browsingevent.FieldDistractionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distraction_score", values[i])
			} else if value.Valid {
				_m.DistractionScore = value.Float64
			}
		case browsingevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case browsingevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BrowsingEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BrowsingEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BrowsingEvent.
// Note that you need to call BrowsingEvent.Unwrap() before calling this method if this BrowsingEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BrowsingEvent) Update() *BrowsingEventUpdateOne {
	return NewBrowsingEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BrowsingEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BrowsingEvent) Unwrap() *BrowsingEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BrowsingEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BrowsingEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BrowsingEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("distraction=")
	builder.WriteString(fmt.Sprintf("%v", _m.Distraction))
	builder.WriteString(", ")
	builder.WriteString("distraction_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DistractionScore))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// BrowsingEvents is a parsable slice of BrowsingEvent.
type BrowsingEvents []*BrowsingEvent
