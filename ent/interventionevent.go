// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptifocus/adaptifocus/ent/interventionevent"
)

// InterventionEvent is the model entity for the InterventionEvent schema.
type InterventionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID handed to the UI for response correlation
	InterventionID string `json:"intervention_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// nudge, warn, soft_block, or hard_block
	Level string `json:"level,omitempty"`
	// TriggerDomain holds the value of the "trigger_domain" field.
	TriggerDomain string `json:"trigger_domain,omitempty"`
	// TriggerURL holds the value of the "trigger_url" field.
	TriggerURL string `json:"trigger_url,omitempty"`
	// DurationOnDistractionSeconds holds the value of the "duration_on_distraction_seconds" field.
	DurationOnDistractionSeconds int `json:"duration_on_distraction_seconds,omitempty"`
	// DistractionScore holds the value of the "distraction_score" field.
	DistractionScore float64 `json:"distraction_score,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// complied, dismissed, or overrode
	UserResponse string `json:"user_response,omitempty"`
	// Set with user_response; true when the user complied
	Effective    *bool `json:"effective,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterventionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interventionevent.FieldEffective:
			values[i] = new(sql.NullBool)
		case interventionevent.FieldDistractionScore:
			values[i] = new(sql.NullFloat64)
		case interventionevent.FieldID, interventionevent.FieldSequence, interventionevent.FieldDurationOnDistractionSeconds:
			values[i] = new(sql.NullInt64)
		case interventionevent.FieldInterventionID, interventionevent.FieldUserID, interventionevent.FieldLevel, interventionevent.FieldTriggerDomain, interventionevent.FieldTriggerURL, interventionevent.FieldSessionID, interventionevent.FieldUserResponse:
			values[i] = new(sql.NullString)
		case interventionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterventionEvent fields.
func (_m *InterventionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interventionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interventionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case interventionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case interventionevent.FieldInterventionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intervention_id", values[i])
			} else if value.Valid {
				_m.InterventionID = value.String
			}
		case interventionevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case interventionevent.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case interventionevent.FieldTriggerDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_domain", values[i])
			} else if value.Valid {
				_m.TriggerDomain = value.String
			}
		case interventionevent.FieldTriggerURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_url", values[i])
			} else if value.Valid {
				_m.TriggerURL = value.String
			}
		case interventionevent.FieldDurationOnDistractionSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_on_distraction_seconds", values[i])
			} else if value.Valid {
				_m.DurationOnDistractionSeconds = int(value.Int64)
			}
		case interventionevent.FieldDistractionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distraction_score", values[i])
			} else if value.Valid {
				_m.DistractionScore = value.Float64
			}
		case interventionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interventionevent.FieldUserResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_response", values[i])
			} else if value.Valid {
				_m.UserResponse = value.String
			}
		case interventionevent.FieldEffective:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field effective", values[i])
			} else if value.Valid {
				_m.Effective = new(bool)
				*_m.Effective = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterventionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InterventionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InterventionEvent.
// Note that you need to call InterventionEvent.Unwrap() before calling this method if this InterventionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterventionEvent) Update() *InterventionEventUpdateOne {
	return NewInterventionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterventionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterventionEvent) Unwrap() *InterventionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterventionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterventionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InterventionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("intervention_id=")
	builder.WriteString(_m.InterventionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("trigger_domain=")
	builder.WriteString(_m.TriggerDomain)
	builder.WriteString(", ")
	builder.WriteString("trigger_url=")
	builder.WriteString(_m.TriggerURL)
	builder.WriteString(", ")
	builder.WriteString("duration_on_distraction_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationOnDistractionSeconds))
	builder.WriteString(", ")
	builder.WriteString("distraction_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DistractionScore))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_response=")
	builder.WriteString(_m.UserResponse)
	builder.WriteString(", ")
	if v := _m.Effective; v != nil {
		builder.WriteString("effective=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// InterventionEvents is a parsable slice of InterventionEvent.
type InterventionEvents []*InterventionEvent
