// Code generated by ent, DO NOT EDIT.

package interventionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interventionevent type in the database.
	Label = "intervention_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldInterventionID holds the string denoting the intervention_id field in the database.
	FieldInterventionID = "intervention_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldTriggerDomain holds the string denoting the trigger_domain field in the database.
	FieldTriggerDomain = "trigger_domain"
	// FieldTriggerURL holds the string denoting the trigger_url field in the database.
	FieldTriggerURL = "trigger_url"
	// FieldDurationOnDistractionSeconds holds the string denoting the duration_on_distraction_seconds field in the database.
	FieldDurationOnDistractionSeconds = "duration_on_distraction_seconds"
	// FieldDistractionScore holds the string denoting the distraction_score field in the database.
	FieldDistractionScore = "distraction_score"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserResponse holds the string denoting the user_response field in the database.
	FieldUserResponse = "user_response"
	// FieldEffective holds the string denoting the effective field in the database.
	FieldEffective = "effective"
	// Table holds the table name of the interventionevent in the database.
	Table = "intervention_events"
)

// Columns holds all SQL columns for interventionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldInterventionID,
	FieldUserID,
	FieldLevel,
	FieldTriggerDomain,
	FieldTriggerURL,
	FieldDurationOnDistractionSeconds,
	FieldDistractionScore,
	FieldSessionID,
	FieldUserResponse,
	FieldEffective,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// InterventionIDValidator is a validator for the "intervention_id" field. It is called by the builders before save.
	InterventionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
	// TriggerDomainValidator is a validator for the "trigger_domain" field. It is called by the builders before save.
	TriggerDomainValidator func(string) error
	// TriggerURLValidator is a validator for the "trigger_url" field. It is called by the builders before save.
	TriggerURLValidator func(string) error
	// DefaultDurationOnDistractionSeconds holds the default value on creation for the "duration_on_distraction_seconds" field.
	DefaultDurationOnDistractionSeconds int
	// DefaultDistractionScore holds the default value on creation for the "distraction_score" field.
	DefaultDistractionScore float64
)

// OrderOption defines the ordering options for the InterventionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByInterventionID orders the results by the intervention_id field.
func ByInterventionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterventionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByTriggerDomain orders the results by the trigger_domain field.
func ByTriggerDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerDomain, opts...).ToFunc()
}

// ByTriggerURL orders the results by the trigger_url field.
func ByTriggerURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerURL, opts...).ToFunc()
}

// ByDurationOnDistractionSeconds orders the results by the duration_on_distraction_seconds field.
func ByDurationOnDistractionSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationOnDistractionSeconds, opts...).ToFunc()
}

// ByDistractionScore orders the results by the distraction_score field.
func ByDistractionScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistractionScore, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserResponse orders the results by the user_response field.
func ByUserResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserResponse, opts...).ToFunc()
}

// ByEffective orders the results by the effective field.
func ByEffective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffective, opts...).ToFunc()
}
