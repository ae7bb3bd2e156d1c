// Code generated by ent, DO NOT EDIT.

package interventionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adaptifocus/adaptifocus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// InterventionID applies equality check predicate on the "intervention_id" field. It's identical to InterventionIDEQ.
func InterventionID(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldInterventionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldUserID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldLevel, v))
}

// TriggerDomain applies equality check predicate on the "trigger_domain" field. It's identical to TriggerDomainEQ.
func TriggerDomain(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTriggerDomain, v))
}

// TriggerURL applies equality check predicate on the "trigger_url" field. It's identical to TriggerURLEQ.
func TriggerURL(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTriggerURL, v))
}

// DurationOnDistractionSeconds applies equality check predicate on the "duration_on_distraction_seconds" field. It's identical to DurationOnDistractionSecondsEQ.
func DurationOnDistractionSeconds(v int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldDurationOnDistractionSeconds, v))
}

// DistractionScore applies equality check predicate on the "distraction_score" field. It's identical to DistractionScoreEQ.
func DistractionScore(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldDistractionScore, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserResponse applies equality check predicate on the "user_response" field. It's identical to UserResponseEQ.
func UserResponse(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldUserResponse, v))
}

// Effective applies equality check predicate on the "effective" field. It's identical to EffectiveEQ.
func Effective(v bool) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldEffective, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// InterventionIDEQ applies the EQ predicate on the "intervention_id" field.
func InterventionIDEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldInterventionID, v))
}

// InterventionIDNEQ applies the NEQ predicate on the "intervention_id" field.
func InterventionIDNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldInterventionID, v))
}

// InterventionIDIn applies the In predicate on the "intervention_id" field.
func InterventionIDIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldInterventionID, vs...))
}

// InterventionIDNotIn applies the NotIn predicate on the "intervention_id" field.
func InterventionIDNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldInterventionID, vs...))
}

// InterventionIDGT applies the GT predicate on the "intervention_id" field.
func InterventionIDGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldInterventionID, v))
}

// InterventionIDGTE applies the GTE predicate on the "intervention_id" field.
func InterventionIDGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldInterventionID, v))
}

// InterventionIDLT applies the LT predicate on the "intervention_id" field.
func InterventionIDLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldInterventionID, v))
}

// InterventionIDLTE applies the LTE predicate on the "intervention_id" field.
func InterventionIDLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldInterventionID, v))
}

// InterventionIDContains applies the Contains predicate on the "intervention_id" field.
func InterventionIDContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldInterventionID, v))
}

// InterventionIDHasPrefix applies the HasPrefix predicate on the "intervention_id" field.
func InterventionIDHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldInterventionID, v))
}

// InterventionIDHasSuffix applies the HasSuffix predicate on the "intervention_id" field.
func InterventionIDHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldInterventionID, v))
}

// InterventionIDEqualFold applies the EqualFold predicate on the "intervention_id" field.
func InterventionIDEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldInterventionID, v))
}

// InterventionIDContainsFold applies the ContainsFold predicate on the "intervention_id" field.
func InterventionIDContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldInterventionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldUserID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldLevel, v))
}

// TriggerDomainEQ applies the EQ predicate on the "trigger_domain" field.
func TriggerDomainEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTriggerDomain, v))
}

// TriggerDomainNEQ applies the NEQ predicate on the "trigger_domain" field.
func TriggerDomainNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldTriggerDomain, v))
}

// TriggerDomainIn applies the In predicate on the "trigger_domain" field.
func TriggerDomainIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldTriggerDomain, vs...))
}

// TriggerDomainNotIn applies the NotIn predicate on the "trigger_domain" field.
func TriggerDomainNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldTriggerDomain, vs...))
}

// TriggerDomainGT applies the GT predicate on the "trigger_domain" field.
func TriggerDomainGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldTriggerDomain, v))
}

// TriggerDomainGTE applies the GTE predicate on the "trigger_domain" field.
func TriggerDomainGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldTriggerDomain, v))
}

// TriggerDomainLT applies the LT predicate on the "trigger_domain" field.
func TriggerDomainLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldTriggerDomain, v))
}

// TriggerDomainLTE applies the LTE predicate on the "trigger_domain" field.
func TriggerDomainLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldTriggerDomain, v))
}

// TriggerDomainContains applies the Contains predicate on the "trigger_domain" field.
func TriggerDomainContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldTriggerDomain, v))
}

// TriggerDomainHasPrefix applies the HasPrefix predicate on the "trigger_domain" field.
func TriggerDomainHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldTriggerDomain, v))
}

// TriggerDomainHasSuffix applies the HasSuffix predicate on the "trigger_domain" field.
func TriggerDomainHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldTriggerDomain, v))
}

// TriggerDomainIsNil applies the IsNil predicate on the "trigger_domain" field.
func TriggerDomainIsNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIsNull(FieldTriggerDomain))
}

// TriggerDomainNotNil applies the NotNil predicate on the "trigger_domain" field.
func TriggerDomainNotNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotNull(FieldTriggerDomain))
}

// TriggerDomainEqualFold applies the EqualFold predicate on the "trigger_domain" field.
func TriggerDomainEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldTriggerDomain, v))
}

// TriggerDomainContainsFold applies the ContainsFold predicate on the "trigger_domain" field.
func TriggerDomainContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldTriggerDomain, v))
}

// TriggerURLEQ applies the EQ predicate on the "trigger_url" field.
func TriggerURLEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTriggerURL, v))
}

// TriggerURLNEQ applies the NEQ predicate on the "trigger_url" field.
func TriggerURLNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldTriggerURL, v))
}

// TriggerURLIn applies the In predicate on the "trigger_url" field.
func TriggerURLIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldTriggerURL, vs...))
}

// TriggerURLNotIn applies the NotIn predicate on the "trigger_url" field.
func TriggerURLNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldTriggerURL, vs...))
}

// TriggerURLGT applies the GT predicate on the "trigger_url" field.
func TriggerURLGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldTriggerURL, v))
}

// TriggerURLGTE applies the GTE predicate on the "trigger_url" field.
func TriggerURLGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldTriggerURL, v))
}

// TriggerURLLT applies the LT predicate on the "trigger_url" field.
func TriggerURLLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldTriggerURL, v))
}

// TriggerURLLTE applies the LTE predicate on the "trigger_url" field.
func TriggerURLLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldTriggerURL, v))
}

// TriggerURLContains applies the Contains predicate on the "trigger_url" field.
func TriggerURLContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldTriggerURL, v))
}

// TriggerURLHasPrefix applies the HasPrefix predicate on the "trigger_url" field.
func TriggerURLHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldTriggerURL, v))
}

// TriggerURLHasSuffix applies the HasSuffix predicate on the "trigger_url" field.
func TriggerURLHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldTriggerURL, v))
}

// TriggerURLIsNil applies the IsNil predicate on the "trigger_url" field.
func TriggerURLIsNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIsNull(FieldTriggerURL))
}

// TriggerURLNotNil applies the NotNil predicate on the "trigger_url" field.
func TriggerURLNotNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotNull(FieldTriggerURL))
}

// TriggerURLEqualFold applies the EqualFold predicate on the "trigger_url" field.
func TriggerURLEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldTriggerURL, v))
}

// TriggerURLContainsFold applies the ContainsFold predicate on the "trigger_url" field.
func TriggerURLContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldTriggerURL, v))
}

// DurationOnDistractionSecondsEQ applies the EQ predicate on the "duration_on_distraction_seconds" field.
func DurationOnDistractionSecondsEQ(v int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldDurationOnDistractionSeconds, v))
}

// DurationOnDistractionSecondsNEQ applies the NEQ predicate on the "duration_on_distraction_seconds" field.
func DurationOnDistractionSecondsNEQ(v int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldDurationOnDistractionSeconds, v))
}

// DurationOnDistractionSecondsIn applies the In predicate on the "duration_on_distraction_seconds" field.
func DurationOnDistractionSecondsIn(vs ...int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldDurationOnDistractionSeconds, vs...))
}

// DurationOnDistractionSecondsNotIn applies the NotIn predicate on the "duration_on_distraction_seconds" field.
func DurationOnDistractionSecondsNotIn(vs ...int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldDurationOnDistractionSeconds, vs...))
}

// DurationOnDistractionSecondsGT applies the GT predicate on the "duration_on_distraction_seconds" field.
func DurationOnDistractionSecondsGT(v int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldDurationOnDistractionSeconds, v))
}

// DurationOnDistractionSecondsGTE applies the GTE predicate on the "duration_on_distraction_seconds" field.
func DurationOnDistractionSecondsGTE(v int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldDurationOnDistractionSeconds, v))
}

// DurationOnDistractionSecondsLT applies the LT predicate on the "duration_on_distraction_seconds" field.
func DurationOnDistractionSecondsLT(v int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldDurationOnDistractionSeconds, v))
}

// DurationOnDistractionSecondsLTE applies the LTE predicate on the "duration_on_distraction_seconds" field.
func DurationOnDistractionSecondsLTE(v int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldDurationOnDistractionSeconds, v))
}

// DistractionScoreEQ applies the EQ predicate on the "distraction_score" field.
func DistractionScoreEQ(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldDistractionScore, v))
}

// DistractionScoreNEQ applies the NEQ predicate on the "distraction_score" field.
func DistractionScoreNEQ(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldDistractionScore, v))
}

// DistractionScoreIn applies the In predicate on the "distraction_score" field.
func DistractionScoreIn(vs ...float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldDistractionScore, vs...))
}

// DistractionScoreNotIn applies the NotIn predicate on the "distraction_score" field.
func DistractionScoreNotIn(vs ...float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldDistractionScore, vs...))
}

// DistractionScoreGT applies the GT predicate on the "distraction_score" field.
func DistractionScoreGT(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldDistractionScore, v))
}

// DistractionScoreGTE applies the GTE predicate on the "distraction_score" field.
func DistractionScoreGTE(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldDistractionScore, v))
}

// DistractionScoreLT applies the LT predicate on the "distraction_score" field.
func DistractionScoreLT(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldDistractionScore, v))
}

// DistractionScoreLTE applies the LTE predicate on the "distraction_score" field.
func DistractionScoreLTE(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldDistractionScore, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserResponseEQ applies the EQ predicate on the "user_response" field.
func UserResponseEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldUserResponse, v))
}

// UserResponseNEQ applies the NEQ predicate on the "user_response" field.
func UserResponseNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldUserResponse, v))
}

// UserResponseIn applies the In predicate on the "user_response" field.
func UserResponseIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldUserResponse, vs...))
}

// UserResponseNotIn applies the NotIn predicate on the "user_response" field.
func UserResponseNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldUserResponse, vs...))
}

// UserResponseGT applies the GT predicate on the "user_response" field.
func UserResponseGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldUserResponse, v))
}

// UserResponseGTE applies the GTE predicate on the "user_response" field.
func UserResponseGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldUserResponse, v))
}

// UserResponseLT applies the LT predicate on the "user_response" field.
func UserResponseLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldUserResponse, v))
}

// UserResponseLTE applies the LTE predicate on the "user_response" field.
func UserResponseLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldUserResponse, v))
}

// UserResponseContains applies the Contains predicate on the "user_response" field.
func UserResponseContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldUserResponse, v))
}

// UserResponseHasPrefix applies the HasPrefix predicate on the "user_response" field.
func UserResponseHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldUserResponse, v))
}

// UserResponseHasSuffix applies the HasSuffix predicate on the "user_response" field.
func UserResponseHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldUserResponse, v))
}

// UserResponseIsNil applies the IsNil predicate on the "user_response" field.
func UserResponseIsNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIsNull(FieldUserResponse))
}

// UserResponseNotNil applies the NotNil predicate on the "user_response" field.
func UserResponseNotNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotNull(FieldUserResponse))
}

// UserResponseEqualFold applies the EqualFold predicate on the "user_response" field.
func UserResponseEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldUserResponse, v))
}

// UserResponseContainsFold applies the ContainsFold predicate on the "user_response" field.
func UserResponseContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldUserResponse, v))
}

// EffectiveEQ applies the EQ predicate on the "effective" field.
func EffectiveEQ(v bool) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldEffective, v))
}

// EffectiveNEQ applies the NEQ predicate on the "effective" field.
func EffectiveNEQ(v bool) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldEffective, v))
}

// EffectiveIsNil applies the IsNil predicate on the "effective" field.
func EffectiveIsNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIsNull(FieldEffective))
}

// EffectiveNotNil applies the NotNil predicate on the "effective" field.
func EffectiveNotNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotNull(FieldEffective))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.NotPredicates(p))
}
