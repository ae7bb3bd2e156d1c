// Code generated by ent, DO NOT EDIT.

package browsingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adaptifocus/adaptifocus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldUserID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldURL, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldDomain, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldTitle, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldDurationSeconds, v))
}

// Distraction applies equality check predicate on the "distraction" field. It's identical to DistractionEQ.
func Distraction(v bool) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldDistraction, v))
}

// DistractionScore applies equality check predicate on the "distraction_score" field. It's identical to DistractionScoreEQ.
func DistractionScore(v float64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldDistractionScore, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldCategory, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContainsFold(FieldUserID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContainsFold(FieldURL, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainIsNil applies the IsNil predicate on the "domain" field.
func DomainIsNil() predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIsNull(FieldDomain))
}

// DomainNotNil applies the NotNil predicate on the "domain" field.
func DomainNotNil() predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotNull(FieldDomain))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContainsFold(FieldDomain, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContainsFold(FieldTitle, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldDurationSeconds, v))
}

// DistractionEQ applies the EQ predicate on the "distraction" field.
func DistractionEQ(v bool) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldDistraction, v))
}

// DistractionNEQ applies the NEQ predicate on the "distraction" field.
func DistractionNEQ(v bool) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldDistraction, v))
}

// DistractionScoreEQ applies the EQ predicate on the "distraction_score" field.
func DistractionScoreEQ(v float64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldDistractionScore, v))
}

// DistractionScoreNEQ applies the NEQ predicate on the "distraction_score" field.
func DistractionScoreNEQ(v float64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldDistractionScore, v))
}

// DistractionScoreIn applies the In predicate on the "distraction_score" field.
func DistractionScoreIn(vs ...float64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldDistractionScore, vs...))
}

// DistractionScoreNotIn applies the NotIn predicate on the "distraction_score" field.
func DistractionScoreNotIn(vs ...float64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldDistractionScore, vs...))
}

// DistractionScoreGT applies the GT predicate on the "distraction_score" field.
func DistractionScoreGT(v float64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldDistractionScore, v))
}

// DistractionScoreGTE applies the GTE predicate on the "distraction_score" field.
func DistractionScoreGTE(v float64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldDistractionScore, v))
}

// DistractionScoreLT applies the LT predicate on the "distraction_score" field.
func DistractionScoreLT(v float64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldDistractionScore, v))
}

// DistractionScoreLTE applies the LTE predicate on the "distraction_score" field.
func DistractionScoreLTE(v float64) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldDistractionScore, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContainsFold(FieldCategory, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BrowsingEvent) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BrowsingEvent) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BrowsingEvent) predicate.BrowsingEvent {
	return predicate.BrowsingEvent(sql.NotPredicates(p))
}
