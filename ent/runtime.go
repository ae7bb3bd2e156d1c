// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adaptifocus/adaptifocus/ent/browsingevent"
	"github.com/adaptifocus/adaptifocus/ent/interventionevent"
	"github.com/adaptifocus/adaptifocus/ent/patternsnapshot"
	"github.com/adaptifocus/adaptifocus/ent/schema"
	"github.com/adaptifocus/adaptifocus/ent/studysession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	browsingeventMixin := schema.BrowsingEvent{}.Mixin()
	browsingeventMixinFields0 := browsingeventMixin[0].Fields()
	_ = browsingeventMixinFields0
	browsingeventFields := schema.BrowsingEvent{}.Fields()
	_ = browsingeventFields
	// browsingeventDescTimestamp is the schema descriptor for timestamp field.
	browsingeventDescTimestamp := browsingeventMixinFields0[1].Descriptor()
	// browsingevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	browsingevent.DefaultTimestamp = browsingeventDescTimestamp.Default.(func() time.Time)
	// browsingeventDescUserID is the schema descriptor for user_id field.
	browsingeventDescUserID := browsingeventFields[0].Descriptor()
	// browsingevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	browsingevent.UserIDValidator = browsingeventDescUserID.Validators[0].(func(string) error)
	// browsingeventDescURL is the schema descriptor for url field.
	browsingeventDescURL := browsingeventFields[1].Descriptor()
	// browsingevent.URLValidator is a validator for the "url" field. It is called by the builders before save.
	browsingevent.URLValidator = browsingeventDescURL.Validators[0].(func(string) error)
	// browsingeventDescDomain is the schema descriptor for domain field.
	browsingeventDescDomain := browsingeventFields[2].Descriptor()
	// browsingevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	browsingevent.DomainValidator = browsingeventDescDomain.Validators[0].(func(string) error)
	// browsingeventDescTitle is the schema descriptor for title field.
	browsingeventDescTitle := browsingeventFields[3].Descriptor()
	// browsingevent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	browsingevent.TitleValidator = browsingeventDescTitle.Validators[0].(func(string) error)
	// browsingeventDescDurationSeconds is the schema descriptor for duration_seconds field.
	browsingeventDescDurationSeconds := browsingeventFields[4].Descriptor()
	// browsingevent.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	browsingevent.DefaultDurationSeconds = browsingeventDescDurationSeconds.Default.(int)
	// browsingeventDescDistraction is the schema descriptor for distraction field.
	browsingeventDescDistraction := browsingeventFields[5].Descriptor()
	// browsingevent.DefaultDistraction holds the default value on creation for the distraction field.
	browsingevent.DefaultDistraction = browsingeventDescDistraction.Default.(bool)
	// browsingeventDescDistractionScore is the schema descriptor for distraction_score field.
	browsingeventDescDistractionScore := browsingeventFields[6].Descriptor()
	// browsingevent.DefaultDistractionScore holds the default value on creation for the distraction_score field.
	browsingevent.DefaultDistractionScore = browsingeventDescDistractionScore.Default.(float64)
	// browsingeventDescCategory is the schema descriptor for category field.
	browsingeventDescCategory := browsingeventFields[7].Descriptor()
	// browsingevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	browsingevent.CategoryValidator = browsingeventDescCategory.Validators[0].(func(string) error)
	interventioneventMixin := schema.InterventionEvent{}.Mixin()
	interventioneventMixinFields0 := interventioneventMixin[0].Fields()
	_ = interventioneventMixinFields0
	interventioneventFields := schema.InterventionEvent{}.Fields()
	_ = interventioneventFields
	// interventioneventDescTimestamp is the schema descriptor for timestamp field.
	interventioneventDescTimestamp := interventioneventMixinFields0[1].Descriptor()
	// interventionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interventionevent.DefaultTimestamp = interventioneventDescTimestamp.Default.(func() time.Time)
	// interventioneventDescInterventionID is the schema descriptor for intervention_id field.
	interventioneventDescInterventionID := interventioneventFields[0].Descriptor()
	// interventionevent.InterventionIDValidator is a validator for the "intervention_id" field. It is called by the builders before save.
	interventionevent.InterventionIDValidator = interventioneventDescInterventionID.Validators[0].(func(string) error)
	// interventioneventDescUserID is the schema descriptor for user_id field.
	interventioneventDescUserID := interventioneventFields[1].Descriptor()
	// interventionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interventionevent.UserIDValidator = interventioneventDescUserID.Validators[0].(func(string) error)
	// interventioneventDescLevel is the schema descriptor for level field.
	interventioneventDescLevel := interventioneventFields[2].Descriptor()
	// interventionevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	interventionevent.LevelValidator = interventioneventDescLevel.Validators[0].(func(string) error)
	// interventioneventDescTriggerDomain is the schema descriptor for trigger_domain field.
	interventioneventDescTriggerDomain := interventioneventFields[3].Descriptor()
	// interventionevent.TriggerDomainValidator is a validator for the "trigger_domain" field. It is called by the builders before save.
	interventionevent.TriggerDomainValidator = interventioneventDescTriggerDomain.Validators[0].(func(string) error)
	// interventioneventDescTriggerURL is the schema descriptor for trigger_url field.
	interventioneventDescTriggerURL := interventioneventFields[4].Descriptor()
	// interventionevent.TriggerURLValidator is a validator for the "trigger_url" field. It is called by the builders before save.
	interventionevent.TriggerURLValidator = interventioneventDescTriggerURL.Validators[0].(func(string) error)
	// interventioneventDescDurationOnDistractionSeconds is the schema descriptor for duration_on_distraction_seconds field.
	interventioneventDescDurationOnDistractionSeconds := interventioneventFields[5].Descriptor()
	// interventionevent.DefaultDurationOnDistractionSeconds holds the default value on creation for the duration_on_distraction_seconds field.
	interventionevent.DefaultDurationOnDistractionSeconds = interventioneventDescDurationOnDistractionSeconds.Default.(int)
	// interventioneventDescDistractionScore is the schema descriptor for distraction_score field.
	interventioneventDescDistractionScore := interventioneventFields[6].Descriptor()
	// interventionevent.DefaultDistractionScore holds the default value on creation for the distraction_score field.
	interventionevent.DefaultDistractionScore = interventioneventDescDistractionScore.Default.(float64)
	patternsnapshotFields := schema.PatternSnapshot{}.Fields()
	_ = patternsnapshotFields
	// patternsnapshotDescUserID is the schema descriptor for user_id field.
	patternsnapshotDescUserID := patternsnapshotFields[0].Descriptor()
	// patternsnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	patternsnapshot.UserIDValidator = patternsnapshotDescUserID.Validators[0].(func(string) error)
	// patternsnapshotDescTimestamp is the schema descriptor for timestamp field.
	patternsnapshotDescTimestamp := patternsnapshotFields[2].Descriptor()
	// patternsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	patternsnapshot.DefaultTimestamp = patternsnapshotDescTimestamp.Default.(func() time.Time)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescSessionID is the schema descriptor for session_id field.
	studysessionDescSessionID := studysessionFields[0].Descriptor()
	// studysession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	studysession.SessionIDValidator = studysessionDescSessionID.Validators[0].(func(string) error)
	// studysessionDescUserID is the schema descriptor for user_id field.
	studysessionDescUserID := studysessionFields[1].Descriptor()
	// studysession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studysession.UserIDValidator = studysessionDescUserID.Validators[0].(func(string) error)
	// studysessionDescTopic is the schema descriptor for topic field.
	studysessionDescTopic := studysessionFields[2].Descriptor()
	// studysession.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	studysession.TopicValidator = studysessionDescTopic.Validators[0].(func(string) error)
	// studysessionDescStartedAt is the schema descriptor for started_at field.
	studysessionDescStartedAt := studysessionFields[3].Descriptor()
	// studysession.DefaultStartedAt holds the default value on creation for the started_at field.
	studysession.DefaultStartedAt = studysessionDescStartedAt.Default.(func() time.Time)
	// studysessionDescPlannedDurationMinutes is the schema descriptor for planned_duration_minutes field.
	studysessionDescPlannedDurationMinutes := studysessionFields[5].Descriptor()
	// studysession.DefaultPlannedDurationMinutes holds the default value on creation for the planned_duration_minutes field.
	studysession.DefaultPlannedDurationMinutes = studysessionDescPlannedDurationMinutes.Default.(int)
	// studysessionDescActive is the schema descriptor for active field.
	studysessionDescActive := studysessionFields[6].Descriptor()
	// studysession.DefaultActive holds the default value on creation for the active field.
	studysession.DefaultActive = studysessionDescActive.Default.(bool)
}
