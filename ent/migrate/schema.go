// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BrowsingEventsColumns holds the columns for the "browsing_events" table.
	BrowsingEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "url", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "domain", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "distraction", Type: field.TypeBool, Default: false},
		{Name: "distraction_score", Type: field.TypeFloat64, Default: 0},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// BrowsingEventsTable holds the schema information for the "browsing_events" table.
	BrowsingEventsTable = &schema.Table{
		Name:       "browsing_events",
		Columns:    BrowsingEventsColumns,
		PrimaryKey: []*schema.Column{BrowsingEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "browsingevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BrowsingEventsColumns[1]},
			},
			{
				Name:    "browsingevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BrowsingEventsColumns[2]},
			},
			{
				Name:    "browsingevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{BrowsingEventsColumns[3]},
			},
			{
				Name:    "browsingevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BrowsingEventsColumns[3], BrowsingEventsColumns[2]},
			},
			{
				Name:    "browsingevent_domain",
				Unique:  false,
				Columns: []*schema.Column{BrowsingEventsColumns[5]},
			},
		},
	}
	// InterventionEventsColumns holds the columns for the "intervention_events" table.
	InterventionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "intervention_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "trigger_domain", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "trigger_url", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "duration_on_distraction_seconds", Type: field.TypeInt, Default: 0},
		{Name: "distraction_score", Type: field.TypeFloat64, Default: 0},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "user_response", Type: field.TypeString, Nullable: true},
		{Name: "effective", Type: field.TypeBool, Nullable: true},
	}
	// InterventionEventsTable holds the schema information for the "intervention_events" table.
	InterventionEventsTable = &schema.Table{
		Name:       "intervention_events",
		Columns:    InterventionEventsColumns,
		PrimaryKey: []*schema.Column{InterventionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interventionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[1]},
			},
			{
				Name:    "interventionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[2]},
			},
			{
				Name:    "interventionevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[4], InterventionEventsColumns[2]},
			},
			{
				Name:    "interventionevent_intervention_id",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[3]},
			},
		},
	}
	// PatternSnapshotsColumns holds the columns for the "pattern_snapshots" table.
	PatternSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// PatternSnapshotsTable holds the schema information for the "pattern_snapshots" table.
	PatternSnapshotsTable = &schema.Table{
		Name:       "pattern_snapshots",
		Columns:    PatternSnapshotsColumns,
		PrimaryKey: []*schema.Column{PatternSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patternsnapshot_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PatternSnapshotsColumns[1], PatternSnapshotsColumns[3]},
			},
			{
				Name:    "patternsnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{PatternSnapshotsColumns[2]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "planned_duration_minutes", Type: field.TypeInt, Default: 45},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_session_id",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_user_id_active",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[2], StudySessionsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BrowsingEventsTable,
		InterventionEventsTable,
		PatternSnapshotsTable,
		StudySessionsTable,
	}
)

func init() {
}
