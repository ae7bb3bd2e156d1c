package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adaptifocus/adaptifocus/ent"
	"github.com/adaptifocus/adaptifocus/ent/interventionevent"
)

// interventionRepo implements InterventionRepo using the ent client.
type interventionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *interventionRepo) Append(ctx context.Context, data InterventionData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.InterventionEvent.Create().
		SetSequence(seqNum).
		SetInterventionID(data.InterventionID).
		SetUserID(data.UserID).
		SetLevel(data.Level).
		SetDurationOnDistractionSeconds(data.DurationOnDistractionSecs).
		SetDistractionScore(data.DistractionScore)

	if data.TriggerDomain != "" {
		builder = builder.SetTriggerDomain(data.TriggerDomain)
	}
	if data.TriggerURL != "" {
		builder = builder.SetTriggerURL(data.TriggerURL)
	}
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save intervention event: %w", err)
	}
	return nil
}

func (r *interventionRepo) RecordResponse(ctx context.Context, interventionID, response string) (*InterventionRecord, error) {
	iv, err := r.client.InterventionEvent.Query().
		Where(interventionevent.InterventionID(interventionID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query intervention: %w", err)
	}

	effective := response == "complied"
	updated, err := iv.Update().
		SetUserResponse(response).
		SetEffective(effective).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record intervention response: %w", err)
	}

	rec := entInterventionToRecord(updated)
	return &rec, nil
}

func (r *interventionRepo) CountToday(ctx context.Context, userID string, now time.Time) (int, error) {
	n, err := r.client.InterventionEvent.Query().
		Where(
			interventionevent.UserID(userID),
			interventionevent.TimestampGTE(startOfDay(now)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count interventions: %w", err)
	}
	return n, nil
}

func (r *interventionRepo) Today(ctx context.Context, userID string, now time.Time) ([]InterventionRecord, error) {
	events, err := r.client.InterventionEvent.Query().
		Where(
			interventionevent.UserID(userID),
			interventionevent.TimestampGTE(startOfDay(now)),
		).
		Order(ent.Asc(interventionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interventions: %w", err)
	}

	records := make([]InterventionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, entInterventionToRecord(e))
	}
	return records, nil
}

func entInterventionToRecord(e *ent.InterventionEvent) InterventionRecord {
	return InterventionRecord{
		ID:                        e.ID,
		Sequence:                  e.Sequence,
		Timestamp:                 e.Timestamp,
		InterventionID:            e.InterventionID,
		UserID:                    e.UserID,
		Level:                     e.Level,
		TriggerDomain:             e.TriggerDomain,
		TriggerURL:                e.TriggerURL,
		DurationOnDistractionSecs: e.DurationOnDistractionSeconds,
		DistractionScore:          e.DistractionScore,
		SessionID:                 e.SessionID,
		UserResponse:              e.UserResponse,
		Effective:                 e.Effective,
	}
}
