package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adaptifocus/adaptifocus/ent"
	"github.com/adaptifocus/adaptifocus/ent/browsingevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) Append(ctx context.Context, data BrowsingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BrowsingEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetDurationSeconds(data.DurationSeconds).
		SetDistraction(data.Distraction).
		SetDistractionScore(data.DistractionScore)

	if data.URL != "" {
		builder = builder.SetURL(data.URL)
	}
	if data.Domain != "" {
		builder = builder.SetDomain(data.Domain)
	}
	if data.Title != "" {
		builder = builder.SetTitle(data.Title)
	}
	if data.Category != "" {
		builder = builder.SetCategory(data.Category)
	}
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save browsing event: %w", err)
	}
	return nil
}

func (r *eventRepo) Query(ctx context.Context, userID string, opts QueryOpts) ([]BrowsingEventRecord, error) {
	q := r.client.BrowsingEvent.Query().
		Where(browsingevent.UserID(userID))

	if opts.After > 0 {
		q = q.Where(browsingevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(browsingevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(browsingevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(browsingevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.Order(ent.Asc(browsingevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query browsing events: %w", err)
	}

	records := make([]BrowsingEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, entBrowsingEventToRecord(e))
	}
	return records, nil
}

func (r *eventRepo) Today(ctx context.Context, userID string, now time.Time) ([]BrowsingEventRecord, error) {
	return r.Query(ctx, userID, QueryOpts{From: startOfDay(now)})
}

func entBrowsingEventToRecord(e *ent.BrowsingEvent) BrowsingEventRecord {
	return BrowsingEventRecord{
		ID:               e.ID,
		Sequence:         e.Sequence,
		Timestamp:        e.Timestamp,
		UserID:           e.UserID,
		URL:              e.URL,
		Domain:           e.Domain,
		Title:            e.Title,
		DurationSeconds:  e.DurationSeconds,
		Distraction:      e.Distraction,
		DistractionScore: e.DistractionScore,
		Category:         e.Category,
		SessionID:        e.SessionID,
	}
}
