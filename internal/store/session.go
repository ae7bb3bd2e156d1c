package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adaptifocus/adaptifocus/ent"
	"github.com/adaptifocus/adaptifocus/ent/studysession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Start(ctx context.Context, data SessionData) error {
	// A user has at most one active session. Close any leftover from a
	// crash or a session the UI never ended.
	_, err := r.client.StudySession.Update().
		Where(
			studysession.UserID(data.UserID),
			studysession.Active(true),
		).
		SetActive(false).
		SetEndedAt(data.StartedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("close prior sessions: %w", err)
	}

	builder := r.client.StudySession.Create().
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetStartedAt(data.StartedAt)

	if data.Topic != "" {
		builder = builder.SetTopic(data.Topic)
	}
	if data.PlannedDurationMinutes > 0 {
		builder = builder.SetPlannedDurationMinutes(data.PlannedDurationMinutes)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) End(ctx context.Context, sessionID string, endedAt time.Time) (*SessionRecord, error) {
	s, err := r.client.StudySession.Query().
		Where(studysession.SessionID(sessionID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	updated, err := s.Update().
		SetActive(false).
		SetEndedAt(endedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("end session: %w", err)
	}

	rec := entSessionToRecord(updated)
	return &rec, nil
}

func (r *sessionRepo) Active(ctx context.Context, userID string) (*SessionRecord, error) {
	s, err := r.client.StudySession.Query().
		Where(
			studysession.UserID(userID),
			studysession.Active(true),
		).
		Order(ent.Desc(studysession.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query active session: %w", err)
	}

	rec := entSessionToRecord(s)
	return &rec, nil
}

func entSessionToRecord(s *ent.StudySession) SessionRecord {
	return SessionRecord{
		ID:                     s.ID,
		SessionID:              s.SessionID,
		UserID:                 s.UserID,
		Topic:                  s.Topic,
		StartedAt:              s.StartedAt,
		EndedAt:                s.EndedAt,
		PlannedDurationMinutes: s.PlannedDurationMinutes,
		Active:                 s.Active,
	}
}
