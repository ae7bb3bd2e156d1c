package store

import (
	"context"
	"fmt"

	"github.com/adaptifocus/adaptifocus/ent"
	"github.com/adaptifocus/adaptifocus/ent/patternsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	seqNum := snap.Sequence
	if seqNum == 0 {
		var err error
		seqNum, err = r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
	}

	_, err := r.client.PatternSnapshot.Create().
		SetUserID(snap.UserID).
		SetSequence(seqNum).
		SetTimestamp(snap.Timestamp).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, userID string) (*Snapshot, error) {
	s, err := r.client.PatternSnapshot.Query().
		Where(patternsnapshot.UserID(userID)).
		Order(ent.Desc(patternsnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		UserID:    s.UserID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      s.Data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, userID string, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot for the user.
	snapshots, err := r.client.PatternSnapshot.Query().
		Where(patternsnapshot.UserID(userID)).
		Order(ent.Desc(patternsnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.PatternSnapshot.Delete().
		Where(
			patternsnapshot.UserID(userID),
			patternsnapshot.TimestampLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
