package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	"go.uber.org/zap"
)

// ExportSnapshot serializes the session in the requested schema version.
// Version 1 is the full form with metadata and analysis, version 2 the
// condensed form tagged "2.0".
func (uc *SessionUsecase) ExportSnapshot(ctx context.Context, sessionID string, version int) (any, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	now := time.Now().UTC()
	flat := uc.catalog.FlatIndex(session.CurrentPhase, session.CurrentIndex)

	switch version {
	case 1:
		return &entity.SnapshotV1{
			Metadata: entity.SnapshotMetadata{
				ExportDate: now,
				AppVersion: entity.SnapshotAppVersion,
				Workshop:   entity.SnapshotWorkshopTag,
			},
			Answers:         session.Answers,
			CurrentQuestion: flat,
			Section:         session.CurrentPhase,
			Analysis:        session.Analysis,
		}, nil
	case 2:
		return &entity.SnapshotV2{
			Version:         entity.SnapshotV2Tag,
			Timestamp:       now,
			Answers:         session.Answers,
			CurrentQuestion: flat,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported snapshot version %d", entity.ErrInvalidParameter, version)
	}
}

// snapshotProbe inspects the raw document before committing to a schema.
type snapshotProbe struct {
	Version *string                  `json:"version"`
	Answers map[string]entity.Answer `json:"answers"`
}

// ImportSnapshot replaces the session state with the snapshot content. The
// schema is detected from the document itself: a "version" tag of "2.0"
// selects the condensed form, no tag selects the full form, anything else is
// rejected. A snapshot without an answers object is rejected outright.
func (uc *SessionUsecase) ImportSnapshot(ctx context.Context, sessionID string, raw []byte) (*entity.Session, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var probe snapshotProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFile, err)
	}

	if probe.Answers == nil {
		return nil, fmt.Errorf("%w: missing answers object", entity.ErrSnapshotNoAnswers)
	}

	var (
		flat     int
		analysis *entity.AnalysisResult
	)

	switch {
	case probe.Version == nil:
		var snap entity.SnapshotV1
		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFile, err)
		}
		flat = snap.CurrentQuestion
		analysis = snap.Analysis

	case *probe.Version == entity.SnapshotV2Tag:
		var snap entity.SnapshotV2
		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFile, err)
		}
		flat = snap.CurrentQuestion

	default:
		return nil, fmt.Errorf("%w: unknown snapshot version %q", entity.ErrSnapshotIncompatible, *probe.Version)
	}

	phase, index := uc.catalog.PositionFromFlat(flat)

	session.Answers = probe.Answers
	session.Analysis = analysis
	session.CurrentPhase = phase
	session.CurrentIndex = index
	session.UpdatedAt = time.Now().UTC()

	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	ctxzap.Info(ctx, "snapshot imported",
		zap.String("session_id", sessionID),
		zap.Int("answers", len(session.Answers)),
	)

	return session, nil
}
