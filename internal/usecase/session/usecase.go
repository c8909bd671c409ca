// Package session implements the workshop session lifecycle: answering
// questions, moving through the wizard, generating the analysis and turning
// sessions into snapshots and reports.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ifab-lab/workshop-backend/internal/catalog"
	"github.com/ifab-lab/workshop-backend/internal/config"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	"github.com/ifab-lab/workshop-backend/internal/pkg/validator"
	"github.com/ifab-lab/workshop-backend/internal/report"
	"github.com/ifab-lab/workshop-backend/internal/wizard"
	"go.uber.org/zap"
)

// SessionUsecase implements session business logic
type SessionUsecase struct {
	sessionRepo   SessionRepository
	catalog       *catalog.Catalog
	wizard        *wizard.Wizard
	validator     *validator.Validator
	llmConnector  LLMConnector
	asrConnector  ASRConnector
	reportFactory *report.Factory
	llmCfg        config.LLMConnectorConfig
	logger        *zap.Logger
}

func NewUsecase(
	sessionRepo SessionRepository,
	cat *catalog.Catalog,
	validator *validator.Validator,
	llmConnector LLMConnector,
	asrConnector ASRConnector,
	reportFactory *report.Factory,
	llmCfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *SessionUsecase {
	return &SessionUsecase{
		sessionRepo:   sessionRepo,
		catalog:       cat,
		wizard:        wizard.New(cat),
		validator:     validator,
		llmConnector:  llmConnector,
		asrConnector:  asrConnector,
		reportFactory: reportFactory,
		llmCfg:        llmCfg,
		logger:        logger,
	}
}

// StartSession creates an empty session positioned at the first question.
func (uc *SessionUsecase) StartSession(ctx context.Context) (*entity.Session, error) {
	phase, index := uc.wizard.InitialPosition()
	now := time.Now().UTC()

	session := &entity.Session{
		ID:           uuid.New().String(),
		Answers:      make(map[string]entity.Answer),
		CurrentPhase: phase,
		CurrentIndex: index,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	ctxzap.Info(ctx, "session started", zap.String("session_id", session.ID))

	return session, nil
}

// GetSession returns the full session state.
func (uc *SessionUsecase) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// ResetSession wipes answers, analysis and position, keeping the session id.
func (uc *SessionUsecase) ResetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	phase, index := uc.wizard.InitialPosition()
	session.Answers = make(map[string]entity.Answer)
	session.Analysis = nil
	session.CurrentPhase = phase
	session.CurrentIndex = index
	session.UpdatedAt = time.Now().UTC()

	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	ctxzap.Info(ctx, "session reset", zap.String("session_id", sessionID))

	return session, nil
}

// CurrentQuestion returns the active question with any recorded answer and
// overall progress.
func (uc *SessionUsecase) CurrentQuestion(ctx context.Context, sessionID string) (*entity.CurrentQuestionDTO, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	q, err := uc.wizard.CurrentQuestion(session)
	if err != nil {
		return nil, err
	}

	return toCurrentQuestionDTO(session, q, uc.catalog.Progress(session.Answers)), nil
}

// RecordAnswer upserts the answer for a question without moving the wizard.
// When req.Advance is set the gated advance runs after a successful write.
func (uc *SessionUsecase) RecordAnswer(ctx context.Context, sessionID, questionID string, req *entity.SubmitAnswerRequest) (*entity.Session, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	q, err := uc.catalog.ByID(questionID)
	if err != nil {
		return nil, err
	}

	if err := uc.validator.ValidateAnswerShape(q, req.Answer); err != nil {
		return nil, err
	}

	session.Answers[questionID] = req.Answer
	session.UpdatedAt = time.Now().UTC()

	if req.Advance {
		if err := uc.wizard.Advance(session); err != nil {
			// Persist the answer even when the advance is gated.
			if uerr := uc.sessionRepo.Update(ctx, session); uerr != nil {
				return nil, fmt.Errorf("update session: %w", uerr)
			}
			return nil, err
		}
	}

	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	ctxzap.Info(ctx, "answer recorded",
		zap.String("session_id", sessionID),
		zap.String("question_id", questionID),
	)

	return session, nil
}

// SubmitAudioAnswer transcribes the recording and records the text as the
// answer of the given question.
func (uc *SessionUsecase) SubmitAudioAnswer(ctx context.Context, sessionID, questionID string, audioData []byte, filename string) (*entity.Session, error) {
	transcription, err := uc.asrConnector.TranscribeBytes(ctx, audioData, filename)
	if err != nil {
		return nil, fmt.Errorf("transcribe audio: %w", err)
	}

	return uc.RecordAnswer(ctx, sessionID, questionID, &entity.SubmitAnswerRequest{
		Answer: entity.Answer{Text: transcription},
	})
}

// Advance moves the wizard forward, gated on the current required question.
func (uc *SessionUsecase) Advance(ctx context.Context, sessionID string) (*entity.Session, error) {
	return uc.move(ctx, sessionID, uc.wizard.Advance)
}

// Skip moves past a non-required question.
func (uc *SessionUsecase) Skip(ctx context.Context, sessionID string) (*entity.Session, error) {
	return uc.move(ctx, sessionID, uc.wizard.Skip)
}

// Retreat moves one question back, clamped at the very first question.
func (uc *SessionUsecase) Retreat(ctx context.Context, sessionID string) (*entity.Session, error) {
	return uc.move(ctx, sessionID, func(s *entity.Session) error {
		uc.wizard.Retreat(s)
		return nil
	})
}

func (uc *SessionUsecase) move(ctx context.Context, sessionID string, step func(*entity.Session) error) (*entity.Session, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if err := step(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = time.Now().UTC()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	return session, nil
}

// DeleteSession removes the session from the store.
func (uc *SessionUsecase) DeleteSession(ctx context.Context, sessionID string) error {
	if err := uc.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
