package session

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ifab-lab/workshop-backend/internal/analysis"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	"go.uber.org/zap"
)

// GenerateAnalysis builds the consulting prompt from the recorded answers and
// walks the configured model cascade until one model answers. Each model gets
// its own retry budget; when the whole cascade is exhausted the last model's
// error is preserved in the returned one. A successful run replaces any
// previous analysis.
func (uc *SessionUsecase) GenerateAnalysis(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if len(session.Answers) == 0 {
		return nil, fmt.Errorf("%w: no answers recorded", entity.ErrInvalidParameter)
	}

	prompt := analysis.BuildPrompt(session.Answers)

	var (
		rawText   string
		usedModel string
		lastErr   error
	)

	for _, model := range uc.llmCfg.Models {
		ctxzap.Info(ctx, "requesting analysis",
			zap.String("session_id", sessionID),
			zap.String("model", model),
		)

		resp, err := retry.DoWithData(func() (*entity.LLMCompleteResponse, error) {
			return uc.llmConnector.Complete(ctx, &entity.LLMCompleteRequest{
				Model:       model,
				Prompt:      prompt,
				MaxTokens:   uc.llmCfg.MaxTokens,
				Temperature: uc.llmCfg.Temperature,
			})
		}, append(uc.llmCfg.Retry.ToRetryOptions(), retry.Context(ctx))...)
		if err != nil {
			lastErr = err
			ctxzap.Warn(ctx, "model failed, trying next in cascade",
				zap.String("model", model),
				zap.Error(err),
			)
			continue
		}

		rawText = resp.Text
		usedModel = model
		break
	}

	if usedModel == "" {
		return nil, fmt.Errorf("%w: all models exhausted, last error: %v", entity.ErrAnalysisFailed, lastErr)
	}

	session.Analysis = analysis.BuildResult(rawText, usedModel, session.Answers, time.Now().UTC())
	session.UpdatedAt = time.Now().UTC()

	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	ctxzap.Info(ctx, "analysis generated",
		zap.String("session_id", sessionID),
		zap.String("model", usedModel),
		zap.Int("sections", len(session.Analysis.Sections)),
	)

	return session, nil
}

// GetAnalysis returns the stored analysis, ErrNoAnalysis when none was
// generated yet.
func (uc *SessionUsecase) GetAnalysis(ctx context.Context, sessionID string) (*entity.AnalysisResult, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Analysis == nil {
		return nil, fmt.Errorf("%w: session %s", entity.ErrNoAnalysis, sessionID)
	}

	return session.Analysis, nil
}
