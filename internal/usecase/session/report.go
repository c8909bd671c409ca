package session

import (
	"context"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	"go.uber.org/zap"
)

// ReportFile is a rendered report ready to be served as a download.
type ReportFile struct {
	Data        []byte
	ContentType string
	Filename    string
}

// BuildReport renders the session analysis in the requested format. Requires
// a generated analysis.
func (uc *SessionUsecase) BuildReport(ctx context.Context, sessionID string, format entity.ReportFormat) (*ReportFile, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
	}

	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	now := time.Now().UTC()
	doc, err := uc.reportFactory.BuildDocument(session, uc.catalog, now)
	if err != nil {
		return nil, err
	}

	formatter, err := uc.reportFactory.Create(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
	}

	data, err := formatter.Format(doc)
	if err != nil {
		return nil, fmt.Errorf("format report: %w", err)
	}

	filename := fmt.Sprintf("workshop-report-%s%s", now.Format("20060102-150405"), formatter.FileExtension())

	ctxzap.Info(ctx, "report generated",
		zap.String("session_id", sessionID),
		zap.String("format", string(format)),
		zap.Int("size", len(data)),
	)

	return &ReportFile{
		Data:        data,
		ContentType: formatter.ContentType(),
		Filename:    filename,
	}, nil
}
